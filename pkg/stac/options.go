package stac

import (
	"context"
	"net/url"

	"github.com/robert-malhotra/go-stac-browser/pkg/schema"
)

// Fetcher retrieves a JSON document over the network. Relative hrefs are
// resolved by the Fetcher. Errors are returned to callers unchanged.
type Fetcher interface {
	Get(ctx context.Context, rawURL string, params url.Values) (Document, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, rawURL string, params url.Values) (Document, error)

// Get implements the Fetcher interface.
func (f FetcherFunc) Get(ctx context.Context, rawURL string, params url.Values) (Document, error) {
	return f(ctx, rawURL, params)
}

// Validator checks a document against the schema for a STAC version and
// object type. *schema.Registry implements it.
type Validator interface {
	Validate(doc any, version, typeName string) error
}

// Option configures a view at construction.
type Option func(*options)

type options struct {
	validate  bool
	fetcher   Fetcher
	validator Validator
}

func newOptions(opts ...Option) options {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.validator == nil {
		cfg.validator = schema.Default()
	}
	return cfg
}

func (o options) withValidation(v bool) options {
	o.validate = v
	return o
}

// WithValidation enables schema validation at construction.
func WithValidation(validate bool) Option {
	return func(o *options) { o.validate = validate }
}

// WithFetcher sets the transport used by navigation methods. Views
// produced by navigation inherit it.
func WithFetcher(f Fetcher) Option {
	return func(o *options) { o.fetcher = f }
}

// WithValidator replaces the bundled schema registry.
func WithValidator(v Validator) Option {
	return func(o *options) { o.validator = v }
}
