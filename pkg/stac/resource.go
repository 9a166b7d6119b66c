package stac

import (
	"context"
	"errors"
	"net/url"

	"github.com/robert-malhotra/go-stac-browser/pkg/schema"
)

// HasLinks is implemented by every view.
type HasLinks interface {
	Links() ([]Link, error)
}

// Resource holds what all STAC views share: the backing document, the
// object type used for schema lookup, and the options fixed at
// construction.
type Resource struct {
	doc  Document
	kind string
	opts options
}

func newResource(kind string, doc Document, opts options) (Resource, error) {
	if doc == nil {
		doc = Document{}
	}
	r := Resource{doc: doc, kind: kind, opts: opts}
	if opts.validate {
		if err := r.validateSchema(); err != nil {
			return Resource{}, err
		}
	}
	return r, nil
}

func (r *Resource) validateSchema() error {
	version, err := r.schemaVersion()
	if err != nil {
		return err
	}
	return r.opts.validator.Validate(map[string]any(r.doc), version, r.kind)
}

// schemaVersion picks the schema version for the document. Item
// collections returned by STAC APIs usually omit "stac_version"; they are
// checked against the version of their first feature, or the latest
// bundled version when no feature declares one.
func (r *Resource) schemaVersion() (string, error) {
	version, err := r.StacVersion()
	var missing *MissingFieldError
	if r.kind != schema.TypeItemCollection || !errors.As(err, &missing) {
		return version, err
	}
	features, _ := r.doc["features"].([]any)
	for _, f := range features {
		if feature, ok := f.(map[string]any); ok {
			if v, ok := feature["stac_version"].(string); ok {
				return v, nil
			}
		}
	}
	return schema.LatestVersion, nil
}

// Document returns the backing document. Callers must not modify it.
func (r *Resource) Document() Document { return r.doc }

// Validating reports whether the view was validated at construction.
// Views produced by navigation follow the same setting, except where noted.
func (r *Resource) Validating() bool { return r.opts.validate }

// ID returns the "id" field.
func (r *Resource) ID() (string, error) {
	return stringField(r.kind, r.doc, "id")
}

// StacVersion returns the "stac_version" field.
func (r *Resource) StacVersion() (string, error) {
	return stringField(r.kind, r.doc, "stac_version")
}

// Type returns the "type" field.
func (r *Resource) Type() (string, error) {
	return stringField(r.kind, r.doc, "type")
}

// Extensions returns the "stac_extensions" field.
func (r *Resource) Extensions() ([]string, error) {
	return stringsField(r.kind, r.doc, "stac_extensions")
}

// Links returns the "links" field in document order.
func (r *Resource) Links() ([]Link, error) {
	return parseLinks(r.kind, r.doc)
}

// Link returns the first link with the given rel, or nil when there is
// none. Only the matching link has to be well formed.
func (r *Resource) Link(rel string) (*Link, error) {
	return firstLink(r.kind, r.doc, rel)
}

func (r *Resource) fetch(ctx context.Context, href string, params url.Values) (Document, error) {
	if r.opts.fetcher == nil {
		return nil, ErrNoFetcher
	}
	return r.opts.fetcher.Get(ctx, href, params)
}
