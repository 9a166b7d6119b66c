package stac

import (
	"context"
	"net/url"
	"strings"

	"github.com/robert-malhotra/go-stac-browser/pkg/schema"
)

// HasExtent is implemented by views that describe a spatial and temporal
// extent.
type HasExtent interface {
	Extent() (Extent, error)
}

// ItemsResult is returned by Collection.GetItems: either an *Item or an
// *ItemCollection.
type ItemsResult interface {
	Document() Document
	itemsResult()
}

// Collection is a STAC Collection: a Catalog with extent, license and
// provider metadata, and an item index reachable through its "items"
// link.
type Collection struct {
	Catalog
}

// NewCollection wraps doc as a Collection. With WithValidation(true) the
// document is checked against the bundled collection schema first.
func NewCollection(doc Document, opts ...Option) (*Collection, error) {
	return newCollection(doc, newOptions(opts...))
}

func newCollection(doc Document, opts options) (*Collection, error) {
	cat, err := newCatalog(schema.TypeCollection, doc, opts)
	if err != nil {
		return nil, err
	}
	return &Collection{Catalog: *cat}, nil
}

// Keywords returns the "keywords" field.
func (c *Collection) Keywords() ([]string, error) {
	return stringsField(c.kind, c.doc, "keywords")
}

// Version returns the "version" field.
func (c *Collection) Version() (string, error) {
	return stringField(c.kind, c.doc, "version")
}

// License returns the "license" field.
func (c *Collection) License() (string, error) {
	return stringField(c.kind, c.doc, "license")
}

// Properties returns the "properties" field verbatim.
func (c *Collection) Properties() (Document, error) {
	return documentField(c.kind, c.doc, "properties")
}

// Summaries returns the "summaries" field verbatim.
func (c *Collection) Summaries() (Document, error) {
	return documentField(c.kind, c.doc, "summaries")
}

// Providers returns a view of each entry of "providers", in order. The
// views are rebuilt on every call.
func (c *Collection) Providers() ([]Provider, error) {
	docs, err := documentsField(c.kind, c.doc, "providers")
	if err != nil {
		return nil, err
	}
	providers := make([]Provider, len(docs))
	for i, doc := range docs {
		providers[i] = Provider{doc: doc}
	}
	return providers, nil
}

// Extent returns a view of the "extent" field. The view is rebuilt on
// every call.
func (c *Collection) Extent() (Extent, error) {
	doc, err := documentField(c.kind, c.doc, "extent")
	if err != nil {
		return Extent{}, err
	}
	return Extent{doc: doc}, nil
}

// GetItems resolves the collection's first "items" link.
//
// Without an "items" link it returns an empty ItemCollection and no
// error. With a non-empty itemID it fetches {href}/{itemID} and returns an
// *Item that inherits this collection's validation setting; itemID is
// inserted as-is and must already be escaped. Otherwise it fetches href
// with filter as query parameters and returns an *ItemCollection, which
// is never validated.
//
// Each call performs exactly one fetch. Fetch errors are returned
// unchanged.
func (c *Collection) GetItems(ctx context.Context, itemID string, filter url.Values) (ItemsResult, error) {
	link, err := c.Link(RelItems)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return &ItemCollection{Resource: Resource{
			doc:  Document{},
			kind: schema.TypeItemCollection,
			opts: c.opts.withValidation(false),
		}}, nil
	}

	if itemID != "" {
		doc, err := c.fetch(ctx, joinItemPath(link.Href, itemID), nil)
		if err != nil {
			return nil, err
		}
		item, err := newItem(doc, c.opts)
		if err != nil {
			return nil, err
		}
		return item, nil
	}

	doc, err := c.fetch(ctx, link.Href, filter)
	if err != nil {
		return nil, err
	}
	// Item collections are never validated, unlike single items.
	items, err := newItemCollection(doc, c.opts.withValidation(false))
	if err != nil {
		return nil, err
	}
	return items, nil
}

// joinItemPath appends itemID to href with a single "/" separator.
func joinItemPath(href, itemID string) string {
	return strings.TrimSuffix(href, "/") + "/" + itemID
}
