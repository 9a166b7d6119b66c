package stac

import (
	"context"

	"github.com/robert-malhotra/go-stac-browser/pkg/schema"
)

// ItemCollection is a GeoJSON FeatureCollection of STAC Items. An empty
// document is a valid collection with no items.
type ItemCollection struct {
	Resource
}

// NewItemCollection wraps doc as an ItemCollection. With
// WithValidation(true) the document is checked against the bundled
// itemcollection schema first, and every feature is validated as an item
// when Items is called.
func NewItemCollection(doc Document, opts ...Option) (*ItemCollection, error) {
	return newItemCollection(doc, newOptions(opts...))
}

func newItemCollection(doc Document, opts options) (*ItemCollection, error) {
	r, err := newResource(schema.TypeItemCollection, doc, opts)
	if err != nil {
		return nil, err
	}
	return &ItemCollection{Resource: r}, nil
}

func (*ItemCollection) itemsResult() {}

func (ic *ItemCollection) features() ([]Document, error) {
	if _, ok := ic.doc["features"]; !ok {
		return nil, nil
	}
	return documentsField(ic.kind, ic.doc, "features")
}

// Len returns the number of features. A collection without "features"
// has none; a malformed "features" value is an error.
func (ic *ItemCollection) Len() (int, error) {
	features, err := ic.features()
	if err != nil {
		return 0, err
	}
	return len(features), nil
}

// Items wraps each feature as an Item, in document order.
func (ic *ItemCollection) Items() ([]*Item, error) {
	features, err := ic.features()
	if err != nil {
		return nil, err
	}
	items := make([]*Item, 0, len(features))
	for _, feature := range features {
		item, err := newItem(feature, ic.opts)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Next follows the collection's "next" link once. It returns nil and no
// error when there is no next page.
func (ic *ItemCollection) Next(ctx context.Context) (*ItemCollection, error) {
	if _, ok := ic.doc["links"]; !ok {
		return nil, nil
	}
	link, err := ic.Link(RelNext)
	if err != nil || link == nil {
		return nil, err
	}
	doc, err := ic.fetch(ctx, link.Href, nil)
	if err != nil {
		return nil, err
	}
	return newItemCollection(doc, ic.opts)
}
