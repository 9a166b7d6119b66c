package stac

import (
	"context"
	"slices"

	"github.com/robert-malhotra/go-stac-browser/pkg/schema"
)

// Node is a view reached through a "child" link: a *Catalog or a
// *Collection. Use a type switch to tell them apart.
type Node interface {
	HasLinks
	ID() (string, error)
	Document() Document
	AsCatalog() *Catalog
}

// Catalog is a STAC Catalog: a directory node whose links reference
// child Catalogs and Collections.
type Catalog struct {
	Resource
}

// NewCatalog wraps doc as a Catalog. With WithValidation(true) the
// document is checked against the bundled catalog schema first.
func NewCatalog(doc Document, opts ...Option) (*Catalog, error) {
	return newCatalog(schema.TypeCatalog, doc, newOptions(opts...))
}

func newCatalog(kind string, doc Document, opts options) (*Catalog, error) {
	r, err := newResource(kind, doc, opts)
	if err != nil {
		return nil, err
	}
	return &Catalog{Resource: r}, nil
}

// AsCatalog returns the catalog part of the view.
func (c *Catalog) AsCatalog() *Catalog { return c }

// Title returns the "title" field.
func (c *Catalog) Title() (string, error) {
	return stringField(c.kind, c.doc, "title")
}

// Description returns the "description" field.
func (c *Catalog) Description() (string, error) {
	return stringField(c.kind, c.doc, "description")
}

// ConformsTo returns the "conformsTo" field of a STAC API landing page.
func (c *Catalog) ConformsTo() ([]string, error) {
	return stringsField(c.kind, c.doc, "conformsTo")
}

// HasConformance reports whether the catalog declares a conformance
// class. A catalog without "conformsTo" declares none.
func (c *Catalog) HasConformance(conformanceClass string) bool {
	classes, err := c.ConformsTo()
	if err != nil {
		return false
	}
	return slices.Contains(classes, conformanceClass)
}

// ChildLinks returns the links with rel "child".
func (c *Catalog) ChildLinks() ([]Link, error) {
	links, err := c.Links()
	if err != nil {
		return nil, err
	}
	return FilterLinks(links, RelChild), nil
}

// Children fetches every child link in order and wraps each document as
// a *Collection or a *Catalog. Fetch errors are returned unchanged.
func (c *Catalog) Children(ctx context.Context) ([]Node, error) {
	links, err := c.ChildLinks()
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(links))
	for _, link := range links {
		doc, err := c.fetch(ctx, link.Href, nil)
		if err != nil {
			return nil, err
		}
		node, err := newNode(doc, c.opts)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// LinkedItems fetches every link with rel "item", as found in static
// catalogs, and wraps each document as an Item.
func (c *Catalog) LinkedItems(ctx context.Context) ([]*Item, error) {
	links, err := c.Links()
	if err != nil {
		return nil, err
	}
	var items []*Item
	for _, link := range FilterLinks(links, RelItem) {
		doc, err := c.fetch(ctx, link.Href, nil)
		if err != nil {
			return nil, err
		}
		item, err := newItem(doc, c.opts)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// IsCollectionDocument reports whether doc describes a Collection rather
// than a plain Catalog. Documents without a "type" (pre-1.0) are
// recognized by their "extent".
func IsCollectionDocument(doc Document) bool {
	if t, ok := doc["type"].(string); ok {
		return t == "Collection"
	}
	_, ok := doc["extent"]
	return ok
}

func newNode(doc Document, opts options) (Node, error) {
	if IsCollectionDocument(doc) {
		col, err := newCollection(doc, opts)
		if err != nil {
			return nil, err
		}
		return col, nil
	}
	cat, err := newCatalog(schema.TypeCatalog, doc, opts)
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// Common STAC API conformance class URIs.
const (
	ConformanceCore        = "https://api.stacspec.org/v1.0.0/core"
	ConformanceCollections = "https://api.stacspec.org/v1.0.0/collections"
	ConformanceFeatures    = "https://api.stacspec.org/v1.0.0/ogcapi-features"
	ConformanceItemSearch  = "https://api.stacspec.org/v1.0.0/item-search"
	ConformanceFilter      = "https://api.stacspec.org/v1.0.0/item-search#filter"
)
