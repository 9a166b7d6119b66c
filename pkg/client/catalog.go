package client

import (
	"context"

	"github.com/robert-malhotra/go-stac-browser/pkg/stac"
)

// Catalog fetches the root catalog document at the base URL. It is the
// entry point for browsing: its child links lead to further catalogs and
// collections.
func (c *Client) Catalog(ctx context.Context) (*stac.Catalog, error) {
	doc, err := c.Get(ctx, c.baseURL.String(), nil)
	if err != nil {
		return nil, err
	}
	return stac.NewCatalog(doc, c.ViewOptions()...)
}

// SupportsConformance checks if the STAC API supports a specific conformance class.
// Use the stac.Conformance* constants for common conformance classes.
func (c *Client) SupportsConformance(ctx context.Context, conformanceClass string) (bool, error) {
	cat, err := c.Catalog(ctx)
	if err != nil {
		return false, err
	}
	return cat.HasConformance(conformanceClass), nil
}

// Node fetches href and wraps it as a *stac.Collection or *stac.Catalog
// depending on its content.
func (c *Client) Node(ctx context.Context, href string) (stac.Node, error) {
	doc, err := c.Get(ctx, href, nil)
	if err != nil {
		return nil, err
	}
	if stac.IsCollectionDocument(doc) {
		col, err := stac.NewCollection(doc, c.ViewOptions()...)
		if err != nil {
			return nil, err
		}
		return col, nil
	}
	cat, err := stac.NewCatalog(doc, c.ViewOptions()...)
	if err != nil {
		return nil, err
	}
	return cat, nil
}
