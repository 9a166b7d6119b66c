package main

import (
	"errors"
	"slices"

	"github.com/robert-malhotra/go-stac-browser/pkg/stac"
)

// optional drops a missing-field error so absent optional members render
// as empty values. Any other error is kept.
func optional[T any](v T, err error) (T, error) {
	var missing *stac.MissingFieldError
	if errors.As(err, &missing) {
		var zero T
		return zero, nil
	}
	return v, err
}

type linkSummary struct {
	Rel   string `json:"rel"             yaml:"rel"`
	Href  string `json:"href"            yaml:"href"`
	Type  string `json:"type,omitempty"  yaml:"type,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

func newLinkSummaries(links []stac.Link) []linkSummary {
	out := make([]linkSummary, 0, len(links))
	for _, l := range links {
		out = append(out, linkSummary{Rel: l.Rel, Href: l.Href, Type: l.Type, Title: l.Title})
	}
	return out
}

type catalogSummary struct {
	Kind        string        `json:"kind"                 yaml:"kind"`
	ID          string        `json:"id"                   yaml:"id"`
	Title       string        `json:"title,omitempty"      yaml:"title,omitempty"`
	Description string        `json:"description"          yaml:"description"`
	ConformsTo  []string      `json:"conformsTo,omitempty" yaml:"conformsTo,omitempty"`
	Links       []linkSummary `json:"links"                yaml:"links"`
}

func newCatalogSummary(cat *stac.Catalog) (*catalogSummary, error) {
	id, err := cat.ID()
	if err != nil {
		return nil, err
	}
	s := &catalogSummary{Kind: "Catalog", ID: id}
	if s.Title, err = optional(cat.Title()); err != nil {
		return nil, err
	}
	if s.Description, err = optional(cat.Description()); err != nil {
		return nil, err
	}
	if s.ConformsTo, err = optional(cat.ConformsTo()); err != nil {
		return nil, err
	}
	links, err := optional(cat.Links())
	if err != nil {
		return nil, err
	}
	s.Links = newLinkSummaries(links)
	return s, nil
}

type providerSummary struct {
	Name        string   `json:"name"                  yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Roles       []string `json:"roles,omitempty"       yaml:"roles,omitempty"`
	URL         string   `json:"url,omitempty"         yaml:"url,omitempty"`
}

type extentSummary struct {
	Spatial  stac.Document `json:"spatial"  yaml:"spatial"`
	Temporal stac.Document `json:"temporal" yaml:"temporal"`
}

type collectionSummary struct {
	catalogSummary `yaml:",inline"`
	License        string            `json:"license"             yaml:"license"`
	Version        string            `json:"version,omitempty"   yaml:"version,omitempty"`
	Keywords       []string          `json:"keywords,omitempty"  yaml:"keywords,omitempty"`
	Providers      []providerSummary `json:"providers,omitempty" yaml:"providers,omitempty"`
	Extent         *extentSummary    `json:"extent,omitempty"    yaml:"extent,omitempty"`
}

func newCollectionSummary(col *stac.Collection) (*collectionSummary, error) {
	cat, err := newCatalogSummary(col.AsCatalog())
	if err != nil {
		return nil, err
	}
	cat.Kind = "Collection"
	s := &collectionSummary{catalogSummary: *cat}

	if s.License, err = optional(col.License()); err != nil {
		return nil, err
	}
	if s.Version, err = optional(col.Version()); err != nil {
		return nil, err
	}
	if s.Keywords, err = optional(col.Keywords()); err != nil {
		return nil, err
	}

	providers, err := optional(col.Providers())
	if err != nil {
		return nil, err
	}
	for _, p := range providers {
		name, err := p.Name()
		if err != nil {
			return nil, err
		}
		ps := providerSummary{Name: name}
		if ps.Description, err = optional(p.Description()); err != nil {
			return nil, err
		}
		if ps.Roles, err = optional(p.Roles()); err != nil {
			return nil, err
		}
		if ps.URL, err = optional(p.URL()); err != nil {
			return nil, err
		}
		s.Providers = append(s.Providers, ps)
	}

	extent, err := col.Extent()
	var missing *stac.MissingFieldError
	switch {
	case errors.As(err, &missing):
	case err != nil:
		return nil, err
	default:
		spatial, err := extent.Spatial()
		if err != nil {
			return nil, err
		}
		temporal, err := extent.Temporal()
		if err != nil {
			return nil, err
		}
		s.Extent = &extentSummary{Spatial: spatial, Temporal: temporal}
	}
	return s, nil
}

// newNodeSummary summarizes a child reached from a catalog.
func newNodeSummary(node stac.Node) (any, error) {
	if col, ok := node.(*stac.Collection); ok {
		return newCollectionSummary(col)
	}
	return newCatalogSummary(node.AsCatalog())
}

type itemSummary struct {
	ID         string        `json:"id"                   yaml:"id"`
	Collection string        `json:"collection,omitempty" yaml:"collection,omitempty"`
	Datetime   string        `json:"datetime,omitempty"   yaml:"datetime,omitempty"`
	Bbox       []float64     `json:"bbox,omitempty"       yaml:"bbox,omitempty"`
	Geometry   any           `json:"geometry"             yaml:"geometry"`
	Properties stac.Document `json:"properties"           yaml:"properties"`
	Assets     []string      `json:"assets,omitempty"     yaml:"assets,omitempty"`
	Links      []linkSummary `json:"links,omitempty"      yaml:"links,omitempty"`
}

func newItemSummary(item *stac.Item) (*itemSummary, error) {
	id, err := item.ID()
	if err != nil {
		return nil, err
	}
	s := &itemSummary{ID: id}
	if s.Collection, err = optional(item.Collection()); err != nil {
		return nil, err
	}
	if s.Datetime, err = optional(item.Datetime()); err != nil {
		return nil, err
	}
	if s.Bbox, err = optional(item.Bbox()); err != nil {
		return nil, err
	}
	if s.Geometry, err = optional(item.Geometry()); err != nil {
		return nil, err
	}
	if s.Properties, err = optional(item.Properties()); err != nil {
		return nil, err
	}

	assets, err := optional(item.Assets())
	if err != nil {
		return nil, err
	}
	for key := range assets {
		s.Assets = append(s.Assets, key)
	}
	slices.Sort(s.Assets)

	links, err := optional(item.Links())
	if err != nil {
		return nil, err
	}
	s.Links = newLinkSummaries(links)
	return s, nil
}

type itemCollectionSummary struct {
	Count    int            `json:"count"          yaml:"count"`
	Features []*itemSummary `json:"features"       yaml:"features"`
	Next     string         `json:"next,omitempty" yaml:"next,omitempty"`
}

func newItemCollectionSummary(ic *stac.ItemCollection) (*itemCollectionSummary, error) {
	items, err := ic.Items()
	if err != nil {
		return nil, err
	}
	s := &itemCollectionSummary{Count: len(items), Features: make([]*itemSummary, 0, len(items))}
	for _, item := range items {
		is, err := newItemSummary(item)
		if err != nil {
			return nil, err
		}
		s.Features = append(s.Features, is)
	}
	if _, ok := ic.Document()["links"]; ok {
		next, err := ic.Link(stac.RelNext)
		if err != nil {
			return nil, err
		}
		if next != nil {
			s.Next = next.Href
		}
	}
	return s, nil
}
