package stac

import (
	json "github.com/goccy/go-json"
	gostac "github.com/planetlabs/go-stac"
)

func decodeTyped[T any](doc Document) (*T, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// STAC decodes the backing document into a go-stac Catalog.
func (c *Catalog) STAC() (*gostac.Catalog, error) {
	return decodeTyped[gostac.Catalog](c.doc)
}

// STAC decodes the backing document into a go-stac Collection.
func (c *Collection) STAC() (*gostac.Collection, error) {
	return decodeTyped[gostac.Collection](c.doc)
}

// STAC decodes the backing document into a go-stac Item.
func (i *Item) STAC() (*gostac.Item, error) {
	return decodeTyped[gostac.Item](i.doc)
}
