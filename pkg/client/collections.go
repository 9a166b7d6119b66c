package client

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-stac-browser/pkg/stac"
)

// Collection fetches the collection document at href, absolute or
// relative to the base URL.
func (c *Client) Collection(ctx context.Context, href string) (*stac.Collection, error) {
	if href == "" {
		return nil, errors.New("collection href cannot be empty")
	}
	doc, err := c.Get(ctx, href, nil)
	if err != nil {
		return nil, err
	}
	return stac.NewCollection(doc, c.ViewOptions()...)
}

// CollectionByID fetches {base}/collections/{id} from a STAC API.
func (c *Client) CollectionByID(ctx context.Context, collectionID string) (*stac.Collection, error) {
	if collectionID == "" {
		return nil, errors.New("collection ID cannot be empty")
	}
	return c.Collection(ctx, "collections/"+url.PathEscape(collectionID))
}

// Collections fetches the first page of {base}/collections and wraps each
// entry. Further pages are not followed.
func (c *Client) Collections(ctx context.Context) ([]*stac.Collection, error) {
	doc, err := c.Get(ctx, "collections", nil)
	if err != nil {
		return nil, err
	}
	v, ok := doc["collections"]
	if !ok {
		return nil, &stac.MissingFieldError{Object: "collections response", Field: "collections"}
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, &stac.FieldTypeError{Object: "collections response", Field: "collections", Want: "array of objects", Got: v}
	}
	cols := make([]*stac.Collection, 0, len(raw))
	for i, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, errors.Errorf("collections[%d] is %T, want object", i, entry)
		}
		col, err := stac.NewCollection(stac.Document(m), c.ViewOptions()...)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}
