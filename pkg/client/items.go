package client

import (
	"context"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-stac-browser/pkg/stac"
)

// Item fetches the item document at href, absolute or relative to the
// base URL.
func (c *Client) Item(ctx context.Context, href string) (*stac.Item, error) {
	if href == "" {
		return nil, errors.New("item href cannot be empty")
	}
	doc, err := c.Get(ctx, href, nil)
	if err != nil {
		return nil, err
	}
	return stac.NewItem(doc, c.ViewOptions()...)
}
