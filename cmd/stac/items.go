package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-stac-browser/pkg/stac"
)

var (
	itemIDFlag = &cli.StringFlag{
		Name:  "id",
		Usage: "Fetch a single item by ID",
	}
	filterFlag = &cli.StringSliceFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "Query parameter sent to the items endpoint (key=value, repeatable)",
	}
	pagesFlag = &cli.IntFlag{
		Name:  "pages",
		Usage: "Number of pages to fetch by following next links",
		Value: 1,
	}
)

func newItemsCommand() *cli.Command {
	return &cli.Command{
		Name:      "items",
		Usage:     "Fetch items of a collection",
		ArgsUsage: "<href|id>",
		Flags:     []cli.Flag{itemIDFlag, filterFlag, pagesFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ref := cmd.Args().First()
			if ref == "" {
				return fmt.Errorf("collection href or ID is required")
			}
			filter, err := parseFilter(cmd.StringSlice(filterFlag.Name))
			if err != nil {
				return err
			}
			pages := cmd.Int(pagesFlag.Name)
			if pages < 1 {
				return fmt.Errorf("--pages must be at least 1")
			}

			client, cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			col, err := fetchCollection(ctx, client, ref)
			if err != nil {
				return err
			}

			result, err := col.GetItems(ctx, cmd.String(itemIDFlag.Name), filter)
			if err != nil {
				return err
			}

			switch r := result.(type) {
			case *stac.Item:
				summary, err := newItemSummary(r)
				if err != nil {
					return err
				}
				return render(cmd.Root().Writer, cfg.Output, summary)
			case *stac.ItemCollection:
				summary, err := collectPages(ctx, r, pages)
				if err != nil {
					return err
				}
				return render(cmd.Root().Writer, cfg.Output, summary)
			default:
				return fmt.Errorf("unexpected items result %T", result)
			}
		},
	}
}

// collectPages merges up to pages item collections, starting at first.
func collectPages(ctx context.Context, first *stac.ItemCollection, pages int) (*itemCollectionSummary, error) {
	merged, err := newItemCollectionSummary(first)
	if err != nil {
		return nil, err
	}
	page := first
	for i := 1; i < pages && merged.Next != ""; i++ {
		if page, err = page.Next(ctx); err != nil {
			return nil, err
		}
		if page == nil {
			break
		}
		s, err := newItemCollectionSummary(page)
		if err != nil {
			return nil, err
		}
		merged.Features = append(merged.Features, s.Features...)
		merged.Count += s.Count
		merged.Next = s.Next
	}
	return merged, nil
}

// parseFilter turns repeated key=value flags into query parameters.
func parseFilter(pairs []string) (url.Values, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	filter := url.Values{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q (want key=value)", pair)
		}
		filter.Add(key, value)
	}
	return filter, nil
}
