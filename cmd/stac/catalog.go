package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	stacclient "github.com/robert-malhotra/go-stac-browser/pkg/client"
	"github.com/robert-malhotra/go-stac-browser/pkg/stac"
)

func newCatalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Show the root catalog",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			cat, err := client.Catalog(ctx)
			if err != nil {
				return err
			}
			summary, err := newCatalogSummary(cat)
			if err != nil {
				return err
			}
			return render(cmd.Root().Writer, cfg.Output, summary)
		},
	}
}

func newChildrenCommand() *cli.Command {
	return &cli.Command{
		Name:      "children",
		Usage:     "List the children of a catalog",
		ArgsUsage: "[href]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			var parent *stac.Catalog
			if href := cmd.Args().First(); href != "" {
				node, err := client.Node(ctx, href)
				if err != nil {
					return err
				}
				parent = node.AsCatalog()
			} else if parent, err = client.Catalog(ctx); err != nil {
				return err
			}

			children, err := parent.Children(ctx)
			if err != nil {
				return err
			}
			out := make([]any, 0, len(children))
			for _, child := range children {
				s, err := newNodeSummary(child)
				if err != nil {
					return err
				}
				out = append(out, s)
			}
			return render(cmd.Root().Writer, cfg.Output, out)
		},
	}
}

func newCollectionCommand() *cli.Command {
	return &cli.Command{
		Name:      "collection",
		Usage:     "Show a collection by href or ID",
		ArgsUsage: "<href|id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ref := cmd.Args().First()
			if ref == "" {
				return fmt.Errorf("collection href or ID is required")
			}
			client, cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			col, err := fetchCollection(ctx, client, ref)
			if err != nil {
				return err
			}
			summary, err := newCollectionSummary(col)
			if err != nil {
				return err
			}
			return render(cmd.Root().Writer, cfg.Output, summary)
		},
	}
}

// fetchCollection treats anything that looks like a path or URL as an
// href and everything else as a collection ID.
func fetchCollection(ctx context.Context, client *stacclient.Client, ref string) (*stac.Collection, error) {
	if strings.Contains(ref, "/") || strings.HasSuffix(ref, ".json") {
		return client.Collection(ctx, ref)
	}
	return client.CollectionByID(ctx, ref)
}
