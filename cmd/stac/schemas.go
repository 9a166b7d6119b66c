package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-stac-browser/pkg/schema"
)

func newSchemasCommand() *cli.Command {
	return &cli.Command{
		Name:  "schemas",
		Usage: "List the bundled JSON Schemas",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := settings(cmd)
			if err != nil {
				return err
			}
			versions, err := schema.Default().Versions()
			if err != nil {
				return err
			}
			return render(cmd.Root().Writer, cfg.Output, versions)
		},
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Print one bundled schema",
				ArgsUsage: "<version> <type>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 2 {
						return fmt.Errorf("usage: schemas show <version> <type>")
					}
					doc, err := schema.Load(cmd.Args().Get(0), cmd.Args().Get(1))
					if err != nil {
						return err
					}
					cfg, err := settings(cmd)
					if err != nil {
						return err
					}
					return render(cmd.Root().Writer, cfg.Output, doc)
				},
			},
		},
	}
}
