package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-stac-browser/internal/config"
	"github.com/robert-malhotra/go-stac-browser/internal/logging"
	stacclient "github.com/robert-malhotra/go-stac-browser/pkg/client"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a config file (yaml, json or toml)",
	}
	baseURLFlag = &cli.StringFlag{
		Name:    "url",
		Aliases: []string{"u"},
		Usage:   "STAC API or root catalog URL (env STAC_URL)",
	}
	timeoutFlag = &cli.DurationFlag{
		Name:    "timeout",
		Aliases: []string{"t"},
		Usage:   "HTTP client timeout (e.g. 30s, 1m)",
		Value:   config.DefaultTimeout,
	}
	validateFlag = &cli.BoolFlag{
		Name:  "validate",
		Usage: "Validate every fetched document against its bundled JSON Schema",
	}
	tokenFlag = &cli.StringFlag{
		Name:  "token",
		Usage: "Bearer token sent with every request",
	}
	apiKeyFlag = &cli.StringFlag{
		Name:  "api-key",
		Usage: "API key sent with every request",
	}
	apiKeyHeaderFlag = &cli.StringFlag{
		Name:  "api-key-header",
		Usage: "Header carrying the API key",
		Value: config.DefaultAPIKeyHeader,
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output format (json or yaml)",
		Value:   config.DefaultOutput,
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (debug, info, warn, error)",
		Value: config.DefaultLogLevel,
	}
	logFormatFlag = &cli.StringFlag{
		Name:  "log-format",
		Usage: "Log format (logfmt, json, discard)",
		Value: config.DefaultLogFormat,
	}
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "stac",
		Usage:     "Browse SpatioTemporal Asset Catalogs",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			configFlag, baseURLFlag, timeoutFlag, validateFlag, tokenFlag,
			apiKeyFlag, apiKeyHeaderFlag, outputFlag, logLevelFlag, logFormatFlag,
		},
		Commands: []*cli.Command{
			newCatalogCommand(),
			newChildrenCommand(),
			newCollectionCommand(),
			newItemsCommand(),
			newSchemasCommand(),
		},
	}
}

// settings merges config file and environment values with flags set on
// the command line; explicit flags win.
func settings(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String(configFlag.Name))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet(baseURLFlag.Name) {
		cfg.URL = cmd.String(baseURLFlag.Name)
	}
	if cmd.IsSet(timeoutFlag.Name) {
		cfg.Timeout = cmd.Duration(timeoutFlag.Name)
	}
	if cmd.IsSet(validateFlag.Name) {
		cfg.Validate = cmd.Bool(validateFlag.Name)
	}
	if cmd.IsSet(tokenFlag.Name) {
		cfg.Token = cmd.String(tokenFlag.Name)
	}
	if cmd.IsSet(apiKeyFlag.Name) {
		cfg.APIKey = cmd.String(apiKeyFlag.Name)
	}
	if cmd.IsSet(apiKeyHeaderFlag.Name) {
		cfg.APIKeyHeader = cmd.String(apiKeyHeaderFlag.Name)
	}
	if cmd.IsSet(outputFlag.Name) {
		cfg.Output = cmd.String(outputFlag.Name)
	}
	if cmd.IsSet(logLevelFlag.Name) {
		cfg.LogLevel = cmd.String(logLevelFlag.Name)
	}
	if cmd.IsSet(logFormatFlag.Name) {
		cfg.LogFormat = cmd.String(logFormatFlag.Name)
	}
	return cfg, nil
}

func newClient(cmd *cli.Command, cfg *config.Config) (*stacclient.Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("flag --url or STAC_URL is required")
	}

	logger, err := logging.New(cmd.Root().ErrWriter, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := []stacclient.ClientOption{
		stacclient.WithTimeout(cfg.Timeout),
		stacclient.WithValidation(cfg.Validate),
		stacclient.WithLogger(log.With(logger, "component", "client")),
		stacclient.WithHeader("User-Agent", "stac-browser/"+version),
	}
	if cfg.Token != "" {
		opts = append(opts, stacclient.WithMiddleware(stacclient.BearerToken(cfg.Token)))
	}
	if cfg.APIKey != "" {
		opts = append(opts, stacclient.WithMiddleware(stacclient.APIKey(cfg.APIKeyHeader, cfg.APIKey)))
	}

	return stacclient.NewClient(cfg.URL, opts...)
}

const version = "0.1.0"

// setup is shared by every network command.
func setup(cmd *cli.Command) (*stacclient.Client, *config.Config, error) {
	cfg, err := settings(cmd)
	if err != nil {
		return nil, nil, err
	}
	client, err := newClient(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}
