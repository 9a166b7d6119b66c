// Package config loads CLI settings from defaults, an optional config
// file and STAC_* environment variables, in increasing precedence.
package config

import (
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// DefaultEnvPrefix prefixes every environment variable, e.g. STAC_URL.
	DefaultEnvPrefix = "STAC"

	// Defaults applied when neither file nor environment sets a value.
	DefaultTimeout      = 30 * time.Second
	DefaultOutput       = "json"
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "logfmt"
	DefaultAPIKeyHeader = "X-API-Key"
)

// DefaultConfig is the configuration Load returns when nothing is set.
var DefaultConfig = Config{
	Timeout:      DefaultTimeout,
	Output:       DefaultOutput,
	LogLevel:     DefaultLogLevel,
	LogFormat:    DefaultLogFormat,
	APIKeyHeader: DefaultAPIKeyHeader,
}

// Config holds the CLI settings. Durations accept strings such as "45s".
type Config struct {
	URL          string        `json:"url,omitempty"            mapstructure:"url"`
	Timeout      time.Duration `json:"timeout,omitempty"        mapstructure:"timeout"`
	Validate     bool          `json:"validate,omitempty"       mapstructure:"validate"`
	Token        string        `json:"token,omitempty"          mapstructure:"token"`
	APIKey       string        `json:"api_key,omitempty"        mapstructure:"api_key"`
	APIKeyHeader string        `json:"api_key_header,omitempty" mapstructure:"api_key_header"`
	Output       string        `json:"output,omitempty"         mapstructure:"output"`
	LogLevel     string        `json:"log_level,omitempty"      mapstructure:"log_level"`
	LogFormat    string        `json:"log_format,omitempty"     mapstructure:"log_format"`
}

// Load reads the configuration. When path is non-empty the file must
// exist; its format is inferred from the extension.
func Load(path string) (*Config, error) {
	v := viper.NewWithOptions(
		viper.KeyDelimiter("."),
		viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")),
	)

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	defaults := map[string]any{
		"url":            DefaultConfig.URL,
		"timeout":        DefaultConfig.Timeout,
		"validate":       DefaultConfig.Validate,
		"token":          DefaultConfig.Token,
		"api_key":        DefaultConfig.APIKey,
		"api_key_header": DefaultConfig.APIKeyHeader,
		"output":         DefaultConfig.Output,
		"log_level":      DefaultConfig.LogLevel,
		"log_format":     DefaultConfig.LogFormat,
	}
	for key, value := range defaults {
		_ = v.BindEnv(key)
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	decodeHooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)

	config := &Config{}
	if err := v.Unmarshal(config, viper.DecodeHook(decodeHooks)); err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	return config, nil
}
