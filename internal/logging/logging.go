// Package logging builds the go-kit logger used by the CLI.
package logging

import (
	"fmt"
	"io"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatLogfmt  = "logfmt"
	FormatJSON    = "json"
	FormatDiscard = "discard"
)

// New returns a logger writing to w in the given format, dropping entries
// below lvl.
func New(w io.Writer, format, lvl string) (log.Logger, error) {
	var logger log.Logger
	switch format {
	case FormatLogfmt, "":
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	case FormatJSON:
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	case FormatDiscard:
		return log.NewNopLogger(), nil
	default:
		return nil, fmt.Errorf("invalid log format '%s'", format)
	}

	var allow level.Option
	switch lvl {
	case LevelDebug:
		allow = level.AllowDebug()
	case LevelInfo:
		allow = level.AllowInfo()
	case LevelWarn, "":
		allow = level.AllowWarn()
	case LevelError:
		allow = level.AllowError()
	default:
		return nil, fmt.Errorf("invalid log level '%s'", lvl)
	}

	logger = level.NewFilter(logger, allow)
	return log.With(logger, "time", log.DefaultTimestampUTC), nil
}
