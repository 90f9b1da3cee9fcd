package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// NewLogger returns a logfmt logger writing to w that drops records below lvl
func NewLogger(w io.Writer, lvl string) (log.Logger, error) {
	var allow level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		allow = level.AllowDebug()
	case "", "info":
		allow = level.AllowInfo()
	case "warn", "warning":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	case "none", "off":
		allow = level.AllowNone()
	default:
		return nil, fmt.Errorf("invalid log level %q (expected debug, info, warn, error or none)", lvl)
	}

	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = level.NewFilter(l, allow)
	l = log.With(l, "ts", log.DefaultTimestampUTC)
	return l, nil
}
