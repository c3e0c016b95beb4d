package main

import (
	"fmt"
	"log/slog"
	"os"
)

var (
	theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
)

// logSink forwards compile advisories to theLog.
type logSink struct{}

func (logSink) Advise(format string, args ...any) {
	theLog.Warn("advice", "msg", fmt.Sprintf(format, args...))
}
