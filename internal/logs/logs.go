// Package logs configures the process-wide slog logger used for tracing the
// interpreter's phases. The default level is warn, so normal runs produce no
// log output at all.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelWarn)
}

// SetDebug raises the log level so phase-level trace records are emitted.
func SetDebug() {
	level.Set(slog.LevelDebug)
}

// Setup installs the default logger: a text handler on the given writer,
// fanned out with a second text handler appending to logFile when one is
// requested. The returned closer releases the log file.
func Setup(w io.Writer, logFile string) (func(), error) {
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}

	closer := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		closer = func() { f.Close() }
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return closer, nil
}
