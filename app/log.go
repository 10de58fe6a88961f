package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/werk/internal/config"
)

const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
)

// newLogger returns a JSON logger that writes to w.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// setupLogging installs a default logger backed by a rotating log file. The
// returned closer flushes and closes the file.
func setupLogging(path string, debug bool) io.Closer {
	if _, exists := os.LookupEnv(envDebug); exists {
		debug = true
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
	}

	slog.SetDefault(newLogger(w, debug))

	return w
}

// dumpConfig logs the effective configuration at debug level.
func dumpConfig(cfg *config.Config) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	slog.Debug("configuration loaded", slog.String("config", spew.Sdump(cfg)))
}
