package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"galerija/internal/config"
)

const (
	logFileName       = "galerija.log"
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 5
)

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	Console     io.Writer
	FilePath    string
	MaxAgeDays  int
	SessionID   string
	Development bool
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	writer, err := openWriter(opts)
	if err != nil {
		return nil, err
	}

	addSource := opts.Development || level <= slog.LevelDebug

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = newJSONHandler(writer, levelVar, addSource)
	case "console":
		handler = newConsoleHandler(writer, levelVar, addSource)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	if id := strings.TrimSpace(opts.SessionID); id != "" {
		handler = handler.WithAttrs([]slog.Attr{String(FieldSessionID, id)})
	}
	return slog.New(handler), nil
}

// NewFromConfig creates a logger using application config. Console output goes
// to console (stderr when nil) and a rotated copy is kept in the log directory.
// Every record carries a fresh session_id.
func NewFromConfig(cfg *config.Config, console io.Writer, verbose bool) (*slog.Logger, error) {
	opts := Options{
		Level:     "info",
		Format:    "console",
		Console:   console,
		SessionID: NewSessionID(),
	}
	if cfg != nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
		opts.MaxAgeDays = cfg.Logging.RetentionDays
		if dir := strings.TrimSpace(cfg.Paths.LogDir); dir != "" {
			opts.FilePath = filepath.Join(dir, logFileName)
		}
	}
	if verbose {
		opts.Level = "debug"
	}
	return New(opts)
}

// NewSessionID returns a random identifier for one CLI invocation.
func NewSessionID() string {
	return uuid.NewString()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openWriter(opts Options) (io.Writer, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	path := strings.TrimSpace(opts.FilePath)
	if path == "" {
		return console, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     max(opts.MaxAgeDays, 0),
	}
	return io.MultiWriter(console, file), nil
}

func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	opts := slog.HandlerOptions{
		Level:     lvl,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.TimeKey:
				attr.Key = "ts"
				if attr.Value.Kind() == slog.KindTime {
					attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339))
				}
			case slog.LevelKey:
				attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
			case slog.SourceKey:
				if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
					attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
				}
			}
			return attr
		},
	}
	return slog.NewJSONHandler(w, &opts)
}
