package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"

	FormatText = "text"
	FormatJSON = "json"
)

// Options selects and tunes a Logger implementation.
type Options struct {
	Backend string // "slog" or "zap"
	Level   string // "debug", "info", "warn", "error"
	Format  string // "text" or "json"
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// New builds a Logger writing to w.
func New(opts Options, w io.Writer) (Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	switch opts.Backend {
	case BackendSlog, "":
		ho := &slog.HandlerOptions{Level: lvl}
		var h slog.Handler
		switch opts.Format {
		case FormatJSON:
			h = slog.NewJSONHandler(w, ho)
		case FormatText, "":
			h = slog.NewTextHandler(w, ho)
		default:
			return nil, fmt.Errorf("unknown log format %q", opts.Format)
		}
		return NewSlogLogger(slog.New(h)), nil

	case BackendZap:
		enc := zap.NewDevelopmentEncoderConfig()
		var encoder zapcore.Encoder
		switch opts.Format {
		case FormatJSON:
			encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		case FormatText, "":
			encoder = zapcore.NewConsoleEncoder(enc)
		default:
			return nil, fmt.Errorf("unknown log format %q", opts.Format)
		}
		core := zapcore.NewCore(encoder, zapcore.AddSync(w), zapLevel(lvl))
		return NewZapLogger(zap.New(core)), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

// nopLevel sits above every level the Logger interface can emit.
const nopLevel = slog.LevelError + 4

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: nopLevel})))
}

func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l <= slog.LevelDebug:
		return zapcore.DebugLevel
	case l <= slog.LevelInfo:
		return zapcore.InfoLevel
	case l <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
