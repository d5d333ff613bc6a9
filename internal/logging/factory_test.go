package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_Backends(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{name: "slog text", opts: Options{Backend: BackendSlog, Level: "info", Format: FormatText}, want: []string{"msg=hello", "user=alice"}},
		{name: "slog json", opts: Options{Backend: BackendSlog, Level: "info", Format: FormatJSON}, want: []string{`"msg":"hello"`, `"user":"alice"`}},
		{name: "zap json", opts: Options{Backend: BackendZap, Level: "info", Format: FormatJSON}, want: []string{`"msg":"hello"`, `"user":"alice"`}},
		{name: "zap console", opts: Options{Backend: BackendZap, Level: "info", Format: FormatText}, want: []string{"hello", "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(tt.opts, &buf)
			require.NoError(t, err)

			l.Debug(context.Background(), "hidden")
			l.With("user", "alice").Info(context.Background(), "hello")

			out := buf.String()
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			assert.NotContains(t, out, "hidden")
		})
	}
}

func TestNew_Errors(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(Options{Backend: "logrus", Level: "info"}, &buf)
	assert.Error(t, err)

	_, err = New(Options{Backend: BackendSlog, Level: "info", Format: "xml"}, &buf)
	assert.Error(t, err)

	_, err = New(Options{Backend: BackendZap, Level: "nope"}, &buf)
	assert.Error(t, err)
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	ctx := context.TODO()
	l.Debug(ctx, "x")
	l.Info(ctx, "x")
	l.With("a", 1).Warn(ctx, "x")
	l.Error(ctx, "x")
}
