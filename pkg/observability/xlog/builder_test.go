package xlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xoui/pkg/observability/xrotate"
)

func TestBuilder_TextDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := New().SetOutput(&buf).Build()
	require.NoError(t, err)
	defer func() { require.NoError(t, cleanup()) }()

	ctx := context.Background()
	logger.Debug(ctx, "hidden")
	logger.Info(ctx, "parsed", Count(3), Source("oui.csv"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=parsed")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "src=oui.csv")
	assert.Equal(t, LevelInfo, logger.GetLevel())
}

func TestBuilder_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New().
		SetOutput(&buf).
		SetFormat(" JSON ").
		SetLevelString("debug").
		Build()
	require.NoError(t, err)

	logger.With(Component("xouicsv")).Debug(context.Background(), "skip line", Line(7), Source("oui.csv"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "skip line", rec["msg"])
	assert.Equal(t, "xouicsv", rec[KeyComponent])
	assert.EqualValues(t, 7, rec[KeyLine])
	assert.Equal(t, "oui.csv", rec[KeySource])
}

func TestBuilder_Errors(t *testing.T) {
	_, _, err := New().SetFormat("xml").Build()
	assert.Error(t, err)

	_, _, err = New().SetLevelString("verbose").Build()
	assert.Error(t, err)

	_, _, err = New().SetRotation("").Build()
	assert.ErrorIs(t, err, xrotate.ErrEmptyFilename)

	// 空级别字符串保持默认
	logger, _, err := New().SetLevelString("  ").Build()
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, logger.GetLevel())
}

func TestBuilder_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, cleanup, err := New().SetRotation(path, xrotate.WithCompress(false)).Build()
	require.NoError(t, err)

	logger.Warn(context.Background(), "to file")
	require.NoError(t, cleanup())
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"to file\"")
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).Build()
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, LevelDebug))
	logger.SetLevel(LevelDebug)
	assert.True(t, logger.Enabled(ctx, LevelDebug))

	child := logger.With(Component("child"))
	child.Debug(ctx, "now visible")
	assert.Contains(t, buf.String(), "now visible")

	logger.SetLevel(LevelError)
	buf.Reset()
	child.Warn(ctx, "suppressed")
	assert.Empty(t, buf.String())
}

func TestLogger_AddSource(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).SetAddSource(true).Build()
	require.NoError(t, err)

	logger.Info(context.Background(), "where")
	assert.Contains(t, buf.String(), "builder_test.go")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLogger_OnError(t *testing.T) {
	var got []error
	logger, _, err := New().
		SetOutput(failingWriter{}).
		SetOnError(func(err error) { got = append(got, err) }).
		Build()
	require.NoError(t, err)

	logger.Error(context.Background(), "lost", Err(errors.New("boom")))
	assert.Len(t, got, 1)
	assert.EqualValues(t, 1, ErrorCount(logger))

	panicking, _, err := New().
		SetOutput(failingWriter{}).
		SetOnError(func(error) { panic("callback") }).
		Build()
	require.NoError(t, err)
	assert.NotPanics(t, func() { panicking.Info(context.Background(), "x") })
	assert.EqualValues(t, 2, ErrorCount(panicking))
}

func TestNop(t *testing.T) {
	n := Nop()
	ctx := context.Background()
	n.Debug(ctx, "a")
	n.Info(ctx, "b")
	n.Warn(ctx, "c")
	n.Error(ctx, "d")
	assert.Equal(t, n, n.With(slog.String("k", "v")))
	assert.Equal(t, n, OrNop(nil))
	assert.Zero(t, ErrorCount(n))

	var buf bytes.Buffer
	l, _, err := New().SetOutput(&buf).Build()
	require.NoError(t, err)
	assert.Same(t, l.(*xlogger), OrNop(l).(*xlogger))
}

func TestErr_Nil(t *testing.T) {
	assert.Equal(t, slog.Attr{}, Err(nil))
	assert.Equal(t, "boom", Err(errors.New("boom")).Value.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{" INFO ", LevelInfo},
		{"warning", LevelWarn},
		{"Warn", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, strings.ToUpper(slog.Level(tt.want).String()), got.String())
		})
	}

	var l Level
	require.NoError(t, l.UnmarshalText([]byte("error")))
	assert.Equal(t, LevelError, l)
	assert.Error(t, l.UnmarshalText([]byte("loud")))
}
