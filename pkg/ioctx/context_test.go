package ioctx

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriters(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, io.Discard, StdoutFromContext(ctx))
	assert.Equal(t, io.Discard, StderrFromContext(ctx))

	var stdout, stderr bytes.Buffer
	ctx = StdoutToContext(ctx, &stdout)
	ctx = StderrToContext(ctx, &stderr)

	_, _ = io.WriteString(StdoutFromContext(ctx), "out")
	_, _ = io.WriteString(StderrFromContext(ctx), "err")
	assert.Equal(t, "out", stdout.String())
	assert.Equal(t, "err", stderr.String())
}

func TestLogger(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, slog.Default(), LoggerFromContext(ctx))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx = LoggerToContext(ctx, logger)
	assert.Same(t, logger, LoggerFromContext(ctx))

	LoggerFromContext(ctx).Info("hello", "n", 42)
	assert.Contains(t, buf.String(), "msg=hello n=42")
}
