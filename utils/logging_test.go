package utils

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCPLoggerAttributeReplacer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: GCPLoggerAttributeReplacer,
	}))

	logger.Warn("case has no images", "case_id", "abc")

	out := buf.String()
	assert.Contains(t, out, `"message":"case has no images"`)
	assert.Contains(t, out, `"severity":"WARNING"`)
	assert.Contains(t, out, `"case_id":"abc"`)
}

func TestLoggerFromContext(t *testing.T) {
	t.Run("falls back to the default logger", func(t *testing.T) {
		assert.Equal(t, slog.Default(), LoggerFromContext(context.Background()))
	})

	t.Run("returns the stored logger", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := StoreLoggerInContext(context.Background(), logger)
		assert.Same(t, logger, LoggerFromContext(ctx))
	})
}

func TestLocalDevHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLocalDevHandler(&buf))

	logger.Info("deleted image", "path", "cases/abc/1.jpg")

	out := buf.String()
	assert.Contains(t, out, "INFO deleted image")
	assert.Contains(t, out, "path=cases/abc/1.jpg")
}
