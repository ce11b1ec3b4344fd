package log

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARNING"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("unknown"))
}

func TestContextRoundTrip(t *testing.T) {
	logger := New(Config{Level: "debug", ServiceName: "test"})
	ctx := WithLogger(context.Background(), logger)
	assert.Equal(t, logger.GetLevel(), Ctx(ctx).GetLevel())

	// Without a logger in the context, Ctx falls back to the global one.
	assert.Equal(t, L().GetLevel(), Ctx(context.Background()).GetLevel())
}
