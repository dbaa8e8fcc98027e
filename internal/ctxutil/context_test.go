package ctxutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithChatID(context.Background(), "U1234")
	assert.Equal(t, "U1234", GetChatID(ctx))
}

func TestRequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "evt-1")
	assert.Equal(t, "evt-1", GetRequestID(ctx))
}

func TestMissingValuesReturnEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, GetChatID(ctx))
	assert.Empty(t, GetRequestID(ctx))
}
