package requestid

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	_, ok = FromContext(WithID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := FromContext(WithID(context.Background(), "req-1"))
	require.True(t, ok)
	assert.Equal(t, "req-1", id)
}

func TestPropagate(t *testing.T) {
	ctx := WithID(context.Background(), "req-7")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://backend/property/1", nil)
	require.NoError(t, err)

	Propagate(req)
	assert.Equal(t, "req-7", req.Header.Get(Header))

	bare, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://backend/property/1", nil)
	require.NoError(t, err)

	Propagate(bare)
	assert.Empty(t, bare.Header.Get(Header))
}
