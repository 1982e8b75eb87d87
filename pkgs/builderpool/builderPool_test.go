package builderpool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	builder := Get()
	require.NotNil(t, builder)
	assert.Equal(t, 0, builder.Len())
	Put(builder)
}

func TestGetWithSize(t *testing.T) {
	builder := GetWithSize(128)
	require.NotNil(t, builder)
	assert.Equal(t, 0, builder.Len())
	assert.GreaterOrEqual(t, builder.Cap(), 128)
	Put(builder)
}

func TestPutResets(t *testing.T) {
	builder := Get()
	builder.WriteString("https://example.com")
	Put(builder)

	reused := Get()
	assert.Equal(t, 0, reused.Len())
	Put(reused)
}

func TestPutIgnoresNilAndLarge(t *testing.T) {
	large := new(strings.Builder)
	large.Grow(maxPooledCap + 1)
	large.WriteString("data")

	assert.NotPanics(t, func() {
		Put(nil, large)
	})
	// Large builders are not reset since they never go back into the pool
	assert.Equal(t, 4, large.Len())
}
