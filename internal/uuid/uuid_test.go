package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleUUIDGenerator_New(t *testing.T) {
	gen := NewGoogleUUIDGenerator()

	first := gen.New()
	second := gen.New()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSequenceGenerator_New(t *testing.T) {
	gen := NewSequenceGenerator("use")

	assert.Equal(t, "use-1", gen.New())
	assert.Equal(t, "use-2", gen.New())
	assert.Equal(t, "use-3", gen.New())
}
