package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosest_ExactMatchIgnoresCase(t *testing.T) {
	idx, ok, err := NewClosest("team fortress 2").Choose(context.Background(), "", labels)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestClosest_PartialMatch(t *testing.T) {
	idx, ok, err := NewClosest("Spider-Man").Choose(context.Background(), "", labels)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestClosest_EmptyQuery(t *testing.T) {
	_, ok, err := NewClosest("   ").Choose(context.Background(), "", labels)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClosest_NoLabels(t *testing.T) {
	_, ok, err := NewClosest("Uplink").Choose(context.Background(), "", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
