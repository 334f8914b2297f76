package starfield

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	for _, n := range []int{0, 1, 7, DefaultCount, 1000} {
		first := Generate(n)
		second := Generate(n)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("Generate(%d) differs between calls (-first +second):\n%s", n, diff)
		}
		assert.Len(t, first, n)
	}
}

func TestGenerateEmpty(t *testing.T) {
	assert.Empty(t, Generate(0))
	assert.Empty(t, Generate(-3))
	assert.NotNil(t, Generate(0))
}

func TestGenerateBounds(t *testing.T) {
	for _, s := range Generate(2000) {
		assert.GreaterOrEqual(t, s.X, 0.0)
		assert.Less(t, s.X, 100.0)
		assert.GreaterOrEqual(t, s.Y, 0.0)
		assert.Less(t, s.Y, 100.0)
		assert.GreaterOrEqual(t, s.Size, MinSize)
		assert.Less(t, s.Size, MaxSize)
		assert.GreaterOrEqual(t, s.Opacity, MinOpacity)
		assert.Less(t, s.Opacity, MaxOpacity)
		assert.GreaterOrEqual(t, s.Duration, MinDuration)
		assert.Less(t, s.Duration, MaxDuration)
		assert.GreaterOrEqual(t, s.Delay, 0.0)
		assert.Less(t, s.Delay, MaxDelay)
	}
}

func TestGeneratePrefixStable(t *testing.T) {
	short := Generate(10)
	long := Generate(50)
	require.Len(t, long, 50)
	assert.Equal(t, short, long[:10])
}

func TestAtKnownValues(t *testing.T) {
	s := At(0)
	assert.Equal(t, 0, s.ID)
	assert.Equal(t, 0.0, s.X)
	assert.Equal(t, 0.0, s.Y)
	assert.InDelta(t, 1.86, s.Size, 1e-9)
	assert.InDelta(t, 0.452, s.Opacity, 1e-9)
	assert.InDelta(t, 4.28, s.Duration, 1e-9)
	assert.InDelta(t, 1.59, s.Delay, 1e-9)

	s = At(1)
	assert.Equal(t, 67.0, s.X)
	assert.Equal(t, 21.0, s.Y)
}
