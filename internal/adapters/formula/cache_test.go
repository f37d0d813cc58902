package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grid/internal/adapters/formula"
	"go.trai.ch/grid/internal/core/ports"
)

func TestParser_CachesParsedFormulas(t *testing.T) {
	cache := formula.NewCache(8)
	p := formula.NewWithCache(cache)

	first, err := p.Parse("A1+1")
	require.NoError(t, err)
	second, err := p.Parse("A1+1")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())

	hits, misses := cache.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestParser_DoesNotCacheFailures(t *testing.T) {
	cache := formula.NewCache(8)
	p := formula.NewWithCache(cache)

	_, err := p.Parse("1+")
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := formula.NewCache(2)
	p := formula.NewWithCache(cache)

	parse := func(expr string) ports.Formula {
		f, err := p.Parse(expr)
		require.NoError(t, err)
		return f
	}

	a := parse("1")
	parse("2")
	// Touch "1" so that "2" becomes the eviction candidate.
	assert.Same(t, a, parse("1"))
	parse("3")

	assert.Equal(t, 2, cache.Len())

	_, ok := cache.Get("2")
	assert.False(t, ok)
	_, ok = cache.Get("1")
	assert.True(t, ok)
	_, ok = cache.Get("3")
	assert.True(t, ok)
}

func TestNewCache_MinimumCapacity(t *testing.T) {
	cache := formula.NewCache(0)
	p := formula.NewWithCache(cache)

	_, err := p.Parse("1")
	require.NoError(t, err)
	_, err = p.Parse("2")
	require.NoError(t, err)

	assert.Equal(t, 1, cache.Len())
}
