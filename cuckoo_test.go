package hashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuckooMap_BulkInsertNoRehash(t *testing.T) {
	// 1000 keys fit under the 0.5 load trigger of a 2000-slot table pair, so
	// every insert must land without exhausting the retry budget.
	m := NewCuckoo[int, int](2000, WithSeedSource[int, int](counterSeeds()))

	for i := 0; i < 1000; i++ {
		require.NoErrorf(t, m.Insert(i, i), "insert %d", i)
	}

	assert.Equal(t, 2000, m.BucketCount()/2)
	require.Equal(t, 1000, m.Len())
	for i := 0; i < 1000; i++ {
		v, err := m.At(i)
		require.NoErrorf(t, err, "key %d", i)
		assert.Equal(t, i, v)
	}
}

func TestCuckooMap_GrowsFromSmall(t *testing.T) {
	m := NewCuckoo[int, int](0, WithSeedSource[int, int](counterSeeds()))

	for i := 0; i < 1000; i++ {
		require.NoError(t, m.Insert(i, i*2))
	}

	assert.Greater(t, m.BucketCount(), 2*DefaultCapacity)
	assert.LessOrEqual(t, m.LoadFactor(), 0.5)
	for i := 0; i < 1000; i++ {
		v, err := m.At(i)
		require.NoError(t, err)
		assert.Equal(t, i*2, v)
	}
}

func TestCuckooMap_EvictionWalkAndRehash(t *testing.T) {
	// hasher1 sends every key to slot 0; hasher2 spreads by key value. Keys
	// 0, 16 and 32 collide in both tables at capacity 16, forcing a full
	// eviction walk and then a rehash. The factory ignores its seeds, so only
	// the capacity doubling (mod 32 separates 16 from 32) can resolve it.
	factory := func(uint64, uint64) Hasher[int] {
		return hasherFunc[int](func(int) uint64 { return 0 })
	}
	spread := func(uint64, uint64) Hasher[int] {
		return hasherFunc[int](func(k int) uint64 { return uint64(k) })
	}

	first := true
	m := NewCuckoo[int, int](16,
		WithSeedSource[int, int](counterSeeds()),
		WithCuckooHasher[int, int](func(s0, s1 uint64) Hasher[int] {
			if first {
				first = false
				return factory(s0, s1)
			}
			first = true
			return spread(s0, s1)
		}),
	)

	require.NoError(t, m.Insert(0, 100))
	require.NoError(t, m.Insert(16, 116))
	require.NoError(t, m.Insert(32, 132))

	assert.Greater(t, m.BucketCount(), 32)
	require.Equal(t, 3, m.Len())
	for _, k := range []int{0, 16, 32} {
		v, err := m.At(k)
		require.NoErrorf(t, err, "key %d", k)
		assert.Equal(t, 100+k, v)
	}
}

func TestCuckooMap_CapacityExhausted(t *testing.T) {
	// Both hashers are constant regardless of seeds, so only two slots are
	// ever reachable and a third distinct key can never be placed. The insert
	// must fail with ErrCapacityExhausted instead of looping.
	constant := func(uint64, uint64) Hasher[int] {
		return hasherFunc[int](func(int) uint64 { return 0 })
	}

	m := NewCuckoo[int, int](16,
		WithSeedSource[int, int](counterSeeds()),
		WithCuckooHasher[int, int](constant),
	)

	require.NoError(t, m.Insert(1, 1))
	require.NoError(t, m.Insert(2, 2))

	err := m.Insert(3, 3)
	assert.ErrorIs(t, err, ErrCapacityExhausted)

	// The failed insert never accounted a placement.
	assert.Equal(t, 2, m.Len())
}

func TestCuckooMap_RemoveIsDirect(t *testing.T) {
	m := NewCuckoo[string, int](16, WithSeedSource[string, int](counterSeeds()))

	require.NoError(t, m.Insert("a", 1))
	require.NoError(t, m.Insert("b", 2))

	v, ok := m.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, m.Contains("a"))
	assert.True(t, m.Contains("b"))

	_, ok = m.Remove("a")
	assert.False(t, ok)
}

func TestCuckooMap_RehashPreservesEntries(t *testing.T) {
	seeds := counterSeeds()
	m := NewCuckoo[int, int](4, WithSeedSource[int, int](seeds))

	// Small initial capacity forces several load-triggered rehashes; nothing
	// may be lost across them.
	for i := 0; i < 200; i++ {
		require.NoError(t, m.Insert(i, i+1000))
	}

	require.Equal(t, 200, m.Len())
	for i := 0; i < 200; i++ {
		v, err := m.At(i)
		require.NoErrorf(t, err, "key %d", i)
		assert.Equal(t, i+1000, v)
	}
}

func TestCuckooMap_DeterministicWithSeedSource(t *testing.T) {
	build := func() *CuckooMap[int, int] {
		m := NewCuckoo[int, int](8, WithSeedSource[int, int](counterSeeds()))
		for i := 0; i < 50; i++ {
			require.NoError(t, m.Insert(i, i))
		}
		return m
	}

	a, b := build(), build()
	require.Equal(t, a.Len(), b.Len())
	require.Equal(t, a.BucketCount(), b.BucketCount())
	for i := 0; i < 50; i++ {
		va, err := a.At(i)
		require.NoError(t, err)
		vb, err := b.At(i)
		require.NoError(t, err)
		assert.Equal(t, va, vb)
	}
}

func TestCuckooMap_DefaultRandomSeeds(t *testing.T) {
	// Without an injected seed source the map seeds itself from the process
	// RNG; behavior must still be correct.
	m := NewCuckoo[int, int](16)

	for i := 0; i < 100; i++ {
		require.NoError(t, m.Insert(i, i))
	}
	require.Equal(t, 100, m.Len())
	for i := 0; i < 100; i++ {
		assert.True(t, m.Contains(i))
	}
}
