package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedQueueOverflowDisplacesWorst(t *testing.T) {
	type item struct {
		key  FeatureKey
		rank int
	}
	less := func(a, b item) bool { return a.rank > b.rank }
	keyFn := func(i item) FeatureKey { return i.key }

	q := NewBoundedQueue(2, less, keyFn)

	require.True(t, q.Insert(item{key: FeatureKey{Offset: 1}, rank: 5}))
	require.True(t, q.Insert(item{key: FeatureKey{Offset: 2}, rank: 3}))
	require.Equal(t, 2, q.Len())

	// worse than both current items: rejected
	assert.False(t, q.Insert(item{key: FeatureKey{Offset: 3}, rank: 1}))
	assert.Equal(t, 2, q.Len())

	// better than the current worst (rank 3): displaces it
	assert.True(t, q.Insert(item{key: FeatureKey{Offset: 4}, rank: 10}))
	assert.Equal(t, 2, q.Len())

	keys := map[FeatureOffset]bool{}
	for _, it := range q.Items() {
		keys[it.key.Offset] = true
	}
	assert.True(t, keys[1])
	assert.True(t, keys[4])
	assert.False(t, keys[2])
}

func TestBoundedQueueDedupByFeatureKey(t *testing.T) {
	type item struct {
		key  FeatureKey
		rank int
	}
	less := func(a, b item) bool { return a.rank > b.rank }
	keyFn := func(i item) FeatureKey { return i.key }

	q := NewBoundedQueue(4, less, keyFn)
	k := FeatureKey{Offset: 7, Tile: 1}

	assert.True(t, q.Insert(item{key: k, rank: 1}))
	assert.False(t, q.Insert(item{key: k, rank: 99}))
	assert.Equal(t, 1, q.Len())
}

func TestBoundedQueueZeroCapacity(t *testing.T) {
	type item struct{ key FeatureKey }
	q := NewBoundedQueue(0, func(a, b item) bool { return false }, func(i item) FeatureKey { return i.key })
	assert.False(t, q.Insert(item{key: FeatureKey{Offset: 1}}))
	assert.Equal(t, 0, q.Len())
}
