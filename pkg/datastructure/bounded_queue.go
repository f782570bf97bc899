package datastructure

import "container/heap"

// BoundedQueue is a fixed-capacity max-priority queue: it keeps the `cap`
// best items under `less` (a reports "a should rank ahead of b"), deduping
// by FeatureKey at insertion and displacing the current worst item on
// overflow. Adapted from a generic container/heap wrapper
// (pkg/priority_queue.go), genericized over an arbitrary item type instead
// of a closed Item union, since the Candidate Store needs the
// same structure for three unrelated payload/ordering pairs.
type BoundedQueue[T any] struct {
	items []T
	cap   int
	less  func(a, b T) bool
	keyFn func(T) FeatureKey
}

// NewBoundedQueue builds a queue with the given capacity, ordering, and
// key extractor for deduplication.
func NewBoundedQueue[T any](capacity int, less func(a, b T) bool, keyFn func(T) FeatureKey) *BoundedQueue[T] {
	q := &BoundedQueue[T]{
		items: make([]T, 0, capacity),
		cap:   capacity,
		less:  less,
		keyFn: keyFn,
	}
	heap.Init(q)
	return q
}

// heap.Interface: items[0] is always the current worst element, since Less
// reports true when i is worse than j (a min-heap of "worseness").
func (q *BoundedQueue[T]) Len() int { return len(q.items) }

func (q *BoundedQueue[T]) Less(i, j int) bool {
	return q.less(q.items[j], q.items[i])
}

func (q *BoundedQueue[T]) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *BoundedQueue[T]) Push(x interface{}) {
	q.items = append(q.items, x.(T))
}

func (q *BoundedQueue[T]) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

// Contains reports whether an item with the given key is already queued.
func (q *BoundedQueue[T]) Contains(key FeatureKey) bool {
	for _, it := range q.items {
		if q.keyFn(it) == key {
			return true
		}
	}
	return false
}

// Insert adds item unless its key already exists. If the queue is full it
// only admits item when item outranks the current worst element, which it
// then displaces. Returns true if item was admitted.
func (q *BoundedQueue[T]) Insert(item T) bool {
	key := q.keyFn(item)
	if q.Contains(key) {
		return false
	}
	if len(q.items) < q.cap {
		heap.Push(q, item)
		return true
	}
	if q.cap == 0 {
		return false
	}
	if q.less(item, q.items[0]) {
		heap.Pop(q)
		heap.Push(q, item)
		return true
	}
	return false
}

// Items returns a snapshot of the queued items in no particular order.
func (q *BoundedQueue[T]) Items() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}
