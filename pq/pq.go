package pq

import (
	"container/heap"
	"fmt"
)

// Queue is a min-priority queue of V values keyed by int64.
// Ties between equal keys are broken by heap order and are not stable.
type Queue[V any] struct {
	h entries[V]
}

// New returns an empty queue with room for capacity entries.
func New[V any](capacity int) *Queue[V] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[V]{h: make(entries[V], 0, capacity)}
}

// Len returns the number of queued entries.
func (q *Queue[V]) Len() int { return len(q.h) }

// Insert queues value with priority key and returns its handle.
// Complexity: O(log n).
func (q *Queue[V]) Insert(key int64, value V) *Handle[V] {
	h := &Handle[V]{key: key, value: value, owner: &q.h}
	heap.Push(&q.h, h)

	return h
}

// ExtractMin removes and returns the entry with the smallest key.
// The entry's handle becomes stale.
// Returns ErrEmpty if the queue has no entries.
// Complexity: O(log n).
func (q *Queue[V]) ExtractMin() (int64, V, error) {
	if len(q.h) == 0 {
		var zero V
		return 0, zero, ErrEmpty
	}
	h := heap.Pop(&q.h).(*Handle[V])

	return h.key, h.value, nil
}

// Peek returns the smallest entry without removing it.
// Returns ErrEmpty if the queue has no entries.
func (q *Queue[V]) Peek() (int64, V, error) {
	if len(q.h) == 0 {
		var zero V
		return 0, zero, ErrEmpty
	}

	return q.h[0].key, q.h[0].value, nil
}

// DecreaseKey lowers the priority of a queued entry to newKey in place.
//
// Errors:
//   - ErrNilHandle if h is nil.
//   - ErrStaleHandle if h was extracted or issued by another queue.
//   - ErrKeyNotSmaller if newKey >= h.Key().
//
// Complexity: O(log n).
func (q *Queue[V]) DecreaseKey(h *Handle[V], newKey int64) error {
	// 1) Validate the handle against this queue.
	if h == nil {
		return ErrNilHandle
	}
	if h.owner != &q.h || h.index == notQueued || h.index >= len(q.h) || q.h[h.index] != h {
		return ErrStaleHandle
	}

	// 2) Only strict decreases are allowed.
	if newKey >= h.key {
		return fmt.Errorf("%w: have %d, got %d", ErrKeyNotSmaller, h.key, newKey)
	}

	// 3) Lower the key and sift the entry up from its recorded position.
	h.key = newKey
	heap.Fix(&q.h, h.index)

	return nil
}

// entries is the heap.Interface backing a Queue. Every Swap keeps the
// handles' index fields in sync with their slice positions.
type entries[V any] []*Handle[V]

// Len returns the number of entries in the heap.
func (e entries[V]) Len() int { return len(e) }

// Less orders entries by ascending key.
func (e entries[V]) Less(i, j int) bool { return e[i].key < e[j].key }

// Swap exchanges two entries and updates their recorded positions.
func (e entries[V]) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
	e[i].index = i
	e[j].index = j
}

// Push appends x, which must be a *Handle[V]. Called by heap.Push.
func (e *entries[V]) Push(x any) {
	h := x.(*Handle[V])
	h.index = len(*e)
	*e = append(*e, h)
}

// Pop removes the last entry and marks its handle stale. Called by heap.Pop.
func (e *entries[V]) Pop() any {
	old := *e
	n := len(old)
	h := old[n-1]
	old[n-1] = nil // drop the reference for the GC
	h.index = notQueued
	*e = old[:n-1]

	return h
}
