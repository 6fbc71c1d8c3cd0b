package pq

import "errors"

// Sentinel errors returned by Queue operations.
var (
	// ErrEmpty indicates ExtractMin or Peek on an empty queue.
	ErrEmpty = errors.New("pq: queue is empty")

	// ErrNilHandle indicates a nil *Handle passed to DecreaseKey.
	ErrNilHandle = errors.New("pq: handle is nil")

	// ErrStaleHandle indicates a handle whose entry is no longer queued
	// (already extracted) or that was issued by a different queue.
	ErrStaleHandle = errors.New("pq: handle is stale")

	// ErrKeyNotSmaller indicates DecreaseKey was asked to raise or keep a key.
	ErrKeyNotSmaller = errors.New("pq: new key is not smaller than current key")
)

// notQueued marks a handle whose entry has left the heap.
const notQueued = -1

// Handle references one queued entry. It is returned by Insert and accepted
// by DecreaseKey. The zero value is not usable.
type Handle[V any] struct {
	key   int64
	value V
	index int         // position in the heap slice, or notQueued
	owner *entries[V] // heap that issued the handle
}

// Key returns the entry's current priority.
func (h *Handle[V]) Key() int64 { return h.key }

// Value returns the entry's payload.
func (h *Handle[V]) Value() V { return h.value }

// Queued reports whether the entry is still in its queue.
func (h *Handle[V]) Queued() bool { return h.index != notQueued }
