// Package pq provides a min-priority queue with stable handles and an
// in-place decrease-key operation.
//
// Overview:
//
//   - Queue[V] is an indexed binary heap over (int64 key, V value) entries,
//     built on container/heap.
//   - Insert returns a *Handle that stays valid while the entry is queued,
//     regardless of how the heap reorganizes itself. Each entry records its
//     own heap position, so DecreaseKey locates it in O(1) and restores
//     the heap order in O(log n).
//   - After ExtractMin removes an entry, its handle is stale and any further
//     DecreaseKey on it fails with ErrStaleHandle.
//
// Why not lazy decrease-key:
//
//   - Pushing duplicates and skipping stale pops keeps up to E entries
//     alive. With handles the heap never holds more than one entry per
//     value, which bounds it by V.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreaseKey: O(log n)
//   - Peek, Len: O(1)
//   - Space: O(n)
//
// Errors (sentinel):
//
//   - ErrEmpty         ExtractMin or Peek on an empty queue.
//   - ErrNilHandle     DecreaseKey called with a nil handle.
//   - ErrStaleHandle   the handle was already extracted or belongs to another queue.
//   - ErrKeyNotSmaller newKey is not strictly smaller than the current key.
//
// Thread safety:
//
//   - A Queue is not safe for concurrent use. Each solve owns its own queue.
package pq
