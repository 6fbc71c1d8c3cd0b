package pq_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmaze/pq"
)

// QueueSuite exercises the handle-based priority queue.
type QueueSuite struct {
	suite.Suite
	q *pq.Queue[string]
}

func (s *QueueSuite) SetupTest() {
	s.q = pq.New[string](4)
}

// TestEmpty verifies that ExtractMin and Peek fail on an empty queue.
func (s *QueueSuite) TestEmpty() {
	_, _, err := s.q.ExtractMin()
	require.ErrorIs(s.T(), err, pq.ErrEmpty)
	_, _, err = s.q.Peek()
	require.ErrorIs(s.T(), err, pq.ErrEmpty)
	require.Equal(s.T(), 0, s.q.Len())
}

// TestExtractOrder verifies ascending extraction of inserted keys.
func (s *QueueSuite) TestExtractOrder() {
	s.q.Insert(5, "e")
	s.q.Insert(1, "a")
	s.q.Insert(3, "c")
	s.q.Insert(2, "b")
	s.q.Insert(4, "d")
	require.Equal(s.T(), 5, s.q.Len())

	k, v, err := s.q.Peek()
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), k)
	require.Equal(s.T(), "a", v)

	var got []string
	for s.q.Len() > 0 {
		_, v, err := s.q.ExtractMin()
		require.NoError(s.T(), err)
		got = append(got, v)
	}
	require.Equal(s.T(), []string{"a", "b", "c", "d", "e"}, got)
}

// TestDecreaseKeyMovesToFront verifies that a tightened entry is extracted first.
func (s *QueueSuite) TestDecreaseKeyMovesToFront() {
	s.q.Insert(2, "a")
	s.q.Insert(3, "b")
	h := s.q.Insert(10, "z")

	require.NoError(s.T(), s.q.DecreaseKey(h, 1))
	require.Equal(s.T(), int64(1), h.Key())
	require.True(s.T(), h.Queued())

	k, v, err := s.q.ExtractMin()
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), k)
	require.Equal(s.T(), "z", v)
	require.False(s.T(), h.Queued(), "extracted handle must be stale")
}

// TestDecreaseKeyRejectsNonDecrease verifies equal and larger keys are refused.
func (s *QueueSuite) TestDecreaseKeyRejectsNonDecrease() {
	h := s.q.Insert(7, "x")

	require.ErrorIs(s.T(), s.q.DecreaseKey(h, 7), pq.ErrKeyNotSmaller)
	require.ErrorIs(s.T(), s.q.DecreaseKey(h, 9), pq.ErrKeyNotSmaller)
	require.Equal(s.T(), int64(7), h.Key(), "rejected decrease must not change the key")
}

// TestDecreaseKeyStaleHandle verifies that extracted handles are rejected.
func (s *QueueSuite) TestDecreaseKeyStaleHandle() {
	h := s.q.Insert(1, "x")
	_, _, err := s.q.ExtractMin()
	require.NoError(s.T(), err)

	require.ErrorIs(s.T(), s.q.DecreaseKey(h, 0), pq.ErrStaleHandle)
}

// TestDecreaseKeyForeignHandle verifies that handles do not cross queues.
func (s *QueueSuite) TestDecreaseKeyForeignHandle() {
	other := pq.New[string](1)
	h := other.Insert(5, "x")
	s.q.Insert(5, "y")

	require.ErrorIs(s.T(), s.q.DecreaseKey(h, 1), pq.ErrStaleHandle)
	require.NoError(s.T(), other.DecreaseKey(h, 1))
}

// TestDecreaseKeyNilHandle verifies the nil guard.
func (s *QueueSuite) TestDecreaseKeyNilHandle() {
	require.ErrorIs(s.T(), s.q.DecreaseKey(nil, 0), pq.ErrNilHandle)
}

// TestHandleValue verifies handle accessors.
func (s *QueueSuite) TestHandleValue() {
	h := s.q.Insert(4, "v")
	require.Equal(s.T(), "v", h.Value())
	require.Equal(s.T(), int64(4), h.Key())
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueSuite))
}

// TestQueue_RandomDecreaseKeys interleaves inserts and decrease-keys and checks
// that extraction yields every final key in non-decreasing order.
func TestQueue_RandomDecreaseKeys(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	q := pq.New[int](0)

	const n = 500
	handles := make([]*pq.Handle[int], n)
	final := make([]int64, n)
	for i := 0; i < n; i++ {
		k := int64(r.Intn(10_000) + 1000)
		handles[i] = q.Insert(k, i)
		final[i] = k
	}
	for step := 0; step < 2*n; step++ {
		i := r.Intn(n)
		nk := final[i] - int64(r.Intn(50)+1)
		require.NoError(t, q.DecreaseKey(handles[i], nk))
		final[i] = nk
	}

	var keys []int64
	seen := make(map[int]bool, n)
	for q.Len() > 0 {
		k, v, err := q.ExtractMin()
		require.NoError(t, err)
		require.False(t, seen[v], "value %d extracted twice", v)
		seen[v] = true
		require.Equal(t, final[v], k)
		keys = append(keys, k)
	}
	require.Len(t, keys, n)
	require.True(t, sort.SliceIsSorted(keys, func(a, b int) bool { return keys[a] < keys[b] }))

	_, _, err := q.ExtractMin()
	require.True(t, errors.Is(err, pq.ErrEmpty))
}
