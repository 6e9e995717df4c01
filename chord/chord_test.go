package chord

import (
	"context"
	"testing"

	"github.com/Quarmire/chord/errs"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand hands out ids in order and records how many were drawn.
type scriptedRand struct {
	ids   []uint64
	drawn int
}

func (s *scriptedRand) Uint64N(n uint64) uint64 {
	id := s.ids[s.drawn%len(s.ids)] % n
	s.drawn++
	return id
}

func newTestChord(t *testing.T, maxID uint64, ids ...uint64) *Chord {
	t.Helper()
	c := NewChord(maxID, &scriptedRand{ids: ids}, logr.Discard())
	for range ids {
		_, err := c.AddNode(context.Background())
		require.NoError(t, err)
	}
	return c
}

func Test_Search_Wraparound(t *testing.T) {
	c := newTestChord(t, 64, 20, 5, 50)

	var testTable = []struct {
		key    uint64
		nodeId uint64
	}{
		{key: 60, nodeId: 5},
		{key: 63, nodeId: 5},
		{key: 0, nodeId: 5},
		{key: 5, nodeId: 5},
		{key: 6, nodeId: 20},
		{key: 20, nodeId: 20},
		{key: 21, nodeId: 50},
		{key: 50, nodeId: 50},
		{key: 51, nodeId: 5},
	}

	for _, tt := range testTable {
		n, err := c.Search(context.Background(), tt.key)
		require.NoError(t, err)
		assert.Equalf(t, tt.nodeId, n.ID, "search(%d)", tt.key)
	}
}

func Test_Search_EmptyRingTakesPrecedence(t *testing.T) {
	c := NewChord(64, NewRand(1), logr.Discard())

	for _, key := range []uint64{0, 10, 63, 64, 1 << 40} {
		_, err := c.Search(context.Background(), key)
		assert.ErrorIs(t, err, errs.NoNodesExistError)
	}
}

func Test_Search_OutOfRange(t *testing.T) {
	c := newTestChord(t, 64, 7)

	for _, key := range []uint64{64, 65, 1000, ^uint64(0)} {
		_, err := c.Search(context.Background(), key)
		assert.ErrorIs(t, err, errs.OutOfRangeError)
	}
}

func Test_AddNode_FillsRingThenFails(t *testing.T) {
	const maxID = 16
	c := NewChord(maxID, NewRand(42), logr.Discard())

	seen := map[uint64]struct{}{}
	for i := 0; i < maxID; i++ {
		id, err := c.AddNode(context.Background())
		require.NoError(t, err)
		require.Less(t, id, uint64(maxID))
		_, dup := seen[id]
		require.Falsef(t, dup, "id %d handed out twice", id)
		seen[id] = struct{}{}
	}

	_, err := c.AddNode(context.Background())
	assert.ErrorIs(t, err, errs.RingIsFullError)
	assert.Equal(t, maxID, c.Len())

	// still usable after the error
	require.NoError(t, c.DeleteNode(context.Background(), 3))
	id, err := c.AddNode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), id)
}

func Test_AddNode_ResamplesOnCollision(t *testing.T) {
	r := &scriptedRand{ids: []uint64{9, 9, 9, 12}}
	c := NewChord(64, r, logr.Discard())

	first, err := c.AddNode(context.Background())
	require.NoError(t, err)
	second, err := c.AddNode(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(9), first)
	assert.Equal(t, uint64(12), second)
	assert.Equal(t, 4, r.drawn)
}

func Test_AddNode_SameSeedSameIds(t *testing.T) {
	a := NewChord(64, NewRand(7), logr.Discard())
	b := NewChord(64, NewRand(7), logr.Discard())

	for i := 0; i < 20; i++ {
		x, err := a.AddNode(context.Background())
		require.NoError(t, err)
		y, err := b.AddNode(context.Background())
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func Test_AddNode_ThenSearchFindsIt(t *testing.T) {
	c := NewChord(64, NewRand(99), logr.Discard())

	for i := 0; i < 30; i++ {
		id, err := c.AddNode(context.Background())
		require.NoError(t, err)

		n, err := c.Search(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, n.ID)
	}
}

func Test_DeleteNode(t *testing.T) {
	c := newTestChord(t, 64, 5, 20, 50)

	require.NoError(t, c.DeleteNode(context.Background(), 20))

	ring, err := c.GetRing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint64{5, 50}, ring)

	assert.ErrorIs(t, c.DeleteNode(context.Background(), 20), errs.NodeDoesNotExistError)
	assert.ErrorIs(t, c.DeleteNode(context.Background(), 1<<33), errs.NodeDoesNotExistError)

	n, err := c.Search(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), n.ID)
}

func Test_DeleteNode_LastMemberEmptiesRing(t *testing.T) {
	c := newTestChord(t, 64, 33)

	require.NoError(t, c.DeleteNode(context.Background(), 33))
	_, err := c.Search(context.Background(), 33)
	assert.ErrorIs(t, err, errs.NoNodesExistError)
	assert.Equal(t, 0, c.Len())
}

func Test_GetRing_SnapshotIsStable(t *testing.T) {
	c := newTestChord(t, 64, 40, 2, 17)

	snapshot, err := c.GetRing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 17, 40}, snapshot)

	require.NoError(t, c.DeleteNode(context.Background(), 17))
	snapshot[0] = 99

	assert.Equal(t, []uint64{99, 17, 40}, snapshot)
	ring, _ := c.GetRing(context.Background())
	assert.Equal(t, []uint64{2, 40}, ring)
}

func Test_Predecessor(t *testing.T) {
	c := newTestChord(t, 64, 5, 20, 50)

	var testTable = []struct {
		id            uint64
		predecessorId uint64
	}{
		{id: 5, predecessorId: 50},
		{id: 20, predecessorId: 5},
		{id: 50, predecessorId: 20},
	}

	for _, tt := range testTable {
		p, err := c.Predecessor(context.Background(), tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.predecessorId, p.ID)
	}

	_, err := c.Predecessor(context.Background(), 6)
	assert.ErrorIs(t, err, errs.NodeDoesNotExistError)
}

func Test_Predecessor_ZeroAndSingle(t *testing.T) {
	c := newTestChord(t, 64, 0)

	p, err := c.Predecessor(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), p.ID)

	empty := NewChord(64, NewRand(1), logr.Discard())
	_, err = empty.Predecessor(context.Background(), 0)
	assert.ErrorIs(t, err, errs.NoNodesExistError)
}

func Test_Dump(t *testing.T) {
	c := newTestChord(t, 64, 5, 20, 50)

	dump := c.Dump()
	assert.Contains(t, dump, "ring size=64 members=3")
	assert.Contains(t, dump, "node 5 owns (50, 5] span=19")
	assert.Contains(t, dump, "node 20 owns (5, 20] span=15")
}

func Test_NewChord_Defaults(t *testing.T) {
	c := NewChord(0, nil, logr.Discard())
	assert.Equal(t, uint64(64), c.MaxID())

	id, err := c.AddNode(context.Background())
	require.NoError(t, err)
	assert.Less(t, id, uint64(64))
}
