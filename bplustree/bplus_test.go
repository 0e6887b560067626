package bplus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SlotDB/trace"
	"SlotDB/types"
)

func newTree(t *testing.T, cfg Config, opts ...Option) *BPlusTree {
	t.Helper()
	tree, err := NewBPlusTree(cfg, opts...)
	require.NoError(t, err)
	return tree
}

func strs(keys [][]byte) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

func leafStrs(tree *BPlusTree) [][]string {
	var out [][]string
	for _, leaf := range tree.Leaves() {
		out = append(out, strs(leaf))
	}
	return out
}

func rootKeys(tree *BPlusTree) []string {
	root, _ := tree.Node(tree.Root())
	return strs(root.Keys())
}

func addr(b uint32, s uint16) types.Address {
	return types.Address{BlockID: b, SlotIndex: s}
}

// insertScenarioA inserts 5,3,8,1 with p_leaf=2.
func insertScenarioA(t *testing.T, tree *BPlusTree) {
	t.Helper()
	for i, k := range []string{"5", "3", "8", "1"} {
		tree.Insert([]byte(k), addr(0, uint16(i)))
		require.NoError(t, tree.Check())
	}
}

func TestNewBPlusTree(t *testing.T) {
	tree := newTree(t, DefaultConfig())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 1, tree.Height())
	assert.Equal(t, 1, tree.NumNodes())
	assert.Empty(t, tree.LeafChain())
	assert.NoError(t, tree.Check())

	root, ok := tree.Node(tree.Root())
	require.True(t, ok)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, int64(0), root.Parent())
}

func TestInvalidOrder(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"internal too small", Config{PInternal: 2, PLeaf: 2}},
		{"leaf zero", Config{PInternal: 3, PLeaf: 0}},
		{"negative", Config{PInternal: -1, PLeaf: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBPlusTree(tc.cfg)
			assert.ErrorIs(t, err, ErrInvalidOrder)
		})
	}

	_, err := NewBPlusTree(Config{PInternal: MinPInternal, PLeaf: MinPLeaf})
	assert.NoError(t, err)
}

func TestScenarioSplit(t *testing.T) {
	rec := &trace.Recorder{}
	tree := newTree(t, DefaultConfig(), WithTracer(rec))
	insertScenarioA(t, tree)

	root, _ := tree.Node(tree.Root())
	assert.Equal(t, NodeInternal, root.Type())
	assert.Equal(t, []string{"5"}, rootKeys(tree))
	assert.Equal(t, [][]string{{"1", "3"}, {"5", "8"}}, leafStrs(tree))
	assert.Equal(t, []string{"1", "3", "5", "8"}, strs(tree.LeafChain()))
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, []trace.Kind{trace.LeafSplit, trace.RootGrow}, rec.Kinds())

	a, ok := tree.Search([]byte("8"))
	require.True(t, ok)
	assert.Equal(t, addr(0, 2), a)
}

func TestScenarioDeleteAtMinimum(t *testing.T) {
	tree := newTree(t, DefaultConfig())
	insertScenarioA(t, tree)

	assert.True(t, tree.Delete([]byte("8")))
	require.NoError(t, tree.Check())
	assert.Equal(t, []string{"5"}, rootKeys(tree))
	assert.Equal(t, [][]string{{"1", "3"}, {"5"}}, leafStrs(tree))
}

func TestScenarioBorrowLeft(t *testing.T) {
	rec := &trace.Recorder{}
	tree := newTree(t, DefaultConfig(), WithTracer(rec))
	insertScenarioA(t, tree)
	require.True(t, tree.Delete([]byte("8")))
	rec.Reset()

	assert.True(t, tree.Delete([]byte("5")))
	require.NoError(t, tree.Check())
	assert.Equal(t, []string{"3"}, rootKeys(tree))
	assert.Equal(t, [][]string{{"1"}, {"3"}}, leafStrs(tree))
	assert.Equal(t, []string{"1", "3"}, strs(tree.LeafChain()))
	assert.Equal(t, []trace.Kind{trace.BorrowLeft}, rec.Kinds())

	a, ok := tree.Search([]byte("3"))
	require.True(t, ok)
	assert.Equal(t, addr(0, 1), a)
}

func TestDeleteAbsentIsIdempotent(t *testing.T) {
	rec := &trace.Recorder{}
	tree := newTree(t, DefaultConfig(), WithTracer(rec))
	insertScenarioA(t, tree)
	before := tree.LevelOrder()
	rec.Reset()

	for i := 0; i < 3; i++ {
		assert.False(t, tree.Delete([]byte("42")))
	}
	assert.Equal(t, before, tree.LevelOrder())
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, 3, rec.Count(trace.KeyNotFound))

	empty := newTree(t, DefaultConfig())
	assert.False(t, empty.Delete([]byte("x")))
	assert.NoError(t, empty.Check())
}

func TestInsertUpsert(t *testing.T) {
	tree := newTree(t, DefaultConfig())
	insertScenarioA(t, tree)
	nodes := tree.NumNodes()

	tree.Insert([]byte("3"), addr(7, 1))
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, nodes, tree.NumNodes())
	a, ok := tree.Search([]byte("3"))
	require.True(t, ok)
	assert.Equal(t, addr(7, 1), a)
}

func TestInsertCopiesKey(t *testing.T) {
	tree := newTree(t, DefaultConfig())
	key := []byte("abc")
	tree.Insert(key, addr(0, 0))
	key[0] = 'z'

	assert.True(t, tree.Contains([]byte("abc")))
	assert.False(t, tree.Contains([]byte("zbc")))
}

func TestRootLeafEmpties(t *testing.T) {
	tree := newTree(t, DefaultConfig())
	tree.Insert([]byte("a"), addr(0, 0))
	tree.Insert([]byte("b"), addr(0, 1))

	assert.True(t, tree.Delete([]byte("a")))
	assert.True(t, tree.Delete([]byte("b")))
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 1, tree.NumNodes())
	assert.Empty(t, tree.LeafChain())
	assert.NoError(t, tree.Check())
}

func TestWithComparator(t *testing.T) {
	desc := func(a, b []byte) int {
		switch {
		case string(a) > string(b):
			return -1
		case string(a) < string(b):
			return 1
		}
		return 0
	}
	tree := newTree(t, DefaultConfig(), WithComparator(desc))
	for i, k := range []string{"1", "4", "2", "5", "3"} {
		tree.Insert([]byte(k), addr(0, uint16(i)))
		require.NoError(t, tree.Check())
	}
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, strs(tree.LeafChain()))
}

func TestLevelOrder(t *testing.T) {
	tree := newTree(t, DefaultConfig())
	insertScenarioA(t, tree)

	levels := tree.LevelOrder()
	require.Len(t, levels, 2)
	require.Len(t, levels[0], 1)
	assert.Equal(t, NodeInternal, levels[0][0].Type)
	assert.Equal(t, []string{"5"}, strs(levels[0][0].Keys))
	assert.Len(t, levels[0][0].Children, 2)

	require.Len(t, levels[1], 2)
	left, right := levels[1][0], levels[1][1]
	assert.Equal(t, NodeLeaf, left.Type)
	assert.Equal(t, right.ID, left.Next)
	assert.Equal(t, int64(0), right.Next)
	assert.Equal(t, []types.Address{addr(0, 3), addr(0, 1)}, left.Addrs)
}
