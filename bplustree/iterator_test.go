package bplus

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeekGE(t *testing.T) {
	tree := newTree(t, DefaultConfig())
	var all []string
	for i := 10; i <= 100; i += 10 {
		tree.Insert(key(i), addr(0, uint16(i)))
		all = append(all, string(key(i)))
	}

	for probe := 0; probe <= 110; probe += 5 {
		want := all[sort.SearchStrings(all, string(key(probe))):]

		var got []string
		for it := tree.SeekGE(key(probe)); it.Valid(); it.Next() {
			got = append(got, string(it.Key()))
		}
		if len(want) == 0 {
			assert.Empty(t, got, "probe %d", probe)
			continue
		}
		assert.Equal(t, want, got, "probe %d", probe)
	}
}

func TestIteratorAddress(t *testing.T) {
	tree := newTree(t, DefaultConfig())
	for i := 1; i <= 7; i++ {
		tree.Insert(key(i), addr(uint32(i), 0))
	}

	it := tree.SeekGE(key(4))
	require.True(t, it.Valid())
	assert.Equal(t, addr(4, 0), it.Address())

	n := 0
	for it := tree.First(); it.Valid(); it.Next() {
		n++
	}
	assert.Equal(t, 7, n)

	end := tree.SeekGE(key(8))
	assert.False(t, end.Valid())
	assert.False(t, end.Next())
	assert.Nil(t, end.Key())
	assert.Equal(t, addr(0, 0), end.Address())
}

func TestIteratorEmptyTree(t *testing.T) {
	tree := newTree(t, DefaultConfig())
	assert.False(t, tree.First().Valid())
	assert.False(t, tree.SeekGE([]byte("a")).Valid())
}
