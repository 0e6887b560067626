package bplus

import "SlotDB/types"

// Iterator provides a forward-only range scan over the leaves.
// Mutating the tree invalidates every open iterator.
type Iterator struct {
	tree  *BPlusTree
	leaf  *Node
	index int
	valid bool
}

// SeekGE positions the iterator at the first key >= target.
func (t *BPlusTree) SeekGE(target []byte) *Iterator {
	it := &Iterator{tree: t}
	leaf := t.FindLeaf(target)
	i := lowerBound(leaf.keys, target, t.cmp)
	if i >= len(leaf.keys) {
		// everything in this leaf is smaller; the answer starts the next leaf
		if leaf.next == nilNode {
			return it
		}
		leaf = t.nodes.get(leaf.next)
		i = 0
	}
	if len(leaf.keys) == 0 {
		return it
	}
	it.leaf = leaf
	it.index = i
	it.valid = true
	return it
}

// First positions an iterator at the smallest key.
func (t *BPlusTree) First() *Iterator {
	it := &Iterator{tree: t}
	leaf := t.leftmostLeaf(t.root)
	if len(leaf.keys) > 0 {
		it.leaf = leaf
		it.valid = true
	}
	return it
}

// Valid reports whether the iterator is positioned on a key.
func (it *Iterator) Valid() bool { return it.valid }

// Next advances the iterator. Returns false when exhausted.
func (it *Iterator) Next() bool {
	if !it.valid {
		return false
	}
	it.index++
	if it.index < len(it.leaf.keys) {
		return true
	}
	// move to next leaf
	if it.leaf.next == nilNode {
		it.valid = false
		return false
	}
	it.leaf = it.tree.nodes.get(it.leaf.next)
	it.index = 0
	if len(it.leaf.keys) == 0 {
		it.valid = false
		return false
	}
	return true
}

// Key returns the current key.
func (it *Iterator) Key() []byte {
	if !it.valid {
		return nil
	}
	return it.leaf.keys[it.index]
}

// Address returns the address stored under the current key.
func (it *Iterator) Address() types.Address {
	if !it.valid {
		return types.Address{}
	}
	return it.leaf.addrs[it.index]
}
