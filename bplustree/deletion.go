package bplus

import "SlotDB/trace"

// Delete removes key and its address. It reports false, and leaves the tree
// untouched, when the key is not indexed.
func (t *BPlusTree) Delete(key []byte) bool {
	leaf := t.FindLeaf(key)
	idx := binarySearch(leaf.keys, key, t.cmp)
	if idx == -1 {
		t.tracer.Trace(trace.Event{Kind: trace.KeyNotFound, Node: leaf.id, Key: key})
		return false
	}

	leaf.keys = removeAt(leaf.keys, idx)
	leaf.addrs = removeAt(leaf.addrs, idx)
	t.size--

	// an empty root leaf is an empty tree
	if leaf.id == t.root {
		return true
	}

	if len(leaf.keys) >= t.minLeafKeys() {
		if idx == 0 {
			t.fixSeparator(leaf)
		}
		return true
	}

	t.rebalanceLeaf(leaf)
	return true
}

// fixSeparator rewrites the separator that routes to n's subtree so it equals
// the subtree's current smallest key. That separator sits in the nearest
// ancestor where the path to n is not the leftmost child; if n is on the
// leftmost path of the whole tree there is nothing to fix.
func (t *BPlusTree) fixSeparator(n *Node) {
	smallest := t.minKey(n.id)
	if smallest == nil {
		return
	}
	child := n
	for child.parent != nilNode {
		parent := t.nodes.get(child.parent)
		idx := childIndex(parent, child.id)
		if idx > 0 {
			if t.cmp(parent.keys[idx-1], smallest) != 0 {
				parent.keys[idx-1] = smallest
				t.tracer.Trace(trace.Event{Kind: trace.SeparatorFixed, Node: parent.id, Key: smallest})
			}
			return
		}
		child = parent
	}
}
