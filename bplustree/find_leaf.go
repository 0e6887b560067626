package bplus

// FindLeaf descends from the root to the leaf that owns key. At each internal
// node it follows child i, where i is the number of separators <= key.
func (t *BPlusTree) FindLeaf(key []byte) *Node {
	n := t.nodes.get(t.root)
	for !n.IsLeaf() {
		i := upperBound(n.keys, key, t.cmp)
		n = t.nodes.get(n.children[i])
	}
	return n
}

// leftmostLeaf returns the first leaf of the chain under node id.
func (t *BPlusTree) leftmostLeaf(id int64) *Node {
	n := t.nodes.get(id)
	for !n.IsLeaf() {
		n = t.nodes.get(n.children[0])
	}
	return n
}

// minKey is the smallest key reachable from node id, nil for an empty subtree.
func (t *BPlusTree) minKey(id int64) []byte {
	leaf := t.leftmostLeaf(id)
	if len(leaf.keys) == 0 {
		return nil
	}
	return leaf.keys[0]
}
