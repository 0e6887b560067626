package bplus

// insertIntoParent inserts sepKey and right into the parent of left.
// If the parent overflows, it splits and propagates upward.
func (t *BPlusTree) insertIntoParent(parentID, left int64, sepKey []byte, right int64) {
	parent := t.nodes.get(parentID)

	// keys: insert at idx, children: insert right at idx+1
	idx := childIndex(parent, left)
	parent.keys = insertAt(parent.keys, idx, sepKey)
	parent.children = insertAt(parent.children, idx+1, right)
	t.nodes.get(right).parent = parent.id

	if len(parent.children) > t.cfg.PInternal {
		t.SplitInternal(parent)
	}
}
