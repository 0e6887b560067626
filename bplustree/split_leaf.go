package bplus

import "SlotDB/trace"

// SplitLeaf splits an overflowing leaf at total/2. The original node keeps the
// left half and its handle, so its slot in the parent stays valid; the new right
// leaf takes [split, total) and the old next pointer.
func (t *BPlusTree) SplitLeaf(leaf *Node) {
	split := len(leaf.keys) / 2

	right := t.nodes.NewNode(NodeLeaf)
	right.keys = append(right.keys, leaf.keys[split:]...)
	right.addrs = append(right.addrs, leaf.addrs[split:]...)
	right.next = leaf.next // right inherits leaf's old next pointer
	right.parent = leaf.parent

	leaf.keys = append([][]byte(nil), leaf.keys[:split]...)
	leaf.addrs = append(leaf.addrs[:0:0], leaf.addrs[:split]...)
	leaf.next = right.id

	sepKey := right.keys[0]
	t.tracer.Trace(trace.Event{Kind: trace.LeafSplit, Node: leaf.id, Sibling: right.id, Key: sepKey})

	if leaf.id == t.root {
		t.createNewRoot(leaf.id, sepKey, right.id)
		return
	}
	t.insertIntoParent(leaf.parent, leaf.id, sepKey, right.id)
}

// createNewRoot creates a new root internal node with left and right as its two
// children, separated by promoteKey.
func (t *BPlusTree) createNewRoot(left int64, promoteKey []byte, right int64) {
	root := t.nodes.NewNode(NodeInternal)
	root.keys = append(root.keys, promoteKey)
	root.children = append(root.children, left, right)
	root.parent = nilNode

	t.nodes.get(left).parent = root.id
	t.nodes.get(right).parent = root.id

	t.root = root.id
	t.tracer.Trace(trace.Event{Kind: trace.RootGrow, Node: root.id, Key: promoteKey})
}
