package bplus

import "SlotDB/trace"

// SplitInternal splits an overflowing internal node and promotes the middle key.
func (t *BPlusTree) SplitInternal(node *Node) {
	// mid is the index of the key to promote
	mid := len(node.keys) / 2
	promote := node.keys[mid]

	right := t.nodes.NewNode(NodeInternal)

	// keys: left keeps [0:mid), promote key[mid], right gets (mid, end]
	// children: left keeps [0:mid], right gets [mid+1:]
	right.keys = append(right.keys, node.keys[mid+1:]...)
	right.children = append(right.children, node.children[mid+1:]...)
	right.parent = node.parent

	// update parent pointers for children moved to right
	for _, cid := range right.children {
		t.nodes.get(cid).parent = right.id
	}

	// shrink left node
	node.keys = append([][]byte(nil), node.keys[:mid]...)
	node.children = append([]int64(nil), node.children[:mid+1]...)

	t.tracer.Trace(trace.Event{Kind: trace.InternalSplit, Node: node.id, Sibling: right.id, Key: promote})

	if node.id == t.root {
		t.createNewRoot(node.id, promote, right.id)
		return
	}
	t.insertIntoParent(node.parent, node.id, promote, right.id)
}
