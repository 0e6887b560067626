package bplus

import "SlotDB/trace"

// siblings returns the parent of n, n's position in it and the adjacent
// siblings (nil at the edges).
func (t *BPlusTree) siblings(n *Node) (parent *Node, idx int, left, right *Node) {
	parent = t.nodes.get(n.parent)
	idx = childIndex(parent, n.id)
	if idx > 0 {
		left = t.nodes.get(parent.children[idx-1])
	}
	if idx < len(parent.children)-1 {
		right = t.nodes.get(parent.children[idx+1])
	}
	return parent, idx, left, right
}

// rebalanceLeaf fixes a non-root leaf that fell below minimum occupancy:
// borrow from left, borrow from right, merge into left, absorb right.
func (t *BPlusTree) rebalanceLeaf(leaf *Node) {
	parent, idx, left, right := t.siblings(leaf)
	floor := t.minLeafKeys()

	switch {
	case left != nil && len(left.keys) > floor:
		last := len(left.keys) - 1
		leaf.keys = insertAt(leaf.keys, 0, left.keys[last])
		leaf.addrs = insertAt(leaf.addrs, 0, left.addrs[last])
		left.keys = left.keys[:last]
		left.addrs = left.addrs[:last]
		parent.keys[idx-1] = leaf.keys[0]
		t.tracer.Trace(trace.Event{Kind: trace.BorrowLeft, Node: leaf.id, Sibling: left.id, Key: leaf.keys[0]})

	case right != nil && len(right.keys) > floor:
		leaf.keys = append(leaf.keys, right.keys[0])
		leaf.addrs = append(leaf.addrs, right.addrs[0])
		right.keys = removeAt(right.keys, 0)
		right.addrs = removeAt(right.addrs, 0)
		parent.keys[idx] = right.keys[0]
		t.tracer.Trace(trace.Event{Kind: trace.BorrowRight, Node: leaf.id, Sibling: right.id, Key: right.keys[0]})
		// the leaf may have lost its first key, or had none left
		t.fixSeparator(leaf)

	case left != nil:
		left.keys = append(left.keys, leaf.keys...)
		left.addrs = append(left.addrs, leaf.addrs...)
		left.next = leaf.next
		parent.keys = removeAt(parent.keys, idx-1)
		parent.children = removeAt(parent.children, idx)
		t.nodes.free(leaf.id)
		t.tracer.Trace(trace.Event{Kind: trace.MergeLeft, Node: left.id, Sibling: leaf.id})
		t.rebalanceInternal(parent)

	default:
		leaf.keys = append(leaf.keys, right.keys...)
		leaf.addrs = append(leaf.addrs, right.addrs...)
		leaf.next = right.next
		parent.keys = removeAt(parent.keys, idx)
		parent.children = removeAt(parent.children, idx+1)
		t.nodes.free(right.id)
		t.tracer.Trace(trace.Event{Kind: trace.MergeRight, Node: leaf.id, Sibling: right.id})
		// leaf is parent's first child; its new smallest key routes from higher up
		t.fixSeparator(leaf)
		t.rebalanceInternal(parent)
	}
}

// rebalanceInternal fixes an internal node that may have lost a child, walking
// toward the root. Precondition: every separator above n is already correct.
func (t *BPlusTree) rebalanceInternal(n *Node) {
	if n.id == t.root {
		if len(n.children) == 1 {
			t.collapseRoot(n)
		}
		return
	}
	if len(n.children) >= t.minChildren() {
		return
	}

	parent, idx, left, right := t.siblings(n)
	floor := t.minChildren()

	switch {
	case left != nil && len(left.children) > floor:
		// rotate left's last child through the parent separator
		lastKey := len(left.keys) - 1
		lastChild := len(left.children) - 1
		moved := left.children[lastChild]

		n.children = insertAt(n.children, 0, moved)
		n.keys = insertAt(n.keys, 0, parent.keys[idx-1])
		parent.keys[idx-1] = left.keys[lastKey]
		left.keys = left.keys[:lastKey]
		left.children = left.children[:lastChild]
		t.nodes.get(moved).parent = n.id
		t.tracer.Trace(trace.Event{Kind: trace.RotateRight, Node: n.id, Sibling: left.id, Key: parent.keys[idx-1]})

	case right != nil && len(right.children) > floor:
		moved := right.children[0]

		n.children = append(n.children, moved)
		n.keys = append(n.keys, parent.keys[idx])
		parent.keys[idx] = right.keys[0]
		right.keys = removeAt(right.keys, 0)
		right.children = removeAt(right.children, 0)
		t.nodes.get(moved).parent = n.id
		t.tracer.Trace(trace.Event{Kind: trace.RotateLeft, Node: n.id, Sibling: right.id, Key: parent.keys[idx]})

	case left != nil:
		// fold the separator down: left + sep + n
		left.keys = append(left.keys, parent.keys[idx-1])
		left.keys = append(left.keys, n.keys...)
		for _, c := range n.children {
			t.nodes.get(c).parent = left.id
		}
		left.children = append(left.children, n.children...)
		parent.keys = removeAt(parent.keys, idx-1)
		parent.children = removeAt(parent.children, idx)
		t.nodes.free(n.id)
		t.tracer.Trace(trace.Event{Kind: trace.MergeLeft, Node: left.id, Sibling: n.id})
		t.rebalanceInternal(parent)

	default:
		// n + sep + right
		n.keys = append(n.keys, parent.keys[idx])
		n.keys = append(n.keys, right.keys...)
		for _, c := range right.children {
			t.nodes.get(c).parent = n.id
		}
		n.children = append(n.children, right.children...)
		parent.keys = removeAt(parent.keys, idx)
		parent.children = removeAt(parent.children, idx+1)
		t.nodes.free(right.id)
		t.tracer.Trace(trace.Event{Kind: trace.MergeRight, Node: n.id, Sibling: right.id})
		t.rebalanceInternal(parent)
	}
}

// collapseRoot drops an internal root with a single child; the tree loses a level.
func (t *BPlusTree) collapseRoot(root *Node) {
	child := t.nodes.get(root.children[0])
	child.parent = nilNode
	t.root = child.id
	t.nodes.free(root.id)
	t.tracer.Trace(trace.Event{Kind: trace.RootCollapse, Node: root.id, Sibling: child.id})
}
