package bplus

import "SlotDB/types"

// NodeView is a read-only snapshot of one node for dumps.
type NodeView struct {
	ID       int64
	Type     NodeType
	Keys     [][]byte
	Children []int64         // internal nodes only
	Addrs    []types.Address // leaves only
	Next     int64           // leaves only
}

// Level is every node at one depth, left to right.
type Level []NodeView

// LevelOrder walks the tree breadth first from the root.
func (t *BPlusTree) LevelOrder() []Level {
	var levels []Level
	queue := []int64{t.root}
	for len(queue) > 0 {
		size := len(queue)
		level := make(Level, 0, size)
		for _, id := range queue[:size] {
			n := t.nodes.get(id)
			v := NodeView{ID: n.id, Type: n.nodeType, Keys: n.Keys()}
			if n.IsLeaf() {
				v.Addrs = append([]types.Address(nil), n.addrs...)
				v.Next = n.next
			} else {
				v.Children = n.Children()
				queue = append(queue, n.children...)
			}
			level = append(level, v)
		}
		levels = append(levels, level)
		queue = queue[size:]
	}
	return levels
}

// LeafChain follows next pointers from the leftmost leaf and returns every key
// in chain order.
func (t *BPlusTree) LeafChain() [][]byte {
	var keys [][]byte
	for n := t.leftmostLeaf(t.root); ; n = t.nodes.get(n.next) {
		keys = append(keys, n.keys...)
		if n.next == nilNode {
			return keys
		}
	}
}

// Leaves returns the leaves in chain order, one key slice per leaf.
func (t *BPlusTree) Leaves() [][][]byte {
	var leaves [][][]byte
	for n := t.leftmostLeaf(t.root); ; n = t.nodes.get(n.next) {
		leaves = append(leaves, n.Keys())
		if n.next == nilNode {
			return leaves
		}
	}
}
