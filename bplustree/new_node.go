package bplus

import (
	"fmt"

	"SlotDB/types"
)

// arena owns every node of one tree. Handles are allocated from 1 upward and
// never reused, so a stale handle can only miss, never alias another node.
type arena struct {
	nodes  map[int64]*Node
	nextID int64
}

func newArena() *arena {
	return &arena{
		nodes:  make(map[int64]*Node),
		nextID: 1,
	}
}

// NewNode creates a new node of given type, registers it and returns its pointer
func (a *arena) NewNode(nodeType NodeType) *Node {
	n := &Node{
		id:       a.nextID,
		nodeType: nodeType,
	}
	a.nextID++
	a.nodes[n.id] = n
	return n
}

// get resolves a handle. A missing handle means the tree structure is broken.
func (a *arena) get(id int64) *Node {
	n, ok := a.nodes[id]
	if !ok {
		panic(fmt.Sprintf("bplus: dangling node handle %d", id))
	}
	return n
}

// lookup is get for callers that can handle a miss.
func (a *arena) lookup(id int64) (*Node, bool) {
	n, ok := a.nodes[id]
	return n, ok
}

func (a *arena) free(id int64) {
	delete(a.nodes, id)
}

func (a *arena) len() int {
	return len(a.nodes)
}

func (n *Node) ID() int64      { return n.id }
func (n *Node) Type() NodeType { return n.nodeType }
func (n *Node) IsLeaf() bool   { return n.nodeType == NodeLeaf }
func (n *Node) Parent() int64  { return n.parent }
func (n *Node) Next() int64    { return n.next }
func (n *Node) NumKeys() int   { return len(n.keys) }

// Keys returns a copy of the node's keys.
func (n *Node) Keys() [][]byte {
	out := make([][]byte, len(n.keys))
	copy(out, n.keys)
	return out
}

// Children returns a copy of the child handles (nil for leaves).
func (n *Node) Children() []int64 {
	if n.nodeType == NodeLeaf {
		return nil
	}
	out := make([]int64, len(n.children))
	copy(out, n.children)
	return out
}

// Addrs returns a copy of the record addresses (nil for internal nodes).
func (n *Node) Addrs() []types.Address {
	if n.nodeType != NodeLeaf {
		return nil
	}
	out := make([]types.Address, len(n.addrs))
	copy(out, n.addrs)
	return out
}
