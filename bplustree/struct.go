// Structure of B+ Tree
/*
Tree
 ├── Internal Node (separator keys + child handles)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (keys + record addresses + next handle)


- keys: sorted ascending order, unique
- internal nodes: children length == len(keys)+1
- leaf nodes: addrs length == len(keys)
- separator left of child i == smallest key under child i
- leaf nodes linked with `next` in ascending key order, 0 terminated
- all leaf nodes at same depth
- parent and next are handles into the arena, never owning references

*/
package bplus

import (
	"github.com/pkg/errors"

	"SlotDB/trace"
	"SlotDB/types"
)

type NodeType = types.NodeType

const (
	NodeInternal = types.NodeInternal
	NodeLeaf     = types.NodeLeaf
)

const (
	DefaultPInternal = 3 // max children per internal node
	DefaultPLeaf     = 2 // max keys per leaf

	MinPInternal = 3
	MinPLeaf     = 1

	nilNode int64 = 0 // null handle
)

var (
	ErrInvalidOrder = errors.New("bplus: invalid tree order")
	ErrCorrupt      = errors.New("bplus: tree invariant violated")
)

type Node struct {
	id       int64
	nodeType NodeType
	keys     [][]byte        // sorted keys (separators for internal nodes)
	children []int64         // only for internal node
	addrs    []types.Address // only for leaf node
	next     int64           // only for leaf node
	parent   int64
}

// Config holds the two fixed orders of the tree.
type Config struct {
	PInternal int `json:"p_internal" yaml:"p_internal"` // max children per internal node
	PLeaf     int `json:"p_leaf" yaml:"p_leaf"`         // max keys per leaf
}

type BPlusTree struct {
	root   int64 // root node handle
	nodes  *arena
	cfg    Config
	cmp    func(a, b []byte) int // comparison function for keys
	tracer trace.Tracer
	size   int // number of keys stored
}

type Option func(*BPlusTree)

// WithComparator replaces bytes.Compare as the key order.
func WithComparator(cmp func(a, b []byte) int) Option {
	return func(t *BPlusTree) { t.cmp = cmp }
}

func WithTracer(tr trace.Tracer) Option {
	return func(t *BPlusTree) {
		if tr != nil {
			t.tracer = tr
		}
	}
}
