package bplus

import (
	"bytes"

	"github.com/pkg/errors"

	"SlotDB/trace"
)

// DefaultConfig is the order used by the original employee index.
func DefaultConfig() Config {
	return Config{PInternal: DefaultPInternal, PLeaf: DefaultPLeaf}
}

func (c Config) Validate() error {
	if c.PInternal < MinPInternal {
		return errors.Wrapf(ErrInvalidOrder, "p_internal %d < %d", c.PInternal, MinPInternal)
	}
	if c.PLeaf < MinPLeaf {
		return errors.Wrapf(ErrInvalidOrder, "p_leaf %d < %d", c.PLeaf, MinPLeaf)
	}
	return nil
}

// NewBPlusTree returns an empty tree: a single leaf root with no keys.
func NewBPlusTree(cfg Config, opts ...Option) (*BPlusTree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &BPlusTree{
		nodes:  newArena(),
		cfg:    cfg,
		cmp:    bytes.Compare,
		tracer: trace.Nop,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.root = t.nodes.NewNode(NodeLeaf).id
	return t, nil
}

func (t *BPlusTree) Config() Config { return t.cfg }

// Len is the number of keys in the tree.
func (t *BPlusTree) Len() int { return t.size }

// Root returns the root node handle.
func (t *BPlusTree) Root() int64 { return t.root }

// Node resolves a handle for read-only inspection.
func (t *BPlusTree) Node(id int64) (*Node, bool) {
	return t.nodes.lookup(id)
}

// NumNodes is the number of live nodes in the arena.
func (t *BPlusTree) NumNodes() int { return t.nodes.len() }

// Height counts levels from root to leaves; an empty tree has height 1.
func (t *BPlusTree) Height() int {
	h := 1
	n := t.nodes.get(t.root)
	for !n.IsLeaf() {
		n = t.nodes.get(n.children[0])
		h++
	}
	return h
}

// minLeafKeys is the occupancy floor of a non-root leaf.
func (t *BPlusTree) minLeafKeys() int { return (t.cfg.PLeaf + 1) / 2 }

// minChildren is the occupancy floor of a non-root internal node.
func (t *BPlusTree) minChildren() int { return (t.cfg.PInternal + 1) / 2 }
