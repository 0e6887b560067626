package bplus

import (
	"bytes"

	"github.com/pkg/errors"
)

// RebuildSeparators recomputes every separator from the leftmost key of the
// child it precedes and returns how many had drifted. Incremental maintenance
// in Insert/Delete keeps a well-formed tree at 0; this is a verification and
// repair tool, not part of the mutation path.
func (t *BPlusTree) RebuildSeparators() int {
	fixed := 0
	var walk func(id int64)
	walk = func(id int64) {
		n := t.nodes.get(id)
		if n.IsLeaf() {
			return
		}
		for i, c := range n.children {
			walk(c)
			if i == 0 {
				continue
			}
			if k := t.minKey(c); k != nil && t.cmp(n.keys[i-1], k) != 0 {
				n.keys[i-1] = k
				fixed++
			}
		}
	}
	walk(t.root)
	return fixed
}

// Check verifies every structural invariant and returns ErrCorrupt wrapped
// with the first violation found.
func (t *BPlusTree) Check() error {
	root, ok := t.nodes.lookup(t.root)
	if !ok {
		return errors.Wrapf(ErrCorrupt, "root handle %d is dangling", t.root)
	}
	if root.parent != nilNode {
		return errors.Wrapf(ErrCorrupt, "root %d has parent %d", root.id, root.parent)
	}

	leafDepth := -1
	reachable := 0
	var leaves []int64

	var walk func(id int64, depth int, lo, hi []byte) error
	walk = func(id int64, depth int, lo, hi []byte) error {
		n, ok := t.nodes.lookup(id)
		if !ok {
			return errors.Wrapf(ErrCorrupt, "dangling handle %d", id)
		}
		reachable++
		isRoot := id == t.root

		for i := 1; i < len(n.keys); i++ {
			if t.cmp(n.keys[i-1], n.keys[i]) >= 0 {
				return errors.Wrapf(ErrCorrupt, "node %d keys not strictly ascending at %d", id, i)
			}
		}
		// every key must respect the range routed to this node: [lo, hi)
		for _, k := range n.keys {
			if lo != nil && t.cmp(k, lo) < 0 {
				return errors.Wrapf(ErrCorrupt, "node %d key %q below range start %q", id, k, lo)
			}
			if hi != nil && t.cmp(k, hi) >= 0 {
				return errors.Wrapf(ErrCorrupt, "node %d key %q not below range end %q", id, k, hi)
			}
		}

		if n.IsLeaf() {
			if len(n.keys) != len(n.addrs) {
				return errors.Wrapf(ErrCorrupt, "leaf %d has %d keys and %d addresses", id, len(n.keys), len(n.addrs))
			}
			if len(n.keys) > t.cfg.PLeaf {
				return errors.Wrapf(ErrCorrupt, "leaf %d holds %d keys (max %d)", id, len(n.keys), t.cfg.PLeaf)
			}
			if !isRoot && len(n.keys) < t.minLeafKeys() {
				return errors.Wrapf(ErrCorrupt, "leaf %d holds %d keys (min %d)", id, len(n.keys), t.minLeafKeys())
			}
			if leafDepth == -1 {
				leafDepth = depth
			} else if depth != leafDepth {
				return errors.Wrapf(ErrCorrupt, "leaf %d at depth %d, expected %d", id, depth, leafDepth)
			}
			leaves = append(leaves, id)
			return nil
		}

		if len(n.children) != len(n.keys)+1 {
			return errors.Wrapf(ErrCorrupt, "internal %d has %d keys and %d children", id, len(n.keys), len(n.children))
		}
		if len(n.children) > t.cfg.PInternal {
			return errors.Wrapf(ErrCorrupt, "internal %d has %d children (max %d)", id, len(n.children), t.cfg.PInternal)
		}
		if isRoot && len(n.children) < 2 {
			return errors.Wrapf(ErrCorrupt, "internal root %d has %d children", id, len(n.children))
		}
		if !isRoot && len(n.children) < t.minChildren() {
			return errors.Wrapf(ErrCorrupt, "internal %d has %d children (min %d)", id, len(n.children), t.minChildren())
		}

		for i, c := range n.children {
			child, ok := t.nodes.lookup(c)
			if !ok {
				return errors.Wrapf(ErrCorrupt, "internal %d child %d is dangling", id, c)
			}
			if child.parent != id {
				return errors.Wrapf(ErrCorrupt, "node %d parent is %d, listed under %d", c, child.parent, id)
			}
			childLo, childHi := lo, hi
			if i > 0 {
				childLo = n.keys[i-1]
				if k := t.minKey(c); k == nil || t.cmp(k, childLo) != 0 {
					return errors.Wrapf(ErrCorrupt, "internal %d separator %d is %q, smallest key under child is %q", id, i-1, childLo, k)
				}
			}
			if i < len(n.keys) {
				childHi = n.keys[i]
			}
			if err := walk(c, depth+1, childLo, childHi); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(t.root, 0, nil, nil); err != nil {
		return err
	}
	if reachable != t.nodes.len() {
		return errors.Wrapf(ErrCorrupt, "%d nodes reachable, %d allocated", reachable, t.nodes.len())
	}
	return t.checkLeafChain(leaves)
}

// checkLeafChain walks next pointers from the leftmost leaf and compares them
// with the in-order leaf sequence of the tree walk.
func (t *BPlusTree) checkLeafChain(leaves []int64) error {
	cur := t.leftmostLeaf(t.root)
	var prev []byte
	count := 0
	for i := 0; ; i++ {
		if i >= len(leaves) {
			return errors.Wrapf(ErrCorrupt, "leaf chain longer than %d leaves", len(leaves))
		}
		if cur.id != leaves[i] {
			return errors.Wrapf(ErrCorrupt, "leaf chain position %d is %d, tree order has %d", i, cur.id, leaves[i])
		}
		for _, k := range cur.keys {
			if prev != nil && bytes.Equal(prev, k) {
				return errors.Wrapf(ErrCorrupt, "duplicate key %q in leaf chain", k)
			}
			if prev != nil && t.cmp(prev, k) > 0 {
				return errors.Wrapf(ErrCorrupt, "leaf chain out of order at key %q", k)
			}
			prev = k
			count++
		}
		if cur.next == nilNode {
			if i != len(leaves)-1 {
				return errors.Wrapf(ErrCorrupt, "leaf chain ends after %d of %d leaves", i+1, len(leaves))
			}
			break
		}
		next, ok := t.nodes.lookup(cur.next)
		if !ok {
			return errors.Wrapf(ErrCorrupt, "leaf %d next handle %d is dangling", cur.id, cur.next)
		}
		cur = next
	}
	if count != t.size {
		return errors.Wrapf(ErrCorrupt, "leaf chain holds %d keys, tree size is %d", count, t.size)
	}
	return nil
}
