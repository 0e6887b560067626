package bplus

import "SlotDB/types"

// Insert registers key -> addr. An existing key has its address replaced in
// place; the index is unique. The key bytes are copied.
func (t *BPlusTree) Insert(key []byte, addr types.Address) {
	leaf := t.FindLeaf(key)

	i := lowerBound(leaf.keys, key, t.cmp)
	if i < len(leaf.keys) && t.cmp(leaf.keys[i], key) == 0 {
		leaf.addrs[i] = addr
		return
	}

	k := append([]byte(nil), key...)
	leaf.keys = insertAt(leaf.keys, i, k)
	leaf.addrs = insertAt(leaf.addrs, i, addr)
	t.size++

	if len(leaf.keys) > t.cfg.PLeaf {
		t.SplitLeaf(leaf)
	}
}
