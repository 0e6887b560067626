package bplus

import "SlotDB/types"

// Search looks for a key in the B+Tree and returns its address if found.
func (t *BPlusTree) Search(key []byte) (types.Address, bool) {
	leaf := t.FindLeaf(key)
	idx := binarySearch(leaf.keys, key, t.cmp)
	if idx == -1 {
		return types.Address{}, false
	}
	return leaf.addrs[idx], true
}

// Contains reports whether key is indexed.
func (t *BPlusTree) Contains(key []byte) bool {
	_, ok := t.Search(key)
	return ok
}
