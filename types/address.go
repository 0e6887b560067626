package types

import "fmt"

// Address points to a specific record slot in the block store
type Address struct {
	BlockID   uint32 `json:"block_id"`
	SlotIndex uint16 `json:"slot_index"` // index inside the block's slot array
}

func (a Address) String() string {
	return fmt.Sprintf("(%d,%d)", a.BlockID, a.SlotIndex)
}

// Pack folds the address into a single uint64 (block id in the high bits).
// Used as a cache key.
func (a Address) Pack() uint64 {
	return uint64(a.BlockID)<<16 | uint64(a.SlotIndex)
}

// UnpackAddress is the inverse of Pack.
func UnpackAddress(v uint64) Address {
	return Address{
		BlockID:   uint32(v >> 16),
		SlotIndex: uint16(v & 0xFFFF),
	}
}
