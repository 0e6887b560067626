package blockstore

import (
	"github.com/pkg/errors"

	"SlotDB/record"
	"SlotDB/types"
)

var errStopScan = errors.New("stop scan")

// Scan calls fn for every occupied slot in ascending (block, slot) order.
// Returning an error from fn stops the scan and returns that error.
func (s *Store) Scan(fn func(addr types.Address, r record.Record) error) error {
	for _, b := range s.blocks {
		for slot := 0; slot < s.slotsPerBlock; slot++ {
			data := b.readSlot(slot, s.recordSize)
			if data == nil {
				continue
			}
			addr := types.Address{BlockID: b.id, SlotIndex: uint16(slot)}
			r, err := s.layout.Decode(data)
			if err != nil {
				return errors.Wrapf(err, "failed to decode slot %s", addr)
			}
			if err := fn(addr, r); err != nil {
				if errors.Is(err, errStopScan) {
					return nil
				}
				return err
			}
		}
	}
	return nil
}

// Blocks returns an occupancy snapshot of every block, in id order.
func (s *Store) Blocks() []BlockInfo {
	out := make([]BlockInfo, len(s.blocks))
	for i, b := range s.blocks {
		slots := make([]bool, len(b.used))
		copy(slots, b.used)
		out[i] = BlockInfo{
			ID:    b.id,
			Used:  b.usedSlots(),
			Total: s.slotsPerBlock,
			Slots: slots,
		}
	}
	return out
}

func (s *Store) Stats() Stats {
	st := Stats{
		Blocks:        len(s.blocks),
		SlotsPerBlock: s.slotsPerBlock,
		TotalSlots:    len(s.blocks) * s.slotsPerBlock,
		BlockBytes:    len(s.blocks) * s.blockSize,
	}
	for _, b := range s.blocks {
		st.UsedSlots += b.usedSlots()
	}
	st.RecordBytes = st.UsedSlots * s.recordSize
	return st
}
