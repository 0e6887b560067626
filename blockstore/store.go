package blockstore

import (
	"github.com/pkg/errors"

	"SlotDB/record"
	"SlotDB/trace"
	"SlotDB/types"
)

// New creates an empty store for records of the given layout.
func New(layout *record.Layout, opts Options) (*Store, error) {
	blockSize := opts.BlockSize
	if blockSize == 0 {
		blockSize = types.DefaultBlockSize
	}
	slots := blockSize / layout.Size()
	if slots < 1 {
		return nil, errors.Wrapf(ErrBlockTooSmall, "block size %d, record size %d", blockSize, layout.Size())
	}
	if slots > 1<<16 {
		return nil, errors.Errorf("blockstore: %d slots per block exceed the slot index range", slots)
	}

	s := &Store{
		layout:        layout,
		blockSize:     blockSize,
		recordSize:    layout.Size(),
		slotsPerBlock: slots,
		tracer:        opts.Tracer,
	}
	if s.tracer == nil {
		s.tracer = trace.Nop
	}
	if opts.CacheSize > 0 {
		c, err := newRecordCache(opts.CacheSize)
		if err != nil {
			return nil, err
		}
		s.cache = c
	}
	return s, nil
}

func (s *Store) Layout() *record.Layout { return s.layout }
func (s *Store) SlotsPerBlock() int     { return s.slotsPerBlock }
func (s *Store) BlockCount() int        { return len(s.blocks) }
func (s *Store) BlockSize() int         { return s.blockSize }

// AllocateBlock appends an empty block and returns its id.
func (s *Store) AllocateBlock() uint32 {
	id := uint32(len(s.blocks))
	s.blocks = append(s.blocks, newBlock(id, s.slotsPerBlock, s.recordSize))
	s.tracer.Trace(trace.Event{Kind: trace.BlockAllocated, Address: types.Address{BlockID: id}})
	return id
}

// findSuitableBlock returns the first block in id order with a free slot,
// allocating a new one when every block is full. First fit, not best fit.
func (s *Store) findSuitableBlock() *Block {
	for _, b := range s.blocks {
		if b.hasFreeSlot() {
			return b
		}
	}
	return s.blocks[s.AllocateBlock()]
}

// InsertRecord encodes r into the first free slot and returns its address.
func (s *Store) InsertRecord(r record.Record) (types.Address, error) {
	encoded, err := s.layout.Encode(r)
	if err != nil {
		return types.Address{}, errors.Wrap(err, "failed to encode record")
	}

	b := s.findSuitableBlock()
	slot := b.firstFreeSlot()
	b.writeSlot(slot, s.recordSize, encoded)

	addr := types.Address{BlockID: b.id, SlotIndex: uint16(slot)}
	if s.cache != nil {
		s.cache.evict(addr)
	}
	s.tracer.Trace(trace.Event{Kind: trace.RecordInserted, Address: addr})
	return addr, nil
}

// Read decodes the record at addr. It reports false when the block does not
// exist or the slot is empty; a slot index past the block capacity is an error.
func (s *Store) Read(addr types.Address) (record.Record, bool, error) {
	if int(addr.BlockID) >= len(s.blocks) {
		return record.Record{}, false, nil
	}
	if int(addr.SlotIndex) >= s.slotsPerBlock {
		return record.Record{}, false, errors.Wrapf(ErrAddressOutOfRange, "slot %d (slots per block %d)", addr.SlotIndex, s.slotsPerBlock)
	}

	b := s.blocks[addr.BlockID]
	data := b.readSlot(int(addr.SlotIndex), s.recordSize)
	if data == nil {
		return record.Record{}, false, nil
	}

	if s.cache != nil {
		if r, ok := s.cache.get(addr); ok {
			return r, true, nil
		}
	}

	r, err := s.layout.Decode(data)
	if err != nil {
		return record.Record{}, false, errors.Wrapf(err, "failed to decode slot %s", addr)
	}
	if s.cache != nil {
		s.cache.put(addr, r)
	}
	return r, true, nil
}

// Delete empties the slot at addr; the next InsertRecord may land there again.
// Deleting an already empty slot is a no-op.
func (s *Store) Delete(addr types.Address) error {
	if int(addr.BlockID) >= len(s.blocks) {
		return errors.Wrapf(ErrAddressOutOfRange, "block %d (blocks %d)", addr.BlockID, len(s.blocks))
	}
	if int(addr.SlotIndex) >= s.slotsPerBlock {
		return errors.Wrapf(ErrAddressOutOfRange, "slot %d (slots per block %d)", addr.SlotIndex, s.slotsPerBlock)
	}

	s.blocks[addr.BlockID].clearSlot(int(addr.SlotIndex), s.recordSize)
	if s.cache != nil {
		s.cache.evict(addr)
	}
	s.tracer.Trace(trace.Event{Kind: trace.RecordDeleted, Address: addr})
	return nil
}

// FindByKey scans every occupied slot in address order and returns the first
// record whose extracted key equals key. O(total slots).
func (s *Store) FindByKey(key string, extract KeyFunc) (types.Address, bool, error) {
	var (
		found types.Address
		ok    bool
	)
	err := s.Scan(func(addr types.Address, r record.Record) error {
		if extract(r) == key {
			found, ok = addr, true
			return errStopScan
		}
		return nil
	})
	if err != nil {
		return types.Address{}, false, err
	}
	return found, ok, nil
}

// Close releases the read cache. The store must not be used afterwards.
func (s *Store) Close() error {
	if s.cache != nil {
		s.cache.close()
		s.cache = nil
	}
	return nil
}
