package blockstore

func newBlock(id uint32, slots, recordSize int) *Block {
	return &Block{
		id:   id,
		data: make([]byte, slots*recordSize),
		used: make([]bool, slots),
	}
}

func (b *Block) ID() uint32 { return b.id }

// firstFreeSlot returns the lowest empty slot index, or -1 when the block is full.
func (b *Block) firstFreeSlot() int {
	for i, u := range b.used {
		if !u {
			return i
		}
	}
	return -1
}

func (b *Block) hasFreeSlot() bool {
	return b.firstFreeSlot() >= 0
}

func (b *Block) usedSlots() int {
	n := 0
	for _, u := range b.used {
		if u {
			n++
		}
	}
	return n
}

func (b *Block) slotData(slot, recordSize int) []byte {
	off := slot * recordSize
	return b.data[off : off+recordSize]
}

func (b *Block) writeSlot(slot, recordSize int, encoded []byte) {
	copy(b.slotData(slot, recordSize), encoded)
	b.used[slot] = true
}

// readSlot returns the encoded bytes of the slot, nil if it is empty.
func (b *Block) readSlot(slot, recordSize int) []byte {
	if !b.used[slot] {
		return nil
	}
	return b.slotData(slot, recordSize)
}

// clearSlot empties the slot so it can be reused. The bytes are zeroed.
func (b *Block) clearSlot(slot, recordSize int) {
	data := b.slotData(slot, recordSize)
	for i := range data {
		data[i] = 0
	}
	b.used[slot] = false
}
