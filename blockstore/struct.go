package blockstore

import (
	"github.com/pkg/errors"

	"SlotDB/record"
	"SlotDB/trace"
)

var (
	ErrAddressOutOfRange = errors.New("blockstore: address out of range")
	ErrBlockTooSmall     = errors.New("blockstore: block cannot hold a single record")
)

// Options configures a Store. Zero values fall back to the defaults.
type Options struct {
	BlockSize int          // bytes per block, types.DefaultBlockSize when 0
	CacheSize int          // decoded records kept in the read cache, 0 disables it
	Tracer    trace.Tracer // trace.Nop when nil
}

// Block is a fixed array of record slots.
// Slot i occupies data[i*recordSize : (i+1)*recordSize] when used[i] is set.
type Block struct {
	id   uint32
	data []byte
	used []bool
}

// Store is the ordered, append-only sequence of blocks.
// Block ids are dense and 0-based; blocks are never removed.
type Store struct {
	layout        *record.Layout
	blockSize     int
	recordSize    int
	slotsPerBlock int
	blocks        []*Block
	cache         *recordCache // nil when disabled
	tracer        trace.Tracer
}

// KeyFunc extracts the lookup key of a decoded record.
type KeyFunc func(record.Record) string

// FieldKey returns a KeyFunc reading the named field of layout.
func FieldKey(layout *record.Layout, name string) KeyFunc {
	return func(r record.Record) string {
		return layout.Get(r, name)
	}
}

// BlockInfo is a read-only snapshot of one block for reporting.
type BlockInfo struct {
	ID    uint32
	Used  int
	Total int
	Slots []bool // occupancy per slot
}

type Stats struct {
	Blocks        int
	SlotsPerBlock int
	TotalSlots    int
	UsedSlots     int
	BlockBytes    int // bytes reserved by all blocks
	RecordBytes   int // bytes held by live records
}
