// Package trace carries structured events out of the storage core.
// The core never prints; it hands events to a Tracer.
package trace

import "SlotDB/types"

type Kind string

const (
	// index
	LeafSplit      Kind = "leaf_split"
	InternalSplit  Kind = "internal_split"
	RootGrow       Kind = "root_grow"
	BorrowLeft     Kind = "borrow_left"
	BorrowRight    Kind = "borrow_right"
	MergeLeft      Kind = "merge_left"
	MergeRight     Kind = "merge_right"
	RotateLeft     Kind = "rotate_left"  // internal node took a child from its right sibling
	RotateRight    Kind = "rotate_right" // internal node took a child from its left sibling
	RootCollapse   Kind = "root_collapse"
	KeyNotFound    Kind = "key_not_found"
	SeparatorFixed Kind = "separator_fixed"

	// storage
	BlockAllocated Kind = "block_allocated"
	RecordInserted Kind = "record_inserted"
	RecordDeleted  Kind = "record_deleted"
)

// Event describes one mutation. Fields not relevant to Kind are zero.
type Event struct {
	Kind    Kind
	Node    int64 // node handle the event is about
	Sibling int64 // other node involved (new right half, sibling, promoted child)
	Key     []byte
	Address types.Address
}

type Tracer interface {
	Trace(e Event)
}

type nop struct{}

func (nop) Trace(Event) {}

// Nop discards every event.
var Nop Tracer = nop{}

// Recorder keeps every event in memory, in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Trace(e Event) {
	r.Events = append(r.Events, e)
}

// Kinds returns the recorded kinds in order.
func (r *Recorder) Kinds() []Kind {
	out := make([]Kind, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Kind
	}
	return out
}

func (r *Recorder) Reset() { r.Events = r.Events[:0] }

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
