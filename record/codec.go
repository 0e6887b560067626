package record

import (
	"bytes"

	"github.com/pkg/errors"

	"SlotDB/types"
)

// Record is one row in layout order plus its tombstone flag.
type Record struct {
	Values  []string
	Deleted bool
}

func (r Record) Clone() Record {
	out := Record{Values: make([]string, len(r.Values)), Deleted: r.Deleted}
	copy(out.Values, r.Values)
	return out
}

func (r Record) Equal(o Record) bool {
	if r.Deleted != o.Deleted || len(r.Values) != len(o.Values) {
		return false
	}
	for i := range r.Values {
		if r.Values[i] != o.Values[i] {
			return false
		}
	}
	return true
}

// Encode serializes r into exactly l.Size() bytes.
// Over-width values are truncated at the byte width; this is not an error.
func (l *Layout) Encode(r Record) ([]byte, error) {
	if len(r.Values) != len(l.fields) {
		return nil, errors.Wrapf(ErrFieldCount, "got %d values, layout has %d fields", len(r.Values), len(l.fields))
	}

	buf := make([]byte, l.size)
	offset := 0
	for i, f := range l.fields {
		field := buf[offset : offset+f.Width]
		n := copy(field, r.Values[i])
		for j := n; j < f.Width; j++ {
			field[j] = ' '
		}
		offset += f.Width
	}

	if r.Deleted {
		buf[offset] = types.TombstoneDeleted
	} else {
		buf[offset] = types.TombstoneLive
	}
	return buf, nil
}

// Decode is the inverse of Encode. Trailing spaces of every field are stripped.
// Bytes past l.Size() are ignored.
func (l *Layout) Decode(data []byte) (Record, error) {
	if len(data) < l.size {
		return Record{}, errors.Wrapf(ErrFormat, "need %d bytes, got %d", l.size, len(data))
	}

	r := Record{Values: make([]string, len(l.fields))}
	offset := 0
	for i, f := range l.fields {
		r.Values[i] = string(bytes.TrimRight(data[offset:offset+f.Width], " "))
		offset += f.Width
	}
	r.Deleted = data[offset] == types.TombstoneDeleted
	return r, nil
}

// Normalize returns r as it reads back after a store round trip: values
// truncated to their width and stripped of trailing spaces.
func (l *Layout) Normalize(r Record) (Record, error) {
	buf, err := l.Encode(r)
	if err != nil {
		return Record{}, err
	}
	return l.Decode(buf)
}
