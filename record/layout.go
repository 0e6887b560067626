// Package record: fixed-width record layouts and their binary codec.
//
// Layout on the wire, for each field in declared order:
//
//	| field 0 (w0 bytes) | field 1 (w1 bytes) | ... | tombstone (1 byte, '0' or '1') |
//
// Values are truncated to the field width and right-padded with spaces.
package record

import (
	"github.com/pkg/errors"

	"SlotDB/types"
)

var (
	ErrFormat     = errors.New("record: malformed encoding")
	ErrFieldCount = errors.New("record: value count does not match layout")
	ErrLayout     = errors.New("record: invalid layout")
)

// Field is one named fixed-width column.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Width int    `json:"width" yaml:"width"`
}

// Layout is an ordered field table. It is immutable once built.
type Layout struct {
	fields []Field
	index  map[string]int
	size   int
}

func NewLayout(fields ...Field) (*Layout, error) {
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrLayout, "no fields")
	}
	l := &Layout{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
		size:   types.TombstoneSize,
	}
	for i, f := range fields {
		if f.Name == "" {
			return nil, errors.Wrapf(ErrLayout, "field %d has no name", i)
		}
		if f.Width <= 0 {
			return nil, errors.Wrapf(ErrLayout, "field %q has width %d", f.Name, f.Width)
		}
		if _, dup := l.index[f.Name]; dup {
			return nil, errors.Wrapf(ErrLayout, "duplicate field %q", f.Name)
		}
		l.fields[i] = f
		l.index[f.Name] = i
		l.size += f.Width
	}
	return l, nil
}

// MustLayout is NewLayout for package-level tables; it panics on a bad table.
func MustLayout(fields ...Field) *Layout {
	l, err := NewLayout(fields...)
	if err != nil {
		panic(err)
	}
	return l
}

// Size is the encoded byte length of every record: sum of widths + tombstone byte.
func (l *Layout) Size() int { return l.size }

func (l *Layout) NumFields() int { return len(l.fields) }

// Fields returns a copy of the field table.
func (l *Layout) Fields() []Field {
	out := make([]Field, len(l.fields))
	copy(out, l.fields)
	return out
}

// Index returns the position of the named field, or -1.
func (l *Layout) Index(name string) int {
	if i, ok := l.index[name]; ok {
		return i
	}
	return -1
}

// New builds a record in layout order from named values. Fields missing from
// values are left empty; names not in the layout are ignored.
func (l *Layout) New(values map[string]string) Record {
	r := Record{Values: make([]string, len(l.fields))}
	for name, v := range values {
		if i, ok := l.index[name]; ok {
			r.Values[i] = v
		}
	}
	return r
}

// Get returns the named field of r, or "" if the field does not exist.
func (l *Layout) Get(r Record, name string) string {
	i, ok := l.index[name]
	if !ok || i >= len(r.Values) {
		return ""
	}
	return r.Values[i]
}

// Employee field names, in declared order.
const (
	FieldName           = "NAME"
	FieldSSN            = "SSN"
	FieldDepartmentCode = "DEPARTMENTCODE"
	FieldAddress        = "ADDRESS"
	FieldPhone          = "PHONE"
	FieldBirthdate      = "BIRTHDATE"
	FieldSex            = "SEX"
	FieldJobCode        = "JOBCODE"
	FieldSalary         = "SALARY"
)

// EmployeeLayout is the EMPLOYEE table: 114 bytes of fields + 1 tombstone byte.
var EmployeeLayout = MustLayout(
	Field{FieldName, 30},
	Field{FieldSSN, 9},
	Field{FieldDepartmentCode, 9},
	Field{FieldAddress, 40},
	Field{FieldPhone, 9},
	Field{FieldBirthdate, 8},
	Field{FieldSex, 1},
	Field{FieldJobCode, 4},
	Field{FieldSalary, 4},
)
