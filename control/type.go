package control

import "github.com/zeebo/errs"

// Error is the class of control block errors.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a field is read in a way its type
// does not support.
var ErrInvalidOperation = Error.New("invalid operation")

// Type is a control block type.
type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

// IsData reports whether blocks of this type carry data bytes.
func (t Type) IsData() bool {
	switch t {
	case Data, Data1, Data2, DataSize, DataSizeSize:
		return true
	}
	return false
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

// Control block types.
var (
	Unknown      = Type{}
	Data         = Type{0b_1000_0000, 0b_0111_1111, "d"}
	DataSize     = Type{0b_0100_0000, 0b_0011_1111, "dz"}
	Data1        = Type{0b_0010_0000, 0b_0001_1111, "d1"}
	Data2        = Type{0b_0001_0000, 0b_0000_1111, "d2"}
	DataSizeSize = Type{0b_0000_1000, 0b_0000_0111, "dzz"}
	Empty        = Type{0b_0000_0001, 0b_0000_0000, "e"}
	Null         = Type{0b_0000_0000, 0b_0000_0000, "n"}

	Types = types{
		Data,
		DataSize,
		Data1,
		Data2,
		DataSizeSize,
		Empty,
		Null,
	}
)
