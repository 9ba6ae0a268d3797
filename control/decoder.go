package control

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

func (d *decoder) read(buf []byte) (err error) {
	n, err := io.ReadFull(d.r, buf)
	d.consumed += uint64(n)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// Next advances to the next field, reading past any unread data of the
// current one. It returns false at the end of the stream or on error.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if !d.finished && d.t.IsData() {
		_, d.err = d.Data()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown
	d.size = 0
	d.data = nil
	d.finished = false

	// Read the field control block.
	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false
		}

		d.err = oops.Trace(err)

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Empty, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current field. If the field
// does not contain data it returns 0 and ErrInvalidOperation.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case DataSizeSize:
		var sb [8]byte
		n := int(d.value[0]&d.t.Mask) + 1

		err = d.read(sb[len(sb)-n:])
		if err != nil {
			return 0, err
		}

		size := binary.BigEndian.Uint64(sb[:])
		if size >= MaxDataSize {
			return 0, Error.New("invalid: size=%d exceeds %d", size+1, MaxDataSize)
		}

		d.size = size + 1
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads the data bytes of the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if !d.t.IsData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	data = make([]byte, size)

	switch d.t {
	case Data:
		data[0] = d.value[0] & d.t.Mask
	case Data1, Data2:
		data[0] = d.value[0] & d.t.Mask

		err = d.read(data[1:])
		if err != nil {
			return nil, err
		}
	default:
		err = d.read(data)
		if err != nil {
			return nil, err
		}
	}

	d.data = data
	d.finished = true

	return d.data, nil
}
