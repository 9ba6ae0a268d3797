package control

import (
	"encoding/binary"
	"io"

	"github.com/calebcase/oops"
)

// MaxDataSize is the largest data field accepted by the encoder and
// decoder.
const MaxDataSize uint64 = 1 << 32

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) write(bs ...[]byte) (err error) {
	for _, b := range bs {
		if len(b) == 0 {
			continue
		}

		_, err = e.w.Write(b)
		if err != nil {
			return oops.Trace(err)
		}
	}

	return nil
}

// Data writes data in the shortest block that can hold it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case uint64(size) > MaxDataSize:
		return Error.New("invalid: size=%d exceeds %d", size, MaxDataSize)
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{Data.Prefix | data[0]})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{Data1.Prefix | data[0]}, data[1:])
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{Data2.Prefix | data[0]}, data[1:])
	case size <= 64:
		return e.write([]byte{DataSize.Prefix | byte(size-1)}, data)
	}

	var sb [8]byte
	binary.BigEndian.PutUint64(sb[:], uint64(size-1))

	// Minimal size bytes, keeping at least one.
	i := 0
	for i < len(sb)-1 && sb[i] == 0 {
		i++
	}

	return e.write(
		[]byte{DataSizeSize.Prefix | byte(len(sb)-i-1)},
		sb[i:],
		data,
	)
}

// Empty writes an Empty block.
func (e *encoder) Empty() (err error) {
	return e.write([]byte{Empty.Prefix})
}

// Null writes a Null block.
func (e *encoder) Null() (err error) {
	return e.write([]byte{Null.Prefix})
}
