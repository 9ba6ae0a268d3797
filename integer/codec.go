package integer

import (
	"io"

	"github.com/calebcase/bigint/control"
)

// Schema for an integer stream.
type Schema struct {
	// Bits bounds the width of encoded values. Signed schemas accept
	// [-2^(Bits-1), 2^(Bits-1)-1], unsigned schemas [0, 2^Bits-1]. Zero
	// means unbounded.
	Bits uint64

	Signed bool

	Nullable bool
}

func (s Schema) check(x Int) error {
	if !s.Signed && x.sign == Negative {
		return ErrOverflow.New("negative value in unsigned schema")
	}

	if s.Bits == 0 {
		return nil
	}

	n := uint64(x.mag.bitLen())
	if !s.Signed {
		if n > s.Bits {
			return ErrOverflow.New("%d bits exceeds %d", n, s.Bits)
		}
		return nil
	}

	switch {
	case n < s.Bits:
		return nil
	case n == s.Bits && x.sign == Negative && uint64(x.mag.trailingZeroBits()) == s.Bits-1:
		// -2^(Bits-1)
		return nil
	}

	return ErrOverflow.New("%d bits exceeds signed %d", n, s.Bits)
}

// Encoder writes integers as control blocks.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes x. A nil x is written as a Null block when the schema is
// nullable.
func (e *Encoder) Encode(x *Int) (err error) {
	if x == nil {
		if !e.schema.Nullable {
			return Error.New("nil value in non-nullable schema")
		}

		return Error.Wrap(e.ce.Null())
	}

	err = e.schema.check(*x)
	if err != nil {
		return err
	}

	var data []byte
	if e.schema.Signed {
		data, err = x.MarshalBinary()
		if err != nil {
			return err
		}
	} else {
		data = x.mag.bytes()
		if len(data) == 0 {
			data = []byte{0}
		}
	}

	return Error.Wrap(e.ce.Data(data))
}

// Decoder reads integers from control blocks.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next integer. It returns io.EOF at the end of the
// stream and a nil *Int for a Null block.
func (d *Decoder) Decode() (x *Int, err error) {
	if !d.cd.Next() {
		err = d.cd.Err()
		if err == nil {
			return nil, io.EOF
		}

		return nil, Error.Wrap(err)
	}

	switch t := d.cd.Type(); {
	case t == control.Null:
		if !d.schema.Nullable {
			return nil, Error.New("null in non-nullable schema")
		}

		return nil, nil
	case !t.IsData():
		return nil, Error.New("unexpected %q block at offset %d", t.Abbr, d.cd.Consumed()-1)
	}

	data, err := d.cd.Data()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	var v Int
	if d.schema.Signed {
		err = v.UnmarshalBinary(data)
		if err != nil {
			return nil, err
		}
	} else {
		v = FromBytes(Positive, data)
	}

	err = d.schema.check(v)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
