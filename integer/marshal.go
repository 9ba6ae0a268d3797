package integer

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zeebo/errs"
)

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The encoding is the big-endian magnitude shifted left one bit with the
// sign in the lowest bit (1 for negative). Zero is a single zero byte.
func (x Int) MarshalBinary() (data []byte, err error) {
	z := shlNat(x.mag, 1)
	if x.sign == Negative {
		z[0] |= 1
	}

	data = z.bytes()

	// Note: zero encodes as an empty magnitude, but we desire zero to be an
	// actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty binary integer")
	}

	z := natFromBytes(data)

	sign := Positive
	if z.bit(0) == 1 {
		sign = Negative
	}

	*x = newInt(sign, shrNat(z, 1))

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() (text []byte, err error) {
	return x.Append(nil, 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is parsed
// with radix 0, so "0x", "0o" and "0b" prefixes are honored.
func (x *Int) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text), 0)
	if err != nil {
		return err
	}

	*x = v

	return nil
}

// MarshalJSON implements json.Marshaler. The integer is written as a bare
// JSON number.
func (x Int) MarshalJSON() ([]byte, error) {
	return x.Append(nil, 10), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both numbers and quoted
// strings are accepted; null leaves x unchanged.
func (x *Int) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return x.UnmarshalText(bytes.TrimSpace(text))
}

// EncodeMsgpack implements msgpack.CustomEncoder. The integer is written as
// the array [sign, magnitude] with the magnitude in big-endian bytes.
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) (err error) {
	err = enc.EncodeArrayLen(2)
	if err != nil {
		return err
	}

	err = enc.EncodeInt8(int8(x.sign))
	if err != nil {
		return err
	}

	return enc.EncodeBytes(x.mag.bytes())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	defer Error.WrapP(&err)

	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return errs.New("msgpack integer: expected 2 elements, got %d", n)
	}

	s, err := dec.DecodeInt8()
	if err != nil {
		return err
	}

	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}

	mag := natFromBytes(b)

	switch sign := Sign(s); {
	case sign < Negative || sign > Positive:
		return errs.New("msgpack integer: invalid sign %d", s)
	case (sign == Zero) != (len(mag) == 0):
		return errs.New("msgpack integer: sign %s with %d-bit magnitude", sign, mag.bitLen())
	default:
		*x = newInt(sign, mag)
	}

	return nil
}
