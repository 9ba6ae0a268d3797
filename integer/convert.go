package integer

import (
	"math"

	"fortio.org/safecast"
)

// Signed is the set of fixed-width signed integer types.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned is the set of fixed-width unsigned integer types.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int {
	if v < 0 {
		// The magnitude of math.MinInt64 only fits the unsigned width, so
		// negate in two's complement on the unsigned value.
		return Int{sign: Negative, mag: natFromUint64(-uint64(v))}
	}
	return FromUint64(uint64(v))
}

// FromUint64 returns v as an Int.
func FromUint64(v uint64) Int {
	if v == 0 {
		return zero
	}
	return Int{sign: Positive, mag: natFromUint64(v)}
}

// FromSigned returns v as an Int.
func FromSigned[T Signed](v T) Int {
	return FromInt64(int64(v))
}

// FromUnsigned returns v as an Int.
func FromUnsigned[T Unsigned](v T) Int {
	return FromUint64(uint64(v))
}

// Int64 returns x as an int64. It fails with ErrOverflow if x does not fit.
func (x Int) Int64() (int64, error) {
	if x.mag.bitLen() <= 64 {
		u := low64(x.mag)
		switch {
		case x.sign != Negative && u <= math.MaxInt64:
			return int64(u), nil
		case x.sign == Negative && u <= 1<<63:
			return int64(-u), nil
		}
	}
	return 0, ErrOverflow.New("%d-bit %s value does not fit in int64", x.mag.bitLen(), x.sign)
}

// Uint64 returns x as a uint64. It fails with ErrOverflow if x is negative
// or does not fit.
func (x Int) Uint64() (uint64, error) {
	if x.sign == Negative || x.mag.bitLen() > 64 {
		return 0, ErrOverflow.New("%d-bit %s value does not fit in uint64", x.mag.bitLen(), x.sign)
	}
	return low64(x.mag), nil
}

// TruncInt64 returns the low 64 bits of the two's complement form of x
// as an int64.
func (x Int) TruncInt64() int64 {
	return int64(x.TruncUint64())
}

// TruncUint64 returns the low 64 bits of the two's complement form of x.
func (x Int) TruncUint64() uint64 {
	u := low64(x.mag)
	if x.sign == Negative {
		return -u
	}
	return u
}

// ToSigned returns x as a T. It fails with ErrOverflow if x does not fit.
func ToSigned[T Signed](x Int) (T, error) {
	v, err := x.Int64()
	if err != nil {
		return 0, err
	}
	t, err := safecast.Conv[T](v)
	if err != nil {
		return 0, ErrOverflow.Wrap(err)
	}
	return t, nil
}

// ToUnsigned returns x as a T. It fails with ErrOverflow if x is negative
// or does not fit.
func ToUnsigned[T Unsigned](x Int) (T, error) {
	v, err := x.Uint64()
	if err != nil {
		return 0, err
	}
	t, err := safecast.Conv[T](v)
	if err != nil {
		return 0, ErrOverflow.Wrap(err)
	}
	return t, nil
}

// TruncSigned returns the low bits of the two's complement form of x that
// fit in a T.
func TruncSigned[T Signed](x Int) T {
	return T(x.TruncInt64())
}

// TruncUnsigned returns the low bits of the two's complement form of x that
// fit in a T.
func TruncUnsigned[T Unsigned](x Int) T {
	return T(x.TruncUint64())
}
