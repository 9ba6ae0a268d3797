package integer

import "math"

// IEEE-754 binary formats.
type floatFormat struct {
	name     string
	mantBits uint // stored fraction bits
	expBits  uint
}

var (
	binary32 = floatFormat{name: "float32", mantBits: 23, expBits: 8}
	binary64 = floatFormat{name: "float64", mantBits: 52, expBits: 11}
)

// precision is the number of significant bits including the implicit one.
func (ff floatFormat) precision() uint {
	return ff.mantBits + 1
}

// maxBitLen is the bit length of the largest finite value.
func (ff floatFormat) maxBitLen() int {
	return 1 << (ff.expBits - 1)
}

// FromFloat64 returns f truncated toward zero. Values of magnitude below
// one, sub-normals included, become 0. It fails with ErrConversion for NaN
// and infinities.
func FromFloat64(f float64) (Int, error) {
	return fromFloat(binary64, math.Float64bits(f), f, false)
}

// FromFloat32 returns f truncated toward zero. Values of magnitude below
// one, sub-normals included, become 0. It fails with ErrConversion for NaN
// and infinities.
func FromFloat32(f float32) (Int, error) {
	return fromFloat(binary32, uint64(math.Float32bits(f)), float64(f), false)
}

// FromFloat64Exact is like FromFloat64 but also fails with ErrConversion
// when f has a fractional part.
func FromFloat64Exact(f float64) (Int, error) {
	return fromFloat(binary64, math.Float64bits(f), f, true)
}

// FromFloat32Exact is like FromFloat32 but also fails with ErrConversion
// when f has a fractional part.
func FromFloat32Exact(f float32) (Int, error) {
	return fromFloat(binary32, uint64(math.Float32bits(f)), float64(f), true)
}

func fromFloat(ff floatFormat, b uint64, f float64, exact bool) (Int, error) {
	expMask := 1<<ff.expBits - 1
	bias := expMask >> 1

	neg := b>>(ff.mantBits+ff.expBits) != 0
	exp := int(b>>ff.mantBits) & expMask
	frac := b & (1<<ff.mantBits - 1)

	if exp == expMask {
		return zero, ErrConversion.New("%s %v is not finite", ff.name, f)
	}
	if exp == 0 {
		// Zero or sub-normal.
		if exact && frac != 0 {
			return zero, ErrConversion.New("%s %v is not an integer", ff.name, f)
		}
		return zero, nil
	}

	sign := Positive
	if neg {
		sign = Negative
	}

	// |f| = mant * 2^e
	mant := frac | 1<<ff.mantBits
	e := exp - bias - int(ff.mantBits)
	if e >= 0 {
		return newInt(sign, shlNat(natFromUint64(mant), uint(e))), nil
	}

	// Shifts of 64 or more yield 0 for uint64, so the mask below covers all
	// of mant once -e reaches the word size.
	s := uint(-e)
	if exact && mant&(1<<s-1) != 0 {
		return zero, ErrConversion.New("%s %v is not an integer", ff.name, f)
	}

	return newInt(sign, natFromUint64(mant>>s)), nil
}

// round returns |x| rounded to prec significant bits, half to even, as
// mant*2^exp with mant < 2^prec.
func (x nat) round(prec uint) (mant uint64, exp int) {
	n := x.bitLen()
	if n <= int(prec) {
		return low64(x), 0
	}

	shift := uint(n) - prec
	mant = low64(shrNat(x, shift))

	if x.bit(shift-1) == 1 && (x.sticky(shift-1) || mant&1 == 1) {
		mant++
		if mant == 1<<prec {
			mant >>= 1
			shift++
		}
	}

	return mant, int(shift)
}

// fits reports why x cannot be represented exactly in ff, or nil if it
// can.
func (x Int) fits(ff floatFormat) error {
	n := x.mag.bitLen()
	if n > ff.maxBitLen() {
		return ErrOverflow.New("%d-bit integer exceeds the %s range", n, ff.name)
	}
	if sig := n - int(x.mag.trailingZeroBits()); sig > int(ff.precision()) {
		return ErrOverflow.New("%d significant bits do not fit the %d-bit %s mantissa",
			sig, ff.precision(), ff.name)
	}
	return nil
}

// Float64 returns the float64 nearest to x, rounding half to even.
// Values beyond the float64 range become ±Inf.
func (x Int) Float64() float64 {
	mant, exp := x.mag.round(binary64.precision())

	// Ldexp saturates to Inf past the largest finite exponent.
	f := math.Ldexp(float64(mant), exp)
	if x.sign == Negative {
		f = -f
	}

	return f
}

// Float32 returns the float32 nearest to x, rounding half to even.
// Values beyond the float32 range become ±Inf.
func (x Int) Float32() float32 {
	mant, exp := x.mag.round(binary32.precision())

	var f float32
	if wordLen(Word(mant))+exp > binary32.maxBitLen() {
		f = float32(math.Inf(1))
	} else {
		f = float32(math.Ldexp(float64(mant), exp))
	}
	if x.sign == Negative {
		f = -f
	}

	return f
}

// Float64Exact returns x as a float64. It fails with ErrOverflow if x
// needs more than 53 significant bits or lies beyond the float64 range.
func (x Int) Float64Exact() (float64, error) {
	if err := x.fits(binary64); err != nil {
		return 0, err
	}
	return x.Float64(), nil
}

// Float32Exact returns x as a float32. It fails with ErrOverflow if x
// needs more than 24 significant bits or lies beyond the float32 range.
func (x Int) Float32Exact() (float32, error) {
	if err := x.fits(binary32); err != nil {
		return 0, err
	}
	return x.Float32(), nil
}
