package integer

// Sign is the sign of an Int.
type Sign int8

// Signs. Zero is the sign of the integer zero and of nothing else.
const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	case Positive:
		return "positive"
	}
	return "invalid"
}

// Int is an immutable arbitrary-precision signed integer. The zero value
// is the integer 0.
type Int struct {
	sign Sign
	mag  nat
}

var (
	zero = Int{}
	one  = Int{sign: Positive, mag: nat{1}}
)

// ZeroInt returns 0.
func ZeroInt() Int { return zero }

// One returns 1.
func One() Int { return one }

// newInt pairs a sign with a magnitude and restores the canonical form.
// A zero magnitude always yields Zero; any other magnitude paired with
// Zero is taken as positive.
func newInt(sign Sign, mag nat) Int {
	mag = mag.norm()
	switch {
	case len(mag) == 0:
		return zero
	case sign < 0:
		return Int{sign: Negative, mag: mag}
	}
	return Int{sign: Positive, mag: mag}
}

// FromWords returns the integer with the given sign and magnitude words
// (least significant first). The words are copied and need not be
// normalized.
func FromWords(sign Sign, words []Word) Int {
	return newInt(sign, natFromWords(words))
}

// FromBytes returns the integer with the given sign and big-endian
// magnitude bytes.
func FromBytes(sign Sign, b []byte) Int {
	return newInt(sign, natFromBytes(b))
}

// Sign returns the sign of x.
func (x Int) Sign() Sign {
	return x.sign
}

// IsZero reports whether x is 0.
func (x Int) IsZero() bool {
	return x.sign == Zero
}

// Words returns a copy of the magnitude words of x, least significant
// first. Zero has no words.
func (x Int) Words() []Word {
	if len(x.mag) == 0 {
		return nil
	}
	words := make([]Word, len(x.mag))
	copy(words, x.mag)
	return words
}

// Bytes returns the big-endian magnitude of x. Zero has no bytes.
func (x Int) Bytes() []byte {
	return x.mag.bytes()
}

// BitLen returns the length of |x| in bits. The bit length of 0 is 0.
func (x Int) BitLen() int {
	return x.mag.bitLen()
}

// Bit returns bit i of |x|.
func (x Int) Bit(i uint) uint {
	return x.mag.bit(i)
}

// TrailingZeroBits returns the number of consecutive zero bits at the
// bottom of |x|.
func (x Int) TrailingZeroBits() uint {
	return x.mag.trailingZeroBits()
}

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{sign: -x.sign, mag: x.mag}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.sign == Negative {
		return Int{sign: Positive, mag: x.mag}
	}
	return x
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.sign < y.sign:
		return -1
	case x.sign > y.sign:
		return 1
	case x.sign == Negative:
		return -x.mag.cmp(y.mag)
	}
	return x.mag.cmp(y.mag)
}

// CmpAbs compares |x| and |y|.
func (x Int) CmpAbs(y Int) int {
	return x.mag.cmp(y.mag)
}

// Equal reports whether x and y denote the same integer.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Min returns the smaller of x and y.
func Min(x, y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}
