package integer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Radix bounds accepted by Parse and Text.
const (
	MinRadix = 2
	MaxRadix = 36
)

// maxScientificExponent bounds the decimal exponent accepted by
// ParseScientific.
const maxScientificExponent = 1_000_000

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

func digitValue(ch byte) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		return int(ch-'A') + 10
	}
	return MaxRadix
}

func prefixRadix(ch byte) int {
	switch ch {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

// maxPow returns the largest power p = b^n that fits in a Word.
func maxPow(b Word) (p Word, n int) {
	p, n = b, 1
	for lim := _M / b; p <= lim; {
		p *= b
		n++
	}
	return p, n
}

// Parse returns the integer denoted by s in the given radix.
//
// The text is an optional sign followed by digits; letters stand for
// digits from 10 up and may be of either case. A "0x", "0o" or "0b" prefix
// is accepted when it matches the radix. Radix 0 selects the radix from the
// prefix, defaulting to 10.
//
// Failures are in the ErrParse class and wrap a *SyntaxError.
func Parse(s string, radix int) (Int, error) {
	if radix != 0 && (radix < MinRadix || radix > MaxRadix) {
		return zero, syntaxError(s, 0, fmt.Sprintf("unsupported radix %d", radix))
	}

	i := 0
	sign := Positive
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = Negative
		}
		i++
	}

	if i+1 < len(s) && s[i] == '0' {
		if p := prefixRadix(s[i+1]); p != 0 && (radix == 0 || radix == p) {
			radix = p
			i += 2
		}
	}
	if radix == 0 {
		radix = 10
	}

	if i == len(s) {
		return zero, syntaxError(s, i, "missing digits")
	}

	mag, err := parseDigits(s, i, radix)
	if err != nil {
		return zero, err
	}

	return newInt(sign, mag), nil
}

// parseDigits accumulates z = z*radix + digit over s[i:]. Digits are
// gathered into a single word first and folded into z one word-sized
// chunk at a time.
func parseDigits(s string, i, radix int) (z nat, err error) {
	b := Word(radix)
	bb, n := maxPow(b)

	var acc Word
	p := Word(1)
	count := 0
	for ; i < len(s); i++ {
		ch := s[i]
		d := digitValue(ch)
		if d >= radix {
			switch ch {
			case '+', '-':
				return nil, syntaxError(s, i, "unexpected sign")
			}
			return nil, syntaxError(s, i,
				fmt.Sprintf("invalid digit %q for radix %d", ch, radix))
		}

		acc = acc*b + Word(d)
		p *= b
		count++
		if count == n {
			z = mulAddWW(z, bb, acc)
			acc, p, count = 0, 1, 0
		}
	}
	if count > 0 {
		z = mulAddWW(z, p, acc)
	}

	return z, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string, radix int) Int {
	x, err := Parse(s, radix)
	if err != nil {
		panic(err)
	}
	return x
}

// ParseScientific returns the integer denoted by a decimal number in
// scientific notation, such as "1.7976931348623157e+308". The value must be
// integral: "1.5e1" is 15 but "1.5" fails.
func ParseScientific(s string) (Int, error) {
	i := 0
	sign := Positive
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = Negative
		}
		i++
	}

	start := i
	var mant strings.Builder
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		mant.WriteByte(s[i])
	}
	frac := 0
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
			mant.WriteByte(s[i])
			frac++
		}
	}
	if mant.Len() == 0 {
		return zero, syntaxError(s, start, "missing digits")
	}

	exp := 0
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i == len(s) {
			return zero, syntaxError(s, i, "missing exponent")
		}
		e, err := strconv.Atoi(s[i:])
		if err != nil {
			return zero, syntaxError(s, i, "malformed exponent")
		}
		if e > maxScientificExponent || e < -maxScientificExponent {
			return zero, syntaxError(s, i, "exponent out of range")
		}
		exp = e
		i = len(s)
	}
	if i != len(s) {
		return zero, syntaxError(s, i, fmt.Sprintf("unexpected %q", s[i]))
	}

	ds := mant.String()
	m, err := parseDigits(ds, 0, 10)
	if err != nil {
		return zero, err
	}
	x := newInt(sign, m)

	ten := FromInt64(10)
	switch k := exp - frac; {
	case k >= 0:
		return x.Mul(ten.Pow(uint(k))), nil
	case x.IsZero():
		return zero, nil
	case -k > len(ds):
		return zero, syntaxError(s, 0, "not an integer")
	default:
		q, r, err := x.QuoRem(ten.Pow(uint(-k)))
		if err != nil {
			return zero, err
		}
		if !r.IsZero() {
			return zero, syntaxError(s, 0, "not an integer")
		}
		return q, nil
	}
}

// Text returns x in the given radix using lower-case letters for digits
// from 10 up. It panics if radix is outside [MinRadix, MaxRadix].
func (x Int) Text(radix int) string {
	return string(x.Append(nil, radix))
}

// Append appends Text(radix) to buf.
func (x Int) Append(buf []byte, radix int) []byte {
	if radix < MinRadix || radix > MaxRadix {
		panic("integer: illegal radix " + strconv.Itoa(radix))
	}
	switch x.sign {
	case Zero:
		return append(buf, '0')
	case Negative:
		buf = append(buf, '-')
	}
	return append(buf, x.mag.utoa(radix)...)
}

// String returns x in decimal.
func (x Int) String() string {
	return x.Text(10)
}

// utoa formats a non-zero magnitude by repeated division. Each division
// by the largest radix power fitting in a word yields a chunk of n digits.
func (x nat) utoa(radix int) []byte {
	b := Word(radix)
	bb, n := maxPow(b)

	s := make([]byte, 0, x.bitLen()/wordLen(b-1)+1)
	for q := x; len(q) > 0; {
		var r Word
		q, r = divW(q, bb)
		for j := 0; j < n && (len(q) > 0 || r != 0); j++ {
			s = append(s, digits[r%b])
			r /= b
		}
	}
	slices.Reverse(s)

	return s
}
