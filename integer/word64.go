//go:build !bigint32

package integer

import "math/bits"

// Word is a single digit of a magnitude.
type Word = uint64

// WordBits is the width of a Word in bits.
const WordBits = 64

const _M = ^Word(0)

func addWW(x, y, c Word) (z1, z0 Word) {
	z0, z1 = bits.Add64(x, y, c)
	return
}

func subWW(x, y, b Word) (z1, z0 Word) {
	z0, z1 = bits.Sub64(x, y, b)
	return
}

func mulWW(x, y Word) (z1, z0 Word) {
	return bits.Mul64(x, y)
}

// divWW requires u1 < v.
func divWW(u1, u0, v Word) (q, r Word) {
	return bits.Div64(u1, u0, v)
}

func nlz(x Word) uint {
	return uint(bits.LeadingZeros64(x))
}

func ntz(x Word) uint {
	return uint(bits.TrailingZeros64(x))
}

func wordLen(x Word) int {
	return bits.Len64(x)
}

func natFromUint64(u uint64) nat {
	if u == 0 {
		return nil
	}
	return nat{u}
}

// low64 returns the low 64 bits of x.
func low64(x nat) uint64 {
	if len(x) == 0 {
		return 0
	}
	return x[0]
}
