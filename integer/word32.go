//go:build bigint32

package integer

import "math/bits"

// Word is a single digit of a magnitude.
type Word = uint32

// WordBits is the width of a Word in bits.
const WordBits = 32

const _M = ^Word(0)

func addWW(x, y, c Word) (z1, z0 Word) {
	z0, z1 = bits.Add32(x, y, c)
	return
}

func subWW(x, y, b Word) (z1, z0 Word) {
	z0, z1 = bits.Sub32(x, y, b)
	return
}

func mulWW(x, y Word) (z1, z0 Word) {
	return bits.Mul32(x, y)
}

// divWW requires u1 < v.
func divWW(u1, u0, v Word) (q, r Word) {
	return bits.Div32(u1, u0, v)
}

func nlz(x Word) uint {
	return uint(bits.LeadingZeros32(x))
}

func ntz(x Word) uint {
	return uint(bits.TrailingZeros32(x))
}

func wordLen(x Word) int {
	return bits.Len32(x)
}

func natFromUint64(u uint64) nat {
	lo := Word(u)
	hi := Word(u >> 32)
	switch {
	case hi != 0:
		return nat{lo, hi}
	case lo != 0:
		return nat{lo}
	}
	return nil
}

// low64 returns the low 64 bits of x.
func low64(x nat) uint64 {
	switch len(x) {
	case 0:
		return 0
	case 1:
		return uint64(x[0])
	}
	return uint64(x[0]) | uint64(x[1])<<32
}
