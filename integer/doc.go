// Package integer implements immutable arbitrary-precision signed integers.
//
// An Int is a sign paired with a magnitude stored as machine words, least
// significant word first. The zero value is the integer 0 and every Int is
// kept in canonical form: the magnitude has no leading zero words and zero
// has no sign. Operations return new values and never modify their
// operands, so an Int may be shared between goroutines without locking.
//
// The word width is fixed at build time: 64 bits by default, 32 bits with
// the bigint32 build tag.
//
// Arithmetic never fails except for division by zero. Conversions that can
// lose information come in two flavors: exact ones return ErrOverflow or
// ErrConversion, the others truncate, round or saturate.
//
//	x := integer.MustParse("123456789123456789123456789", 10)
//	y := x.Mul(x).Sub(integer.One())
//	q, r, err := y.QuoRem(x)
//
// Integers can be written to a stream with an Encoder, which frames them as
// control blocks. A signed value is stored as its magnitude shifted left by
// one with the sign in the lowest bit:
//
//	 0 -> 0b0000_0000
//	+1 -> 0b0000_0010
//	-1 -> 0b0000_0011
package integer
