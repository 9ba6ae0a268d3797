package integer

// nat is an unsigned magnitude stored least significant word first.
//
// A normalized nat has no most-significant zero words; the canonical zero
// is the empty (nil) nat. Every nat handed to an Int is normalized and is
// never written to again, so normalized nats may be shared freely.
type nat []Word

const wordBytes = WordBits / 8

// karatsubaThreshold is the operand length, in words, from which
// multiplication switches from the schoolbook method to Karatsuba.
var karatsubaThreshold = 40

// basicMulHook, when set, observes the operand lengths of every
// schoolbook product.
var basicMulHook func(m, n int)

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nil
	}
	return z[:i]
}

func natFromWord(w Word) nat {
	if w == 0 {
		return nil
	}
	return nat{w}
}

func natFromWords(words []Word) nat {
	z := make(nat, len(words))
	copy(z, words)
	return z.norm()
}

// cmp compares normalized magnitudes.
func (x nat) cmp(y nat) (r int) {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	i := m - 1
	for i >= 0 && x[i] == y[i] {
		i--
	}
	switch {
	case i < 0:
		return 0
	case x[i] < y[i]:
		return -1
	}
	return 1
}

func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*WordBits + wordLen(x[i])
	}
	return 0
}

func (x nat) trailingZeroBits() uint {
	for i, d := range x {
		if d != 0 {
			return uint(i)*WordBits + ntz(d)
		}
	}
	return 0
}

func (x nat) bit(i uint) uint {
	j := i / WordBits
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j]>>(i%WordBits)) & 1
}

// sticky reports whether any of the low i bits of x is set.
func (x nat) sticky(i uint) bool {
	j := i / WordBits
	if j >= uint(len(x)) {
		return len(x) > 0
	}
	for _, d := range x[:j] {
		if d != 0 {
			return true
		}
	}
	s := i % WordBits
	return s != 0 && x[j]<<(WordBits-s) != 0
}

func addNat(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return addNat(y, x)
	}
	if n == 0 {
		return x
	}

	z := make(nat, m+1)
	c := addVV(z[:n], x[:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// subNat returns x-y. It requires x >= y.
func subNat(x, y nat) nat {
	m, n := len(x), len(y)
	if n == 0 {
		return x
	}

	z := make(nat, m)
	c := subVV(z[:n], x[:n], y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("integer: magnitude underflow")
	}

	return z.norm()
}

// mulAddWW returns x*y + r.
func mulAddWW(x nat, y, r Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return natFromWord(r)
	}

	z := make(nat, m+1)
	z[m] = mulAddVWW(z[:m], x, y, r)

	return z.norm()
}

// addAt adds x to z starting at word i. The sum must fit in z.
func addAt(z, x nat, i int) {
	if n := len(x); n > 0 {
		if c := addVV(z[i:i+n], z[i:], x); c != 0 {
			if j := i + n; j < len(z) {
				addVW(z[j:], z[j:], c)
			}
		}
	}
}

// basicMul stores x*y in z, which must hold len(x)+len(y) words.
func basicMul(z, x, y nat) {
	clear(z[:len(x)+len(y)])
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
	if basicMulHook != nil {
		basicMulHook(len(x), len(y))
	}
}

func mulNat(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	if n == 0 {
		return nil
	}
	if n == 1 {
		return mulAddWW(x, y[0], 0)
	}
	if n < karatsubaThreshold {
		z := make(nat, m+n)
		basicMul(z, x, y)
		return z.norm()
	}

	return karatsuba(x, y)
}

// karatsuba multiplies x and y with len(x) >= len(y) >= karatsubaThreshold.
//
//	x = x1*B^k + x0
//	y = y1*B^k + y0
//	x*y = z2*B^2k + (z1 - z2 - z0)*B^k + z0
//
// where z0 = x0*y0, z2 = x1*y1 and z1 = (x0+x1)*(y0+y1).
func karatsuba(x, y nat) nat {
	m, n := len(x), len(y)
	k := m / 2

	z := make(nat, m+n)

	// Operands of very different length are multiplied in len(y) sized
	// chunks of x so that every recursive product stays balanced.
	if n < k {
		for i := 0; i < m; i += n {
			p := mulNat(x[i:min(i+n, m)].norm(), y)
			addAt(z, p, i)
		}
		return z.norm()
	}

	x0, x1 := x[:k].norm(), x[k:].norm()
	y0, y1 := y[:k].norm(), y[k:].norm()

	z0 := mulNat(x0, y0)
	z2 := mulNat(x1, y1)
	z1 := mulNat(addNat(x0, x1), addNat(y0, y1))
	z1 = subNat(subNat(z1, z2), z0)

	addAt(z, z0, 0)
	addAt(z, z1, k)
	addAt(z, z2, 2*k)

	return z.norm()
}

// divW returns x/y and x%y for a single word y != 0.
func divW(x nat, y Word) (q nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("integer: division by zero word")
	case y == 1:
		return x, 0
	case m == 0:
		return nil, 0
	}

	q = make(nat, m)
	r = divWVW(q, 0, x, y)

	return q.norm(), r
}

// divNat returns the quotient and remainder of u/v for v != 0.
func divNat(u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic("integer: division by zero magnitude")
	}
	if u.cmp(v) < 0 {
		return nil, u
	}
	if len(v) == 1 {
		q, r1 := divW(u, v[0])
		return q, natFromWord(r1)
	}

	return divLarge(u, v)
}

// divLarge implements Knuth's algorithm D (TAOCP vol. 2, 4.3.1) for
// len(uIn) >= len(vIn) >= 2.
func divLarge(uIn, vIn nat) (q, r nat) {
	n := len(vIn)
	m := len(uIn) - n

	// Normalize so that the divisor's top word has its high bit set; this
	// keeps each quotient word estimate at most two too large.
	shift := nlz(vIn[n-1])
	v := make(nat, n)
	shlVU(v, vIn, shift)
	u := make(nat, len(uIn)+1)
	u[len(uIn)] = shlVU(u[:len(uIn)], uIn, shift)

	q = make(nat, m+1)
	qhatv := make(nat, n+1)

	vn1 := v[n-1]
	vn2 := v[n-2]
	for j := m; j >= 0; j-- {
		qhat := _M
		if ujn := u[j+n]; ujn != vn1 {
			var rhat Word
			qhat, rhat = divWW(ujn, u[j+n-1], vn1)

			x1, x2 := mulWW(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prev := rhat
				rhat += vn1
				if rhat < prev {
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		qhatv[n] = mulAddVWW(qhatv[:n], v, qhat, 0)
		if c := subVV(u[j:j+n+1], u[j:], qhatv); c != 0 {
			c := addVV(u[j:j+n], u[j:], v)
			u[j+n] += c
			qhat--
		}

		q[j] = qhat
	}

	r = make(nat, n)
	shrVU(r, u[:n], shift)

	return q.norm(), r.norm()
}

func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}

func shlNat(x nat, s uint) nat {
	m := len(x)
	if m == 0 {
		return nil
	}
	if s == 0 {
		return x
	}

	n := m + int(s/WordBits)
	z := make(nat, n+1)
	z[n] = shlVU(z[n-m:n], x, s%WordBits)

	return z.norm()
}

func shrNat(x nat, s uint) nat {
	m := len(x)
	if s/WordBits >= uint(m) {
		return nil
	}
	if s == 0 {
		return x
	}

	n := m - int(s/WordBits)
	z := make(nat, n)
	shrVU(z, x[m-n:], s%WordBits)

	return z.norm()
}

func powNat(x nat, e uint) nat {
	z := nat{1}
	for e > 0 {
		if e&1 == 1 {
			z = mulNat(z, x)
		}
		e >>= 1
		if e > 0 {
			x = mulNat(x, x)
		}
	}
	return z
}

func gcdNat(a, b nat) nat {
	for len(b) > 0 {
		_, r := divNat(a, b)
		a, b = b, r
	}
	return a
}

// sqrtNat returns floor(sqrt(x)) by Newton iteration from an initial
// estimate that is never below the root.
func sqrtNat(x nat) nat {
	if len(x) == 0 {
		return nil
	}

	z := shlNat(nat{1}, uint(x.bitLen()+1)/2)
	for {
		q, _ := divNat(x, z)
		next := shrNat(addNat(z, q), 1)
		if next.cmp(z) >= 0 {
			return z
		}
		z = next
	}
}

// bytes returns the big-endian representation of x without leading zero
// bytes.
func (x nat) bytes() []byte {
	buf := make([]byte, len(x)*wordBytes)
	i := len(buf)
	for _, d := range x {
		for j := 0; j < wordBytes; j++ {
			i--
			buf[i] = byte(d)
			d >>= 8
		}
	}
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

func natFromBytes(buf []byte) nat {
	z := make(nat, (len(buf)+wordBytes-1)/wordBytes)

	k := 0
	s := uint(0)
	var d Word
	for i := len(buf); i > 0; i-- {
		d |= Word(buf[i-1]) << s
		if s += 8; s == WordBits {
			z[k] = d
			k++
			s = 0
			d = 0
		}
	}
	if k < len(z) {
		z[k] = d
	}

	return z.norm()
}
