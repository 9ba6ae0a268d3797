package integer

// Add returns x+y.
func (x Int) Add(y Int) Int {
	switch {
	case x.sign == Zero:
		return y
	case y.sign == Zero:
		return x
	case x.sign == y.sign:
		return newInt(x.sign, addNat(x.mag, y.mag))
	}

	// Signs differ: the operand with the larger magnitude decides the sign.
	switch x.mag.cmp(y.mag) {
	case 1:
		return newInt(x.sign, subNat(x.mag, y.mag))
	case -1:
		return newInt(y.sign, subNat(y.mag, x.mag))
	}
	return zero
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	if x.sign == Zero || y.sign == Zero {
		return zero
	}
	return newInt(x.sign*y.sign, mulNat(x.mag, y.mag))
}

// QuoRem returns the quotient x/y truncated toward zero and the remainder
// x - y*(x/y), which carries the sign of x. It fails with
// ErrDivisionByZero when y is 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.sign == Zero {
		return zero, zero, ErrDivisionByZero.New("divide by zero")
	}
	if x.sign == Zero {
		return zero, zero, nil
	}

	qm, rm := divNat(x.mag, y.mag)

	return newInt(x.sign*y.sign, qm), newInt(x.sign, rm), nil
}

// Quo returns x/y truncated toward zero.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x/y with the sign of x.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Mod returns the Euclidean modulus of x and y, which lies in [0, |y|).
func (x Int) Mod(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	if err != nil {
		return zero, err
	}
	if r.sign == Negative {
		r = r.Add(y.Abs())
	}
	return r, nil
}

// Lsh returns x*2^n.
func (x Int) Lsh(n uint) Int {
	return newInt(x.sign, shlNat(x.mag, n))
}

// Rsh returns x/2^n truncated toward zero. This is a shift of the
// magnitude, so Rsh(-1, 1) is 0 rather than -1.
func (x Int) Rsh(n uint) Int {
	return newInt(x.sign, shrNat(x.mag, n))
}

// Pow returns x^e. Pow(0, 0) is 1.
func (x Int) Pow(e uint) Int {
	sign := x.sign
	if sign == Negative && e&1 == 0 {
		sign = Positive
	}
	return newInt(sign, powNat(x.mag, e))
}

// Gcd returns the greatest common divisor of |x| and |y|. Gcd(0, 0) is 0.
func Gcd(x, y Int) Int {
	return newInt(Positive, gcdNat(x.mag, y.mag))
}

// Sqrt returns floor(sqrt(x)). It fails with ErrNegative for x < 0.
func (x Int) Sqrt() (Int, error) {
	if x.sign == Negative {
		return zero, ErrNegative.New("square root of negative number")
	}
	return newInt(Positive, sqrtNat(x.mag)), nil
}
