package integer

// Vector kernels over word slices. Unless noted, z, x and y have the same
// length and the returned word is the carry (or borrow) out of the top.

func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	z1, z0 = mulWW(x, y)
	var cc Word
	cc, z0 = addWW(z0, c, 0)
	z1 += cc
	return
}

func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		c, z[i] = addWW(x[i], y[i], c)
	}
	return
}

func subVV(z, x, y []Word) (c Word) {
	for i := range z {
		c, z[i] = subWW(x[i], y[i], c)
	}
	return
}

func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		c, z[i] = addWW(x[i], c, 0)
	}
	return
}

func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		c, z[i] = subWW(x[i], c, 0)
	}
	return
}

// shlVU requires s < WordBits.
func shlVU(z, x []Word, s uint) (c Word) {
	if n := len(z); n > 0 {
		ŝ := WordBits - s
		w1 := x[n-1]
		c = w1 >> ŝ
		for i := n - 1; i > 0; i-- {
			w := w1
			w1 = x[i-1]
			z[i] = w<<s | w1>>ŝ
		}
		z[0] = w1 << s
	}
	return
}

// shrVU requires s < WordBits.
func shrVU(z, x []Word, s uint) (c Word) {
	if n := len(z); n > 0 {
		ŝ := WordBits - s
		w1 := x[0]
		c = w1 << ŝ
		for i := 0; i < n-1; i++ {
			w := w1
			w1 = x[i+1]
			z[i] = w>>s | w1<<ŝ
		}
		z[n-1] = w1 >> s
	}
	return
}

func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW adds x*y to z in place.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		var cc Word
		cc, z[i] = addWW(z0, c, 0)
		c = z1 + cc
	}
	return
}

// divWVW divides xn:x by y, storing the quotient in z. It requires xn < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return
}
