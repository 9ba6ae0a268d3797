package integer

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func randInt(r *rand.Rand, words int) Int {
	ws := make([]Word, words)
	for i := range ws {
		ws[i] = Word(r.Uint64())
	}

	sign := Positive
	if r.IntN(2) == 0 {
		sign = Negative
	}

	return FromWords(sign, ws)
}

func toBig(t testing.TB, x Int) *big.Int {
	t.Helper()

	return oracle(t, x.String())
}

// withThreshold runs fn with the Karatsuba threshold set to n.
func withThreshold(n int, fn func()) {
	saved := karatsubaThreshold
	karatsubaThreshold = n
	defer func() { karatsubaThreshold = saved }()

	fn()
}

func TestArithmetic(t *testing.T) {
	type TC struct {
		name string
		x, y string
		add  string
		sub  string
		mul  string
		quo  string
		rem  string
	}

	tcs := []TC{
		{name: "small", x: "7", y: "2", add: "9", sub: "5", mul: "14", quo: "3", rem: "1"},
		{name: "neg dividend", x: "-7", y: "2", add: "-5", sub: "-9", mul: "-14", quo: "-3", rem: "-1"},
		{name: "neg divisor", x: "7", y: "-2", add: "5", sub: "9", mul: "-14", quo: "-3", rem: "1"},
		{name: "both neg", x: "-7", y: "-2", add: "-9", sub: "-5", mul: "14", quo: "3", rem: "-1"},
		{name: "zero dividend", x: "0", y: "-5", add: "-5", sub: "5", mul: "0", quo: "0", rem: "0"},
		{name: "exact", x: "-6", y: "3", add: "-3", sub: "-9", mul: "-18", quo: "-2", rem: "0"},
		{
			name: "carry",
			x:    "18446744073709551615",
			y:    "1",
			add:  "18446744073709551616",
			sub:  "18446744073709551614",
			mul:  "18446744073709551615",
			quo:  "18446744073709551615",
			rem:  "0",
		},
		{
			name: "borrow",
			x:    "-340282366920938463463374607431768211456",
			y:    "-1",
			add:  "-340282366920938463463374607431768211457",
			sub:  "-340282366920938463463374607431768211455",
			mul:  "340282366920938463463374607431768211456",
			quo:  "340282366920938463463374607431768211456",
			rem:  "0",
		},
		{
			name: "large",
			x:    "123456789123456789123456789123456789",
			y:    "-987654321987654321",
			add:  "123456789123456788135802467135802468",
			sub:  "123456789123456790111111111111111110",
			mul:  "-121932631356500531469135800469135800347203169112635269",
			quo:  "-124999998860937500",
			rem:  "137519289137519289",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x, y := MustParse(tc.x, 10), MustParse(tc.y, 10)

			require.Equal(t, tc.add, x.Add(y).String())
			require.Equal(t, tc.sub, x.Sub(y).String())
			require.Equal(t, tc.mul, x.Mul(y).String())

			q, r, err := x.QuoRem(y)
			require.NoError(t, err)
			require.Equal(t, tc.quo, q.String())
			require.Equal(t, tc.rem, r.String())

			// These checks ensure the expected values are right.
			bx, by := oracle(t, tc.x), oracle(t, tc.y)
			require.Equal(t, tc.add, new(big.Int).Add(bx, by).String())
			require.Equal(t, tc.mul, new(big.Int).Mul(bx, by).String())
			bq, br := new(big.Int).QuoRem(bx, by, new(big.Int))
			require.Equal(t, tc.quo, bq.String())
			require.Equal(t, tc.rem, br.String())
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "123456789123456789123456789"} {
		x := MustParse(s, 10)

		_, _, err := x.QuoRem(ZeroInt())
		require.Error(t, err, s)
		require.True(t, ErrDivisionByZero.Has(err), s)

		_, err = x.Quo(Int{})
		require.True(t, ErrDivisionByZero.Has(err), s)

		_, err = x.Rem(Int{})
		require.True(t, ErrDivisionByZero.Has(err), s)

		_, err = x.Mod(Int{})
		require.True(t, ErrDivisionByZero.Has(err), s)
	}
}

func TestDivisionIdentity(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		x := randInt(r, 1+r.IntN(12))
		y := randInt(r, 1+r.IntN(6))
		if r.IntN(4) == 0 {
			// Exercise the single word and top-word-heavy paths.
			y = FromWords(y.Sign(), []Word{Word(r.Uint64()) | 1<<(WordBits-1)})
		}

		q, rem, err := x.QuoRem(y)
		require.NoError(t, err)

		require.True(t, q.Mul(y).Add(rem).Equal(x), "x=%s y=%s\n%s", x, y, spew.Sdump(q, rem))
		require.Equal(t, -1, rem.CmpAbs(y))
		require.Contains(t, []Sign{x.Sign(), Zero}, rem.Sign())

		bq, br := new(big.Int).QuoRem(toBig(t, x), toBig(t, y), new(big.Int))
		requireOracle(t, bq, q)
		requireOracle(t, br, rem)
	}
}

func TestRingLaws(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 200; i++ {
		x := randInt(r, r.IntN(8))
		y := randInt(r, r.IntN(8))
		z := randInt(r, r.IntN(8))

		require.True(t, x.Add(x.Neg()).IsZero())
		require.True(t, x.Sub(x).IsZero())
		require.True(t, x.Mul(ZeroInt()).IsZero())
		require.True(t, x.Mul(One()).Equal(x))

		require.True(t, x.Add(y).Equal(y.Add(x)))
		require.True(t, x.Mul(y).Equal(y.Mul(x)))
		require.True(t, x.Add(y).Add(z).Equal(x.Add(y.Add(z))))
		require.True(t, x.Mul(y).Mul(z).Equal(x.Mul(y.Mul(z))))
		require.True(t, x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z))))

		require.Equal(t, toBig(t, x).Cmp(toBig(t, y)), x.Cmp(y))
	}
}

func TestKaratsuba(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))

	t.Run("cross check", func(t *testing.T) {
		sizes := [][2]int{
			{8, 8},
			{9, 8},
			{16, 16},
			{17, 31},
			{40, 40},
			{64, 3},
			{100, 9},
			{129, 127},
		}

		for i, size := range sizes {
			t.Run(fmt.Sprintf("[%d]%dx%d", i, size[0], size[1]), func(t *testing.T) {
				x, y := randInt(r, size[0]), randInt(r, size[1])

				var fast, slow Int
				withThreshold(8, func() { fast = x.Mul(y) })
				withThreshold(1<<30, func() { slow = x.Mul(y) })

				require.True(t, fast.Equal(slow))
				requireOracle(t, new(big.Int).Mul(toBig(t, x), toBig(t, y)), fast)
			})
		}
	})

	t.Run("square", func(t *testing.T) {
		x := randInt(r, 50)

		var fast, slow Int
		withThreshold(8, func() { fast = x.Mul(x) })
		withThreshold(1<<30, func() { slow = x.Mul(x) })

		require.True(t, fast.Equal(slow))
		require.Equal(t, Positive, fast.Sign())
	})

	t.Run("sub-quadratic", func(t *testing.T) {
		count := func(words int) (products int) {
			x, y := randInt(r, words), randInt(r, words)

			basicMulHook = func(m, n int) { products += m * n }
			defer func() { basicMulHook = nil }()

			withThreshold(8, func() { x.Mul(y) })

			return products
		}

		small := count(64)
		large := count(256)
		t.Logf("word products: %d -> %d", small, large)

		require.NotZero(t, small)
		// Schoolbook would grow 16x for a 4x larger operand, Karatsuba
		// about 9x.
		require.Less(t, float64(large)/float64(small), 12.0)
	})
}

func TestShift(t *testing.T) {
	type TC struct {
		name string
		x    string
		n    uint
		lsh  string
		rsh  string
	}

	tcs := []TC{
		{name: "zero", x: "0", n: 65, lsh: "0", rsh: "0"},
		{name: "one", x: "1", n: 64, lsh: "18446744073709551616", rsh: "0"},
		{name: "word", x: "0xffffffffffffffffffffffffffffffff", n: 4, lsh: "0xffffffffffffffffffffffffffffffff0", rsh: "0xfffffffffffffffffffffffffffffff"},
		{name: "negative", x: "-5", n: 1, lsh: "-10", rsh: "-2"},
		{name: "toward zero", x: "-1", n: 1, lsh: "-2", rsh: "0"},
		{name: "none", x: "-12345", n: 0, lsh: "-12345", rsh: "-12345"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x := MustParse(tc.x, 0)
			require.True(t, MustParse(tc.lsh, 0).Equal(x.Lsh(tc.n)), x.Lsh(tc.n).Text(16))
			require.True(t, MustParse(tc.rsh, 0).Equal(x.Rsh(tc.n)), x.Rsh(tc.n).Text(16))
		})
	}
}

func TestPowGcdSqrtMod(t *testing.T) {
	t.Run("pow", func(t *testing.T) {
		require.Equal(t, "1", ZeroInt().Pow(0).String())
		require.Equal(t, "0", ZeroInt().Pow(3).String())
		require.Equal(t, "-8", FromInt64(-2).Pow(3).String())
		require.Equal(t, "16", FromInt64(-2).Pow(4).String())
		require.Equal(t, new(big.Int).Exp(big.NewInt(3), big.NewInt(200), nil).String(), FromInt64(3).Pow(200).String())
	})

	t.Run("gcd", func(t *testing.T) {
		require.Equal(t, "6", Gcd(FromInt64(-12), FromInt64(18)).String())
		require.Equal(t, "5", Gcd(FromInt64(0), FromInt64(-5)).String())
		require.Equal(t, "0", Gcd(Int{}, Int{}).String())

		a := MustParse("123456789123456789123456789", 10)
		b := MustParse("987654321987654321", 10)
		ba, bb := oracle(t, a.String()), oracle(t, b.String())
		require.Equal(t, new(big.Int).GCD(nil, nil, ba, bb).String(), Gcd(a, b).String())
	})

	t.Run("sqrt", func(t *testing.T) {
		for _, s := range []string{"0", "1", "2", "3", "4", "15", "16", "17", "18446744073709551615", "340282366920938463463374607431768211456", "99999999999999999999999999999999999999999"} {
			x := MustParse(s, 10)
			z, err := x.Sqrt()
			require.NoError(t, err, s)
			require.Equal(t, new(big.Int).Sqrt(oracle(t, s)).String(), z.String(), s)
		}

		_, err := FromInt64(-4).Sqrt()
		require.Error(t, err)
		require.True(t, ErrNegative.Has(err))
	})

	t.Run("mod", func(t *testing.T) {
		type TC struct {
			x, y, want int64
		}

		tcs := []TC{
			{7, 3, 1},
			{-7, 3, 2},
			{7, -3, 1},
			{-7, -3, 2},
			{-6, 3, 0},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%d mod %d", i, tc.x, tc.y), func(t *testing.T) {
				z, err := FromInt64(tc.x).Mod(FromInt64(tc.y))
				require.NoError(t, err)
				require.Equal(t, FromInt64(tc.want).String(), z.String())
			})
		}
	})
}

func TestConcurrentUse(t *testing.T) {
	x := MustParse("123456789123456789123456789123456789123456789", 10)
	y := MustParse("-987654321987654321987654321", 10)
	want := x.Mul(y).String()

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				if got := x.Mul(y).String(); got != want {
					return Error.New("got %s, want %s", got, want)
				}

				q, err := x.Mul(y).Quo(y)
				if err != nil {
					return err
				}
				if !q.Equal(x) {
					return Error.New("quotient %s", q)
				}

				if !One().Add(ZeroInt()).Equal(One()) {
					return Error.New("shared constants changed")
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	require.Equal(t, "1", One().String())
}
