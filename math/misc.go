package math

import (
	"math/bits"

	"github.com/db47h/bigfix"
)

// constants
var (
	one = bigfix.FixedFromInt64(1)
	two = bigfix.FixedFromInt64(2)
)

// maxExp is the largest integer part accepted by the exponential functions.
// e**maxExp has about 24 million integer bits.
const maxExp = 1 << 24

func precOrDefault(prec uint) uint {
	if prec == 0 {
		return bigfix.DefaultPrec
	}
	return prec
}

// guardBits returns the number of extra fractional bits carried by
// intermediate results of a computation rounded to prec bits.
func guardBits(prec uint) uint { return uint(bits.Len(prec)) + 10 }

// ulp returns 2**-prec.
func ulp(prec uint) bigfix.Fixed { return bigfix.NewFixed(bigfix.NewInt(1), prec) }

// expBits returns an upper bound of log2(n × e**n), the number of bits by which
// e**n magnifies an absolute error.
func expBits(n uint64) uint {
	return uint(n/1000*1443+n%1000*1443/1000+1) + uint(bits.Len64(n))
}

// logBits returns the bit length of an upper bound of |log2(x)|, x != 0.
func logBits(x bigfix.Fixed) uint {
	return uint(bits.Len(uint(x.Value().Magnitude().BitLen()) + x.Scale()))
}

// expArg returns n as an uint64. It panics with ErrExponentTooLarge if n is
// larger than maxExp.
func expArg(n bigfix.Uint) uint64 {
	k, ok := n.Uint64()
	if !ok || k > maxExp {
		panic(ErrExponentTooLarge)
	}
	return k
}

// pow returns x**n with wp fractional bits. Each intermediate product is
// truncated to wp bits; the caller is responsible for allocating guard bits and
// rounding the result.
func pow(x bigfix.Fixed, n uint64, wp uint) bigfix.Fixed {
	if n == 0 {
		return one.RoundTo(wp, bigfix.Down)
	}
	z := x.RoundTo(wp, bigfix.Down)
	y := one
	for n > 1 {
		if n%2 != 0 {
			y = y.Mul(z).RoundTo(wp, bigfix.Down)
		}
		z = z.Mul(z).RoundTo(wp, bigfix.Down)
		n /= 2
	}
	return z.Mul(y).RoundTo(wp, bigfix.Down)
}
