package math

import (
	"math/bits"

	"github.com/db47h/bigfix"
)

// ExpUint returns e**n rounded half up to prec fractional bits. If prec is 0,
// bigfix.DefaultPrec is used. It panics with ErrExponentTooLarge if n > 2**24.
func (c *Cache) ExpUint(n bigfix.Uint, prec uint) bigfix.Fixed {
	prec = precOrDefault(prec)
	k := expArg(n)
	wp := prec + guardBits(prec) + expBits(k)
	return c.expUint(k, wp).RoundTo(prec, bigfix.HalfUp)
}

// ExpInt returns e**n rounded half up to prec fractional bits. Negative
// exponents are computed as 1/e**|n|. It panics with ErrExponentTooLarge if
// |n| > 2**24.
func (c *Cache) ExpInt(n bigfix.Int, prec uint) bigfix.Fixed {
	if n.Sign() >= 0 {
		return c.ExpUint(n.Magnitude(), prec)
	}
	prec = precOrDefault(prec)
	k := expArg(n.Magnitude())
	wp := prec + guardBits(prec)
	// e**k >= 1: a relative error of 2**-wp on the divisor is enough.
	d := c.expUint(k, wp+uint(bits.Len64(k))+2)
	return one.Quo(d, wp).RoundTo(prec, bigfix.HalfUp)
}

// Exp returns e**x rounded half up to prec fractional bits. If prec is 0,
// bigfix.DefaultPrec is used. It panics with ErrExponentTooLarge if
// |x| > 2**24.
func (c *Cache) Exp(x bigfix.Fixed, prec uint) bigfix.Fixed {
	prec = precOrDefault(prec)
	g := guardBits(prec)
	if x.Sign() < 0 {
		ax := x.Abs()
		k := expArg(ax.IntPart().Magnitude())
		wp := prec + g
		d := c.expFixed(ax, k, wp+uint(bits.Len64(k))+2)
		return one.Quo(d, wp).RoundTo(prec, bigfix.HalfUp)
	}
	k := expArg(x.IntPart().Magnitude())
	return c.expFixed(x, k, prec+g+expBits(k)).RoundTo(prec, bigfix.HalfUp)
}

// expUint returns e**n with wp fractional bits by binary exponentiation of e.
func (c *Cache) expUint(n uint64, wp uint) bigfix.Fixed {
	if n == 0 {
		return one
	}
	return pow(c.E(wp), n, wp)
}

// expFixed returns e**x, x >= 0, with wp fractional bits. n is the integer
// part of x.
//
// The integer part is handled by expUint. The fractional part f is consumed one
// bit at a time: the k-th bit of f selects the factor e**(2**-k), obtained by
// taking k successive square roots of e.
func (c *Cache) expFixed(x bigfix.Fixed, n uint64, wp uint) bigfix.Fixed {
	r := c.expUint(n, wp)
	f := x.Frac()
	s := c.E(wp)
	for i := uint(0); i < wp && !f.IsZero(); i++ {
		s = s.Sqrt(wp)
		f = f.ScaleByPowerOfTwo(1)
		if f.Cmp(one) >= 0 {
			f = f.Sub(one)
			r = r.Mul(s).RoundTo(wp, bigfix.Down)
		}
	}
	return r
}

// ExpUint returns e**n rounded to prec bits, using DefaultCache.
func ExpUint(n bigfix.Uint, prec uint) bigfix.Fixed { return DefaultCache.ExpUint(n, prec) }

// ExpInt returns e**n rounded to prec bits, using DefaultCache.
func ExpInt(n bigfix.Int, prec uint) bigfix.Fixed { return DefaultCache.ExpInt(n, prec) }

// Exp returns e**x rounded to prec bits, using DefaultCache.
func Exp(x bigfix.Fixed, prec uint) bigfix.Fixed { return DefaultCache.Exp(x, prec) }
