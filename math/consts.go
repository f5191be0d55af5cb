package math

import (
	"github.com/db47h/bigfix"
)

// Pi returns π rounded half up to prec fractional bits. If prec is 0,
// bigfix.DefaultPrec is used.
func (c *Cache) Pi(prec uint) bigfix.Fixed {
	return c.get(constKey{"pi", precOrDefault(prec)}, pi)
}

// E returns Euler's number e rounded half up to prec fractional bits. If prec
// is 0, bigfix.DefaultPrec is used.
func (c *Cache) E(prec uint) bigfix.Fixed {
	return c.get(constKey{"e", precOrDefault(prec)}, e)
}

// Ln2 returns the natural logarithm of 2 rounded half up to prec fractional
// bits. If prec is 0, bigfix.DefaultPrec is used.
func (c *Cache) Ln2(prec uint) bigfix.Fixed {
	return c.get(constKey{"ln2", precOrDefault(prec)}, ln2)
}

// Pi returns π rounded to prec bits, memoized in DefaultCache.
func Pi(prec uint) bigfix.Fixed { return DefaultCache.Pi(prec) }

// E returns e rounded to prec bits, memoized in DefaultCache.
func E(prec uint) bigfix.Fixed { return DefaultCache.E(prec) }

// Ln2 returns ln 2 rounded to prec bits, memoized in DefaultCache.
func Ln2(prec uint) bigfix.Fixed { return DefaultCache.Ln2(prec) }

// pi computes π to prec bits with the series
//
//	π = Σ (-1)**k / 4**k × (2/(4k+1) + 1/(2k+1) + 1/(4k+3))
//
// Each term is truncated to the working precision and the summation stops at
// the first term smaller than one unit in the last place.
func pi(prec uint) bigfix.Fixed {
	wp := prec + guardBits(prec)
	lim := ulp(wp)
	var sum bigfix.Fixed
	for k := uint64(0); ; k++ {
		t := two.Quo(bigfix.FixedFromUint64(4*k+1), wp).
			Add(one.Quo(bigfix.FixedFromUint64(2*k+1), wp)).
			Add(one.Quo(bigfix.FixedFromUint64(4*k+3), wp)).
			ScaleByPowerOfTwo(-2*int(k)).
			RoundTo(wp, bigfix.Down)
		if t.Cmp(lim) <= 0 {
			break
		}
		if k%2 == 0 {
			sum = sum.Add(t)
		} else {
			sum = sum.Sub(t)
		}
	}
	return sum.RoundTo(prec, bigfix.HalfUp)
}

// e computes e = Σ 1/k! to prec bits.
func e(prec uint) bigfix.Fixed {
	wp := prec + guardBits(prec)
	lim := ulp(wp)
	sum := one
	fact := bigfix.NewUint(1)
	for k := uint64(1); ; k++ {
		fact = fact.Mul(bigfix.NewUint(k))
		t := one.Quo(fact.Fixed(), wp)
		if t.Cmp(lim) <= 0 {
			break
		}
		sum = sum.Add(t)
	}
	return sum.RoundTo(prec, bigfix.HalfUp)
}

// ln2 computes ln 2 = Σ 1/(k × 2**k), k >= 1, to prec bits.
func ln2(prec uint) bigfix.Fixed {
	wp := prec + guardBits(prec)
	lim := ulp(wp)
	var sum bigfix.Fixed
	for k := uint64(1); ; k++ {
		t := one.Quo(bigfix.FixedFromUint64(k), wp).
			ScaleByPowerOfTwo(-int(k)).
			RoundTo(wp, bigfix.Down)
		if t.Cmp(lim) <= 0 {
			break
		}
		sum = sum.Add(t)
	}
	return sum.RoundTo(prec, bigfix.HalfUp)
}
