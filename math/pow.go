package math

import (
	"github.com/db47h/bigfix"
)

// Pow returns x**y rounded half up to prec fractional bits, computed as
// e**(y × ln x). If prec is 0, bigfix.DefaultPrec is used.
//
// Special cases are:
//
//	Pow(x, 0) = 1 for any x
//	Pow(0, y) = 0 for y > 0
//	Pow(0, y) returns bigfix.ErrDivisionByZero for y < 0
//	Pow(x, y) returns ErrNegativeLogarithm for x < 0
//	Pow(x, y) returns ErrExponentTooLarge if y × ln x > 2**24
func (c *Cache) Pow(x, y bigfix.Fixed, prec uint) (bigfix.Fixed, error) {
	prec = precOrDefault(prec)
	switch {
	case y.IsZero():
		return one.RoundTo(prec, bigfix.HalfUp), nil
	case x.IsZero():
		if y.Sign() > 0 {
			return bigfix.Fixed{}.RoundTo(prec, bigfix.HalfUp), nil
		}
		return bigfix.Fixed{}, bigfix.ErrDivisionByZero
	case x.Sign() < 0:
		return bigfix.Fixed{}, ErrNegativeLogarithm
	}

	// A coarse estimate of y × log2(x) sizes the working precision: an error
	// on the exponent t is magnified by e**t.
	est := log2(x, 16).Mul(y)
	var extra uint
	if est.Sign() > 0 {
		n, ok := est.IntPart().Magnitude().Uint64()
		if !ok || n > maxExp {
			return bigfix.Fixed{}, ErrExponentTooLarge
		}
		extra = uint(n) + 2
	}
	yb := uint(y.Abs().IntPart().Magnitude().BitLen())
	wp := prec + guardBits(prec) + extra + yb + logBits(x)
	t := log2(x, wp).Mul(c.Ln2(wp)).Mul(y).RoundTo(wp, bigfix.Down)
	if n, ok := t.Abs().IntPart().Magnitude().Uint64(); !ok || n > maxExp {
		return bigfix.Fixed{}, ErrExponentTooLarge
	}
	return c.Exp(t, prec), nil
}

// Pow returns x**y rounded to prec bits, using DefaultCache.
func Pow(x, y bigfix.Fixed, prec uint) (bigfix.Fixed, error) { return DefaultCache.Pow(x, y, prec) }
