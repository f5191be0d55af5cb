package math

import (
	"github.com/db47h/bigfix"
)

// Atan returns the arctangent of x, in radians, rounded half up to prec
// fractional bits. If prec is 0, bigfix.DefaultPrec is used.
//
// The argument is reduced twice with the half-angle formula
//
//	atan(x) = 2 × atan(x / (1 + √(1 + x²)))
//
// which brings it below tan(π/8) ≈ 0.41, and the Taylor series
// x - x³/3 + x⁵/5 - ... is summed until a term drops below one unit in the
// last place.
func Atan(x bigfix.Fixed, prec uint) bigfix.Fixed {
	prec = precOrDefault(prec)
	switch x.Sign() {
	case -1:
		return Atan(x.Neg(), prec).Neg()
	case 0:
		return bigfix.Fixed{}.RoundTo(prec, bigfix.HalfUp)
	}
	wp := prec + guardBits(prec) + 2
	v := halfAngle(halfAngle(x, wp), wp)
	v2 := v.Mul(v).RoundTo(wp, bigfix.Down)
	lim := ulp(wp)
	sum, p := v, v
	for n := uint64(3); ; n += 2 {
		p = p.Mul(v2).RoundTo(wp, bigfix.Down)
		t := p.Quo(bigfix.FixedFromUint64(n), wp)
		if t.Cmp(lim) <= 0 {
			break
		}
		if n&2 != 0 {
			sum = sum.Sub(t)
		} else {
			sum = sum.Add(t)
		}
	}
	return sum.ScaleByPowerOfTwo(2).RoundTo(prec, bigfix.HalfUp)
}

// halfAngle returns tan(atan(x)/2) = x / (1 + √(1 + x²)) with wp fractional
// bits.
func halfAngle(x bigfix.Fixed, wp uint) bigfix.Fixed {
	return x.Quo(one.Add(x.Mul(x).Add(one).Sqrt(wp)), wp)
}
