package math

import (
	"github.com/db47h/bigfix"
	"github.com/db47h/bigfix/number"
)

// SqrtUint returns ⌊√x⌋.
//
// This function is a proxy for x.Sqrt().
func SqrtUint(x bigfix.Uint) bigfix.Uint {
	return x.Sqrt()
}

// SqrtInt returns ⌊√|x|⌋ as the real part of the result if x >= 0, or as its
// imaginary part if x < 0.
func SqrtInt(x bigfix.Int) number.Complex[bigfix.Int] {
	r := x.Magnitude().Sqrt().Int()
	if x.Sign() < 0 {
		return number.Imag(r)
	}
	return number.Real(r)
}

// Sqrt returns √|x| with prec fractional bits, truncated, as the real part of
// the result if x >= 0, or as its imaginary part if x < 0. If prec is 0,
// bigfix.DefaultPrec is used.
func Sqrt(x bigfix.Fixed, prec uint) number.Complex[bigfix.Fixed] {
	r := x.Abs().Sqrt(precOrDefault(prec))
	if x.Sign() < 0 {
		return number.Imag(r)
	}
	return number.Real(r)
}
