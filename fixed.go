// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfix

// DefaultPrec is the number of fractional bits used by functions of this
// module when a precision of 0 is requested.
const DefaultPrec = 114

// A Fixed represents the binary fixed-point number
//
//	value × 2**-scale
//
// where value is an Int and scale a number of fractional bits. Fixed values
// are immutable. Addition, subtraction, multiplication and comparison are
// exact; division and square root take the number of fractional bits of the
// result as an explicit precision.
//
// Values with different scales are aligned by shifting the value with the
// smaller scale to the left, so that no bits are ever lost.
//
// The zero value for a Fixed represents 0.
type Fixed struct {
	value Int
	scale uint
}

// NewFixed returns the Fixed value v × 2**-scale.
func NewFixed(v Int, scale uint) Fixed {
	return Fixed{v, scale}
}

// FixedFromInt64 returns x as a Fixed with scale 0.
func FixedFromInt64(x int64) Fixed {
	return Fixed{value: NewInt(x)}
}

// FixedFromUint64 returns x as a Fixed with scale 0.
func FixedFromUint64(x uint64) Fixed {
	return Fixed{value: Int{abs: mag(nil).setUint64(x)}}
}

// Value returns the integer v such that x == v × 2**-x.Scale().
func (x Fixed) Value() Int {
	return x.value
}

// Scale returns the number of fractional bits of x.
func (x Fixed) Scale() uint {
	return x.scale
}

// Sign returns -1 if x < 0, 0 if x == 0 and +1 if x > 0.
func (x Fixed) Sign() int {
	return x.value.Sign()
}

// IsZero reports whether x == 0.
func (x Fixed) IsZero() bool {
	return len(x.value.abs) == 0
}

// Neg returns -x.
func (x Fixed) Neg() Fixed {
	return Fixed{x.value.Neg(), x.scale}
}

// Abs returns |x|.
func (x Fixed) Abs() Fixed {
	return Fixed{x.value.Abs(), x.scale}
}

// align returns the values of x and y expressed at the larger of both scales.
func align(x, y Fixed) (a, b Int, scale uint) {
	switch {
	case x.scale < y.scale:
		return x.value.Lsh(y.scale - x.scale), y.value, y.scale
	case x.scale > y.scale:
		return x.value, y.value.Lsh(x.scale - y.scale), x.scale
	}
	return x.value, y.value, x.scale
}

// Add returns x+y at the larger scale of x and y.
func (x Fixed) Add(y Fixed) Fixed {
	a, b, s := align(x, y)
	return Fixed{a.Add(b), s}
}

// Sub returns x-y at the larger scale of x and y.
func (x Fixed) Sub(y Fixed) Fixed {
	a, b, s := align(x, y)
	return Fixed{a.Sub(b), s}
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Fixed) Cmp(y Fixed) int {
	a, b, _ := align(x, y)
	return a.Cmp(b)
}

// Equal reports whether x and y represent the same number, regardless of
// their scales.
func (x Fixed) Equal(y Fixed) bool {
	return x.Cmp(y) == 0
}

// Mul returns the exact product x×y, at scale x.Scale()+y.Scale().
func (x Fixed) Mul(y Fixed) Fixed {
	return Fixed{x.value.Mul(y.value), x.scale + y.scale}
}

// Quo returns x/y with prec fractional bits, truncated toward zero. It panics
// with ErrDivisionByZero if y == 0.
func (x Fixed) Quo(y Fixed, prec uint) Fixed {
	if y.IsZero() {
		panic(ErrDivisionByZero)
	}
	// x/y = (vx × 2**(sy+prec)) / (vy × 2**sx) × 2**-prec
	n := x.value.Lsh(y.scale + prec)
	d := y.value.Lsh(x.scale)
	return Fixed{n.Quo(d), prec}
}

// Div is like Quo but returns ErrDivisionByZero instead of panicking.
func (x Fixed) Div(y Fixed, prec uint) (Fixed, error) {
	if y.IsZero() {
		return Fixed{}, ErrDivisionByZero
	}
	return x.Quo(y, prec), nil
}

// ScaleByPowerOfTwo returns x × 2**k. The result is exact: a negative k grows
// the scale, a positive k shrinks it and only shifts the value once the scale
// reaches 0.
func (x Fixed) ScaleByPowerOfTwo(k int) Fixed {
	switch {
	case k < 0:
		return Fixed{x.value, x.scale + uint(-k)}
	case uint(k) > x.scale:
		return Fixed{x.value.Lsh(uint(k) - x.scale), 0}
	}
	return Fixed{x.value, x.scale - uint(k)}
}

// WithScale returns x's value reinterpreted at the given scale.
func (x Fixed) WithScale(scale uint) Fixed {
	return Fixed{x.value, scale}
}

// Round returns x rounded to an integer using mode.
func (x Fixed) Round(mode RoundingMode) Int {
	if x.scale == 0 {
		return x.value
	}
	abs := mag(nil).shr(x.value.abs, x.scale)
	if mode == HalfUp && x.value.abs.bit(x.scale-1) != 0 {
		abs = abs.add(abs, magOne)
	}
	return makeInt(x.value.neg, abs)
}

// RoundTo returns x rounded to prec fractional bits using mode. If x has fewer
// fractional bits, its value is shifted left and the result is exact.
func (x Fixed) RoundTo(prec uint, mode RoundingMode) Fixed {
	if prec >= x.scale {
		return Fixed{x.value.Lsh(prec - x.scale), prec}
	}
	return Fixed{Fixed{x.value, x.scale - prec}.Round(mode), prec}
}

// IntPart returns the integer part of x, truncated toward zero.
func (x Fixed) IntPart() Int {
	return x.Round(Down)
}

// Floor returns the largest integer <= x.
func (x Fixed) Floor() Int {
	i := x.Round(Down)
	if x.value.neg && !x.IsInt() {
		i = i.Sub(Int{abs: magOne})
	}
	return i
}

// Frac returns x - x.IntPart(), which has the sign of x.
func (x Fixed) Frac() Fixed {
	return Fixed{makeInt(x.value.neg, mag(nil).trunc(x.value.abs, x.scale)), x.scale}
}

// IsInt reports whether x is an integer.
func (x Fixed) IsInt() bool {
	return len(x.value.abs) == 0 || x.value.abs.trailingZeroBits() >= x.scale
}

// Sqrt returns ⌊√x⌋ with exactly prec fractional bits. It panics with
// ErrNegativeSqrt if x < 0.
//
// The value of x is shifted left so that the shifted scale is even and at least
// 2×prec; the integer square root of the shifted value then has half that
// scale.
func (x Fixed) Sqrt(prec uint) Fixed {
	if x.value.neg {
		panic(ErrNegativeSqrt)
	}
	var shift uint
	if 2*prec > x.scale {
		shift = 2*prec - x.scale
	} else {
		shift = x.scale & 1
	}
	r := Fixed{
		value: Int{abs: mag(nil).sqrt(mag(nil).shl(x.value.abs, shift))},
		scale: (x.scale + shift) / 2,
	}
	if r.scale > prec {
		r = r.RoundTo(prec, Down)
	}
	return r
}

// SquareRoot returns x.Sqrt with the larger of DefaultPrec and x.Scale()
// fractional bits.
func (x Fixed) SquareRoot() Fixed {
	prec := uint(DefaultPrec)
	if x.scale > prec {
		prec = x.scale
	}
	return x.Sqrt(prec)
}
