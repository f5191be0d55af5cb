// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfix

import "math"

// An Int represents a signed integer of arbitrary size as a sign and a
// magnitude. Int values are immutable.
//
// Zero is always positive: -0 and 0 are the same value.
//
// The zero value for an Int represents 0.
type Int struct {
	neg bool // sign
	abs mag  // absolute value of the integer
}

// makeInt returns the Int with sign neg and magnitude abs, normalizing the
// sign of zero.
func makeInt(neg bool, abs mag) Int {
	return Int{neg: neg && len(abs) > 0, abs: abs}
}

// NewInt returns an Int set to x.
func NewInt(x int64) Int {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	return makeInt(x < 0, mag(nil).setUint64(u))
}

// IntFromUint returns an Int with magnitude u, negated if neg is set.
func IntFromUint(u Uint, neg bool) Int {
	return makeInt(neg, u.abs)
}

// ParseInt returns the Int represented by the decimal string s, with an
// optional leading sign.
func ParseInt(s string) (Int, error) {
	t, neg := trimSign(s)
	z, err := scanDigits(t)
	if err != nil {
		return Int{}, syntaxError(s, err)
	}
	return makeInt(neg, z), nil
}

// Sign returns -1 if x < 0, 0 if x == 0 and +1 if x > 0.
func (x Int) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return len(x.abs) == 0
}

// Neg returns -x.
func (x Int) Neg() Int {
	return makeInt(!x.neg, x.abs)
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{abs: x.abs}
}

// Magnitude returns |x| as a Uint.
func (x Int) Magnitude() Uint {
	return Uint{x.abs}
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		return makeInt(x.neg, mag(nil).add(x.abs, y.abs))
	}
	// x + (-y) == x - y == -(y - x)
	// (-x) + y == y - x == -(x - y)
	// the sign of the operand with the larger magnitude wins
	abs, swapped := mag(nil).diff(x.abs, y.abs)
	return makeInt(x.neg != swapped, abs)
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	return x.Add(makeInt(!y.neg, y.abs))
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	return makeInt(x.neg != y.neg, mag(nil).mul(x.abs, y.abs))
}

// Quo returns the quotient x/y truncated toward zero. It panics with
// ErrDivisionByZero if y == 0.
func (x Int) Quo(y Int) Int {
	q, _ := mag(nil).div(nil, x.abs, y.abs)
	return makeInt(x.neg != y.neg, q)
}

// Rem returns |x| mod |y| with the sign of y. It panics with ErrDivisionByZero
// if y == 0.
//
// When x and y have the same sign, x == x.Quo(y).Mul(y).Add(x.Rem(y)).
func (x Int) Rem(y Int) Int {
	_, r := mag(nil).div(nil, x.abs, y.abs)
	return makeInt(y.neg, r)
}

// QuoRem returns x.Quo(y) and x.Rem(y), or ErrDivisionByZero if y == 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if len(y.abs) == 0 {
		return Int{}, Int{}, ErrDivisionByZero
	}
	qa, ra := mag(nil).div(nil, x.abs, y.abs)
	return makeInt(x.neg != y.neg, qa), makeInt(y.neg, ra), nil
}

// Lsh returns x<<n.
func (x Int) Lsh(n uint) Int {
	return makeInt(x.neg, mag(nil).shl(x.abs, n))
}

// Rsh returns x>>n applied to the magnitude of x. The result is truncated
// toward zero.
func (x Int) Rsh(n uint) Int {
	return makeInt(x.neg, mag(nil).shr(x.abs, n))
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) (r int) {
	switch {
	case x.neg == y.neg:
		r = x.abs.cmp(y.abs)
		if x.neg {
			r = -r
		}
	case x.neg:
		r = -1
	default:
		r = 1
	}
	return
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Int64 returns the value of x and whether it fits in an int64. If it does
// not, the returned value is 0.
func (x Int) Int64() (int64, bool) {
	u, ok := x.abs.uint64()
	if !ok {
		return 0, false
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Sqrt returns ⌊√x⌋. It panics with ErrNegativeSqrt if x < 0.
func (x Int) Sqrt() Int {
	if x.neg {
		panic(ErrNegativeSqrt)
	}
	return Int{abs: mag(nil).sqrt(x.abs)}
}

// SquareRoot is an alias for Sqrt.
func (x Int) SquareRoot() Int {
	return x.Sqrt()
}

// Fixed returns x as an integral Fixed value with scale 0.
func (x Int) Fixed() Fixed {
	return Fixed{value: x}
}

// String returns the decimal representation of x.
func (x Int) String() string {
	if x.neg {
		return "-" + string(x.abs.utoa())
	}
	return string(x.abs.utoa())
}

// BinaryString returns the binary representation of |x|, prefixed with "-"
// when x < 0.
func (x Int) BinaryString() string {
	if x.neg {
		return "-" + string(x.abs.btoa())
	}
	return string(x.abs.btoa())
}

func trimSign(s string) (string, bool) {
	if len(s) > 0 {
		switch s[0] {
		case '-':
			return s[1:], true
		case '+':
			return s[1:], false
		}
	}
	return s, false
}
