// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the word-level primitives used by mag. All vector
// functions operate on slices of equal length (or on the shortest one) and
// return the carry, borrow or remainder out of the most significant word.

package bigfix

import "math/bits"

// A Word represents a single digit of a multi-precision unsigned integer.
type Word uint

const (
	_S = _W / 8 // word size in bytes

	_W = bits.UintSize // word size in bits
	_B = 1 << _W       // digit base
	_M = _B - 1        // digit mask
)

const (
	// _W * log10(2) = decimal digits per word. 9 decimal digits per 32 bits
	// word and 19 per 64 bits word.
	_DW = _W * 30103 / 100000
	// Largest power of 10 that fits in a Word. 1e9 for 32 bits words and
	// 1e19 for 64 bits words.
	// We want this value to be a const. This is a dirty hack to avoid
	// conditional compilation; it will break if bits.UintSize != 32 or 64
	_DB = 9999999998000000000*(_DW/19) + 1000000000*(_DW/9)
)

// z1<<_W + z0 = x*y + c
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	hi, lo := bits.Mul(uint(x), uint(y))
	var cc uint
	lo, cc = bits.Add(lo, uint(c), 0)
	return Word(hi + cc), Word(lo)
}

// q = (u1<<_W + u0)/v, r = (u1<<_W + u0)%v. u1 must be < v.
func divWW(u1, u0, v Word) (q, r Word) {
	qq, rr := bits.Div(uint(u1), uint(u0), uint(v))
	return Word(qq), Word(rr)
}

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Add(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// The resulting borrow c is either 0 or 1.
func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Sub(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// addVW sets z to x + y and returns the carry. The carry keeps rippling
// through words that are already at _M.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		zi, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
		if c == 0 {
			// copy remaining words if not adding in-place
			if !same(z[i+1:], x[i+1:]) {
				copy(z[i+1:], x[i+1:])
			}
			return 0
		}
	}
	return c
}

func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		zi, cc := bits.Sub(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
		if c == 0 {
			if !same(z[i+1:], x[i+1:]) {
				copy(z[i+1:], x[i+1:])
			}
			return 0
		}
	}
	return c
}

// shlVU sets z to x<<s, 0 <= s < _W, and returns the bits shifted out of the
// top word. Words are processed from the most significant one down so that z
// may alias x.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	s &= _W - 1
	sc := (_W - s) & (_W - 1)
	c = x[len(z)-1] >> sc
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>sc
	}
	z[0] = x[0] << s
	return
}

// shrVU sets z to x>>s, 0 <= s < _W, and returns the bits shifted out of the
// bottom word, left aligned. z may alias x.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	s &= _W - 1
	sc := (_W - s) & (_W - 1)
	c = x[0] << sc
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<sc
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return
}

// mulAddVWW sets z to x*y + r and returns the carry word.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW adds x*y to z and returns the carry word.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		lo, cc := bits.Add(uint(z0), uint(c), 0)
		c, z[i] = z1+Word(cc), Word(lo)
	}
	return
}

// divWVW sets z to (xn<<(len(x)*_W) + x)/y and returns the remainder. xn must
// be < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return
}

// same reports whether x and y share the same base array.
func same(x, y []Word) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

// alias reports whether x and y share the same base array.
//
// Note: alias assumes that the capacity of underlying arrays
// is never changed for mag values; i.e. that there are
// no 3-operand slice expressions in this code (or worse,
// reflect-based operations to the same effect).
func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
