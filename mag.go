// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfix

import (
	"encoding/binary"
	"math/bits"
)

const debugBigfix = false

// mag is an unsigned integer x of the form
//
//	x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 digits.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. The normalized
// representation of 0 is the empty or nil slice (length = 0).
//
// Methods follow the z.op(x, y) convention of math/big: the result is stored
// in z, reusing its storage when large enough, and returned. The exported
// types always pass a nil receiver, so results never share storage with their
// operands.
type mag []Word

var magOne = mag{1}

func (z mag) norm() mag {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z mag) make(n int) mag {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most mags start small and stay that way; don't over-allocate.
		return make(mag, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(mag, n, n+e)
}

func (z mag) set(x mag) mag {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z mag) setWord(x Word) mag {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z mag) setUint64(x uint64) mag {
	// single-word value
	if w := Word(x); uint64(w) == x {
		return z.setWord(w)
	}
	// 2-word value
	z = z.make(2)
	z[1] = Word(x >> 32)
	z[0] = Word(x)
	return z
}

// uint64 returns the value of x and whether it fits in an uint64.
func (x mag) uint64() (uint64, bool) {
	switch {
	case len(x) == 0:
		return 0, true
	case len(x) == 1:
		return uint64(x[0]), true
	case _W == 32 && len(x) == 2:
		return uint64(x[1])<<32 | uint64(x[0]), true
	}
	return 0, false
}

// cmp compares the word counts first, then the words from the most
// significant one down.
func (x mag) cmp(y mag) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

func (z mag) add(x, y mag) mag {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub sets z to x - y. x must be >= y.
func (z mag) sub(x, y mag) mag {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		panic("underflow")
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m)
	c := subVV(z[0:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("underflow")
	}

	return z.norm()
}

// diff sets z to |x - y| and reports whether y > x. The difference is computed
// as x + ^y + 1 over max(len(x), len(y)) words: a carry out of the top word
// means x >= y and the low words hold x - y; no carry means the low words hold
// the two's complement of y - x, which is complemented back.
//
// z must not alias x.
func (z mag) diff(x, y mag) (mag, bool) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	if n == 0 {
		return z[:0], false
	}
	if debugBigfix && alias(z, x) {
		panic("diff: z aliases x")
	}

	z = z.make(n)
	for i := range z {
		var w Word
		if i < len(y) {
			w = y[i]
		}
		z[i] = ^w
	}
	c := addVV(z[:len(x)], z[:len(x)], x)
	if len(x) < n {
		c = addVW(z[len(x):], z[len(x):], c)
	}
	c += addVW(z, z, 1)

	if c == 0 {
		// y > x
		for i, w := range z {
			z[i] = ^w
		}
		addVW(z, z, 1)
		return z.norm(), true
	}
	return z.norm(), false
}

// mul sets z to x*y with the schoolbook method: one row of addMulVVW per word
// of the shorter operand. z must not alias x or y.
func (z mag) mul(x, y mag) mag {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}
	// m >= n > 1

	if debugBigfix && (alias(z, x) || alias(z, y)) {
		panic("mul: z aliases an operand")
	}

	z = z.make(m + n)
	clear(z)
	for i, d := range y {
		if d != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x, d)
		}
	}

	return z.norm()
}

// mulAddWW sets z to x*y + r.
func (z mag) mulAddWW(x mag, y, r Word) mag {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r) // result is r
	}
	// m > 0

	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)

	return z.norm()
}

// divW returns q = x/y and r = x%y for a single word divisor. y must be != 0.
func (z mag) divW(x mag, y Word) (q mag, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic(ErrDivisionByZero)
	case y == 1:
		q = z.set(x) // result is x
		return
	case m == 0:
		q = z[:0] // result is 0
		return
	}
	// m > 0
	z = z.make(m)
	r = divWVW(z, 0, x, y)
	q = z.norm()
	return
}

// div returns q = u/v and r = u%v. Single word divisors take the divW fast
// path; otherwise the quotient is produced by binary long division: the bits
// of u are shifted into r from the most significant one down, and v is
// subtracted from r, setting the matching quotient bit, whenever r >= v.
//
// div panics with ErrDivisionByZero if v == 0.
func (z mag) div(z2, u, v mag) (q, r mag) {
	if len(v) == 0 {
		panic(ErrDivisionByZero)
	}

	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return
	}

	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0])
		r = z2.setWord(r2)
		return
	}

	q = z.make(len(u))
	clear(q)
	r = z2[:0]
	for i := u.bitLen() - 1; i >= 0; i-- {
		r = r.shlBit(u.bit(uint(i)))
		if r.cmp(v) >= 0 {
			r = r.sub(r, v)
			q[i/_W] |= 1 << (uint(i) % _W)
		}
	}

	return q.norm(), r
}

// shlBit sets z to z<<1 | b in place, growing z by one word if needed.
func (z mag) shlBit(b uint) mag {
	if c := shlVU(z, z, 1); c != 0 {
		z = append(z, c)
	}
	if b != 0 {
		if len(z) == 0 {
			return append(z, 1)
		}
		z[0] |= 1
	}
	return z
}

// bitLen returns the length of x in bits.
// Unlike most methods, it works even if x is not normalized.
func (x mag) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*_W + bits.Len(uint(x[i]))
	}
	return 0
}

// trailingZeroBits returns the number of consecutive least significant zero
// bits of x, or 0 if x == 0.
func (x mag) trailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*_W + uint(bits.TrailingZeros(uint(w)))
		}
	}
	return 0
}

// bit returns the value of the i'th bit of x.
func (x mag) bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j] >> (i % _W) & 1)
}

// setBit sets z to x with the i'th bit set to b (0 or 1), growing z when i is
// past the top word of x.
func (z mag) setBit(x mag, i uint, b uint) mag {
	j := int(i / _W)
	m := Word(1) << (i % _W)
	n := len(x)
	switch b {
	case 0:
		z = z.set(x)
		if j >= n {
			return z
		}
		z[j] &^= m
		return z.norm()
	case 1:
		if j >= n {
			z = z.make(j + 1)
			clear(z[n:])
		} else {
			z = z.make(n)
		}
		copy(z, x)
		z[j] |= m
		return z
	}
	panic("set bit is not 0 or 1")
}

// shl sets z to x<<s.
func (z mag) shl(x mag, s uint) mag {
	if s == 0 {
		if same(z, x) {
			return z
		}
		if !alias(z, x) {
			return z.set(x)
		}
	}

	m := len(x)
	if m == 0 {
		return z[:0]
	}
	// m > 0

	n := m + int(s/_W)
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	clear(z[0 : n-m])

	return z.norm()
}

// shr sets z to x>>s.
func (z mag) shr(x mag, s uint) mag {
	if s == 0 {
		if same(z, x) {
			return z
		}
		if !alias(z, x) {
			return z.set(x)
		}
	}

	m := len(x)
	n := m - int(s/_W)
	if n <= 0 {
		return z[:0]
	}
	// n > 0

	z = z.make(n)
	shrVU(z, x[m-n:], s%_W)

	return z.norm()
}

// trunc sets z to x mod 2**n, i.e. x with all bits at positions >= n cleared.
func (z mag) trunc(x mag, n uint) mag {
	w := int((n + _W - 1) / _W)
	if w > len(x) {
		return z.set(x)
	}
	z = z.set(x[:w])
	if r := n % _W; r != 0 {
		z[w-1] &= 1<<r - 1
	}
	return z.norm()
}

// sqrt sets z to ⌊√x⌋ with the binary digit-by-digit method. The trial bit
// starts at the highest even bit position <= the top bit of x and moves down
// two bits per step.
func (z mag) sqrt(x mag) mag {
	if len(x) == 0 {
		return z[:0]
	}
	var (
		num = mag(nil).set(x)
		res mag
		bit = mag(nil).setBit(nil, uint(x.bitLen()-1)&^1, 1)
		t   mag
	)
	for len(bit) > 0 {
		t = t.add(res, bit)
		if num.cmp(t) >= 0 {
			num = num.sub(num, t)
			res = res.shr(res, 1)
			res = t.add(res, bit)
			t = nil
		} else {
			res = res.shr(res, 1)
		}
		bit = bit.shr(bit, 2)
	}
	return z.set(res)
}

// utoa returns the decimal representation of x. Decimal digits are
// extracted _DW at a time by dividing by _DB, least significant chunk first,
// and written right to left.
func (x mag) utoa() []byte {
	if len(x) == 0 {
		return []byte("0")
	}
	i := x.bitLen()*30103/100000 + _DW + 1
	s := make([]byte, i)
	q := mag(nil).set(x)
	for len(q) > 0 {
		var r Word
		q, r = q.divW(q, _DB)
		for j := 0; j < _DW && (len(q) > 0 || r > 0); j++ {
			i--
			s[i] = '0' + byte(r%10)
			r /= 10
		}
	}
	return s[i:]
}

// btoa returns the big-endian binary representation of x, "0" for x == 0.
func (x mag) btoa() []byte {
	n := x.bitLen()
	if n == 0 {
		return []byte("0")
	}
	s := make([]byte, n)
	for i := 0; i < n; i++ {
		s[n-1-i] = '0' + byte(x.bit(uint(i)))
	}
	return s
}

// bytes returns the minimal big-endian byte representation of x.
func (x mag) bytes() []byte {
	buf := make([]byte, len(x)*_S)
	i := len(buf)
	for _, d := range x {
		for j := 0; j < _S; j++ {
			i--
			buf[i] = byte(d)
			d >>= 8
		}
	}
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// setBytes interprets buf as the bytes of a big-endian unsigned
// integer, sets z to that value, and returns z.
func (z mag) setBytes(buf []byte) mag {
	z = z.make((len(buf) + _S - 1) / _S)

	i := len(buf)
	for k := 0; i >= _S; k++ {
		z[k] = bigEndianWord(buf[i-_S : i])
		i -= _S
	}
	if i > 0 {
		var d Word
		for s := uint(0); i > 0; s += 8 {
			d |= Word(buf[i-1]) << s
			i--
		}
		z[len(z)-1] = d
	}

	return z.norm()
}

// bigEndianWord returns the contents of buf interpreted as a big-endian encoded Word value.
func bigEndianWord(buf []byte) Word {
	if _W == 64 {
		return Word(binary.BigEndian.Uint64(buf))
	}
	return Word(binary.BigEndian.Uint32(buf))
}
