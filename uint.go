// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfix

import "math/bits"

// A Uint represents an unsigned integer of arbitrary size. Uint values are
// immutable: operations return a new Uint and never modify their operands.
//
// The zero value for a Uint represents 0.
type Uint struct {
	abs mag
}

// NewUint returns a Uint set to x.
func NewUint(x uint64) Uint {
	return Uint{mag(nil).setUint64(x)}
}

// UintFromWords returns a Uint whose little-endian words are a copy of w.
func UintFromWords(w []Word) Uint {
	return Uint{mag(nil).set(w).norm()}
}

// ParseUint returns the Uint represented by the decimal string s.
func ParseUint(s string) (Uint, error) {
	z, err := scanDigits(s)
	if err != nil {
		return Uint{}, syntaxError(s, err)
	}
	return Uint{z}, nil
}

// Words returns the little-endian words of x. The result always holds at least
// one word; zero is represented as a single 0 word.
func (x Uint) Words() []Word {
	if len(x.abs) == 0 {
		return []Word{0}
	}
	return mag(nil).set(x.abs)
}

// Add returns x+y.
func (x Uint) Add(y Uint) Uint {
	return Uint{mag(nil).add(x.abs, y.abs)}
}

// Sub returns |x-y|. Use Cmp beforehand when the sign of the difference
// matters, or work with Int values.
func (x Uint) Sub(y Uint) Uint {
	z, _ := mag(nil).diff(x.abs, y.abs)
	return Uint{z}
}

// Mul returns x*y.
func (x Uint) Mul(y Uint) Uint {
	return Uint{mag(nil).mul(x.abs, y.abs)}
}

// QuoRem returns the quotient x/y and the remainder x%y. It returns
// ErrDivisionByZero if y == 0.
func (x Uint) QuoRem(y Uint) (q, r Uint, err error) {
	if len(y.abs) == 0 {
		return Uint{}, Uint{}, ErrDivisionByZero
	}
	q.abs, r.abs = mag(nil).div(nil, x.abs, y.abs)
	return q, r, nil
}

// Quo returns the quotient x/y. It panics with ErrDivisionByZero if y == 0.
func (x Uint) Quo(y Uint) Uint {
	q, _ := mag(nil).div(nil, x.abs, y.abs)
	return Uint{q}
}

// Rem returns the remainder x%y. It panics with ErrDivisionByZero if y == 0.
func (x Uint) Rem(y Uint) Uint {
	_, r := mag(nil).div(nil, x.abs, y.abs)
	return Uint{r}
}

// Lsh returns x<<n.
func (x Uint) Lsh(n uint) Uint {
	return Uint{mag(nil).shl(x.abs, n)}
}

// Rsh returns x>>n.
func (x Uint) Rsh(n uint) Uint {
	return Uint{mag(nil).shr(x.abs, n)}
}

// Bit returns the value of the i'th bit of x.
func (x Uint) Bit(i uint) uint {
	return x.abs.bit(i)
}

// SetBit returns x with its i'th bit set to b (0 or 1). The result grows as
// needed when i is past the most significant bit of x.
func (x Uint) SetBit(i uint, b uint) Uint {
	return Uint{mag(nil).setBit(x.abs, i, b)}
}

// BitLen returns the length of x in bits. The bit length of 0 is 0.
func (x Uint) BitLen() int {
	return x.abs.bitLen()
}

// BitWidth returns the number of bits used to store x: its word count times
// the word size. Zero occupies one word.
func (x Uint) BitWidth() int {
	if len(x.abs) == 0 {
		return bits.UintSize
	}
	return len(x.abs) * bits.UintSize
}

// TrailingZeroBits returns the number of consecutive least significant zero
// bits of x. It returns 0 for x == 0.
func (x Uint) TrailingZeroBits() uint {
	return x.abs.trailingZeroBits()
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Uint) Cmp(y Uint) int {
	return x.abs.cmp(y.abs)
}

// Equal reports whether x == y.
func (x Uint) Equal(y Uint) bool {
	return x.abs.cmp(y.abs) == 0
}

// IsZero reports whether x == 0.
func (x Uint) IsZero() bool {
	return len(x.abs) == 0
}

// Sign returns 0 if x == 0 and +1 otherwise.
func (x Uint) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	return 1
}

// Abs returns x.
func (x Uint) Abs() Uint {
	return x
}

// Uint64 returns the value of x and whether it fits in an uint64. If it does
// not, the returned value is 0.
func (x Uint) Uint64() (uint64, bool) {
	return x.abs.uint64()
}

// Sqrt returns ⌊√x⌋.
func (x Uint) Sqrt() Uint {
	return Uint{mag(nil).sqrt(x.abs)}
}

// SquareRoot is an alias for Sqrt.
func (x Uint) SquareRoot() Uint {
	return x.Sqrt()
}

// Int returns x as a non-negative Int.
func (x Uint) Int() Int {
	return Int{abs: x.abs}
}

// Fixed returns x as an integral Fixed value with scale 0.
func (x Uint) Fixed() Fixed {
	return Fixed{value: x.Int()}
}

// String returns the decimal representation of x.
func (x Uint) String() string {
	return string(x.abs.utoa())
}

// BinaryString returns the big-endian binary representation of x without
// leading zeros, "0" for x == 0.
func (x Uint) BinaryString() string {
	return string(x.abs.btoa())
}

// scanDigits parses a non-empty run of decimal digits.
func scanDigits(s string) (mag, error) {
	if len(s) == 0 {
		return nil, errNoDigits
	}
	var z mag
	for i := 0; i < len(s); i++ {
		d := s[i] - '0'
		if d > 9 {
			return nil, errInvalidDigit
		}
		z = z.mulAddWW(z, 10, Word(d))
	}
	return z, nil
}
