// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigfix implements arbitrary-precision integers and binary fixed-point
numbers.

The following numeric types are supported:

	Uint     unsigned integers
	Int      signed integers
	Fixed    binary fixed-point numbers

A Uint stores its magnitude in a little-endian Word slice, where a Word is a
machine word of 32 or 64 bits. An Int is a sign and a Uint magnitude. A Fixed
is an Int value v and a scale s denoting

	v × 2**-s

so that the scale is a count of binary fractional bits, not of decimal
digits. Consequently, 0.1 cannot be represented exactly by a Fixed while
0.5 and 0.375 can.

Unlike math/big, all values are immutable: operations are methods that return
a new value and never modify their receiver or arguments. The zero value of
each type is 0 and ready to use:

	var x bigfix.Uint                    // x == 0
	y := bigfix.NewInt(-7).Mul(bigfix.NewInt(6))  // y == -42

Addition, subtraction, multiplication and comparison of Fixed values are
exact; operands of different scales are aligned by shifting the one with the
smaller scale to the left. Operations that cannot be exact take an explicit
precision, in bits, for the result:

	third := bigfix.FixedFromInt64(1).Quo(bigfix.FixedFromInt64(3), 8) // 0.01010101b
	fmt.Println(third)                                                 // 0.33

Division truncates toward zero. Rounding is explicit, with Round and RoundTo,
using one of the RoundingMode values HalfUp or Down. DefaultPrec is the
precision used by the math subpackage when a precision of 0 is given; there
is no mutable global precision.

Division by zero panics with ErrDivisionByZero; the QuoRem and Div variants
return the error instead. All errors of the package belong to the error class
Error and can be tested with errors.Is.

The math subpackage provides square root, logarithms, exponential, power and
arctangent functions and the constants π, e and ln 2, and the context
subpackage wraps precision, rounding mode and error handling in a single
value.
*/
package bigfix
