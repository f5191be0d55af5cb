// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfix

import "github.com/zeebo/errs"

// Error is the error class of this package. All errors returned, or carried
// by panics, belong to it.
var Error = errs.Class("bigfix")

var (
	// ErrDivisionByZero is raised by divisions and remainders with a zero
	// divisor.
	ErrDivisionByZero = Error.New("division by zero")
	// ErrNegativeSqrt is raised by the square root of a negative value.
	ErrNegativeSqrt = Error.New("square root of a negative number")
	// ErrNotFinite is returned when converting a NaN or an infinity.
	ErrNotFinite = Error.New("value is not finite")
	// ErrSyntax is returned by parse functions for malformed input.
	ErrSyntax = Error.New("invalid syntax")
)

// syntaxError reports the malformed input s. The result matches ErrSyntax
// with errors.Is and its text carries cause.
func syntaxError(s string, cause error) error {
	return errs.Combine(ErrSyntax, Error.New("%q: %v", s, cause))
}
