package math

import "github.com/zeebo/errs"

// Error is the error class of this package.
var Error = errs.Class("bigfix/math")

// Errors returned or raised by the functions of this package.
var (
	ErrNegativeLogarithm = Error.New("logarithm of a negative number")
	ErrLogarithmOfZero   = Error.New("logarithm of zero")
	ErrExponentTooLarge  = Error.New("exponent too large")
)
