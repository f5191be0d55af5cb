// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides contexts for bigfix.Fixed arithmetic.
//
// A Context holds a precision, in fractional bits, and a rounding mode. All
// factory functions of the form
//
//	func (c *Context) NewT(x T) bigfix.Fixed
//
// return a Fixed set to the value of x, rounded using c's precision and
// rounding mode, and operators of the form
//
//	func (c *Context) UnaryOp(x bigfix.Fixed) bigfix.Fixed
//	func (c *Context) BinaryOp(x, y bigfix.Fixed) bigfix.Fixed
//
// return the result of the operation rounded the same way. Transcendental
// functions and constants are always rounded half up.
//
// A Context catches errors: if an operation divides by zero, takes the square
// root or the logarithm of a negative number, the operation silently returns
// 0. Further operations with the context are no-ops that return 0 until
// (*Context).Err is called to check for errors.
package context

import (
	"github.com/db47h/bigfix"
	"github.com/db47h/bigfix/math"
)

// A Context is a wrapper around Fixed values that facilitates management of
// rounding modes, precision and error handling.
type Context struct {
	prec   uint
	mode   bigfix.RoundingMode
	consts *math.Cache
	err    error
}

// New creates a new context with the given precision and rounding mode. If prec
// is 0, it is set to bigfix.DefaultPrec. Constants are memoized in
// math.DefaultCache.
func New(prec uint, mode bigfix.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec).SetCache(nil)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() bigfix.RoundingMode {
	return c.mode
}

// Prec returns the precision of c in fractional bits.
func (c *Context) Prec() uint {
	return c.prec
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode bigfix.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c. If prec == 0, it is set to
// bigfix.DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	if prec == 0 {
		prec = bigfix.DefaultPrec
	}
	c.prec = prec
	return c
}

// SetCache sets the cache used for constants and returns c. If cache is nil,
// math.DefaultCache is used.
func (c *Context) SetCache(cache *math.Cache) *Context {
	if cache == nil {
		cache = math.DefaultCache
	}
	c.consts = cache
	return c
}

// Cache returns the constant cache of c.
func (c *Context) Cache() *math.Cache {
	return c.consts
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// catch records errors of the bigfix and math packages carried by a panic
// and sets *r to 0. Other panics are propagated.
func (c *Context) catch(r *bigfix.Fixed) {
	if v := recover(); v != nil {
		err, ok := v.(error)
		if !ok || !(bigfix.Error.Has(err) || math.Error.Has(err)) {
			panic(v)
		}
		c.err = err
		*r = bigfix.Fixed{}
	}
}

// check records err, if any, and returns x or 0.
func (c *Context) check(x bigfix.Fixed, err error) bigfix.Fixed {
	if err != nil {
		c.err = err
		return bigfix.Fixed{}
	}
	return x
}

// NewInt64 returns x rounded to c's precision.
func (c *Context) NewInt64(x int64) bigfix.Fixed {
	return c.Round(bigfix.FixedFromInt64(x))
}

// NewUint64 returns x rounded to c's precision.
func (c *Context) NewUint64(x uint64) bigfix.Fixed {
	return c.Round(bigfix.FixedFromUint64(x))
}

// NewInt returns x rounded to c's precision.
func (c *Context) NewInt(x bigfix.Int) bigfix.Fixed {
	return c.Round(x.Fixed())
}

// NewFloat64 returns the value of x rounded using c's precision and rounding
// mode. NaNs and infinities set c's error state.
func (c *Context) NewFloat64(x float64) bigfix.Fixed {
	if c.err != nil {
		return bigfix.Fixed{}
	}
	f, err := bigfix.FixedFromFloat64(x)
	return c.Round(c.check(f, err))
}

// NewString returns the value of the decimal string s rounded half up to c's
// precision. A malformed s sets c's error state.
func (c *Context) NewString(s string) bigfix.Fixed {
	if c.err != nil {
		return bigfix.Fixed{}
	}
	return c.check(bigfix.ParseFixed(s, c.prec))
}

// Round returns x rounded using c's precision and rounding mode.
func (c *Context) Round(x bigfix.Fixed) bigfix.Fixed {
	if c.err != nil {
		return bigfix.Fixed{}
	}
	return x.RoundTo(c.prec, c.mode)
}

// Add returns the rounded sum x+y.
func (c *Context) Add(x, y bigfix.Fixed) bigfix.Fixed {
	return c.Round(x.Add(y))
}

// Sub returns the rounded difference x-y.
func (c *Context) Sub(x, y bigfix.Fixed) bigfix.Fixed {
	return c.Round(x.Sub(y))
}

// Mul returns the rounded product x×y.
func (c *Context) Mul(x, y bigfix.Fixed) bigfix.Fixed {
	return c.Round(x.Mul(y))
}

// Neg returns the rounded value of -x.
func (c *Context) Neg(x bigfix.Fixed) bigfix.Fixed {
	return c.Round(x.Neg())
}

// Abs returns the rounded value of |x|.
func (c *Context) Abs(x bigfix.Fixed) bigfix.Fixed {
	return c.Round(x.Abs())
}

// Quo returns the rounded quotient x/y. Dividing by zero sets c's error state.
func (c *Context) Quo(x, y bigfix.Fixed) (r bigfix.Fixed) {
	if c.err != nil {
		return
	}
	defer c.catch(&r)
	// one extra truncated bit decides the rounding
	return x.Quo(y, c.prec+1).RoundTo(c.prec, c.mode)
}

// Sqrt returns the rounded square root of x. Negative values set c's error
// state.
func (c *Context) Sqrt(x bigfix.Fixed) (r bigfix.Fixed) {
	if c.err != nil {
		return
	}
	defer c.catch(&r)
	return x.Sqrt(c.prec+1).RoundTo(c.prec, c.mode)
}

// Log2 returns the base-2 logarithm of x.
func (c *Context) Log2(x bigfix.Fixed) bigfix.Fixed {
	if c.err != nil {
		return bigfix.Fixed{}
	}
	return c.check(math.Log2(x, c.prec))
}

// Log returns the natural logarithm of x.
func (c *Context) Log(x bigfix.Fixed) bigfix.Fixed {
	if c.err != nil {
		return bigfix.Fixed{}
	}
	return c.check(c.consts.Log(x, c.prec))
}

// Exp returns e**x.
func (c *Context) Exp(x bigfix.Fixed) (r bigfix.Fixed) {
	if c.err != nil {
		return
	}
	defer c.catch(&r)
	return c.consts.Exp(x, c.prec)
}

// Pow returns x**y.
func (c *Context) Pow(x, y bigfix.Fixed) bigfix.Fixed {
	if c.err != nil {
		return bigfix.Fixed{}
	}
	return c.check(c.consts.Pow(x, y, c.prec))
}

// Atan returns the arctangent of x in radians.
func (c *Context) Atan(x bigfix.Fixed) bigfix.Fixed {
	if c.err != nil {
		return bigfix.Fixed{}
	}
	return math.Atan(x, c.prec)
}

// Pi returns π.
func (c *Context) Pi() bigfix.Fixed {
	if c.err != nil {
		return bigfix.Fixed{}
	}
	return c.consts.Pi(c.prec)
}

// E returns Euler's number e.
func (c *Context) E() bigfix.Fixed {
	if c.err != nil {
		return bigfix.Fixed{}
	}
	return c.consts.E(c.prec)
}

// Ln2 returns the natural logarithm of 2.
func (c *Context) Ln2() bigfix.Fixed {
	if c.err != nil {
		return bigfix.Fixed{}
	}
	return c.consts.Ln2(c.prec)
}
