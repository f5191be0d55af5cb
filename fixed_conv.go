// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string and float64 conversions for Fixed values.

package bigfix

import (
	"fmt"
	"math"
	"strings"
)

// String returns the decimal representation of x: an optional "-" sign, the
// integer part and, unless x is an integer, a "." followed by the fractional
// digits.
//
// At most max(1, x.Scale()*3/10) fractional digits are printed, which
// approximates the number of decimal digits that x.Scale() bits can hold. The
// last printed digit is rounded half up and trailing zeros are removed.
func (x Fixed) String() string {
	n := x.scale * 3 / 10
	if n < 1 {
		n = 1
	}
	return string(x.appendDecimal(nil, n, false))
}

// Format implements fmt.Formatter. It accepts the verbs 'v' and 's' (as
// String), 'b' (as BinaryString) and 'f', which prints exactly as many
// fractional digits as the format precision, rounded half up, or behaves as
// 'v' if no precision is given. The '+' flag and the width are honored.
func (x Fixed) Format(s fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 'v', 's':
		buf = []byte(x.String())
	case 'b':
		buf = []byte(x.BinaryString())
	case 'f':
		if p, ok := s.Precision(); ok {
			buf = x.appendDecimal(nil, uint(p), true)
		} else {
			buf = []byte(x.String())
		}
	default:
		fmt.Fprintf(s, "%%!%c(bigfix.Fixed=%s)", verb, x.String())
		return
	}
	if s.Flag('+') && (len(buf) == 0 || buf[0] != '-') {
		buf = append([]byte{'+'}, buf...)
	}
	if w, ok := s.Width(); ok && w > len(buf) {
		pad := []byte(strings.Repeat(" ", w-len(buf)))
		if s.Flag('-') {
			buf = append(buf, pad...)
		} else {
			buf = append(pad, buf...)
		}
	}
	_, _ = s.Write(buf)
}

// Text returns the exact decimal representation of x, with exactly
// x.Scale() fractional digits. Since 2**-s has s fractional decimal digits,
// the result is never rounded.
func (x Fixed) Text() string {
	return string(x.appendDecimal(nil, x.scale, true))
}

// appendDecimal appends the decimal representation of x with at most n
// fractional digits, the last one rounded half up. If pad is set, exactly n
// digits are written; otherwise trailing zeros are removed.
func (x Fixed) appendDecimal(buf []byte, n uint, pad bool) []byte {
	ip := mag(nil).shr(x.value.abs, x.scale)
	frac := mag(nil).trunc(x.value.abs, x.scale)

	var digits []byte
	if len(frac) > 0 || pad {
		digits = make([]byte, 0, n)
	}
	// Each multiplication by 10 moves the next decimal digit of the fraction
	// into the bits above the scale.
	for uint(len(digits)) < n && len(frac) > 0 {
		frac = frac.mulAddWW(frac, 10, 0)
		d := mag(nil).shr(frac, x.scale)
		frac = frac.trunc(frac, x.scale)
		var w Word
		if len(d) > 0 {
			w = d[0]
		}
		digits = append(digits, '0'+byte(w))
	}

	if len(frac) > 0 && frac.bit(x.scale-1) != 0 {
		// the remainder is at least half a unit of the last digit
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] < '9' {
				digits[i]++
				break
			}
			digits[i] = '0'
		}
		if i < 0 {
			ip = ip.add(ip, magOne)
		}
	}
	if pad {
		for uint(len(digits)) < n {
			digits = append(digits, '0')
		}
	} else {
		for len(digits) > 0 && digits[len(digits)-1] == '0' {
			digits = digits[:len(digits)-1]
		}
	}

	// a negative value that prints as zero loses its sign
	if x.value.neg && (len(ip) > 0 || strings.Trim(string(digits), "0") != "") {
		buf = append(buf, '-')
	}
	buf = append(buf, ip.utoa()...)
	if len(digits) > 0 {
		buf = append(buf, '.')
		buf = append(buf, digits...)
	}
	return buf
}

// BinaryString returns the binary representation of x with a "." inserted
// x.Scale() bits from the right. The integer part is padded with zeros so
// that at least one integer digit is printed.
func (x Fixed) BinaryString() string {
	digits := string(x.value.abs.btoa())
	sign := ""
	if x.value.neg {
		sign = "-"
	}
	if x.scale == 0 {
		return sign + digits
	}
	if pad := int(x.scale) + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	i := len(digits) - int(x.scale)
	return sign + digits[:i] + "." + digits[i:]
}

// ParseFixed returns the value of the decimal string s rounded half up to prec
// fractional bits. s may have a leading sign and a single '.'; at least one
// digit is required.
func ParseFixed(s string, prec uint) (Fixed, error) {
	t, neg := trimSign(s)
	ip, fp, _ := strings.Cut(t, ".")
	if len(ip)+len(fp) == 0 {
		return Fixed{}, syntaxError(s, errNoDigits)
	}
	n, err := scanDigits(ip + fp)
	if err != nil {
		return Fixed{}, syntaxError(s, err)
	}
	if len(fp) == 0 {
		return Fixed{makeInt(neg, n), 0}.RoundTo(prec, HalfUp), nil
	}
	// n / 10**k computed with one extra bit for rounding
	den := mag(nil).setWord(1)
	for i := 0; i < len(fp); i++ {
		den = den.mulAddWW(den, 10, 0)
	}
	q, _ := mag(nil).div(nil, mag(nil).shl(n, prec+1), den)
	return Fixed{makeInt(neg, q), prec + 1}.RoundTo(prec, HalfUp), nil
}

// FixedFromFloat64 returns the exact value of f. The sign, exponent and
// mantissa of f are decoded directly: the mantissa with its implicit leading
// bit becomes the value and the scale is derived from the exponent. It returns
// ErrNotFinite if f is a NaN or an infinity.
func FixedFromFloat64(f float64) (Fixed, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fixed{}, fmt.Errorf("%w: %v", ErrNotFinite, f)
	}
	if f == 0 {
		return Fixed{}, nil
	}
	const (
		mantBits = 52
		bias     = 1023
	)
	b := math.Float64bits(f)
	neg := b>>63 != 0
	exp := int(b >> mantBits & 0x7ff)
	mant := b & (1<<mantBits - 1)
	if exp == 0 {
		// denormal
		exp = 1
	} else {
		mant |= 1 << mantBits
	}
	// f = mant × 2**(exp-bias-mantBits)
	x := Fixed{value: makeInt(neg, mag(nil).setUint64(mant))}.ScaleByPowerOfTwo(exp - bias - mantBits)
	// drop trailing zero bits of the mantissa
	if tz := min(x.value.abs.trailingZeroBits(), x.scale); tz > 0 {
		x = Fixed{x.value.Rsh(tz), x.scale - tz}
	}
	return x, nil
}

// Float64 returns the float64 value nearest to x. Values beyond the float64
// range return ±Inf and the low bits of values with more than 64 significant
// bits are truncated before rounding.
func (x Fixed) Float64() float64 {
	n := x.value.abs.bitLen()
	if n == 0 {
		return 0
	}
	exp := -int(x.scale)
	abs := x.value.abs
	if n > 64 {
		abs = mag(nil).shr(abs, uint(n-64))
		exp += n - 64
	}
	u, _ := abs.uint64()
	f := math.Ldexp(float64(u), exp)
	if x.value.neg {
		f = -f
	}
	return f
}
