package math

import (
	"github.com/db47h/bigfix"
)

func checkLog(x bigfix.Fixed) error {
	switch x.Sign() {
	case -1:
		return ErrNegativeLogarithm
	case 0:
		return ErrLogarithmOfZero
	}
	return nil
}

// Log2 returns the base-2 logarithm of x rounded half up to prec fractional
// bits. If prec is 0, bigfix.DefaultPrec is used. It returns
// ErrNegativeLogarithm if x < 0 and ErrLogarithmOfZero if x == 0.
func Log2(x bigfix.Fixed, prec uint) (bigfix.Fixed, error) {
	if err := checkLog(x); err != nil {
		return bigfix.Fixed{}, err
	}
	prec = precOrDefault(prec)
	return log2(x, prec+guardBits(prec)).RoundTo(prec, bigfix.HalfUp), nil
}

// Log2Int is like Log2 for an integer argument.
func Log2Int(x bigfix.Int, prec uint) (bigfix.Fixed, error) {
	return Log2(x.Fixed(), prec)
}

// Log2Uint is like Log2 for an unsigned integer argument.
func Log2Uint(x bigfix.Uint, prec uint) (bigfix.Fixed, error) {
	return Log2(x.Fixed(), prec)
}

// log2 returns log2(x), x > 0, with wp fractional bits, truncated.
//
// The integer part is the position of the most significant bit of x. The
// mantissa m = x / 2**exp lies in [1, 2) and the fractional bits are produced
// one at a time by squaring m: if m² >= 2, the next bit is 1 and m² is halved.
func log2(x bigfix.Fixed, wp uint) bigfix.Fixed {
	v := x.Value()
	exp := v.Magnitude().BitLen() - 1
	m := bigfix.NewFixed(v, uint(exp)).RoundTo(wp, bigfix.Down)
	var frac bigfix.Uint
	for i := uint(1); i <= wp; i++ {
		m = m.Mul(m).RoundTo(wp, bigfix.Down)
		if m.Cmp(two) >= 0 {
			frac = frac.SetBit(wp-i, 1)
			m = m.ScaleByPowerOfTwo(-1)
		}
	}
	ip := bigfix.FixedFromInt64(int64(exp) - int64(x.Scale()))
	return ip.Add(bigfix.NewFixed(frac.Int(), wp))
}

// Log returns the natural logarithm of x rounded half up to prec fractional
// bits, computed as log2(x) × ln 2. If prec is 0, bigfix.DefaultPrec is used.
// It returns ErrNegativeLogarithm if x < 0 and ErrLogarithmOfZero if x == 0.
func (c *Cache) Log(x bigfix.Fixed, prec uint) (bigfix.Fixed, error) {
	if err := checkLog(x); err != nil {
		return bigfix.Fixed{}, err
	}
	prec = precOrDefault(prec)
	// the error on ln 2 is magnified by |log2(x)|
	wp := prec + guardBits(prec) + logBits(x)
	return log2(x, wp).Mul(c.Ln2(wp)).RoundTo(prec, bigfix.HalfUp), nil
}

// LogInt is like Log for an integer argument.
func (c *Cache) LogInt(x bigfix.Int, prec uint) (bigfix.Fixed, error) {
	return c.Log(x.Fixed(), prec)
}

// LogUint is like Log for an unsigned integer argument.
func (c *Cache) LogUint(x bigfix.Uint, prec uint) (bigfix.Fixed, error) {
	return c.Log(x.Fixed(), prec)
}

// Log returns ln(x) rounded to prec bits, using DefaultCache.
func Log(x bigfix.Fixed, prec uint) (bigfix.Fixed, error) { return DefaultCache.Log(x, prec) }

// LogInt returns ln(x) rounded to prec bits, using DefaultCache.
func LogInt(x bigfix.Int, prec uint) (bigfix.Fixed, error) { return DefaultCache.LogInt(x, prec) }

// LogUint returns ln(x) rounded to prec bits, using DefaultCache.
func LogUint(x bigfix.Uint, prec uint) (bigfix.Fixed, error) { return DefaultCache.LogUint(x, prec) }
