package number

// Fraction is the ratio Num/Den of two values of type T. Fractions are not
// reduced.
type Fraction[T Number[T]] struct {
	Num, Den T
}

// Ratio returns num/den.
func Ratio[T Number[T]](num, den T) Fraction[T] {
	return Fraction[T]{num, den}
}

// Add returns x+y. Fractions with equal denominators keep that denominator.
func (x Fraction[T]) Add(y Fraction[T]) Fraction[T] {
	if x.Den.Cmp(y.Den) == 0 {
		return Fraction[T]{x.Num.Add(y.Num), x.Den}
	}
	return Fraction[T]{x.Num.Mul(y.Den).Add(y.Num.Mul(x.Den)), x.Den.Mul(y.Den)}
}

// Sub returns x-y.
func (x Fraction[T]) Sub(y Fraction[T]) Fraction[T] {
	if x.Den.Cmp(y.Den) == 0 {
		return Fraction[T]{x.Num.Sub(y.Num), x.Den}
	}
	return Fraction[T]{x.Num.Mul(y.Den).Sub(y.Num.Mul(x.Den)), x.Den.Mul(y.Den)}
}

// Mul returns x×y.
func (x Fraction[T]) Mul(y Fraction[T]) Fraction[T] {
	return Fraction[T]{x.Num.Mul(y.Num), x.Den.Mul(y.Den)}
}

// Quo returns x/y.
func (x Fraction[T]) Quo(y Fraction[T]) Fraction[T] {
	return Fraction[T]{x.Num.Mul(y.Den), x.Den.Mul(y.Num)}
}

// Equal reports whether x and y denote the same ratio, by cross
// multiplication.
func (x Fraction[T]) Equal(y Fraction[T]) bool {
	return x.Num.Mul(y.Den).Cmp(x.Den.Mul(y.Num)) == 0
}

// Sign returns the sign of the ratio.
func (x Fraction[T]) Sign() int {
	return x.Num.Sign() * x.Den.Sign()
}

// Abs returns |x|.
func (x Fraction[T]) Abs() Fraction[T] {
	return Fraction[T]{Abs(x.Num), Abs(x.Den)}
}

// String formats x as "num/den".
func (x Fraction[T]) String() string {
	return x.Num.String() + "/" + x.Den.String()
}
