package number

import "strings"

// Complex is a complex number with real and imaginary parts of type T.
type Complex[T Number[T]] struct {
	Re, Im T
}

// Real returns re + 0i.
func Real[T Number[T]](re T) Complex[T] {
	return Complex[T]{Re: re}
}

// Imag returns 0 + im·i.
func Imag[T Number[T]](im T) Complex[T] {
	return Complex[T]{Im: im}
}

// Add returns x+y.
func (x Complex[T]) Add(y Complex[T]) Complex[T] {
	return Complex[T]{x.Re.Add(y.Re), x.Im.Add(y.Im)}
}

// Sub returns x-y.
func (x Complex[T]) Sub(y Complex[T]) Complex[T] {
	return Complex[T]{x.Re.Sub(y.Re), x.Im.Sub(y.Im)}
}

// Mul returns x×y.
func (x Complex[T]) Mul(y Complex[T]) Complex[T] {
	return Complex[T]{
		Re: x.Re.Mul(y.Re).Sub(x.Im.Mul(y.Im)),
		Im: x.Re.Mul(y.Im).Add(x.Im.Mul(y.Re)),
	}
}

// Equal reports whether both parts of x and y are equal.
func (x Complex[T]) Equal(y Complex[T]) bool {
	return x.Re.Cmp(y.Re) == 0 && x.Im.Cmp(y.Im) == 0
}

// IsReal reports whether the imaginary part of x is zero.
func (x Complex[T]) IsReal() bool {
	return x.Im.IsZero()
}

// Magnitude returns √(re² + im²) and true if T implements Rooter. Otherwise
// it returns the zero value and false.
func (x Complex[T]) Magnitude() (T, bool) {
	sq := x.Re.Mul(x.Re).Add(x.Im.Mul(x.Im))
	if r, ok := any(sq).(Rooter[T]); ok {
		return r.SquareRoot(), true
	}
	var zero T
	return zero, false
}

// String formats x as "re", "imi", "re + imi" or "re - imi".
func (x Complex[T]) String() string {
	switch {
	case x.Im.IsZero():
		return x.Re.String()
	case x.Re.IsZero():
		return x.Im.String() + "i"
	}
	var sb strings.Builder
	sb.WriteString(x.Re.String())
	if x.Im.Sign() < 0 {
		sb.WriteString(" - ")
	} else {
		sb.WriteString(" + ")
	}
	sb.WriteString(Abs(x.Im).String())
	sb.WriteString("i")
	return sb.String()
}
