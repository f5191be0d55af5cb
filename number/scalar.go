package number

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar wraps a native integer or floating-point number so that it satisfies
// Number. Arithmetic follows the rules of the underlying Go type, including
// overflow wrapping for integers.
type Scalar[T constraints.Integer | constraints.Float] struct {
	V T
}

// Of returns v as a Scalar.
func Of[T constraints.Integer | constraints.Float](v T) Scalar[T] {
	return Scalar[T]{v}
}

func (x Scalar[T]) Add(y Scalar[T]) Scalar[T] { return Scalar[T]{x.V + y.V} }
func (x Scalar[T]) Sub(y Scalar[T]) Scalar[T] { return Scalar[T]{x.V - y.V} }
func (x Scalar[T]) Mul(y Scalar[T]) Scalar[T] { return Scalar[T]{x.V * y.V} }

// Quo returns x/y. Integer division by zero panics as in Go.
func (x Scalar[T]) Quo(y Scalar[T]) Scalar[T] { return Scalar[T]{x.V / y.V} }

func (x Scalar[T]) Cmp(y Scalar[T]) int {
	switch {
	case x.V < y.V:
		return -1
	case x.V > y.V:
		return 1
	}
	return 0
}

func (x Scalar[T]) Sign() int {
	var zero T
	return x.Cmp(Scalar[T]{zero})
}

func (x Scalar[T]) IsZero() bool {
	var zero T
	return x.V == zero
}

func (x Scalar[T]) String() string {
	return fmt.Sprint(x.V)
}

// SquareRoot returns √x converted back to T, truncated for integer types.
func (x Scalar[T]) SquareRoot() Scalar[T] {
	return Scalar[T]{T(math.Sqrt(float64(x.V)))}
}
