// Package number defines the small numeric contract shared by the big types
// of bigfix and by native Go numbers, and generic complex and fraction types
// built on top of it.
package number

// Number is the set of operations a numeric type must provide to be used by
// the generic types of this package. Values are immutable: each operation
// returns a new value.
//
// bigfix.Uint, bigfix.Int and bigfix.Fixed implement Number of themselves, as
// does Scalar for native integers and floats.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Cmp(T) int
	Sign() int
	IsZero() bool
	String() string
}

// A Rooter is a number with a square root.
type Rooter[T any] interface {
	SquareRoot() T
}

// Neg returns -x, computed as 0 - x. For unsigned types whose Sub returns
// |x-y|, such as bigfix.Uint, Neg is the identity.
func Neg[T Number[T]](x T) T {
	var zero T
	return zero.Sub(x)
}

// Abs returns |x|.
func Abs[T Number[T]](x T) T {
	if x.Sign() < 0 {
		return Neg(x)
	}
	return x
}
