package math_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/calebcase/oops"
	"github.com/db47h/bigfix"
	"github.com/db47h/bigfix/math"
	"github.com/stretchr/testify/require"
)

// reference values, 100 decimal digits
const (
	piDigits  = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"
	eDigits   = "2.7182818284590452353602874713526624977572470936999595749669676277240766303535475945713821785251664274"
	ln2Digits = "0.6931471805599453094172321214581765680755001343602552541206800094933936219696947156058633269964186875"
)

var precs = []uint{1, 8, 53, 64, 114, 200, 300}

func ref(t *testing.T, s string, prec uint) bigfix.Fixed {
	t.Helper()
	x, err := bigfix.ParseFixed(s, prec+30)
	require.NoError(t, err)
	return x
}

func fixed(t *testing.T, s string) bigfix.Fixed {
	t.Helper()
	x, err := bigfix.ParseFixed(s, 64)
	require.NoError(t, err)
	return x
}

// requireWithin fails unless |got - want| <= 2**-prec.
func requireWithin(t *testing.T, want, got bigfix.Fixed, prec uint, msgAndArgs ...interface{}) {
	t.Helper()
	ulp := bigfix.NewFixed(bigfix.NewInt(1), prec)
	if got.Sub(want).Abs().Cmp(ulp) > 0 {
		require.Failf(t, "value out of tolerance",
			"prec %d\nwant: %s\ngot:  %s\ndiff: %s\n%s", prec, want.Text(), got.Text(), got.Sub(want).Text(), fmt.Sprint(msgAndArgs...))
	}
}

func TestConstants(t *testing.T) {
	type TC struct {
		Name   string
		Digits string
		Fn     func(uint) bigfix.Fixed
		Mark   error
	}
	tcs := []TC{
		{Name: "pi", Digits: piDigits, Fn: math.Pi, Mark: oops.New("unexpected")},
		{Name: "e", Digits: eDigits, Fn: math.E, Mark: oops.New("unexpected")},
		{Name: "ln2", Digits: ln2Digits, Fn: math.Ln2, Mark: oops.New("unexpected")},
	}
	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			for _, prec := range precs {
				got := tc.Fn(prec)
				require.Equal(t, prec, got.Scale(), tc.Mark)
				requireWithin(t, ref(t, tc.Digits, prec), got, prec, tc.Mark)
			}
		})
	}
}

func TestConstantsDefaultPrec(t *testing.T) {
	x := math.Pi(0)
	require.Equal(t, uint(bigfix.DefaultPrec), x.Scale())
	require.True(t, x.Equal(math.Pi(bigfix.DefaultPrec)))
}

func TestLog2(t *testing.T) {
	type TC struct {
		X    string
		Want string
		Mark error
	}
	tcs := []TC{
		{X: "1", Want: "0", Mark: oops.New("unexpected")},
		{X: "2", Want: "1", Mark: oops.New("unexpected")},
		{X: "1024", Want: "10", Mark: oops.New("unexpected")},
		{X: "0.5", Want: "-1", Mark: oops.New("unexpected")},
		{X: "0.125", Want: "-3", Mark: oops.New("unexpected")},
		{X: "3", Want: "1.5849625007211561814537389439478165087598144076924810604557526545410982277943585625222804749180882420", Mark: oops.New("unexpected")},
		{X: "10", Want: "3.3219280948873623478703194294893901758648313930245806120547563958159347766086252158501397433593701550", Mark: oops.New("unexpected")},
	}
	for _, tc := range tcs {
		t.Run(tc.X, func(t *testing.T) {
			x := fixed(t, tc.X)
			for _, prec := range precs {
				got, err := math.Log2(x, prec)
				require.NoError(t, err, tc.Mark)
				requireWithin(t, ref(t, tc.Want, prec), got, prec, tc.Mark)
			}
		})
	}
}

func TestLog2Exact(t *testing.T) {
	got, err := math.Log2Uint(bigfix.NewUint(1<<20), 16)
	require.NoError(t, err)
	require.True(t, got.Equal(bigfix.FixedFromInt64(20)), got.Text())

	got, err = math.Log2Int(bigfix.NewInt(64), 16)
	require.NoError(t, err)
	require.True(t, got.Equal(bigfix.FixedFromInt64(6)), got.Text())
}

func TestLogErrors(t *testing.T) {
	_, err := math.Log2(bigfix.Fixed{}, 10)
	require.ErrorIs(t, err, math.ErrLogarithmOfZero)
	_, err = math.Log2Int(bigfix.NewInt(-3), 10)
	require.ErrorIs(t, err, math.ErrNegativeLogarithm)
	_, err = math.Log(bigfix.FixedFromInt64(-1), 10)
	require.ErrorIs(t, err, math.ErrNegativeLogarithm)
	_, err = math.LogUint(bigfix.Uint{}, 10)
	require.ErrorIs(t, err, math.ErrLogarithmOfZero)
	require.True(t, math.Error.Has(err))
}

func TestLogE(t *testing.T) {
	for _, prec := range []uint{16, 64, 114, 256} {
		got, err := math.Log(math.E(prec), prec)
		require.NoError(t, err)
		requireWithin(t, bigfix.FixedFromInt64(1), got, prec-1)
	}
}

func TestLog(t *testing.T) {
	for _, prec := range precs {
		got, err := math.LogInt(bigfix.NewInt(2), prec)
		require.NoError(t, err)
		requireWithin(t, ref(t, ln2Digits, prec), got, prec)

		// ln 10
		got, err = math.LogUint(bigfix.NewUint(10), prec)
		require.NoError(t, err)
		requireWithin(t, ref(t, "2.3025850929940456840179914546843642076011014886287729760333279009675726096773524802359972050895982983", prec), got, prec)
	}
}

func TestExp(t *testing.T) {
	for _, prec := range precs {
		e := ref(t, eDigits, prec)
		requireWithin(t, e, math.ExpUint(bigfix.NewUint(1), prec), prec)
		requireWithin(t, e, math.Exp(bigfix.FixedFromInt64(1), prec), prec)
		requireWithin(t, e.Mul(e).Mul(e), math.ExpInt(bigfix.NewInt(3), prec), prec)
		inv := bigfix.FixedFromInt64(1).Quo(e, prec+30)
		requireWithin(t, inv, math.ExpInt(bigfix.NewInt(-1), prec), prec)
		requireWithin(t, inv, math.Exp(bigfix.FixedFromInt64(-1), prec), prec)
		// e**0.5
		requireWithin(t, ref(t, "1.6487212707001281468486507878141635716537761007101480115750793116406610211942156086327765200563666430", prec),
			math.Exp(fixed(t, "0.5"), prec), prec)
	}
	require.True(t, math.ExpUint(bigfix.Uint{}, 10).Equal(bigfix.FixedFromInt64(1)))
	require.True(t, math.Exp(bigfix.Fixed{}, 10).Equal(bigfix.FixedFromInt64(1)))
}

func TestExpSmallScale(t *testing.T) {
	want := "4.4816890703380648226020554601192758190057498683696670567726500827859366744667137729810538313824533913"
	x := bigfix.NewFixed(bigfix.NewInt(3), 1) // 1.5
	for _, prec := range []uint{16, 40, 64, 114} {
		requireWithin(t, ref(t, want, prec), math.Exp(x, prec), prec-1)
		requireWithin(t, ref(t, want, prec), math.Exp(x.RoundTo(64, bigfix.Down), prec), prec-1)
	}
	got, err := math.Pow(bigfix.FixedFromInt64(2), bigfix.FixedFromInt64(10), 53)
	require.NoError(t, err)
	requireWithin(t, bigfix.FixedFromInt64(1024), got, 52)
}

func TestExpLogInverse(t *testing.T) {
	for _, s := range []string{"0.001", "0.75", "3", "12.5", "1000"} {
		x := fixed(t, s)
		for _, prec := range []uint{32, 64, 114} {
			l, err := math.Log(x, prec+16)
			require.NoError(t, err)
			requireWithin(t, x, math.Exp(l, prec), prec-1, s)
		}
	}
}

func TestExpTooLarge(t *testing.T) {
	require.PanicsWithError(t, math.ErrExponentTooLarge.Error(), func() {
		math.ExpUint(bigfix.NewUint(1<<40), 10)
	})
}

func TestPow(t *testing.T) {
	type TC struct {
		X, Y string
		Want string
		Mark error
	}
	tcs := []TC{
		{X: "2", Y: "10", Want: "1024", Mark: oops.New("unexpected")},
		{X: "4", Y: "0.5", Want: "2", Mark: oops.New("unexpected")},
		{X: "2", Y: "-2", Want: "0.25", Mark: oops.New("unexpected")},
		{X: "10", Y: "3", Want: "1000", Mark: oops.New("unexpected")},
		{X: "2", Y: "0.5", Want: "1.4142135623730950488016887242096980785696718753769480731766797379907324784621070388503875343276415727", Mark: oops.New("unexpected")},
		{X: "0", Y: "3", Want: "0", Mark: oops.New("unexpected")},
		{X: "-5", Y: "0", Want: "1", Mark: oops.New("unexpected")},
	}
	for _, tc := range tcs {
		t.Run(tc.X+"**"+tc.Y, func(t *testing.T) {
			for _, prec := range []uint{16, 53, 114} {
				got, err := math.Pow(fixed(t, tc.X), fixed(t, tc.Y), prec)
				require.NoError(t, err, tc.Mark)
				requireWithin(t, ref(t, tc.Want, prec), got, prec-1, tc.Mark)
			}
		})
	}
}

func TestPowErrors(t *testing.T) {
	_, err := math.Pow(bigfix.Fixed{}, bigfix.FixedFromInt64(-1), 10)
	require.ErrorIs(t, err, bigfix.ErrDivisionByZero)
	_, err = math.Pow(bigfix.FixedFromInt64(-2), bigfix.FixedFromInt64(2), 10)
	require.ErrorIs(t, err, math.ErrNegativeLogarithm)
	_, err = math.Pow(bigfix.FixedFromInt64(2), bigfix.FixedFromInt64(1<<30), 10)
	require.ErrorIs(t, err, math.ErrExponentTooLarge)
}

func TestAtan(t *testing.T) {
	for _, prec := range precs {
		quarterPi := ref(t, piDigits, prec).ScaleByPowerOfTwo(-2)
		requireWithin(t, quarterPi, math.Atan(bigfix.FixedFromInt64(1), prec), prec)
		requireWithin(t, quarterPi.Neg(), math.Atan(bigfix.FixedFromInt64(-1), prec), prec)
		// atan(√3) = π/3
		sqrt3 := bigfix.FixedFromInt64(3).Sqrt(prec + 30)
		requireWithin(t, ref(t, piDigits, prec).Quo(bigfix.FixedFromInt64(3), prec+30), math.Atan(sqrt3, prec), prec)
	}
	require.True(t, math.Atan(bigfix.Fixed{}, 10).IsZero())
	// atan(x) → π/2 as x grows
	big := bigfix.FixedFromInt64(1).ScaleByPowerOfTwo(200)
	requireWithin(t, ref(t, piDigits, 64).ScaleByPowerOfTwo(-1), math.Atan(big, 64), 64)
}

func TestSqrt(t *testing.T) {
	require.Equal(t, "12", math.SqrtUint(bigfix.NewUint(144)).String())
	require.Equal(t, "12", math.SqrtInt(bigfix.NewInt(150)).String())
	require.Equal(t, "12i", math.SqrtInt(bigfix.NewInt(-144)).String())

	r := math.Sqrt(bigfix.FixedFromInt64(2), 10)
	require.True(t, r.IsReal())
	requireWithin(t, ref(t, "1.41421356237309504880", 10), r.Re, 10)

	r = math.Sqrt(bigfix.FixedFromInt64(-4), 20)
	require.True(t, r.Re.IsZero())
	require.True(t, r.Im.Equal(bigfix.FixedFromInt64(2)), r.String())
}

func ExamplePi() {
	fmt.Printf("%.30f\n", math.Pi(110))
	// Output:
	// 3.141592653589793238462643383280
}

func BenchmarkExp(b *testing.B) {
	x := bigfix.NewFixed(bigfix.NewInt(373), 7)
	for _, prec := range []uint{53, 114, 200, 500, 1000} {
		b.Run(strconv.Itoa(int(prec)), func(b *testing.B) {
			math.Exp(x, prec) // warm the constant cache
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				math.Exp(x, prec)
			}
		})
	}
}

func BenchmarkLog(b *testing.B) {
	x := bigfix.NewFixed(bigfix.NewInt(373), 7)
	for _, prec := range []uint{53, 114, 200, 500} {
		b.Run(strconv.Itoa(int(prec)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = math.Log(x, prec)
			}
		})
	}
}
