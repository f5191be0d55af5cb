package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/db47h/bigfix"
)

// run executes bigcalc with args, after resetting the flags of a previous run.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	Root.PersistentFlags().VisitAll(reset)
	for _, c := range Root.Commands() {
		c.Flags().VisitAll(reset)
	}
	var out bytes.Buffer
	Root.SetOut(&out)
	Root.SetErr(&out)
	Root.SetArgs(args)
	err := Root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	type TC struct {
		Args []string
		Want string
		Mark error
	}
	tcs := []TC{
		{Args: []string{"add", "13", "29"}, Want: "42\n", Mark: oops.New("unexpected")},
		{Args: []string{"mul", "--", "-7", "6"}, Want: "-42\n", Mark: oops.New("unexpected")},
		{Args: []string{"sub", "1.5", "0.25", "--prec", "8"}, Want: "1.25\n", Mark: oops.New("unexpected")},
		{Args: []string{"div", "1", "3", "--prec", "8", "--mode", "down"}, Want: "0.33\n", Mark: oops.New("unexpected")},
		{Args: []string{"div", "100", "7", "--prec", "0", "--digits", "3"}, Want: "14.286\n", Mark: oops.New("unexpected")},
		{Args: []string{"sqrt", "144"}, Want: "12\n", Mark: oops.New("unexpected")},
		{Args: []string{"sqrt", "2", "--prec", "10", "--format", "bin"}, Want: "1.0110101000\n", Mark: oops.New("unexpected")},
		{Args: []string{"log2", "1024", "--prec", "16"}, Want: "10\n", Mark: oops.New("unexpected")},
		{Args: []string{"pow", "2", "10", "--prec", "32"}, Want: "1024\n", Mark: oops.New("unexpected")},
		{Args: []string{"pi", "--prec", "20", "--digits", "5"}, Want: "3.14159\n", Mark: oops.New("unexpected")},
		{Args: []string{"e", "--prec", "20"}, Want: "2.718282\n", Mark: oops.New("unexpected")},
		{Args: []string{"ln2", "--prec", "20"}, Want: "0.693147\n", Mark: oops.New("unexpected")},
		{Args: []string{"atan", "1", "--prec", "20"}, Want: "0.785398\n", Mark: oops.New("unexpected")},
		{Args: []string{"exp", "1", "--prec", "20"}, Want: "2.718282\n", Mark: oops.New("unexpected")},
		{Args: []string{"ln", "1", "--prec", "20"}, Want: "0\n", Mark: oops.New("unexpected")},
		{Args: []string{"consts", "--prec", "20"}, Want: "pi  3.141593\ne   2.718282\nln2 0.693147\n", Mark: oops.New("unexpected")},
	}
	for _, tc := range tcs {
		t.Run(strings.Join(tc.Args, " "), func(t *testing.T) {
			out, err := run(t, tc.Args...)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Want, out, tc.Mark)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "ln", "0")
	require.ErrorContains(t, err, "logarithm of zero")
	require.True(t, Error.Has(err))

	_, err = run(t, "div", "1", "0")
	require.ErrorIs(t, err, bigfix.ErrDivisionByZero)

	_, err = run(t, "add", "1", "x")
	require.ErrorIs(t, err, bigfix.ErrSyntax)

	_, err = run(t, "pi", "--mode", "sideways")
	require.ErrorContains(t, err, "unknown rounding mode")

	_, err = run(t, "pi", "--format", "hex")
	require.ErrorContains(t, err, "unknown output format")
}

func TestMetrics(t *testing.T) {
	out, err := run(t, "pi", "--prec", "30", "--metrics")
	require.NoError(t, err)
	require.Contains(t, out, `bigfix_constants_cache_misses_total{constant="pi"} 1`)
	require.Contains(t, out, `bigfix_constants_compute_seconds_count{constant="pi"} 1`)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prec: 8\nmode: down\n"), 0o600))

	out, err := run(t, "div", "1", "3", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "0.33\n", out)

	// flags take precedence over the configuration file
	out, err = run(t, "div", "1", "3", "--config", path, "--prec", "4")
	require.NoError(t, err)
	require.Equal(t, "0.3\n", out)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("BIGCALC_PREC", "8")
	t.Setenv("BIGCALC_MODE", "down")
	out, err := run(t, "div", "1", "3")
	require.NoError(t, err)
	require.Equal(t, "0.33\n", out)
}
