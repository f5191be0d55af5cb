// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"flag"
	"fmt"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/db47h/bigfix"
	"github.com/db47h/bigfix/context"
	"github.com/db47h/bigfix/math"
)

// Error is the error class of bigcalc.
var Error = errs.Class("bigcalc")

// settings resolved from flags, environment and configuration file.
var cfg struct {
	prec    uint
	mode    bigfix.RoundingMode
	format  string
	digits  int
	metrics bool
}

var (
	calc     *context.Context
	registry *prometheus.Registry

	Root = &cobra.Command{
		Use:   "bigcalc",
		Short: "bigcalc evaluates arbitrary-precision binary fixed-point arithmetic.",
		Long: "`bigcalc` computes arithmetic operations, elementary functions and constants on binary fixed-point numbers.\n\n" +
			"Results have --prec fractional bits and are printed in decimal, or in binary with --format bin.",
		SilenceUsage:       true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}
)

func init() {
	fs := Root.PersistentFlags()
	fs.Uint("prec", bigfix.DefaultPrec, "Number of fractional bits of results.")
	fs.String("mode", bigfix.HalfUp.String(), "Rounding mode of arithmetic operations: HalfUp or Down.")
	fs.String("format", "dec", "Output format: dec or bin.")
	fs.Int("digits", 0, "Number of decimal digits to print. 0 prints about as many digits as --prec bits can hold.")
	fs.String("config", "", "Path to a configuration file.")
	fs.Bool("metrics", false, "Print constant cache metrics after the result.")
	fs.AddGoFlagSet(flag.CommandLine)

	Root.AddCommand(arithmetic...)
	Root.AddCommand(functions...)
	Root.AddCommand(constants...)
}

func setup(cmd *cobra.Command, args []string) error {
	v := viper.New()
	v.SetEnvPrefix("bigcalc")
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Error.Wrap(err)
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Error.New("reading configuration: %v", err)
		}
	}

	mode, ok := bigfix.ParseRoundingMode(v.GetString("mode"))
	if !ok {
		return Error.New("unknown rounding mode %q", v.GetString("mode"))
	}
	format := v.GetString("format")
	if format != "dec" && format != "bin" {
		return Error.New("unknown output format %q", format)
	}
	cfg.prec = v.GetUint("prec")
	cfg.mode = mode
	cfg.format = format
	cfg.digits = v.GetInt("digits")
	cfg.metrics = v.GetBool("metrics")

	registry = prometheus.NewRegistry()
	cache := math.NewCache(math.NewMetrics(registry))
	calc = context.New(cfg.prec, cfg.mode).SetCache(cache)
	glog.V(1).Infof("bigcalc: prec=%d mode=%v format=%s", calc.Prec(), calc.Mode(), cfg.format)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if !cfg.metrics {
		return nil
	}
	mfs, err := registry.Gather()
	if err != nil {
		return Error.Wrap(err)
	}
	w := cmd.OutOrStdout()
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s{%s} %v\n", mf.GetName(), labels, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				fmt.Fprintf(w, "%s_count{%s} %d\n", mf.GetName(), labels, m.GetHistogram().GetSampleCount())
			}
		}
	}
	return nil
}

// emit checks the error state of the calculator and prints x.
func emit(cmd *cobra.Command, x bigfix.Fixed) error {
	if err := calc.Err(); err != nil {
		return Error.Wrap(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), format(x))
	return nil
}

func format(x bigfix.Fixed) string {
	switch {
	case cfg.format == "bin":
		return x.BinaryString()
	case cfg.digits > 0:
		return fmt.Sprintf("%.*f", cfg.digits, x)
	}
	return x.String()
}

// parseArgs parses args as decimal numbers rounded to the calculator's
// precision.
func parseArgs(args []string) (xs []bigfix.Fixed, err error) {
	defer Error.WrapP(&err)

	xs = make([]bigfix.Fixed, len(args))
	for i, a := range args {
		xs[i] = calc.NewString(a)
		if err = calc.Err(); err != nil {
			return nil, err
		}
	}
	return xs, nil
}
