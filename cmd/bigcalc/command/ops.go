// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/bigfix"
	"github.com/db47h/bigfix/context"
)

var arithmetic = []*cobra.Command{
	binary("add", "Print x + y.", (*context.Context).Add),
	binary("sub", "Print x - y.", (*context.Context).Sub),
	binary("mul", "Print x × y.", (*context.Context).Mul),
	binary("div", "Print x / y.", (*context.Context).Quo),
	binary("pow", "Print x**y.", (*context.Context).Pow),
}

var functions = []*cobra.Command{
	unary("sqrt", "Print the square root of x.", (*context.Context).Sqrt),
	unary("log2", "Print the base-2 logarithm of x.", (*context.Context).Log2),
	unary("ln", "Print the natural logarithm of x.", (*context.Context).Log),
	unary("exp", "Print e**x.", (*context.Context).Exp),
	unary("atan", "Print the arctangent of x, in radians.", (*context.Context).Atan),
}

var constants = []*cobra.Command{
	constant("pi", "Print π.", (*context.Context).Pi),
	constant("e", "Print Euler's number e.", (*context.Context).E),
	constant("ln2", "Print the natural logarithm of 2.", (*context.Context).Ln2),
	{
		Use:   "consts",
		Short: "Compute π, e and ln 2 concurrently and print them.",
		Args:  cobra.NoArgs,
		RunE:  commandConsts,
	},
}

func binary(name, short string, op func(*context.Context, bigfix.Fixed, bigfix.Fixed) bigfix.Fixed) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <x> <y>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseArgs(args)
			if err != nil {
				return err
			}
			return emit(cmd, op(calc, xs[0], xs[1]))
		},
	}
}

func unary(name, short string, op func(*context.Context, bigfix.Fixed) bigfix.Fixed) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <x>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseArgs(args)
			if err != nil {
				return err
			}
			return emit(cmd, op(calc, xs[0]))
		},
	}
}

func constant(name, short string, op func(*context.Context) bigfix.Fixed) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, op(calc))
		},
	}
}

func commandConsts(cmd *cobra.Command, args []string) error {
	cache, prec := calc.Cache(), calc.Prec()
	names := []string{"pi", "e", "ln2"}
	fns := []func(uint) bigfix.Fixed{cache.Pi, cache.E, cache.Ln2}
	vals := make([]bigfix.Fixed, len(fns))

	var g errgroup.Group
	for i, fn := range fns {
		g.Go(func() error {
			vals[i] = fn(prec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Error.Wrap(err)
	}
	for i, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%-4s%s\n", name, format(vals[i]))
	}
	return nil
}
