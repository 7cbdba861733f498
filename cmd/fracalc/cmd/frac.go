// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     cmd
// Description: frac and diagonal commands
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
	"github.com/msto63/fracalc/foundation/utils/mathx"
	"github.com/msto63/fracalc/internal/calculator"
	"github.com/msto63/fracalc/internal/decimalconv"
	"github.com/msto63/fracalc/internal/format"
)

func newFracCmd() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "frac <decimal>",
		Short: "Show a decimal number as a mixed fraction",
		Long: `Show a decimal number the way fraction mode displays results.

  fracalc frac 2.75                 2 ³⁄₄
  fracalc frac 0.3333333333333333   0.333

Values without a short terminating expansion are treated as periodic
and shown rounded to three places. --explain prints how the value was
classified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := mathx.NewDecimal(args[0])
			if err != nil {
				return mdwerror.Wrap(err, "not a decimal number").
					WithCode(mdwerror.CodeInvalidInput).
					WithDetail("input", args[0])
			}
			v := d.Float64()
			out := cmd.OutOrStdout()

			if !explain {
				fmt.Fprintln(out, resultLine(format.Fraction(v)))
				return nil
			}

			e := decimalconv.Expand(v)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "input:\t%s\n", d.String())
			fmt.Fprintf(tw, "periodic:\t%t\n", e.Periodic)
			fmt.Fprintf(tw, "expansion:\t%s\n", e.Notation())
			if e.Periodic {
				fmt.Fprintf(tw, "digits:\t%d\n", len(e.Digits))
			}
			fmt.Fprintf(tw, "result:\t%s\n", resultLine(format.Fraction(v)))
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "show how the value was classified")
	return cmd
}

func newDiagonalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagonal <numerator> <denominator>",
		Short: "Render n/d as a diagonal fraction",
		Long: `Render numerator/denominator with superscript and subscript digits,
ready to paste into a fraction-mode expression:

  fracalc diagonal 3 4     ³⁄₄`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0], "numerator")
			if err != nil {
				return err
			}
			d, err := parseInt(args[1], "denominator")
			if err != nil {
				return err
			}

			s, err := calculator.DiagonalFraction(n, d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resultLine(s))
			return nil
		},
	}
}

func parseInt(s, name string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, mdwerror.Wrap(err, "invalid "+name).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail(name, s)
	}
	return v, nil
}
