// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     cmd
// Description: calc and eval commands
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
	"github.com/msto63/fracalc/internal/calculator"
	"github.com/msto63/fracalc/internal/format"
)

func newCalcCmd(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "calc <expression>...",
		Short: "Evaluate one expression",
		Long: `Evaluate one expression and print the result.

The arguments are joined with spaces, so quoting is optional:

  fracalc calc 2 ³⁄₄ + 1 ¹⁄₂     4 ¹⁄₄
  fracalc calc "10 ÷ 4"          2.5
  fracalc calc 5/0               Error: Undefined

--mode forces fraction or arithmetic formatting instead of detecting
it from the input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, auto, err := parseMode(mode)
			if err != nil {
				return err
			}

			svc, err := a.service()
			if err != nil {
				return err
			}
			defer svc.Close()

			text := strings.Join(args, " ")
			var res calculator.Result
			if auto {
				res = svc.Evaluate(cmd.Context(), text)
			} else {
				res = svc.EvaluateMode(cmd.Context(), text, m)
			}
			if res.Err != nil {
				return res.Err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resultLine(res.Output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "auto", "auto, fraction or arithmetic")
	return cmd
}

func newEvalCmd(a *app) *cobra.Command {
	var echo bool

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate expressions from standard input, one per line",
		Long: `Evaluate expressions read from standard input, one per line.

Each line prints its result, or the error message for that line. Blank
lines are skipped. The command fails if any line failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.evalStream(cmd.InOrStdin(), cmd.OutOrStdout(), echo)
		},
	}

	cmd.Flags().BoolVarP(&echo, "echo", "e", false, "print each input before its result")
	return cmd
}

// evalStream evaluates r line by line and writes one result per line
func (a *app) evalStream(r io.Reader, w io.Writer, echo bool) error {
	svc, err := a.service()
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx := context.Background()
	scanner := bufio.NewScanner(r)

	var total, failed int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		total++

		res := svc.Evaluate(ctx, line)
		if res.Err != nil {
			failed++
		}
		out := resultLine(res.Display())
		if echo {
			out = line + " = " + out
		}
		fmt.Fprintln(w, out)
	}
	if err := scanner.Err(); err != nil {
		return mdwerror.Wrap(err, "failed to read input").WithCode(mdwerror.CodeInvalidInput)
	}

	if failed > 0 {
		return mdwerror.Newf("%d of %d expressions failed", failed, total).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("failed", failed)
	}
	return nil
}

func parseMode(s string) (format.Mode, bool, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return format.ModeArithmetic, true, nil
	case "fraction", "frac":
		return format.ModeFraction, false, nil
	case "arithmetic", "plain":
		return format.ModeArithmetic, false, nil
	default:
		return 0, false, mdwerror.Newf("unknown mode %q", s).WithCode(mdwerror.CodeInvalidInput)
	}
}

// resultLine trims the leading space of a fraction-only result
func resultLine(output string) string {
	return strings.TrimLeft(output, " ")
}
