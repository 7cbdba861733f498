// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     cmd
// Description: history list and clear commands
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear past evaluations",
	}

	var (
		limit  int
		asJSON bool
	)
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List past evaluations, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			defer svc.Close()
			if !svc.HistoryEnabled() {
				return errHistoryDisabled()
			}

			entries, err := svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					e.Mode,
					e.Input,
					resultLine(e.Result),
				)
			}
			return tw.Flush()
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries")
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all past evaluations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			defer svc.Close()
			if !svc.HistoryEnabled() {
				return errHistoryDisabled()
			}

			if err := svc.ClearHistory(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return nil
		},
	}

	cmd.AddCommand(listCmd, clearCmd)
	return cmd
}

func errHistoryDisabled() error {
	return mdwerror.New("history is disabled").
		WithCode(mdwerror.CodeConfigError).
		WithOperation("history")
}
