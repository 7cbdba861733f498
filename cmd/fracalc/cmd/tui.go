// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the calculator TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	tui "github.com/msto63/fracalc/internal/tui/calculator"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive calculator",
		Long: `Start the interactive calculator.

Keys:
  Enter       evaluate the input line
  Ctrl+F      turn a trailing n/d into a diagonal fraction
  Ctrl+L      clear input and result
  Up/Down     recall past input
  Tab         show or hide the history pane
  Esc/Ctrl+C  quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}
}

func (a *app) runTUI() error {
	svc, err := a.service()
	if err != nil {
		return err
	}
	defer svc.Close()

	a.logger.Debug("starting tui")
	return tui.Run(svc, tui.Config{
		ShowHistory:    a.cfg.TUI.ShowHistory,
		HistoryRows:    a.cfg.TUI.HistoryRows,
		MaxInputLength: a.cfg.Calculator.MaxInputLength,
	})
}
