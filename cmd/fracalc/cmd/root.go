// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     cmd
// Description: Root command, configuration and logger setup
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/msto63/fracalc/foundation/core/config"
	mdwlog "github.com/msto63/fracalc/foundation/core/log"
	"github.com/msto63/fracalc/internal/calculator"
)

// app holds the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	noHistory bool

	cfg    *config.Config
	logger *mdwlog.Logger
}

// Execute runs the fracalc command line
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the fracalc command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fracalc",
		Short: "Fraction calculator",
		Long: `fracalc evaluates arithmetic with + - * / and fraction literals.

Input that contains a diagonal fraction such as "2 ³⁄₄ + 1 ¹⁄₂" is
evaluated in fraction mode and the result is shown as a mixed fraction.
Anything else is plain arithmetic.

Without arguments fracalc starts the interactive calculator on a
terminal, or evaluates standard input line by line when it is piped.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive(cmd) {
				return a.runTUI()
			}
			return a.evalStream(cmd.InOrStdin(), cmd.OutOrStdout(), false)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "",
		"config file (default: $FRACALC_CONFIG, ./fracalc.toml, ~/.config/fracalc/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.noHistory, "no-history", false, "do not record evaluations")

	rootCmd.AddCommand(
		newCalcCmd(a),
		newEvalCmd(a),
		newFracCmd(),
		newDiagonalCmd(),
		newHistoryCmd(a),
		newTUICmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the configuration and installs the default logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level, err := mdwlog.ParseLevel(a.cfg.General.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = mdwlog.LevelDebug
	}
	logFormat, err := mdwlog.ParseFormat(a.cfg.General.LogFormat)
	if err != nil {
		return err
	}

	a.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: logFormat,
		Output: cmd.ErrOrStderr(),
		Name:   "fracalc",
	})
	mdwlog.SetDefault(a.logger)

	if path := a.cfg.Path(); path != "" {
		a.logger.Debug("configuration loaded", mdwlog.Field("path", path))
	}
	return nil
}

// service opens the calculator service; the caller closes it
func (a *app) service() (*calculator.Service, error) {
	return calculator.NewService(calculator.Config{
		MaxInputLength: a.cfg.Calculator.MaxInputLength,
		HistoryEnabled: a.cfg.History.Enabled && !a.noHistory,
		HistoryPath:    a.cfg.History.Path,
		HistoryLimit:   a.cfg.History.Limit,
		Logger:         a.logger,
	})
}

// interactive reports whether the command reads from a terminal
func interactive(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
