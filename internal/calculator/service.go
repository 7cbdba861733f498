// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     calculator
// Description: Calculator service: mode detection, logging and history
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package calculator wraps the numeric engine for the CLI and the TUI. It
// picks the evaluation mode, times and logs each evaluation and records it
// in the history store when one is configured.
package calculator

import (
	"context"
	"strings"
	"time"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
	mdwlog "github.com/msto63/fracalc/foundation/core/log"
	"github.com/msto63/fracalc/internal/engine"
	"github.com/msto63/fracalc/internal/evaluator"
	"github.com/msto63/fracalc/internal/format"
	"github.com/msto63/fracalc/internal/history"
)

// HistoryStore persists evaluations
type HistoryStore interface {
	Record(ctx context.Context, e *history.Entry) error
	List(ctx context.Context, limit int) ([]history.Entry, error)
	Prune(ctx context.Context, keep int) (int64, error)
	Clear(ctx context.Context) error
	Close() error
}

// Result is the outcome of one evaluation
type Result struct {
	Input    string
	Mode     format.Mode
	Output   string
	Err      error
	Duration time.Duration
}

// Display returns the text shown to the user: the formatted result or the
// error's display message
func (r Result) Display() string {
	if r.Err != nil {
		return engine.DisplayMessage(r.Err)
	}
	return r.Output
}

// Config holds service configuration
type Config struct {
	MaxInputLength int

	HistoryEnabled bool
	HistoryPath    string
	HistoryLimit   int

	Logger *mdwlog.Logger

	// Store overrides the SQLite store opened from HistoryPath
	Store HistoryStore
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MaxInputLength: 4096,
		HistoryLimit:   100,
	}
}

// Service evaluates calculator input
type Service struct {
	engine       *engine.Engine
	logger       *mdwlog.Logger
	store        HistoryStore
	historyLimit int
}

// NewService creates a calculator service
func NewService(cfg Config) (*Service, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	logger = logger.WithName("calculator")

	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultConfig().HistoryLimit
	}

	ev := evaluator.New(evaluator.Options{
		Logger:         logger,
		MaxInputLength: cfg.MaxInputLength,
	})

	store := cfg.Store
	if store == nil && cfg.HistoryEnabled {
		s, err := history.New(history.Config{Path: cfg.HistoryPath})
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to open history").
				WithOperation("calculator.NewService")
		}
		store = s
		logger.Debug("history enabled", mdwlog.Field("path", cfg.HistoryPath))
	}

	return &Service{
		engine:       engine.New(ev),
		logger:       logger,
		store:        store,
		historyLimit: cfg.HistoryLimit,
	}, nil
}

// Evaluate evaluates text in the mode detected from its content
func (s *Service) Evaluate(ctx context.Context, text string) Result {
	return s.EvaluateMode(ctx, text, engine.DetectMode(text))
}

// EvaluateMode evaluates text in the given mode. History failures are
// logged, never returned: the calculation itself succeeded.
func (s *Service) EvaluateMode(ctx context.Context, text string, mode format.Mode) Result {
	text = strings.TrimSpace(text)
	timer := s.logger.StartTimer("evaluate").
		WithField("input", text).
		WithField("mode", mode.String())

	output, err := s.engine.Evaluate(text, mode)
	res := Result{Input: text, Mode: mode, Output: output, Err: err}
	if err != nil {
		timer.WithField("code", string(mdwerror.GetCode(err)))
		res.Duration = timer.StopWithError(err)
	} else {
		timer.WithField("result", output)
		res.Duration = timer.Stop()
	}

	s.record(ctx, res)
	return res
}

func (s *Service) record(ctx context.Context, res Result) {
	if s.store == nil || res.Input == "" {
		return
	}

	entry := &history.Entry{
		Mode:   res.Mode.String(),
		Input:  res.Input,
		Result: res.Display(),
	}
	if res.Err != nil {
		entry.ErrorCode = string(mdwerror.GetCode(res.Err))
	}

	if err := s.store.Record(ctx, entry); err != nil {
		s.logger.LogError("failed to record history", err)
		return
	}
	if _, err := s.store.Prune(ctx, s.historyLimit); err != nil {
		s.logger.LogError("failed to prune history", err)
	}
}

// HistoryEnabled reports whether evaluations are being recorded
func (s *Service) HistoryEnabled() bool {
	return s.store != nil
}

// History returns up to limit past evaluations, newest first
func (s *Service) History(ctx context.Context, limit int) ([]history.Entry, error) {
	if s.store == nil {
		return nil, nil
	}
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}
	return s.store.List(ctx, limit)
}

// ClearHistory deletes all past evaluations
func (s *Service) ClearHistory(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Clear(ctx)
}

// DiagonalFraction renders numerator/denominator as a diagonal fraction.
// A zero denominator is a DivideByZero error.
func DiagonalFraction(numerator, denominator int64) (string, error) {
	if denominator == 0 {
		return "", mdwerror.New(mdwerror.CodeDivideByZero.DisplayMessage()).
			WithCode(mdwerror.CodeDivideByZero).
			WithOperation("calculator.DiagonalFraction").
			WithDetail("numerator", numerator)
	}
	return engine.FormatDiagonalFraction(numerator, denominator), nil
}

// Close releases the history store
func (s *Service) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
