package calculator

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
	mdwlog "github.com/msto63/fracalc/foundation/core/log"
	"github.com/msto63/fracalc/internal/format"
	"github.com/msto63/fracalc/internal/history"
)

func newTestService(t *testing.T, buf *bytes.Buffer, limit int) *Service {
	t.Helper()
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatText,
		Output: buf,
	})
	svc, err := NewService(Config{
		MaxInputLength: 64,
		HistoryEnabled: true,
		HistoryPath:    filepath.Join(t.TempDir(), "history.db"),
		HistoryLimit:   limit,
		Logger:         logger,
	})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestEvaluate(t *testing.T) {
	svc := newTestService(t, &bytes.Buffer{}, 100)
	ctx := context.Background()

	tests := []struct {
		input    string
		mode     format.Mode
		want     string
		wantCode mdwerror.Code
	}{
		{"2+3", format.ModeArithmetic, "5", ""},
		{" 10 ÷ 4 ", format.ModeArithmetic, "2.5", ""},
		{"2 ³⁄₄ + 1 ¹⁄₂", format.ModeFraction, "4 ¹⁄₄", ""},
		{"¹⁄₃", format.ModeFraction, "0.333", ""},
		{"5/0", format.ModeArithmetic, "Undefined", mdwerror.CodeUndefined},
		{"2++3", format.ModeArithmetic, "Math Error", mdwerror.CodeMathError},
		{strings.Repeat("1+", 40) + "1", format.ModeArithmetic, "Math Error", mdwerror.CodeMathError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := svc.Evaluate(ctx, tt.input)
			if res.Mode != tt.mode {
				t.Errorf("Mode = %v, want %v", res.Mode, tt.mode)
			}
			if got := res.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
			if tt.wantCode != "" && !mdwerror.HasCode(res.Err, tt.wantCode) {
				t.Errorf("Err = %v, want code %s", res.Err, tt.wantCode)
			}
			if tt.wantCode == "" && res.Err != nil {
				t.Errorf("unexpected error: %v", res.Err)
			}
		})
	}
}

func TestEvaluateRecordsHistory(t *testing.T) {
	svc := newTestService(t, &bytes.Buffer{}, 2)
	ctx := context.Background()

	svc.Evaluate(ctx, "1+1")
	svc.Evaluate(ctx, "5/0")
	svc.Evaluate(ctx, "¹⁄₂ + ¹⁄₄")
	svc.Evaluate(ctx, "   ")

	entries, err := svc.History(ctx, 10)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("History() returned %d entries, want 2 after pruning", len(entries))
	}
	if entries[0].Input != "¹⁄₂ + ¹⁄₄" || entries[0].Mode != "fraction" || entries[0].Result != "³⁄₄" {
		t.Errorf("newest entry = %+v", entries[0])
	}
	if entries[1].ErrorCode != string(mdwerror.CodeUndefined) || entries[1].Result != "Undefined" {
		t.Errorf("failed entry = %+v", entries[1])
	}

	if err := svc.ClearHistory(ctx); err != nil {
		t.Fatalf("ClearHistory() error = %v", err)
	}
	entries, _ = svc.History(ctx, 10)
	if len(entries) != 0 {
		t.Errorf("History() after clear = %d entries", len(entries))
	}
}

func TestEvaluateLogs(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(t, &buf, 10)

	svc.Evaluate(context.Background(), "2*3")
	svc.Evaluate(context.Background(), "2**3")

	out := buf.String()
	for _, want := range []string{"evaluate completed", "result=6", "evaluate failed", "code=MATH_ERROR", "{calculator}"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryDisabled(t *testing.T) {
	svc, err := NewService(Config{Logger: mdwlog.NewWithConfig(mdwlog.Config{Output: &bytes.Buffer{}})})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if svc.HistoryEnabled() {
		t.Error("HistoryEnabled() = true without a store")
	}
	svc.Evaluate(context.Background(), "1+2")
	entries, err := svc.History(context.Background(), 5)
	if err != nil || entries != nil {
		t.Errorf("History() = %v, %v", entries, err)
	}
	if err := svc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestDiagonalFraction(t *testing.T) {
	got, err := DiagonalFraction(3, 4)
	if err != nil || got != " ³⁄₄" {
		t.Errorf("DiagonalFraction(3, 4) = %q, %v", got, err)
	}
	if _, err := DiagonalFraction(1, 0); !mdwerror.HasCode(err, mdwerror.CodeDivideByZero) {
		t.Errorf("DiagonalFraction(1, 0) error = %v", err)
	}
}

type failingStore struct {
	records int
}

func (f *failingStore) Record(ctx context.Context, e *history.Entry) error {
	f.records++
	return errors.New("disk full")
}
func (f *failingStore) List(ctx context.Context, limit int) ([]history.Entry, error) {
	return nil, nil
}
func (f *failingStore) Prune(ctx context.Context, keep int) (int64, error) { return 0, nil }
func (f *failingStore) Clear(ctx context.Context) error { return nil }
func (f *failingStore) Close() error { return nil }

func TestHistoryFailureDoesNotFailEvaluation(t *testing.T) {
	var buf bytes.Buffer
	store := &failingStore{}
	svc, err := NewService(Config{
		Logger: mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelInfo, Output: &buf}),
		Store:  store,
	})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	res := svc.Evaluate(context.Background(), "3*4")
	if res.Err != nil || res.Output != "12" {
		t.Errorf("Evaluate() = %+v", res)
	}
	if store.records != 1 {
		t.Errorf("Record called %d times, want 1", store.records)
	}
	if !strings.Contains(buf.String(), "failed to record history") {
		t.Errorf("record failure was not logged:\n%s", buf.String())
	}
}
