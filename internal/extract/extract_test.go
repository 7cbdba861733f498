package extract

import (
	"strings"
	"testing"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
)

func TestExtract(t *testing.T) {
	shape, values, err := Extract("12 + 3.50 * -2")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	p := string(Placeholder)
	if want := p + " + " + p + " * " + p; shape != want {
		t.Errorf("shape = %q, want %q", shape, want)
	}
	want := []float64{12, 3.5, -2}
	if len(values) != len(want) {
		t.Fatalf("values = %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("values[%d] = %v, want %v", i, values[i], want[i])
		}
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"007+2.50", "7+2.5"},
		{"1.0 * 3", "1 * 3"},
		{"2-3", "2-3"},
		{"0.1+0.2", "0.1+0.2"},
		{"", ""},
		{"abc", "abc"},
	}

	for _, tt := range tests {
		got, err := Canonicalize(tt.in)
		if err != nil {
			t.Errorf("Canonicalize(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractOutOfRange(t *testing.T) {
	_, _, err := Extract("1" + strings.Repeat("0", 400))
	if !mdwerror.HasCode(err, mdwerror.CodeMathError) {
		t.Errorf("Extract(huge) error = %v, want CodeMathError", err)
	}
}

func TestReinsertMismatch(t *testing.T) {
	_, err := Reinsert(string(Placeholder)+"+"+string(Placeholder), []float64{1})
	if !mdwerror.HasCode(err, mdwerror.CodeMathError) {
		t.Errorf("Reinsert() error = %v, want CodeMathError", err)
	}
}

func TestFindFractions(t *testing.T) {
	literals, err := FindFractions("2 3/4 + 1 1/2")
	if err != nil {
		t.Fatalf("FindFractions() error = %v", err)
	}
	if len(literals) != 2 {
		t.Fatalf("found %d literals, want 2", len(literals))
	}

	if literals[0].Text != "2 3/4" || literals[0].Value.String() != "2 3/4" {
		t.Errorf("first literal = %+v", literals[0])
	}
	if literals[1].Text != "1 1/2" || literals[1].Value.String() != "1 1/2" {
		t.Errorf("second literal = %+v", literals[1])
	}

	between := "2 3/4 + 1 1/2"[literals[0].End:literals[1].Start]
	if between != " + " {
		t.Errorf("text between literals = %q, want \" + \"", between)
	}
}

func TestFindFractionsErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code mdwerror.Code
	}{
		{"zero denominator", "3/0", mdwerror.CodeDivideByZero},
		{"zero denominator mixed", "1 3/0", mdwerror.CodeDivideByZero},
		{"overflow", "99999999999999999999/2", mdwerror.CodeMathError},
		{"after decimal point", "1.5 3/4", mdwerror.CodeMathError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindFractions(tt.in)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("FindFractions(%q) error = %v, want %s", tt.in, err, tt.code)
			}
		})
	}

	literals, err := FindFractions("0/5")
	if err != nil || len(literals) != 1 || literals[0].Value.ToDecimal() != 0 {
		t.Errorf("FindFractions(0/5) = %v, %v", literals, err)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two mixed literals", "2 ³⁄₄ + 1 ¹⁄₂", "2.75 + 1.5"},
		{"single fraction", "¹⁄₂", "0.5"},
		{"plain division kept", "¹⁄₂ / 2", "0.5 / 2"},
		{"division glyph", "¹⁄₄ ÷ 2", "0.25 / 2"},
		{"negative literal", "-¹⁄₂ * 4", "-0.5 * 4"},
		{"superscript minus", "⁻¹⁄₂ + 1", "-0.5 + 1"},
		{"ascii fraction slash input", "3⁄4*2", "0.75*2"},
		{"periodic value", "¹⁄₃", "0.3333333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := Resolve(tt.in)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveReturnsLiterals(t *testing.T) {
	_, literals, err := Resolve("2 3⁄4 + 1 1⁄2")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(literals) != 2 || literals[0].Value.ToDecimal() != 2.75 || literals[1].Value.ToDecimal() != 1.5 {
		t.Errorf("literals = %+v", literals)
	}
}

func BenchmarkResolve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = Resolve("2 ³⁄₄ + 1 ¹⁄₂ * 3")
	}
}
