package format

import (
	"math"
	"strings"
	"testing"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"integer", 2, "2"},
		{"negative integer", -7, "-7"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"short decimal", 0.25, "0.25"},
		{"ten characters", 1234567.25, "1234567.25"},
		{"no exponent for large values", 12345678.5, "12345678.5"},
		{"no exponent for small values", 1e-7, "0.0000001"},
		{"long decimal", 1.0 / 3.0, "0.333"},
		{"long negative", -2.0 / 3.0, "-0.667"},
		{"half up", 0.1 + 0.2, "0.300"},
		{"large integer", 1e15, "1000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Arithmetic(tt.v); got != tt.want {
				t.Errorf("Arithmetic(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"integer", 4, "4"},
		{"quarter", 0.25, "¹⁄₄"},
		{"mixed", 4.25, "4 ¹⁄₄"},
		{"negative mixed", -1.5, "-1 ¹⁄₂"},
		{"periodic", 1.0 / 3.0, "0.333"},
		{"periodic mixed", 1 + 1.0/6.0, "1.167"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fraction(tt.v); got != tt.want {
				t.Errorf("Fraction(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestResultModes(t *testing.T) {
	if got := Result(0.75, ModeFraction); got != "³⁄₄" {
		t.Errorf("Result(0.75, fraction) = %q", got)
	}
	if got := Result(0.75, ModeArithmetic); got != "0.75" {
		t.Errorf("Result(0.75, arithmetic) = %q", got)
	}
	if ModeFraction.String() != "fraction" || ModeArithmetic.String() != "arithmetic" {
		t.Error("unexpected mode names")
	}
}

func TestDiagonalFraction(t *testing.T) {
	got := DiagonalFraction(3, 4)
	if !strings.HasPrefix(got, " ") {
		t.Errorf("DiagonalFraction(3, 4) = %q, want a leading space", got)
	}
	for _, part := range []string{"³", "⁄", "₄"} {
		if !strings.Contains(got, part) {
			t.Errorf("DiagonalFraction(3, 4) = %q is missing %q", got, part)
		}
	}
	if DiagonalFraction(3, 0) != "" {
		t.Error("zero denominator should render empty")
	}
	if DiagonalFraction(0, 3) != "0" {
		t.Error("zero numerator should render 0")
	}
}
