package glyph

import (
	"strconv"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"superscripts", "⁰¹²³⁴⁵⁶⁷⁸⁹", "0123456789"},
		{"subscripts", "₀₁₂₃₄₅₆₇₈₉", "0123456789"},
		{"diagonal fraction", "2 ³⁄₄", "2 3/4"},
		{"plain slash becomes marker", "6/3", "6÷3"},
		{"both slashes", "¹⁄₂/2", "1/2÷2"},
		{"negative numerator", "⁻¹⁄₂", "-1/2"},
		{"operators untouched", "1+2*3-4", "1+2*3-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDiagonalFraction(t *testing.T) {
	tests := []struct {
		n, d int64
		want string
	}{
		{3, 4, " ³⁄₄"},
		{12, 25, " ¹²⁄₂₅"},
		{-1, 2, " ⁻¹⁄₂"},
		{1, -2, " ⁻¹⁄₂"},
		{0, 5, "0"},
		{7, 0, ""},
	}

	for _, tt := range tests {
		if got := DiagonalFraction(tt.n, tt.d); got != tt.want {
			t.Errorf("DiagonalFraction(%d, %d) = %q, want %q", tt.n, tt.d, got, tt.want)
		}
	}

	got := DiagonalFraction(3, 4)
	for _, part := range []string{string(Superscripts[3]), string(FractionSlash), string(Subscripts[4])} {
		if !strings.Contains(got, part) {
			t.Errorf("DiagonalFraction(3, 4) = %q is missing %q", got, part)
		}
	}
}

func TestDiagonalFractionRoundTrip(t *testing.T) {
	for n := int64(1); n < 30; n++ {
		for d := int64(1); d < 30; d++ {
			got := strings.TrimSpace(Normalize(DiagonalFraction(n, d)))
			want := strconv.FormatInt(n, 10) + "/" + strconv.FormatInt(d, 10)
			if got != want {
				t.Errorf("round trip of %d/%d gave %q", n, d, got)
			}
		}
	}
}

func TestComposeTrailing(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"3/4", "³⁄₄", true},
		{"2 3/4", "2 ³⁄₄", true},
		{"1 ¹⁄₂ + 3/4 ", "1 ¹⁄₂ + ³⁄₄", true},
		{"0/4", "⁰⁄₄", true},
		{"3/0", "3/0", false},
		{"3+4", "3+4", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ComposeTrailing(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ComposeTrailing(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestContainsFraction(t *testing.T) {
	if !ContainsFraction("1 ¹⁄₂") {
		t.Error("diagonal fraction not detected")
	}
	if ContainsFraction("1/2") {
		t.Error("plain division reported as fraction")
	}
}
