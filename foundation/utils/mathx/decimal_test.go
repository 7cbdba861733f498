// File: decimal_test.go
// Title: Decimal Rounding Tests
// Description: Tests for decimal parsing, rounding modes and fixed-point
//              rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Rounding symmetry and float input tests

package mathx

import (
	"math"
	"testing"
)

func TestStringFixed(t *testing.T) {
	tests := []struct {
		input  string
		places int
		mode   RoundingMode
		want   string
	}{
		{"2.0625", 3, RoundingModeHalfUp, "2.063"},
		{"-2.0625", 3, RoundingModeHalfUp, "-2.063"},
		{"2.0625", 3, RoundingModeHalfEven, "2.062"},
		{"2.0635", 3, RoundingModeHalfEven, "2.064"},
		{"2.0629", 3, RoundingModeDown, "2.062"},
		{"0.333333", 3, RoundingModeHalfUp, "0.333"},
		{"0.6666", 3, RoundingModeHalfUp, "0.667"},
		{"0.9996", 3, RoundingModeHalfUp, "1.000"},
		{"5", 3, RoundingModeHalfUp, "5.000"},
		{"1/3", 3, RoundingModeHalfUp, "0.333"},
		{"2.5", 0, RoundingModeHalfUp, "3"},
		{"-0.0001", 3, RoundingModeHalfUp, "0.000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d := MustNewDecimal(tt.input)
			if got := d.StringFixed(tt.places, tt.mode); got != tt.want {
				t.Errorf("StringFixed(%d) = %q, want %q", tt.places, got, tt.want)
			}
		})
	}
}

func TestNewDecimalFromFloat(t *testing.T) {
	// floats enter through their shortest text
	if got := NewDecimalFromFloat(0.1 + 0.2).String(); got != "0.30000000000000004" {
		t.Errorf("String() = %q", got)
	}
	if got := NewDecimalFromFloat(1.0005).StringFixed(3, RoundingModeHalfUp); got != "1.001" {
		t.Errorf("1.0005 rounded = %q, want 1.001", got)
	}
	if !NewDecimalFromFloat(math.NaN()).IsZero() {
		t.Error("NaN should become zero")
	}
	if !NewDecimalFromFloat(math.Inf(-1)).IsZero() {
		t.Error("-Inf should become zero")
	}
}

func TestFormatHalfUp(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{1.0 / 3.0, "0.333"},
		{2.0 / 3.0, "0.667"},
		{-1.0 / 3.0, "-0.333"},
		{123456.789012, "123456.789"},
		{0.1 + 0.2, "0.300"},
	}

	for _, tt := range tests {
		if got := FormatHalfUp(tt.v, 3); got != tt.want {
			t.Errorf("FormatHalfUp(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestDecimalBasics(t *testing.T) {
	if _, err := NewDecimal("abc"); err == nil {
		t.Error("NewDecimal(abc) should fail")
	}
	a := MustNewDecimal("1.25")
	b := NewDecimalFromInt(2)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare() ordering is wrong")
	}
	if a.Float64() != 1.25 {
		t.Errorf("Float64() = %v", a.Float64())
	}
	if got := MustNewDecimal("1/3").String(); got != "1/3" {
		t.Errorf("String() of 1/3 = %q", got)
	}
	if got := MustNewDecimal("-4").String(); got != "-4" {
		t.Errorf("String() of -4 = %q", got)
	}
	var zero Decimal
	if !zero.IsZero() || zero.StringFixed(2, RoundingModeHalfUp) != "0.00" {
		t.Error("zero value Decimal should behave as 0")
	}
}

func BenchmarkFormatHalfUp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FormatHalfUp(2.0/3.0, 3)
	}
}
