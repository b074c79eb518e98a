package codec

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{36, "36"},
		{-0.5, "-0.5"},
		{1.25, "1.25"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{123456789012, "123456789012"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"36", 36},
		{" 42 ", 42},
		{"", 0},
		{"-1.5e3", -1500},
		{".5", 0.5},
		{"5.", 5},
		{"0x1f", 31},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseNumber(tt.in); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseNumberNaN(t *testing.T) {
	for _, in := range []string{"abc", "42abc", "inf", "NaN", "1_000", "0x", "--1"} {
		if got := ParseNumber(in); !math.IsNaN(got) {
			t.Errorf("ParseNumber(%q): got %v, want NaN", in, got)
		}
	}
}

func TestLooksNumeric(t *testing.T) {
	yes := []string{"1", "-2", " 3", ".5", "42abc", "Infinity", "+7x"}
	no := []string{"", "abc", ".", "-", "NaN", "x1"}

	for _, s := range yes {
		if !looksNumeric(s) {
			t.Errorf("%q should look numeric", s)
		}
	}
	for _, s := range no {
		if looksNumeric(s) {
			t.Errorf("%q should not look numeric", s)
		}
	}
}
