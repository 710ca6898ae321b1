package wavefront

import (
	"math"
	"testing"
)

func TestLenientFloat32(t *testing.T) {
	type spec struct {
		in  string
		exp float32
	}
	specs := []spec{
		{"1.5", 1.5},
		{"-2", -2},
		{"+.25", 0.25},
		{"5.", 5},
		{"1e3", 1000},
		{"2.5E-1", 0.25},
		// trailing garbage is dropped
		{"1.5x", 1.5},
		{"3,5", 3},
		{"-7abc", -7},
		{"1e", 1},
		{"1e+", 1},
		{"2ex", 2},
		// no numeric prefix
		{"", 0},
		{"abc", 0},
		{"-", 0},
		{".", 0},
		{"-.e5", 0},
		{"nan", 0},
		{"x1", 0},
	}

	for idx, s := range specs {
		if got := lenientFloat32(s.in); got != s.exp {
			t.Errorf("[spec %d] expected %q to parse as %v; got %v", idx, s.in, s.exp, got)
		}
	}

	if got := lenientFloat32("1e400"); !math.IsInf(float64(got), 1) {
		t.Fatalf("expected out of range value to saturate to +Inf; got %v", got)
	}
	if got := lenientFloat32("-1e400junk"); !math.IsInf(float64(got), -1) {
		t.Fatalf("expected out of range value to saturate to -Inf; got %v", got)
	}
}

func TestLenientInt32(t *testing.T) {
	type spec struct {
		in  string
		exp int32
	}
	specs := []spec{
		{"42", 42},
		{"-3", -3},
		{"+8", 8},
		{"1.0", 1},
		{"12abc", 12},
		{"7e2", 7},
		{"abc", 0},
		{"-", 0},
		{"", 0},
		{"99999999999", 0},
	}

	for idx, s := range specs {
		if got := lenientInt32(s.in); got != s.exp {
			t.Errorf("[spec %d] expected %q to parse as %d; got %d", idx, s.in, s.exp, got)
		}
	}
}
