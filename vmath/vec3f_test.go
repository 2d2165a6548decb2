package vmath

import (
	"math"
	"testing"
)

func TestV3FCross(t *testing.T) {
	a := Vec3F{1, 2, 3}
	b := Vec3F{4, -6, 1}
	want := Vec3F{20, 11, -14}
	if got := V3FCross(a, b); got != want {
		t.Errorf("V3FCross(%v, %v) = %v, want %v", a, b, got, want)
	}
	if got := V3FCross(b, a); got != V3FNeg(want) {
		t.Errorf("cross product should be anti-commutative, got %v", got)
	}
}

func TestV3FDot(t *testing.T) {
	a := Vec3F{1, 2, 3}
	b := Vec3F{3, 3, 3}
	if got := V3FDot(a, b); got != 18 {
		t.Errorf("V3FDot = %v, want 18", got)
	}
	if V3FDot(a, b) != V3FDot(b, a) {
		t.Error("dot product should be symmetric")
	}
}

func TestV3FMag(t *testing.T) {
	if got := V3FMag(Vec3F{3, 4, 0}); got != 5 {
		t.Errorf("V3FMag = %v, want 5", got)
	}
	if got := V3FMag(Vec3F{2, 3, 6}); math.Abs(got-7) > 1e-14 {
		t.Errorf("V3FMag = %v, want 7", got)
	}
	if got := V3FMag(Vec3F{1e300, 1e300, 1e300}); math.IsInf(got, 0) {
		t.Error("V3FMag overflowed on large components")
	}
}

func TestV3FArithmetic(t *testing.T) {
	a := Vec3F{1, 2, 3}
	b := Vec3F{3, 2, 1}
	if got := V3FAdd(a, b); got != (Vec3F{4, 4, 4}) {
		t.Errorf("V3FAdd = %v", got)
	}
	if got := V3FSub(a, b); got != (Vec3F{-2, 0, 2}) {
		t.Errorf("V3FSub = %v", got)
	}
	if got := V3FScale(a, 2); got != (Vec3F{2, 4, 6}) {
		t.Errorf("V3FScale = %v", got)
	}
	if got := V3FArray(a); got != [3]float64{1, 2, 3} {
		t.Errorf("V3FArray = %v", got)
	}
}
