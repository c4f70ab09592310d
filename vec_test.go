package geonode

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	v := V3(1, 2, 3)
	w := V3(-4, 5, 0.5)

	tests := []struct {
		name   string
		got    Vec3
		expect Vec3
	}{
		{"add", v.Add(w), V3(-3, 7, 3.5)},
		{"sub", v.Sub(w), V3(5, -3, 2.5)},
		{"mul", v.Mul(2), V3(2, 4, 6)},
		{"neg", v.Neg(), V3(-1, -2, -3)},
		{"cross x*y", V3(1, 0, 0).Cross(V3(0, 1, 0)), V3(0, 0, 1)},
		{"cross y*z", V3(0, 1, 0).Cross(V3(0, 0, 1)), V3(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.expect, 1e-10) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestVec3_Length(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec3
		expect float64
	}{
		{"zero", V3(0, 0, 0), 0},
		{"unit z", V3(0, 0, 1), 1},
		{"2-3-6", V3(2, 3, 6), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math.Abs(got-tt.expect) > 1e-10 {
				t.Errorf("%v.Length() = %v, want %v", tt.v, got, tt.expect)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	if got := V3(0, 0, 0).Normalize(); got != (Vec3{}) {
		t.Errorf("zero.Normalize() = %v, want zero", got)
	}
	if got := V3(0, 3, 4).Normalize(); !got.Approx(V3(0, 0.6, 0.8), 1e-10) {
		t.Errorf("Normalize() = %v, want (0, 0.6, 0.8)", got)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !V3(1, 2, 3).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if V3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN vector reported as finite")
	}
	if V3(0, 0, math.Inf(-1)).IsFinite() {
		t.Error("Inf vector reported as finite")
	}
}

func TestPointConversions(t *testing.T) {
	p := Pt(1.5, -2)
	if got := p.Vec3(); got != V3(1.5, -2, 0) {
		t.Errorf("Pt.Vec3() = %v", got)
	}
	if got := V3(1, 2, 3).XY(); got != Pt(1, 2) {
		t.Errorf("V3.XY() = %v", got)
	}
	if d := Pt(0, 0).Distance(Pt(3, 4)); math.Abs(d-5) > 1e-10 {
		t.Errorf("Distance() = %v, want 5", d)
	}
}
