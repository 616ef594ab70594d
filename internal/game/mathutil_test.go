package game

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEq(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vecAlmostEq(a, b Vec3, tol float64) bool {
	return almostEq(a.X, b.X, tol) && almostEq(a.Y, b.Y, tol) && almostEq(a.Z, b.Z, tol)
}

func TestWrapAxisRange(t *testing.T) {
	values := []float64{0, 1, -1, 19.999, 20, -20, 25, -25, 39, -39, 100, -100, 1e6, -1e6}
	for _, v := range values {
		w := wrapAxis(v)
		if w < -HalfArena || w >= HalfArena {
			t.Errorf("wrapAxis(%v) = %v, outside [-%v, %v)", v, w, HalfArena, HalfArena)
		}
	}
}

func TestWrapAxisPeriodic(t *testing.T) {
	values := []float64{0, 0.5, -3.25, 17, -19.5}
	for _, v := range values {
		base := wrapAxis(v)
		for _, k := range []float64{-3, -1, 1, 2, 5} {
			if got := wrapAxis(v + k*ArenaSize); !almostEq(got, base, 1e-9) {
				t.Errorf("wrapAxis(%v + %v*ArenaSize) = %v, want %v", v, k, got, base)
			}
		}
	}
}

func TestWrapDeltaShortest(t *testing.T) {
	tests := []struct {
		d    float64
		want float64
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{19, 19},
		{21, -19},
		{-21, 19},
		{20, 20},
		{-20, 20},
		{39, -1},
	}
	for _, tt := range tests {
		if got := wrapDelta(tt.d); !almostEq(got, tt.want, 1e-9) {
			t.Errorf("wrapDelta(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestTorusDistanceNeverExceedsEuclidean(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 200; i++ {
		a := Vec3{r.RangeF(-HalfArena, HalfArena), GroundY, r.RangeF(-HalfArena, HalfArena)}
		b := Vec3{r.RangeF(-HalfArena, HalfArena), GroundY, r.RangeF(-HalfArena, HalfArena)}
		td := torusDistance(a, b)
		ed := a.Dist(b)
		if td > ed+eps {
			t.Fatalf("torusDistance(%v,%v) = %v > euclidean %v", a, b, td, ed)
		}
	}
}

func TestTorusDistanceEqualsEuclideanWithoutShortcut(t *testing.T) {
	a := Vec3{1, GroundY, 2}
	b := Vec3{4, GroundY, -3}
	if td, ed := torusDistance(a, b), a.Dist(b); !almostEq(td, ed, eps) {
		t.Errorf("torusDistance = %v, euclidean = %v; expected equal for nearby points", td, ed)
	}
}

func TestTorusDistanceTakesShortcutAcrossSeam(t *testing.T) {
	a := Vec3{-19, GroundY, 0}
	b := Vec3{19, GroundY, 0}
	if got := torusDistance(a, b); !almostEq(got, 2, eps) {
		t.Errorf("torusDistance across seam = %v, want 2", got)
	}
}

func TestNearestUnwrap(t *testing.T) {
	tests := []struct {
		wrapped   Vec3
		reference Vec3
		want      Vec3
	}{
		{Vec3{-19, GroundY, 0}, Vec3{19.5, GroundY, 0}, Vec3{21, GroundY, 0}},
		{Vec3{19, GroundY, -19}, Vec3{-19, GroundY, 19}, Vec3{-21, GroundY, 21}},
		{Vec3{3, GroundY, 4}, Vec3{2, GroundY, 5}, Vec3{3, GroundY, 4}},
		{Vec3{-15, GroundY, 0}, Vec3{105, GroundY, 0}, Vec3{105, GroundY, 0}},
	}
	for _, tt := range tests {
		got := nearestUnwrap(tt.wrapped, tt.reference)
		if !vecAlmostEq(got, tt.want, 1e-9) {
			t.Errorf("nearestUnwrap(%v, %v) = %v, want %v", tt.wrapped, tt.reference, got, tt.want)
		}
	}
}

func TestNearestUnwrapMinimizesDistance(t *testing.T) {
	r := NewRand(21)
	for i := 0; i < 100; i++ {
		wrapped := Vec3{r.RangeF(-HalfArena, HalfArena), GroundY, r.RangeF(-HalfArena, HalfArena)}
		ref := Vec3{r.RangeF(-200, 200), GroundY, r.RangeF(-200, 200)}
		got := nearestUnwrap(wrapped, ref)
		best := got.Dist(ref)
		for kx := -2.0; kx <= 2; kx++ {
			for kz := -2.0; kz <= 2; kz++ {
				alt := wrapped.Add(Vec3{X: kx * ArenaSize, Z: kz * ArenaSize})
				if alt.Dist(ref) < best-eps {
					t.Fatalf("nearestUnwrap(%v, %v) = %v is not minimal: %v is closer", wrapped, ref, got, alt)
				}
			}
		}
	}
}

func TestSmoothingFactor(t *testing.T) {
	if got := smoothingFactor(0, 5); got != 0 {
		t.Errorf("smoothingFactor(0, 5) = %v, want 0", got)
	}
	prev := 0.0
	for _, dt := range []float64{0.001, 0.016, 0.1, 1, 10} {
		a := smoothingFactor(dt, 5)
		if a < 0 || a >= 1 {
			t.Errorf("smoothingFactor(%v, 5) = %v, outside [0,1)", dt, a)
		}
		if a <= prev {
			t.Errorf("smoothingFactor not increasing in dt: alpha(%v) = %v <= %v", dt, a, prev)
		}
		prev = a
	}
}

func TestHeadingForwardIsUnit(t *testing.T) {
	for _, yaw := range []float64{0, 0.5, math.Pi / 2, math.Pi, -2.1, 7} {
		f := headingForward(yaw)
		if !almostEq(f.Len(), 1, eps) {
			t.Errorf("headingForward(%v) has length %v, want 1", yaw, f.Len())
		}
	}
	if f := headingForward(0); !vecAlmostEq(f, Vec3{0, 0, -1}, eps) {
		t.Errorf("headingForward(0) = %v, want (0,0,-1)", f)
	}
}
