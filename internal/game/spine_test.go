package game

import (
	"math"
	"testing"
)

func TestPushHeadJitterOverwritesInPlace(t *testing.T) {
	sp := NewSpine(Vec3{0, GroundY, 0})
	sp.PushHead(Vec3{0.005, GroundY, 0})
	if len(sp.Pts) != 1 {
		t.Fatalf("sub-epsilon movement should overwrite, got %d points", len(sp.Pts))
	}
	if !vecAlmostEq(sp.Head(), Vec3{0.005, GroundY, 0}, eps) {
		t.Errorf("front point not overwritten: %v", sp.Head())
	}

	sp.PushHead(Vec3{1, GroundY, 0})
	if len(sp.Pts) != 2 {
		t.Fatalf("movement past epsilon should prepend, got %d points", len(sp.Pts))
	}
	if !vecAlmostEq(sp.Pts[0], Vec3{1, GroundY, 0}, eps) || !vecAlmostEq(sp.Pts[1], Vec3{0.005, GroundY, 0}, eps) {
		t.Errorf("prepend order wrong: %v", sp.Pts)
	}
}

func TestTrimToLengthExactCut(t *testing.T) {
	sp := &Spine{Pts: []Vec3{
		{0, GroundY, 0},
		{0, GroundY, 1},
		{0, GroundY, 3},
	}}
	sp.TrimToLength(1.5)
	if got := sp.TotalLength(); !almostEq(got, 1.5, eps) {
		t.Errorf("trimmed length = %v, want 1.5", got)
	}
	if !vecAlmostEq(sp.Pts[len(sp.Pts)-1], Vec3{0, GroundY, 1.5}, eps) {
		t.Errorf("tail after trim = %v, want (0,%v,1.5)", sp.Pts[len(sp.Pts)-1], GroundY)
	}
}

func TestTrimToLengthNeverExceedsDesired(t *testing.T) {
	r := NewRand(99)
	sp := NewSpine(Vec3{0, GroundY, 0})
	head := Vec3{0, GroundY, 0}
	yaw := 0.0
	for i := 0; i < 500; i++ {
		yaw += r.RangeF(-0.4, 0.4)
		step := r.RangeF(0, 0.3)
		head = head.Add(headingForward(yaw).Scale(step))
		sp.PushHead(head)
		desired := r.RangeF(0.5, 8)
		sp.TrimToLength(desired)
		if got := sp.TotalLength(); got > desired+1e-7 {
			t.Fatalf("iteration %d: spine length %v exceeds desired %v", i, got, desired)
		}
	}
}

func TestTrimToLengthShortSpineUntouched(t *testing.T) {
	sp := &Spine{Pts: []Vec3{{0, GroundY, 0}, {0, GroundY, 1}}}
	sp.TrimToLength(5)
	if len(sp.Pts) != 2 || !almostEq(sp.TotalLength(), 1, eps) {
		t.Errorf("spine shorter than desired must be left alone: %v", sp.Pts)
	}
}

func TestSampleAtDistance(t *testing.T) {
	sp := &Spine{Pts: []Vec3{
		{0, GroundY, 0},
		{0, GroundY, 2},
		{2, GroundY, 2},
	}}
	tests := []struct {
		d    float64
		want Vec3
	}{
		{0, Vec3{0, GroundY, 0}},
		{-1, Vec3{0, GroundY, 0}},
		{1, Vec3{0, GroundY, 1}},
		{2, Vec3{0, GroundY, 2}},
		{3, Vec3{1, GroundY, 2}},
		{100, Vec3{2, GroundY, 2}}, // past the tail: clamp
	}
	for _, tt := range tests {
		if got := sp.SampleAtDistance(tt.d); !vecAlmostEq(got, tt.want, eps) {
			t.Errorf("SampleAtDistance(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestZeroLengthSegmentsSkippedIdentically(t *testing.T) {
	dup := Vec3{0, GroundY, 1}
	sp := &Spine{Pts: []Vec3{
		{0, GroundY, 0},
		dup,
		dup, // zero-length segment
		{0, GroundY, 3},
	}}
	if got := sp.SampleAtDistance(2); !vecAlmostEq(got, Vec3{0, GroundY, 2}, eps) {
		t.Errorf("sample across zero-length segment = %v, want (0,%v,2)", got, GroundY)
	}
	sp.TrimToLength(2)
	if got := sp.TotalLength(); !almostEq(got, 2, eps) {
		t.Errorf("trim across zero-length segment left length %v, want 2", got)
	}
}

func TestTranslatePreservesShape(t *testing.T) {
	sp := &Spine{Pts: []Vec3{
		{0, GroundY, 0},
		{1, GroundY, 0},
		{1, GroundY, 2},
		{-1, GroundY, 2.5},
	}}
	var before []float64
	for i := 1; i < len(sp.Pts); i++ {
		before = append(before, sp.Pts[i-1].Dist(sp.Pts[i]))
	}
	sp.Translate(Vec3{X: -ArenaSize, Z: ArenaSize})
	for i := 1; i < len(sp.Pts); i++ {
		if got := sp.Pts[i-1].Dist(sp.Pts[i]); !almostEq(got, before[i-1], eps) {
			t.Errorf("segment %d length changed by translate: %v -> %v", i, before[i-1], got)
		}
	}
	if math.Abs(sp.Pts[0].X-(-ArenaSize)) > eps {
		t.Errorf("head not translated: %v", sp.Pts[0])
	}
}
