package game

// Transform is one renderable instance: a wrapped world position, a uniform
// scale, and a yaw (only meaningful for the head).
type Transform struct {
	Pos   Vec3
	Scale float64
	Yaw   float64
}

// Snapshot is the read-only per-frame projection of the simulation handed to
// the presentation layer. The simulation state itself is never shared.
type Snapshot struct {
	Score     int
	BestScore int
	Paused    bool
	GameOver  bool

	WallsVisible bool
	CameraMode   CameraMode

	Head     Transform
	Food     Transform
	Segments []Transform

	CameraPos    Vec3
	CameraTarget Vec3
}

// Body taper: segment scale shrinks uniformly head to tail.
const (
	segmentScaleHead = 1.1
	segmentScaleTail = 0.75
)

// In first-person mode the head would fill the screen; shrink it to
// near-invisible instead of special-casing the draw call away.
const headScaleFirstPerson = 0.05

// BuildSnapshot advances the camera rig by dt and projects the current game
// state into snap. The Segments slice is reused across frames.
func BuildSnapshot(g *Game, dt float64, snap *Snapshot) {
	g.Rig.Update(dt, g.CameraMode, g.Head, g.Yaw)

	snap.Score = g.Score
	snap.BestScore = g.BestScore
	snap.Paused = g.Paused
	snap.GameOver = g.GameOver
	snap.WallsVisible = g.WallsVisible()
	snap.CameraMode = g.CameraMode

	headScale := 1.0
	if g.CameraMode == CameraHead {
		headScale = headScaleFirstPerson
	}
	snap.Head = Transform{Pos: g.Head, Scale: headScale, Yaw: g.Yaw}
	snap.Food = Transform{Pos: g.Food, Scale: 1.0}

	count := int(g.DesiredLength()/SegmentSpacing) + 1
	if count > MaxSegments {
		count = MaxSegments
	}
	snap.Segments = snap.Segments[:0]
	for i := 0; i < count; i++ {
		p := g.Spine.SampleAtDistance(float64(i) * SegmentSpacing)
		t := 0.0
		if count > 1 {
			t = float64(i) / float64(count-1)
		}
		scale := segmentScaleHead + (segmentScaleTail-segmentScaleHead)*t
		snap.Segments = append(snap.Segments, Transform{
			Pos:   g.wrapForRender(p),
			Scale: scale,
		})
	}

	snap.CameraPos = g.Rig.Pos
	snap.CameraTarget = g.Rig.Target
}

// wrapForRender folds a position into the canonical arena box under wrap
// mode. Spine tail points can sit outside it right after a wrap shift; the
// renderer must see them on their proper side of the seam.
func (g *Game) wrapForRender(p Vec3) Vec3 {
	if !g.WrapEnabled {
		return p
	}
	return Vec3{X: wrapAxis(p.X), Y: p.Y, Z: wrapAxis(p.Z)}
}
