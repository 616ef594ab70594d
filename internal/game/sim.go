package game

import "math"

type CameraMode int

const (
	CameraChase CameraMode = iota
	CameraHead
)

// ControlSnapshot is the merged per-frame control state. Digital keys and
// analog joystick axes are combined by Axes so the simulation never knows
// which source produced a value.
type ControlSnapshot struct {
	SteerLeft  bool
	SteerRight bool
	Faster     bool
	Slower     bool

	TouchSteerAxis float64 // [-1,1], + steers right
	TouchSpeedAxis float64 // [-1,1], - is faster (stick pushed up)
}

// Axes merges the digital and analog sources into one clamped axis pair.
func (c ControlSnapshot) Axes() (steer, speed float64) {
	if c.SteerRight {
		steer++
	}
	if c.SteerLeft {
		steer--
	}
	steer = clampF(steer+c.TouchSteerAxis, -1, 1)

	if c.Slower {
		speed++
	}
	if c.Faster {
		speed--
	}
	speed = clampF(speed+c.TouchSpeedAxis, -1, 1)
	return steer, speed
}

// Game is the authoritative simulation state. It is owned by the frame
// driver; the presentation layer only ever sees per-frame Snapshot copies.
type Game struct {
	WrapEnabled      bool
	SteerSensitivity float64

	Yaw   float64
	Head  Vec3
	Spine *Spine
	Food  Vec3

	Score     int
	BestScore int

	Paused   bool
	GameOver bool

	CameraMode CameraMode

	// Rig survives Reset so the camera does not snap on respawn.
	Rig CameraRig

	bus *EventBus
	rng *Rand
}

// NewGame creates a fresh session. The seed drives food placement only.
func NewGame(seed uint64, bus *EventBus) *Game {
	g := &Game{
		WrapEnabled:      true,
		SteerSensitivity: 1.0,
		CameraMode:       CameraChase,
		bus:              bus,
		rng:              NewRand(splitmix64(seed)),
	}
	g.Rig = DefaultCameraRig()
	g.initRun()
	return g
}

// DesiredLength is the target body arc length at the current score.
func (g *Game) DesiredLength() float64 {
	return BaseLength + float64(g.Score)*LengthPerScore
}

// initRun replaces all per-run mutable state. The camera rig keeps its pose
// apart from a re-baseline of its unwrapped coordinates, so a long
// wrap-heavy session can't drift the rig arbitrarily far from origin.
func (g *Game) initRun() {
	g.Score = 0
	g.Yaw = 0
	g.Head = Vec3{X: 0, Y: GroundY, Z: 0}
	g.Spine = NewSpine(g.Head)
	g.Food = g.randomFoodPos()
	g.Paused = false
	g.GameOver = false
	g.Rig.Rebase(g.Head)
}

// Reset starts a new run. Safe to call at any time.
func (g *Game) Reset() {
	g.initRun()
	g.emit(Event{Type: EventReset})
}

// TogglePause flips the pause flag. Ignored while game over: leaving that
// state requires an explicit Reset, never a resume.
func (g *Game) TogglePause() {
	if g.GameOver {
		return
	}
	g.Paused = !g.Paused
	g.emit(Event{Type: EventPauseToggled})
}

// ToggleCameraMode switches between chase and first-person views.
func (g *Game) ToggleCameraMode() {
	if g.CameraMode == CameraChase {
		g.CameraMode = CameraHead
	} else {
		g.CameraMode = CameraChase
	}
	g.emit(Event{Type: EventCameraToggled})
}

// SetWrapEnabled switches the arena topology at runtime.
func (g *Game) SetWrapEnabled(on bool) {
	g.WrapEnabled = on
}

// SetSteerSensitivity clamps and applies the user steering multiplier.
func (g *Game) SetSteerSensitivity(s float64) {
	g.SteerSensitivity = clampF(s, MinSteerSensitivity, MaxSteerSensitivity)
}

// WallsVisible reports whether the arena walls are lethal (and rendered).
func (g *Game) WallsVisible() bool {
	return !g.WrapEnabled
}

// Step advances the simulation by dt seconds. While paused or game over it
// mutates nothing; the frozen state keeps rendering.
func (g *Game) Step(dt float64, in ControlSnapshot) {
	if g.Paused || g.GameOver {
		return
	}

	steerAxis, speedAxis := in.Axes()

	g.Yaw += steerAxis * TurnSpeed * g.SteerSensitivity * dt
	fwd := headingForward(g.Yaw)
	speed := BaseSpeed * (1 + SpeedRange*clampF(-speedAxis, -1, 1))
	g.Head = g.Head.Add(fwd.Scale(speed * dt))

	if g.WrapEnabled {
		g.applyWrap()
	} else if g.outOfBounds() {
		g.die()
		return
	}

	g.Spine.PushHead(g.Head)
	g.Spine.TrimToLength(g.DesiredLength())

	if g.distance(g.Head, g.Food) < HeadRadius+FoodRadius {
		g.Score++
		if g.Score > g.BestScore {
			g.BestScore = g.Score
		}
		eaten := g.Food
		g.Food = g.randomFoodPos()
		g.emit(Event{Type: EventFoodEaten, Pos: eaten, Data: g.Score})
	}

	if g.selfCollides() {
		g.die()
	}
}

// applyWrap independently folds head x/z into the canonical range. When
// either axis wraps, the spine and camera rig are shifted by the same delta
// so the visible shape and camera stay continuous in unwrapped space.
func (g *Game) applyWrap() {
	wx := wrapAxis(g.Head.X)
	wz := wrapAxis(g.Head.Z)
	shift := Vec3{X: wx - g.Head.X, Z: wz - g.Head.Z}
	if shift.X == 0 && shift.Z == 0 {
		return
	}
	g.Head.X = wx
	g.Head.Z = wz
	g.Spine.Translate(shift)
	g.Rig.Translate(shift)
}

func (g *Game) outOfBounds() bool {
	limit := HalfArena - WallKillMargin
	return math.Abs(g.Head.X) > limit || math.Abs(g.Head.Z) > limit
}

// selfCollides tests the head against every spine point beyond the neck
// exclusion zone, which approximates the snake's own immediate body and
// suppresses false positives during tight turns.
func (g *Game) selfCollides() bool {
	threshold := HeadRadius + BodyRadius
	for i := NeckSamples; i < len(g.Spine.Pts); i++ {
		if g.distance(g.Head, g.Spine.Pts[i]) < threshold {
			return true
		}
	}
	return false
}

// distance is torus-aware under wrap mode and plain Euclidean otherwise.
func (g *Game) distance(a, b Vec3) float64 {
	if g.WrapEnabled {
		return torusDistance(a, b)
	}
	return a.Dist(b)
}

func (g *Game) die() {
	g.GameOver = true
	g.emit(Event{Type: EventDeath, Pos: g.Head, Data: g.Score})
}

func (g *Game) randomFoodPos() Vec3 {
	limit := HalfArena - FoodMargin
	return Vec3{
		X: g.rng.RangeF(-limit, limit),
		Y: GroundY,
		Z: g.rng.RangeF(-limit, limit),
	}
}

func (g *Game) emit(e Event) {
	if g.bus != nil {
		g.bus.Emit(e)
	}
}
