package game

// Arena. A fixed square domain centered at the origin; under wrap mode the
// playfield is a torus, otherwise the edges kill.
const (
	ArenaSize = 40.0
	HalfArena = ArenaSize / 2

	// Distance inside the wall at which a bounded-mode run ends.
	WallKillMargin = 0.6

	// Food never spawns closer than this to a wall.
	FoodMargin = 1.5
)

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
)

// Snake motion.
const (
	BaseSpeed  = 6.0  // units/s at neutral speed axis
	SpeedRange = 0.35 // +-35% from the speed axis
	TurnSpeed  = 2.8  // rad/s at sensitivity 1.0

	BaseLength     = 3.0 // body arc length at score 0
	LengthPerScore = 0.8 // growth per food eaten

	GroundY = 0.5 // fixed head height above the floor
)

// Body sampling and collision radii.
const (
	SegmentSpacing = 0.45 // arc-length gap between rendered segments
	MaxSegments    = 160  // instanced-draw cap

	HeadRadius = 0.4
	FoodRadius = 0.32
	BodyRadius = 0.32

	// Spine samples 0..NeckSamples-1 are the snake's own neck and are
	// exempt from self-collision.
	NeckSamples = 19

	// Head movement below this distance overwrites the front spine point
	// instead of pushing a new one.
	PushEpsilon = 0.01
)

// Frame driver.
const (
	// A slow or backgrounded frame is clamped to this step so the snake
	// can't tunnel through walls or its own body.
	MaxDt = 0.2
)

// Camera mode tuning. The two modes share all code and differ only in
// these four constants.
const (
	ChaseFollowDistance = 6.5
	ChaseHeight         = 3.4
	ChaseLookAhead      = 2.0
	ChaseResponsiveness = 5.5

	HeadFollowDistance = 0.18
	HeadHeight         = 0.55
	HeadLookAhead      = 4.0
	HeadResponsiveness = 14.0
)

// Steering sensitivity bounds (user setting).
const (
	MinSteerSensitivity = 0.6
	MaxSteerSensitivity = 1.8
)

// Particles.
const (
	MaxParticles = 512
)
