package game

import "math"

// Vec3 is a 3D point/vector in world units. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Lerp interpolates from v toward o by t in [0,1].
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// headingForward converts a yaw angle into the unit forward vector.
// Yaw 0 faces -Z; positive yaw veers toward +X.
func headingForward(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Y: 0, Z: -math.Cos(yaw)}
}

// wrapAxis folds any real coordinate into [-ArenaSize/2, ArenaSize/2).
// The double modulo is correct for negative inputs.
func wrapAxis(v float64) float64 {
	return math.Mod(math.Mod(v+HalfArena, ArenaSize)+ArenaSize, ArenaSize) - HalfArena
}

// wrapDelta folds a coordinate difference into the shortest signed
// representative in (-ArenaSize/2, ArenaSize/2].
func wrapDelta(d float64) float64 {
	w := wrapAxis(d)
	if w == -HalfArena {
		return HalfArena
	}
	return w
}

// torusDistance is the shortest separation between two points on the
// wrapped arena. Y does not wrap.
func torusDistance(a, b Vec3) float64 {
	dx := wrapDelta(a.X - b.X)
	dy := a.Y - b.Y
	dz := wrapDelta(a.Z - b.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// nearestUnwrap translates a canonically wrapped position by whole arena
// widths per axis so it lands as close as possible to reference. The camera
// tracks continuous coordinates even though gameplay state is periodically
// folded; this is how the two spaces meet.
func nearestUnwrap(wrapped, reference Vec3) Vec3 {
	return Vec3{
		X: reference.X + wrapDelta(wrapped.X-reference.X),
		Y: wrapped.Y,
		Z: reference.Z + wrapDelta(wrapped.Z-reference.Z),
	}
}

// smoothingFactor returns a frame-rate-independent interpolation alpha in
// [0,1) for critically damped chasing: 1 - e^(-responsiveness*dt).
func smoothingFactor(dt, responsiveness float64) float64 {
	return 1 - math.Exp(-responsiveness*dt)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// splitmix64 is a fast, high-quality 64-bit mixer used for seed derivation.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}
