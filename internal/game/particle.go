package game

import "math"

// Particle is a short-lived feedback spark rendered as a point sprite.
type Particle struct {
	Pos     Vec3
	Vel     Vec3
	Size    float64
	Life    float64
	MaxLife float64
	R, G, B float32
}

// ParticleSystem holds a fixed-capacity pool of feedback particles. When
// full, new spawns overwrite the oldest slot.
type ParticleSystem struct {
	P    []Particle
	next int
	rng  *Rand
}

func NewParticleSystem(capacity int, seed uint64) *ParticleSystem {
	return &ParticleSystem{
		P:   make([]Particle, 0, capacity),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < cap(ps.P) {
		ps.P = append(ps.P, p)
		return
	}
	ps.P[ps.next] = p
	ps.next = (ps.next + 1) % len(ps.P)
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.next = 0
}

// Update integrates particle motion with light gravity and expires dead ones.
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.P[:0]
	for i := range ps.P {
		p := ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}
		p.Vel.Y -= 9.0 * dt
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		if p.Pos.Y < 0 {
			p.Pos.Y = 0
			p.Vel.Y = -p.Vel.Y * 0.4
		}
		alive = append(alive, p)
	}
	ps.P = alive
	ps.next = 0
}

// SpawnBurst emits an outward spray at pos tinted r/g/b.
func (ps *ParticleSystem) SpawnBurst(pos Vec3, count int, r, g, b float32) {
	for i := 0; i < count; i++ {
		ang := ps.rng.RangeF(0, 2*math.Pi)
		spd := ps.rng.RangeF(1.5, 5.0)
		up := ps.rng.RangeF(1.0, 4.0)
		ps.Add(Particle{
			Pos:     pos,
			Vel:     Vec3{X: math.Cos(ang) * spd, Y: up, Z: math.Sin(ang) * spd},
			Size:    ps.rng.RangeF(0.06, 0.16),
			MaxLife: ps.rng.RangeF(0.4, 0.9),
			R:       r, G: g, B: b,
		})
	}
}

// WireParticles subscribes pickup and death bursts to simulation events.
func WireParticles(bus *EventBus, ps *ParticleSystem) {
	bus.Subscribe(EventFoodEaten, func(e Event) {
		ps.SpawnBurst(e.Pos, 24, 1.0, 0.85, 0.3)
	})
	bus.Subscribe(EventDeath, func(e Event) {
		ps.SpawnBurst(e.Pos, 60, 1.0, 0.25, 0.15)
	})
}

// RenderData packs alive particles into sprite attributes (9 floats each:
// x, y, z, size, r, g, b, a, rotation), reusing buf.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ps.P {
		p := &ps.P[i]
		fade := float32(1.0 - p.Life/p.MaxLife)
		buf = append(buf,
			float32(p.Pos.X), float32(p.Pos.Y), float32(p.Pos.Z),
			float32(p.Size),
			p.R, p.G, p.B, fade, 0,
		)
	}
	return buf
}
