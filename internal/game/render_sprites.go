package game

import "math"

// lerp32 interpolates two float32 channel values by t in [0,1].
func lerp32(a, b, t float32) float32 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

// SnakeSprites packs the head and body segment transforms into point sprite
// data (spriteFloats per sprite), reusing buf. Body hue shifts from bright
// green at the head to a darker tail; the head carries its yaw in the
// rotation slot.
func SnakeSprites(snap *Snapshot, buf []float32) []float32 {
	buf = buf[:0]

	total := len(snap.Segments)
	for i, seg := range snap.Segments {
		t := float32(0)
		if total > 1 {
			t = float32(i) / float32(total-1)
		}
		red := lerp32(0.25, 0.10, t)
		green := lerp32(0.90, 0.45, t)
		blue := lerp32(0.35, 0.18, t)
		buf = append(buf,
			float32(seg.Pos.X), float32(seg.Pos.Y), float32(seg.Pos.Z),
			float32(BodyRadius*2*seg.Scale),
			red, green, blue, 1.0, 0,
		)
	}

	// Head last so it draws over the first body segment.
	h := snap.Head
	buf = append(buf,
		float32(h.Pos.X), float32(h.Pos.Y), float32(h.Pos.Z),
		float32(HeadRadius*2*h.Scale),
		0.85, 0.95, 0.40, 1.0, float32(h.Yaw),
	)
	return buf
}

// FoodSprites packs the food sprite plus its pulsing glow halo. now drives
// the pulse phase.
func FoodSprites(snap *Snapshot, now float64, spriteBuf, glowBuf []float32) ([]float32, []float32) {
	spriteBuf = spriteBuf[:0]
	glowBuf = glowBuf[:0]

	f := snap.Food
	pulse := float32(1.0 + 0.15*math.Sin(now*5.0))

	spriteBuf = append(spriteBuf,
		float32(f.Pos.X), float32(f.Pos.Y), float32(f.Pos.Z),
		float32(FoodRadius*2*f.Scale)*pulse,
		1.0, 0.35, 0.15, 1.0, 0,
	)
	// Warm halo, pre-multiplied for additive blending.
	glowBuf = append(glowBuf,
		float32(f.Pos.X), float32(f.Pos.Y), float32(f.Pos.Z),
		float32(FoodRadius*7)*pulse,
		0.55, 0.20, 0.08, 1.0, 0,
	)
	return spriteBuf, glowBuf
}
