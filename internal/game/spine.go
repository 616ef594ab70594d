package game

// Spine is the ordered polyline of recent head positions, newest first.
// It is the source of truth for the snake's body shape: segments are
// resampled from it by arc length, and trimming keeps its cumulative
// length equal to the desired body length.
type Spine struct {
	Pts []Vec3
}

// segment pairs closer than this count as zero length and are skipped by
// both arc-length walks, so trim and sample always tie-break identically.
const zeroSegment = 1e-9

func NewSpine(head Vec3) *Spine {
	return &Spine{Pts: []Vec3{head}}
}

// Head returns the newest point.
func (sp *Spine) Head() Vec3 {
	return sp.Pts[0]
}

// PushHead integrates a new head position. Movement below PushEpsilon
// overwrites the front point in place instead of prepending, so sub-frame
// jitter can't flood the polyline with degenerate segments.
func (sp *Spine) PushHead(p Vec3) {
	if len(sp.Pts) == 0 {
		sp.Pts = append(sp.Pts, p)
		return
	}
	if sp.Pts[0].Dist(p) <= PushEpsilon {
		sp.Pts[0] = p
		return
	}
	sp.Pts = append(sp.Pts, Vec3{})
	copy(sp.Pts[1:], sp.Pts[0:])
	sp.Pts[0] = p
}

// TotalLength is the cumulative Euclidean length of the polyline.
func (sp *Spine) TotalLength() float64 {
	total := 0.0
	for i := 1; i < len(sp.Pts); i++ {
		total += sp.Pts[i-1].Dist(sp.Pts[i])
	}
	return total
}

// TrimToLength walks from the head consuming desired arc length and cuts
// the polyline at the exact point where it is used up: the overshooting
// sample is replaced by the interpolated cut point and everything beyond
// it is discarded. A spine shorter than desired is left untouched.
func (sp *Spine) TrimToLength(desired float64) {
	if desired < 0 {
		desired = 0
	}
	remaining := desired
	for i := 1; i < len(sp.Pts); i++ {
		d := sp.Pts[i-1].Dist(sp.Pts[i])
		if d < zeroSegment {
			continue
		}
		if d < remaining {
			remaining -= d
			continue
		}
		t := remaining / d
		sp.Pts[i] = sp.Pts[i-1].Lerp(sp.Pts[i], t)
		sp.Pts = sp.Pts[:i+1]
		return
	}
}

// SampleAtDistance returns the point at the given arc-length offset from
// the head, using the same walk as TrimToLength. Offsets past the tail
// clamp to the tail point.
func (sp *Spine) SampleAtDistance(dist float64) Vec3 {
	if dist <= 0 || len(sp.Pts) == 1 {
		return sp.Pts[0]
	}
	remaining := dist
	for i := 1; i < len(sp.Pts); i++ {
		d := sp.Pts[i-1].Dist(sp.Pts[i])
		if d < zeroSegment {
			continue
		}
		if d < remaining {
			remaining -= d
			continue
		}
		return sp.Pts[i-1].Lerp(sp.Pts[i], remaining/d)
	}
	return sp.Pts[len(sp.Pts)-1]
}

// Translate shifts every point by the same delta. Used when the head wraps
// so the visible shape stays continuous in unwrapped space.
func (sp *Spine) Translate(shift Vec3) {
	for i := range sp.Pts {
		sp.Pts[i] = sp.Pts[i].Add(shift)
	}
}
