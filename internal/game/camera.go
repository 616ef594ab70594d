package game

// CameraRig holds the smoothed camera pose. Unlike every other position in
// the game it lives in unwrapped (continuous) coordinates: it is translated
// together with the spine when the head wraps, and otherwise only ever moves
// by critically damped interpolation. It persists across gameplay resets.
type CameraRig struct {
	Pos    Vec3
	Target Vec3
}

func DefaultCameraRig() CameraRig {
	return CameraRig{
		Pos:    Vec3{X: 0, Y: ChaseHeight, Z: ChaseFollowDistance},
		Target: Vec3{X: 0, Y: GroundY, Z: 0},
	}
}

// cameraParams returns the tuning constants for a mode. The two modes share
// every line of camera code and differ only here.
func cameraParams(mode CameraMode) (follow, height, lookAhead, responsiveness float64) {
	if mode == CameraHead {
		return HeadFollowDistance, HeadHeight, HeadLookAhead, HeadResponsiveness
	}
	return ChaseFollowDistance, ChaseHeight, ChaseLookAhead, ChaseResponsiveness
}

// Translate shifts the rig together with a head wrap.
func (r *CameraRig) Translate(shift Vec3) {
	r.Pos = r.Pos.Add(shift)
	r.Target = r.Target.Add(shift)
}

// Rebase re-expresses the rig near a freshly spawned head by whole arena
// widths, preserving the smoothed offsets. Without this the unwrapped
// coordinates would drift one arena width per wrap, forever, across runs.
func (r *CameraRig) Rebase(head Vec3) {
	folded := Vec3{X: wrapAxis(r.Target.X), Y: r.Target.Y, Z: wrapAxis(r.Target.Z)}
	shift := nearestUnwrap(folded, head).Sub(r.Target)
	r.Translate(shift)
}

// Update damps the rig toward the pose implied by the current head and yaw.
// The desired pose is computed from the wrapped head, then re-expressed in
// the rig's own unwrapped space so crossing an arena edge never pops.
func (r *CameraRig) Update(dt float64, mode CameraMode, head Vec3, yaw float64) {
	follow, height, lookAhead, responsiveness := cameraParams(mode)
	fwd := headingForward(yaw)

	desiredPos := head.Sub(fwd.Scale(follow)).Add(Vec3{Y: height})
	desiredTarget := head.Add(fwd.Scale(lookAhead))

	desiredPos = nearestUnwrap(desiredPos, r.Pos)
	desiredTarget = nearestUnwrap(desiredTarget, r.Target)

	alpha := smoothingFactor(dt, responsiveness)
	r.Pos = r.Pos.Lerp(desiredPos, alpha)
	r.Target = r.Target.Lerp(desiredTarget, alpha)
}
