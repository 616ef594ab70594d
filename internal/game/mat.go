package game

import "math"

// Mat4 is a column-major 4x4 matrix, as OpenGL expects it.
type Mat4 [16]float32

// perspectiveMat builds a right-handed perspective projection.
func perspectiveMat(fovyRad, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovyRad/2)
	nf := 1.0 / (near - far)
	var m Mat4
	m[0] = float32(f / aspect)
	m[5] = float32(f)
	m[10] = float32((far + near) * nf)
	m[11] = -1
	m[14] = float32(2 * far * near * nf)
	return m
}

// lookAtMat builds a view matrix from eye toward center with the given up.
func lookAtMat(eye, center, up Vec3) Mat4 {
	fwd := center.Sub(eye)
	fl := fwd.Len()
	if fl < 1e-9 {
		fwd = Vec3{Z: -1}
	} else {
		fwd = fwd.Scale(1 / fl)
	}

	// side = fwd x up, renormalized.
	side := Vec3{
		X: fwd.Y*up.Z - fwd.Z*up.Y,
		Y: fwd.Z*up.X - fwd.X*up.Z,
		Z: fwd.X*up.Y - fwd.Y*up.X,
	}
	sl := side.Len()
	if sl < 1e-9 {
		side = Vec3{X: 1}
	} else {
		side = side.Scale(1 / sl)
	}

	// u = side x fwd.
	u := Vec3{
		X: side.Y*fwd.Z - side.Z*fwd.Y,
		Y: side.Z*fwd.X - side.X*fwd.Z,
		Z: side.X*fwd.Y - side.Y*fwd.X,
	}

	var m Mat4
	m[0] = float32(side.X)
	m[4] = float32(side.Y)
	m[8] = float32(side.Z)
	m[1] = float32(u.X)
	m[5] = float32(u.Y)
	m[9] = float32(u.Z)
	m[2] = float32(-fwd.X)
	m[6] = float32(-fwd.Y)
	m[10] = float32(-fwd.Z)
	m[15] = 1

	m[12] = float32(-(side.X*eye.X + side.Y*eye.Y + side.Z*eye.Z))
	m[13] = float32(-(u.X*eye.X + u.Y*eye.Y + u.Z*eye.Z))
	m[14] = float32(fwd.X*eye.X + fwd.Y*eye.Y + fwd.Z*eye.Z)
	return m
}
