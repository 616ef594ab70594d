package game

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	cameraFovY = 60.0 * math.Pi / 180.0
	cameraNear = 0.1
	cameraFar  = 200.0

	// Sprite stride: x, y, z, size, r, g, b, a, rotation.
	spriteFloats = 9

	maxSpriteRender = 4096
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return gl.PtrOffset(n) }

type Renderer struct {
	// Quad program (floor, walls).
	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32
	qUView   int32
	qUProj   int32
	qUOrigin int32
	qUEdgeU  int32
	qUEdgeV  int32
	qUColor  int32
	qULine   int32
	qUCells  int32
	qUAlpha  int32

	// Sprite program (snake, food, particles).
	spriteProg    uint32
	spriteVAO     uint32
	spriteVBO     uint32
	spUView       int32
	spUProj       int32
	spUPointScale int32

	// Glow program, shares spriteVAO, additive blend only.
	glowProg      uint32
	glUView       int32
	glUProj       int32
	glUPointScale int32

	view Mat4
	proj Mat4
}

func NewRenderer() (*Renderer, error) {
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(quadProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(quadProg)
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		quadProg:   quadProg,
		spriteProg: spriteProg,
		glowProg:   glowProg,
	}

	// Quad VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.quadVAO = qVAO
	r.quadVBO = qVBO

	gl.UseProgram(quadProg)
	r.qUView = gl.GetUniformLocation(quadProg, gl.Str("uView\x00"))
	r.qUProj = gl.GetUniformLocation(quadProg, gl.Str("uProj\x00"))
	r.qUOrigin = gl.GetUniformLocation(quadProg, gl.Str("uOrigin\x00"))
	r.qUEdgeU = gl.GetUniformLocation(quadProg, gl.Str("uEdgeU\x00"))
	r.qUEdgeV = gl.GetUniformLocation(quadProg, gl.Str("uEdgeV\x00"))
	r.qUColor = gl.GetUniformLocation(quadProg, gl.Str("uColor\x00"))
	r.qULine = gl.GetUniformLocation(quadProg, gl.Str("uLineColor\x00"))
	r.qUCells = gl.GetUniformLocation(quadProg, gl.Str("uGridCells\x00"))
	r.qUAlpha = gl.GetUniformLocation(quadProg, gl.Str("uAlpha\x00"))

	// Sprite VAO/VBO: streaming buffer for point sprites.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(spriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(3*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(8*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spUView = gl.GetUniformLocation(spriteProg, gl.Str("uView\x00"))
	r.spUProj = gl.GetUniformLocation(spriteProg, gl.Str("uProj\x00"))
	r.spUPointScale = gl.GetUniformLocation(spriteProg, gl.Str("uPointScale\x00"))

	gl.UseProgram(glowProg)
	r.glUView = gl.GetUniformLocation(glowProg, gl.Str("uView\x00"))
	r.glUProj = gl.GetUniformLocation(glowProg, gl.Str("uProj\x00"))
	r.glUPointScale = gl.GetUniformLocation(glowProg, gl.Str("uPointScale\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.quadProg, r.spriteProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// BeginFrame computes view/projection from the camera rig pose and uploads
// them to every program.
func (r *Renderer) BeginFrame(camPos, camTarget Vec3, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float64(fbW) / float64(fbH)
	r.proj = perspectiveMat(cameraFovY, aspect, cameraNear, cameraFar)
	r.view = lookAtMat(camPos, camTarget, Vec3{Y: 1})

	pointScale := r.proj[5] * float32(fbH) * 0.5

	gl.UseProgram(r.quadProg)
	gl.UniformMatrix4fv(r.qUView, 1, false, &r.view[0])
	gl.UniformMatrix4fv(r.qUProj, 1, false, &r.proj[0])

	gl.UseProgram(r.spriteProg)
	gl.UniformMatrix4fv(r.spUView, 1, false, &r.view[0])
	gl.UniformMatrix4fv(r.spUProj, 1, false, &r.proj[0])
	gl.Uniform1f(r.spUPointScale, pointScale)

	gl.UseProgram(r.glowProg)
	gl.UniformMatrix4fv(r.glUView, 1, false, &r.view[0])
	gl.UniformMatrix4fv(r.glUProj, 1, false, &r.proj[0])
	gl.Uniform1f(r.glUPointScale, pointScale)
}

// drawQuad renders one world rectangle with the quad program.
func (r *Renderer) drawQuad(origin, edgeU, edgeV Vec3, cr, cg, cb, lr, lg, lb, cells, alpha float32) {
	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.Uniform3f(r.qUOrigin, float32(origin.X), float32(origin.Y), float32(origin.Z))
	gl.Uniform3f(r.qUEdgeU, float32(edgeU.X), float32(edgeU.Y), float32(edgeU.Z))
	gl.Uniform3f(r.qUEdgeV, float32(edgeV.X), float32(edgeV.Y), float32(edgeV.Z))
	gl.Uniform3f(r.qUColor, cr, cg, cb)
	gl.Uniform3f(r.qULine, lr, lg, lb)
	gl.Uniform1f(r.qUCells, cells)
	gl.Uniform1f(r.qUAlpha, alpha)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawGround renders the arena floor with a grid matching the wrap period.
func (r *Renderer) DrawGround() {
	r.drawQuad(
		Vec3{X: -HalfArena, Y: 0, Z: -HalfArena},
		Vec3{X: ArenaSize},
		Vec3{Z: ArenaSize},
		0.10, 0.12, 0.16,
		0.22, 0.30, 0.38,
		20, 1.0,
	)
}

// DrawWalls renders the four kill walls. Only called when wrap is disabled.
func (r *Renderer) DrawWalls() {
	const wallHeight = 2.0
	h := Vec3{Y: wallHeight}
	corners := [4]Vec3{
		{X: -HalfArena, Z: -HalfArena},
		{X: HalfArena, Z: -HalfArena},
		{X: HalfArena, Z: HalfArena},
		{X: -HalfArena, Z: HalfArena},
	}
	for i := 0; i < 4; i++ {
		a := corners[i]
		b := corners[(i+1)%4]
		r.drawQuad(a, b.Sub(a), h, 0.55, 0.16, 0.14, 0.80, 0.30, 0.24, 8, 0.9)
	}
}

// DrawSprites streams point sprite data (spriteFloats per sprite) and draws
// it with the shaded sphere program.
func (r *Renderer) DrawSprites(buf []float32) {
	r.drawSpriteBuf(buf, r.spriteProg, false)
}

// DrawGlowSprites draws additive radial glows; depth writes are disabled so
// glow never occludes geometry.
func (r *Renderer) DrawGlowSprites(buf []float32) {
	r.drawSpriteBuf(buf, r.glowProg, true)
}

func (r *Renderer) drawSpriteBuf(buf []float32, prog uint32, additive bool) {
	n := len(buf) / spriteFloats
	if n == 0 {
		return
	}
	if n > maxSpriteRender {
		n = maxSpriteRender
		buf = buf[:n*spriteFloats]
	}

	gl.UseProgram(prog)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(&buf[0]))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
		gl.DepthMask(false)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	gl.DrawArrays(gl.POINTS, 0, int32(n))
	if additive {
		gl.DepthMask(true)
	}
	gl.Disable(gl.BLEND)
}
