package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Quad vertex shader: a 0..1 unit quad stretched over an arbitrary world
// rectangle given by origin and two edge vectors. Used for the arena floor
// and the walls.
const quadVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

uniform mat4 uView;
uniform mat4 uProj;
uniform vec3 uOrigin;
uniform vec3 uEdgeU;
uniform vec3 uEdgeV;

out vec2 vUV;

void main() {
    vUV = aPos;
    vec3 worldPos = uOrigin + aPos.x * uEdgeU + aPos.y * uEdgeV;
    gl_Position = uProj * uView * vec4(worldPos, 1.0);
}
` + "\x00"

// Quad fragment shader: base color with optional grid lines in UV space.
const quadFragSrc = `#version 410 core

uniform vec3 uColor;
uniform vec3 uLineColor;
uniform float uGridCells; // 0 = solid fill, no grid
uniform float uAlpha;

in vec2 vUV;
out vec4 FragColor;

void main() {
    vec3 col = uColor;
    if (uGridCells > 0.5) {
        vec2 cell = fract(vUV * uGridCells);
        vec2 dist = min(cell, 1.0 - cell);
        float line = 1.0 - smoothstep(0.0, 0.04, min(dist.x, dist.y));
        col = mix(uColor, uLineColor, line * 0.65);
    }
    FragColor = vec4(col, uAlpha);
}
` + "\x00"

// Sprite vertex shader: 3D point sprites with perspective-scaled size.
// Per-vertex: world pos, size (world units), color, rotation.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec3 aWorldPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aRotation;

uniform mat4 uView;
uniform mat4 uProj;
uniform float uPointScale; // proj[1][1] * viewportH / 2

out vec4 vColor;
out float vRotation;

void main() {
    vec4 viewPos = uView * vec4(aWorldPos, 1.0);
    gl_Position = uProj * viewPos;
    float ps = aSize * uPointScale / max(0.1, -viewPos.z);
    gl_PointSize = max(1.0, ps);
    vColor = aColor;
    vRotation = aRotation;
}
` + "\x00"

// Sprite fragment shader: round sprite with a fake spherical shade, so
// segments read as balls without any mesh.
const spriteFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    vec2 d = gl_PointCoord - vec2(0.5);
    float dist = length(d) * 2.0;
    if (dist > 1.0) {
        discard;
    }
    float shade = 1.0 - dist * dist * 0.55;
    // Specular-ish highlight offset toward the upper left.
    float hl = clamp(1.0 - length(d + vec2(0.18, 0.18)) * 2.4, 0.0, 1.0);
    vec3 col = vColor.rgb * shade + vec3(hl * hl * 0.35);
    FragColor = vec4(col, vColor.a);
}
` + "\x00"

// Glow fragment shader: additive radial falloff for light sprites.
// vColor.rgb should be pre-multiplied by desired brightness.
const glowFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0; // 0=center, 1=edge
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    falloff = falloff * falloff; // quadratic: natural light falloff
    FragColor = vec4(vColor.rgb * falloff, 1.0);
}
` + "\x00"

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %v", log)
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, err
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link program: %v", log)
	}
	return prog, nil
}
