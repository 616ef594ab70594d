package game

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Joystick axes below this magnitude read as zero.
const joystickDeadzone = 0.15

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// ReadControls samples the digital (keyboard) and analog (joystick) control
// sources into one snapshot. The latest state wins; nothing is queued.
func ReadControls(window *glfw.Window) ControlSnapshot {
	var c ControlSnapshot

	c.SteerLeft = keyDown(window, glfw.KeyLeft) || keyDown(window, glfw.KeyA)
	c.SteerRight = keyDown(window, glfw.KeyRight) || keyDown(window, glfw.KeyD)
	c.Faster = keyDown(window, glfw.KeyUp) || keyDown(window, glfw.KeyW)
	c.Slower = keyDown(window, glfw.KeyDown) || keyDown(window, glfw.KeyS)

	if glfw.Joystick1.Present() {
		axes := glfw.Joystick1.GetAxes()
		if len(axes) >= 1 {
			c.TouchSteerAxis = applyDeadzone(float64(axes[0]))
		}
		if len(axes) >= 2 {
			// Stick pushed up reads negative, which means faster.
			c.TouchSpeedAxis = applyDeadzone(float64(axes[1]))
		}
	}
	return c
}

func keyDown(window *glfw.Window, key glfw.Key) bool {
	return window.GetKey(key) == glfw.Press
}

// applyDeadzone zeroes small axis values and rescales the rest so the
// usable range still spans [-1,1].
func applyDeadzone(v float64) float64 {
	m := math.Abs(v)
	if m < joystickDeadzone {
		return 0
	}
	scaled := (m - joystickDeadzone) / (1 - joystickDeadzone)
	return clampF(math.Copysign(scaled, v), -1, 1)
}
