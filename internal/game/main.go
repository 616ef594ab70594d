package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"torusnake/internal/settings"
)

// Options carries the CLI-level overrides into the desktop loop.
type Options struct {
	SettingsPath string
	Seed         uint64 // 0 = seed from env or clock

	// WrapSet applies Wrap over the persisted setting.
	WrapSet bool
	Wrap    bool
}

// RunDesktop owns the window, the renderer, and the per-frame loop:
// clamped delta time, input snapshot, simulation step, snapshot projection,
// draw, swap. It returns when the window closes; all GL and GLFW resources
// are released on the way out.
func RunDesktop(opts Options) {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from flag, environment, or clock.
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		if s := os.Getenv("TORUSNAKE_SEED"); s != "" {
			if v, err := strconv.ParseUint(s, 10, 64); err == nil {
				seed = v
			}
		}
	}

	// Persisted settings; failures degrade to defaults and stay invisible.
	settingsPath := opts.SettingsPath
	if settingsPath == "" {
		settingsPath = settings.DefaultPath()
	}
	sett := settings.Load(settingsPath)
	if opts.WrapSet {
		sett.Wrap = opts.Wrap
		_ = settings.Save(settingsPath, sett)
	}
	SetFeedbackEnabled(sett.Feedback)

	// Feedback wiring.
	bus := NewEventBus()
	WireFeedback(bus)
	particles := NewParticleSystem(MaxParticles, splitmix64(seed^0xFEED))
	WireParticles(bus, particles)

	g := NewGame(seed, bus)
	g.SetWrapEnabled(sett.Wrap)
	g.SetSteerSensitivity(sett.SteerSensitivity)
	g.BestScore = sett.BestScore

	// Best score persists monotonically; a failed write costs nothing.
	bus.Subscribe(EventDeath, func(e Event) {
		if sett.RecordBest(e.Data) {
			_ = settings.Save(settingsPath, sett)
		}
	})

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	input := NewInput()

	// GL state.
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.04, 0.05, 0.08, 1.0)

	// Reusable render buffers.
	var snap Snapshot
	var bodyBuf, foodBuf, glowBuf, particleBuf []float32

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxDt {
			dt = MaxDt
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// Commands. Safe in any state; the simulation decides what applies.
		if input.JustPressed(window, glfw.KeyP) || input.JustPressed(window, glfw.KeySpace) {
			g.TogglePause()
		}
		if input.JustPressed(window, glfw.KeyV) {
			g.ToggleCameraMode()
		}
		if input.JustPressed(window, glfw.KeyR) || input.JustPressed(window, glfw.KeyEnter) {
			g.Reset()
		}
		if input.JustPressed(window, glfw.KeyT) {
			sett.Wrap = !sett.Wrap
			g.SetWrapEnabled(sett.Wrap)
			_ = settings.Save(settingsPath, sett)
		}

		g.Step(dt, ReadControls(window))
		particles.Update(dt)

		BuildSnapshot(g, dt, &snap)

		rend.BeginFrame(snap.CameraPos, snap.CameraTarget, fbW, fbH)
		rend.DrawGround()
		if snap.WallsVisible {
			rend.DrawWalls()
		}

		bodyBuf = SnakeSprites(&snap, bodyBuf)
		rend.DrawSprites(bodyBuf)

		foodBuf, glowBuf = FoodSprites(&snap, now, foodBuf, glowBuf)
		rend.DrawSprites(foodBuf)
		rend.DrawGlowSprites(glowBuf)

		particleBuf = particles.RenderData(particleBuf)
		rend.DrawSprites(particleBuf)

		window.SwapBuffers()
	}
}
