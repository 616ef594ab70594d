package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the feedback pulse patterns.
type SoundKind int

const (
	SoundReset SoundKind = iota
	SoundPause
	SoundCamera
	SoundPickup
	SoundDeath
)

// AudioSystem plays short procedural feedback pulses.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// feedbackEnabled gates all pulses; flipped from the settings value.
var feedbackEnabled int32 = 1

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// SetFeedbackEnabled toggles feedback pulses at runtime.
func SetFeedbackEnabled(on bool) {
	var v int32
	if on {
		v = 1
	}
	atomic.StoreInt32(&feedbackEnabled, v)
}

// PlaySound plays a feedback pulse. Fire-and-forget: silently dropped when
// audio never initialized, isn't ready yet, or feedback is disabled.
func PlaySound(kind SoundKind) {
	if globalAudio == nil || atomic.LoadInt32(&feedbackEnabled) == 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(0.7)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// WireFeedback subscribes the pulse patterns to simulation events.
func WireFeedback(bus *EventBus) {
	bus.Subscribe(EventReset, func(Event) { PlaySound(SoundReset) })
	bus.Subscribe(EventPauseToggled, func(Event) { PlaySound(SoundPause) })
	bus.Subscribe(EventCameraToggled, func(Event) { PlaySound(SoundCamera) })
	bus.Subscribe(EventFoodEaten, func(Event) { PlaySound(SoundPickup) })
	bus.Subscribe(EventDeath, func(Event) { PlaySound(SoundDeath) })
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation to avoid harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundReset:
		return genPulse(520, 0.07)
	case SoundPause:
		return genPulse(360, 0.06)
	case SoundCamera:
		return genPulse(640, 0.05)
	case SoundPickup:
		return genPickup()
	case SoundDeath:
		return genDeathTriple()
	}
	return nil
}

// genPulse: one short sine blip with a fast envelope.
func genPulse(freq, dur float64) []byte {
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.05, 0.4, 0.3, 0.3)
		s := math.Sin(2*math.Pi*freq*t) * env * 0.5
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPickup: snappy rising blip for food pickup.
func genPickup() []byte {
	n := int(0.09 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := math.Sin(2*math.Pi*freq*t) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genDeathTriple: three descending pulses with short gaps.
func genDeathTriple() []byte {
	pulse := 0.10
	gap := 0.05
	n := int((3*pulse + 2*gap) * SampleRate)
	buf := makeBuf(n)
	freqs := [3]float64{420, 330, 240}
	for k := 0; k < 3; k++ {
		start := int(float64(k) * (pulse + gap) * SampleRate)
		pn := int(pulse * SampleRate)
		for i := 0; i < pn && start+i < n; i++ {
			t := float64(i) / SampleRate
			p := float64(i) / float64(pn)
			env := adsr(p, 0.03, 0.3, 0.4, 0.35)
			s := math.Sin(2*math.Pi*freqs[k]*t) * env * 0.55
			putStereoF32(buf, start+i, softSat(s))
		}
	}
	return buf
}
