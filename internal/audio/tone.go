package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/ya-breaker/internal/core"
)

// tone describes a synthesized fallback for a missing sound file.
type tone struct {
	freq     float64
	duration time.Duration
	volume   float64 // Linear gain in (0, 1]
}

// Fallback tones, one per sound effect.
var fallbackTones = map[core.SoundID]tone{
	core.SoundPaddleHit:  {freq: 660, duration: 80 * time.Millisecond, volume: 0.5},
	core.SoundBrickBreak: {freq: 990, duration: 60 * time.Millisecond, volume: 0.4},
	core.SoundBallLost:   {freq: 196, duration: 350 * time.Millisecond, volume: 0.6},
}

// toneStreamer generates a sine wave with a linear release.
type toneStreamer struct {
	freq     float64
	rate     beep.SampleRate
	total    int
	position int
}

// NewTone returns a finite sine tone that fades out over its duration.
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		freq:  freq,
		rate:  rate,
		total: rate.N(duration),
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		env := 1 - float64(t.position)/float64(t.total)
		phase := 2 * math.Pi * t.freq * float64(t.position) / float64(t.rate)
		val := env * math.Sin(phase)

		samples[i][0] = val
		samples[i][1] = val
		t.position++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error { return nil }

// withVolume scales a streamer by a linear gain. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// toneBuffer renders the fallback tone for id into a buffer.
func toneBuffer(id core.SoundID) *beep.Buffer {
	tn, ok := fallbackTones[id]
	if !ok {
		tn = tone{freq: 440, duration: 100 * time.Millisecond, volume: 0.4}
	}

	buf := beep.NewBuffer(format)
	buf.Append(withVolume(NewTone(tn.freq, tn.duration, sampleRate), tn.volume))
	return buf
}
