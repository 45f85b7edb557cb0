// Package audio plays the game's sound effects through the system speaker.
// Every failure is swallowed: a game without sound is still a game.
package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ya-breaker/internal/core"
)

const sampleRate = beep.SampleRate(48000)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Player is a fire-and-forget core.SoundPlayer. Sounds are decoded once into
// memory; Play mixes a new copy so the same effect can overlap itself.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sounds      map[core.SoundID]*beep.Buffer
	muted       bool
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates an idle player. Call Initialize before Play.
func NewPlayer(logger *log.Logger, muted bool) *Player {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		sounds: make(map[core.SoundID]*beep.Buffer),
		muted:  muted,
		logger: logger,
	}
}

// Initialize opens the speaker and loads every sound. A file that cannot be
// decoded is replaced by a synthesized tone. Only a speaker failure is
// returned, and the player then stays silent.
func (p *Player) Initialize(paths map[core.SoundID]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	for id, path := range paths {
		buf, err := LoadFile(path)
		if err != nil {
			p.logger.Debug("sound unavailable, using tone", "sound", id, "error", err)
			buf = toneBuffer(id)
		}
		p.sounds[id] = buf
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the sound and returns immediately.
// Unknown ids, a muted player and an uninitialized speaker are no-ops.
func (p *Player) Play(id core.SoundID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	buf, ok := p.sounds[id]
	if !ok {
		return
	}

	speaker.Lock()
	p.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// ToggleMute flips the mute flag and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	if p.muted && p.initialized {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
	return p.muted
}

// Muted reports whether playback is suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Cleanup stops every playing sound and closes the speaker.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	p.initialized = false
}

// LoadFile decodes an mp3 file into an in-memory buffer at the player's
// sample rate.
func LoadFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path) //#nosec G304 -- path comes from the user's config
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	streamer, fileFormat, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if fileFormat.SampleRate != sampleRate {
		src = beep.Resample(4, fileFormat.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	return buf, nil
}
