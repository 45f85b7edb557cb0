// Package assets loads the sprite images and the decor animation.
package assets

import (
	"image"
	"time"
)

// Sprite is a still image or a looping animation.
type Sprite struct {
	frames []image.Image
	delays []time.Duration
	total  time.Duration
}

// NewStill creates a single-frame sprite.
func NewStill(img image.Image) *Sprite {
	return &Sprite{frames: []image.Image{img}, delays: []time.Duration{0}}
}

// NewAnimation creates a looping sprite. Frames with a non-positive delay
// use fallback instead.
func NewAnimation(frames []image.Image, delays []time.Duration, fallback time.Duration) *Sprite {
	s := &Sprite{frames: frames, delays: make([]time.Duration, len(frames))}
	for i := range frames {
		d := fallback
		if i < len(delays) && delays[i] > 0 {
			d = delays[i]
		}
		s.delays[i] = d
		s.total += d
	}
	return s
}

// Len returns the number of frames.
func (s *Sprite) Len() int {
	return len(s.frames)
}

// Duration returns the length of one loop. Zero for stills.
func (s *Sprite) Duration() time.Duration {
	return s.total
}

// FrameIndex returns the frame shown after elapsed time, looping forever.
func (s *Sprite) FrameIndex(elapsed time.Duration) int {
	if len(s.frames) <= 1 || s.total <= 0 {
		return 0
	}

	pos := elapsed % s.total
	if pos < 0 {
		pos += s.total
	}
	for i, d := range s.delays {
		if pos < d {
			return i
		}
		pos -= d
	}
	return len(s.frames) - 1
}

// Frame returns the image shown after elapsed time.
func (s *Sprite) Frame(elapsed time.Duration) image.Image {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[s.FrameIndex(elapsed)]
}
