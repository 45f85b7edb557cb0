package assets

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/ya-breaker/internal/core"
)

// Source names a file to load for an asset handle.
// FPS is the frame rate for frame directories and for GIF frames without
// a delay.
type Source struct {
	Path string
	FPS  int
}

// Library holds loaded sprites by handle. Missing handles are not an error
// at draw time: the frontend simply draws nothing.
type Library struct {
	sprites map[core.AssetHandle]*Sprite
	scaled  map[scaleKey]image.Image
}

type scaleKey struct {
	handle core.AssetHandle
	frame  int
	w, h   int
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		sprites: make(map[core.AssetHandle]*Sprite),
		scaled:  make(map[scaleKey]image.Image),
	}
}

// Add registers a sprite under a handle, replacing any previous one.
func (l *Library) Add(h core.AssetHandle, s *Sprite) {
	l.sprites[h] = s
	for k := range l.scaled {
		if k.handle == h {
			delete(l.scaled, k)
		}
	}
}

// Handles returns every loaded handle in sorted order.
func (l *Library) Handles() []core.AssetHandle {
	out := make([]core.AssetHandle, 0, len(l.sprites))
	for h := range l.sprites {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}

// Load reads every source. Assets that fail are skipped and reported in the
// joined error; the rest stay usable.
func (l *Library) Load(sources map[core.AssetHandle]Source) error {
	var errs []error
	for h, src := range sources {
		s, err := LoadFile(src.Path, src.FPS)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", h, err))
			continue
		}
		l.Add(h, s)
	}
	return errors.Join(errs...)
}

// Frame returns the image for a handle after elapsed time.
func (l *Library) Frame(h core.AssetHandle, elapsed time.Duration) (image.Image, bool) {
	s, ok := l.sprites[h]
	if !ok || s.Len() == 0 {
		return nil, false
	}
	return s.Frame(elapsed), true
}

// ScaledFrame returns the frame resized to w×h pixels. Results are cached.
func (l *Library) ScaledFrame(h core.AssetHandle, elapsed time.Duration, w, hgt int) (image.Image, bool) {
	s, ok := l.sprites[h]
	if !ok || s.Len() == 0 || w <= 0 || hgt <= 0 {
		return nil, false
	}

	idx := s.FrameIndex(elapsed)
	key := scaleKey{handle: h, frame: idx, w: w, h: hgt}
	if img, ok := l.scaled[key]; ok {
		return img, true
	}

	img := Scale(s.frames[idx], w, hgt)
	l.scaled[key] = img
	return img, true
}

// Scale resizes src to exactly w×h pixels.
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// LoadFile loads a still image, an animated GIF, or a directory of image
// frames played in name order.
func LoadFile(path string, fps int) (*Sprite, error) {
	if fps <= 0 {
		fps = 30
	}
	frameDelay := time.Second / time.Duration(fps)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if info.IsDir() {
		return loadFrameDir(path, frameDelay)
	}

	if strings.EqualFold(filepath.Ext(path), ".gif") {
		return loadGIF(path, frameDelay)
	}

	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	return NewStill(img), nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path) //#nosec G304 -- asset paths come from the user's config
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// loadGIF decodes every frame and composites it onto the logical screen so
// each stored frame is a complete picture.
func loadGIF(path string, fallback time.Duration) (*Sprite, error) {
	f, err := os.Open(path) //#nosec G304 -- asset paths come from the user's config
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("assets: %s has no frames", path)
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	canvas := image.NewRGBA(bounds)
	frames := make([]image.Image, 0, len(g.Image))
	delays := make([]time.Duration, 0, len(g.Image))

	for i, frame := range g.Image {
		var previous *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, cloneRGBA(canvas))

		var d time.Duration
		if i < len(g.Delay) {
			d = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		delays = append(delays, d)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}

	return NewAnimation(frames, delays, fallback), nil
}

func loadFrameDir(dir string, delay time.Duration) (*Sprite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("assets: no frames in %s", dir)
	}
	slices.Sort(names)

	frames := make([]image.Image, 0, len(names))
	for _, name := range names {
		img, err := decodeImage(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return NewAnimation(frames, nil, delay), nil
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
