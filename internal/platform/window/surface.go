package window

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/ya-breaker/internal/core"
)

// FrameSource provides sprite frames by handle.
type FrameSource interface {
	Frame(h core.AssetHandle, elapsed time.Duration) (image.Image, bool)
}

// textureCache uploads each decoded frame to the GPU once.
type textureCache struct {
	images map[image.Image]*ebiten.Image
}

func newTextureCache() *textureCache {
	return &textureCache{images: make(map[image.Image]*ebiten.Image)}
}

func (c *textureCache) get(img image.Image) *ebiten.Image {
	if tex, ok := c.images[img]; ok {
		return tex
	}
	tex := ebiten.NewImageFromImage(img)
	c.images[img] = tex
	return tex
}

// ebitenSurface is a core.Surface drawing onto an ebiten image.
type ebitenSurface struct {
	dst      *ebiten.Image
	sprites  FrameSource
	textures *textureCache
	elapsed  time.Duration
}

func toRGBA(c core.Color) color.RGBA {
	if c.IsDefault() {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c.RGBA()
}

func (s *ebitenSurface) Clear() {
	s.dst.Fill(color.Black)
}

func (s *ebitenSurface) FillRect(x, y, w, h float64, c core.Color) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), toRGBA(c), false)
}

func (s *ebitenSurface) FillCircle(cx, cy, r float64, c core.Color) {
	vector.FillCircle(s.dst, float32(cx), float32(cy), float32(r), toRGBA(c), true)
}

// DrawSprite stretches the current frame over the target rectangle.
// Missing assets draw nothing.
func (s *ebitenSurface) DrawSprite(h core.AssetHandle, x, y, w, hgt float64) {
	if s.sprites == nil {
		return
	}
	img, ok := s.sprites.Frame(h, s.elapsed)
	if !ok || img == nil {
		return
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(w/float64(b.Dx()), hgt/float64(b.Dy()))
	opts.GeoM.Translate(x, y)
	opts.Filter = ebiten.FilterLinear
	s.dst.DrawImage(s.textures.get(img), opts)
}

var _ core.Surface = (*ebitenSurface)(nil)
