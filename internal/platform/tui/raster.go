package tui

import (
	"image"
	"math"
	"time"

	"github.com/vovakirdan/ya-breaker/internal/core"
)

// Runes used for rasterized shapes.
const (
	fillRune = '█'
	ballRune = '●'
)

// SpriteSource provides scaled sprite frames by handle.
type SpriteSource interface {
	ScaledFrame(h core.AssetHandle, elapsed time.Duration, w, hgt int) (image.Image, bool)
}

// Raster is a core.Surface that draws into a character grid.
// Surface units are mapped onto cells by independent x and y scales.
type Raster struct {
	screen   *core.Screen
	sprites  SpriteSource
	surfaceW float64
	surfaceH float64

	// Elapsed selects the animation frame for sprites.
	Elapsed time.Duration
}

// NewRaster creates a raster over screen for a surfaceW×surfaceH surface.
// sprites may be nil, in which case sprites draw nothing.
func NewRaster(screen *core.Screen, sprites SpriteSource, surfaceW, surfaceH float64) *Raster {
	return &Raster{
		screen:   screen,
		sprites:  sprites,
		surfaceW: surfaceW,
		surfaceH: surfaceH,
	}
}

// Screen returns the underlying cell grid.
func (r *Raster) Screen() *core.Screen {
	return r.screen
}

// span converts a unit interval to a half-open cell interval covering it.
// Non-empty intervals always cover at least one cell.
func span(pos, size, cells, units float64) (int, int) {
	start := int(math.Floor(pos * cells / units))
	end := int(math.Ceil((pos + size) * cells / units))
	if end <= start {
		end = start + 1
	}
	return start, end
}

func (r *Raster) cellsX(x, w float64) (int, int) {
	return span(x, w, float64(r.screen.Width()), r.surfaceW)
}

func (r *Raster) cellsY(y, h float64) (int, int) {
	return span(y, h, float64(r.screen.Height()), r.surfaceH)
}

// Clear blanks every cell.
func (r *Raster) Clear() {
	r.screen.Clear()
}

// FillRect fills every cell the rectangle touches.
func (r *Raster) FillRect(x, y, w, h float64, c core.Color) {
	x0, x1 := r.cellsX(x, w)
	y0, y1 := r.cellsY(y, h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			r.screen.Set(cx, cy, fillRune, c)
		}
	}
}

// FillCircle fills cells whose centers lie inside the circle, or the single
// cell under the center when the circle is smaller than a cell.
func (r *Raster) FillCircle(cx, cy, rad float64, c core.Color) {
	cellW := r.surfaceW / float64(r.screen.Width())
	cellH := r.surfaceH / float64(r.screen.Height())

	x0, x1 := r.cellsX(cx-rad, rad*2)
	y0, y1 := r.cellsY(cy-rad, rad*2)

	drawn := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := (float64(x)+0.5)*cellW - cx
			dy := (float64(y)+0.5)*cellH - cy
			if dx*dx+dy*dy <= rad*rad {
				r.screen.Set(x, y, ballRune, c)
				drawn = true
			}
		}
	}

	if !drawn {
		px := int(math.Floor(cx / cellW))
		py := int(math.Floor(cy / cellH))
		r.screen.Set(px, py, ballRune, c)
	}
}

// DrawSprite samples the sprite at cell resolution. Mostly transparent
// pixels are skipped; a missing asset draws nothing.
func (r *Raster) DrawSprite(h core.AssetHandle, x, y, w, hgt float64) {
	if r.sprites == nil {
		return
	}

	x0, x1 := r.cellsX(x, w)
	y0, y1 := r.cellsY(y, hgt)

	img, ok := r.sprites.ScaledFrame(h, r.Elapsed, x1-x0, y1-y0)
	if !ok {
		return
	}

	b := img.Bounds()
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c := core.FromColor(img.At(b.Min.X+cx-x0, b.Min.Y+cy-y0))
			if c.A < 128 {
				continue
			}
			r.screen.Set(cx, cy, fillRune, c)
		}
	}
}

var _ core.Surface = (*Raster)(nil)
