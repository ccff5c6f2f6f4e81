package timerview

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	ringSize      = 260
	ringThickness = 0.12
)

var trackColor = color.NRGBA{R: 240, G: 240, B: 240, A: 255}

// progressRing draws the elapsed fraction as a clockwise arc starting at
// twelve o'clock over a grey track.
type progressRing struct {
	raster *canvas.Raster
	value  float64
	accent color.Color
}

func newProgressRing(accent color.Color) *progressRing {
	ring := &progressRing{accent: accent}
	ring.raster = canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
		return ringColor(x, y, w, h, ring.value, ring.accent)
	})
	ring.raster.SetMinSize(fyne.NewSize(ringSize, ringSize))
	return ring
}

func (ring *progressRing) SetValue(value float64) {
	value = math.Max(0, math.Min(1, value))
	if value == ring.value {
		return
	}
	ring.value = value
	ring.raster.Refresh()
}

func (ring *progressRing) SetAccent(accent color.Color) {
	ring.accent = accent
	ring.raster.Refresh()
}

// ringColor returns the pixel color at (x, y) of a w*h ring filled up to
// value. Pixels outside the band are transparent.
func ringColor(x, y, w, h int, value float64, accent color.Color) color.Color {
	outer := float64(min(w, h)) / 2
	inner := outer * (1 - ringThickness)
	dx := float64(x) + 0.5 - float64(w)/2
	dy := float64(y) + 0.5 - float64(h)/2
	distance := math.Hypot(dx, dy)
	if distance > outer || distance < inner {
		return color.Transparent
	}

	// 0 at the top, growing clockwise.
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if value > 0 && angle/(2*math.Pi) <= value {
		return accent
	}
	return trackColor
}
