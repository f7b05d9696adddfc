package paint

import (
	"image"
	"image/color"

	"crusoe/pkg/css"
)

// Canvas is a plain pixel buffer target for display lists. It exists so
// painting stays testable without a graphics stack; Renderer wraps the
// same display-list walk with gg for PNG output.
type Canvas struct {
	Width  int
	Height int
	Pixels []css.Color
}

// NewCanvas returns a white canvas.
func NewCanvas(width, height int) *Canvas {
	white := css.Color{R: 255, G: 255, B: 255, A: 255}
	pixels := make([]css.Color, width*height)
	for i := range pixels {
		pixels[i] = white
	}
	return &Canvas{Width: width, Height: height, Pixels: pixels}
}

// Paint executes the display list in order. Later commands overwrite
// earlier pixels; there is no blending.
func (c *Canvas) Paint(list DisplayList) {
	for _, item := range list {
		c.fillRect(item)
	}
}

// fillRect writes one solid rectangle, clamp-clipped to the canvas.
func (c *Canvas) fillRect(item SolidColor) {
	x0 := clampInt(item.Rect.X, c.Width)
	y0 := clampInt(item.Rect.Y, c.Height)
	x1 := clampInt(item.Rect.X+item.Rect.Width, c.Width)
	y1 := clampInt(item.Rect.Y+item.Rect.Height, c.Height)

	for y := y0; y < y1; y++ {
		row := y * c.Width
		for x := x0; x < x1; x++ {
			c.Pixels[row+x] = item.Color
		}
	}
}

func clampInt(v float64, max int) int {
	if v < 0 {
		return 0
	}
	if v > float64(max) {
		return max
	}
	return int(v)
}

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) css.Color {
	return c.Pixels[y*c.Width+x]
}

// Image copies the canvas into an image.RGBA.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return img
}
