package paint

import (
	"image"

	"github.com/fogleman/gg"
)

// Renderer rasterizes display lists with gg for PNG output.
type Renderer struct {
	context *gg.Context
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Render clears the surface to white and executes the display list in
// order. gg clips fills to the surface; the clamp semantics match the
// Canvas target.
func (r *Renderer) Render(list DisplayList) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	for _, item := range list {
		if item.Rect.Width <= 0 || item.Rect.Height <= 0 {
			continue
		}
		r.context.SetRGBA255(int(item.Color.R), int(item.Color.G), int(item.Color.B), int(item.Color.A))
		r.context.DrawRectangle(item.Rect.X, item.Rect.Y, item.Rect.Width, item.Rect.Height)
		r.context.Fill()
	}
}

// Image returns the rendered surface.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the rendered surface to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return r.context.SavePNG(path)
}
