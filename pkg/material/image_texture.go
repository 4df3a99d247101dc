package material

import (
	"github.com/df07/go-dirt/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value looks up the nearest pixel at the hit's UV coordinates. Coordinates
// outside [0, 1] are clamped to the border, not wrapped.
func (t *ImageTexture) Value(hit *core.HitInfo) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	i := int(float64(t.Width) * hit.UV.X)
	j := int(float64(t.Height) * (1 - hit.UV.Y))

	// Clamp to image bounds
	i = max(0, min(i, t.Width-1))
	j = max(0, min(j, t.Height-1))

	return t.Pixels[j*t.Width+i]
}
