package renderer

import (
	"math"

	"github.com/df07/go-dirt/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Transform core.Transform // camera to world; the camera looks down its local -Z
	VFov      float64        // Vertical field of view in degrees
	Width     int            // Image width in pixels
	Height    int            // Image height in pixels
}

// DefaultCameraConfig returns a camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Transform: core.IdentityTransform(),
		VFov:      90,
		Width:     512,
		Height:    512,
	}
}

// Camera generates primary rays through an image plane one unit in front of the eye
type Camera struct {
	config CameraConfig
	sizeU  float64 // image plane width
	sizeV  float64 // image plane height
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	sizeV := 2 * math.Tan(config.VFov*math.Pi/360)
	sizeU := sizeV * float64(config.Width) / float64(config.Height)
	return &Camera{config: config, sizeU: sizeU, sizeV: sizeV}
}

// Width returns the horizontal resolution
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the vertical resolution
func (c *Camera) Height() int {
	return c.config.Height
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GenerateRay returns the world-space ray through raster position (x, y),
// where (0, 0) is the top-left corner and (Width, Height) the bottom-right
func (c *Camera) GenerateRay(x, y float64) core.Ray {
	u := (x/float64(c.config.Width) - 0.5) * c.sizeU
	v := (0.5 - y/float64(c.config.Height)) * c.sizeV
	local := core.NewRay(core.Vec3{}, core.NewVec3(u, v, -1).Normalize())

	ray := c.config.Transform.Ray(local)
	ray.Direction = ray.Direction.Normalize()
	return ray
}
