package renderer

import (
	"fmt"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/scene"
)

// Camera generates primary rays through a sub-pixel grid with tent-filtered jitter
type Camera struct {
	origin       core.Vec3
	direction    core.Vec3 // unit view direction
	cx, cy       core.Vec3 // image plane axes, scaled by the field of view
	lensDistance float64
	width        int
	height       int
	subPixels    int
}

// NewCamera creates a camera for an image of width x height pixels, each split
// into subPixels x subPixels cells
func NewCamera(config scene.CameraConfig, width, height, subPixels int) (*Camera, error) {
	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", width, height)
	}
	if subPixels <= 0 {
		return nil, fmt.Errorf("sub-pixel grid size must be positive, got %d", subPixels)
	}

	direction := config.Direction.Normalize()
	cx := core.NewVec3(float64(width)*config.FieldOfView/float64(height), 0, 0)
	cy := cx.Cross(direction).Normalize().Multiply(config.FieldOfView)

	return &Camera{
		origin:       config.Origin,
		direction:    direction,
		cx:           cx,
		cy:           cy,
		lensDistance: config.LensDistance,
		width:        width,
		height:       height,
		subPixels:    subPixels,
	}, nil
}

// GetRay returns a primary ray for sub-pixel cell (sx, sy) of pixel (x, y).
// y counts from the bottom of the image.
func (c *Camera) GetRay(x, y, sx, sy int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	dx := core.TentFilter(jitter.X)
	dy := core.TentFilter(jitter.Y)

	n := float64(c.subPixels)
	u := ((float64(sx)+0.5+dx)/n+float64(x))/float64(c.width) - 0.5
	v := ((float64(sy)+0.5+dy)/n+float64(y))/float64(c.height) - 0.5

	d := c.cx.Multiply(u).Add(c.cy.Multiply(v)).Add(c.direction)
	return core.NewRay(c.origin.Add(d.Multiply(c.lensDistance)), d)
}

// GetDirection returns the unit view direction
func (c *Camera) GetDirection() core.Vec3 {
	return c.direction
}
