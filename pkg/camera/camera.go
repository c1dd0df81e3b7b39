package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/fenster/pkg/geometry"
)

// Camera represents a perspective camera orbiting a target
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Field of view in radians
	Distance float64
	Aspect   float64
	Near     float64
	Far      float64
}

// DistanceFactor scales the largest model dimension to the orbit distance
const DistanceFactor = 1.6

// NewCamera creates a camera looking at bbox from the front
func NewCamera(bbox geometry.BoundingBox) *Camera {
	c := &Camera{
		Up:     geometry.NewVector3(0, 1, 0),
		FOV:    math.Pi / 4, // 45 degrees
		Aspect: 4.0 / 3.0,
	}
	c.Fit(bbox)
	return c
}

// Fit retargets the camera on bbox and picks a distance that shows all of it
func (c *Camera) Fit(bbox geometry.BoundingBox) {
	if bbox.IsEmpty() {
		bbox = geometry.BoxFromCenter(geometry.Vector3{}, geometry.NewVector3(1000, 1000, 1000))
	}
	size := bbox.Size()
	c.Target = bbox.Center()
	c.Distance = math.Max(size.X, math.Max(size.Y, size.Z)) * DistanceFactor
	c.Near = c.Distance * 0.01
	c.Far = c.Distance * 10
	c.Orbit(0, 0)
}

// Orbit places the camera at pitch and yaw degrees around the target. Yaw 0
// looks at the outside face (from +Z), yaw 180 at the inside.
func (c *Camera) Orbit(pitch, yaw float64) {
	rx := mgl64.DegToRad(pitch)
	ry := mgl64.DegToRad(yaw)

	x := c.Distance * math.Cos(rx) * math.Sin(ry)
	y := c.Distance * math.Sin(rx)
	z := c.Distance * math.Cos(rx) * math.Cos(ry)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// SetViewport updates the aspect ratio. Non-positive sizes are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
}

// View returns the world to camera matrix
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position.Vec(), c.Target.Vec(), c.Up.Vec())
}

// Projection returns the perspective matrix for the current aspect ratio
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// Project projects a 3D point to 2D screen coordinates and its view depth
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	// Prevent division by zero
	if z <= 0.01 {
		z = 0.01
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// Unproject converts 2D screen coordinates back to a 3D ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) (origin, direction geometry.Vector3) {
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	rayDir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))
	return c.Position, rayDir.Normalize()
}
