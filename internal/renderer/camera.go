package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera aimed with LookAt. The arena camera never
// moves after setup, so view and projection are only rebuilt by the setters.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3 // unit view direction
	Up       mgl32.Vec3

	Fov         float32 // vertical, degrees
	Near        float32
	Far         float32
	AspectRatio float32

	view       mgl32.Mat4
	projection mgl32.Mat4
}

func NewDefaultCamera(width int32, height int32) *Camera {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	c := &Camera{
		Position:    mgl32.Vec3{0, 10, 10},
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		Fov:         45.0,
		Near:        0.1,
		Far:         100.0,
		AspectRatio: aspect,
	}
	c.updateView()
	c.updateProjection()
	return c
}

// LookAt turns the camera from its current position towards target.
func (c *Camera) LookAt(target mgl32.Vec3) {
	front := target.Sub(c.Position)
	if front.Len() < 1e-6 {
		return
	}
	c.Front = front.Normalize()

	// keep Up orthogonal to Front, falling back to -Z when looking straight down
	worldUp := mgl32.Vec3{0, 1, 0}
	if math.Abs(float64(c.Front.Dot(worldUp))) > 0.999 {
		worldUp = mgl32.Vec3{0, 0, -1}
	}
	right := c.Front.Cross(worldUp).Normalize()
	c.Up = right.Cross(c.Front).Normalize()
	c.updateView()
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.updateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.updateProjection()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 { return c.view }
func (c *Camera) GetProjectionMatrix() mgl32.Mat4 { return c.projection }

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.projection.Mul4(c.view)
}

func (c *Camera) updateView() {
	c.view = mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) updateProjection() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}
