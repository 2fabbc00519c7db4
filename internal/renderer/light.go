package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Light struct {
	Name            string
	Position        mgl32.Vec3
	Direction       mgl32.Vec3
	Color           mgl32.Vec3
	Intensity       float32
	AmbientStrength float32

	// Orthographic volume used for the shadow pass
	ShadowExtent float32
	ShadowNear   float32
	ShadowFar    float32
}

func CreateLight() *Light {
	return &Light{
		Position:        mgl32.Vec3{0.0, 10.0, 0.0},
		Direction:       mgl32.Vec3{0, -1, 0},
		Color:           mgl32.Vec3{1.0, 1.0, 1.0},
		Intensity:       1.0,
		AmbientStrength: 0.1,
		ShadowExtent:    10.0,
		ShadowNear:      0.1,
		ShadowFar:       40.0,
	}
}

// CreateDirectionalLight creates a sun-like light placed distance units back along direction
// from target, so the shadow volume covers the target.
func CreateDirectionalLight(direction, target, color mgl32.Vec3, intensity, distance float32) *Light {
	light := CreateLight()
	light.Direction = direction.Normalize()
	light.Position = target.Sub(light.Direction.Mul(distance))
	light.Color = color
	light.Intensity = intensity
	light.AmbientStrength = 0.15
	light.ShadowFar = distance * 2
	return light
}

func (l *Light) ViewMatrix() mgl32.Mat4 {
	up := mgl32.Vec3{0, 1, 0}
	if math.Abs(float64(l.Direction.Normalize().Dot(up))) > 0.99 {
		up = mgl32.Vec3{0, 0, -1}
	}
	return mgl32.LookAtV(l.Position, l.Position.Add(l.Direction), up)
}

func (l *Light) ProjectionMatrix() mgl32.Mat4 {
	e := l.ShadowExtent
	return mgl32.Ortho(-e, e, -e, e, l.ShadowNear, l.ShadowFar)
}

// LightSpace transforms world positions into the shadow map's clip space.
func (l *Light) LightSpace() mgl32.Mat4 {
	return l.ProjectionMatrix().Mul4(l.ViewMatrix())
}
