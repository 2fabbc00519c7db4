package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform holds location, rotation (radians per axis) and scale together with
// the world matrix derived from them. Every setter recomputes World.
type Transform struct {
	location mgl32.Vec3
	rotate   mgl32.Vec3
	scale    mgl32.Vec3
	world    mgl32.Mat4
}

func NewTransform() Transform {
	t := Transform{scale: mgl32.Vec3{1, 1, 1}}
	t.update()
	return t
}

func NewTransformAt(location, rotate, scale mgl32.Vec3) Transform {
	t := Transform{location: location, rotate: rotate, scale: scale}
	t.update()
	return t
}

func (t *Transform) Location() mgl32.Vec3 { return t.location }
func (t *Transform) Rotation() mgl32.Vec3 { return t.rotate }
func (t *Transform) Scale() mgl32.Vec3 { return t.scale }
func (t *Transform) World() mgl32.Mat4 { return t.world }

func (t *Transform) SetLocation(location mgl32.Vec3) {
	t.location = location
	t.update()
}

func (t *Transform) SetRotate(rotate mgl32.Vec3) {
	t.rotate = rotate
	t.update()
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.scale = scale
	t.update()
}

func (t *Transform) Set(location, rotate, scale mgl32.Vec3) {
	t.location = location
	t.rotate = rotate
	t.scale = scale
	t.update()
}

// Translate moves the location by delta.
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.SetLocation(t.location.Add(delta))
}

// Scale first, then Y, X, Z rotation, then translation.
func (t *Transform) update() {
	t.world = mgl32.Translate3D(t.location.X(), t.location.Y(), t.location.Z()).
		Mul4(mgl32.HomogRotate3DZ(t.rotate.Z())).
		Mul4(mgl32.HomogRotate3DX(t.rotate.X())).
		Mul4(mgl32.HomogRotate3DY(t.rotate.Y())).
		Mul4(mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z()))
}
