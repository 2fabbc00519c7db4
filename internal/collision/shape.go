package collision

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind tags the concrete volume held by a Shape.
type Kind uint8

const (
	KindNone Kind = iota
	KindBox
	KindSphere
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Box3D is an axis aligned box described by its center and half widths.
type Box3D struct {
	Center  mgl32.Vec3
	Extents mgl32.Vec3
}

// Sphere3D is a sphere described by its center and radius.
type Sphere3D struct {
	Center mgl32.Vec3
	Radius float32
}

// Shape is a bounding volume: a box, a sphere or nothing.
// The zero value is the absent shape and intersects nothing.
type Shape struct {
	kind   Kind
	box    Box3D
	sphere Sphere3D
}

// None is the absent shape.
var None = Shape{}

func NewBox(center, extents mgl32.Vec3) Box3D {
	return Box3D{Center: center, Extents: extents}
}

func NewSphere(center mgl32.Vec3, radius float32) Sphere3D {
	return Sphere3D{Center: center, Radius: radius}
}

func (b Box3D) Min() mgl32.Vec3 { return b.Center.Sub(b.Extents) }
func (b Box3D) Max() mgl32.Vec3 { return b.Center.Add(b.Extents) }

func (b *Box3D) SetCenter(center mgl32.Vec3) { b.Center = center }

func (b Box3D) Shape() Shape { return Shape{kind: KindBox, box: b} }

// Intersect reports whether the box overlaps other.
func (b Box3D) Intersect(other Shape) bool { return b.Shape().Intersect(other) }

func (s *Sphere3D) SetCenter(center mgl32.Vec3) { s.Center = center }

func (s Sphere3D) Shape() Shape { return Shape{kind: KindSphere, sphere: s} }

// Intersect reports whether the sphere overlaps other.
func (s Sphere3D) Intersect(other Shape) bool { return s.Shape().Intersect(other) }

func (s Shape) Kind() Kind { return s.kind }

func (s Shape) IsNone() bool { return s.kind == KindNone }

// Box returns the box volume and whether the shape holds one.
func (s Shape) Box() (Box3D, bool) { return s.box, s.kind == KindBox }

// Sphere returns the sphere volume and whether the shape holds one.
func (s Shape) Sphere() (Sphere3D, bool) { return s.sphere, s.kind == KindSphere }

// Intersect reports whether the two volumes overlap. Touching counts as overlapping.
func (s Shape) Intersect(other Shape) bool {
	if s.kind == KindNone || other.kind == KindNone {
		return false
	}

	switch s.kind {
	case KindBox:
		switch other.kind {
		case KindBox:
			return boxBox(s.box, other.box)
		case KindSphere:
			return boxSphere(s.box, other.sphere)
		}
	case KindSphere:
		switch other.kind {
		case KindBox:
			return boxSphere(other.box, s.sphere)
		case KindSphere:
			return sphereSphere(s.sphere, other.sphere)
		}
	}
	panic(fmt.Sprintf("collision: unreachable shape pair %v/%v", s.kind, other.kind))
}

func boxBox(a, b Box3D) bool {
	minA, maxA := a.Min(), a.Max()
	minB, maxB := b.Min(), b.Max()
	for i := 0; i < 3; i++ {
		if minA[i] > maxB[i] || maxA[i] < minB[i] {
			return false
		}
	}
	return true
}

func boxSphere(b Box3D, s Sphere3D) bool {
	closest := ClosestPoint(b, s.Center)
	return closest.Sub(s.Center).LenSqr() <= s.Radius*s.Radius
}

func sphereSphere(a, b Sphere3D) bool {
	r := a.Radius + b.Radius
	return a.Center.Sub(b.Center).LenSqr() <= r*r
}

// ClosestPoint clamps p into the box.
func ClosestPoint(b Box3D, p mgl32.Vec3) mgl32.Vec3 {
	minB, maxB := b.Min(), b.Max()
	return mgl32.Vec3{
		mgl32.Clamp(p[0], minB[0], maxB[0]),
		mgl32.Clamp(p[1], minB[1], maxB[1]),
		mgl32.Clamp(p[2], minB[2], maxB[2]),
	}
}
