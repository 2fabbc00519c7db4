package game

import (
	"DodgeBall3D/internal/behaviour"
	"DodgeBall3D/internal/collision"

	"github.com/go-gl/mathgl/mgl32"
)

type Side int

const (
	North Side = iota // -Z
	South             // +Z
	East              // +X
	West              // -X
)

var Sides = [4]Side{North, South, East, West}

func (s Side) String() string {
	switch s {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// WallPlacement returns the box of the wall on side for an arena whose floor
// spans [-halfSize, halfSize] on X and Z. The inner face of each wall sits on
// the arena edge and the long walls overlap at the corners.
func WallPlacement(side Side, halfSize, thickness float32) (center, extents mgl32.Vec3) {
	offset := halfSize + thickness
	long := 2*offset - thickness
	switch side {
	case North:
		return mgl32.Vec3{0, 0.5, -offset}, mgl32.Vec3{long, 1, thickness}
	case South:
		return mgl32.Vec3{0, 0.5, offset}, mgl32.Vec3{long, 1, thickness}
	case East:
		return mgl32.Vec3{offset, 0.5, 0}, mgl32.Vec3{thickness, 1, long}
	default:
		return mgl32.Vec3{-offset, 0.5, 0}, mgl32.Vec3{thickness, 1, long}
	}
}

// Wall is a static box bounding the arena.
type Wall struct {
	behaviour.GameObject
	box  collision.Box3D
	side Side
}

func NewWall(name string, ctx *Context, side Side, center, extents mgl32.Vec3) (*Wall, error) {
	w := &Wall{
		GameObject: behaviour.NewGameObject(name, cubeMesh(ctx.Resources), material(ctx.Resources, materialWall, colorWall)),
		box:        collision.NewBox(center, extents),
		side:       side,
	}
	// the cube mesh spans [-0.5, 0.5]
	w.Transform.Set(center, mgl32.Vec3{}, extents.Mul(2))
	return w, nil
}

func (w *Wall) Side() Side {
	return w.side
}

func (w *Wall) Box() collision.Box3D {
	return w.box
}

func (w *Wall) BoundingVolume() collision.Shape {
	if w == nil {
		return collision.None
	}
	return w.box.Shape()
}

// hitsAnyWall reports whether self overlaps one of walls.
func hitsAnyWall(self behaviour.Entity, walls []*Wall) bool {
	for _, w := range walls {
		if w != nil && behaviour.IsCollision(self, w) {
			return true
		}
	}
	return false
}
