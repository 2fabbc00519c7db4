package game

import (
	"DodgeBall3D/internal/behaviour"
	"DodgeBall3D/internal/collision"

	"github.com/go-gl/mathgl/mgl32"
)

// Floor is the tiled ground under the arena. It has no bounding volume.
type Floor struct {
	behaviour.GameObject
}

func NewFloor(name string, ctx *Context) (*Floor, error) {
	scene := ctx.Config.Scene
	size := 2 * (scene.ArenaHalfSize + scene.WallThickness)
	tiles := int(size + 0.5)

	f := &Floor{
		GameObject: behaviour.NewGameObject(name,
			floorMesh(ctx.Resources, tiles, scene.FloorSeed),
			material(ctx.Resources, materialFloor, colorFloor)),
	}
	f.Transform.SetScale(mgl32.Vec3{size, 1, size})
	return f, nil
}

// BoundingVolume is absent: the floor is never collided with.
func (f *Floor) BoundingVolume() collision.Shape {
	return collision.None
}
