package behaviour

import (
	"errors"

	"DodgeBall3D/internal/collision"
	"DodgeBall3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrNotInitialized = errors.New("object not initialized")

// Entity is what the object manager stores and the scene ticks, draws and
// collides.
type Entity interface {
	Name() string
	Tick(dt float32)
	BoundingVolume() collision.Shape
	World() mgl32.Mat4
	Mesh() *renderer.Mesh
	Material() *renderer.Material
	Release() error
}

// GameObject is the base embedded by every entity. Mesh and material are
// borrowed from the resource cache and never freed here.
type GameObject struct {
	Transform Transform

	name        string
	mesh        *renderer.Mesh
	material    *renderer.Material
	initialized bool
}

func NewGameObject(name string, mesh *renderer.Mesh, material *renderer.Material) GameObject {
	return GameObject{
		Transform:   NewTransform(),
		name:        name,
		mesh:        mesh,
		material:    material,
		initialized: true,
	}
}

func (obj *GameObject) Name() string { return obj.name }
func (obj *GameObject) Mesh() *renderer.Mesh { return obj.mesh }
func (obj *GameObject) Material() *renderer.Material { return obj.material }
func (obj *GameObject) World() mgl32.Mat4 { return obj.Transform.World() }
func (obj *GameObject) Initialized() bool { return obj.initialized }
func (obj *GameObject) SetMaterial(m *renderer.Material) { obj.material = m }

// Tick does nothing; entities with behaviour override it.
func (obj *GameObject) Tick(dt float32) {}

// BoundingVolume is absent unless the entity overrides it.
func (obj *GameObject) BoundingVolume() collision.Shape { return collision.None }

// Release drops the borrowed resources. Only the first call has an effect.
func (obj *GameObject) Release() error {
	if !obj.initialized {
		return ErrNotInitialized
	}
	obj.initialized = false
	obj.mesh = nil
	obj.material = nil
	return nil
}

// IsCollision reports whether the bounding volumes of self and other overlap.
// An entity never collides with itself or with nil.
func IsCollision(self, other Entity) bool {
	if self == nil || other == nil || self == other {
		return false
	}
	return self.BoundingVolume().Intersect(other.BoundingVolume())
}
