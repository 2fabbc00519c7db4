package game

import (
	"DodgeBall3D/internal/behaviour"
	"DodgeBall3D/internal/collision"
	"DodgeBall3D/internal/renderer"
	"DodgeBall3D/internal/resource"

	"github.com/go-gl/mathgl/mgl32"
)

// BulletSpawner calls its trigger every respawnTime seconds. It draws a
// countdown indicator on the floor and never collides.
type BulletSpawner struct {
	behaviour.GameObject

	stepTime       float32
	respawnTime    float32
	offset         float32
	respawnTrigger func(*BulletSpawner)
	location       mgl32.Vec3
	resources      *resource.Manager
}

// NewBulletSpawner starts the countdown at offset so spawners can be staggered.
func NewBulletSpawner(name string, ctx *Context, location mgl32.Vec3, offset float32, trigger func(*BulletSpawner)) (*BulletSpawner, error) {
	s := &BulletSpawner{
		GameObject:     behaviour.NewGameObject(name, quadMesh(ctx.Resources), material(ctx.Resources, materialSpawnerBg, colorSpawnerBg)),
		stepTime:       offset,
		respawnTime:    ctx.Config.Spawner.RespawnTime,
		offset:         offset,
		respawnTrigger: trigger,
		location:       location,
		resources:      ctx.Resources,
	}
	// flat on the floor, just above it to avoid z-fighting
	s.Transform.Set(mgl32.Vec3{location.X(), 0.01, location.Z()}, mgl32.Vec3{}, mgl32.Vec3{spawnerIndicatorSize, 1, spawnerIndicatorSize})
	return s, nil
}

func (s *BulletSpawner) Tick(dt float32) {
	s.stepTime += dt
	if s.stepTime >= s.respawnTime {
		if s.respawnTrigger != nil {
			s.respawnTrigger(s)
		}
		s.stepTime = 0
	}
}

// Progress is how far the countdown to the next shot has run, in [0, 1].
func (s *BulletSpawner) Progress() float32 {
	return mgl32.Clamp(s.stepTime/s.respawnTime, 0, 1)
}

func (s *BulletSpawner) Reset() {
	s.stepTime = s.offset
}

func (s *BulletSpawner) BoundingVolume() collision.Shape {
	return collision.None
}

func (s *BulletSpawner) Location() mgl32.Vec3 {
	return s.location
}

// FillWorld is the countdown quad: it grows from nothing to the indicator size
// and sits slightly above the background quad.
func (s *BulletSpawner) FillWorld() mgl32.Mat4 {
	size := spawnerIndicatorSize * s.Progress()
	return mgl32.Translate3D(s.location.X(), 0.02, s.location.Z()).
		Mul4(mgl32.Scale3D(size, 1, size))
}

func (s *BulletSpawner) FillMaterial() *renderer.Material {
	return spawnerFill(s.resources, s.Progress())
}
