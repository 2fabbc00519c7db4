package game

import (
	"DodgeBall3D/internal/behaviour"
	"DodgeBall3D/internal/collision"
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrZeroDirection = errors.New("bullet direction has no XZ component")

// Bullet flies on the XZ plane until it meets a wall. The scene tests it
// against the player.
type Bullet struct {
	behaviour.GameObject

	sphere             collision.Sphere3D
	direction          mgl32.Vec3
	speed              float32
	walls              []*Wall
	collidedWithWall   bool
	collidedWithPlayer bool
}

func NewBullet(name string, ctx *Context, walls []*Wall, location, direction mgl32.Vec3) (*Bullet, error) {
	flat := mgl32.Vec3{direction.X(), 0, direction.Z()}
	if flat.Len() < 1e-6 {
		return nil, ErrZeroDirection
	}
	cfg := ctx.Config.Bullet

	b := &Bullet{
		GameObject: behaviour.NewGameObject(name, sphereMesh(ctx.Resources), material(ctx.Resources, materialBullet, colorBullet)),
		sphere:     collision.NewSphere(location, cfg.Radius),
		direction:  flat.Normalize(),
		speed:      cfg.Speed,
		walls:      walls,
	}
	b.Transform.Set(location, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}.Mul(cfg.Radius*2))
	return b, nil
}

// Tick is a no-op once the bullet has hit a wall.
func (b *Bullet) Tick(dt float32) {
	if b.collidedWithWall {
		return
	}
	location := b.Transform.Location()
	location[0] += b.direction.X() * b.speed * dt
	location[2] += b.direction.Z() * b.speed * dt
	b.Transform.SetLocation(location)
	b.sphere.SetCenter(location)

	if hitsAnyWall(b, b.walls) {
		b.collidedWithWall = true
	}
}

func (b *Bullet) MarkPlayerHit() {
	b.collidedWithPlayer = true
}

// Spent reports whether the scene should remove the bullet.
func (b *Bullet) Spent() bool {
	return b.collidedWithWall || b.collidedWithPlayer
}

func (b *Bullet) BoundingVolume() collision.Shape {
	if b == nil {
		return collision.None
	}
	return b.sphere.Shape()
}

func (b *Bullet) Location() mgl32.Vec3 { return b.Transform.Location() }
func (b *Bullet) Direction() mgl32.Vec3 { return b.direction }
func (b *Bullet) CollidedWithWall() bool { return b.collidedWithWall }
func (b *Bullet) CollidedWithPlayer() bool { return b.collidedWithPlayer }
