package game

import (
	"DodgeBall3D/internal/behaviour"
	"DodgeBall3D/internal/collision"
	"DodgeBall3D/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// Player is the sphere the user steers around the arena.
type Player struct {
	behaviour.GameObject

	sphere   collision.Sphere3D
	input    *input.Manager
	walls    []*Wall
	speed    float32
	lives    int
	hp       int
	playTime float32
	start    mgl32.Vec3
}

func NewPlayer(name string, ctx *Context, walls []*Wall) (*Player, error) {
	cfg := ctx.Config.Player
	start := mgl32.Vec3(cfg.Start)

	p := &Player{
		GameObject: behaviour.NewGameObject(name, sphereMesh(ctx.Resources), material(ctx.Resources, materialPlayer, colorPlayer)),
		sphere:     collision.NewSphere(start, cfg.Radius),
		input:      ctx.Input,
		walls:      walls,
		speed:      cfg.Speed,
		lives:      cfg.Lives,
		hp:         cfg.Lives,
		start:      start,
	}
	// the sphere mesh has radius 0.5
	p.Transform.Set(start, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}.Mul(cfg.Radius*2))
	return p, nil
}

// Tick moves the player one axis step per held direction key. A step that
// would overlap a wall is dropped whole.
func (p *Player) Tick(dt float32) {
	p.playTime += dt

	committed := p.Transform.Location()
	candidate := committed
	step := dt * p.speed
	if p.input.IsKeyDown(input.KeyLeft) {
		candidate[0] -= step
	}
	if p.input.IsKeyDown(input.KeyRight) {
		candidate[0] += step
	}
	if p.input.IsKeyDown(input.KeyUp) {
		candidate[2] -= step
	}
	if p.input.IsKeyDown(input.KeyDown) {
		candidate[2] += step
	}
	if candidate == committed {
		return
	}

	p.sphere.SetCenter(candidate)
	if p.CheckCollisionToWall() {
		p.sphere.SetCenter(committed)
		return
	}
	p.Transform.SetLocation(candidate)
}

func (p *Player) CheckCollisionToWall() bool {
	return hitsAnyWall(p, p.walls)
}

// Hit takes one life and reports whether none are left.
func (p *Player) Hit() bool {
	if p.hp > 0 {
		p.hp--
	}
	return p.hp == 0
}

// Reset puts the player back at its start with full lives.
func (p *Player) Reset() {
	p.hp = p.lives
	p.playTime = 0
	p.sphere.SetCenter(p.start)
	p.Transform.SetLocation(p.start)
}

func (p *Player) BoundingVolume() collision.Shape {
	if p == nil {
		return collision.None
	}
	return p.sphere.Shape()
}

func (p *Player) Location() mgl32.Vec3 { return p.Transform.Location() }
func (p *Player) HP() int { return p.hp }
func (p *Player) Lives() int { return p.lives }
func (p *Player) PlayTime() float32 { return p.playTime }
