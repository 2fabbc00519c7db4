package game

import (
	"DodgeBall3D/internal/behaviour"
	"DodgeBall3D/internal/logger"
	"DodgeBall3D/internal/renderer"
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const SceneName = "dodgeball"

// spawnerInset keeps spawners this far inside the arena corners.
const spawnerInset = 0.5

var ErrAlreadyEntered = errors.New("scene already entered")

// Scene is the dodge-the-bullets round: one player, four walls, a floor, four
// spawners and the live bullets, driven by the Ready/Play/Pause/Done machine.
type Scene struct {
	ctx     *Context
	session uuid.UUID
	state   State
	entered bool

	player   *Player
	walls    []*Wall
	floor    *Floor
	spawners []*BulletSpawner
	bullets  []*Bullet

	stepTime       float32
	fadeInStepTime float32
	sequence       int

	camera     *renderer.Camera
	light      *renderer.Light
	hud        *hud
	renderList []behaviour.Entity

	lastTime float32
	lastRank int
}

func NewScene(ctx *Context) *Scene {
	return &Scene{ctx: ctx}
}

func (s *Scene) Name() string { return SceneName }

// Enter builds every entity of the round and leaves the scene in Ready.
func (s *Scene) Enter() error {
	if s.entered {
		return fmt.Errorf("enter %s: %w", SceneName, ErrAlreadyEntered)
	}
	s.session = uuid.New()
	s.sequence = 0
	s.state = StateReady
	s.stepTime = 0
	s.fadeInStepTime = s.ctx.Config.Scene.FadeInStepTime
	s.lastTime, s.lastRank = 0, 0

	if err := s.build(); err != nil {
		s.release()
		return fmt.Errorf("enter %s: %w", SceneName, err)
	}

	win := s.ctx.Config.Window
	s.camera = renderer.NewDefaultCamera(win.Width, win.Height)
	s.camera.Position = mgl32.Vec3{0, 11, 9}
	s.camera.LookAt(mgl32.Vec3{0, 0, 0.5})

	arena := s.ctx.Config.Scene.ArenaHalfSize + s.ctx.Config.Scene.WallThickness
	s.light = renderer.CreateDirectionalLight(mgl32.Vec3{-0.4, -1, -0.3}, mgl32.Vec3{}, mgl32.Vec3{1, 0.97, 0.9}, 1.0, 15)
	s.light.ShadowExtent = arena + 2

	s.hud = newHUD(s, float32(win.Width), float32(win.Height))
	s.entered = true

	logger.Log.Info("Scene entered",
		zap.String("scene", SceneName),
		zap.String("session", s.session.String()),
		zap.Int("objects", s.ctx.Objects.Len()))
	return nil
}

func (s *Scene) build() error {
	cfg := s.ctx.Config
	objects := s.ctx.Objects

	s.walls = make([]*Wall, 0, len(Sides))
	for _, side := range Sides {
		side := side
		center, extents := WallPlacement(side, cfg.Scene.ArenaHalfSize, cfg.Scene.WallThickness)
		wall, err := behaviour.CreateObject(objects, "wall_"+strings.ToLower(side.String()), func(name string) (*Wall, error) {
			return NewWall(name, s.ctx, side, center, extents)
		})
		if err != nil {
			return err
		}
		s.walls = append(s.walls, wall)
	}

	floor, err := behaviour.CreateObject(objects, "floor", func(name string) (*Floor, error) {
		return NewFloor(name, s.ctx)
	})
	if err != nil {
		return err
	}
	s.floor = floor

	player, err := behaviour.CreateObject(objects, "player", func(name string) (*Player, error) {
		return NewPlayer(name, s.ctx, s.walls)
	})
	if err != nil {
		return err
	}
	s.player = player

	corner := cfg.Scene.ArenaHalfSize - spawnerInset
	corners := [4]mgl32.Vec3{
		{-corner, 0.5, corner},
		{corner, 0.5, corner},
		{corner, 0.5, -corner},
		{-corner, 0.5, -corner},
	}
	s.spawners = make([]*BulletSpawner, 0, len(corners))
	for i, at := range corners {
		at, offset := at, cfg.Spawner.Offsets[i]
		spawner, err := behaviour.CreateObject(objects, s.nextName("spawner"), func(name string) (*BulletSpawner, error) {
			return NewBulletSpawner(name, s.ctx, at, offset, s.spawnBullet)
		})
		if err != nil {
			return err
		}
		s.spawners = append(s.spawners, spawner)
	}
	return nil
}

// Exit releases every entity the scene created.
func (s *Scene) Exit() error {
	if !s.entered {
		return nil
	}
	s.entered = false
	s.release()
	s.ctx.Resources.LogStats()
	s.ctx.Resources.Clear()
	logger.Log.Info("Scene exited",
		zap.String("scene", SceneName),
		zap.String("session", s.session.String()))
	return nil
}

// release drops every entity of the round. The object manager only holds this
// scene's entities, so clearing it releases them all, newest first.
func (s *Scene) release() {
	s.ctx.Objects.Clear()
	s.bullets, s.spawners, s.walls = nil, nil, nil
	s.player, s.floor = nil, nil
	s.renderList = s.renderList[:0]
}

func (s *Scene) destroy(e behaviour.Entity) {
	if err := s.ctx.Objects.DestroyObject(e.Name()); err != nil {
		logger.Log.Warn("Destroy failed", zap.String("name", e.Name()), zap.Error(err))
	}
}

func (s *Scene) nextName(kind string) string {
	s.sequence++
	return fmt.Sprintf("%s_%d", kind, s.sequence)
}

// Tick runs the UI of the current state and, in Play, the simulation. A state
// change triggered by the UI takes effect on the next frame.
func (s *Scene) Tick(dt float32) {
	if !s.entered {
		return
	}
	before := s.state
	s.hud.update(s.ctx.Input, s.state)
	if s.state != before {
		return
	}

	switch s.state {
	case StatePlay:
		s.simulate(dt)
	case StateDone:
		s.stepTime = mgl32.Clamp(s.stepTime+dt, 0, s.fadeInStepTime)
	}
}

// simulate ticks player, walls, spawners then bullets and resolves bullet hits
// on the player.
func (s *Scene) simulate(dt float32) {
	s.player.Tick(dt)
	for _, w := range s.walls {
		w.Tick(dt)
	}
	for _, sp := range s.spawners {
		sp.Tick(dt)
	}
	for _, b := range s.bullets {
		b.Tick(dt)
	}

	for _, b := range s.bullets {
		if b.Spent() || !behaviour.IsCollision(s.player, b) {
			continue
		}
		b.MarkPlayerHit()
		s.play(SoundHit)
		dead := s.player.Hit()
		logger.Log.Debug("Player hit",
			zap.String("bullet", b.Name()),
			zap.Int("hp", s.player.HP()))
		if dead {
			s.gameOver()
			break
		}
	}
	s.removeSpentBullets()
}

func (s *Scene) spawnBullet(spawner *BulletSpawner) {
	from := spawner.Location()
	direction := s.player.Location().Sub(from)
	direction[1] = 0
	if direction.Len() < 1e-6 {
		direction = mgl32.Vec3{-from.X(), 0, -from.Z()}
	}
	if direction.Len() < 1e-6 {
		direction = mgl32.Vec3{1, 0, 0}
	}

	bullet, err := behaviour.CreateObject(s.ctx.Objects, s.nextName("bullet"), func(name string) (*Bullet, error) {
		return NewBullet(name, s.ctx, s.walls, from, direction)
	})
	if err != nil {
		logger.Log.Warn("Bullet spawn failed", zap.String("spawner", spawner.Name()), zap.Error(err))
		return
	}
	s.bullets = append(s.bullets, bullet)
}

// removeSpentBullets compacts the bullet list in place, destroying every
// bullet that hit a wall or the player.
func (s *Scene) removeSpentBullets() {
	live := s.bullets[:0]
	for _, b := range s.bullets {
		if b.Spent() {
			s.destroy(b)
			continue
		}
		live = append(live, b)
	}
	for i := len(live); i < len(s.bullets); i++ {
		s.bullets[i] = nil
	}
	s.bullets = live
}

func (s *Scene) gameOver() {
	s.lastTime = s.player.PlayTime()
	s.lastRank = 0
	if s.ctx.PlayLog != nil {
		s.lastRank = s.ctx.PlayLog.Rank(s.lastTime)
		s.ctx.PlayLog.Record(s.lastTime)
	}
	s.play(SoundGameOver)
	logger.Log.Info("Game over",
		zap.String("session", s.session.String()),
		zap.Float32("playTime", s.lastTime),
		zap.Int("rank", s.lastRank))
	if err := s.SetState(StateDone); err != nil {
		logger.Log.Error("Game over transition failed", zap.Error(err))
	}
}

// SetState moves the scene along the transition table. Entering Ready resets
// the round, entering Done restarts the fade.
func (s *Scene) SetState(next State) error {
	if !CanTransition(s.state, next) {
		logger.Log.Warn("Illegal scene transition",
			zap.Stringer("from", s.state),
			zap.Stringer("to", next))
		return fmt.Errorf("%s -> %s: %w", s.state, next, ErrIllegalTransition)
	}
	prev := s.state
	s.state = next

	switch next {
	case StateReady:
		s.resetRound()
	case StatePlay:
		if prev == StateReady {
			s.play(SoundStart)
		}
	case StatePause:
		s.play(SoundPause)
	case StateDone:
		s.stepTime = 0
	}
	if s.hud != nil {
		s.hud.showRank = false
	}

	logger.Log.Info("Scene state changed",
		zap.String("session", s.session.String()),
		zap.Stringer("from", prev),
		zap.Stringer("to", next))
	return nil
}

func (s *Scene) resetRound() {
	for _, b := range s.bullets {
		s.destroy(b)
	}
	s.bullets = s.bullets[:0]
	if s.player != nil {
		s.player.Reset()
	}
	for _, sp := range s.spawners {
		sp.Reset()
	}
	s.stepTime = 0
}

func (s *Scene) play(sound string) {
	if err := s.ctx.Audio.Play(sound); err != nil {
		logger.Log.Warn("Sound failed", zap.String("sound", sound), zap.Error(err))
	}
}

func (s *Scene) quit() {
	logger.Log.Info("Quit requested", zap.String("session", s.session.String()))
	if s.ctx.Quit != nil {
		s.ctx.Quit()
	}
}

// request is the button callback form of SetState.
func (s *Scene) request(next State) func() {
	return func() {
		_ = s.SetState(next)
	}
}

// Resize keeps the camera aspect and UI layout in step with the window.
func (s *Scene) Resize(width, height int32) {
	if width <= 0 || height <= 0 || !s.entered {
		return
	}
	s.camera.SetAspectRatio(float32(width) / float32(height))
	s.hud.layout(float32(width), float32(height))
}

func (s *Scene) State() State { return s.state }
func (s *Scene) Session() uuid.UUID { return s.session }
func (s *Scene) Player() *Player { return s.player }
func (s *Scene) Walls() []*Wall { return s.walls }
func (s *Scene) Floor() *Floor { return s.floor }
func (s *Scene) Spawners() []*BulletSpawner { return s.spawners }
func (s *Scene) Bullets() []*Bullet { return s.bullets }
func (s *Scene) StepTime() float32 { return s.stepTime }
func (s *Scene) LastRank() int { return s.lastRank }

// FadeAlpha is the Done overlay opacity, 0 outside Done.
func (s *Scene) FadeAlpha() float32 {
	if s.state != StateDone || s.fadeInStepTime <= 0 {
		return 0
	}
	return s.stepTime / s.fadeInStepTime
}
