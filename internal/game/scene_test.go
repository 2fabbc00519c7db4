package game

import (
	"errors"
	"path/filepath"
	"testing"

	"DodgeBall3D/internal/behaviour"
	"DodgeBall3D/internal/config"
	"DodgeBall3D/internal/input"
	"DodgeBall3D/internal/playlog"
	"DodgeBall3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestScene(t *testing.T, cfg config.Config) (*Scene, *input.StaticSource, *recordingPlayer) {
	t.Helper()
	ctx, src, sfx := newTestContext(t, cfg)
	s := NewScene(ctx)
	if err := s.Enter(); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	return s, src, sfx
}

// press holds key for one frame and ticks the scene.
func press(s *Scene, src *input.StaticSource, key input.Key) {
	src.Press(key)
	s.ctx.Input.Update()
	s.Tick(0)
	src.Release(key)
	s.ctx.Input.Update()
}

// addBullet places a bullet by hand, bypassing the spawners.
func addBullet(t *testing.T, s *Scene, at, dir mgl32.Vec3) *Bullet {
	t.Helper()
	b, err := behaviour.CreateObject(s.ctx.Objects, s.nextName("bullet"), func(name string) (*Bullet, error) {
		return NewBullet(name, s.ctx, s.walls, at, dir)
	})
	if err != nil {
		t.Fatalf("CreateObject failed: %v", err)
	}
	s.bullets = append(s.bullets, b)
	return b
}

func TestEnterBuildsRound(t *testing.T) {
	s, _, _ := newTestScene(t, config.Default())

	if s.State() != StateReady {
		t.Errorf("Expected Ready after Enter, got %s", s.State())
	}
	if len(s.Walls()) != 4 || len(s.Spawners()) != 4 || len(s.Bullets()) != 0 {
		t.Errorf("Expected 4 walls, 4 spawners, 0 bullets, got %d %d %d",
			len(s.Walls()), len(s.Spawners()), len(s.Bullets()))
	}
	if s.Player() == nil || s.Floor() == nil {
		t.Fatal("Expected player and floor")
	}
	// 4 walls, floor, player, 4 spawners
	if s.ctx.Objects.Len() != 10 {
		t.Errorf("Expected 10 registered objects, got %d", s.ctx.Objects.Len())
	}
	if _, ok := s.ctx.Objects.GetObject("spawner_1"); !ok {
		t.Error("Expected spawner names from the scene sequence")
	}
	if err := s.Enter(); !errors.Is(err, ErrAlreadyEntered) {
		t.Errorf("Expected ErrAlreadyEntered, got %v", err)
	}
}

func TestSceneSequenceIsLocal(t *testing.T) {
	a, _, _ := newTestScene(t, config.Default())
	b, _, _ := newTestScene(t, config.Default())

	if a.Spawners()[0].Name() != "spawner_1" || b.Spawners()[0].Name() != "spawner_1" {
		t.Errorf("Expected each scene to number its own spawners, got %s and %s",
			a.Spawners()[0].Name(), b.Spawners()[0].Name())
	}
	if a.Session() == b.Session() {
		t.Error("Expected distinct session ids")
	}
}

func TestTransitionTable(t *testing.T) {
	legal := map[[2]State]bool{
		{StateReady, StatePlay}:  true,
		{StatePlay, StatePause}:  true,
		{StatePause, StatePlay}:  true,
		{StatePlay, StateDone}:   true,
		{StateDone, StateReady}:  true,
		{StatePause, StateReady}: true,
	}
	states := []State{StateReady, StatePlay, StatePause, StateDone}
	for _, from := range states {
		for _, to := range states {
			if got := CanTransition(from, to); got != legal[[2]State{from, to}] {
				t.Errorf("CanTransition(%s, %s) = %v", from, to, got)
			}
		}
	}
}

func TestIllegalTransitionRejected(t *testing.T) {
	s, _, _ := newTestScene(t, config.Default())

	err := s.SetState(StateDone)
	if !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Expected ErrIllegalTransition, got %v", err)
	}
	if s.State() != StateReady {
		t.Errorf("Expected state unchanged, got %s", s.State())
	}
}

func TestReadyDoesNotSimulate(t *testing.T) {
	s, _, _ := newTestScene(t, config.Default())

	for i := 0; i < 10; i++ {
		s.Tick(1)
	}
	if len(s.Bullets()) != 0 {
		t.Errorf("Expected no bullets in Ready, got %d", len(s.Bullets()))
	}
	if s.Player().PlayTime() != 0 {
		t.Errorf("Expected no play time in Ready, got %v", s.Player().PlayTime())
	}
}

func TestStartWithEnter(t *testing.T) {
	s, src, sfx := newTestScene(t, config.Default())

	press(s, src, input.KeyEnter)

	if s.State() != StatePlay {
		t.Fatalf("Expected Play after Enter, got %s", s.State())
	}
	if sfx.count(SoundStart) != 1 {
		t.Errorf("Expected start sound, got %v", sfx.played)
	}
}

func TestPlaySpawnsBullets(t *testing.T) {
	s, _, _ := newTestScene(t, config.Default())
	if err := s.SetState(StatePlay); err != nil {
		t.Fatal(err)
	}

	// the last spawner starts at 1.5 of 2 seconds
	s.Tick(0.5)

	if len(s.Bullets()) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(s.Bullets()))
	}
	b := s.Bullets()[0]
	if b.Name() != "bullet_5" {
		t.Errorf("Expected bullet_5, got %s", b.Name())
	}
	if _, ok := s.ctx.Objects.GetObject(b.Name()); !ok {
		t.Error("Spawned bullet should be registered")
	}
	// aimed at the player from (-4, 0.5, -4)
	want := mgl32.Vec3{1, 0, 1}.Normalize()
	if !b.Direction().ApproxEqual(want) {
		t.Errorf("Expected direction %v, got %v", want, b.Direction())
	}
}

func TestBulletHitDamagesPlayer(t *testing.T) {
	s, _, sfx := newTestScene(t, config.Default())
	_ = s.SetState(StatePlay)
	b := addBullet(t, s, mgl32.Vec3{0.7, 0.5, 0}, mgl32.Vec3{-1, 0, 0})

	s.Tick(0.01)

	if s.Player().HP() != 2 {
		t.Errorf("Expected hp 2, got %d", s.Player().HP())
	}
	if !b.CollidedWithPlayer() {
		t.Error("Expected player latch on the bullet")
	}
	if len(s.Bullets()) != 0 {
		t.Errorf("Expected hit bullet removed, got %d", len(s.Bullets()))
	}
	if _, ok := s.ctx.Objects.GetObject(b.Name()); ok {
		t.Error("Hit bullet should be destroyed")
	}
	if sfx.count(SoundHit) != 1 {
		t.Errorf("Expected one hit sound, got %v", sfx.played)
	}
	if s.State() != StatePlay {
		t.Errorf("Expected to keep playing, got %s", s.State())
	}
}

func TestWallHitBulletRemoved(t *testing.T) {
	s, _, _ := newTestScene(t, config.Default())
	_ = s.SetState(StatePlay)
	keep := addBullet(t, s, mgl32.Vec3{-2, 0.5, 3}, mgl32.Vec3{0, 0, -1})
	gone := addBullet(t, s, mgl32.Vec3{3.9, 0.5, 0}, mgl32.Vec3{1, 0, 0})

	s.Tick(0.1)

	if len(s.Bullets()) != 1 || s.Bullets()[0] != keep {
		t.Fatalf("Expected only the free bullet to remain, got %d", len(s.Bullets()))
	}
	if gone.Initialized() {
		t.Error("Removed bullet should be released")
	}
}

func TestGameOverRecordsPlayTime(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Lives = 1
	s, _, sfx := newTestScene(t, cfg)
	log, err := playlog.Open(filepath.Join(t.TempDir(), "playlog.bin"), 10)
	if err != nil {
		t.Fatal(err)
	}
	s.ctx.PlayLog = log
	_ = s.SetState(StatePlay)

	s.Tick(0.25)
	addBullet(t, s, mgl32.Vec3{0.7, 0.5, 0}, mgl32.Vec3{-1, 0, 0})
	s.Tick(0.25)

	if s.State() != StateDone {
		t.Fatalf("Expected Done after last life, got %s", s.State())
	}
	best, ok := log.Best()
	if !ok || best.Time != 0.5 {
		t.Errorf("Expected recorded play time 0.5, got %+v", best)
	}
	if s.LastRank() != 1 {
		t.Errorf("Expected rank 1, got %d", s.LastRank())
	}
	if sfx.count(SoundGameOver) != 1 {
		t.Errorf("Expected gameover sound, got %v", sfx.played)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	s, src, _ := newTestScene(t, config.Default())
	_ = s.SetState(StatePlay)
	b := addBullet(t, s, mgl32.Vec3{-2, 0.5, 3}, mgl32.Vec3{0, 0, -1})

	press(s, src, input.KeyEscape)
	if s.State() != StatePause {
		t.Fatalf("Expected Pause after Escape, got %s", s.State())
	}
	at := b.Location()
	played := s.Player().PlayTime()
	for i := 0; i < 5; i++ {
		s.Tick(1)
	}

	if b.Location() != at || s.Player().PlayTime() != played {
		t.Error("Pause should freeze bullets and play time")
	}

	press(s, src, input.KeyEscape)
	if s.State() != StatePlay {
		t.Errorf("Expected Play after second Escape, got %s", s.State())
	}
}

func TestHeldEscapeDoesNotResume(t *testing.T) {
	s, src, _ := newTestScene(t, config.Default())
	_ = s.SetState(StatePlay)

	src.Press(input.KeyEscape)
	s.ctx.Input.Update()
	s.Tick(0)
	s.ctx.Input.Update()
	s.Tick(0)

	if s.State() != StatePause {
		t.Errorf("Expected a held Escape to stay paused, got %s", s.State())
	}
}

func TestDoneFadeIsClamped(t *testing.T) {
	s, _, _ := newTestScene(t, config.Default())
	_ = s.SetState(StatePlay)
	_ = s.SetState(StateDone)

	s.Tick(0.25)
	if s.StepTime() != 0.25 || s.FadeAlpha() != 0.25 {
		t.Errorf("Expected fade 0.25, got step %v alpha %v", s.StepTime(), s.FadeAlpha())
	}

	s.Tick(10)
	if s.StepTime() != 1 || s.FadeAlpha() != 1 {
		t.Errorf("Expected fade clamped to 1, got step %v alpha %v", s.StepTime(), s.FadeAlpha())
	}
}

func TestResetFromDone(t *testing.T) {
	s, src, _ := newTestScene(t, config.Default())
	_ = s.SetState(StatePlay)
	addBullet(t, s, mgl32.Vec3{-2, 0.5, 3}, mgl32.Vec3{0, 0, -1})
	s.Player().Hit()
	s.Tick(0.1)
	_ = s.SetState(StateDone)
	s.Tick(0.5)

	press(s, src, input.KeyR)

	if s.State() != StateReady {
		t.Fatalf("Expected Ready after reset, got %s", s.State())
	}
	if len(s.Bullets()) != 0 || s.ctx.Objects.Len() != 10 {
		t.Errorf("Expected bullets cleared, got %d bullets and %d objects", len(s.Bullets()), s.ctx.Objects.Len())
	}
	if s.Player().HP() != 3 || s.Player().PlayTime() != 0 {
		t.Errorf("Expected player reset, got hp %d time %v", s.Player().HP(), s.Player().PlayTime())
	}
	if s.StepTime() != 0 {
		t.Errorf("Expected step time reset, got %v", s.StepTime())
	}
}

func TestQuitButton(t *testing.T) {
	s, src, _ := newTestScene(t, config.Default())
	quit := false
	s.ctx.Quit = func() { quit = true }

	press(s, src, input.KeyQ)

	if !quit {
		t.Error("Expected Q to call the quit callback")
	}
}

func TestRenderShadowPassBeforeLitPass(t *testing.T) {
	s, _, _ := newTestScene(t, config.Default())
	rec := renderer.NewRecorder()

	s.Render(rec)

	endShadow := rec.Index("EndShadowPass")
	beginLit := rec.Index("BeginLitPass")
	if endShadow < 0 || beginLit < 0 || endShadow > beginLit {
		t.Fatalf("Expected EndShadowPass before BeginLitPass, got %v", rec.Ops())
	}
	for i, c := range rec.Calls {
		if c.Op == "DrawMesh3D" && i > endShadow {
			t.Errorf("Shadow draw at %d after the shadow pass ended", i)
		}
		if c.Op == "DrawMesh3DShadowed" && i < beginLit {
			t.Errorf("Lit draw at %d before the lit pass began", i)
		}
	}
	// floor, player, 4 walls
	if n := rec.Count("DrawMesh3D"); n != 6 {
		t.Errorf("Expected 6 shadow casters, got %d", n)
	}
	// 6 renderables, 4 spawner backgrounds, 3 spawners with a running countdown
	if n := rec.Count("DrawMesh3DShadowed"); n != 13 {
		t.Errorf("Expected 13 lit draws, got %d", n)
	}
	if rec.Index("BeginFrame") != 0 || rec.Calls[len(rec.Calls)-1].Op != "EndFrame" {
		t.Errorf("Expected the frame bracket around every call, got %v", rec.Ops())
	}
}

func TestRenderSkipsRemovedBullets(t *testing.T) {
	s, _, _ := newTestScene(t, config.Default())
	_ = s.SetState(StatePlay)
	b := addBullet(t, s, mgl32.Vec3{3.9, 0.5, 0}, mgl32.Vec3{1, 0, 0})
	rec := renderer.NewRecorder()

	s.Render(rec)
	if rec.Count("DrawMesh3D") != 7 {
		t.Errorf("Expected live bullet to cast a shadow, got %d casters", rec.Count("DrawMesh3D"))
	}

	s.Tick(0.1)
	rec.Reset()
	s.Render(rec)
	if rec.Count("DrawMesh3D") != 6 {
		t.Errorf("Expected removed bullet excluded, got %d casters", rec.Count("DrawMesh3D"))
	}
	if b.Initialized() {
		t.Error("Expected bullet released")
	}
}

func TestRenderFadeOverlayInDone(t *testing.T) {
	s, _, _ := newTestScene(t, config.Default())
	_ = s.SetState(StatePlay)
	_ = s.SetState(StateDone)
	s.Tick(0.5)
	rec := renderer.NewRecorder()

	s.Render(rec)

	win := s.ctx.Config.Window
	found := false
	for _, c := range rec.Calls {
		if c.Op == "DrawPanel2D" && c.Rect.W == float32(win.Width) && c.Rect.H == float32(win.Height) {
			found = true
			if c.Color.W() != 0.375 {
				t.Errorf("Expected fade alpha 0.375, got %v", c.Color.W())
			}
		}
	}
	if !found {
		t.Error("Expected a full screen fade panel")
	}
}

func TestExitReleasesEverything(t *testing.T) {
	s, _, _ := newTestScene(t, config.Default())
	_ = s.SetState(StatePlay)
	bullet := addBullet(t, s, mgl32.Vec3{-2, 0.5, 3}, mgl32.Vec3{0, 0, -1})
	player := s.Player()
	wall := s.Walls()[0]

	if err := s.Exit(); err != nil {
		t.Fatalf("Exit failed: %v", err)
	}
	if s.ctx.Objects.Len() != 0 {
		t.Errorf("Expected no objects after Exit, got %d", s.ctx.Objects.Len())
	}
	if player.Initialized() {
		t.Error("Expected player released")
	}
	if bullet.Initialized() || wall.Initialized() {
		t.Error("Expected bullet and walls released")
	}
	if stats := s.ctx.Resources.GetStats(); stats.Meshes != 0 || stats.Materials != 0 {
		t.Errorf("Expected an empty resource cache, got %d meshes %d materials", stats.Meshes, stats.Materials)
	}
	if s.Player() != nil || len(s.Bullets()) != 0 || len(s.Walls()) != 0 {
		t.Error("Expected the scene to drop its entity references")
	}

	if err := s.Enter(); err != nil {
		t.Fatalf("Expected scene to enter again, got %v", err)
	}
	if s.ctx.Objects.Len() != 10 {
		t.Errorf("Expected a rebuilt round of 10 objects, got %d", s.ctx.Objects.Len())
	}
	if _, ok := s.ctx.Resources.GetMesh(meshCube); !ok {
		t.Error("Expected the cube mesh to be rebuilt on enter")
	}
}
