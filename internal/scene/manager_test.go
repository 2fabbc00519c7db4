package scene

import (
	"errors"
	"testing"

	"DodgeBall3D/internal/renderer"
)

type mockScene struct {
	name     string
	events   []string
	enterErr error
	width    int32
}

func (s *mockScene) Name() string { return s.name }

func (s *mockScene) Enter() error {
	s.events = append(s.events, "enter")
	return s.enterErr
}

func (s *mockScene) Exit() error {
	s.events = append(s.events, "exit")
	return nil
}

func (s *mockScene) Tick(dt float32) { s.events = append(s.events, "tick") }

func (s *mockScene) Render(r renderer.Render) {
	s.events = append(s.events, "render")
	r.BeginFrame([3]float32{})
	r.EndFrame()
}

func (s *mockScene) Resize(width, height int32) { s.width = width }

func TestRegisterDuplicate(t *testing.T) {
	m := NewManager()
	if err := m.Register(&mockScene{name: "game"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := m.Register(&mockScene{name: "game"}); !errors.Is(err, ErrSceneExists) {
		t.Errorf("Expected ErrSceneExists, got %v", err)
	}
}

func TestEnterUnknown(t *testing.T) {
	m := NewManager()
	if err := m.Enter("nothing"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestEnterSwitchesScenes(t *testing.T) {
	m := NewManager()
	menu := &mockScene{name: "menu"}
	game := &mockScene{name: "game"}
	_ = m.Register(menu)
	_ = m.Register(game)

	if err := m.Enter("menu"); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	if err := m.Enter("game"); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}

	if m.Current() != game {
		t.Error("Expected game to be current")
	}
	if len(menu.events) != 2 || menu.events[1] != "exit" {
		t.Errorf("Expected menu to enter then exit, got %v", menu.events)
	}
}

func TestTickAndRenderCurrentOnly(t *testing.T) {
	m := NewManager()
	game := &mockScene{name: "game"}
	idle := &mockScene{name: "idle"}
	_ = m.Register(game)
	_ = m.Register(idle)
	_ = m.Enter("game")

	rec := renderer.NewRecorder()
	m.Tick(0.016)
	m.Render(rec)
	m.Resize(640, 480)

	want := []string{"enter", "tick", "render"}
	if len(game.events) != len(want) {
		t.Fatalf("Expected %v, got %v", want, game.events)
	}
	for i := range want {
		if game.events[i] != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], game.events[i])
		}
	}
	if len(idle.events) != 0 {
		t.Errorf("Inactive scene should not run, got %v", idle.events)
	}
	if game.width != 640 {
		t.Errorf("Expected resize forwarded, got %d", game.width)
	}
	if rec.Count("BeginFrame") != 1 {
		t.Errorf("Expected one frame rendered, got %d", rec.Count("BeginFrame"))
	}
}

func TestFailedEnterLeavesNoCurrent(t *testing.T) {
	m := NewManager()
	_ = m.Register(&mockScene{name: "broken", enterErr: errors.New("boom")})

	if err := m.Enter("broken"); err == nil {
		t.Error("Expected enter error")
	}
	if m.Current() != nil {
		t.Error("Failed scene should not become current")
	}
	m.Tick(1)
	if err := m.Exit(); err != nil {
		t.Errorf("Exit without a scene should be a no-op, got %v", err)
	}
}
