package scene

import (
	"DodgeBall3D/internal/logger"
	"DodgeBall3D/internal/renderer"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrSceneExists  = errors.New("scene already registered")
	ErrUnknownScene = errors.New("unknown scene")
)

// Scene is one screen of the game. Enter builds its objects and Exit releases
// them; in between the manager ticks and renders it once per frame.
type Scene interface {
	Name() string
	Enter() error
	Exit() error
	Tick(dt float32)
	Render(r renderer.Render)
}

// Resizer is implemented by scenes that react to window size changes.
type Resizer interface {
	Resize(width, height int32)
}

type Manager struct {
	scenes  map[string]Scene
	current Scene
}

func NewManager() *Manager {
	return &Manager{scenes: make(map[string]Scene)}
}

func (m *Manager) Register(s Scene) error {
	if _, exists := m.scenes[s.Name()]; exists {
		return fmt.Errorf("register %q: %w", s.Name(), ErrSceneExists)
	}
	m.scenes[s.Name()] = s
	return nil
}

// Enter exits the current scene, if any, and enters the named one.
func (m *Manager) Enter(name string) error {
	next, ok := m.scenes[name]
	if !ok {
		return fmt.Errorf("enter %q: %w", name, ErrUnknownScene)
	}
	if err := m.Exit(); err != nil {
		return err
	}
	if err := next.Enter(); err != nil {
		return fmt.Errorf("enter %q: %w", name, err)
	}
	m.current = next
	logger.Log.Info("Scene active", zap.String("scene", name))
	return nil
}

// Exit leaves the current scene. Without one it does nothing.
func (m *Manager) Exit() error {
	if m.current == nil {
		return nil
	}
	name := m.current.Name()
	err := m.current.Exit()
	m.current = nil
	if err != nil {
		return fmt.Errorf("exit %q: %w", name, err)
	}
	return nil
}

func (m *Manager) Current() Scene {
	return m.current
}

func (m *Manager) Tick(dt float32) {
	if m.current != nil {
		m.current.Tick(dt)
	}
}

func (m *Manager) Render(r renderer.Render) {
	if m.current != nil {
		m.current.Render(r)
	}
}

func (m *Manager) Resize(width, height int32) {
	if rs, ok := m.current.(Resizer); ok {
		rs.Resize(width, height)
	}
}
