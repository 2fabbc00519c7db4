package audio

import (
	"DodgeBall3D/internal/logger"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrSoundExists     = errors.New("sound already registered")
	ErrUnknownSound    = errors.New("unknown sound")
	ErrClipUnavailable = errors.New("sound clip unavailable")
)

type Sound struct {
	Name   string
	Path   string
	Volume float32
}

// Player outputs a sound cue.
type Player interface {
	Play(sound Sound) error
}

// LogPlayer writes every cue to the process logger instead of a device.
type LogPlayer struct{}

func (LogPlayer) Play(sound Sound) error {
	logger.Log.Info("Sound cue",
		zap.String("sound", sound.Name),
		zap.String("path", sound.Path),
		zap.Float32("volume", sound.Volume))
	return nil
}

// Manager maps cue names onto registered sounds and forwards them to a Player.
type Manager struct {
	player Player
	sounds map[string]Sound
	muted  bool
}

// NewManager falls back to LogPlayer when player is nil.
func NewManager(player Player) *Manager {
	if player == nil {
		player = LogPlayer{}
	}
	return &Manager{
		player: player,
		sounds: make(map[string]Sound),
	}
}

func (m *Manager) Register(name, path string, volume float32) error {
	if _, exists := m.sounds[name]; exists {
		return fmt.Errorf("register %q: %w", name, ErrSoundExists)
	}
	m.sounds[name] = Sound{Name: name, Path: path, Volume: volume}
	return nil
}

func (m *Manager) Play(name string) error {
	sound, ok := m.sounds[name]
	if !ok {
		return fmt.Errorf("play %q: %w", name, ErrUnknownSound)
	}
	if m.muted {
		return nil
	}
	if err := m.player.Play(sound); err != nil {
		return fmt.Errorf("play %q: %w", name, err)
	}
	return nil
}

func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
}

func (m *Manager) Muted() bool {
	return m.muted
}
