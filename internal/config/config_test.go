package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	data := `
[player]
speed = 7.5
lives = 1

[spawner]
respawn_time = 0.5

[playlog]
path = "scores.bin"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Player.Speed != 7.5 {
		t.Errorf("Expected player speed 7.5, got %f", cfg.Player.Speed)
	}
	if cfg.Player.Lives != 1 {
		t.Errorf("Expected 1 life, got %d", cfg.Player.Lives)
	}
	if cfg.Spawner.RespawnTime != 0.5 {
		t.Errorf("Expected respawn time 0.5, got %f", cfg.Spawner.RespawnTime)
	}
	if cfg.PlayLog.Path != "scores.bin" {
		t.Errorf("Expected playlog path scores.bin, got %s", cfg.PlayLog.Path)
	}
	// Untouched values keep their defaults
	if cfg.Player.Radius != Default().Player.Radius {
		t.Errorf("Player radius should keep default, got %f", cfg.Player.Radius)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[player]\nspeed = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject a negative player speed")
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[player\nspeed = "), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should fail on malformed TOML")
	}
}

func TestLoadAudioSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio.toml")
	if err := os.WriteFile(path, []byte("[audio]\nmuted = true\nsample_rate = 48000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Audio.Enabled {
		t.Error("Audio should stay enabled by default")
	}
	if !cfg.Audio.Muted || cfg.Audio.SampleRate != 48000 {
		t.Errorf("Expected muted audio at 48000 Hz, got %+v", cfg.Audio)
	}
}

func TestValidateAudioSampleRate(t *testing.T) {
	cfg := Default()
	cfg.Audio.SampleRate = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject a zero sample rate")
	}

	cfg.Audio.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("Disabled audio should not need a sample rate: %v", err)
	}
}
