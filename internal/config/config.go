package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where the game looks for its config when none is given.
const DefaultPath = "dodgeball.toml"

type Window struct {
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Player struct {
	Speed  float32    `toml:"speed"`
	Radius float32    `toml:"radius"`
	Lives  int        `toml:"lives"`
	Start  [3]float32 `toml:"start"`
}

type Bullet struct {
	Speed  float32 `toml:"speed"`
	Radius float32 `toml:"radius"`
}

type Spawner struct {
	RespawnTime float32 `toml:"respawn_time"`
	// Offsets stagger the first shot of each spawner so they do not fire together.
	Offsets [4]float32 `toml:"offsets"`
}

type Scene struct {
	ArenaHalfSize  float32 `toml:"arena_half_size"`
	WallThickness  float32 `toml:"wall_thickness"`
	FadeInStepTime float32 `toml:"fade_in_step_time"`
	ShadowMapSize  int32   `toml:"shadow_map_size"`
	FloorSeed      int64   `toml:"floor_seed"`
}

type PlayLog struct {
	Path       string `toml:"path"`
	MaxRecords int    `toml:"max_records"`
}

type Audio struct {
	Enabled    bool `toml:"enabled"`
	SampleRate int  `toml:"sample_rate"`
	Muted      bool `toml:"muted"`
}

type Log struct {
	Debug bool `toml:"debug"`
}

// Config is the full game configuration.
type Config struct {
	Window  Window  `toml:"window"`
	Player  Player  `toml:"player"`
	Bullet  Bullet  `toml:"bullet"`
	Spawner Spawner `toml:"spawner"`
	Scene   Scene   `toml:"scene"`
	PlayLog PlayLog `toml:"playlog"`
	Audio   Audio   `toml:"audio"`
	Log     Log     `toml:"log"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "DodgeBall3D",
			VSync:  true,
		},
		Player: Player{
			Speed:  5.0,
			Radius: 0.5,
			Lives:  3,
			Start:  [3]float32{0, 0.5, 0},
		},
		Bullet: Bullet{
			Speed:  5.0,
			Radius: 0.25,
		},
		Spawner: Spawner{
			RespawnTime: 2.0,
			Offsets:     [4]float32{0, 0.5, 1.0, 1.5},
		},
		Scene: Scene{
			ArenaHalfSize:  4.5,
			WallThickness:  1.0,
			FadeInStepTime: 1.0,
			ShadowMapSize:  2048,
			FloorSeed:      42,
		},
		PlayLog: PlayLog{
			Path:       "playlog.bin",
			MaxRecords: 10,
		},
		Audio: Audio{
			Enabled:    true,
			SampleRate: 44100,
		},
	}
}

// Load reads a TOML file on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.New("window size must be positive")
	case c.Player.Speed <= 0:
		return errors.New("player speed must be positive")
	case c.Player.Radius <= 0 || c.Bullet.Radius <= 0:
		return errors.New("collider radius must be positive")
	case c.Player.Lives <= 0:
		return errors.New("player lives must be at least 1")
	case c.Spawner.RespawnTime <= 0:
		return errors.New("spawner respawn_time must be positive")
	case c.Scene.ArenaHalfSize <= c.Player.Radius:
		return errors.New("arena is smaller than the player")
	case c.Scene.FadeInStepTime <= 0:
		return errors.New("scene fade_in_step_time must be positive")
	case c.PlayLog.MaxRecords <= 0:
		return errors.New("playlog max_records must be positive")
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return errors.New("audio sample_rate must be positive")
	}
	return nil
}
