package game

import (
	"DodgeBall3D/internal/audio"
	"DodgeBall3D/internal/behaviour"
	"DodgeBall3D/internal/config"
	"DodgeBall3D/internal/input"
	"DodgeBall3D/internal/playlog"
	"DodgeBall3D/internal/resource"
	"fmt"
)

const (
	SoundStart    = "start"
	SoundPause    = "pause"
	SoundHit      = "hit"
	SoundGameOver = "gameover"
)

var sounds = []struct {
	name   string
	volume float32
}{
	{SoundStart, 0.8},
	{SoundPause, 0.5},
	{SoundHit, 1.0},
	{SoundGameOver, 1.0},
}

// Context bundles the managers a scene and its entities work with. Tests build
// a fresh one each.
type Context struct {
	Config    config.Config
	Resources *resource.Manager
	Objects   *behaviour.ObjectManager
	Input     *input.Manager
	Audio     *audio.Manager
	// PlayLog may be nil, play times are then only logged.
	PlayLog *playlog.Logger
	// Quit is called by the quit button.
	Quit func()
}

func NewContext(cfg config.Config, source input.Source, player audio.Player, log *playlog.Logger) (*Context, error) {
	sfx := audio.NewManager(player)
	for _, s := range sounds {
		if err := sfx.Register(s.name, fmt.Sprintf("assets/sounds/%s.wav", s.name), s.volume); err != nil {
			return nil, err
		}
	}
	return &Context{
		Config:    cfg,
		Resources: resource.NewManager(),
		Objects:   behaviour.NewObjectManager(),
		Input:     input.NewManager(source),
		Audio:     sfx,
		PlayLog:   log,
	}, nil
}
