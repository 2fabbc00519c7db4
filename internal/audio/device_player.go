package audio

import (
	"DodgeBall3D/internal/logger"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"go.uber.org/zap"
)

const DefaultSampleRate = 44100

// voice is one loaded clip that can be restarted.
type voice interface {
	Rewind() error
	SetVolume(volume float64)
	Play()
}

// DevicePlayer plays WAV clips on the default output device. Each sound path is
// decoded once and its voice reused, so a cue retriggered while playing
// restarts from the beginning. Clips that cannot be loaded go to the fallback.
type DevicePlayer struct {
	fallback Player
	load     func(path string) (voice, error)
	voices   map[string]voice
	missing  map[string]bool
}

// NewDevicePlayer opens the process audio context. Only one may exist per
// process.
func NewDevicePlayer(sampleRate int, fallback Player) *DevicePlayer {
	ctx := audio.NewContext(sampleRate)
	return newDevicePlayer(func(path string) (voice, error) {
		pcm, err := LoadClip(path, sampleRate)
		if err != nil {
			return nil, err
		}
		return ctx.NewPlayerFromBytes(pcm), nil
	}, fallback)
}

func newDevicePlayer(load func(path string) (voice, error), fallback Player) *DevicePlayer {
	return &DevicePlayer{
		fallback: fallback,
		load:     load,
		voices:   make(map[string]voice),
		missing:  make(map[string]bool),
	}
}

func (p *DevicePlayer) Play(sound Sound) error {
	v, err := p.voice(sound.Path)
	if err != nil {
		if p.fallback != nil {
			return p.fallback.Play(sound)
		}
		return err
	}
	if err := v.Rewind(); err != nil {
		return fmt.Errorf("rewind %s: %w", sound.Path, err)
	}
	v.SetVolume(float64(sound.Volume))
	v.Play()
	return nil
}

func (p *DevicePlayer) voice(path string) (voice, error) {
	if v, ok := p.voices[path]; ok {
		return v, nil
	}
	if p.missing[path] {
		return nil, fmt.Errorf("load %s: %w", path, ErrClipUnavailable)
	}
	v, err := p.load(path)
	if err != nil {
		// warn once, later cues go straight to the fallback
		p.missing[path] = true
		logger.Log.Warn("Sound clip unavailable", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	p.voices[path] = v
	logger.Log.Debug("Sound clip loaded", zap.String("path", path))
	return v, nil
}

// LoadClip decodes a WAV file into 16 bit stereo PCM at sampleRate.
func LoadClip(path string, sampleRate int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return pcm, nil
}
