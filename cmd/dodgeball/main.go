package main

import (
	"DodgeBall3D/internal/audio"
	"DodgeBall3D/internal/config"
	"DodgeBall3D/internal/engine"
	"DodgeBall3D/internal/game"
	"DodgeBall3D/internal/logger"
	"DodgeBall3D/internal/playlog"
	"DodgeBall3D/internal/renderer"
	"DodgeBall3D/internal/scene"
	"flag"
	"os"
	"runtime"

	"go.uber.org/zap"
)

var _ scene.Scene = (*game.Scene)(nil)

func main() {
	runtime.LockOSThread()

	configPath := flag.String("config", config.DefaultPath, "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	logger.Init(cfg.Log.Debug)
	defer logger.Sync()
	if err != nil {
		logger.Log.Warn("Using default config", zap.Error(err))
	}

	if err := run(cfg); err != nil {
		logger.Log.Error("DodgeBall3D stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	log, err := playlog.Open(cfg.PlayLog.Path, cfg.PlayLog.MaxRecords)
	if err != nil {
		return err
	}
	defer func() {
		if err := log.Release(); err != nil {
			logger.Log.Error("Failed to save play log", zap.String("path", cfg.PlayLog.Path), zap.Error(err))
		}
	}()

	renderer.Debug = cfg.Log.Debug
	rend := renderer.NewOpenGLRenderer(cfg.Scene.ShadowMapSize)
	scenes := scene.NewManager()

	eng := engine.NewGopher(cfg.Window, rend, scenes)
	if err := eng.Open(); err != nil {
		return err
	}
	// Run closes the engine itself; this covers the setup errors below.
	defer eng.Close()

	var sfx audio.Player
	if cfg.Audio.Enabled {
		sfx = audio.NewDevicePlayer(cfg.Audio.SampleRate, audio.LogPlayer{})
	}
	ctx, err := game.NewContext(cfg, eng.Source(), sfx, log)
	if err != nil {
		return err
	}
	ctx.Audio.SetMuted(cfg.Audio.Muted)
	ctx.Quit = eng.Quit
	eng.SetInput(ctx.Input)

	if err := scenes.Register(game.NewScene(ctx)); err != nil {
		return err
	}
	if err := scenes.Enter(game.SceneName); err != nil {
		return err
	}

	logger.Log.Info("Starting DodgeBall3D",
		zap.Int32("width", cfg.Window.Width),
		zap.Int32("height", cfg.Window.Height),
		zap.String("playlog", cfg.PlayLog.Path))
	eng.Run()
	return nil
}
