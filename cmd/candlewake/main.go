package main

import (
	"errors"
	"flag"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/candlewake/internal/assets"
	"chosenoffset.com/candlewake/internal/audio"
	"chosenoffset.com/candlewake/internal/game"
	"chosenoffset.com/candlewake/internal/logger"
	ebitenrender "chosenoffset.com/candlewake/internal/render/ebiten"
	"chosenoffset.com/candlewake/internal/simulation"
)

func main() {
	seed := flag.Int64("seed", 0, "map seed (0 seeds from the clock)")
	scale := flag.Int("scale", 10, "window pixels per screen pixel")
	mute := flag.Bool("mute", false, "disable audio")
	spriteDir := flag.String("sprites", assets.DefaultDir, "directory to load sprite sheets from")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Log.Warnf("Failed to read .env: %v", err)
	}
	logger.Init()

	cfg := simulation.DefaultConfig()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	var sound audio.Service = audio.Silent{}
	if !*mute {
		spk := audio.NewSpeaker()
		if err := spk.Initialize(); err != nil {
			logger.Log.WithError(err).Warn("Audio unavailable, continuing without sound")
		} else {
			defer spk.Close()
			sound = spk
		}
	}

	env := &game.Env{
		Config:   cfg,
		Renderer: renderer,
		Assets:   assets.Load(renderer, loader, *spriteDir),
		Audio:    sound,
		Seed:     *seed,
	}
	manager := game.NewManager(env, inputMgr)

	// Set up the window
	size := cfg.World.ViewSize * *scale
	engine.SetWindowSize(size, size)
	engine.SetWindowTitle("Candlewake")
	engine.SetWindowResizable(true)
	engine.SetTPS(simulation.TargetTPS)

	logger.Log.WithFields(logrus.Fields{
		"seed":  *seed,
		"scale": *scale,
		"mute":  *mute,
	}).Info("Starting game")
	if err := engine.RunGame(manager); err != nil {
		logger.Log.WithError(err).Fatal("Game loop failed")
	}
	logger.Log.Info("Goodbye")
}
