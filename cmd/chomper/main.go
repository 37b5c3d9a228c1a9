package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"chosenoffset.com/chomper/internal/app"
	"chosenoffset.com/chomper/internal/game"
	ebitenrender "chosenoffset.com/chomper/internal/render/ebiten"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := app.ParseFlags("chomper", os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.ListDir != "" {
		return app.ListMazes(opts.ListDir, os.Stdout)
	}

	rt, err := app.Bootstrap(opts)
	if err != nil {
		return err
	}
	defer rt.Close()
	log.Logger = rt.Logger

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.Error().Err(err).Msg("failed to create renderer")
		return err
	}
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	manager := game.NewManager(renderer, inputMgr, rt.NewSession(), rt.Logger)

	// Set up the window
	scale := rt.Config.Window.Scale
	engine.SetWindowSize(int(float64(manager.ScreenWidth)*scale), int(float64(manager.ScreenHeight)*scale))
	engine.SetWindowTitle(rt.Config.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(game.TicksPerSecond)

	log.Info().Msg("starting game")
	if err := engine.RunGame(manager); err != nil {
		log.Error().Err(err).Msg("game loop failed")
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
