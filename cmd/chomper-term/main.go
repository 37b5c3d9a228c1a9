package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"chosenoffset.com/chomper/internal/app"
	"chosenoffset.com/chomper/internal/game"
	"chosenoffset.com/chomper/internal/render/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := app.ParseFlags("chomper-term", os.Args[1:], os.Stderr)
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

	rt.PrepareTerminal()
	log.Logger = rt.Logger

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frontend := terminal.New(screen, rt.NewSession(), game.TicksPerSecond, log.Logger)
	if err := frontend.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
