// Package app holds the start-up wiring shared by the game binaries: flags,
// configuration, logging and maze selection.
package app

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"chosenoffset.com/chomper/internal/config"
	"chosenoffset.com/chomper/internal/game"
	"chosenoffset.com/chomper/internal/logging"
	"chosenoffset.com/chomper/internal/world/maze"
)

// Options are the command-line flags common to every binary.
type Options struct {
	ConfigPath string
	MazePath   string
	ListDir    string
}

// ParseFlags parses args into Options.
func ParseFlags(name string, args []string, output io.Writer) (Options, error) {
	var opts Options

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.ConfigPath, "config", "chomper.yaml", "path to the YAML config file")
	fs.StringVar(&opts.MazePath, "maze", "", "maze file to play (overrides config)")
	fs.StringVar(&opts.ListDir, "list", "", "list the maze files in a directory and exit")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Runtime is everything a binary needs to start a session.
type Runtime struct {
	Config *config.Config
	Logger zerolog.Logger
	Maze   *maze.Definition
	Seed   int64

	closer io.Closer
}

// Bootstrap loads configuration and the maze and builds the logger.
func Bootstrap(opts Options) (*Runtime, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if opts.MazePath != "" {
		cfg.Maze.Path = opts.MazePath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	def := maze.Classic()
	if cfg.Maze.Path != "" {
		def, err = maze.LoadFile(cfg.Maze.Path)
		if err != nil {
			closer.Close()
			return nil, err
		}
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info().
		Str("maze", def.Name).
		Int64("seed", seed).
		Bool("sticky_keys", cfg.Input.StickyKeys).
		Msg("configuration loaded")

	return &Runtime{
		Config: cfg,
		Logger: logger,
		Maze:   def,
		Seed:   seed,
		closer: closer,
	}, nil
}

// NewSession starts a session with the runtime's maze, rules and seed.
func (r *Runtime) NewSession() *game.Session {
	return game.NewSession(r.Maze, game.RulesFromConfig(r.Config), rand.New(rand.NewSource(r.Seed)), r.Logger)
}

// PrepareTerminal adapts the runtime to a terminal frontend. Terminals never
// report key releases, so sticky keys are forced. Logging is silenced unless it
// goes to a file, since log lines would be drawn over the maze.
func (r *Runtime) PrepareTerminal() {
	if !r.Config.Input.StickyKeys {
		r.Logger.Warn().Msg("sticky_keys is off but the terminal cannot report key releases; using sticky keys")
		r.Config.Input.StickyKeys = true
	}
	if r.Config.Log.File == "" {
		r.Logger = r.Logger.Level(zerolog.Disabled)
	}
}

// Close releases the log file, if any.
func (r *Runtime) Close() error {
	return r.closer.Close()
}

// ListMazes writes one line per maze file found in dir.
func ListMazes(dir string, w io.Writer) error {
	entries, err := maze.Scan(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(w, "no maze files in %s\n", dir)
		return nil
	}
	for _, e := range entries {
		if e.Err != nil {
			fmt.Fprintf(w, "%-20s %s (invalid: %v)\n", e.Name, e.Path, e.Err)
			continue
		}
		fmt.Fprintf(w, "%-20s %s\n", e.Name, e.Path)
	}
	return nil
}
