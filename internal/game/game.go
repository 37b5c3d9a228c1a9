package game

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"chosenoffset.com/chomper/internal/ai"
	"chosenoffset.com/chomper/internal/core/geom"
	"chosenoffset.com/chomper/internal/entity"
	"chosenoffset.com/chomper/internal/input"
	"chosenoffset.com/chomper/internal/world/maze"
)

// Session holds all state of one play-through of a maze.
type Session struct {
	ID    string
	Maze  *maze.Definition
	Rules Rules

	Avatar       *entity.Avatar
	Adversaries  []*entity.Adversary
	Obstacles    []*entity.Obstacle
	Collectibles []*entity.Collectible
	PowerItems   []*entity.PowerItem

	Score  int
	Status Status

	// Input receives the player's key events between steps.
	Input *input.Resolver

	// OnScore is called with the new total after every score change.
	OnScore func(score int)
	// OnOutcome is called once when the session is won or lost.
	OnOutcome func(Outcome)

	walls      []geom.Rect
	controller *ai.Controller
	scheduler  *Scheduler
	rng        *rand.Rand
	baseLog    zerolog.Logger
	log        zerolog.Logger
}

// NewSession places every entity of def and returns a running session.
func NewSession(def *maze.Definition, rules Rules, rng *rand.Rand, logger zerolog.Logger) *Session {
	layout := maze.Load(def.Grid(), def.CellSize)
	id := uuid.NewString()

	s := &Session{
		ID:           id,
		Maze:         def,
		Rules:        rules,
		Avatar:       entity.NewAvatar(def.AvatarStart(), rules.AvatarSpeed),
		Adversaries:  def.SpawnAdversaries(rules.AdversarySpeed),
		Obstacles:    layout.Obstacles,
		Collectibles: layout.Collectibles,
		PowerItems:   layout.PowerItems,
		Status:       StatusRunning,
		Input:        input.NewResolver(rules.StickyKeys),
		walls:        layout.ObstacleRects(),
		controller:   ai.NewController(rng),
		scheduler:    NewScheduler(),
		rng:          rng,
		baseLog:      logger,
		log:          logger.With().Str("session", id).Str("maze", def.Name).Logger(),
	}

	s.log.Info().
		Int("collectibles", len(s.Collectibles)).
		Int("power_items", len(s.PowerItems)).
		Int("adversaries", len(s.Adversaries)).
		Msg("session started")

	return s
}

// Restart returns a fresh session on the same maze, keeping the rules, random
// source and callbacks.
func (s *Session) Restart() *Session {
	next := NewSession(s.Maze, s.Rules, s.rng, s.baseLog)
	next.OnScore = s.OnScore
	next.OnOutcome = s.OnOutcome
	s.log.Info().Str("next_session", next.ID).Msg("session restarted")
	return next
}

// Tick returns the number of steps taken so far.
func (s *Session) Tick() uint64 {
	return s.scheduler.Now()
}

// Running reports whether the session still accepts steps.
func (s *Session) Running() bool {
	return s.Status == StatusRunning
}

// Walls returns the obstacle rectangles used for collision.
func (s *Session) Walls() []geom.Rect {
	return s.walls
}

// Sprites returns everything to draw, back to front. It does not change the session.
func (s *Session) Sprites() []entity.Sprite {
	sprites := make([]entity.Sprite, 0,
		len(s.Obstacles)+len(s.PowerItems)+len(s.Collectibles)+1+len(s.Adversaries))

	sprites = appendSprites(sprites, s.Obstacles)
	sprites = appendSprites(sprites, s.PowerItems)
	sprites = appendSprites(sprites, s.Collectibles)
	sprites = append(sprites, s.Avatar.Sprite())
	sprites = appendSprites(sprites, s.Adversaries)
	return sprites
}

func appendSprites[T entity.Drawable](dst []entity.Sprite, items []T) []entity.Sprite {
	for _, it := range items {
		dst = append(dst, it.Sprite())
	}
	return dst
}

// adversary looks up a live adversary by ID.
func (s *Session) adversary(id int) *entity.Adversary {
	for _, a := range s.Adversaries {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *Session) addScore(points int) {
	s.Score += points
	if s.OnScore != nil {
		s.OnScore(s.Score)
	}
}

func (s *Session) finish(status Status) {
	s.Status = status
	outcome := Outcome{Status: status, Score: s.Score, Tick: s.Tick()}

	s.log.Info().
		Stringer("status", status).
		Int("score", s.Score).
		Uint64("tick", outcome.Tick).
		Msg("session ended")

	if s.OnOutcome != nil {
		s.OnOutcome(outcome)
	}
}
