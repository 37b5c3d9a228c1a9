package game

import (
	"chosenoffset.com/chomper/internal/core/geom"
)

// Step advances the session by one tick. It does nothing once the session has
// been won or lost.
func (s *Session) Step() {
	if s.Status != StatusRunning {
		return
	}

	s.scheduler.Advance()

	s.Input.Resolve(s.Avatar, s.walls)

	if s.checkAdversaryContact() {
		return
	}

	if len(s.Collectibles) == 0 {
		s.finish(StatusWon)
		return
	}

	s.collectPowerItems()
	s.collectCollectibles()

	// A velocity that would run into a wall stops the avatar on both axes.
	if geom.FirstCollision(s.Avatar.Circle(), s.Avatar.Vel, s.walls) >= 0 {
		s.Avatar.Vel = geom.Vec{}
	}

	s.Avatar.Update()

	if s.moveAdversaries() {
		return
	}

	s.Avatar.Face()
}

// checkAdversaryContact removes scared adversaries touching the avatar and
// ends the session when an unscared one does. It reports whether the session ended.
func (s *Session) checkAdversaryContact() bool {
	avatar := s.Avatar.Circle()

	for i := len(s.Adversaries) - 1; i >= 0; i-- {
		a := s.Adversaries[i]
		if !geom.Touching(a.Circle(), avatar) {
			continue
		}

		if !a.Scared {
			s.finish(StatusLost)
			return true
		}

		s.Adversaries = append(s.Adversaries[:i], s.Adversaries[i+1:]...)
		s.log.Info().Int("adversary", a.ID).Str("color", a.Color).Msg("adversary eaten")
	}
	return false
}

func (s *Session) collectPowerItems() {
	avatar := s.Avatar.Circle()

	for i := len(s.PowerItems) - 1; i >= 0; i-- {
		if !geom.Touching(s.PowerItems[i].Circle(), avatar) {
			continue
		}
		s.PowerItems = append(s.PowerItems[:i], s.PowerItems[i+1:]...)
		s.scareAdversaries()
	}
}

// scareAdversaries scares every live adversary and schedules each one's own
// recovery. Recoveries from earlier power items are left in place.
func (s *Session) scareAdversaries() {
	for _, a := range s.Adversaries {
		a.Scared = true
		id := a.ID
		s.scheduler.After(s.Rules.ScaredTicks, func() {
			// The adversary may have been eaten in the meantime.
			if adv := s.adversary(id); adv != nil {
				adv.Scared = false
			}
		})
	}

	s.log.Debug().
		Int("adversaries", len(s.Adversaries)).
		Uint64("until_tick", s.Tick()+s.Rules.ScaredTicks).
		Msg("power item eaten")
}

func (s *Session) collectCollectibles() {
	avatar := s.Avatar.Circle()

	for i := len(s.Collectibles) - 1; i >= 0; i-- {
		if !geom.Touching(s.Collectibles[i].Circle(), avatar) {
			continue
		}
		s.Collectibles = append(s.Collectibles[:i], s.Collectibles[i+1:]...)
		s.addScore(s.Rules.CollectiblePoints)
	}
}

// moveAdversaries moves and steers every adversary. It reports whether an
// unscared adversary reached the avatar.
func (s *Session) moveAdversaries() bool {
	for _, a := range s.Adversaries {
		a.Update()

		if !a.Scared && geom.Touching(a.Circle(), s.Avatar.Circle()) {
			s.finish(StatusLost)
			return true
		}

		s.controller.Steer(a, s.walls)
	}
	return false
}
