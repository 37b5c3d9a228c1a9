package game

import "sort"

// Scheduler runs callbacks at future simulation ticks. Callbacks due on the same
// tick run in the order they were scheduled.
type Scheduler struct {
	now    uint64
	seq    uint64
	events []scheduledEvent // sorted by (at, seq)
}

type scheduledEvent struct {
	at  uint64
	seq uint64
	fn  func()
}

// NewScheduler creates a scheduler at tick 0.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current tick.
func (s *Scheduler) Now() uint64 {
	return s.now
}

// At schedules fn to run when the clock reaches tick. Ticks in the past run on
// the next Advance.
func (s *Scheduler) At(tick uint64, fn func()) {
	ev := scheduledEvent{at: tick, seq: s.seq, fn: fn}
	s.seq++

	i := sort.Search(len(s.events), func(i int) bool {
		e := s.events[i]
		return e.at > ev.at || (e.at == ev.at && e.seq > ev.seq)
	})
	s.events = append(s.events, scheduledEvent{})
	copy(s.events[i+1:], s.events[i:])
	s.events[i] = ev
}

// After schedules fn to run delay ticks from now.
func (s *Scheduler) After(delay uint64, fn func()) {
	s.At(s.now+delay, fn)
}

// Advance moves the clock forward one tick and runs everything now due.
// It returns the number of callbacks run.
func (s *Scheduler) Advance() int {
	s.now++

	n := 0
	for len(s.events) > 0 && s.events[0].at <= s.now {
		ev := s.events[0]
		s.events = s.events[1:]
		ev.fn()
		n++
	}
	return n
}

// Pending returns the number of callbacks waiting to run.
func (s *Scheduler) Pending() int {
	return len(s.events)
}
