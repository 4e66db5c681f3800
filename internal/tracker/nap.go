package tracker

import (
	"sync"
	"time"
)

// NapSession is the process-wide singleton shared by all household members:
// the tracked subject is singular, so at most one nap is active at any time
// regardless of who reports it. lastStart is kept after a nap closes, but
// only for friendly messages, never for duration computation.
type NapSession struct {
	mu          sync.Mutex
	activeStart *time.Time
	lastStart   *time.Time
}

type NapStartResult struct {
	Started bool
	// Start is the accepted start time, or the already-recorded one when
	// the transition is rejected as a duplicate.
	Start time.Time
}

type NapEndStatus int

const (
	NapEndClosed NapEndStatus = iota
	NapEndNoActive
	NapEndBeforeStart
)

type NapEndResult struct {
	Status          NapEndStatus
	Start           time.Time
	Stop            time.Time
	DurationSeconds int64
	// LastStart carries the most recent known start for the no-active-nap
	// hint; nil when no nap was ever started.
	LastStart *time.Time
}

// Start records a nap start. A second start while one is active is not an
// error: it is rejected without mutating anything.
func (s *NapSession) Start(t time.Time) NapStartResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeStart != nil {
		return NapStartResult{Started: false, Start: *s.activeStart}
	}
	stamp := t
	s.activeStart = &stamp
	s.lastStart = &stamp
	return NapStartResult{Started: true, Start: stamp}
}

// End closes the active nap. Duration is computed here and nowhere else,
// truncated to whole seconds. Rejected transitions leave the session
// untouched.
func (s *NapSession) End(t time.Time) NapEndResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeStart == nil {
		return NapEndResult{Status: NapEndNoActive, Stop: t, LastStart: s.lastStart}
	}
	start := *s.activeStart
	if t.Before(start) {
		return NapEndResult{Status: NapEndBeforeStart, Start: start, Stop: t}
	}
	duration := int64(t.Sub(start) / time.Second)
	s.lastStart = &start
	s.activeStart = nil
	return NapEndResult{
		Status:          NapEndClosed,
		Start:           start,
		Stop:            t,
		DurationSeconds: duration,
	}
}

// Restore seeds the session from the history store at startup.
func (s *NapSession) Restore(active, last *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeStart = nil
	if active != nil {
		stamp := *active
		s.activeStart = &stamp
	}
	s.lastStart = nil
	if last != nil {
		stamp := *last
		s.lastStart = &stamp
	}
}

// ActiveStart returns a copy of the active nap start, or nil when idle.
func (s *NapSession) ActiveStart() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeStart == nil {
		return nil
	}
	stamp := *s.activeStart
	return &stamp
}

func (s *NapSession) LastStart() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastStart == nil {
		return nil
	}
	stamp := *s.lastStart
	return &stamp
}
