package engine

import (
	"math"
	"sync"
	"time"

	"github.com/quizkit/quizkit/internal/bank"
)

// State is the session lifecycle phase.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateFinished
	StateReviewing
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateFinished:
		return "finished"
	case StateReviewing:
		return "reviewing"
	}
	return "unknown"
}

// Session tracks one timed or untimed attempt at an assembled question set:
// current position, per-question recorded answers, the countdown, and the
// transitions between navigation, finish and review. The HTTP gateway drives
// a session from concurrent request goroutines and the countdown fires on a
// timer goroutine, so every operation runs under the session mutex; each op
// is synchronous and atomic, none blocks.
type Session struct {
	mu        sync.Mutex
	state     State
	questions []bank.Question
	answers   [][]string
	index     int
	cfg       Config
	scorer    *Scorer
	startedAt time.Time
	deadline  time.Time
	timer     *time.Timer
	gen       uint64
	result    *Result
}

func NewSession(scorer *Scorer) *Session {
	return &Session{state: StateNotStarted, scorer: scorer}
}

// Start moves the session into InProgress over the given question set:
// index reset to 0, all answers cleared, start timestamp recorded, countdown
// armed when the config sets a time limit. Restarting a finished (or
// reviewed, or never-started) session is fine; starting over a running one
// is not — the caller must Exit first.
func (s *Session) Start(questions []bank.Question, cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress {
		return ErrSessionActive
	}
	if len(questions) == 0 {
		return ErrEmptyPool
	}
	s.stopCountdown()
	s.gen++
	s.questions = questions
	s.answers = make([][]string, len(questions))
	s.index = 0
	s.cfg = cfg
	s.result = nil
	s.startedAt = time.Now()
	s.deadline = time.Time{}
	s.state = StateInProgress
	if cfg.TimeLimitSec > 0 {
		d := time.Duration(cfg.TimeLimitSec) * time.Second
		s.deadline = s.startedAt.Add(d)
		gen := s.gen
		s.timer = time.AfterFunc(d, func() { s.timeExpired(gen) })
	}
	return nil
}

// RecordAnswer records a selection for the current question. Single-choice
// and true/false overwrite any prior selection; multiple-choice toggles
// membership, and a set emptied by toggling is unanswered again. Outside
// InProgress this is a no-op.
func (s *Session) RecordAnswer(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress || s.index >= len(s.questions) {
		return
	}
	q := s.questions[s.index]
	if q.Type == bank.TypeMultiple {
		cur := s.answers[s.index]
		for i, v := range cur {
			if v == value {
				cur = append(cur[:i], cur[i+1:]...)
				if len(cur) == 0 {
					cur = nil
				}
				s.answers[s.index] = cur
				return
			}
		}
		s.answers[s.index] = append(cur, value)
		return
	}
	s.answers[s.index] = []string{value}
}

// Advance moves to the next question, or finishes and scores when already
// on the last one. The returned flag reports whether the session finished.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress || len(s.questions) == 0 {
		return false
	}
	if s.index < len(s.questions)-1 {
		s.index++
		return false
	}
	s.finish()
	return true
}

// Retreat moves back one question; a no-op at index 0 or outside InProgress.
func (s *Session) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return
	}
	if s.index > 0 {
		s.index--
	}
}

// Exit abandons the session from any state: countdown cancelled, recorded
// answers discarded, no scoring.
func (s *Session) Exit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopCountdown()
	s.state = StateNotStarted
	s.questions = nil
	s.answers = nil
	s.index = 0
	s.result = nil
}

// EnterReview moves a finished session into read-only review.
func (s *Session) EnterReview() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateFinished && s.state != StateReviewing {
		return ErrNotFinished
	}
	s.state = StateReviewing
	return nil
}

// Result returns the scored summary of a finished (or reviewed) session.
func (s *Session) Result() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, ErrNotFinished
	}
	return *s.result, nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// timeExpired is the countdown callback: finish immediately, scoring
// whatever is recorded so far. timer.Stop cannot cancel a callback that
// already fired and is waiting on the mutex, so the tick carries the
// generation of the run that armed it; a stale tick from a run that has
// since been exited or restarted finds a different generation (or a state
// other than InProgress) and does nothing.
func (s *Session) timeExpired(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.state != StateInProgress {
		return
	}
	s.finish()
}

// finish stops the countdown, scores, and transitions to Finished.
// Callers hold the mutex.
func (s *Session) finish() {
	s.stopCountdown()
	elapsed := int(math.Round(time.Since(s.startedAt).Seconds()))
	r := s.scorer.Score(s.questions, s.answers, elapsed)
	s.result = &r
	s.state = StateFinished
}

// stopCountdown is idempotent; cancelling an already-stopped countdown is a
// no-op. Callers hold the mutex.
func (s *Session) stopCountdown() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
