package engine

import (
	"errors"

	"github.com/quizkit/quizkit/internal/bank"
)

// Mode selects which quizzes feed the question pool.
type Mode string

const (
	// ModeSpecific draws from one or more explicitly chosen quizzes.
	ModeSpecific Mode = "specific"
	// ModeRandom samples across every quiz in the bank.
	ModeRandom Mode = "random"
	// ModeAll takes every quiz and ignores the configured question count.
	ModeAll Mode = "all"
)

// Selection is the quiz-mode choice supplied before a session starts.
type Selection struct {
	Mode      Mode
	QuizNames []string
}

// Config is copied into the session at start; it is not shared afterwards.
type Config struct {
	QuestionCount    int
	TimeLimitSec     int // 0 = unlimited
	ShuffleQuestions bool
	ShuffleAnswers   bool
}

// Configuration errors, surfaced to the caller before a session starts.
var (
	ErrUnknownMode     = errors.New("unknown quiz mode")
	ErrNoQuizSelected  = errors.New("no quiz selected")
	ErrEmptyPool       = errors.New("selection resolves to zero questions")
	ErrInvalidCount    = errors.New("question count must be positive")
	ErrSessionActive   = errors.New("session already in progress")
	ErrNotFinished     = errors.New("session not finished")
)

// Build assembles the concrete ordered question list for one session:
// gather the selected quizzes' questions, dedupe, optionally shuffle,
// truncate to the configured count (except in all mode), then clone each
// question and optionally shuffle its options. The returned questions are
// session-owned copies; the bank's originals are never mutated.
func Build(b *bank.Bank, sel Selection, cfg Config) ([]bank.Question, error) {
	var gathered []bank.Question
	switch sel.Mode {
	case ModeSpecific:
		if len(sel.QuizNames) == 0 {
			return nil, ErrNoQuizSelected
		}
		gathered = b.Questions(sel.QuizNames...)
	case ModeRandom, ModeAll:
		gathered = b.AllQuestions()
	default:
		return nil, ErrUnknownMode
	}

	pool := Dedupe(gathered)
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	if cfg.ShuffleQuestions {
		Shuffle(pool)
	}
	if sel.Mode != ModeAll {
		if cfg.QuestionCount < 1 {
			return nil, ErrInvalidCount
		}
		pool = Limit(pool, cfg.QuestionCount)
	}

	out := make([]bank.Question, len(pool))
	for i, q := range pool {
		out[i] = q.Clone()
		if cfg.ShuffleAnswers && len(out[i].Options) > 0 {
			Shuffle(out[i].Options)
		}
	}
	return out, nil
}

// PoolSize reports how many unique questions a selection can draw from,
// for the settings screen's "max available" display.
func PoolSize(b *bank.Bank, sel Selection) (int, error) {
	switch sel.Mode {
	case ModeSpecific:
		if len(sel.QuizNames) == 0 {
			return 0, ErrNoQuizSelected
		}
		return len(Dedupe(b.Questions(sel.QuizNames...))), nil
	case ModeRandom, ModeAll:
		return len(Dedupe(b.AllQuestions())), nil
	default:
		return 0, ErrUnknownMode
	}
}
