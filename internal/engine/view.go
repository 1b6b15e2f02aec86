package engine

import (
	"time"

	"github.com/quizkit/quizkit/internal/bank"
)

// QuestionView is the read-only projection of the current question plus the
// recorded answer, shaped for rendering. Option correctness flags are
// stripped; the collaborator only learns them from the result breakdown.
type QuestionView struct {
	Index     int               `json:"index"`
	Total     int               `json:"total"`
	State     string            `json:"state"`
	Text      string            `json:"text"`
	Type      bank.QuestionType `json:"type"`
	Options   []string          `json:"options"`
	Selected  []string          `json:"selected"`
	Unlimited bool              `json:"unlimited"`
	Remaining int               `json:"remaining_seconds"`
}

// View projects the current question; ok is false when the session is not
// in progress.
func (s *Session) View() (QuestionView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress || s.index >= len(s.questions) {
		return QuestionView{State: s.state.String()}, false
	}
	q := s.questions[s.index]
	v := QuestionView{
		Index:     s.index,
		Total:     len(s.questions),
		State:     s.state.String(),
		Text:      q.Text,
		Type:      q.Type,
		Options:   make([]string, 0, len(q.Options)),
		Selected:  append([]string(nil), s.answers[s.index]...),
		Unlimited: s.deadline.IsZero(),
	}
	for _, o := range q.Options {
		v.Options = append(v.Options, o.Text)
	}
	if !s.deadline.IsZero() {
		if rem := time.Until(s.deadline); rem > 0 {
			v.Remaining = int(rem.Seconds())
		}
	}
	return v, true
}
