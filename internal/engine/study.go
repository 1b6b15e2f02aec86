package engine

import (
	"sync"

	"github.com/quizkit/quizkit/internal/bank"
)

// Study is read-only sequential browsing of one quiz's questions with the
// correct answers revealed. It never enters the scored flow: no answer
// recording, no countdown, no scoring.
type Study struct {
	mu        sync.Mutex
	quiz      string
	questions []bank.Question
	index     int
}

func NewStudy(q bank.Quiz) *Study {
	return &Study{quiz: q.Name, questions: q.Questions}
}

// Advance moves to the next question; past the last one it reports done,
// which tells the collaborator to exit study mode.
func (s *Study) Advance() (done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index < len(s.questions)-1 {
		s.index++
		return false
	}
	return true
}

// Retreat moves back one question; a no-op at index 0.
func (s *Study) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index > 0 {
		s.index--
	}
}

// StudyView exposes the full question, including option correctness and the
// canonical answers.
type StudyView struct {
	Quiz           string        `json:"quiz"`
	Index          int           `json:"index"`
	Total          int           `json:"total"`
	Question       bank.Question `json:"question"`
	CorrectAnswers []string      `json:"correct_answers"`
}

func (s *Study) View() (StudyView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index >= len(s.questions) {
		return StudyView{}, false
	}
	q := s.questions[s.index]
	return StudyView{
		Quiz:           s.quiz,
		Index:          s.index,
		Total:          len(s.questions),
		Question:       q,
		CorrectAnswers: q.CorrectAnswers,
	}, true
}
