package engine

import (
	"math"
	"strings"

	"github.com/quizkit/quizkit/internal/bank"
)

// QuestionResult is the per-question breakdown line of a Result.
type QuestionResult struct {
	Question       bank.Question `json:"question"`
	Recorded       []string      `json:"recorded"`
	CorrectAnswers []string      `json:"correct_answers"`
	IsCorrect      bool          `json:"is_correct"`
}

// Result is the scored outcome of a finished session. It is created once at
// finish time and never mutated.
type Result struct {
	Total          int              `json:"total"`
	Correct        int              `json:"correct"`
	Incorrect      int              `json:"incorrect"`
	Percentage     int              `json:"percentage"`
	ElapsedSeconds int              `json:"elapsed_seconds"`
	Breakdown      []QuestionResult `json:"breakdown"`
}

// strategy decides correctness for one question type.
type strategy interface {
	correct(q bank.Question, recorded []string) bool
}

// Scorer routes by question type to the matching strategy. Unanswered
// questions and questions without an answer key are simply incorrect;
// nothing here ever fails.
type Scorer struct {
	strategies map[bank.QuestionType]strategy
}

func NewScorer() *Scorer {
	return &Scorer{
		strategies: map[bank.QuestionType]strategy{
			bank.TypeSingle:    singleStrategy{},
			bank.TypeTrueFalse: trueFalseStrategy{},
			bank.TypeMultiple:  multiStrategy{},
		},
	}
}

// Score is pure and deterministic given its inputs. answers[i] holds the
// recorded selections for questions[i]; nil or empty means unanswered.
// elapsedSeconds is caller-supplied wall-clock duration and is reported
// as-is.
func (s *Scorer) Score(questions []bank.Question, answers [][]string, elapsedSeconds int) Result {
	res := Result{
		Total:          len(questions),
		ElapsedSeconds: elapsedSeconds,
		Breakdown:      make([]QuestionResult, 0, len(questions)),
	}
	for i, q := range questions {
		var recorded []string
		if i < len(answers) {
			recorded = answers[i]
		}
		ok := false
		if len(recorded) > 0 && len(q.CorrectAnswers) > 0 {
			if st, found := s.strategies[q.Type]; found {
				ok = st.correct(q, recorded)
			}
		}
		if ok {
			res.Correct++
		}
		res.Breakdown = append(res.Breakdown, QuestionResult{
			Question:       q,
			Recorded:       recorded,
			CorrectAnswers: q.CorrectAnswers,
			IsCorrect:      ok,
		})
	}
	res.Incorrect = res.Total - res.Correct
	if res.Total > 0 {
		res.Percentage = int(math.Round(100 * float64(res.Correct) / float64(res.Total)))
	}
	return res
}

// --- Strategies ---

type singleStrategy struct{}

func (singleStrategy) correct(q bank.Question, recorded []string) bool {
	got := normalize(recorded[0])
	for _, k := range q.CorrectAnswers {
		if normalize(k) == got {
			return true
		}
	}
	return false
}

type trueFalseStrategy struct{}

func (trueFalseStrategy) correct(q bank.Question, recorded []string) bool {
	// well-formed data has exactly one answer; malformed extras are ignored
	return normalize(recorded[0]) == normalize(q.CorrectAnswers[0])
}

type multiStrategy struct{}

func (multiStrategy) correct(q bank.Question, recorded []string) bool {
	// exact set equality, no partial credit: one extra or one missing
	// selection fails the whole question
	return setEqual(toSet(recorded), toSet(q.CorrectAnswers))
}

// --- helpers ---

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toSet(arr []string) map[string]struct{} {
	m := make(map[string]struct{}, len(arr))
	for _, s := range arr {
		m[normalize(s)] = struct{}{}
	}
	return m
}

func setEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
