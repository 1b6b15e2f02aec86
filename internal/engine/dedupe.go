// Package engine holds the question-set assembly and scoring core: pure
// transforms over bank questions plus the session state machine that tracks
// a single attempt from start to finish.
package engine

import (
	"strings"

	"github.com/quizkit/quizkit/internal/bank"
)

// Dedupe filters a question list to unique entries keyed by question text,
// lower-cased and trimmed of surrounding whitespace. Order is stable: the
// first occurrence of each key wins. Two questions with identical normalized
// text but different options or types collapse to the first; that mirrors
// how banks are authored and is a known data-quality assumption, not a bug.
func Dedupe(questions []bank.Question) []bank.Question {
	seen := make(map[string]struct{}, len(questions))
	out := make([]bank.Question, 0, len(questions))
	for _, q := range questions {
		key := strings.ToLower(strings.TrimSpace(q.Text))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, q)
	}
	return out
}
