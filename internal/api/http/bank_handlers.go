package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/quizkit/quizkit/internal/bank"
	"github.com/quizkit/quizkit/internal/engine"
)

// ListQuizzesHandler serves quiz names and sizes for the selection screens.
func ListQuizzesHandler(b *bank.Bank) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(b.Summaries())
	}
}

// PoolSizeHandler reports the unique question count a selection resolves to,
// so the settings screen can cap its question-count input.
// GET /quizzes/pool?mode=specific&quiz=A&quiz=B
func PoolSizeHandler(b *bank.Bank) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := strings.TrimSpace(r.URL.Query().Get("mode"))
		sel := engine.Selection{
			Mode:      engine.Mode(mode),
			QuizNames: r.URL.Query()["quiz"],
		}
		n, err := engine.PoolSize(b, sel)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]int{"pool_size": n})
	}
}
