package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizkit/quizkit/internal/bank"
	"github.com/quizkit/quizkit/internal/engine"
)

type createSessionRequest struct {
	Mode             string   `json:"mode"`
	Quizzes          []string `json:"quizzes,omitempty"`
	QuestionCount    int      `json:"question_count"`
	TimeLimitSec     int      `json:"time_limit_sec"`
	ShuffleQuestions bool     `json:"shuffle_questions"`
	ShuffleAnswers   bool     `json:"shuffle_answers"`
}

type sessionResponse struct {
	ID       string               `json:"id"`
	View     *engine.QuestionView `json:"view,omitempty"`
	Finished bool                 `json:"finished"`
	Result   *engine.Result       `json:"result,omitempty"`
}

// CreateSessionHandler builds a question set from the bank and starts a new
// session over it. Configuration errors (no quiz selected, empty pool, bad
// count) come back as 400 before anything starts.
func CreateSessionHandler(b *bank.Bank, reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		sel := engine.Selection{Mode: engine.Mode(req.Mode), QuizNames: req.Quizzes}
		cfg := engine.Config{
			QuestionCount:    req.QuestionCount,
			TimeLimitSec:     req.TimeLimitSec,
			ShuffleQuestions: req.ShuffleQuestions,
			ShuffleAnswers:   req.ShuffleAnswers,
		}
		questions, err := engine.Build(b, sel, cfg)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		sess := engine.NewSession(engine.NewScorer())
		if err := sess.Start(questions, cfg); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		id := reg.AddSession(sess)
		writeSession(w, id, sess)
	}
}

// GetSessionHandler returns the current question view, or the result once
// the session has finished.
func GetSessionHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, id, ok := sessionFrom(w, r, reg)
		if !ok {
			return
		}
		writeSession(w, id, sess)
	}
}

// RecordAnswerHandler records a selection for the session's current
// question. The collaborator passes the option value explicitly; the engine
// never inspects ambient UI state.
func RecordAnswerHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, id, ok := sessionFrom(w, r, reg)
		if !ok {
			return
		}
		var req struct {
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		sess.RecordAnswer(req.Value)
		writeSession(w, id, sess)
	}
}

// AdvanceHandler moves to the next question; off the end it finishes the
// session and the response carries the result summary.
func AdvanceHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, id, ok := sessionFrom(w, r, reg)
		if !ok {
			return
		}
		sess.Advance()
		writeSession(w, id, sess)
	}
}

func RetreatHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, id, ok := sessionFrom(w, r, reg)
		if !ok {
			return
		}
		sess.Retreat()
		writeSession(w, id, sess)
	}
}

// ExitHandler abandons the session: countdown cancelled, answers discarded,
// no scoring, registry entry dropped.
func ExitHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, id, ok := sessionFrom(w, r, reg)
		if !ok {
			return
		}
		sess.Exit()
		reg.RemoveSession(id)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ResultHandler serves the scored summary with the per-question breakdown
// (the review screen's data) and marks the session as being reviewed.
func ResultHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, ok := sessionFrom(w, r, reg)
		if !ok {
			return
		}
		res, err := sess.Result()
		if err != nil {
			if errors.Is(err, engine.ErrNotFinished) {
				http.Error(w, err.Error(), 409)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		_ = sess.EnterReview()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	}
}

func sessionFrom(w http.ResponseWriter, r *http.Request, reg *Registry) (*engine.Session, string, bool) {
	id := chi.URLParam(r, "sessionID")
	sess, ok := reg.Session(id)
	if !ok {
		http.Error(w, "session not found", 404)
		return nil, "", false
	}
	return sess, id, true
}

func writeSession(w http.ResponseWriter, id string, sess *engine.Session) {
	resp := sessionResponse{ID: id}
	if v, ok := sess.View(); ok {
		resp.View = &v
	} else if res, err := sess.Result(); err == nil {
		resp.Finished = true
		resp.Result = &res
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
