package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizkit/quizkit/internal/bank"
	"github.com/quizkit/quizkit/internal/engine"
)

type studyResponse struct {
	ID   string            `json:"id"`
	Done bool              `json:"done"`
	View *engine.StudyView `json:"view,omitempty"`
}

// CreateStudyHandler opens read-only browsing of one quiz with answers
// revealed. Study sessions never touch the scored flow.
func CreateStudyHandler(b *bank.Bank, reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Quiz string `json:"quiz"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		q, ok := b.Quiz(req.Quiz)
		if !ok {
			http.Error(w, "quiz not found", 404)
			return
		}
		if len(q.Questions) == 0 {
			http.Error(w, engine.ErrEmptyPool.Error(), 400)
			return
		}
		st := engine.NewStudy(q)
		id := reg.AddStudy(st)
		writeStudy(w, id, st, false)
	}
}

func GetStudyHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, id, ok := studyFrom(w, r, reg)
		if !ok {
			return
		}
		writeStudy(w, id, st, false)
	}
}

// StudyAdvanceHandler steps forward; past the last question the study
// session ends and is dropped from the registry.
func StudyAdvanceHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, id, ok := studyFrom(w, r, reg)
		if !ok {
			return
		}
		done := st.Advance()
		if done {
			reg.RemoveStudy(id)
		}
		writeStudy(w, id, st, done)
	}
}

func StudyRetreatHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, id, ok := studyFrom(w, r, reg)
		if !ok {
			return
		}
		st.Retreat()
		writeStudy(w, id, st, false)
	}
}

func ExitStudyHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, id, ok := studyFrom(w, r, reg)
		if !ok {
			return
		}
		reg.RemoveStudy(id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func studyFrom(w http.ResponseWriter, r *http.Request, reg *Registry) (*engine.Study, string, bool) {
	id := chi.URLParam(r, "studyID")
	st, ok := reg.Study(id)
	if !ok {
		http.Error(w, "study session not found", 404)
		return nil, "", false
	}
	return st, id, true
}

func writeStudy(w http.ResponseWriter, id string, st *engine.Study, done bool) {
	resp := studyResponse{ID: id, Done: done}
	if !done {
		if v, ok := st.View(); ok {
			resp.View = &v
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
