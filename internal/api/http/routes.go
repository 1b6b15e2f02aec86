package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/quizkit/quizkit/internal/bank"
)

// Mount wires the engine's outward-facing contract onto a chi router. This
// is the whole surface the browser collaborator talks to.
func Mount(r chi.Router, b *bank.Bank, reg *Registry) {
	r.Get("/quizzes", ListQuizzesHandler(b))
	r.Get("/quizzes/pool", PoolSizeHandler(b))

	r.Post("/sessions", CreateSessionHandler(b, reg))
	r.Route("/sessions/{sessionID}", func(sr chi.Router) {
		sr.Get("/", GetSessionHandler(reg))
		sr.Post("/answer", RecordAnswerHandler(reg))
		sr.Post("/next", AdvanceHandler(reg))
		sr.Post("/prev", RetreatHandler(reg))
		sr.Post("/exit", ExitHandler(reg))
		sr.Get("/result", ResultHandler(reg))
	})

	r.Post("/study", CreateStudyHandler(b, reg))
	r.Route("/study/{studyID}", func(sr chi.Router) {
		sr.Get("/", GetStudyHandler(reg))
		sr.Post("/next", StudyAdvanceHandler(reg))
		sr.Post("/prev", StudyRetreatHandler(reg))
		sr.Post("/exit", ExitStudyHandler(reg))
	})
}
