package http

import (
	"sync"

	"github.com/google/uuid"

	"github.com/quizkit/quizkit/internal/engine"
)

// Registry holds the live sessions for this process, keyed by UUID. Sessions
// are browser-session scoped: they exist from create until exit or process
// shutdown, nothing is persisted.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*engine.Session
	studies  map[string]*engine.Study
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: map[string]*engine.Session{},
		studies:  map[string]*engine.Study{},
	}
}

func (r *Registry) AddSession(s *engine.Session) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return id
}

func (r *Registry) Session(id string) (*engine.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) RemoveSession(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) AddStudy(s *engine.Study) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.studies[id] = s
	r.mu.Unlock()
	return id
}

func (r *Registry) Study(id string) (*engine.Study, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.studies[id]
	return s, ok
}

func (r *Registry) RemoveStudy(id string) {
	r.mu.Lock()
	delete(r.studies, id)
	r.mu.Unlock()
}
