package memory

import (
	"buscador_cep/internal/domain/entities"
	"buscador_cep/internal/usecase/interfaces"
	"sync"
	"time"
)

const defaultSessionIdleTTL = 30 * time.Minute

type sessionEntry struct {
	session  *entities.FormSession
	lastSeen time.Time
}

// FormSessionMemoryRepository keeps form sessions in process memory and drops
// the ones idle for longer than idleTTL. Eviction runs every 256 saves.
//
// An evicted session with a lookup in flight is simply forgotten; the lookup
// still completes on its own goroutine.
type FormSessionMemoryRepository struct {
	mu      sync.Mutex
	byID    map[string]*sessionEntry
	saves   uint64
	idleTTL time.Duration
	now     func() time.Time
}

var _ interfaces.IFormSessionRepository = (*FormSessionMemoryRepository)(nil)

func NewFormSessionMemoryRepository(idleTTL time.Duration) *FormSessionMemoryRepository {
	if idleTTL <= 0 {
		idleTTL = defaultSessionIdleTTL
	}
	return &FormSessionMemoryRepository{
		byID:    make(map[string]*sessionEntry),
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

func (r *FormSessionMemoryRepository) Save(s *entities.FormSession) {
	if s == nil || s.ID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.byID[s.ID] = &sessionEntry{session: s, lastSeen: now}

	r.saves++
	if r.saves%256 == 0 {
		r.evictLocked(now)
	}
}

// Get returns a live session and refreshes its idle timer.
func (r *FormSessionMemoryRepository) Get(id string) (*entities.FormSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	now := r.now()
	if e.lastSeen.Before(now.Add(-r.idleTTL)) {
		delete(r.byID, id)
		return nil, false
	}
	e.lastSeen = now
	return e.session, true
}

func (r *FormSessionMemoryRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

// Len reports how many sessions are stored, expired ones included.
func (r *FormSessionMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

// Wait blocks until every stored session has no lookup in flight.
func (r *FormSessionMemoryRepository) Wait() {
	r.mu.Lock()
	forms := make([]entities.LookupForm, 0, len(r.byID))
	for _, e := range r.byID {
		forms = append(forms, e.session.Form)
	}
	r.mu.Unlock()

	for _, f := range forms {
		if f != nil {
			f.Wait()
		}
	}
}

func (r *FormSessionMemoryRepository) evictLocked(now time.Time) {
	cutoff := now.Add(-r.idleTTL)
	for id, e := range r.byID {
		if e.lastSeen.Before(cutoff) {
			delete(r.byID, id)
		}
	}
}
