package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"lexiforge-backend/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// SessionRepository holds drafting sessions in memory. Session state lives
// only for the process lifetime.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]models.DraftSession
}

// NewSessionRepository creates a new session repository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[uuid.UUID]models.DraftSession),
	}
}

// Create stores a new session, assigning its ID and timestamps.
func (r *SessionRepository) Create(ctx context.Context, session *models.DraftSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.ID = uuid.New()
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	r.sessions[session.ID] = *session
	return nil
}

// GetByID retrieves a session by ID. The returned value is a copy; apply
// changes through Update.
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DraftSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

// Update replaces the stored session state.
func (r *SessionRepository) Update(ctx context.Context, session *models.DraftSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return ErrNotFound
	}
	session.UpdatedAt = time.Now()
	r.sessions[session.ID] = *session
	return nil
}
