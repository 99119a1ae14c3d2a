package repository

import (
	"context"
	"sync"
	"time"

	"lexiforge-backend/models"

	"github.com/google/uuid"
)

// maxAuditEntries is the fixed per-session ledger capacity. Recording past
// the cap discards the oldest entries.
const maxAuditEntries = 50

// AuditRepository keeps an append-only, newest-first audit ledger per
// session. Entries are never edited or individually deleted.
type AuditRepository struct {
	mu      sync.RWMutex
	ledgers map[uuid.UUID][]models.AuditEntry
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{
		ledgers: make(map[uuid.UUID][]models.AuditEntry),
	}
}

// Record appends one entry at the front of the session's ledger, stamping
// it with an ID and capture time, and truncates the tail beyond capacity.
func (r *AuditRepository) Record(ctx context.Context, sessionID uuid.UUID, actor, action, detail string) (*models.AuditEntry, error) {
	entry := models.AuditEntry{
		ID:        uuid.New(),
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    action,
		Detail:    detail,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ledger := append([]models.AuditEntry{entry}, r.ledgers[sessionID]...)
	if len(ledger) > maxAuditEntries {
		ledger = ledger[:maxAuditEntries]
	}
	r.ledgers[sessionID] = ledger

	return &entry, nil
}

// ListBySessionID returns the session's entries newest-first. The slice is
// a copy; the ledger itself stays read-only to callers.
func (r *AuditRepository) ListBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger := r.ledgers[sessionID]
	out := make([]models.AuditEntry, len(ledger))
	copy(out, ledger)
	return out, nil
}
