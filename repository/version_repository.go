package repository

import (
	"context"
	"sync"
	"time"

	"lexiforge-backend/models"

	"github.com/google/uuid"
)

// VersionRepository keeps document version snapshots per session,
// newest-first. Versions are created by explicit saves only and are never
// mutated or deleted.
type VersionRepository struct {
	mu       sync.RWMutex
	versions map[uuid.UUID][]models.DocumentVersion
}

// NewVersionRepository creates a new version repository
func NewVersionRepository() *VersionRepository {
	return &VersionRepository{
		versions: make(map[uuid.UUID][]models.DocumentVersion),
	}
}

// Save snapshots the given field set and document type under the next
// sequential version number for the session. The stored field set is an
// independent copy.
func (r *VersionRepository) Save(ctx context.Context, sessionID uuid.UUID, fields models.FieldSet, docType models.DocType) (*models.DocumentVersion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	version := models.DocumentVersion{
		ID:        uuid.New(),
		Timestamp: time.Now(),
		Fields:    fields.Clone(),
		DocType:   docType,
		Version:   len(r.versions[sessionID]) + 1,
	}
	r.versions[sessionID] = append([]models.DocumentVersion{version}, r.versions[sessionID]...)

	return &version, nil
}

// ListBySessionID returns the session's versions newest-first.
func (r *VersionRepository) ListBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.DocumentVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.versions[sessionID]
	out := make([]models.DocumentVersion, len(stored))
	copy(out, stored)
	return out, nil
}

// GetByID retrieves one version of a session. The returned snapshot is a
// copy, so applying it cannot alias stored history.
func (r *VersionRepository) GetByID(ctx context.Context, sessionID, versionID uuid.UUID) (*models.DocumentVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.versions[sessionID] {
		if v.ID == versionID {
			version := v
			version.Fields = v.Fields.Clone()
			return &version, nil
		}
	}
	return nil, ErrNotFound
}
