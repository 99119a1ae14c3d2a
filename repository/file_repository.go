package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"lexiforge-backend/models"

	"github.com/google/uuid"
)

// FileRepository holds export-file records in memory. The bytes themselves
// live in the storage backend; this maps IDs to their metadata.
type FileRepository struct {
	mu    sync.RWMutex
	files map[uuid.UUID]models.ExportFile
}

// NewFileRepository creates a new file repository
func NewFileRepository() *FileRepository {
	return &FileRepository{
		files: make(map[uuid.UUID]models.ExportFile),
	}
}

// Create stores a new export-file record.
func (r *FileRepository) Create(ctx context.Context, file *models.ExportFile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file.CreatedAt = time.Now()
	r.files[file.ID] = *file
	return nil
}

// GetByID retrieves an export-file record by ID.
func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ExportFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file, ok := r.files[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &file, nil
}

// ListBySessionID returns the export records for a session, newest-first.
func (r *FileRepository) ListBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.ExportFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.ExportFile
	for _, file := range r.files {
		if file.SessionID == sessionID {
			out = append(out, file)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
