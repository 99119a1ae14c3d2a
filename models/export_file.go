package models

import (
	"time"

	"github.com/google/uuid"
)

// ExportFormat selects the rendering an export produces
type ExportFormat string

const (
	ExportFormatWord ExportFormat = "word"
	ExportFormatText ExportFormat = "text"
)

// ExportFile records one exported document artifact and where its bytes
// were stored.
type ExportFile struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"session_id"`
	DocType     DocType   `json:"doc_type"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}
