package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentVersion is an explicit snapshot of a session's drafting state.
// Versions are never mutated or deleted after creation; Fields is an
// independent copy so later edits cannot reach into history.
type DocumentVersion struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Fields    FieldSet  `json:"fields"`
	DocType   DocType   `json:"doc_type"`
	// Version numbers are monotonic per session, starting at 1, and are
	// never reused even after restores.
	Version int `json:"version"`
}
