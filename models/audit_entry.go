package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit action labels recorded by the session service
const (
	AuditActionSessionStart       = "Session Initiated"
	AuditActionModifiedField      = "Modified Field"
	AuditActionJurisdictionChange = "Jurisdiction Change"
	AuditActionSavedVersion       = "Saved Version"
	AuditActionRestoredVersion    = "Restored Version"
	AuditActionSecurityElevation  = "Security Elevation"
)

// AuditEntry is one record in the append-only session audit trail.
type AuditEntry struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
}
