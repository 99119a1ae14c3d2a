package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the session-level role flag. It is informational: role drives
// audit actor labels, not access control.
type UserRole string

const (
	RoleAdmin     UserRole = "Admin"
	RoleAssociate UserRole = "Legal Associate"
)

// ActorLabel returns the audit-trail actor string for the role.
func (r UserRole) ActorLabel() string {
	if r == RoleAdmin {
		return "Admin (Legal Lead)"
	}
	return "Associate (Drafting)"
}

// Toggle returns the other role.
func (r UserRole) Toggle() UserRole {
	if r == RoleAdmin {
		return RoleAssociate
	}
	return RoleAdmin
}

// DraftSession is the complete mutable state for one drafting session:
// the active document type, the live field set, and the two session flags.
type DraftSession struct {
	ID      uuid.UUID `json:"id"`
	DocType DocType   `json:"doc_type"`
	Fields  FieldSet  `json:"fields"`
	Role    UserRole  `json:"role"`
	// IsFinal marks the draft as locked for final review. Advisory: the
	// input layer gates edits, the stores do not.
	IsFinal   bool      `json:"is_final"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
