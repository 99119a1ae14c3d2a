package service

import (
	"context"
	"errors"
	"fmt"

	"lexiforge-backend/models"
	"lexiforge-backend/repository"
	"lexiforge-backend/templates"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrTemplateNotFound = errors.New("document template not found")
	ErrVersionNotFound  = errors.New("version not found")
	ErrUnknownField     = errors.New("unknown field")
)

// SessionService orchestrates drafting sessions: it routes field edits into
// the field set and the audit ledger, drives version snapshots and
// restores, and flips the session flags.
type SessionService struct {
	sessionRepo *repository.SessionRepository
	auditRepo   *repository.AuditRepository
	versionRepo *repository.VersionRepository
	registry    *templates.Registry
}

// SessionServiceOption is a functional option for SessionService
type SessionServiceOption func(*SessionService)

// WithSessionRepository sets the session repository
func WithSessionRepository(repo *repository.SessionRepository) SessionServiceOption {
	return func(s *SessionService) {
		s.sessionRepo = repo
	}
}

// WithAuditRepository sets the audit repository
func WithAuditRepository(repo *repository.AuditRepository) SessionServiceOption {
	return func(s *SessionService) {
		s.auditRepo = repo
	}
}

// WithVersionRepository sets the version repository
func WithVersionRepository(repo *repository.VersionRepository) SessionServiceOption {
	return func(s *SessionService) {
		s.versionRepo = repo
	}
}

// WithTemplateRegistry sets the template registry
func WithTemplateRegistry(registry *templates.Registry) SessionServiceOption {
	return func(s *SessionService) {
		s.registry = registry
	}
}

// NewSessionService creates a new session service
func NewSessionService(opts ...SessionServiceOption) *SessionService {
	s := &SessionService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SessionService) guard() error {
	if s.sessionRepo == nil {
		return errors.New("session repository not set")
	}
	if s.auditRepo == nil {
		return errors.New("audit repository not set")
	}
	if s.versionRepo == nil {
		return errors.New("version repository not set")
	}
	if s.registry == nil {
		return errors.New("template registry not set")
	}
	return nil
}

// CreateSessionRequest represents a request to start a drafting session
type CreateSessionRequest struct {
	DocType models.DocType // optional, defaults to retainer
}

// CreateSessionResult represents the result of starting a session
type CreateSessionResult struct {
	Session *models.DraftSession
}

// CreateSession starts a drafting session with default field values and
// records the session-start audit entry.
func (s *SessionService) CreateSession(ctx context.Context, req CreateSessionRequest) (*CreateSessionResult, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	docType := req.DocType
	if docType == "" {
		docType = models.DocTypeRetainer
	}
	if _, ok := s.registry.Get(docType); !ok {
		return nil, ErrTemplateNotFound
	}

	session := &models.DraftSession{
		DocType: docType,
		Fields:  models.NewFieldSet(),
		Role:    models.RoleAdmin,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.record(ctx, session, models.AuditActionSessionStart, "LexiForge secure session started.")

	return &CreateSessionResult{Session: session}, nil
}

// GetSessionRequest represents a request to fetch a session
type GetSessionRequest struct {
	SessionID uuid.UUID
}

// GetSessionResult represents the result of fetching a session
type GetSessionResult struct {
	Session *models.DraftSession
}

// GetSession retrieves a session by ID.
func (s *SessionService) GetSession(ctx context.Context, req GetSessionRequest) (*GetSessionResult, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	return &GetSessionResult{Session: session}, nil
}

// EditFieldRequest represents a single field edit
type EditFieldRequest struct {
	SessionID uuid.UUID
	Name      string
	Value     interface{} // string for text fields, bool for toggles
}

// EditFieldResult represents the result of a field edit
type EditFieldResult struct {
	Session *models.DraftSession
}

// EditField writes one field value into the session's field set. Client
// name and jurisdiction edits are audit-worthy; other fields mutate
// silently per current policy. The final-review lock is enforced by the
// input layer, not here.
func (s *SessionService) EditField(ctx context.Context, req EditFieldRequest) (*EditFieldResult, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	if _, ok := session.Fields.Value(req.Name); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, req.Name)
	}
	if err := session.Fields.Set(req.Name, req.Value); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	switch req.Name {
	case models.FieldClientName:
		s.record(ctx, session, models.AuditActionModifiedField, fmt.Sprintf("Updated Client Name: %v", req.Value))
	case models.FieldJurisdiction:
		s.record(ctx, session, models.AuditActionJurisdictionChange, fmt.Sprintf("Applied rules for: %v", req.Value))
	}

	return &EditFieldResult{Session: session}, nil
}

// SwitchDocTypeRequest represents a request to change the active template
type SwitchDocTypeRequest struct {
	SessionID uuid.UUID
	DocType   models.DocType
}

// SwitchDocTypeResult represents the result of switching templates
type SwitchDocTypeResult struct {
	Session *models.DraftSession
}

// SwitchDocType changes the active document type. The field set is kept:
// most fields are shared across document types.
func (s *SessionService) SwitchDocType(ctx context.Context, req SwitchDocTypeRequest) (*SwitchDocTypeResult, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	if _, ok := s.registry.Get(req.DocType); !ok {
		return nil, ErrTemplateNotFound
	}

	session, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	session.DocType = req.DocType
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return &SwitchDocTypeResult{Session: session}, nil
}

// ToggleRoleRequest represents a request to flip the session role
type ToggleRoleRequest struct {
	SessionID uuid.UUID
}

// ToggleRoleResult represents the result of flipping the role
type ToggleRoleResult struct {
	Session *models.DraftSession
}

// ToggleRole flips Admin/Associate and logs the transition. The role has
// no enforcement effect on resolution or editing.
func (s *SessionService) ToggleRole(ctx context.Context, req ToggleRoleRequest) (*ToggleRoleResult, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	// The audit entry is attributed to the role that initiated the switch.
	actor := session.Role.ActorLabel()
	session.Role = session.Role.Toggle()
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	s.auditRepo.Record(ctx, session.ID, actor, models.AuditActionSecurityElevation,
		fmt.Sprintf("Switched to %s", session.Role))

	return &ToggleRoleResult{Session: session}, nil
}

// ToggleFinalRequest represents a request to flip the final-review lock
type ToggleFinalRequest struct {
	SessionID uuid.UUID
}

// ToggleFinalResult represents the result of flipping the lock
type ToggleFinalResult struct {
	Session *models.DraftSession
}

// ToggleFinal flips the drafting/final-review flag. Purely advisory for
// downstream consumers.
func (s *SessionService) ToggleFinal(ctx context.Context, req ToggleFinalRequest) (*ToggleFinalResult, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	session.IsFinal = !session.IsFinal
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return &ToggleFinalResult{Session: session}, nil
}

// SaveVersionRequest represents a request to snapshot the current state
type SaveVersionRequest struct {
	SessionID uuid.UUID
}

// SaveVersionResult represents the result of a snapshot
type SaveVersionResult struct {
	Version *models.DocumentVersion
}

// SaveVersion deep-copies the live field set into a new version record and
// logs the save. Versions are only created by this explicit action.
func (s *SessionService) SaveVersion(ctx context.Context, req SaveVersionRequest) (*SaveVersionResult, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	version, err := s.versionRepo.Save(ctx, session.ID, session.Fields, session.DocType)
	if err != nil {
		return nil, err
	}

	s.record(ctx, session, models.AuditActionSavedVersion, fmt.Sprintf("Created Version %d.0", version.Version))

	return &SaveVersionResult{Version: version}, nil
}

// ListVersionsRequest represents a request to list saved versions
type ListVersionsRequest struct {
	SessionID uuid.UUID
}

// ListVersionsResult represents the result of listing versions
type ListVersionsResult struct {
	Versions []models.DocumentVersion
}

// ListVersions returns the session's saved versions, newest-first.
func (s *SessionService) ListVersions(ctx context.Context, req ListVersionsRequest) (*ListVersionsResult, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	if _, err := s.sessionRepo.GetByID(ctx, req.SessionID); err != nil {
		return nil, ErrSessionNotFound
	}

	versions, err := s.versionRepo.ListBySessionID(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	return &ListVersionsResult{Versions: versions}, nil
}

// RestoreVersionRequest represents a request to revert to a saved version
type RestoreVersionRequest struct {
	SessionID uuid.UUID
	VersionID uuid.UUID
}

// RestoreVersionResult represents the result of a restore
type RestoreVersionResult struct {
	Session *models.DraftSession
	Version *models.DocumentVersion
}

// RestoreVersion applies a stored snapshot back onto the session: field set
// and document type at save time. An unknown version id is a no-op on
// session state and is reported as ErrVersionNotFound.
func (s *SessionService) RestoreVersion(ctx context.Context, req RestoreVersionRequest) (*RestoreVersionResult, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	version, err := s.versionRepo.GetByID(ctx, session.ID, req.VersionID)
	if err != nil {
		return nil, ErrVersionNotFound
	}

	session.Fields = version.Fields.Clone()
	session.DocType = version.DocType
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	s.record(ctx, session, models.AuditActionRestoredVersion, fmt.Sprintf("Reverted to Version %d.0", version.Version))

	return &RestoreVersionResult{Session: session, Version: version}, nil
}

// ListAuditEntriesRequest represents a request to read the audit ledger
type ListAuditEntriesRequest struct {
	SessionID uuid.UUID
}

// ListAuditEntriesResult represents the result of reading the ledger
type ListAuditEntriesResult struct {
	Entries []models.AuditEntry
}

// ListAuditEntries returns the session's audit trail, newest-first.
func (s *SessionService) ListAuditEntries(ctx context.Context, req ListAuditEntriesRequest) (*ListAuditEntriesResult, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	if _, err := s.sessionRepo.GetByID(ctx, req.SessionID); err != nil {
		return nil, ErrSessionNotFound
	}

	entries, err := s.auditRepo.ListBySessionID(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	return &ListAuditEntriesResult{Entries: entries}, nil
}

// record writes an audit entry attributed to the session's current role.
func (s *SessionService) record(ctx context.Context, session *models.DraftSession, action, detail string) {
	s.auditRepo.Record(ctx, session.ID, session.Role.ActorLabel(), action, detail)
}
