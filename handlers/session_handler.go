package handlers

import (
	"errors"
	"net/http"

	"lexiforge-backend/models"
	"lexiforge-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler handles HTTP requests for drafting sessions
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// CreateSessionRequest represents the request body for starting a session
type CreateSessionRequest struct {
	DocType string `json:"doc_type"`
}

// CreateSession handles POST /api/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	// Body is optional; a bare POST starts a retainer session.
	_ = c.ShouldBindJSON(&req)

	result, err := h.sessionService.CreateSession(c.Request.Context(), service.CreateSessionRequest{
		DocType: models.DocType(req.DocType),
	})
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_DOC_TYPE",
					"message": "Unknown document type",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result.Session,
	})
}

// GetSession handles GET /api/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.sessionService.GetSession(c.Request.Context(), service.GetSessionRequest{SessionID: sessionID})
	if err != nil {
		h.sessionNotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Session,
	})
}

// EditFieldRequest represents the request body for a field edit
type EditFieldRequest struct {
	Name  string      `json:"name" binding:"required"`
	Value interface{} `json:"value"`
}

// EditField handles PUT /api/sessions/:id/fields
func (h *SessionHandler) EditField(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req EditFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	current, err := h.sessionService.GetSession(c.Request.Context(), service.GetSessionRequest{SessionID: sessionID})
	if err != nil {
		h.sessionNotFound(c)
		return
	}

	// The lock is an input-layer gate: a locked draft refuses edits here,
	// while services and stores stay unlocked.
	if current.Session.IsFinal {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DRAFT_LOCKED",
				"message": "Draft is locked for final review. Unlock it to make further edits.",
			},
		})
		return
	}

	result, err := h.sessionService.EditField(c.Request.Context(), service.EditFieldRequest{
		SessionID: sessionID,
		Name:      req.Name,
		Value:     req.Value,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnknownField) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNKNOWN_FIELD",
					"message": err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_VALUE",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Session,
	})
}

// SwitchDocTypeRequest represents the request body for switching templates
type SwitchDocTypeRequest struct {
	DocType string `json:"doc_type" binding:"required"`
}

// SwitchDocType handles PUT /api/sessions/:id/doctype
func (h *SessionHandler) SwitchDocType(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req SwitchDocTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.sessionService.SwitchDocType(c.Request.Context(), service.SwitchDocTypeRequest{
		SessionID: sessionID,
		DocType:   models.DocType(req.DocType),
	})
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_DOC_TYPE",
					"message": "Unknown document type",
				},
			})
			return
		}
		h.sessionNotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Session,
	})
}

// ToggleRole handles POST /api/sessions/:id/role/toggle
func (h *SessionHandler) ToggleRole(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.sessionService.ToggleRole(c.Request.Context(), service.ToggleRoleRequest{SessionID: sessionID})
	if err != nil {
		h.sessionNotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Session,
	})
}

// ToggleFinal handles POST /api/sessions/:id/final/toggle
func (h *SessionHandler) ToggleFinal(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.sessionService.ToggleFinal(c.Request.Context(), service.ToggleFinalRequest{SessionID: sessionID})
	if err != nil {
		h.sessionNotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Session,
	})
}

// SaveVersion handles POST /api/sessions/:id/versions
func (h *SessionHandler) SaveVersion(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.sessionService.SaveVersion(c.Request.Context(), service.SaveVersionRequest{SessionID: sessionID})
	if err != nil {
		h.sessionNotFound(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result.Version,
	})
}

// ListVersions handles GET /api/sessions/:id/versions
func (h *SessionHandler) ListVersions(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.sessionService.ListVersions(c.Request.Context(), service.ListVersionsRequest{SessionID: sessionID})
	if err != nil {
		h.sessionNotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Versions,
	})
}

// RestoreVersion handles POST /api/sessions/:id/versions/:versionId/restore
func (h *SessionHandler) RestoreVersion(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	versionID, err := uuid.Parse(c.Param("versionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid version ID format",
			},
		})
		return
	}

	result, err := h.sessionService.RestoreVersion(c.Request.Context(), service.RestoreVersionRequest{
		SessionID: sessionID,
		VersionID: versionID,
	})
	if err != nil {
		if errors.Is(err, service.ErrVersionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VERSION_NOT_FOUND",
					"message": "Version not found; session state unchanged",
				},
			})
			return
		}
		h.sessionNotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"session": result.Session,
			"version": result.Version,
		},
	})
}

// ListAuditEntries handles GET /api/sessions/:id/audit
func (h *SessionHandler) ListAuditEntries(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.sessionService.ListAuditEntries(c.Request.Context(), service.ListAuditEntriesRequest{SessionID: sessionID})
	if err != nil {
		h.sessionNotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Entries,
	})
}

// sessionID parses the :id path parameter, writing the error response on
// failure.
func (h *SessionHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid session ID format",
			},
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *SessionHandler) sessionNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "NOT_FOUND",
			"message": "Session not found",
		},
	})
}
