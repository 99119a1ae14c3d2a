package handlers

import (
	"net/http"

	"lexiforge-backend/models"
	"lexiforge-backend/service"
	"lexiforge-backend/templates"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for document assembly, export and
// clause explanation
type DocumentHandler struct {
	sessionService *service.SessionService
	exportService  *service.ExportService
	explainService *service.ExplainService
	resolver       *service.ResolverService
	registry       *templates.Registry
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(
	sessionService *service.SessionService,
	exportService *service.ExportService,
	explainService *service.ExplainService,
	resolver *service.ResolverService,
	registry *templates.Registry,
) *DocumentHandler {
	return &DocumentHandler{
		sessionService: sessionService,
		exportService:  exportService,
		explainService: explainService,
		resolver:       resolver,
		registry:       registry,
	}
}

// Preview handles GET /api/sessions/:id/preview
func (h *DocumentHandler) Preview(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid session ID format",
			},
		})
		return
	}

	sessionResult, err := h.sessionService.GetSession(c.Request.Context(), service.GetSessionRequest{SessionID: sessionID})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Session not found",
			},
		})
		return
	}
	session := sessionResult.Session

	tmpl, ok := h.registry.Get(session.DocType)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TEMPLATE_MISSING",
				"message": "No template registered for session document type",
			},
		})
		return
	}

	resolved := h.resolver.Resolve(tmpl, session.Fields)

	logicRules := 0
	for _, section := range resolved.Sections {
		if section.Tag != "" && section.Tag != models.TagStandard {
			logicRules++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"template_id":    tmpl.ID,
			"template_name":  tmpl.Name,
			"sections":       resolved.Sections,
			"missing_fields": resolved.MissingFields,
			"is_complete":    resolved.IsComplete(),
			"logic_rules":    logicRules,
			"is_final":       session.IsFinal,
		},
	})
}

// ExportRequest represents the request body for a document export
type ExportRequest struct {
	Format string `json:"format" binding:"required"`
}

// Export handles POST /api/sessions/:id/export
func (h *DocumentHandler) Export(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid session ID format",
			},
		})
		return
	}

	var req ExportRequest
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

	sessionResult, err := h.sessionService.GetSession(c.Request.Context(), service.GetSessionRequest{SessionID: sessionID})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Session not found",
			},
		})
		return
	}

	result, err := h.exportService.ExportDocument(c.Request.Context(), service.ExportDocumentRequest{
		Session: sessionResult.Session,
		Format:  models.ExportFormat(req.Format),
	})
	if err != nil {
		if err == service.ErrUnsupportedFormat {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNSUPPORTED_FORMAT",
					"message": "Supported formats: word, text",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORT_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result.File,
	})
}

// ListTemplates handles GET /api/templates
func (h *DocumentHandler) ListTemplates(c *gin.Context) {
	list := h.registry.List()

	summaries := make([]gin.H, 0, len(list))
	for _, tmpl := range list {
		summaries = append(summaries, gin.H{
			"id":              tmpl.ID,
			"name":            tmpl.Name,
			"description":     tmpl.Description,
			"required_fields": tmpl.RequiredFields,
			"clause_count":    len(tmpl.Clauses),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    summaries,
	})
}

// GetTemplate handles GET /api/templates/:id
func (h *DocumentHandler) GetTemplate(c *gin.Context) {
	tmpl, ok := h.registry.Get(models.DocType(c.Param("id")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Template not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tmpl,
	})
}

// ExplainClauseRequest represents the request body for a clause explanation
type ExplainClauseRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ExplainClause handles POST /api/explain
func (h *DocumentHandler) ExplainClause(c *gin.Context) {
	var req ExplainClauseRequest
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

	result := h.explainService.ExplainClause(c.Request.Context(), service.ExplainClauseRequest{
		Title:   req.Title,
		Content: req.Content,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"explanation": result.Explanation,
		},
	})
}
