package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexiforge-backend/repository"
	"lexiforge-backend/service"
	"lexiforge-backend/storage"
	"lexiforge-backend/templates"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry, err := templates.NewRegistry()
	require.NoError(t, err)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	sessionRepo := repository.NewSessionRepository()
	auditRepo := repository.NewAuditRepository()
	versionRepo := repository.NewVersionRepository()
	fileRepo := repository.NewFileRepository()

	resolver := service.NewResolverService()
	sessionService := service.NewSessionService(
		service.WithSessionRepository(sessionRepo),
		service.WithAuditRepository(auditRepo),
		service.WithVersionRepository(versionRepo),
		service.WithTemplateRegistry(registry),
	)
	exportService := service.NewExportService(
		service.ExportWithFileRepository(fileRepo),
		service.ExportWithStorage(store),
		service.ExportWithResolver(resolver),
		service.ExportWithTemplateRegistry(registry),
	)
	explainService := service.NewExplainService()

	sessionHandler := NewSessionHandler(sessionService)
	documentHandler := NewDocumentHandler(sessionService, exportService, explainService, resolver, registry)
	fileHandler := NewFileHandler(fileRepo, store)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/sessions", sessionHandler.CreateSession)
		api.GET("/sessions/:id", sessionHandler.GetSession)
		api.PUT("/sessions/:id/fields", sessionHandler.EditField)
		api.PUT("/sessions/:id/doctype", sessionHandler.SwitchDocType)
		api.POST("/sessions/:id/role/toggle", sessionHandler.ToggleRole)
		api.POST("/sessions/:id/final/toggle", sessionHandler.ToggleFinal)
		api.POST("/sessions/:id/versions", sessionHandler.SaveVersion)
		api.GET("/sessions/:id/versions", sessionHandler.ListVersions)
		api.POST("/sessions/:id/versions/:versionId/restore", sessionHandler.RestoreVersion)
		api.GET("/sessions/:id/audit", sessionHandler.ListAuditEntries)
		api.GET("/sessions/:id/preview", documentHandler.Preview)
		api.POST("/sessions/:id/export", documentHandler.Export)
		api.POST("/explain", documentHandler.ExplainClause)
		api.GET("/templates", documentHandler.ListTemplates)
		api.GET("/templates/:id", documentHandler.GetTemplate)
		api.GET("/sessions/:id/files", fileHandler.ListSessionFiles)
		api.GET("/files/:id", fileHandler.GetFile)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" &&
		w.Header().Get("Content-Disposition") == "" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func createTestSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	data := body["data"].(map[string]interface{})
	return data["id"].(string)
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	sessionID := createTestSession(t, r)

	// New sessions start as retainer drafts with the Admin role.
	w, body := doJSON(t, r, http.MethodGet, "/api/sessions/"+sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "retainer", data["doc_type"])
	assert.Equal(t, "Admin", data["role"])

	// Field edit round-trips.
	w, body = doJSON(t, r, http.MethodPut, "/api/sessions/"+sessionID+"/fields",
		gin.H{"name": "clientName", "value": "Jane Roe"})
	require.Equal(t, http.StatusOK, w.Code)
	data = body["data"].(map[string]interface{})
	fields := data["fields"].(map[string]interface{})
	assert.Equal(t, "Jane Roe", fields["clientName"])

	// The edit is in the audit trail, below the session-start entry.
	w, body = doJSON(t, r, http.MethodGet, "/api/sessions/"+sessionID+"/audit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries := body["data"].([]interface{})
	require.Len(t, entries, 2)
	first := entries[0].(map[string]interface{})
	assert.Equal(t, "Modified Field", first["action"])
}

func TestEditFieldValidationOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	sessionID := createTestSession(t, r)

	t.Run("unknown field", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodPut, "/api/sessions/"+sessionID+"/fields",
			gin.H{"name": "caseNumber", "value": "42"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		errObj := body["error"].(map[string]interface{})
		assert.Equal(t, "UNKNOWN_FIELD", errObj["code"])
	})

	t.Run("malformed session id", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodPut, "/api/sessions/not-a-uuid/fields",
			gin.H{"name": "clientName", "value": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		errObj := body["error"].(map[string]interface{})
		assert.Equal(t, "INVALID_ID", errObj["code"])
	})
}

// A final-review draft refuses edits at the API surface until unlocked.
func TestFinalReviewLockOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	sessionID := createTestSession(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/sessions/"+sessionID+"/final/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, r, http.MethodPut, "/api/sessions/"+sessionID+"/fields",
		gin.H{"name": "clientName", "value": "Jane Roe"})
	assert.Equal(t, http.StatusConflict, w.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "DRAFT_LOCKED", errObj["code"])

	// Unlocking re-enables edits.
	w, _ = doJSON(t, r, http.MethodPost, "/api/sessions/"+sessionID+"/final/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodPut, "/api/sessions/"+sessionID+"/fields",
		gin.H{"name": "clientName", "value": "Jane Roe"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVersionRoundTripOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	sessionID := createTestSession(t, r)

	_, _ = doJSON(t, r, http.MethodPut, "/api/sessions/"+sessionID+"/fields",
		gin.H{"name": "clientName", "value": "Jane Roe"})

	w, body := doJSON(t, r, http.MethodPost, "/api/sessions/"+sessionID+"/versions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	version := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), version["version"])
	versionID := version["id"].(string)

	_, _ = doJSON(t, r, http.MethodPut, "/api/sessions/"+sessionID+"/fields",
		gin.H{"name": "clientName", "value": "Someone Else"})

	w, body = doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/sessions/%s/versions/%s/restore", sessionID, versionID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	session := data["session"].(map[string]interface{})
	fields := session["fields"].(map[string]interface{})
	assert.Equal(t, "Jane Roe", fields["clientName"])

	// Restoring a version that does not exist leaves the session alone.
	w, body = doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/sessions/%s/versions/%s/restore", sessionID, "00000000-0000-0000-0000-000000000099"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "VERSION_NOT_FOUND", errObj["code"])
}

func TestPreviewOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	sessionID := createTestSession(t, r)

	w, body := doJSON(t, r, http.MethodGet, "/api/sessions/"+sessionID+"/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Retainer Agreement", data["template_name"])
	assert.Equal(t, false, data["is_complete"])

	missing := data["missing_fields"].([]interface{})
	assert.ElementsMatch(t, []interface{}{"clientName", "matterDescription"}, missing)

	sections := data["sections"].([]interface{})
	require.NotEmpty(t, sections)
	firstSection := sections[0].(map[string]interface{})
	assert.Equal(t, "parties", firstSection["id"])
}

func TestTemplateEndpointsOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := body["data"].([]interface{})
	assert.Len(t, list, 4)

	w, body = doJSON(t, r, http.MethodGet, "/api/templates/collection", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Collection Demand", data["name"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/templates/lease_agreement", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportAndDownloadOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	sessionID := createTestSession(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/sessions/"+sessionID+"/export",
		gin.H{"format": "text"})
	require.Equal(t, http.StatusCreated, w.Code)
	file := body["data"].(map[string]interface{})
	fileID := file["id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/files/"+fileID, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "RETAINER AGREEMENT")

	w, body = doJSON(t, r, http.MethodGet, "/api/sessions/"+sessionID+"/files", nil)
	require.Equal(t, http.StatusOK, w.Code)
	files := body["data"].([]interface{})
	assert.Len(t, files, 1)
}

// Explanations degrade to a static message when no model client is wired.
func TestExplainFallbackOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/explain",
		gin.H{"title": "Arbitration of Disputes", "content": "Disputes go to arbitration."})
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Error generating AI explanation. Please check your connection.", data["explanation"])
}
