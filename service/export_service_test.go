package service

import (
	"context"
	"io"
	"testing"

	"lexiforge-backend/models"
	"lexiforge-backend/repository"
	"lexiforge-backend/storage"
	"lexiforge-backend/templates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExportService(t *testing.T) (*ExportService, storage.Storage) {
	t.Helper()
	registry, err := templates.NewRegistry()
	require.NoError(t, err)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewExportService(
		ExportWithFileRepository(repository.NewFileRepository()),
		ExportWithStorage(store),
		ExportWithResolver(NewResolverService()),
		ExportWithTemplateRegistry(registry),
	)
	return svc, store
}

func exportTestSession() *models.DraftSession {
	fields := models.NewFieldSet()
	fields.ClientName = "Jane Roe"
	fields.ClientAddress = "1 Main St"
	fields.MatterDescription = "Contract dispute"
	return &models.DraftSession{
		DocType: models.DocTypeRetainer,
		Fields:  fields,
		Role:    models.RoleAdmin,
	}
}

func TestExportWordDocument(t *testing.T) {
	svc, store := newTestExportService(t)
	ctx := context.Background()

	result, err := svc.ExportDocument(ctx, ExportDocumentRequest{
		Session: exportTestSession(),
		Format:  models.ExportFormatWord,
	})
	require.NoError(t, err)

	file := result.File
	assert.Equal(t, "Retainer Agreement_Jane Roe.doc", file.Filename)
	assert.Equal(t, "application/msword", file.MimeType)
	assert.Greater(t, file.Size, int64(0))

	reader, err := store.Download(ctx, file.StoragePath)
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "urn:schemas-microsoft-com:office:word")
	assert.Contains(t, content, "<title>Retainer Agreement</title>")
	assert.Contains(t, content, "Jane Roe")
	assert.Contains(t, content, "LexiForge Legal Group &bull; New York")
	assert.Contains(t, content, "Generated by LexiForge Document Automation")
	assert.Contains(t, content, "1. Parties & Definitions", "sections are numbered")
	assert.Equal(t, int64(len(data)), file.Size)
}

func TestExportTextDocument(t *testing.T) {
	svc, store := newTestExportService(t)
	ctx := context.Background()

	result, err := svc.ExportDocument(ctx, ExportDocumentRequest{
		Session: exportTestSession(),
		Format:  models.ExportFormatText,
	})
	require.NoError(t, err)

	file := result.File
	assert.Equal(t, "Retainer Agreement_Jane Roe.txt", file.Filename)
	assert.Equal(t, "text/plain", file.MimeType)

	reader, err := store.Download(ctx, file.StoragePath)
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "RETAINER AGREEMENT")
	assert.Contains(t, content, "1. PARTIES & DEFINITIONS")
	assert.Contains(t, content, "Jane Roe")
	assert.NotContains(t, content, "<html")
}

func TestExportUsesDraftLabelWithoutClientName(t *testing.T) {
	svc, _ := newTestExportService(t)
	ctx := context.Background()

	session := exportTestSession()
	session.Fields.ClientName = ""

	result, err := svc.ExportDocument(ctx, ExportDocumentRequest{
		Session: session,
		Format:  models.ExportFormatText,
	})
	require.NoError(t, err)
	assert.Equal(t, "Retainer Agreement_Draft.txt", result.File.Filename)
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc, _ := newTestExportService(t)
	ctx := context.Background()

	_, err := svc.ExportDocument(ctx, ExportDocumentRequest{
		Session: exportTestSession(),
		Format:  "pdf",
	})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
