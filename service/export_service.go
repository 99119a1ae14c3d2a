package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lexiforge-backend/models"
	"lexiforge-backend/repository"
	"lexiforge-backend/storage"
	"lexiforge-backend/templates"

	"github.com/google/uuid"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// ExportService assembles a resolved document into an export artifact and
// stores it. Byte-level fidelity of downstream viewers is their concern;
// this service's contract is the ordered section list plus field metadata
// for headers and footers.
type ExportService struct {
	fileRepo *repository.FileRepository
	storage  storage.Storage
	resolver *ResolverService
	registry *templates.Registry
}

// ExportServiceOption is a functional option for ExportService
type ExportServiceOption func(*ExportService)

// ExportWithFileRepository sets the file repository
func ExportWithFileRepository(repo *repository.FileRepository) ExportServiceOption {
	return func(s *ExportService) {
		s.fileRepo = repo
	}
}

// ExportWithStorage sets the artifact storage backend
func ExportWithStorage(store storage.Storage) ExportServiceOption {
	return func(s *ExportService) {
		s.storage = store
	}
}

// ExportWithResolver sets the resolver service
func ExportWithResolver(resolver *ResolverService) ExportServiceOption {
	return func(s *ExportService) {
		s.resolver = resolver
	}
}

// ExportWithTemplateRegistry sets the template registry
func ExportWithTemplateRegistry(registry *templates.Registry) ExportServiceOption {
	return func(s *ExportService) {
		s.registry = registry
	}
}

// NewExportService creates a new export service
func NewExportService(opts ...ExportServiceOption) *ExportService {
	s := &ExportService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExportDocumentRequest represents a request to export a session's document
type ExportDocumentRequest struct {
	Session *models.DraftSession
	Format  models.ExportFormat
}

// ExportDocumentResult represents the stored export artifact
type ExportDocumentResult struct {
	File *models.ExportFile
}

// ExportDocument resolves the session's active template and writes the
// assembled document to storage in the requested format.
func (s *ExportService) ExportDocument(ctx context.Context, req ExportDocumentRequest) (*ExportDocumentResult, error) {
	if s.fileRepo == nil {
		return nil, errors.New("file repository not set")
	}
	if s.storage == nil {
		return nil, errors.New("storage not set")
	}
	if s.resolver == nil {
		return nil, errors.New("resolver service not set")
	}
	if s.registry == nil {
		return nil, errors.New("template registry not set")
	}

	tmpl, ok := s.registry.Get(req.Session.DocType)
	if !ok {
		return nil, ErrTemplateNotFound
	}

	result := s.resolver.Resolve(tmpl, req.Session.Fields)

	var content string
	var ext, mimeType string
	switch req.Format {
	case models.ExportFormatWord:
		content = buildWordDocument(tmpl, req.Session.Fields, result.Sections)
		ext = ".doc"
		mimeType = "application/msword"
	case models.ExportFormatText:
		content = buildTextDocument(tmpl, result.Sections)
		ext = ".txt"
		mimeType = "text/plain"
	default:
		return nil, ErrUnsupportedFormat
	}

	clientLabel := req.Session.Fields.ClientName
	if clientLabel == "" {
		clientLabel = "Draft"
	}
	filename := fmt.Sprintf("%s_%s%s", tmpl.Name, clientLabel, ext)

	fileID := uuid.New()
	data := []byte(content)
	storagePath, err := s.storage.Upload(ctx, fileID, filename, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to store export: %w", err)
	}

	file := &models.ExportFile{
		ID:          fileID,
		SessionID:   req.Session.ID,
		DocType:     req.Session.DocType,
		Filename:    filename,
		MimeType:    mimeType,
		Size:        int64(len(data)),
		StoragePath: storagePath,
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		// Keep storage and records consistent on failure.
		s.storage.Delete(ctx, storagePath)
		return nil, fmt.Errorf("failed to record export: %w", err)
	}

	return &ExportDocumentResult{File: file}, nil
}

// buildWordDocument assembles a Word-compatible HTML document: Office XML
// namespaces, a WordSection1 page definition, firm header, confidentiality
// footer, and the numbered uppercase section layout.
func buildWordDocument(tmpl *models.DocumentTemplate, fields models.FieldSet, sections []models.ResolvedSection) string {
	var doc strings.Builder

	doc.WriteString(`<html xmlns:o='urn:schemas-microsoft-com:office:office'
      xmlns:w='urn:schemas-microsoft-com:office:word'
      xmlns='http://www.w3.org/TR/REC-html40'>
<head>
  <meta charset='utf-8'>
  <title>` + tmpl.Name + `</title>
  <!--[if gte mso 9]>
  <xml>
    <w:WordDocument>
      <w:View>Print</w:View>
      <w:Zoom>100</w:Zoom>
      <w:DoNotOptimizeForBrowser/>
    </w:WordDocument>
  </xml>
  <![endif]-->
  <style>
    @page WordSection1 {
      size: 595.3pt 841.9pt;
      margin: 72.0pt 72.0pt 72.0pt 72.0pt;
      mso-header-margin: 35.4pt;
      mso-footer-margin: 35.4pt;
      mso-header: h1;
      mso-footer: f1;
    }
    div.WordSection1 { page: WordSection1; }
    table#hrdftrtbl { margin: 0in 0in 0in 900in; width: 1px; height: 1px; overflow: hidden; }
    .header-text { font-family: 'Arial'; font-size: 10pt; color: #666666; }
    .footer-text { font-family: 'Arial'; font-size: 8pt; color: #999999; text-align: center; }
  </style>
</head>
<body>
  <div class="WordSection1">
`)

	doc.WriteString(`  <table id='hrdftrtbl' border='0' cellspacing='0' cellpadding='0'>
    <tr>
      <td>
        <div style='mso-element:header' id='h1'>
          <p class='header-text' style='text-align:left;'>
            ` + fields.FirmName + ` &bull; ` + fields.Jurisdiction + `
            <span style='float:right;'>` + time.Now().Format("1/2/2006") + `</span>
          </p>
          <div style='border-bottom: 0.5pt solid #000; margin-bottom: 10pt;'></div>
        </div>
      </td>
      <td>
        <div style='mso-element:footer' id='f1'>
          <div style='border-top: 0.5pt solid #ddd; margin-top: 5pt;'></div>
          <p class='footer-text'>
            Generated by LexiForge Document Automation &bull; Confidential &bull; Page <span style='mso-field-code:" PAGE "'></span> of <span style='mso-field-code:" NUMPAGES "'></span>
          </p>
        </div>
      </td>
    </tr>
  </table>
`)

	doc.WriteString(`  <div style="text-align: center; margin-bottom: 15px;">
    <h1 style="font-family: 'Times New Roman'; font-size: 16pt; text-transform: uppercase;">` + tmpl.Name + `</h1>
  </div>
`)

	for i, section := range sections {
		body := strings.ReplaceAll(section.Body, "\n", "<br>")
		doc.WriteString(fmt.Sprintf(`  <div style="margin-bottom: 10pt; font-family: 'Times New Roman'; font-size: 11pt;">
    <h4 style="text-transform: uppercase; margin-bottom: 3pt;">%d. %s</h4>
    <p style="margin-top: 0; line-height: 1.2;">%s</p>
  </div>
`, i+1, section.Title, body))
	}

	doc.WriteString("  </div>\n</body>\n</html>\n")
	return doc.String()
}

// buildTextDocument renders the resolved sections as plain text.
func buildTextDocument(tmpl *models.DocumentTemplate, sections []models.ResolvedSection) string {
	var doc strings.Builder
	doc.WriteString(strings.ToUpper(tmpl.Name))
	doc.WriteString("\n\n")
	for i, section := range sections {
		doc.WriteString(fmt.Sprintf("%d. %s\n\n%s\n\n", i+1, strings.ToUpper(section.Title), section.Body))
	}
	return doc.String()
}
