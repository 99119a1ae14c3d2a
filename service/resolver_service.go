package service

import (
	"strings"

	"lexiforge-backend/models"
)

// ResolverService turns a document template plus a field set into the
// ordered list of renderable sections. Resolution is pure: identical inputs
// always produce identical output.
type ResolverService struct{}

// NewResolverService creates a new resolver service
func NewResolverService() *ResolverService {
	return &ResolverService{}
}

// ResolveResult represents the outcome of resolving a template
type ResolveResult struct {
	Sections []models.ResolvedSection `json:"sections"`
	// MissingFields lists required fields currently without a meaningful
	// value. Completeness gates the "ready" status downstream; it never
	// blocks drafting.
	MissingFields []string `json:"missing_fields"`
}

// IsComplete reports whether every required field is filled.
func (r *ResolveResult) IsComplete() bool {
	return len(r.MissingFields) == 0
}

// Resolve filters the template's clauses by visibility condition,
// substitutes placeholders, and reports missing required fields. Visible
// clauses keep the template's declared order.
func (s *ResolverService) Resolve(tmpl *models.DocumentTemplate, fields models.FieldSet) *ResolveResult {
	subs := substitutionMap(fields)

	sections := make([]models.ResolvedSection, 0, len(tmpl.Clauses))
	for _, clause := range tmpl.Clauses {
		if clause.Condition != nil && !clause.Condition.Matches(fields) {
			continue
		}
		sections = append(sections, models.ResolvedSection{
			ID:        clause.ID,
			Title:     clause.Title,
			Body:      substitute(clause.Body, subs),
			Tag:       clause.Tag,
			Immutable: clause.Immutable,
		})
	}

	missing := make([]string, 0)
	for _, field := range tmpl.RequiredFields {
		if !fields.HasValue(field) {
			missing = append(missing, field)
		}
	}

	return &ResolveResult{
		Sections:      sections,
		MissingFields: missing,
	}
}

// substitutionMap builds the placeholder substitution values for a field
// set. Client name, client address, matter description, total debt and due
// date stay visibly flagged with bracketed labels when empty; the remaining
// fields degrade to whatever they hold, including empty string. Tokens for
// identifiers outside this map are left verbatim in the body.
func substitutionMap(f models.FieldSet) map[string]string {
	return map[string]string{
		models.FieldClientName:        orPlaceholder(f.ClientName, "[CLIENT NAME]"),
		models.FieldClientAddress:     orPlaceholder(f.ClientAddress, "[CLIENT ADDRESS]"),
		models.FieldFirmName:          f.FirmName,
		models.FieldAttorneyName:      f.AttorneyName,
		models.FieldEffectiveDate:     f.EffectiveDate,
		models.FieldMatterDescription: orPlaceholder(f.MatterDescription, "[MATTER DESCRIPTION]"),
		models.FieldJurisdiction:      f.Jurisdiction,
		models.FieldHourlyRate:        f.HourlyRate,
		models.FieldRetainerAmount:    f.RetainerAmount,
		models.FieldFlatFeeAmount:     f.FlatFeeAmount,
		models.FieldTotalDebt:         orPlaceholder(f.TotalDebt, "[AMOUNT]"),
		models.FieldDueDate:           orPlaceholder(f.DueDate, "[DUE DATE]"),
	}
}

// substitute replaces every {{name}} token with its mapped value.
func substitute(body string, subs map[string]string) string {
	for name, value := range subs {
		body = strings.ReplaceAll(body, "{{"+name+"}}", value)
	}
	return body
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
