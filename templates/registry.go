// Package templates holds the compiled-in document template catalog and the
// registry that serves it. The catalog is loaded and validated once at
// process start and never mutated.
package templates

import (
	"fmt"

	"lexiforge-backend/models"
)

// Registry is the read-only catalog of document templates.
type Registry struct {
	templates map[models.DocType]*models.DocumentTemplate
	order     []models.DocType
}

// NewRegistry builds the registry from the built-in catalog. A malformed
// catalog is a configuration error and should be fatal to the caller.
func NewRegistry() (*Registry, error) {
	return NewRegistryWith(catalog()...)
}

// NewRegistryWith builds a registry from an explicit template list,
// validating structural invariants: unique template ids, unique clause ids
// within a template, and required-field names drawn from the fixed key set.
func NewRegistryWith(templates ...models.DocumentTemplate) (*Registry, error) {
	known := make(map[string]bool)
	for _, name := range models.FieldNames() {
		known[name] = true
	}

	r := &Registry{templates: make(map[models.DocType]*models.DocumentTemplate)}
	for i := range templates {
		tmpl := templates[i]
		if tmpl.ID == "" {
			return nil, fmt.Errorf("template %q has no id", tmpl.Name)
		}
		if _, exists := r.templates[tmpl.ID]; exists {
			return nil, fmt.Errorf("duplicate template id: %s", tmpl.ID)
		}

		clauseIDs := make(map[string]bool)
		for _, clause := range tmpl.Clauses {
			if clause.ID == "" {
				return nil, fmt.Errorf("template %s has a clause with no id", tmpl.ID)
			}
			if clauseIDs[clause.ID] {
				return nil, fmt.Errorf("template %s: duplicate clause id: %s", tmpl.ID, clause.ID)
			}
			clauseIDs[clause.ID] = true
			if clause.Condition != nil && !known[clause.Condition.Field] {
				return nil, fmt.Errorf("template %s: clause %s condition references unknown field %s",
					tmpl.ID, clause.ID, clause.Condition.Field)
			}
		}

		for _, field := range tmpl.RequiredFields {
			if !known[field] {
				return nil, fmt.Errorf("template %s requires unknown field %s", tmpl.ID, field)
			}
		}

		r.templates[tmpl.ID] = &tmpl
		r.order = append(r.order, tmpl.ID)
	}
	return r, nil
}

// Get returns the template for the given document type.
func (r *Registry) Get(docType models.DocType) (*models.DocumentTemplate, bool) {
	tmpl, ok := r.templates[docType]
	return tmpl, ok
}

// List returns every template in catalog order.
func (r *Registry) List() []*models.DocumentTemplate {
	out := make([]*models.DocumentTemplate, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id])
	}
	return out
}
