package models

import "strings"

// DocType identifies a document template
type DocType string

const (
	DocTypeRetainer   DocType = "retainer"
	DocTypeEndRep     DocType = "end_rep"
	DocTypeCollection DocType = "collection"
	DocTypeFDDReview  DocType = "fdd_review"
)

// ClauseTag classifies why a clause is part of a document
type ClauseTag string

const (
	TagStandard     ClauseTag = "standard"
	TagJurisdiction ClauseTag = "jurisdiction"
	TagBilling      ClauseTag = "billing"
	TagOptional     ClauseTag = "optional"
)

// ConditionOperator is the comparison a ClauseCondition applies
type ConditionOperator string

const (
	// OpContainsFold matches when the field value contains Value,
	// case-insensitively.
	OpContainsFold ConditionOperator = "contains_fold"
	// OpEquals matches when the field value equals Value exactly.
	OpEquals ConditionOperator = "equals"
	// OpIsTrue matches when a boolean field is set.
	OpIsTrue ConditionOperator = "is_true"
)

// ClauseCondition is a data-driven visibility rule evaluated against a
// FieldSet. Conditions are total: an operator mismatch or unknown field
// simply evaluates to false.
type ClauseCondition struct {
	Field    string            `json:"field"`
	Operator ConditionOperator `json:"operator"`
	Value    string            `json:"value,omitempty"`
}

// Matches evaluates the condition against the given field set.
func (c ClauseCondition) Matches(fields FieldSet) bool {
	raw, ok := fields.Value(c.Field)
	if !ok {
		return false
	}
	switch c.Operator {
	case OpContainsFold:
		s, ok := raw.(string)
		return ok && strings.Contains(strings.ToLower(s), strings.ToLower(c.Value))
	case OpEquals:
		s, ok := raw.(string)
		return ok && s == c.Value
	case OpIsTrue:
		b, ok := raw.(bool)
		return ok && b
	default:
		return false
	}
}

// ClauseDefinition is one titled block of legal text within a template.
// Definitions are immutable after registry load.
type ClauseDefinition struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// Body may contain {{fieldName}} placeholder tokens.
	Body string `json:"body"`
	// Condition gates visibility; nil means always included.
	Condition *ClauseCondition `json:"condition,omitempty"`
	Tag       ClauseTag        `json:"tag,omitempty"`
	// Immutable marks policy-mandated language not intended for free-text
	// editing downstream.
	Immutable bool `json:"immutable,omitempty"`
	// Explanation is a static plain-English description of the clause.
	Explanation string `json:"explanation,omitempty"`
}

// DocumentTemplate is one document type's ordered clause list plus the
// fields it needs to be considered complete.
type DocumentTemplate struct {
	ID             DocType            `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Clauses        []ClauseDefinition `json:"clauses"`
	RequiredFields []string           `json:"required_fields"`
}

// ResolvedSection is the renderable output for one visible clause.
type ResolvedSection struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tag       ClauseTag `json:"tag,omitempty"`
	Immutable bool      `json:"immutable,omitempty"`
}
