package models

import (
	"fmt"
	"time"
)

// BillingType represents the fee arrangement for a matter
type BillingType string

const (
	BillingHourly  BillingType = "hourly"
	BillingFlatFee BillingType = "flat_fee"
)

// Field name constants for the fixed FieldSet key space
const (
	FieldClientName               = "clientName"
	FieldClientAddress            = "clientAddress"
	FieldClientEmail              = "clientEmail"
	FieldAttorneyName             = "attorneyName"
	FieldFirmName                 = "firmName"
	FieldMatterDescription        = "matterDescription"
	FieldJurisdiction             = "jurisdiction"
	FieldEffectiveDate            = "effectiveDate"
	FieldBillingType              = "billingType"
	FieldHourlyRate               = "hourlyRate"
	FieldRetainerAmount           = "retainerAmount"
	FieldFlatFeeAmount            = "flatFeeAmount"
	FieldTotalDebt                = "totalDebt"
	FieldDueDate                  = "dueDate"
	FieldIncludeTerminationClause = "includeTerminationClause"
	FieldIncludeArbitrationClause = "includeArbitrationClause"
	FieldIsBusinessEntity         = "isBusinessEntity"
)

// FieldSet holds every client-supplied value driving one document's
// generation. Every key is always present; an empty string or false means
// "no meaningful value", never key absence.
type FieldSet struct {
	// Client info
	ClientName    string `json:"clientName"`
	ClientAddress string `json:"clientAddress"`
	ClientEmail   string `json:"clientEmail"`

	// Attorney/firm info
	AttorneyName string `json:"attorneyName"`
	FirmName     string `json:"firmName"`

	// Matter details
	MatterDescription string `json:"matterDescription"`
	Jurisdiction      string `json:"jurisdiction"`
	EffectiveDate     string `json:"effectiveDate"`

	// Financials
	BillingType    BillingType `json:"billingType"`
	HourlyRate     string      `json:"hourlyRate"`
	RetainerAmount string      `json:"retainerAmount"`
	FlatFeeAmount  string      `json:"flatFeeAmount"`
	TotalDebt      string      `json:"totalDebt"`
	DueDate        string      `json:"dueDate"`

	// Clause toggles
	IncludeTerminationClause bool `json:"includeTerminationClause"`
	IncludeArbitrationClause bool `json:"includeArbitrationClause"`
	IsBusinessEntity         bool `json:"isBusinessEntity"`
}

// NewFieldSet returns a FieldSet with the drafting defaults applied.
func NewFieldSet() FieldSet {
	return FieldSet{
		AttorneyName:             "John Doe, Esq.",
		FirmName:                 "LexiForge Legal Group",
		Jurisdiction:             "New York",
		EffectiveDate:            time.Now().Format("2006-01-02"),
		BillingType:              BillingHourly,
		HourlyRate:               "350",
		RetainerAmount:           "2500",
		FlatFeeAmount:            "5000",
		IncludeTerminationClause: true,
	}
}

// Clone returns an independent copy of the field set. All members are value
// types, so a struct copy is a full snapshot.
func (f FieldSet) Clone() FieldSet {
	return f
}

// FieldNames lists every key in declaration order.
func FieldNames() []string {
	return []string{
		FieldClientName,
		FieldClientAddress,
		FieldClientEmail,
		FieldAttorneyName,
		FieldFirmName,
		FieldMatterDescription,
		FieldJurisdiction,
		FieldEffectiveDate,
		FieldBillingType,
		FieldHourlyRate,
		FieldRetainerAmount,
		FieldFlatFeeAmount,
		FieldTotalDebt,
		FieldDueDate,
		FieldIncludeTerminationClause,
		FieldIncludeArbitrationClause,
		FieldIsBusinessEntity,
	}
}

// Value returns the raw value stored under name. The second return is false
// for names outside the fixed key space.
func (f FieldSet) Value(name string) (interface{}, bool) {
	switch name {
	case FieldClientName:
		return f.ClientName, true
	case FieldClientAddress:
		return f.ClientAddress, true
	case FieldClientEmail:
		return f.ClientEmail, true
	case FieldAttorneyName:
		return f.AttorneyName, true
	case FieldFirmName:
		return f.FirmName, true
	case FieldMatterDescription:
		return f.MatterDescription, true
	case FieldJurisdiction:
		return f.Jurisdiction, true
	case FieldEffectiveDate:
		return f.EffectiveDate, true
	case FieldBillingType:
		return string(f.BillingType), true
	case FieldHourlyRate:
		return f.HourlyRate, true
	case FieldRetainerAmount:
		return f.RetainerAmount, true
	case FieldFlatFeeAmount:
		return f.FlatFeeAmount, true
	case FieldTotalDebt:
		return f.TotalDebt, true
	case FieldDueDate:
		return f.DueDate, true
	case FieldIncludeTerminationClause:
		return f.IncludeTerminationClause, true
	case FieldIncludeArbitrationClause:
		return f.IncludeArbitrationClause, true
	case FieldIsBusinessEntity:
		return f.IsBusinessEntity, true
	default:
		return nil, false
	}
}

// Set writes value under name. String-typed fields accept strings, boolean
// toggles accept bools; anything else is rejected.
func (f *FieldSet) Set(name string, value interface{}) error {
	switch name {
	case FieldIncludeTerminationClause, FieldIncludeArbitrationClause, FieldIsBusinessEntity:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field %s requires a boolean value", name)
		}
		switch name {
		case FieldIncludeTerminationClause:
			f.IncludeTerminationClause = b
		case FieldIncludeArbitrationClause:
			f.IncludeArbitrationClause = b
		case FieldIsBusinessEntity:
			f.IsBusinessEntity = b
		}
		return nil
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field %s requires a string value", name)
	}

	switch name {
	case FieldClientName:
		f.ClientName = s
	case FieldClientAddress:
		f.ClientAddress = s
	case FieldClientEmail:
		f.ClientEmail = s
	case FieldAttorneyName:
		f.AttorneyName = s
	case FieldFirmName:
		f.FirmName = s
	case FieldMatterDescription:
		f.MatterDescription = s
	case FieldJurisdiction:
		f.Jurisdiction = s
	case FieldEffectiveDate:
		f.EffectiveDate = s
	case FieldBillingType:
		f.BillingType = BillingType(s)
	case FieldHourlyRate:
		f.HourlyRate = s
	case FieldRetainerAmount:
		f.RetainerAmount = s
	case FieldFlatFeeAmount:
		f.FlatFeeAmount = s
	case FieldTotalDebt:
		f.TotalDebt = s
	case FieldDueDate:
		f.DueDate = s
	default:
		return fmt.Errorf("unknown field: %s", name)
	}
	return nil
}

// HasValue reports whether the field holds a meaningful value: a non-empty
// string, or true for boolean toggles. Unknown names report false.
func (f FieldSet) HasValue(name string) bool {
	v, ok := f.Value(name)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case bool:
		return t
	default:
		return false
	}
}
