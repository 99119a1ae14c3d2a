package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldSetDefaults(t *testing.T) {
	f := NewFieldSet()

	assert.Equal(t, "John Doe, Esq.", f.AttorneyName)
	assert.Equal(t, "LexiForge Legal Group", f.FirmName)
	assert.Equal(t, "New York", f.Jurisdiction)
	assert.Equal(t, time.Now().Format("2006-01-02"), f.EffectiveDate)
	assert.Equal(t, BillingHourly, f.BillingType)
	assert.Equal(t, "350", f.HourlyRate)
	assert.Equal(t, "2500", f.RetainerAmount)
	assert.Equal(t, "5000", f.FlatFeeAmount)
	assert.True(t, f.IncludeTerminationClause)
	assert.False(t, f.IncludeArbitrationClause)
	assert.False(t, f.IsBusinessEntity)

	// Client-facing fields start empty.
	assert.Empty(t, f.ClientName)
	assert.Empty(t, f.ClientAddress)
	assert.Empty(t, f.MatterDescription)
}

func TestFieldSetSet(t *testing.T) {
	t.Run("string fields accept strings", func(t *testing.T) {
		f := NewFieldSet()
		require.NoError(t, f.Set(FieldClientName, "Acme Corp"))
		assert.Equal(t, "Acme Corp", f.ClientName)
	})

	t.Run("toggles accept bools", func(t *testing.T) {
		f := NewFieldSet()
		require.NoError(t, f.Set(FieldIncludeArbitrationClause, true))
		assert.True(t, f.IncludeArbitrationClause)
	})

	t.Run("wrong type is rejected", func(t *testing.T) {
		f := NewFieldSet()
		assert.Error(t, f.Set(FieldClientName, true))
		assert.Error(t, f.Set(FieldIncludeTerminationClause, "yes"))
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		f := NewFieldSet()
		assert.Error(t, f.Set("caseNumber", "42"))
	})

	t.Run("billing type round-trips through a string", func(t *testing.T) {
		f := NewFieldSet()
		require.NoError(t, f.Set(FieldBillingType, string(BillingFlatFee)))
		assert.Equal(t, BillingFlatFee, f.BillingType)
	})
}

func TestFieldSetValue(t *testing.T) {
	f := NewFieldSet()

	v, ok := f.Value(FieldJurisdiction)
	require.True(t, ok)
	assert.Equal(t, "New York", v)

	v, ok = f.Value(FieldIncludeTerminationClause)
	require.True(t, ok)
	assert.Equal(t, true, v)

	_, ok = f.Value("caseNumber")
	assert.False(t, ok)
}

func TestFieldSetHasValue(t *testing.T) {
	f := NewFieldSet()

	assert.True(t, f.HasValue(FieldJurisdiction))
	assert.False(t, f.HasValue(FieldClientName), "empty string is not a meaningful value")
	assert.True(t, f.HasValue(FieldIncludeTerminationClause))
	assert.False(t, f.HasValue(FieldIsBusinessEntity), "false toggle is not a meaningful value")
	assert.False(t, f.HasValue("caseNumber"))
}

func TestFieldSetCloneIsIndependent(t *testing.T) {
	f := NewFieldSet()
	require.NoError(t, f.Set(FieldClientName, "Original"))

	snapshot := f.Clone()
	require.NoError(t, f.Set(FieldClientName, "Changed"))

	assert.Equal(t, "Original", snapshot.ClientName)
	assert.Equal(t, "Changed", f.ClientName)
}

func TestFieldNamesCoverEveryKey(t *testing.T) {
	f := NewFieldSet()
	for _, name := range FieldNames() {
		_, ok := f.Value(name)
		assert.True(t, ok, "field %s should be addressable", name)
	}
	assert.Len(t, FieldNames(), 17)
}
