package scan

import (
	"testing"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestSynthesizeProvider_Deterministic(t *testing.T) {
	first := SynthesizeProvider("1093817465")
	second := SynthesizeProvider("1093817465")

	assert.Equal(t, first, second)
}

func TestSynthesizeProvider_DistinctIDsDiffer(t *testing.T) {
	a := SynthesizeProvider("1093817465")
	b := SynthesizeProvider("1093817466")

	// Not a hard guarantee per field, but two adjacent ids matching on the
	// whole record would mean the seed is being ignored.
	assert.NotEqual(t, a, b)
}

func TestSynthesizeProvider_PlausibleRecord(t *testing.T) {
	rec := SynthesizeProvider("1234567890")

	assert.Equal(t, "1234567890", rec.NPI)
	assert.Equal(t, domain.DataSourceEstimated, rec.Source)
	assert.NotEmpty(t, rec.Name)
	assert.NotEmpty(t, rec.Specialty)
	assert.NotEmpty(t, rec.City)
	assert.NotEmpty(t, rec.State)
	assert.GreaterOrEqual(t, rec.TotalPatients, 400)
	assert.Less(t, rec.TotalPatients, 2000)
	assert.Greater(t, rec.TotalPayment, 0.0)
	assert.Greater(t, rec.Visits.Total(), 0)
	assert.GreaterOrEqual(t, rec.TotalServices, rec.Visits.Total())
}
