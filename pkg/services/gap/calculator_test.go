package gap

import (
	"testing"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func benchmarkInternalMedicine() domain.SpecialtyBenchmark {
	return domain.SpecialtyBenchmark{
		Specialty:            "Internal Medicine",
		AvgRevenuePerPatient: 240,
		AvgPayment:           102,
		VisitShares: domain.EMVisitShares{
			Level1: 0.02, Level2: 0.10, Level3: 0.42, Level4: 0.36, Level5: 0.10,
		},
		Adoption: domain.ProgramAdoptionRates{CCM: 0.02, RPM: 0.01, BHI: 0.005, AWV: 0.25},
	}
}

func TestCalculateProgramGaps_CCMWorkedExample(t *testing.T) {
	// 1,000 patients, zero CCM services: eligible 600, enrolled 0,
	// gap = 600 * 62 * 12.
	rec := domain.ProviderRecord{
		NPI:           "1234567890",
		TotalPatients: 1000,
	}

	gaps := CalculateProgramGaps(rec, benchmarkInternalMedicine())
	ccm := gaps[0]

	assert.Equal(t, domain.CategoryCCM, ccm.Category)
	assert.Equal(t, 600, ccm.EligiblePatients)
	assert.Equal(t, 0, ccm.EnrolledPatients)
	assert.Equal(t, 0.0, ccm.CaptureRate)
	assert.Equal(t, 446400.0, ccm.AnnualGap)
	assert.Equal(t, ccm.PotentialAnnualRevenue-ccm.CurrentAnnualRevenue, ccm.AnnualGap)
}

func TestCalculateProgramGaps_OverEnrollmentClampsToZero(t *testing.T) {
	// 100 patients, 15% BHI eligibility -> 15 eligible. 300 annual services
	// at monthly cadence -> 25 enrolled, above eligible.
	rec := domain.ProviderRecord{
		TotalPatients:   100,
		ProgramServices: domain.ProgramServiceCounts{BHI: 300},
	}

	gaps := CalculateProgramGaps(rec, benchmarkInternalMedicine())
	bhi := gaps[2]

	assert.Equal(t, domain.CategoryBHI, bhi.Category)
	assert.Equal(t, 15, bhi.EligiblePatients)
	assert.Equal(t, 25, bhi.EnrolledPatients)
	assert.Equal(t, 0.0, bhi.AnnualGap)
	assert.Equal(t, 1.0, bhi.CaptureRate)
}

func TestCalculateProgramGaps_AWVUsesPerVisitRate(t *testing.T) {
	rec := domain.ProviderRecord{
		TotalPatients:   200,
		ProgramServices: domain.ProgramServiceCounts{AWV: 50},
	}

	gaps := CalculateProgramGaps(rec, benchmarkInternalMedicine())
	awv := gaps[3]

	assert.Equal(t, domain.CategoryAWV, awv.Category)
	assert.Equal(t, 200, awv.EligiblePatients)
	assert.Equal(t, 50, awv.EnrolledPatients)
	assert.Equal(t, 150*VisitRateAWV, awv.AnnualGap)
	assert.Equal(t, 0.25, awv.CaptureRate)
}

func TestCalculateProgramGaps_ZeroPatients(t *testing.T) {
	gaps := CalculateProgramGaps(domain.ProviderRecord{}, benchmarkInternalMedicine())

	for _, g := range gaps {
		assert.Equal(t, 0, g.EligiblePatients)
		assert.Equal(t, 0.0, g.AnnualGap, "category %s", g.Category)
		assert.Equal(t, 0.0, g.CaptureRate)
	}
}

func TestCalculateProgramGaps_NeverNegative(t *testing.T) {
	rec := domain.ProviderRecord{
		TotalPatients: 50,
		ProgramServices: domain.ProgramServiceCounts{
			CCM: 10000, RPM: 10000, BHI: 10000, AWV: 10000,
		},
	}

	for _, g := range CalculateProgramGaps(rec, benchmarkInternalMedicine()) {
		assert.GreaterOrEqual(t, g.AnnualGap, 0.0, "category %s", g.Category)
		assert.LessOrEqual(t, g.CaptureRate, 1.0)
	}
}

func TestCalculateCodingGap_UnderCodedProvider(t *testing.T) {
	rec := domain.ProviderRecord{
		Visits: domain.EMVisitCounts{Level2: 100, Level3: 600, Level4: 250, Level5: 50},
	}

	cg := CalculateCodingGap(rec, benchmarkInternalMedicine())

	// 15% of 600 level-3 visits, priced at the level 3 -> 4 delta.
	assert.Equal(t, 90, cg.ShiftableVisits)
	assert.Equal(t, 90*(EMLevelRate(4)-EMLevelRate(3)), cg.AnnualGap)
	assert.Equal(t, "shift 90 visits from level 3 to level 4", cg.Shift)
	assert.InDelta(t, 0.6, cg.CurrentShares.Level3, 1e-9)
	assert.Equal(t, 0.36, cg.BenchmarkShares.Level4)
}

func TestCalculateCodingGap_AtOrAboveBenchmarkIsZero(t *testing.T) {
	// 60% of visits at level 4/5, well above the 46% benchmark mix.
	rec := domain.ProviderRecord{
		Visits: domain.EMVisitCounts{Level3: 400, Level4: 450, Level5: 150},
	}

	cg := CalculateCodingGap(rec, benchmarkInternalMedicine())

	assert.Equal(t, 0, cg.ShiftableVisits)
	assert.Equal(t, 0.0, cg.AnnualGap)
	assert.Equal(t, "coding mix at or above benchmark", cg.Shift)
}

func TestCalculateCodingGap_ZeroVisits(t *testing.T) {
	cg := CalculateCodingGap(domain.ProviderRecord{}, benchmarkInternalMedicine())

	assert.Equal(t, 0.0, cg.AnnualGap)
	assert.Equal(t, 0.0, cg.CurrentShares.Level3)
}

func TestTotalMissedRevenue_SumsAllFiveCategories(t *testing.T) {
	rec := domain.ProviderRecord{
		TotalPatients: 800,
		Visits:        domain.EMVisitCounts{Level2: 200, Level3: 900, Level4: 300, Level5: 60},
		ProgramServices: domain.ProgramServiceCounts{
			CCM: 240, AWV: 120,
		},
	}
	bm := benchmarkInternalMedicine()

	programs := CalculateProgramGaps(rec, bm)
	coding := CalculateCodingGap(rec, bm)

	want := coding.AnnualGap
	for _, g := range programs {
		want += g.AnnualGap
	}
	assert.Equal(t, want, TotalMissedRevenue(programs, coding))
	assert.Greater(t, want, 0.0)
}
