package gap

import (
	"fmt"
	"math"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
)

// CalculateProgramGaps converts one provider's billing summary into the four
// care-program gaps (CCM, RPM, BHI, AWV), in that fixed order. Pure and
// deterministic; no I/O.
func CalculateProgramGaps(rec domain.ProviderRecord, bm domain.SpecialtyBenchmark) []domain.ProgramGap {
	return []domain.ProgramGap{
		monthlyProgramGap(domain.CategoryCCM, rec, EligibilityCCM, MonthlyRateCCM, rec.ProgramServices.CCM),
		monthlyProgramGap(domain.CategoryRPM, rec, EligibilityRPM, MonthlyRateRPM, rec.ProgramServices.RPM),
		monthlyProgramGap(domain.CategoryBHI, rec, EligibilityBHI, MonthlyRateBHI, rec.ProgramServices.BHI),
		annualVisitGap(domain.CategoryAWV, rec, EligibilityAWV, VisitRateAWV, rec.ProgramServices.AWV),
	}
}

// monthlyProgramGap prices a program billed monthly per enrolled patient.
// Enrollment is derived from the annual service count at the monthly cadence.
func monthlyProgramGap(
	c domain.Category,
	rec domain.ProviderRecord,
	eligibilityFraction float64,
	monthlyRate float64,
	annualServices int,
) domain.ProgramGap {
	eligible := int(float64(rec.TotalPatients) * eligibilityFraction)
	enrolled := annualServices / monthlyCadence

	missing := eligible - enrolled
	if missing < 0 {
		missing = 0
	}

	current := float64(enrolled) * monthlyRate * monthlyCadence
	potential := float64(eligible) * monthlyRate * monthlyCadence

	return domain.ProgramGap{
		Category:               c,
		BillingCodes:           BillingCodes(c),
		EligiblePatients:       eligible,
		EnrolledPatients:       enrolled,
		MonthlyRate:            monthlyRate,
		CaptureRate:            captureRate(enrolled, eligible),
		CurrentAnnualRevenue:   current,
		PotentialAnnualRevenue: potential,
		AnnualGap:              float64(missing) * monthlyRate * monthlyCadence,
	}
}

// annualVisitGap prices a once-a-year visit program (AWV).
func annualVisitGap(
	c domain.Category,
	rec domain.ProviderRecord,
	eligibilityFraction float64,
	visitRate float64,
	annualVisits int,
) domain.ProgramGap {
	eligible := int(float64(rec.TotalPatients) * eligibilityFraction)
	completed := annualVisits

	missing := eligible - completed
	if missing < 0 {
		missing = 0
	}

	return domain.ProgramGap{
		Category:               c,
		BillingCodes:           BillingCodes(c),
		EligiblePatients:       eligible,
		EnrolledPatients:       completed,
		MonthlyRate:            visitRate,
		CaptureRate:            captureRate(completed, eligible),
		CurrentAnnualRevenue:   float64(completed) * visitRate,
		PotentialAnnualRevenue: float64(eligible) * visitRate,
		AnnualGap:              float64(missing) * visitRate,
	}
}

// CalculateCodingGap compares the provider's mid/high evaluation-level mix to
// benchmark and prices the shift of under-coded level-3 visits to level 4.
func CalculateCodingGap(rec domain.ProviderRecord, bm domain.SpecialtyBenchmark) domain.CodingGap {
	current := domain.LevelShares{
		Level3: rec.Visits.Share(3),
		Level4: rec.Visits.Share(4),
		Level5: rec.Visits.Share(5),
	}
	target := domain.LevelShares{
		Level3: bm.VisitShares.Level3,
		Level4: bm.VisitShares.Level4,
		Level5: bm.VisitShares.Level5,
	}

	shiftable := int(math.Floor(float64(rec.Visits.Level3) * codingShiftFraction))

	// A provider already at or above the benchmark high-level mix has no
	// coding gap, regardless of level-3 volume.
	if rec.Visits.Share(4)+rec.Visits.Share(5) >= bm.VisitShares.HighLevelShare() {
		shiftable = 0
	}

	delta := EMLevelRate(4) - EMLevelRate(3)
	annual := float64(shiftable) * delta

	shift := "coding mix at or above benchmark"
	if shiftable > 0 {
		shift = fmt.Sprintf("shift %d visits from level 3 to level 4", shiftable)
	}

	return domain.CodingGap{
		CurrentShares:   current,
		BenchmarkShares: target,
		ShiftableVisits: shiftable,
		Shift:           shift,
		AnnualGap:       annual,
	}
}

// TotalMissedRevenue sums the coding gap and the four program gaps. This is
// the single source of the ScanResult total.
func TotalMissedRevenue(programs []domain.ProgramGap, coding domain.CodingGap) float64 {
	total := coding.AnnualGap
	for _, g := range programs {
		total += g.AnnualGap
	}
	return total
}

func captureRate(enrolled, eligible int) float64 {
	if eligible == 0 {
		return 0
	}
	rate := float64(enrolled) / float64(eligible)
	if rate > 1 {
		rate = 1
	}
	return rate
}
