package scan

import (
	"sort"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/md-tools/revenue-atlas/pkg/services/plan"
)

// scoreBuckets are the fixed-width distribution ranges for group reporting.
var scoreBuckets = []struct {
	label     string
	low, high int
}{
	{"0-19", 0, 19},
	{"20-39", 20, 39},
	{"40-59", 40, 59},
	{"60-79", 60, 79},
	{"80-100", 80, 100},
}

// mergeOutcomes folds per-provider outcomes into the aggregate group report.
// Failed providers are excluded from every aggregate; an all-failed batch
// still yields a result with empty aggregates.
func mergeOutcomes(outcomes []domain.ScanOutcome) *domain.GroupScanResult {
	group := &domain.GroupScanResult{
		Outcomes:       outcomes,
		TotalProviders: len(outcomes),
	}

	buckets := make([]domain.ScoreBucket, len(scoreBuckets))
	for i, b := range scoreBuckets {
		buckets[i] = domain.ScoreBucket{Label: b.label, Low: b.low, High: b.high}
	}

	specialtyIdx := map[string]int{}
	categoryProviders := map[domain.Category]int{}
	scoreSum := 0

	for _, outcome := range outcomes {
		if !outcome.Succeeded() {
			group.FailedScans++
			continue
		}
		group.SuccessfulScans++
		result := outcome.Result

		group.GapTotals.Add(domain.CategoryCoding, result.CodingGap.AnnualGap)
		if result.CodingGap.AnnualGap > 0 {
			categoryProviders[domain.CategoryCoding]++
		}
		for _, g := range result.ProgramGaps {
			group.GapTotals.Add(g.Category, g.AnnualGap)
			group.TotalCurrentRevenue += g.CurrentAnnualRevenue
			group.TotalPotentialRevenue += g.PotentialAnnualRevenue
			if g.AnnualGap > 0 {
				categoryProviders[g.Category]++
			}
		}

		scoreSum += result.Score.Value
		for i := range buckets {
			if result.Score.Value >= buckets[i].Low && result.Score.Value <= buckets[i].High {
				buckets[i].Count++
				break
			}
		}

		specialty := result.Provider.Specialty
		idx, ok := specialtyIdx[specialty]
		if !ok {
			idx = len(group.Specialties)
			specialtyIdx[specialty] = idx
			group.Specialties = append(group.Specialties, domain.SpecialtyBreakdown{Specialty: specialty})
		}
		group.Specialties[idx].Providers++
		group.Specialties[idx].MissedRevenue += result.TotalMissedRevenue
	}

	group.TotalMissedRevenue = group.GapTotals.Total()
	group.ScoreDistribution = buckets
	if group.SuccessfulScans > 0 {
		group.AverageScore = float64(scoreSum) / float64(group.SuccessfulScans)
	}

	sort.Slice(group.Specialties, func(i, j int) bool {
		if group.Specialties[i].MissedRevenue != group.Specialties[j].MissedRevenue {
			return group.Specialties[i].MissedRevenue > group.Specialties[j].MissedRevenue
		}
		return group.Specialties[i].Specialty < group.Specialties[j].Specialty
	})

	// Practice-wide plan is re-ranked over the category sums for the whole
	// group, not a concatenation of per-provider plans.
	group.Actions = plan.BuildFromTotals(group.GapTotals, categoryProviders)

	return group
}
