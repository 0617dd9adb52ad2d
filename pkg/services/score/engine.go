package score

import (
	"math"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
)

// neutralScore is assigned when no benchmark data exists at all.
const neutralScore = 50

type tier struct {
	threshold int
	label     string
	color     string
}

// Tier table, evaluated top-down, first match wins.
var tiers = []tier{
	{90, "Elite", "#16a34a"},
	{75, "Strong", "#65a30d"},
	{60, "Average", "#ca8a04"},
	{40, "Below Average", "#ea580c"},
	{0, "Critical", "#dc2626"},
}

// Compute derives the 0-100 composite score from three benchmark-relative
// factors: coding-level intensity, revenue per patient, and program-adoption
// breadth. Each factor is capped at 1.0; a provider cannot over-score past
// benchmark on any single factor. A nil benchmark yields a fixed neutral
// score instead of failing.
func Compute(rec domain.ProviderRecord, bm *domain.SpecialtyBenchmark) domain.Score {
	if bm == nil {
		s := domain.Score{Value: neutralScore}
		s.Tier, s.Color = tierFor(neutralScore)
		return s
	}

	factors := domain.ScoreFactors{
		CodingIntensity:   codingIntensity(rec, *bm),
		RevenuePerPatient: revenuePerPatient(rec, *bm),
		ProgramBreadth:    programBreadth(rec),
	}

	avg := (factors.CodingIntensity + factors.RevenuePerPatient + factors.ProgramBreadth) / 3
	value := int(math.Round(avg * 100))

	s := domain.Score{Value: value, Factors: factors}
	s.Tier, s.Color = tierFor(value)
	return s
}

// codingIntensity is the provider's high-level-visit share relative to the
// benchmark's target share.
func codingIntensity(rec domain.ProviderRecord, bm domain.SpecialtyBenchmark) float64 {
	target := bm.VisitShares.HighLevelShare()
	current := rec.Visits.Share(4) + rec.Visits.Share(5)
	return cappedRatio(current, target)
}

func revenuePerPatient(rec domain.ProviderRecord, bm domain.SpecialtyBenchmark) float64 {
	if rec.TotalPatients == 0 {
		return 0
	}
	current := rec.TotalPayment / float64(rec.TotalPatients)
	return cappedRatio(current, bm.AvgRevenuePerPatient)
}

// programBreadth counts the four programs with any billed service at all.
func programBreadth(rec domain.ProviderRecord) float64 {
	active := 0
	for _, n := range []int{
		rec.ProgramServices.CCM,
		rec.ProgramServices.RPM,
		rec.ProgramServices.BHI,
		rec.ProgramServices.AWV,
	} {
		if n > 0 {
			active++
		}
	}
	return float64(active) / 4
}

func cappedRatio(current, target float64) float64 {
	if target == 0 {
		return 0
	}
	r := current / target
	if r > 1 {
		r = 1
	}
	return r
}

func tierFor(value int) (label, color string) {
	for _, t := range tiers {
		if value >= t.threshold {
			return t.label, t.color
		}
	}
	last := tiers[len(tiers)-1]
	return last.label, last.color
}
