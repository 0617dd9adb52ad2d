package adapters

import (
	"github.com/md-tools/revenue-atlas/pkg/models/api"
	"github.com/md-tools/revenue-atlas/pkg/models/domain"
)

// MapScanResultToAPI flattens a domain ScanResult into the HTTP response
// shape.
func MapScanResultToAPI(result domain.ScanResult) api.ScanResult {
	gaps := make([]api.ProgramGap, 0, len(result.ProgramGaps))
	for _, g := range result.ProgramGaps {
		gaps = append(gaps, api.ProgramGap{
			Category:         string(g.Category),
			BillingCodes:     g.BillingCodes,
			EligiblePatients: g.EligiblePatients,
			EnrolledPatients: g.EnrolledPatients,
			CaptureRate:      g.CaptureRate,
			CurrentAnnual:    g.CurrentAnnualRevenue,
			PotentialAnnual:  g.PotentialAnnualRevenue,
			AnnualGap:        g.AnnualGap,
		})
	}

	return api.ScanResult{
		Provider: api.Provider{
			NPI:       result.Provider.NPI,
			Name:      result.Provider.Name,
			Specialty: result.Provider.Specialty,
			City:      result.Provider.City,
			State:     result.Provider.State,
			Patients:  result.Provider.TotalPatients,
		},
		Score: api.Score{
			Value: result.Score.Value,
			Tier:  result.Score.Tier,
			Color: result.Score.Color,
		},
		ProgramGaps: gaps,
		CodingGap: api.CodingGap{
			ShiftableVisits: result.CodingGap.ShiftableVisits,
			Shift:           result.CodingGap.Shift,
			AnnualGap:       result.CodingGap.AnnualGap,
		},
		Actions:            mapActions(result.Actions),
		TotalMissedRevenue: result.TotalMissedRevenue,
		DataSource:         string(result.Source),
	}
}

// MapGroupScanResultToAPI flattens a group report.
func MapGroupScanResultToAPI(group domain.GroupScanResult) api.GroupScanResult {
	outcomes := make([]api.ScanOutcome, 0, len(group.Outcomes))
	for _, o := range group.Outcomes {
		outcome := api.ScanOutcome{NPI: o.NPI, FailureReason: o.FailureReason}
		if o.Result != nil {
			mapped := MapScanResultToAPI(*o.Result)
			outcome.Result = &mapped
		}
		outcomes = append(outcomes, outcome)
	}

	buckets := make([]api.ScoreBucket, 0, len(group.ScoreDistribution))
	for _, b := range group.ScoreDistribution {
		buckets = append(buckets, api.ScoreBucket{Label: b.Label, Count: b.Count})
	}

	specialties := make([]api.SpecialtyBreakdown, 0, len(group.Specialties))
	for _, s := range group.Specialties {
		specialties = append(specialties, api.SpecialtyBreakdown{
			Specialty:     s.Specialty,
			Providers:     s.Providers,
			MissedRevenue: s.MissedRevenue,
		})
	}

	return api.GroupScanResult{
		Outcomes:              outcomes,
		TotalProviders:        group.TotalProviders,
		SuccessfulScans:       group.SuccessfulScans,
		FailedScans:           group.FailedScans,
		TotalMissedRevenue:    group.TotalMissedRevenue,
		TotalCurrentRevenue:   group.TotalCurrentRevenue,
		TotalPotentialRevenue: group.TotalPotentialRevenue,
		AverageScore:          group.AverageScore,
		ScoreDistribution:     buckets,
		Specialties:           specialties,
		Actions:               mapActions(group.Actions),
	}
}

func mapActions(actions []domain.ActionItem) []api.ActionItem {
	out := make([]api.ActionItem, 0, len(actions))
	for _, a := range actions {
		out = append(out, api.ActionItem{
			Priority:          a.Priority,
			Category:          string(a.Category),
			Title:             a.Title,
			Description:       a.Description,
			Difficulty:        string(a.Difficulty),
			ProvidersAffected: a.ProvidersAffected,
			AnnualRevenue:     a.AnnualRevenue,
		})
	}
	return out
}
