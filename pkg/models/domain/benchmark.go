package domain

// EMVisitShares is a target distribution across the five evaluation levels.
// Shares are fractions in [0,1] and sum to ~1.
type EMVisitShares struct {
	Level1 float64
	Level2 float64
	Level3 float64
	Level4 float64
	Level5 float64
}

// HighLevelShare returns the combined target share of level 4 and 5 visits.
func (s EMVisitShares) HighLevelShare() float64 {
	return s.Level4 + s.Level5
}

// ProgramAdoptionRates is the benchmark adoption rate per program, as the
// fraction of a specialty's providers billing the program at all.
type ProgramAdoptionRates struct {
	CCM float64
	RPM float64
	BHI float64
	AWV float64
}

// SpecialtyBenchmark is the aggregate billing norm for one specialty, used as
// the normative comparison point for gap and score computation.
type SpecialtyBenchmark struct {
	Specialty            string
	AvgRevenuePerPatient float64
	AvgPayment           float64
	VisitShares          EMVisitShares
	Adoption             ProgramAdoptionRates
}

// DefaultBenchmark is the neutral benchmark substituted when a provider's
// specialty has no published norm. Unknown specialties degrade to it, they
// are never an error.
func DefaultBenchmark() SpecialtyBenchmark {
	return SpecialtyBenchmark{
		Specialty:            "General Practice",
		AvgRevenuePerPatient: 210,
		AvgPayment:           96,
		VisitShares: EMVisitShares{
			Level1: 0.03,
			Level2: 0.12,
			Level3: 0.45,
			Level4: 0.32,
			Level5: 0.08,
		},
		Adoption: ProgramAdoptionRates{
			CCM: 0.05,
			RPM: 0.03,
			BHI: 0.01,
			AWV: 0.22,
		},
	}
}
