package static

import (
	"context"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
)

// Repository serves the embedded specialty benchmark table. Benchmarks change
// rarely, so the embedded copy doubles as the development store and the
// fallback when no database is configured.
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

// GetBenchmark returns nil for an unknown specialty. Absence is a valid
// state, not an error; the caller substitutes the default benchmark.
func (r *Repository) GetBenchmark(_ context.Context, specialty string) (*domain.SpecialtyBenchmark, error) {
	bm, ok := benchmarks[specialty]
	if !ok {
		return nil, nil
	}
	out := bm
	return &out, nil
}

var benchmarks = map[string]domain.SpecialtyBenchmark{
	"Internal Medicine": {
		Specialty:            "Internal Medicine",
		AvgRevenuePerPatient: 240,
		AvgPayment:           102,
		VisitShares:          domain.EMVisitShares{Level1: 0.02, Level2: 0.10, Level3: 0.42, Level4: 0.36, Level5: 0.10},
		Adoption:             domain.ProgramAdoptionRates{CCM: 0.02, RPM: 0.01, BHI: 0.005, AWV: 0.25},
	},
	"Family Practice": {
		Specialty:            "Family Practice",
		AvgRevenuePerPatient: 205,
		AvgPayment:           92,
		VisitShares:          domain.EMVisitShares{Level1: 0.03, Level2: 0.13, Level3: 0.46, Level4: 0.31, Level5: 0.07},
		Adoption:             domain.ProgramAdoptionRates{CCM: 0.025, RPM: 0.012, BHI: 0.006, AWV: 0.30},
	},
	"Cardiology": {
		Specialty:            "Cardiology",
		AvgRevenuePerPatient: 310,
		AvgPayment:           118,
		VisitShares:          domain.EMVisitShares{Level1: 0.01, Level2: 0.07, Level3: 0.38, Level4: 0.41, Level5: 0.13},
		Adoption:             domain.ProgramAdoptionRates{CCM: 0.03, RPM: 0.04, BHI: 0.004, AWV: 0.12},
	},
	"Endocrinology": {
		Specialty:            "Endocrinology",
		AvgRevenuePerPatient: 265,
		AvgPayment:           108,
		VisitShares:          domain.EMVisitShares{Level1: 0.01, Level2: 0.08, Level3: 0.40, Level4: 0.39, Level5: 0.12},
		Adoption:             domain.ProgramAdoptionRates{CCM: 0.035, RPM: 0.05, BHI: 0.005, AWV: 0.14},
	},
	"Pulmonary Disease": {
		Specialty:            "Pulmonary Disease",
		AvgRevenuePerPatient: 285,
		AvgPayment:           112,
		VisitShares:          domain.EMVisitShares{Level1: 0.01, Level2: 0.07, Level3: 0.39, Level4: 0.40, Level5: 0.13},
		Adoption:             domain.ProgramAdoptionRates{CCM: 0.03, RPM: 0.045, BHI: 0.004, AWV: 0.10},
	},
	"Psychiatry": {
		Specialty:            "Psychiatry",
		AvgRevenuePerPatient: 230,
		AvgPayment:           98,
		VisitShares:          domain.EMVisitShares{Level1: 0.02, Level2: 0.11, Level3: 0.44, Level4: 0.34, Level5: 0.09},
		Adoption:             domain.ProgramAdoptionRates{CCM: 0.01, RPM: 0.005, BHI: 0.06, AWV: 0.05},
	},
	"Nephrology": {
		Specialty:            "Nephrology",
		AvgRevenuePerPatient: 295,
		AvgPayment:           114,
		VisitShares:          domain.EMVisitShares{Level1: 0.01, Level2: 0.06, Level3: 0.37, Level4: 0.42, Level5: 0.14},
		Adoption:             domain.ProgramAdoptionRates{CCM: 0.05, RPM: 0.03, BHI: 0.005, AWV: 0.09},
	},
	"Neurology": {
		Specialty:            "Neurology",
		AvgRevenuePerPatient: 270,
		AvgPayment:           110,
		VisitShares:          domain.EMVisitShares{Level1: 0.01, Level2: 0.08, Level3: 0.40, Level4: 0.38, Level5: 0.13},
		Adoption:             domain.ProgramAdoptionRates{CCM: 0.02, RPM: 0.015, BHI: 0.01, AWV: 0.08},
	},
	"Geriatric Medicine": {
		Specialty:            "Geriatric Medicine",
		AvgRevenuePerPatient: 255,
		AvgPayment:           104,
		VisitShares:          domain.EMVisitShares{Level1: 0.02, Level2: 0.09, Level3: 0.41, Level4: 0.37, Level5: 0.11},
		Adoption:             domain.ProgramAdoptionRates{CCM: 0.06, RPM: 0.02, BHI: 0.015, AWV: 0.38},
	},
	"Rheumatology": {
		Specialty:            "Rheumatology",
		AvgRevenuePerPatient: 275,
		AvgPayment:           111,
		VisitShares:          domain.EMVisitShares{Level1: 0.01, Level2: 0.07, Level3: 0.39, Level4: 0.40, Level5: 0.13},
		Adoption:             domain.ProgramAdoptionRates{CCM: 0.03, RPM: 0.02, BHI: 0.005, AWV: 0.07},
	},
}
