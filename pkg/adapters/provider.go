package adapters

import (
	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/md-tools/revenue-atlas/pkg/models/store"
)

// MapStoreProviderToDomain converts a stored billing row into the engine's
// provider record. The data source is left unset and decided by the scan
// coordinator from the billing detail present.
func MapStoreProviderToDomain(row store.ProviderRow) domain.ProviderRecord {
	return domain.ProviderRecord{
		NPI:           row.NPI,
		Name:          row.Name,
		Specialty:     row.Specialty,
		City:          row.City,
		State:         row.State,
		TotalPatients: row.TotalPatients,
		TotalPayment:  row.TotalPayment,
		TotalServices: row.TotalServices,
		Visits: domain.EMVisitCounts{
			Level1: row.EMLevel1Visits,
			Level2: row.EMLevel2Visits,
			Level3: row.EMLevel3Visits,
			Level4: row.EMLevel4Visits,
			Level5: row.EMLevel5Visits,
		},
		ProgramServices: domain.ProgramServiceCounts{
			CCM: row.CCMServices,
			RPM: row.RPMServices,
			BHI: row.BHIServices,
			AWV: row.AWVServices,
		},
	}
}

// MapStoreBenchmarkToDomain converts a stored benchmark row into the domain
// benchmark.
func MapStoreBenchmarkToDomain(row store.BenchmarkRow) domain.SpecialtyBenchmark {
	return domain.SpecialtyBenchmark{
		Specialty:            row.Specialty,
		AvgRevenuePerPatient: row.AvgRevenuePerPatient,
		AvgPayment:           row.AvgPayment,
		VisitShares: domain.EMVisitShares{
			Level1: row.EMLevel1Share,
			Level2: row.EMLevel2Share,
			Level3: row.EMLevel3Share,
			Level4: row.EMLevel4Share,
			Level5: row.EMLevel5Share,
		},
		Adoption: domain.ProgramAdoptionRates{
			CCM: row.CCMAdoption,
			RPM: row.RPMAdoption,
			BHI: row.BHIAdoption,
			AWV: row.AWVAdoption,
		},
	}
}
