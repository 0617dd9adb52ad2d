package store

// BenchmarkRow is one specialty's aggregate norm as stored in the
// specialty_benchmarks table.
type BenchmarkRow struct {
	Specialty            string  `json:"specialty" db:"specialty"`
	AvgRevenuePerPatient float64 `json:"avg_revenue_per_patient" db:"avg_revenue_per_patient"`
	AvgPayment           float64 `json:"avg_payment" db:"avg_payment"`

	EMLevel1Share float64 `json:"em_level_1_share" db:"em_level_1_share"`
	EMLevel2Share float64 `json:"em_level_2_share" db:"em_level_2_share"`
	EMLevel3Share float64 `json:"em_level_3_share" db:"em_level_3_share"`
	EMLevel4Share float64 `json:"em_level_4_share" db:"em_level_4_share"`
	EMLevel5Share float64 `json:"em_level_5_share" db:"em_level_5_share"`

	CCMAdoption float64 `json:"ccm_adoption" db:"ccm_adoption"`
	RPMAdoption float64 `json:"rpm_adoption" db:"rpm_adoption"`
	BHIAdoption float64 `json:"bhi_adoption" db:"bhi_adoption"`
	AWVAdoption float64 `json:"awv_adoption" db:"awv_adoption"`
}
