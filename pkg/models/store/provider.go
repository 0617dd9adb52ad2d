package store

// ProviderRow is one provider's billing summary as stored, with flat columns
// matching the provider_billing table and the S3 extract schema.
type ProviderRow struct {
	NPI           string  `json:"npi" db:"npi"`
	Name          string  `json:"name" db:"name"`
	Specialty     string  `json:"specialty" db:"specialty"`
	City          string  `json:"city" db:"city"`
	State         string  `json:"state" db:"state"`
	TotalPatients int     `json:"total_patients" db:"total_patients"`
	TotalPayment  float64 `json:"total_payment" db:"total_payment"`
	TotalServices int     `json:"total_services" db:"total_services"`

	EMLevel1Visits int `json:"em_level_1_visits" db:"em_level_1_visits"`
	EMLevel2Visits int `json:"em_level_2_visits" db:"em_level_2_visits"`
	EMLevel3Visits int `json:"em_level_3_visits" db:"em_level_3_visits"`
	EMLevel4Visits int `json:"em_level_4_visits" db:"em_level_4_visits"`
	EMLevel5Visits int `json:"em_level_5_visits" db:"em_level_5_visits"`

	CCMServices int `json:"ccm_services" db:"ccm_services"`
	RPMServices int `json:"rpm_services" db:"rpm_services"`
	BHIServices int `json:"bhi_services" db:"bhi_services"`
	AWVServices int `json:"awv_services" db:"awv_services"`
}
