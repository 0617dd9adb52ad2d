package api

// Provider is the identity slice of a scan response.
type Provider struct {
	NPI       string `json:"npi"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Patients  int    `json:"patients"`
}

type ProgramGap struct {
	Category         string   `json:"category"`
	BillingCodes     []string `json:"billing_codes"`
	EligiblePatients int      `json:"eligible_patients"`
	EnrolledPatients int      `json:"enrolled_patients"`
	CaptureRate      float64  `json:"capture_rate"`
	CurrentAnnual    float64  `json:"current_annual_revenue"`
	PotentialAnnual  float64  `json:"potential_annual_revenue"`
	AnnualGap        float64  `json:"annual_gap"`
}

type CodingGap struct {
	ShiftableVisits int     `json:"shiftable_visits"`
	Shift           string  `json:"shift"`
	AnnualGap       float64 `json:"annual_gap"`
}

type Score struct {
	Value int    `json:"value"`
	Tier  string `json:"tier"`
	Color string `json:"color"`
}

type ActionItem struct {
	Priority          int     `json:"priority"`
	Category          string  `json:"category"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Difficulty        string  `json:"difficulty"`
	ProvidersAffected int     `json:"providers_affected"`
	AnnualRevenue     float64 `json:"annual_revenue"`
}

type ScanResult struct {
	Provider           Provider     `json:"provider"`
	Score              Score        `json:"score"`
	ProgramGaps        []ProgramGap `json:"program_gaps"`
	CodingGap          CodingGap    `json:"coding_gap"`
	Actions            []ActionItem `json:"actions"`
	TotalMissedRevenue float64      `json:"total_missed_revenue"`
	DataSource         string       `json:"data_source"`
}

type ScanOutcome struct {
	NPI           string      `json:"npi"`
	Result        *ScanResult `json:"result,omitempty"`
	FailureReason string      `json:"failure_reason,omitempty"`
}

type ScoreBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type SpecialtyBreakdown struct {
	Specialty     string  `json:"specialty"`
	Providers     int     `json:"providers"`
	MissedRevenue float64 `json:"missed_revenue"`
}

type GroupScanResult struct {
	Outcomes              []ScanOutcome        `json:"outcomes"`
	TotalProviders        int                  `json:"total_providers"`
	SuccessfulScans       int                  `json:"successful_scans"`
	FailedScans           int                  `json:"failed_scans"`
	TotalMissedRevenue    float64              `json:"total_missed_revenue"`
	TotalCurrentRevenue   float64              `json:"total_current_revenue"`
	TotalPotentialRevenue float64              `json:"total_potential_revenue"`
	AverageScore          float64              `json:"average_score"`
	ScoreDistribution     []ScoreBucket        `json:"score_distribution"`
	Specialties           []SpecialtyBreakdown `json:"specialties"`
	Actions               []ActionItem         `json:"actions"`
}

// GroupScanRequest is the POST body for a group scan.
type GroupScanRequest struct {
	IDs         []string `json:"ids"`
	Concurrency int      `json:"concurrency,omitempty"`
}

// Error is the uniform error envelope.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
