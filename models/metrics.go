package models

// Typology labels. This is the canonical enumeration used by every
// consumer, map legend and detail panel alike.
const (
	TypologyNoData         = "No Data"
	TypologyHighChurn      = "High-Churn"
	TypologyAdultHeavy     = "Adult-Heavy"
	TypologyChildHeavy     = "Child-Heavy"
	TypologyWellMaintained = "Well-Maintained"
	TypologyStandard       = "Standard"
)

// Metrics are the derived ratios for one district. Every division guards
// the zero denominator by yielding 0: a freshly enrolled district with no
// updates must read as low-volatility, not error out.
type Metrics struct {
	AdultEnrolmentShare  float64 `json:"adult_enrolment_share"`
	ChildEnrolmentShare  float64 `json:"child_enrolment_share"`
	IdentityVolatility   float64 `json:"identity_volatility"`
	AdultBioCompliance   float64 `json:"adult_bio_compliance"`
	ChildBioCompliance   float64 `json:"child_bio_compliance"`
	LifecycleIntegrity   float64 `json:"lifecycle_integrity"`
	MaintenanceImbalance float64 `json:"maintenance_imbalance"`
	DistrictTypology     string  `json:"district_typology"`
}

// DistrictInfo is one entry of the all-districts response: the aggregate
// totals, raw per-band counters and derived metrics, flattened into the
// field names the frontend reads.
type DistrictInfo struct {
	District string `json:"district"`
	State    string `json:"state"`

	TotalEnrolments int64 `json:"total_enrolments"`
	Enrol05         int64 `json:"enrol_0_5"`
	Enrol517        int64 `json:"enrol_5_17"`
	Enrol18Plus     int64 `json:"enrol_18_plus"`

	TotalDemoUpdates int64 `json:"total_demo_updates"`
	Demo517          int64 `json:"demo_5_17"`
	Demo18Plus       int64 `json:"demo_18_plus"`

	TotalBioUpdates int64 `json:"total_bio_updates"`
	Bio517          int64 `json:"bio_5_17"`
	Bio18Plus       int64 `json:"bio_18_plus"`

	AdultEnrolmentShare  float64 `json:"adult_enrolment_share"`
	ChildEnrolmentShare  float64 `json:"child_enrolment_share"`
	IdentityVolatility   float64 `json:"identity_volatility"`
	AdultBioCompliance   float64 `json:"adult_bio_compliance"`
	ChildBioCompliance   float64 `json:"child_bio_compliance"`
	LifecycleIntegrity   float64 `json:"lifecycle_integrity"`
	MaintenanceImbalance float64 `json:"maintenance_imbalance"`
	DistrictTypology     string  `json:"district_typology"`
}

// SeriesBlock is one chart series: parallel arrays indexed by month.
type SeriesBlock struct {
	Months   []string `json:"months"`
	Total    []int64  `json:"total"`
	Children []int64  `json:"children"`
	Adults   []int64  `json:"adults"`
}

type TimeSeries struct {
	Enrolment   SeriesBlock `json:"enrolment"`
	Demographic SeriesBlock `json:"demographic"`
	Biometric   SeriesBlock `json:"biometric"`
}

// DistrictDetail is the single-district response.
type DistrictDetail struct {
	DistrictInfo
	TimeSeries TimeSeries `json:"time_series"`
}

// NotFound reports whether the detail is the zero-valued sentinel returned
// for an unknown district. Absence is a normal outcome, not an error.
func (d *DistrictDetail) NotFound() bool {
	return d.TotalEnrolments == 0 && d.State == "Unknown"
}

// SummaryStats is the nation-wide rollup across all districts.
type SummaryStats struct {
	TotalDistricts        int            `json:"total_districts"`
	TotalEnrolments       int64          `json:"total_enrolments"`
	TotalDemoUpdates      int64          `json:"total_demo_updates"`
	TotalBioUpdates       int64          `json:"total_bio_updates"`
	AvgIdentityVolatility float64        `json:"avg_identity_volatility"`
	AvgAdultBioCompliance float64        `json:"avg_adult_bio_compliance"`
	TypologyDistribution  map[string]int `json:"typology_distribution"`
}
