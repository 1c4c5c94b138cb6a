package models

// MonthTotals holds the summed counters for one district-month.
type MonthTotals struct {
	Month string `json:"month"`

	Enrol05     int64 `json:"enrol_0_5"`
	Enrol517    int64 `json:"enrol_5_17"`
	Enrol18Plus int64 `json:"enrol_18_plus"`

	Demo517    int64 `json:"demo_5_17"`
	Demo18Plus int64 `json:"demo_18_plus"`

	Bio517    int64 `json:"bio_5_17"`
	Bio18Plus int64 `json:"bio_18_plus"`
}

// DistrictAggregate is the lifetime sum of every counter for one district,
// plus the per-month series in chronological order. District keeps the
// casing of the first row seen; lookups always go through NormalizeDistrict.
type DistrictAggregate struct {
	District string `json:"district"`
	State    string `json:"state"`

	Enrol05     int64 `json:"enrol_0_5"`
	Enrol517    int64 `json:"enrol_5_17"`
	Enrol18Plus int64 `json:"enrol_18_plus"`

	Demo517    int64 `json:"demo_5_17"`
	Demo18Plus int64 `json:"demo_18_plus"`

	Bio517    int64 `json:"bio_5_17"`
	Bio18Plus int64 `json:"bio_18_plus"`

	Months []MonthTotals `json:"months"`
}

func (a *DistrictAggregate) TotalEnrolments() int64 {
	return a.Enrol05 + a.Enrol517 + a.Enrol18Plus
}

func (a *DistrictAggregate) TotalDemoUpdates() int64 {
	return a.Demo517 + a.Demo18Plus
}

func (a *DistrictAggregate) TotalBioUpdates() int64 {
	return a.Bio517 + a.Bio18Plus
}
