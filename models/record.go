package models

import (
	"fmt"
	"strings"
)

// RawRecord is one district-month row from the source datasets. A row from
// the enrolment dump carries only the enrol_* counters, a demographic row
// only the demo_* counters, and so on; the aggregator sums whatever is set,
// so partial rows fold together naturally.
type RawRecord struct {
	State    string `json:"state"`
	District string `json:"district"`
	Month    string `json:"month"` // YYYY-MM, may be empty if the source had no date column

	Enrol05     int64 `json:"enrol_0_5"`
	Enrol517    int64 `json:"enrol_5_17"`
	Enrol18Plus int64 `json:"enrol_18_plus"`

	Demo517    int64 `json:"demo_5_17"`
	Demo18Plus int64 `json:"demo_18_plus"`

	Bio517    int64 `json:"bio_5_17"`
	Bio18Plus int64 `json:"bio_18_plus"`
}

// Validate rejects rows that fail the record schema. Callers skip invalid
// rows with a warning rather than aborting the whole load.
func (r RawRecord) Validate() error {
	if strings.TrimSpace(r.District) == "" {
		return fmt.Errorf("missing district name")
	}
	counters := []int64{
		r.Enrol05, r.Enrol517, r.Enrol18Plus,
		r.Demo517, r.Demo18Plus,
		r.Bio517, r.Bio18Plus,
	}
	for _, c := range counters {
		if c < 0 {
			return fmt.Errorf("negative counter for district %q", r.District)
		}
	}
	return nil
}

// NormalizeDistrict is the single join key used everywhere a district name
// is matched: record store, aggregator, query facade, geojson lookups.
// Source casing and whitespace are inconsistent across datasets.
func NormalizeDistrict(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
