// Package analytics is the aggregation and derived-metrics engine: it
// reduces the raw district-month records into per-district summaries,
// classifies each district into a typology, and answers read-only queries
// through a memoizing cache.
package analytics

import (
	"sort"

	"github.com/natyavidhan/uidai-hackathon/models"
)

// Aggregate groups records by normalized district name, summing every
// counter across all months and bucketing the same sums per month in
// chronological order. Source order is not chronological; the months are
// sorted here. Districts with no records simply never appear in the map.
func Aggregate(records []models.RawRecord) map[string]*models.DistrictAggregate {
	byDistrict := make(map[string]*models.DistrictAggregate)
	byMonth := make(map[string]map[string]*models.MonthTotals)

	for _, rec := range records {
		key := models.NormalizeDistrict(rec.District)
		if key == "" {
			continue
		}

		agg, ok := byDistrict[key]
		if !ok {
			agg = &models.DistrictAggregate{District: rec.District, State: rec.State}
			byDistrict[key] = agg
			byMonth[key] = make(map[string]*models.MonthTotals)
		}
		if agg.State == "" {
			agg.State = rec.State
		}

		agg.Enrol05 += rec.Enrol05
		agg.Enrol517 += rec.Enrol517
		agg.Enrol18Plus += rec.Enrol18Plus
		agg.Demo517 += rec.Demo517
		agg.Demo18Plus += rec.Demo18Plus
		agg.Bio517 += rec.Bio517
		agg.Bio18Plus += rec.Bio18Plus

		// Rows without a parseable month count toward lifetime totals
		// but stay out of the time series.
		if rec.Month == "" {
			continue
		}
		month, ok := byMonth[key][rec.Month]
		if !ok {
			month = &models.MonthTotals{Month: rec.Month}
			byMonth[key][rec.Month] = month
		}
		month.Enrol05 += rec.Enrol05
		month.Enrol517 += rec.Enrol517
		month.Enrol18Plus += rec.Enrol18Plus
		month.Demo517 += rec.Demo517
		month.Demo18Plus += rec.Demo18Plus
		month.Bio517 += rec.Bio517
		month.Bio18Plus += rec.Bio18Plus
	}

	for key, months := range byMonth {
		agg := byDistrict[key]
		agg.Months = make([]models.MonthTotals, 0, len(months))
		for _, m := range months {
			agg.Months = append(agg.Months, *m)
		}
		// YYYY-MM sorts chronologically as a string
		sort.Slice(agg.Months, func(i, j int) bool {
			return agg.Months[i].Month < agg.Months[j].Month
		})
	}

	return byDistrict
}

// BuildTimeSeries converts an aggregate's month buckets into the three
// chart series blocks the frontend renders.
func BuildTimeSeries(agg *models.DistrictAggregate) models.TimeSeries {
	var ts models.TimeSeries
	for _, m := range agg.Months {
		ts.Enrolment.Months = append(ts.Enrolment.Months, m.Month)
		ts.Enrolment.Total = append(ts.Enrolment.Total, m.Enrol05+m.Enrol517+m.Enrol18Plus)
		ts.Enrolment.Children = append(ts.Enrolment.Children, m.Enrol05+m.Enrol517)
		ts.Enrolment.Adults = append(ts.Enrolment.Adults, m.Enrol18Plus)

		ts.Demographic.Months = append(ts.Demographic.Months, m.Month)
		ts.Demographic.Total = append(ts.Demographic.Total, m.Demo517+m.Demo18Plus)
		ts.Demographic.Children = append(ts.Demographic.Children, m.Demo517)
		ts.Demographic.Adults = append(ts.Demographic.Adults, m.Demo18Plus)

		ts.Biometric.Months = append(ts.Biometric.Months, m.Month)
		ts.Biometric.Total = append(ts.Biometric.Total, m.Bio517+m.Bio18Plus)
		ts.Biometric.Children = append(ts.Biometric.Children, m.Bio517)
		ts.Biometric.Adults = append(ts.Biometric.Adults, m.Bio18Plus)
	}
	return ts
}
