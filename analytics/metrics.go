package analytics

import (
	"math"

	"github.com/natyavidhan/uidai-hackathon/config"
	"github.com/natyavidhan/uidai-hackathon/models"
)

// ComputeMetrics derives the ratio metrics and typology for one district
// aggregate. Pure function: identical input always yields identical output.
//
// Every division returns 0 when its denominator is 0. That is deliberate
// and load-bearing: a freshly enrolled district with zero updates has to
// classify as low-volatility, and classification reads these values.
func ComputeMetrics(agg *models.DistrictAggregate, t config.Thresholds) models.Metrics {
	totalEnrol := agg.TotalEnrolments()
	totalDemo := agg.TotalDemoUpdates()
	totalBio := agg.TotalBioUpdates()

	m := models.Metrics{
		AdultEnrolmentShare: ratio(agg.Enrol18Plus, totalEnrol) * 100,
		ChildEnrolmentShare: ratio(agg.Enrol05+agg.Enrol517, totalEnrol) * 100,
		IdentityVolatility:  ratio(totalDemo, totalEnrol),
		AdultBioCompliance:  ratio(agg.Bio18Plus, agg.Enrol18Plus) * 100,
		// Biometrics are not captured below age 5, so the 0-5 band is
		// excluded from the compliance denominator.
		ChildBioCompliance: ratio(agg.Bio517, agg.Enrol517) * 100,
		// Unclamped: can exceed 1 when bio refreshes outpace demo churn.
		LifecycleIntegrity: ratio(totalBio, totalDemo),
	}
	m.MaintenanceImbalance = math.Abs(m.IdentityVolatility - m.LifecycleIntegrity)
	m.DistrictTypology = classify(totalEnrol, m, t)
	return m
}

// classify assigns the typology label. The rules are evaluated in fixed
// priority order and the first match wins; this is not a scoring system.
func classify(totalEnrolments int64, m models.Metrics, t config.Thresholds) string {
	switch {
	case totalEnrolments == 0:
		return models.TypologyNoData
	case m.IdentityVolatility > t.HighChurnVolatility:
		return models.TypologyHighChurn
	case m.AdultEnrolmentShare > t.AdultHeavyShare:
		return models.TypologyAdultHeavy
	case m.ChildEnrolmentShare > t.ChildHeavyShare:
		return models.TypologyChildHeavy
	case m.AdultBioCompliance > t.WellMaintainedCompliance && m.ChildBioCompliance > t.WellMaintainedCompliance:
		return models.TypologyWellMaintained
	default:
		return models.TypologyStandard
	}
}

func ratio(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// round2 and round4 match the precision the original API emitted:
// percentage metrics at two decimals, ratios at four.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
