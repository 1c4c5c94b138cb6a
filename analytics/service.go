package analytics

import (
	"github.com/natyavidhan/uidai-hackathon/config"
	"github.com/natyavidhan/uidai-hackathon/models"
)

// Cache keys for the memoized query results.
const (
	cacheKeyAggregates   = "aggregates"
	cacheKeyAllDistricts = "districts:all"
	cacheKeySummary      = "stats:summary"
	cacheKeyDistrict     = "district:" // + normalized name
)

// Service is the query facade over the loaded records: the only interface
// the HTTP layer sees. All three queries route through the cache and none
// mutates state; the record slice is immutable after construction.
type Service struct {
	records    []models.RawRecord
	cache      *Cache
	thresholds config.Thresholds
}

func NewService(records []models.RawRecord, cache *Cache, thresholds config.Thresholds) *Service {
	return &Service{
		records:    records,
		cache:      cache,
		thresholds: thresholds,
	}
}

func (s *Service) aggregates() (map[string]*models.DistrictAggregate, error) {
	value, err := s.cache.Do(cacheKeyAggregates, func() (interface{}, error) {
		return Aggregate(s.records), nil
	})
	if err != nil {
		return nil, err
	}
	return value.(map[string]*models.DistrictAggregate), nil
}

// AllDistricts returns every known district keyed by normalized name,
// with aggregate totals, metrics and typology flattened for the map view.
func (s *Service) AllDistricts() (map[string]models.DistrictInfo, error) {
	value, err := s.cache.Do(cacheKeyAllDistricts, func() (interface{}, error) {
		aggs, err := s.aggregates()
		if err != nil {
			return nil, err
		}
		all := make(map[string]models.DistrictInfo, len(aggs))
		for key, agg := range aggs {
			all[key] = s.buildInfo(agg)
		}
		return all, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(map[string]models.DistrictInfo), nil
}

// District returns one district with its time series. Unknown names get
// the zero-valued sentinel (state "Unknown"), never an error: absence is a
// normal outcome the caller distinguishes by the sentinel's fields.
func (s *Service) District(name string) (models.DistrictDetail, error) {
	key := models.NormalizeDistrict(name)

	aggs, err := s.aggregates()
	if err != nil {
		return models.DistrictDetail{}, err
	}
	if _, ok := aggs[key]; !ok {
		// The sentinel is not memoized: arbitrary unknown names must
		// not grow the cache.
		return notFoundDetail(name), nil
	}

	value, err := s.cache.Do(cacheKeyDistrict+key, func() (interface{}, error) {
		agg := aggs[key]
		return models.DistrictDetail{
			DistrictInfo: s.buildInfo(agg),
			TimeSeries:   BuildTimeSeries(agg),
		}, nil
	})
	if err != nil {
		return models.DistrictDetail{}, err
	}
	return value.(models.DistrictDetail), nil
}

// SummaryStats rolls every district up into nation-wide totals, averages
// and the typology histogram.
func (s *Service) SummaryStats() (models.SummaryStats, error) {
	value, err := s.cache.Do(cacheKeySummary, func() (interface{}, error) {
		all, err := s.AllDistricts()
		if err != nil {
			return nil, err
		}

		summary := models.SummaryStats{
			TotalDistricts:       len(all),
			TypologyDistribution: make(map[string]int),
		}
		var volatilitySum, complianceSum float64
		for _, info := range all {
			summary.TotalEnrolments += info.TotalEnrolments
			summary.TotalDemoUpdates += info.TotalDemoUpdates
			summary.TotalBioUpdates += info.TotalBioUpdates
			summary.TypologyDistribution[info.DistrictTypology]++
			volatilitySum += info.IdentityVolatility
			complianceSum += info.AdultBioCompliance
		}
		if len(all) > 0 {
			summary.AvgIdentityVolatility = round4(volatilitySum / float64(len(all)))
			summary.AvgAdultBioCompliance = round2(complianceSum / float64(len(all)))
		}
		return summary, nil
	})
	if err != nil {
		return models.SummaryStats{}, err
	}
	return value.(models.SummaryStats), nil
}

func (s *Service) buildInfo(agg *models.DistrictAggregate) models.DistrictInfo {
	m := ComputeMetrics(agg, s.thresholds)
	return models.DistrictInfo{
		District: agg.District,
		State:    agg.State,

		TotalEnrolments: agg.TotalEnrolments(),
		Enrol05:         agg.Enrol05,
		Enrol517:        agg.Enrol517,
		Enrol18Plus:     agg.Enrol18Plus,

		TotalDemoUpdates: agg.TotalDemoUpdates(),
		Demo517:          agg.Demo517,
		Demo18Plus:       agg.Demo18Plus,

		TotalBioUpdates: agg.TotalBioUpdates(),
		Bio517:          agg.Bio517,
		Bio18Plus:       agg.Bio18Plus,

		AdultEnrolmentShare:  round2(m.AdultEnrolmentShare),
		ChildEnrolmentShare:  round2(m.ChildEnrolmentShare),
		IdentityVolatility:   round4(m.IdentityVolatility),
		AdultBioCompliance:   round2(m.AdultBioCompliance),
		ChildBioCompliance:   round2(m.ChildBioCompliance),
		LifecycleIntegrity:   round4(m.LifecycleIntegrity),
		MaintenanceImbalance: round4(m.MaintenanceImbalance),
		DistrictTypology:     m.DistrictTypology,
	}
}

func notFoundDetail(name string) models.DistrictDetail {
	return models.DistrictDetail{
		DistrictInfo: models.DistrictInfo{
			District:         name,
			State:            "Unknown",
			DistrictTypology: models.TypologyNoData,
		},
	}
}
