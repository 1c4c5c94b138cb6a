package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natyavidhan/uidai-hackathon/models"
)

func TestAggregateGroupsByNormalizedName(t *testing.T) {
	records := []models.RawRecord{
		{District: "Pune", State: "Maharashtra", Month: "2024-01", Enrol18Plus: 100},
		{District: "  PUNE ", State: "Maharashtra", Month: "2024-02", Enrol18Plus: 50},
		{District: "Nagpur", State: "Maharashtra", Month: "2024-01", Enrol05: 10},
	}

	aggs := Aggregate(records)
	require.Len(t, aggs, 2)

	pune, ok := aggs["pune"]
	require.True(t, ok, "casing and whitespace variants must fold into one key")
	assert.Equal(t, int64(150), pune.Enrol18Plus)
	assert.Equal(t, int64(150), pune.TotalEnrolments())
	assert.Equal(t, "Pune", pune.District, "display name keeps first-seen casing")
	assert.Equal(t, "Maharashtra", pune.State)

	_, ok = aggs["nagpur"]
	assert.True(t, ok)
}

func TestAggregateAbsentDistrictsStayAbsent(t *testing.T) {
	aggs := Aggregate([]models.RawRecord{
		{District: "Jaipur", Month: "2024-01", Enrol05: 1},
	})

	require.Len(t, aggs, 1)
	_, ok := aggs["udaipur"]
	assert.False(t, ok, "absence, not a zero-valued entry")
}

func TestAggregateSortsMonthsChronologically(t *testing.T) {
	// Insertion order from the source is not chronological
	records := []models.RawRecord{
		{District: "Patna", Month: "2024-03", Enrol18Plus: 3},
		{District: "Patna", Month: "2023-11", Enrol18Plus: 1},
		{District: "Patna", Month: "2024-01", Enrol18Plus: 2},
		{District: "Patna", Month: "2024-01", Demo18Plus: 7},
	}

	agg := Aggregate(records)["patna"]
	require.NotNil(t, agg)
	require.Len(t, agg.Months, 3)

	assert.Equal(t, "2023-11", agg.Months[0].Month)
	assert.Equal(t, "2024-01", agg.Months[1].Month)
	assert.Equal(t, "2024-03", agg.Months[2].Month)
	assert.Equal(t, int64(2), agg.Months[1].Enrol18Plus, "same-month rows merge into one bucket")
	assert.Equal(t, int64(7), agg.Months[1].Demo18Plus)
}

func TestAggregateMonthlessRowsCountTowardTotalsOnly(t *testing.T) {
	records := []models.RawRecord{
		{District: "Gaya", Month: "", Enrol18Plus: 40},
		{District: "Gaya", Month: "2024-01", Enrol18Plus: 10},
	}

	agg := Aggregate(records)["gaya"]
	require.NotNil(t, agg)
	assert.Equal(t, int64(50), agg.TotalEnrolments())
	require.Len(t, agg.Months, 1)
	assert.Equal(t, int64(10), agg.Months[0].Enrol18Plus)
}

func TestAggregateTotalsInvariant(t *testing.T) {
	records := []models.RawRecord{
		{District: "Surat", Month: "2024-01", Enrol05: 5, Enrol517: 17, Enrol18Plus: 100, Demo517: 2, Demo18Plus: 8, Bio517: 3, Bio18Plus: 4},
		{District: "Surat", Month: "2024-02", Enrol05: 1, Enrol517: 2, Enrol18Plus: 3},
	}

	for _, agg := range Aggregate(records) {
		assert.Equal(t, agg.Enrol05+agg.Enrol517+agg.Enrol18Plus, agg.TotalEnrolments())
		assert.Equal(t, agg.Demo517+agg.Demo18Plus, agg.TotalDemoUpdates())
		assert.Equal(t, agg.Bio517+agg.Bio18Plus, agg.TotalBioUpdates())
	}
}

func TestBuildTimeSeries(t *testing.T) {
	agg := Aggregate([]models.RawRecord{
		{District: "Bhopal", Month: "2024-01", Enrol05: 2, Enrol517: 3, Enrol18Plus: 5, Demo517: 1, Demo18Plus: 4, Bio517: 6, Bio18Plus: 7},
		{District: "Bhopal", Month: "2024-02", Enrol18Plus: 10},
	})["bhopal"]
	require.NotNil(t, agg)

	ts := BuildTimeSeries(agg)

	assert.Equal(t, []string{"2024-01", "2024-02"}, ts.Enrolment.Months)
	assert.Equal(t, []int64{10, 10}, ts.Enrolment.Total)
	assert.Equal(t, []int64{5, 0}, ts.Enrolment.Children)
	assert.Equal(t, []int64{5, 10}, ts.Enrolment.Adults)

	assert.Equal(t, []int64{5, 0}, ts.Demographic.Total)
	assert.Equal(t, []int64{1, 0}, ts.Demographic.Children)
	assert.Equal(t, []int64{13, 0}, ts.Biometric.Total)
	assert.Equal(t, []int64{7, 0}, ts.Biometric.Adults)
}
