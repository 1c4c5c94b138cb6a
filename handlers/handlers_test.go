package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natyavidhan/uidai-hackathon/analytics"
	"github.com/natyavidhan/uidai-hackathon/config"
	"github.com/natyavidhan/uidai-hackathon/models"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	records := []models.RawRecord{
		{District: "Pune", State: "Maharashtra", Month: "2024-01", Enrol05: 10, Enrol517: 20, Enrol18Plus: 100, Demo517: 2, Demo18Plus: 18, Bio517: 15, Bio18Plus: 60},
		{District: "Nagpur", State: "Maharashtra", Month: "2024-01", Enrol05: 40, Enrol517: 50, Enrol18Plus: 10},
	}
	service := analytics.NewService(records, analytics.NewCache(nil), config.DefaultThresholds())

	geoPath := filepath.Join(t.TempDir(), "india_district.geojson")
	require.NoError(t, os.WriteFile(geoPath, []byte(`{"type":"FeatureCollection","features":[]}`), 0o644))

	api := NewAPI(service, geoPath, len(records))

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/districts/all", api.GetAllDistricts).Methods("GET")
	r.HandleFunc("/api/v1/district/{name}", api.GetDistrict).Methods("GET")
	r.HandleFunc("/api/v1/stats/summary", api.GetSummaryStats).Methods("GET")
	r.HandleFunc("/api/v1/geojson", api.GetGeoJSON).Methods("GET")
	r.HandleFunc("/api/v1/health", api.HealthCheck).Methods("GET")
	r.HandleFunc("/api/v1/health/detailed", api.DetailedHealthCheck).Methods("GET")
	return r
}

func doGet(t *testing.T, r *mux.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetAllDistricts(t *testing.T) {
	r := newTestRouter(t)

	rec := doGet(t, r, "/api/v1/districts/all")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var all map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 2)

	pune := all["pune"]
	require.NotNil(t, pune)
	// Field names the frontend reads off the payload
	for _, field := range []string{
		"total_enrolments", "total_demo_updates", "total_bio_updates",
		"identity_volatility", "district_typology",
		"adult_enrolment_share", "child_enrolment_share",
		"adult_bio_compliance", "child_bio_compliance",
		"lifecycle_integrity", "maintenance_imbalance",
	} {
		assert.Contains(t, pune, field)
	}
	assert.Equal(t, float64(130), pune["total_enrolments"])
}

func TestGetDistrict(t *testing.T) {
	r := newTestRouter(t)

	rec := doGet(t, r, "/api/v1/district/Pune")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))

	assert.Equal(t, "Pune", detail["district"])
	assert.Equal(t, "Maharashtra", detail["state"])
	assert.Equal(t, float64(130), detail["total_enrolments"])
	assert.Equal(t, float64(10), detail["enrol_0_5"])
	assert.Equal(t, float64(18), detail["demo_18_plus"])
	assert.Equal(t, float64(15), detail["bio_5_17"])

	ts, ok := detail["time_series"].(map[string]interface{})
	require.True(t, ok)
	enrol, ok := ts["enrolment"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"2024-01"}, enrol["months"])
	assert.Equal(t, []interface{}{float64(130)}, enrol["total"])
}

func TestGetDistrictNotFoundServesSentinel(t *testing.T) {
	r := newTestRouter(t)

	rec := doGet(t, r, "/api/v1/district/atlantis")
	require.Equal(t, http.StatusOK, rec.Code, "absence is not an HTTP error")

	var detail map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Unknown", detail["state"])
	assert.Equal(t, float64(0), detail["total_enrolments"])
	assert.Equal(t, models.TypologyNoData, detail["district_typology"])
}

func TestGetSummaryStats(t *testing.T) {
	r := newTestRouter(t)

	rec := doGet(t, r, "/api/v1/stats/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, float64(2), summary["total_districts"])
	assert.Equal(t, float64(230), summary["total_enrolments"])

	dist, ok := summary["typology_distribution"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), dist[models.TypologyAdultHeavy])
	assert.Equal(t, float64(1), dist[models.TypologyChildHeavy])
}

func TestGetGeoJSON(t *testing.T) {
	r := newTestRouter(t)

	rec := doGet(t, r, "/api/v1/geojson")
	require.Equal(t, http.StatusOK, rec.Code)

	var geo map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &geo))
	assert.Equal(t, "FeatureCollection", geo["type"])
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := doGet(t, r, "/api/v1/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = doGet(t, r, "/api/v1/health/detailed")
	require.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 2, health.Dataset.Records)
	assert.Equal(t, 2, health.Dataset.Districts)
}
