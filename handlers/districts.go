package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/natyavidhan/uidai-hackathon/analytics"
)

// API holds the handlers' collaborators. The analytics service is injected
// at startup; handlers never touch package-level state.
type API struct {
	Service     *analytics.Service
	GeoJSONPath string
	RecordCount int
}

func NewAPI(service *analytics.Service, geoJSONPath string, recordCount int) *API {
	return &API{
		Service:     service,
		GeoJSONPath: geoJSONPath,
		RecordCount: recordCount,
	}
}

// GetAllDistricts serves the full district mapping for the initial map load.
func (a *API) GetAllDistricts(w http.ResponseWriter, r *http.Request) {
	all, err := a.Service.AllDistricts()
	if err != nil {
		log.Printf("Error computing district aggregates: %v", err)
		writeError(w, http.StatusInternalServerError, "Error computing district aggregates")
		return
	}
	writeJSON(w, all)
}

// GetDistrict serves one district with full analytics and time series.
// Unknown districts get the zero-valued sentinel with HTTP 200; the
// frontend renders it as an empty panel.
func (a *API) GetDistrict(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	detail, err := a.Service.District(name)
	if err != nil {
		log.Printf("Error computing district %q: %v", name, err)
		writeError(w, http.StatusInternalServerError, "Error computing district data")
		return
	}
	if detail.NotFound() {
		log.Printf("District %q not found, serving sentinel", name)
	}
	writeJSON(w, detail)
}

// GetSummaryStats serves the nation-wide rollup.
func (a *API) GetSummaryStats(w http.ResponseWriter, r *http.Request) {
	summary, err := a.Service.SummaryStats()
	if err != nil {
		log.Printf("Error computing summary stats: %v", err)
		writeError(w, http.StatusInternalServerError, "Error computing summary stats")
		return
	}
	writeJSON(w, summary)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300") // Cache for 5 minutes
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
