package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Time    string `json:"time"`
	Dataset struct {
		Records   int `json:"records"`
		Districts int `json:"districts"`
	} `json:"dataset"`
	Error string `json:"error,omitempty"`
}

// HealthCheck answers liveness probes. The cheap variant only confirms the
// process is up; DetailedHealthCheck also confirms the dataset is queryable.
func (a *API) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (a *API) DetailedHealthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status: "ok",
		Time:   time.Now().Format(time.RFC3339),
	}
	response.Dataset.Records = a.RecordCount

	all, err := a.Service.AllDistricts()
	if err != nil {
		response.Status = "error"
		response.Error = err.Error()
	} else {
		response.Dataset.Districts = len(all)
	}

	w.Header().Set("Content-Type", "application/json")
	if response.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(response)
}
