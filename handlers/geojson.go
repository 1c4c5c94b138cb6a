package handlers

import (
	"log"
	"net/http"
	"os"
)

// GetGeoJSON serves the district boundary file for the choropleth map.
// The file is static; the analytics core never reads it.
func (a *API) GetGeoJSON(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(a.GeoJSONPath); err != nil {
		log.Printf("GeoJSON file not available at %s: %v", a.GeoJSONPath, err)
		writeError(w, http.StatusInternalServerError, "GeoJSON data not available")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, a.GeoJSONPath)
}
