package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/natyavidhan/uidai-hackathon/models"
)

// Snapshot file names, matching what static deployments serve directly.
const (
	AggregatesFile = "district_aggregates.json"
	TimeSeriesFile = "time_series.json"
	SummaryFile    = "summary_stats.json"
)

// WriteSnapshot dumps pre-computed analytics to JSON files so a deployment
// without the raw datasets can serve them as static artifacts.
func WriteSnapshot(dir string, all map[string]models.DistrictInfo, series map[string]models.TimeSeries, summary models.SummaryStats) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir %s: %v", dir, err)
	}

	files := map[string]interface{}{
		AggregatesFile: all,
		TimeSeriesFile: series,
		SummaryFile:    summary,
	}
	for name, payload := range files {
		path := filepath.Join(dir, name)
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding %s: %v", name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %v", path, err)
		}
		log.Printf("Saved %s (%d bytes)", path, len(data))
	}
	return nil
}
