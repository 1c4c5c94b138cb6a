package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/natyavidhan/uidai-hackathon/metrics"
	"github.com/natyavidhan/uidai-hackathon/models"
)

// LocalLoader reads every CSV under the datasets directory, including one
// level of subfolders (the dumps ship split into enrolment/demographic/
// biometric folders of chunked files).
type LocalLoader struct {
	Dir     string
	Metrics *metrics.Metrics
}

func (l *LocalLoader) LoadAll(ctx context.Context) ([]models.RawRecord, error) {
	files, err := listCSVFiles(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no CSV files under %s", ErrDataUnavailable, l.Dir)
	}

	var records []models.RawRecord
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fileRecords, err := l.loadFile(path)
		if err != nil {
			log.Printf("Error loading %s: %v", path, err)
			continue
		}
		records = append(records, fileRecords...)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no readable records under %s", ErrDataUnavailable, l.Dir)
	}
	l.Metrics.AddRecordsLoaded(len(records))
	log.Printf("Loaded %d records from %d files under %s", len(records), len(files), l.Dir)
	return records, nil
}

func (l *LocalLoader) loadFile(path string) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, skipped, err := parseRecords(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Printf("Skipped %d malformed rows in %s", skipped, path)
		l.Metrics.AddMalformedRows(skipped)
	}
	return records, nil
}

func listCSVFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	nested, err := filepath.Glob(filepath.Join(dir, "*", "*.csv"))
	if err != nil {
		return nil, err
	}
	return append(files, nested...), nil
}
