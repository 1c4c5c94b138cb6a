package store

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/natyavidhan/uidai-hackathon/metrics"
	"github.com/natyavidhan/uidai-hackathon/models"
)

const (
	remoteMaxAttempts = 3
	remoteRetryDelay  = 2 * time.Second
)

// DefaultRemoteFiles lists the chunked dataset dumps as published, keyed by
// folder. A deployment with its own mirror can override the list.
var DefaultRemoteFiles = []string{
	"api_data_aadhar_enrolment/api_data_aadhar_enrolment_0_500000.csv",
	"api_data_aadhar_enrolment/api_data_aadhar_enrolment_500000_1000000.csv",
	"api_data_aadhar_enrolment/api_data_aadhar_enrolment_1000000_1006029.csv",
	"api_data_aadhar_demographic/api_data_aadhar_demographic_0_500000.csv",
	"api_data_aadhar_demographic/api_data_aadhar_demographic_500000_1000000.csv",
	"api_data_aadhar_demographic/api_data_aadhar_demographic_1000000_1500000.csv",
	"api_data_aadhar_demographic/api_data_aadhar_demographic_1500000_2000000.csv",
	"api_data_aadhar_demographic/api_data_aadhar_demographic_2000000_2071700.csv",
	"api_data_aadhar_biometric/api_data_aadhar_biometric_0_500000.csv",
	"api_data_aadhar_biometric/api_data_aadhar_biometric_500000_1000000.csv",
	"api_data_aadhar_biometric/api_data_aadhar_biometric_1000000_1500000.csv",
	"api_data_aadhar_biometric/api_data_aadhar_biometric_1500000_1861108.csv",
}

// RemoteLoader fetches the CSV dumps over HTTP. Transient failures are
// retried a bounded number of times per file before the whole load fails
// with ErrDataUnavailable.
type RemoteLoader struct {
	BaseURL string
	Files   []string
	Client  *http.Client
	Metrics *metrics.Metrics

	// RetryDelay overrides the backoff base; zero means the default.
	RetryDelay time.Duration
}

func (l *RemoteLoader) LoadAll(ctx context.Context) ([]models.RawRecord, error) {
	files := l.Files
	if len(files) == 0 {
		files = DefaultRemoteFiles
	}
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	var records []models.RawRecord
	for _, file := range files {
		url := l.BaseURL + "/" + file
		fileRecords, err := l.fetchWithRetry(ctx, client, url)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
		}
		records = append(records, fileRecords...)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: remote source %s returned no records", ErrDataUnavailable, l.BaseURL)
	}
	l.Metrics.AddRecordsLoaded(len(records))
	log.Printf("Loaded %d records from %d remote files", len(records), len(files))
	return records, nil
}

func (l *RemoteLoader) fetchWithRetry(ctx context.Context, client *http.Client, url string) ([]models.RawRecord, error) {
	delay := l.RetryDelay
	if delay == 0 {
		delay = remoteRetryDelay
	}
	var lastErr error
	for attempt := 1; attempt <= remoteMaxAttempts; attempt++ {
		records, err := l.fetch(ctx, client, url)
		if err == nil {
			return records, nil
		}
		lastErr = err
		log.Printf("Failed to fetch %s (attempt %d/%d): %v", url, attempt, remoteMaxAttempts, err)
		if attempt == remoteMaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * delay):
		}
	}
	return nil, fmt.Errorf("giving up on %s after %d attempts: %v", url, remoteMaxAttempts, lastErr)
}

func (l *RemoteLoader) fetch(ctx context.Context, client *http.Client, url string) ([]models.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	records, skipped, err := parseRecords(resp.Body, url)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Printf("Skipped %d malformed rows in %s", skipped, url)
		l.Metrics.AddMalformedRows(skipped)
	}
	return records, nil
}
