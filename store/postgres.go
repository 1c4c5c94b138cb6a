package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/natyavidhan/uidai-hackathon/metrics"
	"github.com/natyavidhan/uidai-hackathon/models"
)

const (
	pgMaxRetries = 5
	pgRetryDelay = 5 * time.Second
)

// PostgresLoader reads unified district-month rows from the
// district_records table. Used when the dumps have been imported into a
// database instead of shipping CSVs with the deployment.
type PostgresLoader struct {
	ConnStr string
	Metrics *metrics.Metrics
}

func (l *PostgresLoader) LoadAll(ctx context.Context) ([]models.RawRecord, error) {
	db, err := openWithRetry(ctx, l.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT
			COALESCE(state, ''),
			district,
			COALESCE(month, ''),
			COALESCE(enrol_0_5, 0),
			COALESCE(enrol_5_17, 0),
			COALESCE(enrol_18_plus, 0),
			COALESCE(demo_5_17, 0),
			COALESCE(demo_18_plus, 0),
			COALESCE(bio_5_17, 0),
			COALESCE(bio_18_plus, 0)
		FROM district_records`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying district_records: %v", ErrDataUnavailable, err)
	}
	defer rows.Close()

	var records []models.RawRecord
	skipped := 0
	for rows.Next() {
		var rec models.RawRecord
		if err := rows.Scan(
			&rec.State, &rec.District, &rec.Month,
			&rec.Enrol05, &rec.Enrol517, &rec.Enrol18Plus,
			&rec.Demo517, &rec.Demo18Plus,
			&rec.Bio517, &rec.Bio18Plus,
		); err != nil {
			log.Printf("Warning: scanning district_records row: %v, skipping", err)
			skipped++
			continue
		}
		if err := rec.Validate(); err != nil {
			log.Printf("Warning: invalid district_records row: %v, skipping", err)
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading district_records: %v", ErrDataUnavailable, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: district_records is empty", ErrDataUnavailable)
	}
	if skipped > 0 {
		log.Printf("Skipped %d malformed district_records rows", skipped)
		l.Metrics.AddMalformedRows(skipped)
	}
	l.Metrics.AddRecordsLoaded(len(records))
	log.Printf("Loaded %d records from PostgreSQL", len(records))
	return records, nil
}

func openWithRetry(ctx context.Context, connStr string) (*sql.DB, error) {
	var lastErr error
	for i := 0; i < pgMaxRetries; i++ {
		db, err := open(ctx, connStr)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, pgMaxRetries, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pgRetryDelay):
		}
	}
	return nil, fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", pgMaxRetries, lastErr)
}

func open(ctx context.Context, connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening PostgreSQL database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to PostgreSQL database: %v", err)
	}
	return db, nil
}
