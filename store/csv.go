package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/natyavidhan/uidai-hackathon/models"
)

// Column aliases across the dataset generations. The older API dumps use
// age_0_5/demo_age_17_ style headers, the unified exports use the enrol_*
// names; both map onto the same record fields.
var columnAliases = map[string]string{
	"state":    "state",
	"district": "district",
	"date":     "date",
	"month":    "month",

	"age_0_5":        "enrol_0_5",
	"age_5_17":       "enrol_5_17",
	"age_18_greater": "enrol_18_plus",
	"enrol_0_5":      "enrol_0_5",
	"enrol_5_17":     "enrol_5_17",
	"enrol_18_plus":  "enrol_18_plus",

	"demo_age_5_17": "demo_5_17",
	"demo_age_17_":  "demo_18_plus",
	"demo_5_17":     "demo_5_17",
	"demo_18_plus":  "demo_18_plus",

	"bio_age_5_17": "bio_5_17",
	"bio_age_17_":  "bio_18_plus",
	"bio_5_17":     "bio_5_17",
	"bio_18_plus":  "bio_18_plus",
}

const sourceDateLayout = "02-01-2006" // dd-mm-yyyy in the API dumps

// parseRecords reads one CSV stream into raw records. Rows that fail
// validation are skipped with a warning and counted; a header without a
// district column fails the whole stream.
func parseRecords(r io.Reader, source string) ([]models.RawRecord, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("reading header of %s: %w", source, err)
	}

	// Map column index -> canonical field name
	fields := make(map[int]string, len(header))
	hasDistrict := false
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if canonical, ok := columnAliases[key]; ok {
			fields[i] = canonical
			if canonical == "district" {
				hasDistrict = true
			}
		}
	}
	if !hasDistrict {
		return nil, 0, fmt.Errorf("%s has no district column", source)
	}

	var records []models.RawRecord
	skipped := 0
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("Warning: %s line %d: %v, skipping row", source, line, err)
			skipped++
			continue
		}

		rec, err := rowToRecord(row, fields)
		if err != nil {
			log.Printf("Warning: %s line %d: %v, skipping row", source, line, err)
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

func rowToRecord(row []string, fields map[int]string) (models.RawRecord, error) {
	var rec models.RawRecord
	for i, name := range fields {
		if i >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[i])
		switch name {
		case "state":
			rec.State = value
		case "district":
			rec.District = value
		case "month":
			rec.Month = value
		case "date":
			rec.Month = monthFromDate(value)
		default:
			n, err := parseCounter(value)
			if err != nil {
				return rec, fmt.Errorf("bad %s value %q", name, value)
			}
			switch name {
			case "enrol_0_5":
				rec.Enrol05 = n
			case "enrol_5_17":
				rec.Enrol517 = n
			case "enrol_18_plus":
				rec.Enrol18Plus = n
			case "demo_5_17":
				rec.Demo517 = n
			case "demo_18_plus":
				rec.Demo18Plus = n
			case "bio_5_17":
				rec.Bio517 = n
			case "bio_18_plus":
				rec.Bio18Plus = n
			}
		}
	}
	if err := rec.Validate(); err != nil {
		return rec, err
	}
	return rec, nil
}

// parseCounter reads a numeric cell. Blank cells count as zero; the dumps
// sometimes carry integer counts serialized as floats.
func parseCounter(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

// monthFromDate converts a source date cell to YYYY-MM. Unparseable dates
// leave the month empty; such rows still count toward lifetime totals but
// stay out of the time series.
func monthFromDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse(sourceDateLayout, value)
	if err != nil {
		return ""
	}
	return t.Format("2006-01")
}
