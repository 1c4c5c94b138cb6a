package config

import (
	"os"
	"strconv"
)

// Data source kinds for the record store.
const (
	SourceLocal    = "local"
	SourceRemote   = "remote"
	SourcePostgres = "postgres"
)

// Typology threshold defaults. These are configuration, not invariants:
// every one can be overridden through the environment.
const (
	DefaultHighChurnVolatility      = 0.5
	DefaultAdultHeavyShare          = 50.0
	DefaultChildHeavyShare          = 50.0
	DefaultWellMaintainedCompliance = 70.0
)

// Thresholds drive the typology classifier.
type Thresholds struct {
	HighChurnVolatility      float64
	AdultHeavyShare          float64
	ChildHeavyShare          float64
	WellMaintainedCompliance float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		HighChurnVolatility:      DefaultHighChurnVolatility,
		AdultHeavyShare:          DefaultAdultHeavyShare,
		ChildHeavyShare:          DefaultChildHeavyShare,
		WellMaintainedCompliance: DefaultWellMaintainedCompliance,
	}
}

// Config is everything main needs to wire the process.
type Config struct {
	Port            string
	DataSource      string
	DatasetsPath    string
	RemoteBaseURL   string
	GeoJSONPath     string
	SnapshotDir     string
	DegradedOnEmpty bool
	Thresholds      Thresholds
}

func Load() Config {
	return Config{
		Port:            getEnvWithDefault("PORT", "8080"),
		DataSource:      getEnvWithDefault("DATA_SOURCE", SourceLocal),
		DatasetsPath:    getEnvWithDefault("DATASETS_PATH", "datasets"),
		RemoteBaseURL:   getEnvWithDefault("REMOTE_BASE_URL", "https://raw.githubusercontent.com/natyavidhan/uidai-hackathon/master/datasets"),
		GeoJSONPath:     getEnvWithDefault("GEOJSON_PATH", "static/india_district.geojson"),
		SnapshotDir:     getEnvWithDefault("SNAPSHOT_DIR", "static/data"),
		DegradedOnEmpty: getEnvAsBool("DEGRADED_ON_EMPTY", false),
		Thresholds: Thresholds{
			HighChurnVolatility:      getEnvAsFloat("TYPOLOGY_HIGH_CHURN_VOLATILITY", DefaultHighChurnVolatility),
			AdultHeavyShare:          getEnvAsFloat("TYPOLOGY_ADULT_HEAVY_SHARE", DefaultAdultHeavyShare),
			ChildHeavyShare:          getEnvAsFloat("TYPOLOGY_CHILD_HEAVY_SHARE", DefaultChildHeavyShare),
			WellMaintainedCompliance: getEnvAsFloat("TYPOLOGY_WELL_MAINTAINED_COMPLIANCE", DefaultWellMaintainedCompliance),
		},
	}
}

// PostgresConnString builds the DSN for the postgres record store.
func PostgresConnString() string {
	host := getEnvWithDefault("DB_HOST", "localhost")
	port := getEnvWithDefault("DB_PORT", "5432")
	user := getEnvWithDefault("DB_USER", "postgres")
	password := getEnvWithDefault("DB_PASSWORD", "")
	dbname := getEnvWithDefault("DB_NAME", "uidai")
	sslmode := getEnvWithDefault("DB_SSL_MODE", "disable")

	return "host=" + host + " port=" + port + " user=" + user +
		" password=" + password + " dbname=" + dbname + " sslmode=" + sslmode
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
