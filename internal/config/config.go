package config

import (
	"os"
	"time"
)

// Config holds every knob the service reads from the environment.
type Config struct {
	Port string

	// Origin is the fixed business location quotes ship from.
	OriginState string
	OriginCity  string

	PincodeAPIBase string
	DataGovAPIBase string
	DataGovAPIKey  string
	NominatimBase  string

	// DatabaseURL selects Postgres for the durable region cache when
	// set; otherwise the SQLite file at DBPath is used.
	DatabaseURL string
	DBPath      string

	RegionTTL     time.Duration
	QuoteTTL      time.Duration
	SweepInterval time.Duration
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Load() Config {
	return Config{
		Port:        Get("PORT", "8080"),
		OriginState: Get("ORIGIN_STATE", "Maharashtra"),
		OriginCity:  Get("ORIGIN_CITY", "Mumbai"),

		PincodeAPIBase: Get("PINCODE_API_BASE", "https://api.postalpincode.in"),
		DataGovAPIBase: Get("DATAGOV_API_BASE", "https://api.data.gov.in/resource/6176ee09-3d56-4a3b-8115-21841576b2f6"),
		DataGovAPIKey:  os.Getenv("DATAGOV_API_KEY"),
		NominatimBase:  Get("NOMINATIM_BASE", "https://nominatim.openstreetmap.org"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBPath:      Get("DB_PATH", "data/app.db"),

		RegionTTL:     7 * 24 * time.Hour,
		QuoteTTL:      time.Hour,
		SweepInterval: time.Hour,
	}
}
