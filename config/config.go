package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server config
const SERVER_ADDRESS = ":8080"

// Filter result cache config
const FILTER_CACHE_TTL_MINUTES = 10

// Currency prefix used in raw budget cells and in the exported plan summary.
const CURRENCY_SYMBOL = "₹"

// ANY_OPTION is the no-op value for the location and venue type criteria.
const ANY_OPTION = "Any"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_CSV_RESOURCE = "venues.csv"

// Planner option catalogs offered to clients.
var EventTypes = []string{"Wedding", "Corporate Event", "Birthday", "Conference", "Concert", "Exhibition"}
var VenueTypes = []string{"Indoor", "Outdoor", ANY_OPTION}
var Amenities = []string{"Mic", "Projector", "Sound System", "Lighting", "WiFi", "Seating", "Catering", "Valet Parking"}

// Attendee / budget selection bounds.
const ATTENDEES_MIN = 10
const ATTENDEES_MAX = 5000
const ATTENDEES_STEP = 10
const ATTENDEES_DEFAULT = 100

const BUDGET_MIN = 5000
const BUDGET_MAX = 200000
const BUDGET_STEP = 5000
const BUDGET_DEFAULT = 50000

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// GetEnvOrDefault reads an environment variable with a fallback value.
func GetEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// RedisAddress returns the Redis address, honoring the REDIS_ADDRESS override.
func RedisAddress() string {
	return GetEnvOrDefault("REDIS_ADDRESS", REDIS_DB_ADDRESS)
}

// ServerAddress returns the HTTP listen address, honoring SERVER_ADDRESS.
func ServerAddress() string {
	return GetEnvOrDefault("SERVER_ADDRESS", SERVER_ADDRESS)
}

// VenuesCSVPath returns the venue catalog path, honoring VENUES_CSV_PATH.
func VenuesCSVPath() string {
	if p := os.Getenv("VENUES_CSV_PATH"); p != "" {
		return p
	}
	return GetResourcePath(VENUES_CSV_RESOURCE)
}
