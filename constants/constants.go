package constants

import (
	"os"
	"strings"
	"time"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
)

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v != "" {
		return v
	}
	return fallback
}

// GetTuning is the tuning used when none was chosen and no flag is given.
func GetTuning() string {
	return getEnv("UKULALA_TUNING", "")
}

func GetPrefsBackend() string {
	return getEnv("PREFS_BACKEND", BackendSQLite)
}

func GetPrefsDBPath() string {
	return getEnv("PREFS_DB_PATH", "./ukulala.db")
}

// GetDynamoEndpoint is empty unless set, which means the regular AWS
// endpoint for the region. Point it at http://localhost:8000 for DynamoDB Local.
func GetDynamoEndpoint() string {
	return getEnv("DYNAMODB_ENDPOINT", "")
}

func GetDynamoRegion() string {
	return getEnv("DYNAMODB_REGION", "us-east-1")
}

func GetDynamoTable() string {
	return getEnv("DYNAMODB_TABLE", "ukulala-prefs")
}

// GetPrefsFlushDelay is how long the server waits for more preference
// changes before writing them out.
func GetPrefsFlushDelay() time.Duration {
	d, err := time.ParseDuration(getEnv("PREFS_FLUSH_DELAY", "500ms"))
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

func GetCORSOrigins() []string {
	return strings.Split(getEnv("CORS_ORIGINS", "*"), ",")
}

const DefaultKey = "C"
