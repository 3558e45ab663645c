package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port     string
	LogLevel string
	// Storage
	GCSBucket          string
	GCSCredentialsFile string
	// Per-variant upload deadline in seconds. 0 disables the deadline.
	UploadTimeoutSeconds int
}

// Environment variable names used by the API
const (
	EnvPort                 = "PORT"
	EnvLogLevel             = "LOG_LEVEL"
	EnvGCSBucket            = "GCS_BUCKET"
	EnvGCSCredentialsFile   = "GCS_CREDENTIALS_FILE"
	EnvUploadTimeoutSeconds = "UPLOAD_TIMEOUT_SECONDS"
)

// collectRequired reads the provided environment keys and returns a map of values
// alongside a slice of any missing keys (values that were empty/whitespace).
func collectRequired(keys []string) (map[string]string, []string) {
	missing := make([]string, 0)
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		v := strings.TrimSpace(os.Getenv(k))
		if v == "" {
			missing = append(missing, k)
			continue
		}
		values[k] = v
	}
	return values, missing
}

// collectOptional reads optional env vars and applies defaults when empty/whitespace.
func collectOptional(defaults map[string]string) map[string]string {
	values := make(map[string]string, len(defaults))
	for k, def := range defaults {
		v := strings.TrimSpace(os.Getenv(k))
		if v == "" {
			v = def
		}
		values[k] = v
	}
	return values
}

func Load() Config {
	required := []string{
		EnvGCSBucket,
	}
	requiredEnvVars, missingEnvVars := collectRequired(required)
	if len(missingEnvVars) > 0 {
		panic(fmt.Sprintf("missing required env vars: %s", strings.Join(missingEnvVars, ", ")))
	}

	optionalEnvVars := collectOptional(map[string]string{
		EnvPort:                 "8080",
		EnvLogLevel:             "info",
		EnvGCSCredentialsFile:   "",
		EnvUploadTimeoutSeconds: "0",
	})

	uploadTimeout, err := strconv.Atoi(optionalEnvVars[EnvUploadTimeoutSeconds])
	if err != nil || uploadTimeout < 0 {
		panic("invalid UPLOAD_TIMEOUT_SECONDS: must be non-negative integer seconds")
	}

	return Config{
		Port:                 optionalEnvVars[EnvPort],
		LogLevel:             optionalEnvVars[EnvLogLevel],
		GCSBucket:            requiredEnvVars[EnvGCSBucket],
		GCSCredentialsFile:   optionalEnvVars[EnvGCSCredentialsFile],
		UploadTimeoutSeconds: uploadTimeout,
	}
}
