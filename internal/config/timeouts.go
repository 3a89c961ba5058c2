package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	ARMCall          time.Duration // Timeout for one management API call
	ZipPush          time.Duration // Timeout for uploading the deployment package
	DeployRetryTimes int           // Maximum number of deployment status poll attempts
	DeployBackoff    time.Duration // Fixed delay between poll attempts
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - TEAMSFX_TIMEOUT_ARM_CALL (default: 60s)
//   - TEAMSFX_TIMEOUT_ZIP_PUSH (default: 10m)
//   - TEAMSFX_DEPLOY_RETRY_TIMES (default: 120)
//   - TEAMSFX_DEPLOY_BACKOFF (default: 5s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		ARMCall:          parseDuration("TEAMSFX_TIMEOUT_ARM_CALL", 60*time.Second),
		ZipPush:          parseDuration("TEAMSFX_TIMEOUT_ZIP_PUSH", 10*time.Minute),
		DeployRetryTimes: parseInt("TEAMSFX_DEPLOY_RETRY_TIMES", 120),
		DeployBackoff:    parseDuration("TEAMSFX_DEPLOY_BACKOFF", 5*time.Second),
	}
}

// TestTimeouts returns short timeouts suitable for unit tests.
func TestTimeouts() *Timeouts {
	return &Timeouts{
		ARMCall:          5 * time.Second,
		ZipPush:          5 * time.Second,
		DeployRetryTimes: 3,
		DeployBackoff:    10 * time.Millisecond,
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
