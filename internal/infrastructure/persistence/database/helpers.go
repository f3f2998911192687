// Package database provides database helper functions
package database

import (
	"strings"
	"time"

	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/pkg/config"
)

// GetSlowQueryThreshold returns the configured slow query threshold
func GetSlowQueryThreshold() time.Duration {
	return config.SlowQueryThreshold
}

// CheckAndLogSlowQuery checks if a query duration exceeds threshold
// and logs it using the slow query channel if it does
func CheckAndLogSlowQuery(logger *logging.ChanneledLogger, query string, duration time.Duration) {
	threshold := GetSlowQueryThreshold()

	// Bulk operations get triple the budget before alerting.
	if strings.HasPrefix(query, "BULK_") {
		threshold *= 3
	}

	if duration > threshold {
		logger.LogSlowQuery(query, duration)
	}
}
