package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// summaryCacheKey builds the cache key for a summary request. Preset
// periods shift with the clock, so the current day is folded in to keep
// an entry from straddling a boundary.
func summaryCacheKey(period, from, to string, now time.Time) string {
	if period == "" {
		period = "all"
	}
	return period + "|" + from + "|" + to + "|" + now.Format("2006-01-02")
}
