package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func envTrue(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "y" || v == "on"
}

// ReportCacheEnabled turns on Redis caching of report results.
//
// Set via env:
// - ENABLE_REPORT_CACHE=true
// - REPORT_CACHE_TTL_SECONDS=120
func ReportCacheEnabled() bool {
	return envTrue("ENABLE_REPORT_CACHE")
}

func ReportCacheTTL() time.Duration {
	ttl := 120
	if v := strings.TrimSpace(os.Getenv("REPORT_CACHE_TTL_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}
	return time.Duration(ttl) * time.Second
}

// ReportSlowThreshold is the duration above which a report run is logged as slow.
// Env: REPORT_SLOW_MS (default 500ms)
func ReportSlowThreshold() time.Duration {
	ms := int64(500)
	if v := strings.TrimSpace(os.Getenv("REPORT_SLOW_MS")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			ms = n
		}
	}
	return time.Duration(ms) * time.Millisecond
}

// StrictPhoneValidation checks contact numbers with libphonenumber in addition to
// the length rule.
//
// Set via env:
// - STRICT_PHONE_VALIDATION=true
// - PHONE_REGION=IN (default)
func StrictPhoneValidation() bool {
	return envTrue("STRICT_PHONE_VALIDATION")
}

func PhoneRegion() string {
	v := strings.ToUpper(strings.TrimSpace(os.Getenv("PHONE_REGION")))
	if v == "" {
		return "IN"
	}
	return v
}

// SkipMigrations disables AutoMigrate on startup.
func SkipMigrations() bool {
	return envTrue("SKIP_MIGRATIONS")
}
