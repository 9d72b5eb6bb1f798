// Package config centralizes the small set of environment-variable
// overrides every cmd/ binary honors (ASSETS_DIR, ZK_TIMEOUT), the same
// "defaults from flags, overridden from env" pattern the teacher's
// examples/common/flags.go applies to device commissioning options.
// LOG_LEVEL is read directly by internal/logging and is not duplicated
// here.
package config

import (
	"os"
	"strconv"
	"time"
)

// AssetsDir returns the ASSETS_DIR environment variable, or fallback if
// it is unset or empty.
func AssetsDir(fallback string) string {
	if v := os.Getenv("ASSETS_DIR"); v != "" {
		return v
	}
	return fallback
}

// Timeout returns the ZK_TIMEOUT environment variable, parsed as a whole
// number of seconds, or fallback if it is unset, empty, or not a valid
// positive integer.
func Timeout(fallback time.Duration) time.Duration {
	v := os.Getenv("ZK_TIMEOUT")
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
