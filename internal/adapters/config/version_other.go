//go:build !darwin

package config

// Only darwin bottles are keyed by OS release.
func productVersion() string { return "" }
