package config

import "golang.org/x/sys/unix"

// productVersion reports the macOS product version, e.g. "14.5".
func productVersion() string {
	v, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return ""
	}
	return v
}
