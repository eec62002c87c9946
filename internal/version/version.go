// Package version exposes the pombom build version.
package version

// version is overridden at release time via -ldflags.
var version = "0.1.0"

// GetVersion returns the current tool version.
func GetVersion() string {
	return version
}
