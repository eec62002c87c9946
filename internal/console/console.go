// Package console tracks global console output preferences.
package console

import "github.com/muesli/termenv"

var noColor bool

// SetNoColor records an explicit request to disable colored output.
func SetNoColor(v bool) {
	noColor = v
}

// ColorEnabled reports whether styled output should be produced. It honors
// both the explicit --no-color flag and the NO_COLOR / CLICOLOR environment
// conventions via termenv.
func ColorEnabled() bool {
	if noColor {
		return false
	}
	return !termenv.EnvNoColor()
}
