// Package tui provides the small interactive surface of the pombom CLI:
// terminal detection and the confirmation prompt shown before output files
// are written.
package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvVars are environment variables that indicate a CI/CD environment,
// where interactive prompts must be skipped.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_HOME",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",
}

// IsInteractive reports whether the current environment supports interactive
// prompts: stdout must be a terminal and no CI environment variable may be set.
func IsInteractive() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	for _, env := range ciEnvVars {
		if os.Getenv(env) != "" {
			return false
		}
	}
	return true
}
