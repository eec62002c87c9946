// Package merger folds per-module dependency maps into the running global
// map with a highest-version-wins policy. Outcomes are reported as events
// rather than printed directly so the merge rules stay independently
// testable; the consolidate command renders them through the printer.
package merger

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"

	"github.com/indaco/pombom/internal/pom"
)

// Level classifies a merge event.
type Level string

const (
	// LevelInfo marks routine merge outcomes.
	LevelInfo Level = "info"

	// LevelWarn marks outcomes that change managed-version semantics or
	// that could not be decided (incomparable versions).
	LevelWarn Level = "warn"
)

// Event describes one merge outcome.
type Event struct {
	Level   Level
	Message string
}

func infof(format string, args ...any) Event {
	return Event{Level: LevelInfo, Message: fmt.Sprintf(format, args...)}
}

func warnf(format string, args ...any) Event {
	return Event{Level: LevelWarn, Message: fmt.Sprintf(format, args...)}
}

// Merge folds incoming into current, mutating current in place. The module
// name only labels diagnostics. Incoming groupIds are interpolated against
// props before the lookup, matching how dependency scope references are
// written in practice. The returned events are ordered by groupId then
// artifactId so runs are deterministic.
//
// Rules, per (groupId, artifactId):
//   - unknown group: insert wholesale
//   - unknown artifact: insert
//   - incoming version nil: skip, nothing to compare
//   - existing nil, incoming concrete: overwrite with a warning, since this
//     changes "managed elsewhere" semantics
//   - both concrete: overwrite only when incoming is a strictly greater
//     semantic version; incomparable strings leave the existing value and
//     warn, never fail
func Merge(current, incoming pom.DependencyGroups, module string, props pom.Properties) []Event {
	var events []Event

	for _, rawGroupID := range sortedKeys(incoming) {
		groupID := pom.Interpolate(props, rawGroupID)

		existing, ok := current[groupID]
		if !ok {
			current[groupID] = incoming[rawGroupID]
			events = append(events, infof("%s: found new dependency group %s", module, groupID))
			continue
		}

		artifacts := incoming[rawGroupID]
		for _, artifact := range sortedKeys(artifacts) {
			version := artifacts[artifact]
			if version == nil {
				continue
			}
			currentVersion, ok := existing[artifact]
			if !ok {
				existing[artifact] = version
				events = append(events, infof("%s: found new dependency %s:%s:%s", module, groupID, artifact, *version))
				continue
			}
			if currentVersion == nil {
				existing[artifact] = version
				events = append(events, warnf("%s: %s:%s BOM version overridden with %s", module, groupID, artifact, *version))
				continue
			}

			newer, err := isGreater(*version, *currentVersion)
			if err != nil {
				events = append(events, warnf("not replacing incomparable version %s for %s:%s", *version, groupID, artifact))
				continue
			}
			if newer {
				events = append(events, infof("%s: %s:%s - replaced version %s with %s", module, groupID, artifact, *currentVersion, *version))
				existing[artifact] = version
			}
		}
	}

	return events
}

// isGreater reports whether candidate is a strictly greater semantic
// version than existing. An error means one of the strings did not parse.
func isGreater(candidate, existing string) (bool, error) {
	cv, err := semver.NewVersion(candidate)
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", candidate, err)
	}
	ev, err := semver.NewVersion(existing)
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", existing, err)
	}
	return cv.GreaterThan(ev), nil
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
