package pom

// Properties maps property names to their string values.
type Properties map[string]string

// Merge copies all entries from other into p, overwriting existing names.
func (p Properties) Merge(other Properties) {
	for name, value := range other {
		p[name] = value
	}
}

// Artifacts maps artifactIds to a resolved version string. A nil version
// marks a dependency whose version is managed elsewhere (no version element
// was declared).
type Artifacts map[string]*string

// DependencyGroups maps groupIds to the artifacts declared under them.
// It is the accumulator threaded through a whole consolidation run.
type DependencyGroups map[string]Artifacts

// Count returns the total number of (groupId, artifactId) pairs.
func (g DependencyGroups) Count() int {
	n := 0
	for _, artifacts := range g {
		n += len(artifacts)
	}
	return n
}

// Version is a convenience constructor for a concrete artifact version.
func Version(s string) *string {
	return &s
}
