package pom

import "regexp"

// interpolatePattern matches a ${name} reference at the start of a value.
// Property names may contain word characters, dots, and dashes.
var interpolatePattern = regexp.MustCompile(`^\$\{([\w.-]+)\}`)

// Interpolate resolves a ${name} reference against props. Resolution is
// best-effort: values that are not references, and references to names
// absent from props, are returned unchanged.
func Interpolate(props Properties, value string) string {
	m := interpolatePattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	if resolved, ok := props[m[1]]; ok {
		return resolved
	}
	return value
}
