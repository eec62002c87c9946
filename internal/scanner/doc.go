// Package scanner extracts property declarations and dependency
// declarations from a single POM document. Properties are partitioned into
// version-like and other properties; dependency versions are resolved
// through two interpolation passes (module-local version properties first,
// then the property scope accumulated from previously scanned documents).
package scanner
