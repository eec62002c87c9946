// Package core provides shared low-level building blocks for the pombom CLI:
// a context-aware filesystem abstraction with an in-memory mock for tests,
// and common file permission constants.
package core
