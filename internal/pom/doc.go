// Package pom provides the Maven POM document layer for pombom. It wraps
// beevik/etree so documents can be modified while preserving comments and
// the formatting of untouched nodes, and holds the shared property and
// dependency group types plus ${name} property interpolation.
package pom
