package scanner

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/indaco/pombom/internal/pom"
)

// Scanner reads properties and dependency declarations from one POM document.
type Scanner struct {
	doc *pom.Document

	versionProps pom.Properties
	otherProps   pom.Properties
	scanned      bool
}

// New creates a Scanner for the given document.
func New(doc *pom.Document) *Scanner {
	return &Scanner{
		doc:          doc,
		versionProps: make(pom.Properties),
		otherProps:   make(pom.Properties),
	}
}

// ScanProperties reads the document's properties element and partitions the
// entries by a case-insensitive substring match on "version" in the property
// name. Properties with empty text are skipped: an empty value cannot
// resolve a reference. A missing properties element yields two empty maps.
func (s *Scanner) ScanProperties() (versionProps, otherProps pom.Properties) {
	if s.scanned {
		return s.versionProps, s.otherProps
	}
	s.scanned = true

	properties := s.doc.Project().SelectElement(pom.ElemProperties)
	if properties == nil {
		return s.versionProps, s.otherProps
	}

	for _, property := range properties.ChildElements() {
		value := pom.Text(property)
		if value == "" {
			continue
		}
		if strings.Contains(strings.ToLower(property.Tag), "version") {
			s.versionProps[property.Tag] = value
		} else {
			s.otherProps[property.Tag] = value
		}
	}

	return s.versionProps, s.otherProps
}

// ScanDependencies walks every dependency element in the document, including
// any under dependencyManagement, and groups resolved versions by
// groupId then artifactId. A dependency with no version element is recorded
// with a nil version ("managed elsewhere"). Field values starting with the
// ${ interpolation marker are resolved first against the module's own
// version properties, then against parentProps; unresolvable references are
// kept verbatim.
//
// A dependency missing its groupId or artifactId aborts the scan.
func (s *Scanner) ScanDependencies(parentProps pom.Properties) (pom.DependencyGroups, error) {
	s.ScanProperties()

	groups := make(pom.DependencyGroups)
	for _, dependency := range collectDependencies(s.doc.Project()) {
		record := make(map[string]string)
		for _, field := range dependency.ChildElements() {
			value := pom.Text(field)
			if strings.HasPrefix(value, "${") {
				value = pom.Interpolate(s.versionProps, value)
				value = pom.Interpolate(parentProps, value)
			}
			record[field.Tag] = value
		}

		groupID, ok := record[pom.ElemGroupID]
		if !ok || groupID == "" {
			return nil, fmt.Errorf("dependency in %q is missing a groupId", s.doc.Path())
		}
		artifactID, ok := record[pom.ElemArtifactID]
		if !ok || artifactID == "" {
			return nil, fmt.Errorf("dependency %q in %q is missing an artifactId", groupID, s.doc.Path())
		}

		if groups[groupID] == nil {
			groups[groupID] = make(pom.Artifacts)
		}
		if version, ok := record[pom.ElemVersion]; ok {
			groups[groupID][artifactID] = pom.Version(version)
		} else {
			groups[groupID][artifactID] = nil
		}
	}

	return groups, nil
}

// collectDependencies returns every dependency element in document order.
func collectDependencies(el *etree.Element) []*etree.Element {
	var found []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == pom.ElemDependency {
			found = append(found, child)
			continue
		}
		found = append(found, collectDependencies(child)...)
	}
	return found
}
