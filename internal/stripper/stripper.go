// Package stripper removes version pins and parent-owned declarations from
// module POM documents once the BOM takes over. The walk is structural:
// elements are matched by local tag name and immediate parent, and nothing
// else in the document is touched.
package stripper

import (
	"github.com/beevik/etree"

	"github.com/indaco/pombom/internal/pom"
)

// Strip mutates doc in place, removing:
//   - every version element whose immediate parent is a dependency element
//   - the dependencyManagement element directly under the project root
//   - every property named in removeProps whose immediate parent is a
//     properties element
//
// Stripping an already-stripped document is a no-op.
func Strip(doc *pom.Document, removeProps pom.Properties) {
	strip(doc.Project(), removeProps)
}

func strip(el *etree.Element, removeProps pom.Properties) {
	parent := el.Parent()
	if parent != nil {
		switch {
		case el.Tag == pom.ElemVersion && parent.Tag == pom.ElemDependency:
			parent.RemoveChild(el)
			return
		case el.Tag == pom.ElemDependencyManagement && parent.Tag == pom.ElemProject:
			parent.RemoveChild(el)
			return
		case parent.Tag == pom.ElemProperties:
			if _, ok := removeProps[el.Tag]; ok {
				parent.RemoveChild(el)
				return
			}
		}
	}

	// ChildElements snapshots the children, so removals below do not
	// disturb traversal of the remaining siblings.
	for _, child := range el.ChildElements() {
		strip(child, removeProps)
	}
}
