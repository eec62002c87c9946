package pom

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/indaco/pombom/internal/core"
)

// Well-known POM element names.
const (
	ElemProject              = "project"
	ElemProperties           = "properties"
	ElemDependency           = "dependency"
	ElemDependencies         = "dependencies"
	ElemDependencyManagement = "dependencyManagement"
	ElemVersion              = "version"
	ElemGroupID              = "groupId"
	ElemArtifactID           = "artifactId"
	ElemModule               = "module"
)

// Document is a parsed POM file. The underlying etree document keeps every
// token (comments, character data) so untouched parts of the file survive
// re-serialization unchanged.
type Document struct {
	doc  *etree.Document
	path string
}

// Load reads and parses the POM at path. Unparsable XML is a fatal error.
func Load(ctx context.Context, fsys core.FileSystem, path string) (*Document, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	d.path = path
	return d, nil
}

// Parse parses POM XML from a byte slice.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return &Document{doc: doc}, nil
}

// Path returns the file path the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

// Project returns the document's root project element.
func (d *Document) Project() *etree.Element {
	return d.doc.Root()
}

// Indent reindents the whole document with the given number of spaces.
// Only used for the generated parent output; stripped module documents are
// written without reindentation to keep the original formatting.
func (d *Document) Indent(spaces int) {
	d.doc.Indent(spaces)
}

// Bytes serializes the document.
func (d *Document) Bytes() ([]byte, error) {
	return d.doc.WriteToBytes()
}

// WriteTo serializes the document to the given path.
func (d *Document) WriteTo(ctx context.Context, fsys core.FileSystem, path string) error {
	data, err := d.Bytes()
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := fsys.WriteFile(ctx, path, data, core.PermFile); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return nil
}

// Text returns the trimmed text content of an element, or "" for nil.
func Text(el *etree.Element) string {
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// ChildText returns the trimmed text of the first child with the given
// local tag name, or "" when the child is absent.
func ChildText(el *etree.Element, name string) string {
	return Text(el.SelectElement(name))
}
