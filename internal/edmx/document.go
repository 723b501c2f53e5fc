package edmx

import (
	"fmt"
	"io/fs"

	"github.com/beevik/etree"

	"github.com/vvka-141/edmxtidy/internal/files/filesystem"
	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

// Element is a node of the document tree.
type Element = etree.Element

// Document is a parsed EDMX file.
type Document struct {
	tree *etree.Document
	path string
}

// Load reads and parses the file at path.
func Load(fsProvider filesystem.FileSystemProvider, path string) (*Document, error) {
	data, err := fsProvider.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse builds a Document from raw bytes. path is used for error reporting.
func Parse(data []byte, path string) (*Document, error) {
	tree := etree.NewDocument()
	tree.ReadSettings.PreserveCData = true
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, wrapParseError(err, path)
	}
	if tree.Root() == nil {
		return nil, &DocumentError{
			Path:    path,
			Message: "document has no root element",
			Hint:    "An EDMX file starts with an <edmx:Edmx> root element.",
		}
	}
	return &Document{tree: tree, path: path}, nil
}

// Path returns the path the document was loaded from.
func (d *Document) Path() string { return d.path }

// Root returns the document element.
func (d *Document) Root() *Element { return d.tree.Root() }

// Section returns the single descendant named name, such as
// StorageModels or ConceptualModels.
func (d *Document) Section(name string) (*Element, error) {
	matches := FindByLocalName(d.Root(), name)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s not found in %s", edmxtidy.ErrMissingModelSection, name, d.path)
	case 1:
		return matches[0], nil
	default:
		return nil, &DocumentError{
			Path:    d.path,
			Message: fmt.Sprintf("found %d %s sections, expected exactly one", len(matches), name),
		}
	}
}

// Bytes serializes the document.
func (d *Document) Bytes() ([]byte, error) {
	return d.tree.WriteToBytes()
}

// Save serializes the document and atomically replaces path with it.
// Serialization completes before the filesystem is touched.
func (d *Document) Save(fsProvider filesystem.FileSystemProvider, path string) error {
	data, err := d.Bytes()
	if err != nil {
		return fmt.Errorf("%w: failed to serialize %s: %v", edmxtidy.ErrWriteFailed, path, err)
	}
	return WriteBytes(fsProvider, path, data)
}

// WriteBytes persists already serialized document bytes.
func WriteBytes(fsProvider filesystem.FileSystemProvider, path string, data []byte) error {
	if err := fsProvider.WriteFileAtomic(path, data, fs.FileMode(0644)); err != nil {
		return fmt.Errorf("%w: %v", edmxtidy.ErrWriteFailed, err)
	}
	return nil
}

// FindByLocalName returns el and every descendant of el whose unqualified
// tag is name, in document order.
func FindByLocalName(el *Element, name string) []*Element {
	if el == nil {
		return nil
	}
	var out []*Element
	var walk func(e *Element)
	walk = func(e *Element) {
		if e.Tag == name {
			out = append(out, e)
		}
		for _, child := range e.ChildElements() {
			walk(child)
		}
	}
	walk(el)
	return out
}

// ChildrenByLocalName returns the direct children of el whose unqualified
// tag is name, in document order.
func ChildrenByLocalName(el *Element, name string) []*Element {
	if el == nil {
		return nil
	}
	var out []*Element
	for _, child := range el.ChildElements() {
		if child.Tag == name {
			out = append(out, child)
		}
	}
	return out
}

// NameOf returns the Name attribute of el, or "" if it has none.
func NameOf(el *Element) string {
	return AttrOf(el, edmxtidy.NameAttribute)
}

// AttrOf returns the unprefixed attribute key of el, or "".
func AttrOf(el *Element, key string) string {
	for _, a := range el.Attr {
		if a.Space == "" && a.Key == key {
			return a.Value
		}
	}
	return ""
}

// SetName overwrites the Name attribute of el in place.
func SetName(el *Element, name string) {
	for i := range el.Attr {
		if el.Attr[i].Space == "" && el.Attr[i].Key == edmxtidy.NameAttribute {
			el.Attr[i].Value = name
			return
		}
	}
	el.CreateAttr(edmxtidy.NameAttribute, name)
}
