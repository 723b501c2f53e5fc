// Package edmx loads, searches and saves EDMX documents.
//
// EDMX files mix several XML dialects (CSDL, SSDL, MSL), each under its own
// namespace and sometimes its own prefix. Every lookup in this package is
// keyed on the unqualified (local) tag name, so callers never deal with
// namespaces.
//
// The tree is an order-preserving DOM: whitespace, comments and processing
// instructions survive a load/save cycle, and only the elements a caller
// moves or renames change in the output.
//
// # Usage
//
//	doc, err := edmx.Load(fsProvider, "Model.edmx")
//	if err != nil {
//	    return err // wraps edmxtidy.ErrMalformedDocument
//	}
//	conceptual, err := doc.Section(edmxtidy.ConceptualModelsElement)
//	for _, entity := range edmx.FindByLocalName(conceptual, edmxtidy.EntityTypeElement) {
//	    fmt.Println(edmx.NameOf(entity))
//	}
//	err = doc.Save(fsProvider, "Model.edmx")
package edmx
