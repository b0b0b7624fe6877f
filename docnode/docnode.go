// Package docnode declares the generic document node access capability
// that metadata constraint validators are built on.
//
// None of the iteration packages depend on it;
// it is the boundary through which external validator components
// inspect and populate parse tree nodes of schema documents,
// whatever the underlying representation is (JSON object, BSON document, ...).
package docnode

// Parser gives structured access to the value properties of a document node.
type Parser[Node any] interface {
	// GetValueProperty returns the named value property of the node,
	// or nil when the node has no such property.
	GetValueProperty(node Node, name string) interface{}
	// PutValue sets the named property of the node to the given value.
	PutValue(node Node, name string, value interface{})
}
