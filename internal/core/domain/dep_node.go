// Package domain contains the core domain models for the previous-session
// dependency graph.
package domain

import "unique"

// DepNode identifies a unit of work performed in a prior session, such as
// "typecheck pkg/foo" or "compile cmd/sift". Both parts are interned via the
// unique package so DepNode is cheap to copy, O(1) to compare and usable as a
// map key even with millions of distinct nodes.
type DepNode struct {
	kind unique.Handle[string]
	name unique.Handle[string]
}

// NewDepNode creates a DepNode from a kind and a name.
func NewDepNode(kind, name string) DepNode {
	return DepNode{
		kind: unique.Make(kind),
		name: unique.Make(name),
	}
}

// Kind returns the node's kind, e.g. "typecheck".
func (n DepNode) Kind() string {
	return n.kind.Value()
}

// Name returns the node's name, e.g. "pkg/foo".
func (n DepNode) Name() string {
	return n.name.Value()
}

// String renders the node as "kind(name)" for logs and error metadata.
func (n DepNode) String() string {
	return n.kind.Value() + "(" + n.name.Value() + ")"
}
