// Package ast defines the abstract syntax tree for blink: a discriminated
// union of exactly seven node kinds, each carrying a non-owning reference
// to the Scope it was parsed in.
package ast

import "blink-lang/internal/span"

// Scope is the lookup surface every AST node needs at evaluation time.
// It is declared here, not in the scope package, so that ast has no
// dependency on the concrete scope implementation — package scope
// depends on ast (it stores *VarDef/*FnDef), not the other way around.
type Scope interface {
	AddVarDef(v *VarDef)
	GetVarDef(name string) (*VarDef, bool)
	AddFnDef(f *FnDef)
	GetFnDef(name string) (*FnDef, bool)
}

// Node is the interface implemented by all seven AST node kinds.
type Node interface {
	Span() span.Span
	Scope() Scope
	isNode()
}

// NodeBase is embedded by every node kind to provide the common Span and
// Scope fields required by every node in the tree.
type NodeBase struct {
	SpanVal  span.Span
	ScopeVal Scope
}

func (n NodeBase) Span() span.Span { return n.SpanVal }
func (n NodeBase) Scope() Scope    { return n.ScopeVal }
func (NodeBase) isNode()           {}

// NewNodeBase builds the embedded base shared by every node kind.
func NewNodeBase(s span.Span, sc Scope) NodeBase {
	return NodeBase{SpanVal: s, ScopeVal: sc}
}

// VarDef is a variable definition: String <name> = <value>.
type VarDef struct {
	NodeBase
	Name  string
	Value Node
}

// FnDef is a function definition: fn <name>(<params>) { <body> }.
//
// Params is typed as []Node, not []*Variable, even though every
// well-formed program only ever produces Variable nodes here — parsing a
// parameter reuses the same parseVar routine used for general
// expressions, so a parameter slot can in principle hold whatever
// parseVar returns. See internal/parser for the one-token-lookahead that
// makes this so.
type FnDef struct {
	NodeBase
	Name   string
	Params []Node
	Body   *Compound
}

// Variable is a reference to a previously defined name.
type Variable struct {
	NodeBase
	Name string
}

// FnCall is a call to a built-in or user-defined function.
type FnCall struct {
	NodeBase
	Name string
	Args []Node
}

// String is a string literal.
type String struct {
	NodeBase
	Value string
}

// Compound is an ordered sequence of statements. The parser's root
// result is always a Compound, even for an empty or single-statement
// program.
type Compound struct {
	NodeBase
	Children []Node
}

// Noop is the empty statement produced by a trailing separator or any
// unrecognized statement start.
type Noop struct {
	NodeBase
}
