// Package scope implements blink's single flat, shared scope: two ordered
// lists of definitions looked up linearly by name. There is no shadowing
// discipline: lookup returns the first match in insertion order, so the
// oldest definition of a name always wins, not the newest.
package scope

import "blink-lang/internal/ast"

// Scope holds every function and variable definition seen so far. blink
// has exactly one: the program's global scope, shared by every node in
// the tree and by every function body — see internal/interp for the
// consequence this has on function calls.
type Scope struct {
	fnDefs  []*ast.FnDef
	varDefs []*ast.VarDef
}

// New creates an empty Scope.
func New() *Scope {
	return &Scope{}
}

// AddFnDef appends fdef to the scope. A duplicate name does not replace
// an existing definition; both are kept.
func (s *Scope) AddFnDef(fdef *ast.FnDef) {
	s.fnDefs = append(s.fnDefs, fdef)
}

// GetFnDef returns the first FnDef inserted under name, if any.
func (s *Scope) GetFnDef(name string) (*ast.FnDef, bool) {
	for _, f := range s.fnDefs {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// AddVarDef appends vdef to the scope. A duplicate name does not replace
// an existing definition; both are kept, and lookup keeps returning the
// first one inserted.
func (s *Scope) AddVarDef(vdef *ast.VarDef) {
	s.varDefs = append(s.varDefs, vdef)
}

// GetVarDef returns the first VarDef inserted under name, if any.
func (s *Scope) GetVarDef(name string) (*ast.VarDef, bool) {
	for _, v := range s.varDefs {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}
