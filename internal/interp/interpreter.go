// Package interp implements blink's tree-walking evaluator.
package interp

import (
	"fmt"
	"io"

	"blink-lang/internal/ast"
	"blink-lang/internal/diag"
	"blink-lang/internal/span"

	"github.com/hashicorp/go-hclog"
)

// RuntimeError represents a failure during evaluation: an undefined
// variable, an undefined method, an arity mismatch, or an AST kind the
// evaluator does not recognize. Every RuntimeError carries the
// diagnostic code the driver reports on exit.
type RuntimeError struct {
	Diag diag.Diagnostic
}

func (e *RuntimeError) Error() string { return e.Diag.String() }

func runtimeErr(code string, s span.Span, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Diag: diag.Errorf(code, s, format, args...)}
}

// Interpreter walks the AST and executes it, writing print output to Out.
type Interpreter struct {
	Out    io.Writer
	Logger hclog.Logger
}

// New creates an Interpreter writing print output to out. A nil logger
// is replaced with hclog's null logger, so callers that don't care about
// --verbose tracing never need a nil check.
func New(out io.Writer, logger hclog.Logger) *Interpreter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Interpreter{Out: out, Logger: logger}
}

// Run evaluates root, the Compound produced by the parser.
func (i *Interpreter) Run(root *ast.Compound) error {
	_, err := i.visit(root)
	return err
}

// visit dispatches on the node's concrete kind, mirroring spec.md's
// seven-way switch exactly: Compound discards intermediate results and
// always reports a fresh Noop, everything else returns whatever it
// decides is "its" value.
func (i *Interpreter) visit(node ast.Node) (ast.Node, error) {
	switch n := node.(type) {
	case *ast.VarDef:
		return i.visitVarDef(n)
	case *ast.FnDef:
		return i.visitFnDef(n)
	case *ast.Variable:
		return i.visitVariable(n)
	case *ast.FnCall:
		return i.visitFnCall(n)
	case *ast.String:
		return n, nil
	case *ast.Compound:
		return i.visitCompound(n)
	case *ast.Noop:
		return n, nil
	default:
		return nil, runtimeErr("E3003", node.Span(), "Uncaught statement")
	}
}

func (i *Interpreter) visitVarDef(n *ast.VarDef) (ast.Node, error) {
	i.Logger.Trace("var def", "name", n.Name)
	n.Scope().AddVarDef(n)
	return n, nil
}

func (i *Interpreter) visitFnDef(n *ast.FnDef) (ast.Node, error) {
	i.Logger.Trace("fn def", "name", n.Name, "params", len(n.Params))
	n.Scope().AddFnDef(n)
	return n, nil
}

// visitVariable looks up the variable's own VarDef and recursively
// evaluates its stored expression — a Variable never caches a value of
// its own.
func (i *Interpreter) visitVariable(n *ast.Variable) (ast.Node, error) {
	vdef, ok := n.Scope().GetVarDef(n.Name)
	if !ok {
		return nil, runtimeErr("E3001", n.Span(), "Undefined var %q", n.Name)
	}
	return i.visit(vdef.Value)
}

// visitFnCall handles both the print built-in and user-defined
// functions. User calls bind arguments into the callee body's scope
// reference before entering the body — since every node in the program
// shares one global Scope, this is the same scope the call site itself
// resolves variables in, so the bindings leak into the global namespace
// for the rest of the program's lifetime.
func (i *Interpreter) visitFnCall(n *ast.FnCall) (ast.Node, error) {
	if n.Name == "print" {
		return i.callPrint(n)
	}

	fdef, ok := n.Scope().GetFnDef(n.Name)
	if !ok {
		return nil, runtimeErr("E3002", n.Span(), "Undefined method %q", n.Name)
	}

	if len(n.Args) != len(fdef.Params) {
		return nil, runtimeErr("E3004", n.Span(),
			"%q expects %d argument(s), got %d", n.Name, len(fdef.Params), len(n.Args))
	}

	i.Logger.Trace("fn call", "name", n.Name, "args", len(n.Args))

	for idx, param := range fdef.Params {
		pv, ok := param.(*ast.Variable)
		if !ok {
			return nil, runtimeErr("E3003", param.Span(), "Uncaught statement")
		}
		binding := &ast.VarDef{
			NodeBase: ast.NewNodeBase(n.Args[idx].Span(), fdef.Body.Scope()),
			Name:     pv.Name,
			Value:    n.Args[idx],
		}
		fdef.Body.Scope().AddVarDef(binding)
	}

	return i.visit(fdef.Body)
}

// callPrint evaluates each argument and writes one line per argument:
// the literal text for a String result, an opaque identity token for
// anything else.
func (i *Interpreter) callPrint(n *ast.FnCall) (ast.Node, error) {
	for _, arg := range n.Args {
		result, err := i.visit(arg)
		if err != nil {
			return nil, err
		}
		if s, ok := result.(*ast.String); ok {
			fmt.Fprintf(i.Out, "%s\n", s.Value)
		} else {
			fmt.Fprintf(i.Out, "%p\n", result)
		}
	}
	return &ast.Noop{NodeBase: ast.NewNodeBase(n.Span(), n.Scope())}, nil
}

func (i *Interpreter) visitCompound(n *ast.Compound) (ast.Node, error) {
	for _, child := range n.Children {
		if _, err := i.visit(child); err != nil {
			return nil, err
		}
	}
	return &ast.Noop{NodeBase: ast.NewNodeBase(n.Span(), n.Scope())}, nil
}
