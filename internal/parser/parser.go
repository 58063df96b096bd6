// Package parser implements blink's recursive-descent parser. It pulls
// tokens from a lexer on demand — there is no pre-tokenized slice — and
// produces a single Compound AST root.
package parser

import (
	"blink-lang/internal/ast"
	"blink-lang/internal/diag"
	"blink-lang/internal/lexer"
	"blink-lang/internal/span"
	"blink-lang/internal/token"
)

// Parser consumes a Lexer's token stream and builds the AST. It holds
// the current and previous token, mirroring the original implementation's
// current_token/prev_token pair, though the previous-token recovery that
// original used to recall a call's name (see parseVar) is replaced here
// with an explicit argument instead of implicit parser state.
type Parser struct {
	lexer *lexer.Lexer
	scope ast.Scope

	current token.Token
	prev    token.Token

	diags []diag.Diagnostic
}

// bailout unwinds the parser on the first syntax error, mirroring the
// original implementation's exit(1) inside consume: blink has no error
// recovery, so there is nothing useful to do after the first mismatch
// except stop.
type bailout struct{}

// New creates a Parser pulling tokens from lx, attaching sc to every
// node it produces.
func New(lx *lexer.Lexer, sc ast.Scope) *Parser {
	p := &Parser{lexer: lx, scope: sc}
	p.current = lx.Next()
	p.prev = p.current
	return p
}

// Parse parses the token stream and returns the Compound root. Parsing
// ends at the first token after a statement that is not a semicolon;
// tokens after that point are not read and produce no diagnostic.
// Diagnostics are returned even when parsing bails out early: the
// diagnostic that caused the bailout is always present.
func (p *Parser) Parse() (root *ast.Compound, diags []diag.Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); ok {
				diags = append(p.diags, p.lexer.Diagnostics()...)
				return
			}
			panic(r)
		}
	}()

	root = p.parseStatements(p.scope)
	diags = append(p.diags, p.lexer.Diagnostics()...)
	return root, diags
}

// ---- token helpers ----

func (p *Parser) error(code string, s span.Span, msg string) {
	p.diags = append(p.diags, diag.Errorf(code, s, "%s", msg))
	panic(bailout{})
}

// consume verifies the current token has the given kind and advances;
// any mismatch is a fatal "Unexpected token" diagnostic (spec.md §7).
func (p *Parser) consume(kind token.Kind) token.Token {
	if p.current.Kind != kind {
		p.error("E2001", p.current.Span,
			"Unexpected token `"+p.current.Value+"`, with type "+p.current.Kind.String())
	}
	tok := p.current
	p.prev = p.current
	p.current = p.lexer.Next()
	return tok
}

// ---- grammar ----

// parseStatements parses one statement, then as long as the current
// token is a semicolon, consumes it and parses another. The result is
// always a Compound, even for a single statement.
func (p *Parser) parseStatements(sc ast.Scope) *ast.Compound {
	start := p.current.Span.Start
	compound := &ast.Compound{NodeBase: ast.NewNodeBase(span.Span{}, sc)}

	first := p.parseStatement(sc)
	compound.Children = append(compound.Children, first)

	for p.current.Kind == token.SEMI {
		p.consume(token.SEMI)
		compound.Children = append(compound.Children, p.parseStatement(sc))
	}

	compound.SpanVal = span.Span{Start: start, End: p.prev.Span.End}
	return compound
}

// parseStatement dispatches on the current token; a non-identifier start
// is an empty (Noop) statement.
func (p *Parser) parseStatement(sc ast.Scope) ast.Node {
	if p.current.Kind == token.IDENT {
		return p.parseID(sc)
	}
	return &ast.Noop{NodeBase: ast.NewNodeBase(p.current.Span, sc)}
}

// parseID branches on the identifier's literal text: "String" introduces
// a variable definition, "fn" a function definition, anything else is a
// plain variable reference or function call.
func (p *Parser) parseID(sc ast.Scope) ast.Node {
	switch p.current.Value {
	case "String":
		return p.parseVarDef(sc)
	case "fn":
		return p.parseFnDef(sc)
	default:
		return p.parseVar(sc)
	}
}

// parseVarDef parses: String <name> = <expr>.
func (p *Parser) parseVarDef(sc ast.Scope) *ast.VarDef {
	start := p.current.Span.Start
	p.consume(token.IDENT) // "String"
	name := p.consume(token.IDENT).Value
	p.consume(token.ASSIGN)
	value := p.parseExpr(sc)

	return &ast.VarDef{
		NodeBase: ast.NewNodeBase(span.Span{Start: start, End: p.prev.Span.End}, sc),
		Name:     name,
		Value:    value,
	}
}

// parseFnDef parses: fn <name>(<params>) { <body> }.
func (p *Parser) parseFnDef(sc ast.Scope) *ast.FnDef {
	start := p.current.Span.Start
	p.consume(token.IDENT) // "fn"
	name := p.consume(token.IDENT).Value
	p.consume(token.LPAREN)

	params := []ast.Node{p.parseVar(sc)}
	for p.current.Kind == token.COMMA {
		p.consume(token.COMMA)
		params = append(params, p.parseVar(sc))
	}

	p.consume(token.RPAREN)
	p.consume(token.LBRACE)
	body := p.parseStatements(sc)
	p.consume(token.RBRACE)

	return &ast.FnDef{
		NodeBase: ast.NewNodeBase(span.Span{Start: start, End: p.prev.Span.End}, sc),
		Name:     name,
		Params:   params,
		Body:     body,
	}
}

// parseVar parses an identifier as either a Variable or, when an LPAREN
// immediately follows, promotes it to a function call. The name is
// captured before consuming the IDENT and passed explicitly to
// parseFnCall, rather than recovered afterward from parser state.
func (p *Parser) parseVar(sc ast.Scope) ast.Node {
	name := p.current.Value
	start := p.current.Span.Start
	p.consume(token.IDENT)

	if p.current.Kind == token.LPAREN {
		return p.parseFnCall(sc, name, start)
	}

	return &ast.Variable{
		NodeBase: ast.NewNodeBase(span.Span{Start: start, End: p.prev.Span.End}, sc),
		Name:     name,
	}
}

// parseFnCall parses: <name>(<args>). name and its start position are
// supplied by the caller (parseVar), which already consumed the IDENT.
func (p *Parser) parseFnCall(sc ast.Scope, name string, start span.Position) *ast.FnCall {
	p.consume(token.LPAREN)

	args := []ast.Node{p.parseExpr(sc)}
	for p.current.Kind == token.COMMA {
		p.consume(token.COMMA)
		args = append(args, p.parseExpr(sc))
	}

	p.consume(token.RPAREN)

	return &ast.FnCall{
		NodeBase: ast.NewNodeBase(span.Span{Start: start, End: p.prev.Span.End}, sc),
		Name:     name,
		Args:     args,
	}
}

// parseExpr parses a string literal, an identifier (variable or nested
// call), or produces Noop for anything else — blink has no operators, so
// there is no precedence climbing here at all.
func (p *Parser) parseExpr(sc ast.Scope) ast.Node {
	switch p.current.Kind {
	case token.STRING:
		return p.parseString(sc)
	case token.IDENT:
		return p.parseID(sc)
	default:
		return &ast.Noop{NodeBase: ast.NewNodeBase(p.current.Span, sc)}
	}
}

// parseString parses a string literal.
func (p *Parser) parseString(sc ast.Scope) *ast.String {
	tok := p.consume(token.STRING)
	return &ast.String{NodeBase: ast.NewNodeBase(tok.Span, sc), Value: tok.Value}
}
