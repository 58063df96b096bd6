package lexer

import (
	"blink-lang/internal/token"
	"testing"
)

func TestTokenizeVarDef(t *testing.T) {
	source := `String greeting = "hello";`
	l := New(source, "test.bl")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	expected := []token.Kind{
		token.IDENT, token.IDENT, token.ASSIGN, token.STRING, token.SEMI, token.EOF,
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Kind != exp {
			t.Errorf("token[%d]: expected %s, got %s (%q)", i, exp, tokens[i].Kind, tokens[i].Value)
		}
	}
}

func TestTokenizeFnDefAndCall(t *testing.T) {
	source := `fn greet(name) { print(name); };greet("world")`
	l := New(source, "test.bl")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	expected := []token.Kind{
		token.IDENT, token.IDENT, token.LPAREN, token.IDENT, token.RPAREN, token.LBRACE,
		token.IDENT, token.LPAREN, token.IDENT, token.RPAREN, token.SEMI, token.RBRACE,
		token.SEMI,
		token.IDENT, token.LPAREN, token.STRING, token.RPAREN,
		token.EOF,
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Kind != exp {
			t.Errorf("token[%d]: expected %s, got %s (%q)", i, exp, tokens[i].Kind, tokens[i].Value)
		}
	}
}

func TestTokenizeDelimitersAndComma(t *testing.T) {
	source := `( ) { } , = ;`
	l := New(source, "test.bl")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	expected := []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.COMMA, token.ASSIGN, token.SEMI, token.EOF,
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Kind != exp {
			t.Errorf("token[%d]: expected %s, got %s", i, exp, tokens[i].Kind)
		}
	}
}

func TestTokenizeString(t *testing.T) {
	source := `"hello" "a b c"`
	l := New(source, "test.bl")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	if tokens[0].Kind != token.STRING || tokens[0].Value != "hello" {
		t.Errorf("expected STRING 'hello', got %s %q", tokens[0].Kind, tokens[0].Value)
	}
	if tokens[1].Kind != token.STRING || tokens[1].Value != "a b c" {
		t.Errorf("expected STRING 'a b c', got %s %q", tokens[1].Kind, tokens[1].Value)
	}
}

func TestTokenizeUnterminatedStringEmitsE1001(t *testing.T) {
	source := `"unterminated`
	l := New(source, "test.bl")
	_, diags := l.Tokenize()

	if len(diags) != 1 || diags[0].Code != "E1001" {
		t.Fatalf("expected a single E1001 diagnostic, got %v", diags)
	}
}

func TestTokenizeUnexpectedCharacterEmitsE1003(t *testing.T) {
	source := `String x = @;`
	l := New(source, "test.bl")
	tokens, diags := l.Tokenize()

	if len(diags) != 1 || diags[0].Code != "E1003" {
		t.Fatalf("expected a single E1003 diagnostic, got %v", diags)
	}

	found := false
	for _, tok := range tokens {
		if tok.Kind == token.ILLEGAL {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an ILLEGAL token among %v", tokens)
	}
}

func TestTokenizeWhitespaceRules(t *testing.T) {
	// Tabs and carriage returns are not recognized as whitespace, so the
	// lexer treats them as unexpected bytes rather than skipping them.
	source := "x\ty"
	l := New(source, "test.bl")
	_, diags := l.Tokenize()

	if len(diags) != 1 || diags[0].Code != "E1003" {
		t.Fatalf("expected a single E1003 diagnostic for the tab byte, got %v", diags)
	}
}

func TestTokenizePositions(t *testing.T) {
	source := "String x"
	l := New(source, "test.bl")
	tokens, _ := l.Tokenize()

	if tokens[0].Span.Start.Line != 1 || tokens[0].Span.Start.Column != 1 {
		t.Errorf("'String' position: expected 1:1, got %s", tokens[0].Span.Start)
	}
	if tokens[1].Span.Start.Line != 1 || tokens[1].Span.Start.Column != 8 {
		t.Errorf("'x' position: expected 1:8, got %s", tokens[1].Span.Start)
	}
}

// TestNextKeepsReturningEOF pins spec invariant 1 (tokenization totality):
// repeated calls to Next() eventually return Eof and keep returning it.
func TestNextKeepsReturningEOF(t *testing.T) {
	l := New(`"x"`, "test.bl")

	if tok := l.Next(); tok.Kind != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Kind)
	}

	for i := 0; i < 5; i++ {
		if tok := l.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d: expected EOF, got %s", i, tok.Kind)
		}
	}
}

func TestNextOnEmptySourceIsImmediateEOF(t *testing.T) {
	l := New("", "test.bl")
	if tok := l.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF on empty source, got %s", tok.Kind)
	}
	if tok := l.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF to persist, got %s", tok.Kind)
	}
}
