package slither

import (
	"strings"
	"testing"
)

func tokenTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	lex, err := NewLexer(strings.NewReader(src))
	if err != nil {
		t.Fatalf("NewLexer(%q) returned error: %v", src, err)
	}
	var types []TokenType
	for {
		tok := lex.Current()
		types = append(types, tok.Type)
		if tok.Type == tokenEOF {
			break
		}
		lex.Advance()
	}
	return types
}

func TestLexerSimpleStatement(t *testing.T) {
	got := tokenTypes(t, "print \"hello\"\n")
	want := []TokenType{tokenPrint, tokenString, tokenNewline, tokenEOF}
	assertTokenTypes(t, got, want)
}

func TestLexerIndentDedentBalance(t *testing.T) {
	src := "if True:\n  print 1\nprint 2\n"
	got := tokenTypes(t, src)
	indents, dedents := 0, 0
	for _, tt := range got {
		if tt == tokenIndent {
			indents++
		}
		if tt == tokenDedent {
			dedents++
		}
	}
	if indents != dedents {
		t.Fatalf("unbalanced indent/dedent: %d indents, %d dedents (tokens=%v)", indents, dedents, got)
	}
}

func TestLexerBlankAndCommentLinesDoNotAffectIndent(t *testing.T) {
	src := "if True:\n  print 1\n\n  # a comment\n  print 2\nprint 3\n"
	got := tokenTypes(t, src)
	indents, dedents := 0, 0
	for _, tt := range got {
		if tt == tokenIndent {
			indents++
		}
		if tt == tokenDedent {
			dedents++
		}
	}
	if indents != 1 || dedents != 1 {
		t.Fatalf("expected exactly one indent/dedent pair, got indents=%d dedents=%d (tokens=%v)", indents, dedents, got)
	}
}

func TestLexerLeadingSpaceAtStreamStartIsError(t *testing.T) {
	_, err := NewLexer(strings.NewReader(" x = 1\n"))
	if err == nil {
		t.Fatalf("expected a lex error for a stream beginning with a space")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("expected *LexError, got %T: %v", err, err)
	}
}

func TestLexerOddIndentIsError(t *testing.T) {
	src := "if True:\n   x = 1\n"
	_, err := NewLexer(strings.NewReader(src))
	if err == nil {
		t.Fatalf("expected a lex error for an odd indent width")
	}
}

func TestLexerOverIndentIsError(t *testing.T) {
	src := "if True:\n    x = 1\n"
	_, err := NewLexer(strings.NewReader(src))
	if err == nil {
		t.Fatalf("expected a lex error for jumping more than one indent level")
	}
}

func TestLexerStringEscapes(t *testing.T) {
	lex, err := NewLexer(strings.NewReader(`"a\nb\tc\"d"` + "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok := lex.Current()
	if tok.Type != tokenString {
		t.Fatalf("expected a string token, got %s", tok.Type)
	}
	want := "a\nb\tc\"d"
	if tok.Literal != want {
		t.Fatalf("got %q, want %q", tok.Literal, want)
	}
}

func TestLexerUnknownEscapeIsError(t *testing.T) {
	_, err := NewLexer(strings.NewReader(`"\q"` + "\n"))
	if err == nil {
		t.Fatalf("expected a lex error for an unrecognized escape sequence")
	}
}

func TestLexerUnterminatedStringIsError(t *testing.T) {
	_, err := NewLexer(strings.NewReader(`"abc`))
	if err == nil {
		t.Fatalf("expected a lex error for an unterminated string")
	}
}

func TestLexerNumberLeadingZeroStandsAlone(t *testing.T) {
	lex, err := NewLexer(strings.NewReader("0123\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok := lex.Current()
	if tok.Type != tokenNumber || tok.NumberVal != 0 {
		t.Fatalf("got %+v, want Number(0)", tok)
	}
	tok = lex.Advance()
	if tok.Type != tokenNumber || tok.NumberVal != 123 {
		t.Fatalf("got %+v, want Number(123) after the standalone 0", tok)
	}
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	got := tokenTypes(t, "class return if else def print and or not None True False foo\n")
	want := []TokenType{
		tokenClass, tokenReturn, tokenIf, tokenElse, tokenDef, tokenPrint,
		tokenAnd, tokenOr, tokenNot, tokenNone, tokenTrue, tokenFalse,
		tokenIdent, tokenNewline, tokenEOF,
	}
	assertTokenTypes(t, got, want)
}

func TestLexerMultiCharOperators(t *testing.T) {
	got := tokenTypes(t, "a == b != c <= d >= e < f > g\n")
	var filtered []TokenType
	for _, tt := range got {
		if tt != tokenIdent {
			filtered = append(filtered, tt)
		}
	}
	want := []TokenType{tokenEq, tokenNotEq, tokenLessOrEq, tokenGreaterOrEq, tokenChar, tokenChar, tokenNewline, tokenEOF}
	assertTokenTypes(t, filtered, want)
}

func TestLexerBareBangIsError(t *testing.T) {
	_, err := NewLexer(strings.NewReader("a ! b\n"))
	if err == nil {
		t.Fatalf("expected a lex error for a bare !")
	}
}

func TestLexerTerminationAppendsNewlineAndDedents(t *testing.T) {
	src := "if True:\n  print 1"
	lex, err := NewLexer(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var types []TokenType
	for {
		tok := lex.Current()
		types = append(types, tok.Type)
		if tok.Type == tokenEOF {
			break
		}
		lex.Advance()
	}
	n := len(types)
	if n < 3 || types[n-1] != tokenEOF || types[n-3] != tokenNewline || types[n-2] != tokenDedent {
		t.Fatalf("expected ...Newline, Dedent, Eof at the end, got %v", types)
	}
}

func assertTokenTypes(t *testing.T, got, want []TokenType) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s (full got=%v want=%v)", i, got[i], want[i], got, want)
		}
	}
}
