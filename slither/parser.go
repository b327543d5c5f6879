package slither

// parser is a recursive-descent parser over a Lexer's token sequence. It
// produces the full AST node catalogue (statements, expressions, class
// and method declarations); this file and its parser_*.go companions
// implement the grammar that drives the evaluator.
type parser struct {
	lex    *Lexer
	source string
}

func newParser(lex *Lexer, source string) *parser {
	return &parser{lex: lex, source: source}
}

func (p *parser) cur() Token {
	return p.lex.Current()
}

func (p *parser) advance() Token {
	return p.lex.Advance()
}

func (p *parser) at(tt TokenType) bool {
	return p.cur().Type == tt
}

func (p *parser) atChar(lit string) bool {
	return p.cur().Type == tokenChar && p.cur().Literal == lit
}

func (p *parser) expect(tt TokenType) (Token, error) {
	if !p.at(tt) {
		return Token{}, p.errorf("expected %s, got %s", tt, p.cur().Type)
	}
	tok := p.cur()
	p.advance()
	return tok, nil
}

func (p *parser) expectChar(lit string) error {
	if !p.atChar(lit) {
		return p.errorf("expected %q, got %s", lit, describeToken(p.cur()))
	}
	p.advance()
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return newParseError(p.cur().Pos, format, args...)
}

func describeToken(t Token) string {
	if t.Literal != "" {
		return t.Literal
	}
	return t.Type.String()
}

// parseProgram parses an entire token stream into a single CompoundStmt
// rooted at indent level 0, terminated by Eof.
func (p *parser) parseProgram() (Statement, error) {
	pos := p.cur().Pos
	stmts, err := p.parseStatements(tokenEOF)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenEOF); err != nil {
		return nil, err
	}
	return &CompoundStmt{position: pos, Stmts: stmts}, nil
}

// parseStatements parses statements until the stop token is reached
// (without consuming it). A simple statement (print, return, assignment,
// bare expression) is followed by its own Newline token, which is
// consumed here. A block statement (if/else, class) ends with its body's
// closing Dedent and has no Newline of its own to consume: blank lines
// contribute no tokens at all, so the next token is already either stop
// or the next sibling statement's first token.
func (p *parser) parseStatements(stop TokenType) ([]Statement, error) {
	var stmts []Statement
	for !p.at(stop) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.at(tokenNewline) {
			p.advance()
		}
	}
	return stmts, nil
}

// parseBlock parses an Indent, one or more statements, Dedent sequence:
// the body of a def, an if/else branch, or a class's method list.
func (p *parser) parseBlock() ([]Statement, error) {
	if _, err := p.expect(tokenIndent); err != nil {
		return nil, err
	}
	stmts, err := p.parseStatements(tokenDedent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenDedent); err != nil {
		return nil, err
	}
	return stmts, nil
}
