package slither

// parseStatement dispatches on the current token to one of the
// keyword-led statement forms, falling back to the assignment-or-plain-
// expression form for everything else.
func (p *parser) parseStatement() (Statement, error) {
	switch p.cur().Type {
	case tokenPrint:
		return p.parsePrintStmt()
	case tokenReturn:
		return p.parseReturnStmt()
	case tokenIf:
		return p.parseIfElseStmt()
	case tokenClass:
		return p.parseClassDefStmt()
	default:
		return p.parseSimpleStatement()
	}
}

func (p *parser) parsePrintStmt() (Statement, error) {
	pos := p.cur().Pos
	p.advance() // 'print'
	var args []Expression
	if !p.at(tokenNewline) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.atChar(",") {
				p.advance()
				continue
			}
			break
		}
	}
	return &PrintStmt{position: pos, Args: args}, nil
}

func (p *parser) parseReturnStmt() (Statement, error) {
	pos := p.cur().Pos
	p.advance() // 'return'
	if p.at(tokenNewline) {
		return &ReturnStmt{position: pos, Value: &NoneConst{position: pos}}, nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ReturnStmt{position: pos, Value: expr}, nil
}

func (p *parser) parseIfElseStmt() (Statement, error) {
	pos := p.cur().Pos
	p.advance() // 'if'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(":"); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenNewline); err != nil {
		return nil, err
	}
	thenStmts, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	thenBlock := &CompoundStmt{position: pos, Stmts: thenStmts}

	var elseBlock Statement
	if p.at(tokenElse) {
		elsePos := p.cur().Pos
		p.advance()
		if err := p.expectChar(":"); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenNewline); err != nil {
			return nil, err
		}
		elseStmts, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elseBlock = &CompoundStmt{position: elsePos, Stmts: elseStmts}
	}

	return &IfElseStmt{position: pos, Cond: cond, Then: thenBlock, Else: elseBlock}, nil
}

// parseSimpleStatement handles the forms that are expressions in
// statement position: assignment, field assignment, method calls, and
// instantiation. It disambiguates assignment from everything else by
// attempting to parse a dotted name and checking for a following '=',
// rewinding the lexer cursor if that fails, which is cheap since the
// token stream is materialized eagerly and the cursor is just an int.
func (p *parser) parseSimpleStatement() (Statement, error) {
	pos := p.cur().Pos
	mark := p.lex.Mark()

	if path, ok := p.tryParsePath(); ok && p.atChar("=") {
		p.advance() // '='
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if len(path) == 1 {
			return &ExprStmt{position: pos, X: &Assignment{position: pos, Name: path[0], Value: rhs}}, nil
		}
		target := &VariableValue{position: pos, Path: path[:len(path)-1]}
		field := path[len(path)-1]
		return &ExprStmt{position: pos, X: &FieldAssignment{position: pos, Target: target, Field: field, Value: rhs}}, nil
	}

	p.lex.Reset(mark)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{position: pos, X: expr}, nil
}
