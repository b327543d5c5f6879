package slither

// parseClassDefStmt parses `class Name:` or `class Name(Parent):`
// followed by an indented block of one or more def bodies.
func (p *parser) parseClassDefStmt() (Statement, error) {
	pos := p.cur().Pos
	p.advance() // 'class'

	nameTok, err := p.expect(tokenIdent)
	if err != nil {
		return nil, err
	}

	parentName := ""
	if p.atChar("(") {
		p.advance()
		parentTok, err := p.expect(tokenIdent)
		if err != nil {
			return nil, err
		}
		parentName = parentTok.Literal
		if err := p.expectChar(")"); err != nil {
			return nil, err
		}
	}

	if err := p.expectChar(":"); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenNewline); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenIndent); err != nil {
		return nil, err
	}

	var methods []*Method
	for !p.at(tokenDedent) {
		if !p.at(tokenDef) {
			return nil, p.errorf("malformed class definition: expected method, got %s", describeToken(p.cur()))
		}
		m, err := p.parseMethod()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if _, err := p.expect(tokenDedent); err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, newParseError(pos, "malformed class definition: %s has no methods", nameTok.Literal)
	}

	class := &ClassDef{Name: nameTok.Literal, Methods: methods}
	return &ClassDefStmt{position: pos, Class: class, ParentName: parentName}, nil
}

// parseMethod parses `def name(params):` followed by an indented body,
// wrapping the body in a MethodBodyStmt so that a Return anywhere inside
// it is caught exactly once, at this boundary.
func (p *parser) parseMethod() (*Method, error) {
	pos := p.cur().Pos
	p.advance() // 'def'

	nameTok, err := p.expect(tokenIdent)
	if err != nil {
		return nil, err
	}
	if err := p.expectChar("("); err != nil {
		return nil, err
	}
	var params []string
	if !p.atChar(")") {
		for {
			paramTok, err := p.expect(tokenIdent)
			if err != nil {
				return nil, err
			}
			params = append(params, paramTok.Literal)
			if p.atChar(",") {
				p.advance()
				continue
			}
			break
		}
	}
	if err := p.expectChar(")"); err != nil {
		return nil, err
	}
	if err := p.expectChar(":"); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenNewline); err != nil {
		return nil, err
	}

	bodyStmts, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	body := &MethodBodyStmt{position: pos, Body: &CompoundStmt{position: pos, Stmts: bodyStmts}}
	return &Method{Name: nameTok.Literal, Params: params, Body: body}, nil
}
