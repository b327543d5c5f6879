package slither

// parseExpr parses a full expression at the lowest precedence level:
// or < and < not < comparison < additive < multiplicative < unary <
// postfix/primary.
func (p *parser) parseExpr() (Expression, error) {
	return p.parseOr()
}

func (p *parser) parseOr() (Expression, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.at(tokenOr) {
		pos := p.cur().Pos
		p.advance()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = &LogicalExpr{position: pos, Op: OpOr, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *parser) parseAnd() (Expression, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.at(tokenAnd) {
		pos := p.cur().Pos
		p.advance()
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = &LogicalExpr{position: pos, Op: OpAnd, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *parser) parseNot() (Expression, error) {
	if p.at(tokenNot) {
		pos := p.cur().Pos
		p.advance()
		x, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &NotExpr{position: pos, X: x}, nil
	}
	return p.parseComparison()
}

// parseComparison parses a single (non-chaining) relational expression.
// The grammar does not support `a < b < c`; write that as `a < b and
// b < c` if needed.
func (p *parser) parseComparison() (Expression, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	var op CompareOp
	switch {
	case p.at(tokenEq):
		op = OpEq
	case p.at(tokenNotEq):
		op = OpNotEq
	case p.at(tokenLessOrEq):
		op = OpLessOrEq
	case p.at(tokenGreaterOrEq):
		op = OpGreaterOrEq
	case p.atChar("<"):
		op = OpLess
	case p.atChar(">"):
		op = OpGreater
	default:
		return lhs, nil
	}
	pos := p.cur().Pos
	p.advance()
	rhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &ComparisonExpr{position: pos, Op: op, Lhs: lhs, Rhs: rhs}, nil
}

func (p *parser) parseAdditive() (Expression, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.atChar("+") || p.atChar("-") {
		op := OpAdd
		if p.atChar("-") {
			op = OpSub
		}
		pos := p.cur().Pos
		p.advance()
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		lhs = &BinaryExpr{position: pos, Op: op, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *parser) parseMultiplicative() (Expression, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.atChar("*") || p.atChar("/") {
		op := OpMult
		if p.atChar("/") {
			op = OpDiv
		}
		pos := p.cur().Pos
		p.advance()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = &BinaryExpr{position: pos, Op: op, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

// parseUnary handles unary minus. The grammar has no dedicated negation
// node, so `-x` desugars to `0 - x`, reusing BinaryExpr rather than
// introducing a node the spec's catalogue doesn't name.
func (p *parser) parseUnary() (Expression, error) {
	if p.atChar("-") {
		pos := p.cur().Pos
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{position: pos, Op: OpSub, Lhs: &NumericConst{position: pos, Value: 0}, Rhs: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case tokenNumber:
		p.advance()
		return &NumericConst{position: tok.Pos, Value: tok.NumberVal}, nil
	case tokenString:
		p.advance()
		return &StringConst{position: tok.Pos, Value: tok.Literal}, nil
	case tokenTrue:
		p.advance()
		return &BoolConst{position: tok.Pos, Value: true}, nil
	case tokenFalse:
		p.advance()
		return &BoolConst{position: tok.Pos, Value: false}, nil
	case tokenNone:
		p.advance()
		return &NoneConst{position: tok.Pos}, nil
	case tokenChar:
		if tok.Literal == "(" {
			p.advance()
			inner, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(")"); err != nil {
				return nil, err
			}
			return inner, nil
		}
		return nil, p.errorf("unexpected token %s", describeToken(tok))
	case tokenIdent:
		return p.parseIdentExpr()
	default:
		return nil, p.errorf("unexpected token %s", describeToken(tok))
	}
}

// parseIdentExpr parses a dotted identifier chain and, depending on what
// follows, resolves it to a plain VariableValue, a MethodCallExpr (chain
// has at least one dot and is followed by a call), or a NewInstanceExpr
// (chain is a bare name followed by a call: there are no free functions
// in this language, so `Name(...)` always instantiates a class).
// `str(x)` is special-cased here rather than added to the
// reserved-keyword table; it is the one built-in call form the grammar
// recognizes.
func (p *parser) parseIdentExpr() (Expression, error) {
	pos := p.cur().Pos
	first := p.cur().Literal
	p.advance()

	if first == "str" && p.atChar("(") {
		p.advance()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(")"); err != nil {
			return nil, err
		}
		return &StringifyExpr{position: pos, X: arg}, nil
	}

	path := []string{first}
	for p.atChar(".") {
		p.advance()
		segTok, err := p.expect(tokenIdent)
		if err != nil {
			return nil, err
		}
		path = append(path, segTok.Literal)
	}

	if p.atChar("(") {
		p.advance()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if len(path) == 1 {
			return &NewInstanceExpr{position: pos, Class: &VariableValue{position: pos, Path: path}, Args: args}, nil
		}
		receiver := &VariableValue{position: pos, Path: path[:len(path)-1]}
		method := path[len(path)-1]
		return &MethodCallExpr{position: pos, Receiver: receiver, Method: method, Args: args}, nil
	}

	return &VariableValue{position: pos, Path: path}, nil
}

func (p *parser) parseArgs() ([]Expression, error) {
	var args []Expression
	if p.atChar(")") {
		p.advance()
		return args, nil
	}
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
	if err := p.expectChar(")"); err != nil {
		return nil, err
	}
	return args, nil
}

// tryParsePath parses a bare dotted identifier chain with no call
// parens, used by parseSimpleStatement to look ahead for `=` before
// committing to an assignment parse. It reports false (without
// consuming anything meaningfully recoverable, since the caller rewinds
// on failure) if the current token isn't an identifier.
func (p *parser) tryParsePath() ([]string, bool) {
	if !p.at(tokenIdent) {
		return nil, false
	}
	path := []string{p.cur().Literal}
	p.advance()
	for p.atChar(".") {
		p.advance()
		if !p.at(tokenIdent) {
			return nil, false
		}
		path = append(path, p.cur().Literal)
		p.advance()
	}
	return path, true
}
