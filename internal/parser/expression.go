package parser

import (
	"rill/internal/ast"
	"rill/internal/token"
)

// parseExpression — входная точка разбора выражения: лазанье по
// приоритетам начиная с самого низкого уровня.
func (p *Parser) parseExpression() (ast.Expr, bool) {
	return p.parseBinaryExpr(precAssign)
}

// parseBinaryExpr реализует precedence climbing: для оператора уровня
// prec правый операнд разбирается с минимальным уровнем prec+1
// (левоассоциативные) или prec (правоассоциативные присваивания).
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return left, false
	}
	for {
		info, isOp := binOps[p.current.Kind]
		if !isOp || info.prec < minPrec {
			return left, true
		}
		p.advance()

		nextMin := info.prec + 1
		if info.rightAssoc {
			nextMin = info.prec
		}
		right, rok := p.parseBinaryExpr(nextMin)
		left = &ast.Binary{
			Span:  ast.ExprSpan(left).Cover(ast.ExprSpan(right)),
			Op:    info.op,
			Left:  left,
			Right: right,
		}
		if !rok {
			return left, false
		}
	}
}

// parseUnaryExpr — префиксные операторы, затем постфиксная цепочка.
func (p *Parser) parseUnaryExpr() (ast.Expr, bool) {
	if op, isPrefix := prefixOps[p.current.Kind]; isPrefix {
		opTok := p.advance()
		operand, ok := p.parseUnaryExpr()
		u := &ast.Unary{
			Span:    opTok.Span.Cover(ast.ExprSpan(operand)),
			Op:      op,
			Operand: operand,
		}
		return u, ok
	}
	return p.parsePostfixExpr()
}

// parsePostfixExpr — первичное выражение плюс цепочка постфиксов:
// вызов, доступ к свойству, аргументы типов, каст, '++'/'--'.
func (p *Parser) parsePostfixExpr() (ast.Expr, bool) {
	left, ok := p.parsePrimaryExpr()
	if !ok {
		return left, false
	}
	for {
		switch p.current.Kind {
		case token.LParen:
			p.advance()
			call := &ast.Call{Span: ast.ExprSpan(left), Callee: left}
			p.parseList(token.Comma, []token.Kind{token.RParen}, "call argument", func() bool {
				arg, aok := p.parseExpression()
				if aok {
					call.Args = append(call.Args, arg)
				}
				return aok
			})
			rp, rok := p.expect(token.RParen, "call arguments")
			if !rok {
				return call, false
			}
			call.Span = call.Span.Cover(rp.Span)
			left = call

		case token.Dot:
			p.advance()
			name, nok := p.parseName("property access")
			prop := &ast.Property{
				Span:   ast.ExprSpan(left).Cover(name.Span),
				Target: left,
				Name:   name,
			}
			if !nok {
				return prop, false
			}
			left = prop

		case token.LBracket:
			p.advance()
			ta := &ast.TypeArguments{Span: ast.ExprSpan(left), Expr: left}
			p.parseList(token.Comma, []token.Kind{token.RBracket}, "type argument", func() bool {
				arg, aok := p.parseType("type argument")
				if aok {
					ta.Args = append(ta.Args, arg)
				}
				return aok
			})
			rb, rok := p.expect(token.RBracket, "type arguments")
			if !rok {
				return ta, false
			}
			ta.Span = ta.Span.Cover(rb.Span)
			left = ta

		case token.KwAs:
			p.advance()
			ty, tok := p.parseType("cast type")
			cast := &ast.Cast{
				Span: ast.ExprSpan(left).Cover(ast.TypeSpan(ty)),
				Expr: left,
				Type: ty,
			}
			if !tok {
				return cast, false
			}
			left = cast

		case token.PlusPlus, token.MinusMinus:
			opTok := p.advance()
			left = &ast.Unary{
				Span:    ast.ExprSpan(left).Cover(opTok.Span),
				Op:      postfixOps[opTok.Kind],
				Operand: left,
				Postfix: true,
			}

		default:
			return left, true
		}
	}
}

// parsePrimaryExpr — литералы, имена, скобки, массивы, if и while.
func (p *Parser) parsePrimaryExpr() (ast.Expr, bool) {
	switch p.current.Kind {
	case token.IntLit:
		return p.decodeIntLiteral(p.advance()), true

	case token.FloatLit:
		return p.decodeFloatLiteral(p.advance()), true

	case token.StringLit:
		tok := p.advance()
		return &ast.StringLiteral{Span: tok.Span, Value: tok.Text}, true

	case token.CharLit:
		tok := p.advance()
		return &ast.CharLiteral{Span: tok.Span, Value: tok.Char}, true

	case token.KwTrue, token.KwFalse:
		tok := p.advance()
		return &ast.BoolLiteral{Span: tok.Span, Value: tok.Kind == token.KwTrue}, true

	case token.Ident:
		tok := p.advance()
		return &ast.NameExpr{Span: tok.Span, Sym: tok.Sym}, true

	case token.LParen:
		lp := p.advance()
		inner, ok := p.parseExpression()
		paren := &ast.ParenExpr{Span: lp.Span, Inner: inner}
		if !ok {
			return paren, false
		}
		rp, rok := p.expect(token.RParen, "parenthesized expression")
		if rok {
			paren.Span = paren.Span.Cover(rp.Span)
		}
		return paren, rok

	case token.LBracket:
		lb := p.advance()
		arr := &ast.ArrayExpr{Span: lb.Span}
		p.parseList(token.Comma, []token.Kind{token.RBracket}, "array element", func() bool {
			el, eok := p.parseExpression()
			if eok {
				arr.Elements = append(arr.Elements, el)
			}
			return eok
		})
		rb, rok := p.expect(token.RBracket, "array literal")
		if rok {
			arr.Span = arr.Span.Cover(rb.Span)
		}
		return arr, rok

	case token.KwIf:
		return p.parseIf()

	case token.KwWhile:
		return p.parseWhile()

	default:
		p.expectedError("expression",
			token.IntLit, token.FloatLit, token.StringLit, token.CharLit,
			token.KwTrue, token.KwFalse, token.Ident, token.LParen,
			token.LBracket, token.KwIf, token.KwWhile)
		return &ast.NameExpr{Span: p.diagnosticSpan()}, false
	}
}

// parseIf — цепочка `if cond { } else if cond { } else { }`.
func (p *Parser) parseIf() (ast.Expr, bool) {
	kw := p.advance() // 'if'
	node := &ast.If{Span: kw.Span}
	armStart := kw.Span
	for {
		cond, cok := p.parseExpression()
		if !cok {
			return node, false
		}
		body, bok := p.parseBlock()
		node.Blocks = append(node.Blocks, ast.IfBlock{
			Span: armStart.Cover(body.Span),
			Cond: cond,
			Body: body,
		})
		node.Span = node.Span.Cover(body.Span)
		if !bok {
			return node, false
		}

		if !p.at(token.KwElse) {
			return node, true
		}
		p.advance() // 'else'
		if p.at(token.KwIf) {
			armStart = p.advance().Span
			continue
		}
		els, eok := p.parseBlock()
		node.Else = els
		node.Span = node.Span.Cover(els.Span)
		return node, eok
	}
}

// parseWhile — `while cond { body }`.
func (p *Parser) parseWhile() (ast.Expr, bool) {
	kw := p.advance() // 'while'
	node := &ast.While{Span: kw.Span}

	cond, cok := p.parseExpression()
	node.Cond = cond
	if !cok {
		return node, false
	}

	body, bok := p.parseBlock()
	node.Body = body
	node.Span = node.Span.Cover(body.Span)
	return node, bok
}
