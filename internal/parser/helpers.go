package parser

import (
	"slices"

	"rill/internal/ast"
	"rill/internal/diag"
	"rill/internal/source"
	"rill/internal/token"
)

// advance — съедает текущий токен, сдвигает окно и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.current
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	p.current = p.next
	p.next = p.nextSignificant()
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.current.Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.current.Kind)
}

// consume съедает токен, если он нужного вида.
func (p *Parser) consume(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// diagnosticSpan — лучший span для диагностики: для EOF берём позицию
// сразу после последнего съеденного токена.
func (p *Parser) diagnosticSpan() source.Span {
	if p.current.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return p.current.Span
}

// expect — ожидаем конкретный токен в позиции production.
// Если его нет — E001 и (invalid, false).
func (p *Parser) expect(k token.Kind, production string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.expectedError(production, k)
	return token.Token{Kind: token.Invalid, Span: p.diagnosticSpan()}, false
}

// expectedError репортует E001 вида
// "expected `;` or `}` for struct member, got `fun`".
func (p *Parser) expectedError(production string, kinds ...token.Kind) {
	exp := diag.NewExpected()
	for _, k := range kinds {
		exp.Add(k.Describe())
	}
	msg := "expected " + exp.String() + " for " + production + ", got " + p.current.Describe()
	p.report(diag.SynUnexpectedToken, diag.SevError, p.diagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return false
	}
	p.opts.Reporter.Report(diag.New(sev, code, sp, msg))
	return true
}

func (p *Parser) reportDiag(d diag.Diagnostic) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if d.Severity == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return false
	}
	p.opts.Reporter.Report(d)
	return true
}

// skipUntil прокручивает вход до одного из стоп-токенов или EOF.
func (p *Parser) skipUntil(stops ...token.Kind) {
	for !p.at(token.EOF) && !p.atAny(stops...) {
		p.advance()
	}
}

// parseName — ожидает идентификатор в позиции production.
func (p *Parser) parseName(production string) (ast.Name, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return ast.Name{Span: tok.Span, Sym: tok.Sym}, true
	}
	p.expectedError(production, token.Ident)
	return ast.Name{Span: p.diagnosticSpan()}, false
}

// parsePath — точечный путь `a.b.c`.
func (p *Parser) parsePath(production string) (ast.Path, bool) {
	first, ok := p.parseName(production)
	if !ok {
		return ast.Path{Span: first.Span}, false
	}
	path := ast.Path{Span: first.Span, Segments: []ast.Name{first}}
	for p.at(token.Dot) {
		p.advance()
		seg, segOK := p.parseName(production)
		if !segOK {
			return path, false
		}
		path.Segments = append(path.Segments, seg)
		path.Span = path.Span.Cover(seg.Span)
	}
	return path, true
}

// parseList разбирает элементы, разделённые sep, до одного из
// терминаторов. Контракт: терминатор никогда не съедается, висячий
// разделитель легален, EOF всегда останавливает цикл.
func (p *Parser) parseList(sep token.Kind, terms []token.Kind, production string, elem func() bool) {
	stops := append([]token.Kind{sep}, terms...)
	for {
		if p.at(token.EOF) || p.atAny(terms...) {
			return
		}
		if !elem() {
			p.skipUntil(stops...)
		}
		if p.consume(sep) {
			continue
		}
		if p.at(token.EOF) || p.atAny(terms...) {
			return
		}
		// ни разделителя, ни терминатора после элемента
		p.expectedError(production, stops...)
		p.skipUntil(stops...)
		if p.consume(sep) {
			continue
		}
		return
	}
}
