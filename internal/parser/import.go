package parser

import (
	"rill/internal/ast"
	"rill/internal/token"
)

// parseImport — `import a.b.c [as name];`.
func (p *Parser) parseImport(vis ast.Visibility) (ast.Item, bool) {
	kw := p.advance() // 'import'
	imp := &ast.Import{Span: visCover(vis, kw.Span)}

	path, ok := p.parsePath("import path")
	imp.Path = path
	imp.Span = imp.Span.Cover(path.Span)
	if !ok {
		return imp, false
	}

	if p.at(token.KwAs) {
		p.advance()
		alias, aok := p.parseName("import alias")
		if !aok {
			return imp, false
		}
		imp.Alias = &alias
		imp.Span = imp.Span.Cover(alias.Span)
	}

	semi, sok := p.expect(token.Semicolon, "import")
	if sok {
		imp.Span = imp.Span.Cover(semi.Span)
	}
	return imp, sok
}
