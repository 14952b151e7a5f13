package parser

import (
	"rill/internal/ast"
	"rill/internal/diag"
	"rill/internal/lexer"
	"rill/internal/source"
	"rill/internal/token"
)

// Options управляют одним прогоном парсера.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser — состояние парсера на один файл. Окно в два токена:
// current и next; обычные комментарии и лексические ошибки через окно
// не проходят (ошибки репортятся как E000 при первом появлении).
type Parser struct {
	lx       *lexer.Lexer
	interner *source.Interner
	fileID   source.FileID
	opts     Options

	current token.Token
	next    token.Token
	// lastSpan — span последнего съеденного токена для лучшей диагностики
	lastSpan source.Span

	// docBuf — локальные '///' строки, накопленные к следующему item;
	// globalDoc — '//!' строки юнита.
	docBuf    []string
	globalDoc []string
}

// ParseFile — входная точка для разбора одного файла. Разбор никогда не
// прерывается: при любых ошибках возвращается структурно полный File.
func ParseFile(f *source.File, interner *source.Interner, opts Options) *ast.File {
	p := Parser{
		lx:       lexer.New(f, interner),
		interner: interner,
		fileID:   f.ID,
		opts:     opts,
	}
	// заполняем окно
	p.current = p.nextSignificant()
	p.next = p.nextSignificant()

	start := p.current.Span
	items := p.parseItems()
	end := p.current.Span // EOF

	return &ast.File{
		Span:      start.Cover(end),
		Docstring: p.globalDoc,
		Items:     items,
	}
}

// nextSignificant тянет из лексера следующий значимый токен: обычные
// комментарии пропускаются, doc-комментарии оседают в буферах, токены
// лексических ошибок репортятся кодом E000 и пропускаются.
func (p *Parser) nextSignificant() token.Token {
	for {
		tok := p.lx.Next()
		switch tok.Kind {
		case token.Comment:
			continue
		case token.DocComment:
			if tok.Global {
				p.globalDoc = append(p.globalDoc, tok.Text)
			} else {
				p.docBuf = append(p.docBuf, tok.Text)
			}
			continue
		case token.Error:
			p.report(diag.LexError, diag.SevError, tok.Span, tok.Bad.String())
			continue
		default:
			return tok
		}
	}
}

// takeDocs забирает накопленный локальный докстринг.
func (p *Parser) takeDocs() []string {
	docs := p.docBuf
	p.docBuf = nil
	return docs
}
