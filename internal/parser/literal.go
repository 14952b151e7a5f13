package parser

import (
	"errors"
	"strconv"
	"strings"

	"rill/internal/ast"
	"rill/internal/diag"
	"rill/internal/token"
)

// decodeIntLiteral декодирует сырой текст целого литерала.
// Переполнение 64 бит — E002; узел всё равно строится (со значением 0).
func (p *Parser) decodeIntLiteral(tok token.Token) ast.Expr {
	text := strings.ReplaceAll(tok.Text, "_", "")
	base := 10
	if len(text) >= 2 && text[0] == '0' {
		switch text[1] | ('a' - 'A') {
		case 'x':
			base, text = 16, text[2:]
		case 'o':
			base, text = 8, text[2:]
		case 'b':
			base, text = 2, text[2:]
		}
	}

	value, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			p.report(diag.SynIntOverflow, diag.SevError, tok.Span,
				"integer literal `"+tok.Text+"` does not fit in 64 bits")
		} else {
			p.report(diag.SynIntOverflow, diag.SevError, tok.Span,
				"malformed integer literal `"+tok.Text+"`")
		}
		value = 0
	}
	return &ast.IntLiteral{Span: tok.Span, Value: value}
}

// decodeFloatLiteral декодирует литерал с плавающей точкой.
// Выход за диапазон float64 — E003.
func (p *Parser) decodeFloatLiteral(tok token.Token) ast.Expr {
	text := strings.ReplaceAll(tok.Text, "_", "")
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			p.report(diag.SynFloatOverflow, diag.SevError, tok.Span,
				"float literal `"+tok.Text+"` is out of range for 64-bit floats")
		} else {
			p.report(diag.SynFloatOverflow, diag.SevError, tok.Span,
				"malformed float literal `"+tok.Text+"`")
		}
		value = 0
	}
	return &ast.FloatLiteral{Span: tok.Span, Value: value}
}
