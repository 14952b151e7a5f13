package token

import (
	"rill/internal/source"
)

// Token represents a single lexical token with its location and payload.
// Payload use per kind:
//   - Ident: Sym (interned name; wrapping backticks are not part of it)
//   - StringLit, Comment, DocComment: Text (decoded/raw content)
//   - IntLit, FloatLit: Text (raw digits; decoded by the parser)
//   - CharLit: Char (decoded scalar value)
//   - Error: Bad (lexical error kind)
type Token struct {
	Kind   Kind
	Span   source.Span
	Sym    source.StringID
	Text   string
	Char   rune
	Bad    ErrKind
	Global bool // только для DocComment: true для '//!', false для '///'
}

// IsLiteral reports whether the token is a numeric, boolean, string, or
// character literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAs && t.Kind <= KwWhile
}

// IsPunctOrOp reports whether the token is a punctuator or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= LParen && t.Kind <= CaretAssign
}

// IsAssignOp reports whether the token is '=' or a compound assignment.
func (t Token) IsAssignOp() bool {
	if t.Kind == Assign {
		return true
	}
	return t.Kind >= PlusAssign && t.Kind <= CaretAssign
}

// IsTrivia reports whether the parser should skip the token transparently.
func (t Token) IsTrivia() bool {
	return t.Kind == Comment
}

// Describe возвращает описание токена для диагностики: лексему для
// фиксированных токенов, текст для идентификаторов и литералов.
func (t Token) Describe() string {
	switch t.Kind {
	case Ident:
		if t.Text != "" {
			return "`" + t.Text + "`"
		}
		return "identifier"
	case IntLit, FloatLit:
		return "`" + t.Text + "`"
	case Error:
		return "invalid token (" + t.Bad.String() + ")"
	default:
		return t.Kind.Describe()
	}
}
