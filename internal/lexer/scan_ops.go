package lexer

import (
	"rill/internal/token"
)

// таблицы операторов; scanOperator пробует самое длинное совпадение
// первым: три байта, два, один

var threeByteOps = map[[3]byte]token.Kind{
	{'*', '*', '='}: token.StarStarAssign,
	{'<', '<', '='}: token.ShlAssign,
	{'>', '>', '='}: token.ShrAssign,
}

var twoByteOps = map[[2]byte]token.Kind{
	{'*', '*'}: token.StarStar,
	{'=', '='}: token.EqEq,
	{'!', '='}: token.BangEq,
	{'<', '='}: token.LtEq,
	{'>', '='}: token.GtEq,
	{'<', '<'}: token.Shl,
	{'>', '>'}: token.Shr,
	{'&', '&'}: token.AndAnd,
	{'|', '|'}: token.OrOr,
	{'+', '+'}: token.PlusPlus,
	{'-', '-'}: token.MinusMinus,
	{'?', ':'}: token.Elvis,
	{'+', '='}: token.PlusAssign,
	{'-', '='}: token.MinusAssign,
	{'*', '='}: token.StarAssign,
	{'/', '='}: token.SlashAssign,
	{'%', '='}: token.PercentAssign,
	{'&', '='}: token.AmpAssign,
	{'|', '='}: token.PipeAssign,
	{'^', '='}: token.CaretAssign,
}

var oneByteOps = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
	'.': token.Dot,
	':': token.Colon,
	';': token.Semicolon,
	'?': token.Question,
	'=': token.Assign,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'<': token.Lt,
	'>': token.Gt,
	'&': token.Amp,
	'|': token.Pipe,
	'^': token.Caret,
	'!': token.Bang,
	'~': token.Tilde,
}

// scanOperator сканирует пунктуатор или оператор максимальной длины.
// Непонятный символ превращается в токен ошибки длиной в одну руну.
func (lx *Lexer) scanOperator() token.Token {
	m := lx.cur.Mark()
	if b0, b1, b2, ok := lx.cur.Peek3(); ok {
		if k, found := threeByteOps[[3]byte{b0, b1, b2}]; found {
			lx.cur.Off += 3
			return token.Token{Kind: k, Span: lx.cur.SpanFrom(m)}
		}
	}
	if b0, b1, ok := lx.cur.Peek2(); ok {
		if k, found := twoByteOps[[2]byte{b0, b1}]; found {
			lx.cur.Off += 2
			return token.Token{Kind: k, Span: lx.cur.SpanFrom(m)}
		}
	}
	if k, found := oneByteOps[lx.cur.Peek()]; found {
		lx.cur.Bump()
		return token.Token{Kind: k, Span: lx.cur.SpanFrom(m)}
	}
	lx.cur.BumpRune()
	return lx.errTok(m, token.ErrUnexpectedChar)
}
