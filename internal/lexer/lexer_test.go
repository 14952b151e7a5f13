package lexer

import (
	"testing"

	"rill/internal/source"
	"rill/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rl", []byte(src))
	return Tokenize(fs.Get(id), source.NewInterner())
}

// kinds возвращает виды всех токенов без финального EOF.
func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			break
		}
		out = append(out, tok.Kind)
	}
	return out
}

func expectKinds(t *testing.T, src string, want ...token.Kind) {
	t.Helper()
	got := kinds(lexAll(t, src))
	if len(got) != len(want) {
		t.Fatalf("%q: got %v tokens %v, want %v", src, len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v, want %v", src, i, got[i], want[i])
		}
	}
}

func TestEmptyInput(t *testing.T) {
	toks := lexAll(t, "")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("empty input must produce exactly one EOF token, got %v", toks)
	}
}

func TestEOFIsIdempotent(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rl", []byte("x"))
	lx := New(fs.Get(id), source.NewInterner())

	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("first token: got %v, want Ident", tok.Kind)
	}
	first := lx.Next()
	if first.Kind != token.EOF {
		t.Fatalf("second token: got %v, want EOF", first.Kind)
	}
	for i := 0; i < 3; i++ {
		next := lx.Next()
		if next != first {
			t.Fatalf("EOF token changed on repeat call %d: %+v vs %+v", i, next, first)
		}
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	expectKinds(t, "fun main", token.KwFun, token.Ident)
	expectKinds(t, "pub struct S", token.KwPub, token.KwStruct, token.Ident)
	// регистрозависимость: Fun — идентификатор
	expectKinds(t, "Fun funky", token.Ident, token.Ident)
	expectKinds(t, "_x x_1 __", token.Ident, token.Ident, token.Ident)
}

func TestIdentSpansAndSymbols(t *testing.T) {
	toks := lexAll(t, "foo bar foo")
	if toks[0].Sym != toks[2].Sym {
		t.Error("same name must intern to the same symbol")
	}
	if toks[0].Sym == toks[1].Sym {
		t.Error("different names must intern to different symbols")
	}
	if got := toks[1].Span; got.Start != 4 || got.End != 7 {
		t.Errorf("span of `bar` is %v, want 4-7", got)
	}
}

func TestUnicodeIdentifiers(t *testing.T) {
	toks := lexAll(t, "café привет δ x1")
	if got := kinds(toks); len(got) != 4 {
		t.Fatalf("got %v", got)
	}
	for i := 0; i < 4; i++ {
		if toks[i].Kind != token.Ident {
			t.Errorf("token %d: got %v, want Ident", i, toks[i].Kind)
		}
	}
	if toks[0].Text != "café" {
		t.Errorf("text = %q", toks[0].Text)
	}
}

func TestUnicodeIdentifierNFC(t *testing.T) {
	// 'e' + комбинирующий акцент U+0301 должен совпасть с готовым 'é'
	decomposed := lexAll(t, "café")
	composed := lexAll(t, "café")
	if decomposed[0].Text != composed[0].Text {
		t.Errorf("NFC normalization: %q vs %q", decomposed[0].Text, composed[0].Text)
	}
}

func TestWrappedIdentifiers(t *testing.T) {
	toks := lexAll(t, "`type` `fun`")
	if toks[0].Kind != token.Ident || toks[0].Text != "type" {
		t.Errorf("wrapped ident: got %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.Ident || toks[1].Text != "fun" {
		t.Errorf("wrapped ident: got %v %q", toks[1].Kind, toks[1].Text)
	}
	// кавычки входят в span, но не в текст
	if got := toks[0].Span; got.Start != 0 || got.End != 6 {
		t.Errorf("wrapped ident span = %v, want 0-6", got)
	}
}

func TestWrappedIdentifierErrors(t *testing.T) {
	tests := []struct {
		src  string
		want token.ErrKind
	}{
		{"``", token.ErrEmptyWrappedIdentifier},
		{"`abc", token.ErrUnterminatedWrappedIdentifier},
		{"`abc\nx`", token.ErrUnterminatedWrappedIdentifier},
	}
	for _, tt := range tests {
		toks := lexAll(t, tt.src)
		if toks[0].Kind != token.Error || toks[0].Bad != tt.want {
			t.Errorf("%q: got %v/%v, want Error/%v", tt.src, toks[0].Kind, toks[0].Bad, tt.want)
		}
	}
}

func TestComments(t *testing.T) {
	toks := lexAll(t, "// plain\n/// doc\n//! global\nx")
	if toks[0].Kind != token.Comment || toks[0].Text != " plain" {
		t.Errorf("plain comment: %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.DocComment || toks[1].Global || toks[1].Text != " doc" {
		t.Errorf("local doc comment: %v global=%v %q", toks[1].Kind, toks[1].Global, toks[1].Text)
	}
	if toks[2].Kind != token.DocComment || !toks[2].Global || toks[2].Text != " global" {
		t.Errorf("global doc comment: %v global=%v %q", toks[2].Kind, toks[2].Global, toks[2].Text)
	}
	if toks[3].Kind != token.Ident {
		t.Errorf("token after comments: %v", toks[3].Kind)
	}
}

func TestCommentAtEOFWithoutNewline(t *testing.T) {
	toks := lexAll(t, "// tail")
	if toks[0].Kind != token.Comment || toks[0].Text != " tail" {
		t.Errorf("got %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.EOF {
		t.Errorf("expected EOF after trailing comment, got %v", toks[1].Kind)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{"0", token.IntLit},
		{"42", token.IntLit},
		{"1_000_000", token.IntLit},
		{"0b1010", token.IntLit},
		{"0o777", token.IntLit},
		{"0xDEAD_beef", token.IntLit},
		{"3.14", token.FloatLit},
		{"0.5", token.FloatLit},
		{".5", token.FloatLit},
		{"1e10", token.FloatLit},
		{"1E-3", token.FloatLit},
		{"2.5e+7", token.FloatLit},
		{"1_0.2_5e1_0", token.FloatLit},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			if toks[0].Kind != tt.kind {
				t.Fatalf("got %v (%v), want %v", toks[0].Kind, toks[0].Bad, tt.kind)
			}
			if toks[0].Text != tt.src {
				t.Errorf("raw text = %q, want %q", toks[0].Text, tt.src)
			}
			if toks[1].Kind != token.EOF {
				t.Errorf("trailing token %v", toks[1].Kind)
			}
		})
	}
}

func TestNumberErrors(t *testing.T) {
	tests := []struct {
		src  string
		want token.ErrKind
	}{
		{"0b2", token.ErrDigitOutOfBase},
		{"0o8", token.ErrDigitOutOfBase},
		{"0x", token.ErrNumberContainsNoDigits},
		{"0b_", token.ErrNumberContainsNoDigits},
		{"0x1.2", token.ErrInvalidRadixPoint},
		{"1e", token.ErrExponentHasNoDigits},
		{"1e+", token.ErrExponentHasNoDigits},
		{"0b1e2", token.ErrExponentRequiresDecimalMantissa},
		{"1__0", token.ErrUnderscoreMustSeparateDigits},
		{"1_", token.ErrUnderscoreMustSeparateDigits},
		{"1_.5", token.ErrUnderscoreMustSeparateDigits},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			if toks[0].Kind != token.Error {
				t.Fatalf("got %v, want Error", toks[0].Kind)
			}
			if toks[0].Bad != tt.want {
				t.Errorf("got %v, want %v", toks[0].Bad, tt.want)
			}
		})
	}
}

func TestIntDotMethodStaysInt(t *testing.T) {
	expectKinds(t, "1.to_string()",
		token.IntLit, token.Dot, token.Ident, token.LParen, token.RParen)
	// а `1.5.to_string()` начинается с float
	expectKinds(t, "1.5.abs()",
		token.FloatLit, token.Dot, token.Ident, token.LParen, token.RParen)
}

func TestStrings(t *testing.T) {
	tests := []struct {
		src  string
		text string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"a\nb\tc"`, "a\nb\tc"},
		{`"quote \" slash \\"`, `quote " slash \`},
		{`"\u{44E}"`, "ю"},
		{`"\U{1F600}"`, "\U0001F600"},
		{`"\x{41}"`, "A"},
		{`"\0"`, "\x00"},
		{`"юникод внутри"`, "юникод внутри"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			if toks[0].Kind != token.StringLit {
				t.Fatalf("got %v (%v), want StringLit", toks[0].Kind, toks[0].Bad)
			}
			if toks[0].Text != tt.text {
				t.Errorf("decoded = %q, want %q", toks[0].Text, tt.text)
			}
		})
	}
}

func TestStringErrors(t *testing.T) {
	tests := []struct {
		src  string
		want token.ErrKind
	}{
		{`"abc`, token.ErrUnterminatedStringLiteral},
		{"\"abc\nx\"", token.ErrUnterminatedStringLiteral},
		{`"\q"`, token.ErrUnknownEscapeSequence},
		{`"\`, token.ErrEmptyEscapeSequence},
		{`"\u44E}"`, token.ErrExpectedOpenBraceInEscapeSequence},
		{`"\u{44E"`, token.ErrExpectedCloseBraceInEscapeSequence},
		{`"\u{}"`, token.ErrExpectedDigitInEscapeSequence},
		{`"\x{4}"`, token.ErrExpectedDigitInEscapeSequence},
		{`"\u{D800}"`, token.ErrInvalidUnicodeEscapeSequence},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			if toks[0].Kind != token.Error {
				t.Fatalf("got %v, want Error", toks[0].Kind)
			}
			if toks[0].Bad != tt.want {
				t.Errorf("got %v, want %v", toks[0].Bad, tt.want)
			}
		})
	}
}

func TestCharLiterals(t *testing.T) {
	tests := []struct {
		src  string
		char rune
	}{
		{`'a'`, 'a'},
		{`'ю'`, 'ю'},
		{`'\n'`, '\n'},
		{`'\''`, '\''},
		{`'\u{1F600}'`, '\U0001F600'},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			if toks[0].Kind != token.CharLit {
				t.Fatalf("got %v (%v), want CharLit", toks[0].Kind, toks[0].Bad)
			}
			if toks[0].Char != tt.char {
				t.Errorf("char = %q, want %q", toks[0].Char, tt.char)
			}
		})
	}
}

func TestCharLiteralErrors(t *testing.T) {
	tests := []struct {
		src  string
		want token.ErrKind
	}{
		{`''`, token.ErrEmptyCharLiteral},
		{`'ab'`, token.ErrMoreThanOneCharInCharLiteral},
		{`'a`, token.ErrUnterminatedCharLiteral},
		{"'a\n'", token.ErrUnterminatedCharLiteral},
	}
	for _, tt := range tests {
		toks := lexAll(t, tt.src)
		if toks[0].Kind != token.Error || toks[0].Bad != tt.want {
			t.Errorf("%q: got %v/%v, want Error/%v", tt.src, toks[0].Kind, toks[0].Bad, tt.want)
		}
	}
}

func TestOperatorsMaximalMunch(t *testing.T) {
	expectKinds(t, "a **= b", token.Ident, token.StarStarAssign, token.Ident)
	expectKinds(t, "a ** b", token.Ident, token.StarStar, token.Ident)
	expectKinds(t, "a >>= b", token.Ident, token.ShrAssign, token.Ident)
	expectKinds(t, "a >> b", token.Ident, token.Shr, token.Ident)
	expectKinds(t, "a ?: b", token.Ident, token.Elvis, token.Ident)
	expectKinds(t, "a ? b : c",
		token.Ident, token.Question, token.Ident, token.Colon, token.Ident)
	expectKinds(t, "x++ --y",
		token.Ident, token.PlusPlus, token.MinusMinus, token.Ident)
	expectKinds(t, "a<=b", token.Ident, token.LtEq, token.Ident)
	expectKinds(t, "a<<=b", token.Ident, token.ShlAssign, token.Ident)
	// без пробелов: '>>>' это Shr + Gt
	expectKinds(t, "a>>>b", token.Ident, token.Shr, token.Gt, token.Ident)
}

func TestPunctuation(t *testing.T) {
	expectKinds(t, "([{,.:;}])",
		token.LParen, token.LBracket, token.LBrace, token.Comma, token.Dot,
		token.Colon, token.Semicolon, token.RBrace, token.RBracket, token.RParen)
}

func TestUnexpectedCharacter(t *testing.T) {
	toks := lexAll(t, "a @ b")
	if toks[1].Kind != token.Error || toks[1].Bad != token.ErrUnexpectedChar {
		t.Fatalf("got %v/%v", toks[1].Kind, toks[1].Bad)
	}
	if toks[2].Kind != token.Ident {
		t.Error("scanning must continue after an unexpected character")
	}
	// не-ASCII мусор тоже даёт одну ошибку на руну
	toks = lexAll(t, "a № b")
	if toks[1].Kind != token.Error || toks[1].Span.Len() != 3 {
		t.Errorf("got %v span %v", toks[1].Kind, toks[1].Span)
	}
}

func TestUnicodeWhitespace(t *testing.T) {
	// U+2028 LINE SEPARATOR и U+2029 PARAGRAPH SEPARATOR и NBSP — пробелы
	expectKinds(t, "a b c d",
		token.Ident, token.Ident, token.Ident, token.Ident)
}

func TestTokenSpansArePreciseAndContiguous(t *testing.T) {
	src := "fun add(a, b) { return a + b; }"
	toks := lexAll(t, src)
	prevEnd := uint32(0)
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			break
		}
		if tok.Span.Start < prevEnd {
			t.Errorf("token %v overlaps previous (start %d < %d)", tok.Kind, tok.Span.Start, prevEnd)
		}
		if tok.Span.End <= tok.Span.Start {
			t.Errorf("token %v has empty span %v", tok.Kind, tok.Span)
		}
		prevEnd = tok.Span.End
	}
}

func BenchmarkLexer(b *testing.B) {
	src := []byte(`
fun fibonacci(n: int): int {
	if n < 2 { return n; }
	return fibonacci(n - 1) + fibonacci(n - 2);
}

pub struct Point { x: float, y: float }

enum Color { Red, Green, Blue }
`)
	fs := source.NewFileSet()
	id := fs.AddVirtual("bench.rl", src)
	f := fs.Get(id)
	interner := source.NewInterner()
	for i := 0; i < b.N; i++ {
		lx := New(f, interner)
		for {
			if lx.Next().Kind == token.EOF {
				break
			}
		}
	}
}
