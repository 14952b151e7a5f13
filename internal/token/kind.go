package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates a token that could not be classified at all.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Error represents a lexical error token; the error kind lives in Token.Bad.
	Error

	// Ident represents an identifier token (wrapped identifiers included).
	Ident

	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwDefer represents the 'defer' keyword.
	KwDefer // defer
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFun represents the 'fun' keyword.
	KwFun // fun
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwType represents the 'type' keyword.
	KwType // type
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwWhere represents the 'where' keyword.
	KwWhere // where
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the string literal token.
	StringLit
	// CharLit represents the character literal token.
	CharLit

	// Comment represents a plain '//' comment token.
	Comment
	// DocComment represents a '///' or '//!' documentation comment token;
	// Token.Global distinguishes module-level '//!' from item-level '///'.
	DocComment

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// Colon represents ':'.
	Colon // :
	// Semicolon represents ';'.
	Semicolon // ;
	// Question represents '?'.
	Question // ?

	// Assign represents '='.
	Assign // =
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// StarStar represents '**'.
	StarStar // **
	// EqEq represents '=='.
	EqEq // ==
	// BangEq represents '!='.
	BangEq // !=
	// Lt represents '<'.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// LtEq represents '<='.
	LtEq // <=
	// GtEq represents '>='.
	GtEq // >=
	// Shl represents '<<'.
	Shl // <<
	// Shr represents '>>'.
	Shr // >>
	// Amp represents '&'.
	Amp // &
	// Pipe represents '|'.
	Pipe // |
	// Caret represents '^'.
	Caret // ^
	// AndAnd represents '&&'.
	AndAnd // &&
	// OrOr represents '||'.
	OrOr // ||
	// Bang represents '!'.
	Bang // !
	// Tilde represents '~'.
	Tilde // ~
	// PlusPlus represents '++'.
	PlusPlus // ++
	// MinusMinus represents '--'.
	MinusMinus // --
	// Elvis represents '?:'.
	Elvis // ?:

	// PlusAssign represents '+='.
	PlusAssign // +=
	// MinusAssign represents '-='.
	MinusAssign // -=
	// StarAssign represents '*='.
	StarAssign // *=
	// SlashAssign represents '/='.
	SlashAssign // /=
	// PercentAssign represents '%='.
	PercentAssign // %=
	// StarStarAssign represents '**='.
	StarStarAssign // **=
	// ShlAssign represents '<<='.
	ShlAssign // <<=
	// ShrAssign represents '>>='.
	ShrAssign // >>=
	// AmpAssign represents '&='.
	AmpAssign // &=
	// PipeAssign represents '|='.
	PipeAssign // |=
	// CaretAssign represents '^='.
	CaretAssign // ^=

	kindCount // служебный маркер, не токен
)

var kindNames = [kindCount]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Error:      "Error",
	Ident:      "Ident",
	KwAs:       "KwAs",
	KwDefer:    "KwDefer",
	KwElse:     "KwElse",
	KwEnum:     "KwEnum",
	KwFalse:    "KwFalse",
	KwFor:      "KwFor",
	KwFun:      "KwFun",
	KwIf:       "KwIf",
	KwImpl:     "KwImpl",
	KwImport:   "KwImport",
	KwMut:      "KwMut",
	KwPub:      "KwPub",
	KwReturn:   "KwReturn",
	KwStruct:   "KwStruct",
	KwTrait:    "KwTrait",
	KwTrue:     "KwTrue",
	KwType:     "KwType",
	KwVar:      "KwVar",
	KwWhere:    "KwWhere",
	KwWhile:    "KwWhile",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	CharLit:    "CharLit",
	Comment:    "Comment",
	DocComment: "DocComment",
	LParen:     "LParen",
	RParen:     "RParen",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Comma:      "Comma",
	Dot:        "Dot",
	Colon:      "Colon",
	Semicolon:  "Semicolon",
	Question:   "Question",
	Assign:     "Assign",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Percent:    "Percent",
	StarStar:   "StarStar",
	EqEq:       "EqEq",
	BangEq:     "BangEq",
	Lt:         "Lt",
	Gt:         "Gt",
	LtEq:       "LtEq",
	GtEq:       "GtEq",
	Shl:        "Shl",
	Shr:        "Shr",
	Amp:        "Amp",
	Pipe:       "Pipe",
	Caret:      "Caret",
	AndAnd:     "AndAnd",
	OrOr:       "OrOr",
	Bang:       "Bang",
	Tilde:      "Tilde",
	PlusPlus:   "PlusPlus",
	MinusMinus: "MinusMinus",
	Elvis:      "Elvis",

	PlusAssign:     "PlusAssign",
	MinusAssign:    "MinusAssign",
	StarAssign:     "StarAssign",
	SlashAssign:    "SlashAssign",
	PercentAssign:  "PercentAssign",
	StarStarAssign: "StarStarAssign",
	ShlAssign:      "ShlAssign",
	ShrAssign:      "ShrAssign",
	AmpAssign:      "AmpAssign",
	PipeAssign:     "PipeAssign",
	CaretAssign:    "CaretAssign",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// лексемы операторов/пунктуаторов и ключевых слов для сообщений диагностики
var kindLexemes = map[Kind]string{
	KwAs: "as", KwDefer: "defer", KwElse: "else", KwEnum: "enum",
	KwFalse: "false", KwFor: "for", KwFun: "fun", KwIf: "if",
	KwImpl: "impl", KwImport: "import", KwMut: "mut", KwPub: "pub",
	KwReturn: "return", KwStruct: "struct", KwTrait: "trait", KwTrue: "true",
	KwType: "type", KwVar: "var", KwWhere: "where", KwWhile: "while",

	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]",
	LBrace: "{", RBrace: "}", Comma: ",", Dot: ".", Colon: ":",
	Semicolon: ";", Question: "?",

	Assign: "=", Plus: "+", Minus: "-", Star: "*", Slash: "/",
	Percent: "%", StarStar: "**", EqEq: "==", BangEq: "!=",
	Lt: "<", Gt: ">", LtEq: "<=", GtEq: ">=", Shl: "<<", Shr: ">>",
	Amp: "&", Pipe: "|", Caret: "^", AndAnd: "&&", OrOr: "||",
	Bang: "!", Tilde: "~", PlusPlus: "++", MinusMinus: "--", Elvis: "?:",

	PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=",
	SlashAssign: "/=", PercentAssign: "%=", StarStarAssign: "**=",
	ShlAssign: "<<=", ShrAssign: ">>=", AmpAssign: "&=",
	PipeAssign: "|=", CaretAssign: "^=",
}

// Describe возвращает человекочитаемое описание вида токена: лексему в
// обратных кавычках для фиксированных токенов, общее имя для остальных.
func (k Kind) Describe() string {
	if lex, ok := kindLexemes[k]; ok {
		return "`" + lex + "`"
	}
	switch k {
	case EOF:
		return "end of file"
	case Ident:
		return "identifier"
	case IntLit:
		return "integer literal"
	case FloatLit:
		return "float literal"
	case StringLit:
		return "string literal"
	case CharLit:
		return "character literal"
	case Comment, DocComment:
		return "comment"
	case Error, Invalid:
		return "invalid token"
	default:
		return k.String()
	}
}
