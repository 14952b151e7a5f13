package token

var keywords = map[string]Kind{
	"as":     KwAs,
	"defer":  KwDefer,
	"else":   KwElse,
	"enum":   KwEnum,
	"false":  KwFalse,
	"for":    KwFor,
	"fun":    KwFun,
	"if":     KwIf,
	"impl":   KwImpl,
	"import": KwImport,
	"mut":    KwMut,
	"pub":    KwPub,
	"return": KwReturn,
	"struct": KwStruct,
	"trait":  KwTrait,
	"true":   KwTrue,
	"type":   KwType,
	"var":    KwVar,
	"where":  KwWhere,
	"while":  KwWhile,
}

// LookupKeyword возвращает вид токена и true, если text — ключевое слово.
// Ключевые слова регистрозависимые: только lowercase версии распознаются.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
