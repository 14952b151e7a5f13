package parser

import (
	"rill/internal/ast"
	"rill/internal/token"
)

// уровни приоритета инфиксных операторов (больше = сильнее связывает)
const (
	precAssign = 1 + iota
	precOrOr
	precAndAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precPower
	precMod
	precElvis
)

type binOpInfo struct {
	op         ast.BinaryOp
	prec       int
	rightAssoc bool
}

// binOps отображает вид токена на инфиксный оператор. Вся семья
// присваиваний правоассоциативна, остальные — левоассоциативны.
var binOps = map[token.Kind]binOpInfo{
	token.Assign:         {ast.BinAssign, precAssign, true},
	token.PlusAssign:     {ast.BinPlusAssign, precAssign, true},
	token.MinusAssign:    {ast.BinMinusAssign, precAssign, true},
	token.StarAssign:     {ast.BinMulAssign, precAssign, true},
	token.SlashAssign:    {ast.BinDivAssign, precAssign, true},
	token.PercentAssign:  {ast.BinModAssign, precAssign, true},
	token.StarStarAssign: {ast.BinPowAssign, precAssign, true},
	token.ShlAssign:      {ast.BinShlAssign, precAssign, true},
	token.ShrAssign:      {ast.BinShrAssign, precAssign, true},
	token.AmpAssign:      {ast.BinAndAssign, precAssign, true},
	token.PipeAssign:     {ast.BinOrAssign, precAssign, true},
	token.CaretAssign:    {ast.BinXorAssign, precAssign, true},

	token.OrOr:   {ast.BinOrOr, precOrOr, false},
	token.AndAnd: {ast.BinAndAnd, precAndAnd, false},
	token.Pipe:   {ast.BinBitOr, precBitOr, false},
	token.Caret:  {ast.BinBitXor, precBitXor, false},
	token.Amp:    {ast.BinBitAnd, precBitAnd, false},

	token.EqEq:   {ast.BinEq, precEquality, false},
	token.BangEq: {ast.BinNotEq, precEquality, false},

	token.Lt:   {ast.BinLt, precRelational, false},
	token.Gt:   {ast.BinGt, precRelational, false},
	token.LtEq: {ast.BinLtEq, precRelational, false},
	token.GtEq: {ast.BinGtEq, precRelational, false},

	token.Shl: {ast.BinShl, precShift, false},
	token.Shr: {ast.BinShr, precShift, false},

	token.Plus:  {ast.BinAdd, precAdditive, false},
	token.Minus: {ast.BinSub, precAdditive, false},

	token.Star:    {ast.BinMul, precMultiplicative, false},
	token.Slash:   {ast.BinDiv, precMultiplicative, false},
	token.Percent: {ast.BinMod, precMod, false},

	token.StarStar: {ast.BinPow, precPower, false},

	token.Elvis: {ast.BinElvis, precElvis, false},
}

// prefixOps — префиксные унарные операторы.
var prefixOps = map[token.Kind]ast.UnaryOp{
	token.Minus:      ast.UnNeg,
	token.Bang:       ast.UnNot,
	token.Tilde:      ast.UnBitNot,
	token.PlusPlus:   ast.UnInc,
	token.MinusMinus: ast.UnDec,
}

// postfixOps — постфиксные унарные операторы.
var postfixOps = map[token.Kind]ast.UnaryOp{
	token.PlusPlus:   ast.UnInc,
	token.MinusMinus: ast.UnDec,
}
