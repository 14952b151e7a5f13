package ast

// BinaryOp identifies a binary operator.
type BinaryOp uint8

const (
	BinInvalid BinaryOp = iota

	// присваивания (правоассоциативные)
	BinAssign       // =
	BinPlusAssign   // +=
	BinMinusAssign  // -=
	BinMulAssign    // *=
	BinDivAssign    // /=
	BinModAssign    // %=
	BinPowAssign    // **=
	BinShlAssign    // <<=
	BinShrAssign    // >>=
	BinAndAssign    // &=
	BinOrAssign     // |=
	BinXorAssign    // ^=

	BinOrOr   // ||
	BinAndAnd // &&
	BinBitOr  // |
	BinBitXor // ^
	BinBitAnd // &

	BinEq    // ==
	BinNotEq // !=
	BinLt    // <
	BinGt    // >
	BinLtEq  // <=
	BinGtEq  // >=

	BinShl // <<
	BinShr // >>

	BinAdd // +
	BinSub // -
	BinMul // *
	BinDiv // /
	BinPow // **
	BinMod // %

	BinElvis // ?:
)

var binaryOpLexemes = map[BinaryOp]string{
	BinAssign: "=", BinPlusAssign: "+=", BinMinusAssign: "-=",
	BinMulAssign: "*=", BinDivAssign: "/=", BinModAssign: "%=",
	BinPowAssign: "**=", BinShlAssign: "<<=", BinShrAssign: ">>=",
	BinAndAssign: "&=", BinOrAssign: "|=", BinXorAssign: "^=",
	BinOrOr: "||", BinAndAnd: "&&", BinBitOr: "|", BinBitXor: "^",
	BinBitAnd: "&", BinEq: "==", BinNotEq: "!=", BinLt: "<", BinGt: ">",
	BinLtEq: "<=", BinGtEq: ">=", BinShl: "<<", BinShr: ">>",
	BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinPow: "**",
	BinMod: "%", BinElvis: "?:",
}

func (op BinaryOp) String() string {
	if lex, ok := binaryOpLexemes[op]; ok {
		return lex
	}
	return "?"
}

// IsAssign reports whether the operator belongs to the right-associative
// assignment family.
func (op BinaryOp) IsAssign() bool {
	return op >= BinAssign && op <= BinXorAssign
}

// UnaryOp identifies a prefix or postfix unary operator.
type UnaryOp uint8

const (
	UnInvalid UnaryOp = iota
	UnNeg             // -
	UnNot             // !
	UnBitNot          // ~
	UnInc             // ++
	UnDec             // --
)

var unaryOpLexemes = map[UnaryOp]string{
	UnNeg: "-", UnNot: "!", UnBitNot: "~", UnInc: "++", UnDec: "--",
}

func (op UnaryOp) String() string {
	if lex, ok := unaryOpLexemes[op]; ok {
		return lex
	}
	return "?"
}
