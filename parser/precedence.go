package parser

import "github.com/gab1618/dashlang-sub000/lexer"

// Precedence levels follow §4.2's four groups from loosest to tightest:
// piping looser than Or/And, looser than comparisons, looser than
// Add/Sub, looser than Mul/Div. Bitwise operators are grouped with their
// "arithmetic-rank peers" as the spec allows: shifts/and/or/xor bind at
// the same tightness as Mul/Div.
const (
	lowest = iota
	pipePrec
	orAndPrec
	comparisonPrec
	addSubPrec
	mulDivBitPrec
)

var binaryPrecedence = map[lexer.TokenType]int{
	lexer.OR:  orAndPrec,
	lexer.AND: orAndPrec,

	lexer.GT: comparisonPrec,
	lexer.GE: comparisonPrec,
	lexer.LT: comparisonPrec,
	lexer.LE: comparisonPrec,
	lexer.EQ: comparisonPrec,

	lexer.PLUS:  addSubPrec,
	lexer.MINUS: addSubPrec,

	lexer.STAR:    mulDivBitPrec,
	lexer.SLASH:   mulDivBitPrec,
	lexer.BIT_OR:  mulDivBitPrec,
	lexer.BIT_AND: mulDivBitPrec,
	lexer.BIT_XOR: mulDivBitPrec,
	lexer.SHL:     mulDivBitPrec,
	lexer.SHR:     mulDivBitPrec,
}

// compoundAssignOperator maps a compound-assignment token to the binary
// operator it desugars to: `x OP= y` becomes `x = x OP y` (§4.2).
var compoundAssignOperator = map[lexer.TokenType]lexer.TokenType{
	lexer.PLUS_ASSIGN:  lexer.PLUS,
	lexer.MINUS_ASSIGN: lexer.MINUS,
	lexer.STAR_ASSIGN:  lexer.STAR,
	lexer.SLASH_ASSIGN: lexer.SLASH,
	lexer.AND_ASSIGN:   lexer.BIT_AND,
	lexer.OR_ASSIGN:    lexer.BIT_OR,
	lexer.XOR_ASSIGN:   lexer.BIT_XOR,
	lexer.SHL_ASSIGN:   lexer.SHL,
	lexer.SHR_ASSIGN:   lexer.SHR,
}

func isCompoundAssign(tt lexer.TokenType) bool {
	_, ok := compoundAssignOperator[tt]
	return ok
}
