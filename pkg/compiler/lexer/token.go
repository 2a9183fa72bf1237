package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindError
	KindIdentifier
	KindIntegerLit
	KindDoubleLit
	KindStringLit
	KindTrue
	KindFalse
	KindPlus      // +
	KindMinus     // -
	KindMultiply  // *
	KindDivide    // /
	KindModulus   // %
	KindExponent  // ^
	KindStrConcat // ..
	KindLParen    // (
	KindRParen    // )
	KindAssign    // =
)

// Token represents a lexical unit pointing back to the source buffer.
// Line and Col are 1-based and identify the first character of the
// lexeme for diagnostics.
type Token struct {
	Kind   Kind
	Offset uint32
	Length uint32
	Line   uint32
	Col    uint32
}
