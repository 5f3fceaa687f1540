package lang

import (
	"math/bits"
	"strings"
)

// TokenKind identifies a lexical token class. Kinds are single-bit values so
// the parser can express its set of acceptable next tokens as a bitwise OR.
type TokenKind uint16

const (
	TokenEQ TokenKind = 1 << iota // =
	TokenSemicolon                // ;
	TokenComma                    // ,
	TokenLeftBracket              // [
	TokenRightBracket             // ]
	TokenLeftParen                // (
	TokenRightParen               // )
	TokenLeftCurly                // {
	TokenRightCurly               // }
	TokenEOF
	TokenIdentifier
	TokenInt
	TokenDouble
	TokenBool
	TokenString
)

// tokenKindName maps each single-bit kind to its display name.
var tokenKindName = map[TokenKind]string{
	TokenEQ:           "`=`",
	TokenSemicolon:    "`;`",
	TokenComma:        "`,`",
	TokenLeftBracket:  "`[`",
	TokenRightBracket: "`]`",
	TokenLeftParen:    "`(`",
	TokenRightParen:   "`)`",
	TokenLeftCurly:    "`{`",
	TokenRightCurly:   "`}`",
	TokenEOF:          "end of input",
	TokenIdentifier:   "identifier",
	TokenInt:          "int literal",
	TokenDouble:       "double literal",
	TokenBool:         "bool literal",
	TokenString:       "string literal",
}

// String returns the display name for a kind. For a multi-bit mask it joins
// the names of every member kind, which is how the parser reports what it
// expected instead of what it found.
func (k TokenKind) String() string {
	if name, ok := tokenKindName[k]; ok {
		return name
	}

	names := make([]string, 0, bits.OnesCount16(uint16(k)))

	for bit := TokenKind(1); bit != 0 && bit <= k; bit <<= 1 {
		if k&bit != 0 {
			names = append(names, tokenKindName[bit])
		}
	}

	if len(names) == 0 {
		return "unknown token"
	}

	return strings.Join(names, " or ")
}

// Token is a single lexical unit. Text holds the literal or identifier
// payload for kinds that carry one, and the punctuation character otherwise.
// Line and Column are 1-based and locate the first character of the token.
type Token struct {
	Text   string
	Kind   TokenKind
	Line   int
	Column int
}
