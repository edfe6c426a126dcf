// Package parser provides PGN game reading and movetext tokenizing.
package parser

// TokenType represents the type of a movetext token.
type TokenType int

const (
	EOFToken TokenType = iota
	CommentToken
	NAGToken
	MoveNumber
	RAVStart
	RAVEnd
	MoveToken
	TerminatingResult
	UnknownToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	MoveNumber:        "MOVE_NUMBER",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	UnknownToken:      "UNKNOWN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the token as written. For comments it is the text between
	// the delimiters, trimmed.
	Text string

	// NAG is the glyph number of a NAG token; annotation suffixes such
	// as "!?" are mapped to their numbers.
	NAG int

	// MoveNum holds move numbers
	MoveNum int

	// Offset is the byte position of the token in the movetext.
	Offset int
}

// annotationToNAG converts annotation symbols to NAG numbers.
func annotationToNAG(text string) (int, bool) {
	switch text {
	case "!":
		return 1, true
	case "?":
		return 2, true
	case "!!":
		return 3, true
	case "??":
		return 4, true
	case "!?":
		return 5, true
	case "?!":
		return 6, true
	default:
		return 0, false
	}
}
