package parser

import (
	"strconv"
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/chess"
)

// charClass classifies a movetext byte.
type charClass uint8

const (
	classOther charClass = iota
	classSpace
	classCommentStart
	classLineComment
	classNAG
	classAnnotate
	classDot
	classRAVStart
	classRAVEnd
	classStar
	classDigit
	classAlpha
)

// chTab is the character classification table.
var chTab [256]charClass

// moveChars marks bytes that may continue a move token.
var moveChars [256]bool

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	for _, c := range []byte{' ', '\t', '\r', '\n', '\f', '\v'} {
		chTab[c] = classSpace
	}
	chTab['{'] = classCommentStart
	chTab[';'] = classLineComment
	chTab['$'] = classNAG
	chTab['!'] = classAnnotate
	chTab['?'] = classAnnotate
	chTab['.'] = classDot
	chTab['('] = classRAVStart
	chTab[')'] = classRAVEnd
	chTab['*'] = classStar
	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = classDigit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = classAlpha
		chTab[c+32] = classAlpha
	}

	for c := byte('a'); c <= 'z'; c++ {
		moveChars[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		moveChars[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		moveChars[c] = true
	}
	for _, c := range []byte{':', '-', '=', '+', '#'} {
		moveChars[c] = true
	}
}

// Tokenizer splits PGN movetext into tokens. Brace comments may span
// lines; ";" comments run to the end of the line and lines starting with
// "%" are ignored.
type Tokenizer struct {
	text string
	pos  int
}

// NewTokenizer creates a tokenizer over a game's movetext.
func NewTokenizer(movetext string) *Tokenizer {
	return &Tokenizer{text: movetext}
}

// Next returns the next token, or an EOFToken at the end of the text.
func (t *Tokenizer) Next() Token {
	for t.pos < len(t.text) {
		start := t.pos
		ch := t.text[t.pos]

		switch chTab[ch] {
		case classSpace:
			t.pos++
			continue

		case classCommentStart:
			return t.gatherComment(start)

		case classLineComment:
			end := strings.IndexByte(t.text[start:], '\n')
			if end < 0 {
				end = len(t.text) - start
			}
			t.pos = start + end
			return Token{Type: CommentToken, Text: strings.TrimSpace(t.text[start+1 : t.pos]), Offset: start}

		case classNAG:
			t.pos++
			digits := t.skipWhile(func(c byte) bool { return chTab[c] == classDigit })
			n, err := strconv.Atoi(digits)
			if err != nil {
				return Token{Type: UnknownToken, Text: t.text[start:t.pos], Offset: start}
			}
			return Token{Type: NAGToken, Text: t.text[start:t.pos], NAG: n, Offset: start}

		case classAnnotate:
			text := t.skipWhile(func(c byte) bool { return chTab[c] == classAnnotate })
			if n, ok := annotationToNAG(text); ok {
				return Token{Type: NAGToken, Text: text, NAG: n, Offset: start}
			}
			return Token{Type: UnknownToken, Text: text, Offset: start}

		case classDot:
			t.skipWhile(func(c byte) bool { return c == '.' })
			continue

		case classRAVStart:
			t.pos++
			return Token{Type: RAVStart, Text: "(", Offset: start}

		case classRAVEnd:
			t.pos++
			return Token{Type: RAVEnd, Text: ")", Offset: start}

		case classStar:
			t.pos++
			return Token{Type: TerminatingResult, Text: "*", Offset: start}

		case classDigit:
			return t.gatherNumeric(start)

		case classAlpha:
			return t.gatherMove(start)

		default:
			if ch == '%' && (start == 0 || t.text[start-1] == '\n') {
				t.skipLine()
				continue
			}
		}

		text := t.skipWhile(func(c byte) bool { return chTab[c] != classSpace && !isStructural(c) })
		if text == "" {
			t.pos++
			text = t.text[start:t.pos]
		}
		return Token{Type: UnknownToken, Text: text, Offset: start}
	}
	return Token{Type: EOFToken, Offset: t.pos}
}

// All returns every remaining token, excluding the final EOFToken.
func (t *Tokenizer) All() []Token {
	var tokens []Token
	for {
		tok := t.Next()
		if tok.Type == EOFToken {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// skipWhile advances over bytes accepted by keep and returns them.
func (t *Tokenizer) skipWhile(keep func(byte) bool) string {
	start := t.pos
	for t.pos < len(t.text) && keep(t.text[t.pos]) {
		t.pos++
	}
	return t.text[start:t.pos]
}

func (t *Tokenizer) skipLine() {
	if end := strings.IndexByte(t.text[t.pos:], '\n'); end >= 0 {
		t.pos += end + 1
	} else {
		t.pos = len(t.text)
	}
}

// gatherComment gathers a brace comment. An unterminated comment runs to
// the end of the movetext.
func (t *Tokenizer) gatherComment(start int) Token {
	end := strings.IndexByte(t.text[start+1:], '}')
	var body string
	if end < 0 {
		body = t.text[start+1:]
		t.pos = len(t.text)
	} else {
		body = t.text[start+1 : start+1+end]
		t.pos = start + end + 2
	}
	return Token{Type: CommentToken, Text: strings.TrimSpace(body), Offset: start}
}

// gatherNumeric handles tokens starting with a digit: results, castling
// written with zeros, and move numbers.
func (t *Tokenizer) gatherNumeric(start int) Token {
	rest := t.text[start:]
	for _, result := range []string{chess.Draw, chess.WhiteWins, chess.BlackWins} {
		if strings.HasPrefix(rest, result) && t.endsAt(start+len(result)) {
			t.pos = start + len(result)
			return Token{Type: TerminatingResult, Text: result, Offset: start}
		}
	}
	if strings.HasPrefix(rest, "0-0") {
		return t.gatherMove(start)
	}

	digits := t.skipWhile(func(c byte) bool { return chTab[c] == classDigit })
	n, _ := strconv.Atoi(digits)
	dots := t.skipWhile(func(c byte) bool { return c == '.' })
	if dots == "" && !t.endsAt(t.pos) {
		text := t.skipWhile(func(c byte) bool { return chTab[c] != classSpace && !isStructural(c) })
		return Token{Type: UnknownToken, Text: digits + text, Offset: start}
	}
	return Token{Type: MoveNumber, Text: t.text[start:t.pos], MoveNum: n, Offset: start}
}

// gatherMove gathers a move token. Check, mate and promotion marks stay
// part of the move; annotation marks become separate NAG tokens. A
// following "e.p." marker is absorbed.
func (t *Tokenizer) gatherMove(start int) Token {
	t.skipWhile(func(c byte) bool { return moveChars[c] })
	if strings.HasPrefix(t.text[t.pos:], "e.p.") {
		t.pos += len("e.p.")
	} else if rest := strings.TrimLeft(t.text[t.pos:], " "); strings.HasPrefix(rest, "e.p.") {
		t.pos = len(t.text) - len(rest) + len("e.p.")
	}
	return Token{Type: MoveToken, Text: t.text[start:t.pos], Offset: start}
}

// endsAt reports whether a token ending at pos is properly delimited.
func (t *Tokenizer) endsAt(pos int) bool {
	if pos >= len(t.text) {
		return true
	}
	c := t.text[pos]
	return chTab[c] == classSpace || isStructural(c)
}

// isStructural returns true for bytes that end a token without whitespace.
func isStructural(c byte) bool {
	switch chTab[c] {
	case classCommentStart, classLineComment, classRAVStart, classRAVEnd, classNAG, classAnnotate:
		return true
	}
	return false
}
