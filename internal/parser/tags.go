package parser

import (
	"strings"
	"unicode"

	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// TagPair is one [Name "Value"] header entry.
type TagPair struct {
	Name  string
	Value string
}

// ParseTagLine parses every tag pair on a header line. Values may contain
// \" and \\ escapes. Pairs parsed before an error are still returned.
func ParseTagLine(line string) ([]TagPair, error) {
	var pairs []TagPair
	pos := 0
	for {
		pos = skipSpace(line, pos)
		if pos >= len(line) {
			return pairs, nil
		}
		if line[pos] != '[' {
			return pairs, tagError(pos, "'['", line[pos:])
		}
		pos = skipSpace(line, pos+1)

		start := pos
		for pos < len(line) && isTagNameChar(line[pos]) {
			pos++
		}
		if pos == start {
			return pairs, tagError(pos, "tag name", line[pos:])
		}
		name := line[start:pos]

		pos = skipSpace(line, pos)
		if pos >= len(line) || line[pos] != '"' {
			return pairs, tagError(pos, "tag string for "+name, line[pos:])
		}
		value, next, ok := gatherString(line, pos+1)
		if !ok {
			return pairs, tagError(len(line), "closing quote", name)
		}
		pos = skipSpace(line, next)
		if pos >= len(line) || line[pos] != ']' {
			return pairs, tagError(pos, "']'", line[pos:])
		}
		pos++
		pairs = append(pairs, TagPair{Name: name, Value: value})
	}
}

// gatherString reads a quoted string body starting after the opening
// quote. It returns the unescaped value and the position after the
// closing quote.
func gatherString(line string, pos int) (string, int, bool) {
	var sb strings.Builder
	escaped := false

	for pos < len(line) {
		ch := line[pos]
		pos++

		if escaped {
			sb.WriteByte(ch)
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		if ch == '"' {
			return sb.String(), pos, true
		}
		sb.WriteByte(ch)
	}
	return sb.String(), pos, false
}

func isTagNameChar(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || unicode.IsDigit(rune(ch)) || ch == '_'
}

func skipSpace(line string, pos int) int {
	for pos < len(line) && (line[pos] == ' ' || line[pos] == '\t' || line[pos] == '\r' || line[pos] == '\n') {
		pos++
	}
	return pos
}

func tagError(col int, expected, got string) *errors.ParseError {
	if len(got) > 20 {
		got = got[:20]
	}
	return &errors.ParseError{
		Column:   col + 1,
		Expected: expected,
		Got:      got,
		Err:      errors.ErrParseFailure,
	}
}
