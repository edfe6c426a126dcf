package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// movePattern is what a move string says about a move. Unknown parts are
// NoPieceType or -1.
type movePattern struct {
	piece     chess.PieceType
	fromFile  int
	fromRank  int
	to        chess.Square
	promotion chess.PieceType
}

// ParseMove resolves a move string against the position. It accepts
// coordinate ("g1f3", "e7e8q"), long algebraic ("Ng1-f3", "Ng1xf3") and
// standard algebraic ("Nf3", "exd5", "e8=Q") forms, castling as O-O or 0-0,
// and ignores trailing check, mate and annotation marks.
//
// It fails with ErrIllegalMove when the string names a pseudo-legal move
// that leaves the king attacked, and with ErrUnknownNotation when the
// string does not resolve to exactly one legal move.
func (p *Position) ParseMove(notation string) (chess.Move, error) {
	text := cleanMoveText(notation)
	if text == "" {
		return chess.Move{}, fmt.Errorf("empty move %q: %w", notation, errors.ErrUnknownNotation)
	}

	if flag, ok := castleFlag(text); ok {
		return p.resolve(notation, func(m chess.Move) bool { return m.Has(flag) })
	}

	pat, ok := decodeNotation(text)
	if !ok {
		return chess.Move{}, fmt.Errorf("cannot decode %q: %w", notation, errors.ErrUnknownNotation)
	}
	return p.resolve(notation, func(m chess.Move) bool { return p.matches(m, pat) })
}

// resolve picks the single legal move accepted by match.
func (p *Position) resolve(notation string, match func(chess.Move) bool) (chess.Move, error) {
	var found []chess.Move
	for _, m := range p.LegalMoves() {
		if match(m) {
			found = append(found, m)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		for _, m := range p.PseudoLegalMoves() {
			if match(m) {
				return chess.Move{}, fmt.Errorf("%s leaves the king in check: %w", notation, errors.ErrIllegalMove)
			}
		}
		return chess.Move{}, fmt.Errorf("no move matches %q: %w", notation, errors.ErrUnknownNotation)
	default:
		return chess.Move{}, fmt.Errorf("%q is ambiguous (%d moves): %w", notation, len(found), errors.ErrUnknownNotation)
	}
}

// matches reports whether a generated move fits the decoded pattern.
func (p *Position) matches(m chess.Move, pat movePattern) bool {
	if m.To != pat.to || m.Promotion != pat.promotion {
		return false
	}
	if pat.piece != chess.NoPieceType && p.board[m.From].Type() != pat.piece {
		return false
	}
	if pat.fromFile >= 0 && m.From.File() != pat.fromFile {
		return false
	}
	if pat.fromRank >= 0 && m.From.Rank() != pat.fromRank {
		return false
	}
	return true
}

// cleanMoveText strips check, mate and annotation suffixes and an "e.p."
// marker.
func cleanMoveText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "+#!?")
	s = strings.TrimSuffix(s, "e.p.")
	return strings.TrimRight(s, "+#!? ")
}

// castleFlag recognises O-O and O-O-O, also written with zeros or
// lowercase letters.
func castleFlag(s string) (chess.MoveFlags, bool) {
	norm := strings.Map(func(r rune) rune {
		if r == '0' || r == 'o' {
			return 'O'
		}
		return r
	}, s)
	switch norm {
	case "O-O", "OO":
		return chess.FlagCastleKingside, true
	case "O-O-O", "OOO":
		return chess.FlagCastleQueenside, true
	}
	return 0, false
}

// decodeNotation reads a move string from the end backwards: optional
// promotion piece, destination square, optional capture or separator mark,
// optional source rank and file, optional piece letter. A string with no
// piece letter and no full source square is a pawn move.
func decodeNotation(s string) (movePattern, bool) {
	pat := movePattern{fromFile: -1, fromRank: -1}
	i := len(s)

	if i > 0 && !isRankChar(s[i-1]) {
		pat.promotion = chess.PieceTypeFromLetter(s[i-1])
		switch pat.promotion {
		case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		default:
			return pat, false
		}
		i--
		if i > 0 && s[i-1] == '=' {
			i--
		}
	}

	if i < 2 {
		return pat, false
	}
	to, ok := chess.ParseSquare(s[i-2 : i])
	if !ok {
		return pat, false
	}
	pat.to = to
	i -= 2

	if i > 0 && isSeparator(s[i-1]) {
		i--
	}
	if i > 0 && isRankChar(s[i-1]) {
		pat.fromRank = int(s[i-1] - '1')
		i--
	}
	if i > 0 && isFileChar(s[i-1]) {
		pat.fromFile = int(s[i-1] - 'a')
		i--
	}
	if i > 0 && strings.IndexByte("PNBRQK", s[i-1]) >= 0 {
		pat.piece = chess.PieceTypeFromLetter(s[i-1])
		i--
	}
	if i != 0 {
		return pat, false
	}

	if pat.piece == chess.NoPieceType && (pat.fromFile < 0 || pat.fromRank < 0) {
		pat.piece = chess.Pawn
	}
	if pat.promotion != chess.NoPieceType && pat.piece != chess.Pawn && pat.piece != chess.NoPieceType {
		return pat, false
	}
	return pat, true
}

func isFileChar(c byte) bool {
	return c >= 'a' && c <= 'h'
}

func isRankChar(c byte) bool {
	return c >= '1' && c <= '8'
}

// isSeparator returns true for capture marks and the LAN hyphen.
func isSeparator(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}
