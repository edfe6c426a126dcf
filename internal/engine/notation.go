package engine

import (
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/chess"
)

// Notation selects a textual move format.
type Notation int

const (
	SAN        Notation = iota // Standard algebraic: Nf3, exd5, e8=Q+
	LAN                        // Long algebraic: Ng1f3, e5xd6, e7e8=Q+
	Coordinate                 // Coordinate: g1f3, e7e8q
)

// String returns the name of the notation.
func (n Notation) String() string {
	switch n {
	case LAN:
		return "lan"
	case Coordinate:
		return "coordinate"
	default:
		return "san"
	}
}

// Format renders m, which must be legal in p, in the given notation.
func (p *Position) Format(m chess.Move, n Notation) string {
	switch n {
	case LAN:
		return p.LAN(m)
	case Coordinate:
		return p.Coordinate(m)
	default:
		return p.SAN(m)
	}
}

// Coordinate returns from-square, to-square and a lowercase promotion letter.
func (p *Position) Coordinate(m chess.Move) string {
	return m.String()
}

// LAN returns long algebraic notation: piece letter (none for pawns),
// from-square, "x" for captures, to-square, "=X" for promotions and a
// check or mate suffix.
func (p *Position) LAN(m chess.Move) string {
	var sb strings.Builder
	if !writeCastle(&sb, m) {
		piece := p.board[m.From]
		if !piece.IsPawn() {
			sb.WriteByte(piece.Type().Letter())
		}
		sb.WriteString(m.From.String())
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		writePromotion(&sb, m)
	}
	sb.WriteString(p.checkSuffix(m))
	return sb.String()
}

// SAN returns standard algebraic notation, adding the minimal file and/or
// rank of the source square needed to tell like pieces apart.
func (p *Position) SAN(m chess.Move) string {
	var sb strings.Builder
	if !writeCastle(&sb, m) {
		piece := p.board[m.From]
		if piece.IsPawn() {
			if m.IsCapture() {
				sb.WriteByte(m.From.FileChar())
				sb.WriteByte('x')
			}
		} else {
			sb.WriteByte(piece.Type().Letter())
			p.writeDisambiguation(&sb, m)
			if m.IsCapture() {
				sb.WriteByte('x')
			}
		}
		sb.WriteString(m.To.String())
		writePromotion(&sb, m)
	}
	sb.WriteString(p.checkSuffix(m))
	return sb.String()
}

// writeCastle writes O-O or O-O-O and reports whether m was a castle.
func writeCastle(sb *strings.Builder, m chess.Move) bool {
	switch {
	case m.Has(chess.FlagCastleKingside):
		sb.WriteString("O-O")
	case m.Has(chess.FlagCastleQueenside):
		sb.WriteString("O-O-O")
	default:
		return false
	}
	return true
}

func writePromotion(sb *strings.Builder, m chess.Move) {
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}
}

// writeDisambiguation adds the file if it tells the alternates apart,
// otherwise the rank, otherwise both.
func (p *Position) writeDisambiguation(sb *strings.Builder, m chess.Move) {
	alternates := p.DisambiguationSquares(m)
	if len(alternates) == 0 {
		return
	}
	sameFile, sameRank := false, false
	for _, sq := range alternates {
		if sq.File() == m.From.File() {
			sameFile = true
		}
		if sq.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		sb.WriteByte(m.From.FileChar())
	case !sameRank:
		sb.WriteByte(m.From.RankChar())
	default:
		sb.WriteString(m.From.String())
	}
}

// checkSuffix makes m, tests for check and mate, and undoes it.
func (p *Position) checkSuffix(m chess.Move) string {
	p.makeMove(m)
	defer p.unmakeMove()
	if !p.InCheck() {
		return ""
	}
	if len(p.LegalMoves()) == 0 {
		return "#"
	}
	return "+"
}

// DisambiguationSquares returns the squares of other pieces of the same
// kind and colour as the mover that could also reach m.To. It walks the
// piece's vectors outward from the destination to the first occupied
// square; a candidate is kept only if moving it to m.To would not expose
// its own king. The check runs on a copy of the board, so the position is
// never modified.
func (p *Position) DisambiguationSquares(m chess.Move) []chess.Square {
	piece := p.board[m.From]
	t := piece.Type()
	if t == chess.Pawn || t == chess.King || t == chess.NoPieceType {
		return nil
	}

	var alternates []chess.Square
	for _, dir := range pieceVectors(t) {
		for sq := m.To + dir; sq.OnBoard(); sq += dir {
			occupant := p.board[sq]
			if occupant != chess.Empty {
				if occupant == piece && sq != m.From && !p.exposesKing(sq, m.To, piece.Colour()) {
					alternates = append(alternates, sq)
				}
				break
			}
			if !t.IsSliding() {
				break
			}
		}
	}
	return alternates
}

// exposesKing reports whether moving the piece on from to to would leave
// the king of colour us attacked.
func (p *Position) exposesKing(from, to chess.Square, us chess.Colour) bool {
	board := p.board
	board[to] = board[from]
	board[from] = chess.Empty
	return isSquareAttacked(&board, p.KingSquare(us), us.Opposite())
}
