package engine

import "github.com/lgbarn/pgn2web-go/internal/chess"

// castlingMoves appends the castles available to the side to move. A castle
// needs its right, the king and rook on their home squares, vacant squares
// between them, and no attacked square on the king's path.
func (p *Position) castlingMoves(moves []chess.Move) []chess.Move {
	us := p.toMove
	them := us.Opposite()
	king := chess.MakeColouredPiece(us, chess.King)
	rook := chess.MakeColouredPiece(us, chess.Rook)

	for i := range castleRules[us] {
		rule := &castleRules[us][i]
		if !p.castling.Has(rule.right) {
			continue
		}
		if p.board[rule.kingFrom] != king || p.board[rule.rookFrom] != rook {
			continue
		}
		if !p.allEmpty(rule.empty) || p.anyAttacked(rule.safe, them) {
			continue
		}
		moves = append(moves, chess.Move{From: rule.kingFrom, To: rule.kingTo, Flags: rule.flag})
	}
	return moves
}

// allEmpty reports whether every square is vacant.
func (p *Position) allEmpty(squares []chess.Square) bool {
	for _, sq := range squares {
		if p.board[sq] != chess.Empty {
			return false
		}
	}
	return true
}

// anyAttacked reports whether colour by attacks any of the squares.
func (p *Position) anyAttacked(squares []chess.Square, by chess.Colour) bool {
	for _, sq := range squares {
		if p.IsAttacked(sq, by) {
			return true
		}
	}
	return false
}
