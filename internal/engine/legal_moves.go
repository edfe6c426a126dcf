package engine

import "github.com/lgbarn/pgn2web-go/internal/chess"

// PseudoLegalMoves returns every move obeying piece movement rules for the
// side to move, without checking whether the mover's king is left attacked.
// Castling moves are only included when the king does not start in, pass
// through or land on an attacked square.
func (p *Position) PseudoLegalMoves() []chess.Move {
	moves := make([]chess.Move, 0, 64)
	us := p.toMove

	for i := 0; i < p.count[us]; i++ {
		entry := p.pieces[us][i]
		t := entry.piece.Type()
		switch {
		case t.IsPawn():
			moves = p.pawnMoves(moves, entry.square)
		case t.IsSliding():
			moves = p.slidingMoves(moves, entry.square, pieceVectors(t))
		default:
			moves = p.steppingMoves(moves, entry.square, pieceVectors(t))
		}
	}

	return p.castlingMoves(moves)
}

// LegalMoves returns the pseudo-legal moves that do not leave the mover's
// king attacked. Each candidate is made, tested and undone.
func (p *Position) LegalMoves() []chess.Move {
	moves := p.PseudoLegalMoves()
	us := p.toMove
	legal := moves[:0]
	for _, m := range moves {
		p.makeMove(m)
		if !p.IsInCheck(us) {
			legal = append(legal, m)
		}
		p.unmakeMove()
	}
	return legal
}

// findLegal returns the generated legal move with the same squares and
// promotion as m, carrying the flags computed by the generator.
func (p *Position) findLegal(m chess.Move) (chess.Move, bool) {
	for _, lm := range p.LegalMoves() {
		if lm.SameAs(m) {
			return lm, true
		}
	}
	return chess.Move{}, false
}

// slidingMoves walks each direction until blocked.
func (p *Position) slidingMoves(moves []chess.Move, from chess.Square, dirs []chess.Square) []chess.Move {
	us := p.toMove
	for _, dir := range dirs {
		for to := from + dir; to.OnBoard(); to += dir {
			target := p.board[to]
			if target == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: to})
				continue
			}
			if target.Colour() != us {
				moves = append(moves, chess.Move{From: from, To: to, Flags: chess.FlagCapture})
			}
			break
		}
	}
	return moves
}

// steppingMoves tests each fixed offset once, for knights and kings.
func (p *Position) steppingMoves(moves []chess.Move, from chess.Square, offsets []chess.Square) []chess.Move {
	us := p.toMove
	for _, off := range offsets {
		to := from + off
		if !to.OnBoard() {
			continue
		}
		target := p.board[to]
		switch {
		case target == chess.Empty:
			moves = append(moves, chess.Move{From: from, To: to})
		case target.Colour() != us:
			moves = append(moves, chess.Move{From: from, To: to, Flags: chess.FlagCapture})
		}
	}
	return moves
}

// pawnMoves generates advances, captures, en passant and promotions.
func (p *Position) pawnMoves(moves []chess.Move, from chess.Square) []chess.Move {
	us := p.toMove
	forward := pawnForward(us)

	to := from + forward
	if to.OnBoard() && p.board[to] == chess.Empty {
		moves = appendPawnMove(moves, us, from, to, chess.FlagPawn)
		if from.Row() == pawnStartRow(us) {
			double := to + forward
			if p.board[double] == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: double, Flags: chess.FlagPawn | chess.FlagDoublePush})
			}
		}
	}

	for _, side := range []chess.Square{-1, 1} {
		to := from + forward + side
		if !to.OnBoard() {
			continue
		}
		target := p.board[to]
		switch {
		case target.IsPiece() && target.Colour() != us:
			moves = appendPawnMove(moves, us, from, to, chess.FlagPawn|chess.FlagCapture)
		case target == chess.Empty && to == p.epSquare:
			moves = append(moves, chess.Move{From: from, To: to, Flags: chess.FlagPawn | chess.FlagCapture | chess.FlagEnPassant})
		}
	}
	return moves
}

// appendPawnMove adds a pawn move, expanded into the four promotions when it
// reaches the last rank.
func appendPawnMove(moves []chess.Move, us chess.Colour, from, to chess.Square, flags chess.MoveFlags) []chess.Move {
	if to.Row() != promotionRow(us) {
		return append(moves, chess.Move{From: from, To: to, Flags: flags})
	}
	for _, t := range promotionTypes {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: t, Flags: flags | chess.FlagPromotion})
	}
	return moves
}
