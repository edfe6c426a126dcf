package engine

import "github.com/lgbarn/pgn2web-go/internal/chess"

// Outcome reports whether the position ends the game.
func (p *Position) Outcome() chess.Outcome {
	if len(p.LegalMoves()) == 0 {
		if p.InCheck() {
			return chess.Checkmate
		}
		return chess.Stalemate
	}
	if p.halfmove >= MaxHalfmoveClock {
		return chess.FiftyMoveRule
	}
	if p.HasInsufficientMaterial() {
		return chess.InsufficientMaterial
	}
	return chess.Ongoing
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func (p *Position) HasInsufficientMaterial() bool {
	var minors [2][]chess.PieceType
	var bishopOnLight [2]bool

	for c := range p.pieces {
		// Index 0 is the king.
		for i := 1; i < p.count[c]; i++ {
			e := p.pieces[c][i]
			t := e.piece.Type()
			if t == chess.Pawn || t == chess.Rook || t == chess.Queen {
				return false
			}
			minors[c] = append(minors[c], t)
			if t == chess.Bishop {
				bishopOnLight[c] = isLightSquare(e.square)
			}
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
