package engine

import "github.com/lgbarn/pgn2web-go/internal/chess"

// boardArray is the padded cell array a Position is built on.
type boardArray = [chess.BoardCells]chess.Piece

// IsAttacked returns true if the square is attacked by the given colour.
func (p *Position) IsAttacked(sq chess.Square, by chess.Colour) bool {
	return isSquareAttacked(&p.board, sq, by)
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsInCheck(p.toMove)
}

// IsInCheck returns true if the given colour's king is in check.
func (p *Position) IsInCheck(c chess.Colour) bool {
	return isSquareAttacked(&p.board, p.KingSquare(c), c.Opposite())
}

// isSquareAttacked reports whether any piece of colour by attacks sq on the
// given board. It only reads the board, so callers may pass a modified copy
// to ask about hypothetical positions.
func isSquareAttacked(board *boardArray, sq chess.Square, by chess.Colour) bool {
	// Pawns attack from the two squares diagonally behind sq relative to
	// their direction of travel.
	pawn := chess.MakeColouredPiece(by, chess.Pawn)
	behind := sq - pawnForward(by)
	for _, side := range []chess.Square{-1, 1} {
		from := behind + side
		if from.OnBoard() && board[from] == pawn {
			return true
		}
	}

	knight := chess.MakeColouredPiece(by, chess.Knight)
	for _, off := range knightOffsets {
		from := sq + off
		if from.OnBoard() && board[from] == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(by, chess.King)
	for _, off := range kingOffsets {
		from := sq + off
		if from.OnBoard() && board[from] == king {
			return true
		}
	}

	if rayAttacked(board, sq, by, diagonalDirections, chess.Piece.MovesDiagonally) {
		return true
	}
	return rayAttacked(board, sq, by, orthogonalDirections, chess.Piece.MovesOrthogonally)
}

// rayAttacked walks each direction from sq to the first occupied square and
// reports whether it holds a slider of colour by with the matching geometry.
func rayAttacked(board *boardArray, sq chess.Square, by chess.Colour, dirs []chess.Square, geometry func(chess.Piece) bool) bool {
	for _, dir := range dirs {
		for from := sq + dir; from.OnBoard(); from += dir {
			piece := board[from]
			if piece == chess.Empty {
				continue
			}
			if piece.Colour() == by && geometry(piece) {
				return true
			}
			break // Blocked
		}
	}
	return false
}
