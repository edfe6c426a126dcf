package engine

import "github.com/lgbarn/pgn2web-go/internal/chess"

// Direction vectors on the 16-wide board.
var (
	knightOffsets        = []chess.Square{-33, -31, -18, -14, 14, 18, 31, 33}
	kingOffsets          = []chess.Square{-17, -16, -15, -1, 1, 15, 16, 17}
	diagonalDirections   = []chess.Square{-17, -15, 15, 17}
	orthogonalDirections = []chess.Square{-16, -1, 1, 16}
)

// pieceVectors returns the vectors a piece type moves along. Sliding pieces
// repeat each vector until blocked; others step once.
func pieceVectors(t chess.PieceType) []chess.Square {
	switch t {
	case chess.Knight:
		return knightOffsets
	case chess.Bishop:
		return diagonalDirections
	case chess.Rook:
		return orthogonalDirections
	case chess.Queen, chess.King:
		return kingOffsets
	}
	return nil
}

// pawnForward returns the single-step advance for a colour's pawns.
func pawnForward(c chess.Colour) chess.Square {
	if c == chess.White {
		return -chess.RowDelta
	}
	return chess.RowDelta
}

// pawnStartRow returns the display row pawns may double-push from.
func pawnStartRow(c chess.Colour) int {
	if c == chess.White {
		return 6
	}
	return 1
}

// promotionRow returns the display row a colour's pawns promote on.
func promotionRow(c chess.Colour) int {
	if c == chess.White {
		return 0
	}
	return 7
}

// promotionTypes lists the pieces a pawn may promote to.
var promotionTypes = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// castlingMask is ANDed with the castling rights for both squares of every
// move, so moving or capturing a king or rook drops the matching rights.
var castlingMask [chess.BoardCells]chess.CastlingRights

// castleRule describes the geometry of one castle.
type castleRule struct {
	right    chess.CastlingRights
	flag     chess.MoveFlags
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	empty    []chess.Square // must be vacant
	safe     []chess.Square // must not be attacked
}

var castleRules = [2][2]castleRule{
	chess.White: {
		{
			right: chess.WhiteKingside, flag: chess.FlagCastleKingside,
			kingFrom: chess.E1, kingTo: chess.G1, rookFrom: chess.H1, rookTo: chess.F1,
			empty: []chess.Square{chess.F1, chess.G1},
			safe:  []chess.Square{chess.E1, chess.F1, chess.G1},
		},
		{
			right: chess.WhiteQueenside, flag: chess.FlagCastleQueenside,
			kingFrom: chess.E1, kingTo: chess.C1, rookFrom: chess.A1, rookTo: chess.D1,
			empty: []chess.Square{chess.D1, chess.C1, chess.B1},
			safe:  []chess.Square{chess.E1, chess.D1, chess.C1},
		},
	},
	chess.Black: {
		{
			right: chess.BlackKingside, flag: chess.FlagCastleKingside,
			kingFrom: chess.E8, kingTo: chess.G8, rookFrom: chess.H8, rookTo: chess.F8,
			empty: []chess.Square{chess.F8, chess.G8},
			safe:  []chess.Square{chess.E8, chess.F8, chess.G8},
		},
		{
			right: chess.BlackQueenside, flag: chess.FlagCastleQueenside,
			kingFrom: chess.E8, kingTo: chess.C8, rookFrom: chess.A8, rookTo: chess.D8,
			empty: []chess.Square{chess.D8, chess.C8, chess.B8},
			safe:  []chess.Square{chess.E8, chess.D8, chess.C8},
		},
	},
}

// castleRuleFor returns the rule matching a castling move's flag.
func castleRuleFor(c chess.Colour, m chess.Move) *castleRule {
	if m.Has(chess.FlagCastleKingside) {
		return &castleRules[c][0]
	}
	return &castleRules[c][1]
}

func init() {
	for sq := range castlingMask {
		castlingMask[sq] = chess.AllCastling
	}
	castlingMask[chess.A8] &^= chess.BlackQueenside
	castlingMask[chess.E8] &^= chess.BlackKingside | chess.BlackQueenside
	castlingMask[chess.H8] &^= chess.BlackKingside
	castlingMask[chess.A1] &^= chess.WhiteQueenside
	castlingMask[chess.E1] &^= chess.WhiteKingside | chess.WhiteQueenside
	castlingMask[chess.H1] &^= chess.WhiteKingside
}
