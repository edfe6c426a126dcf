package chess

// MoveFlags classifies a move. The flags are fixed when the move is generated
// against a position.
type MoveFlags uint8

const (
	FlagCapture MoveFlags = 1 << iota
	FlagPawn
	FlagDoublePush
	FlagEnPassant
	FlagPromotion
	FlagCastleKingside
	FlagCastleQueenside
)

// Move is a single half-move.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType // NoPieceType unless FlagPromotion is set
	Flags     MoveFlags
}

// Has reports whether all of the given flags are set.
func (m Move) Has(f MoveFlags) bool {
	return m.Flags&f == f
}

// IsCapture returns true if the move captures, including en passant.
func (m Move) IsCapture() bool {
	return m.Has(FlagCapture)
}

// IsPromotion returns true if the move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Has(FlagPromotion)
}

// IsCastle returns true if the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flags&(FlagCastleKingside|FlagCastleQueenside) != 0
}

// IsEnPassant returns true if the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Has(FlagEnPassant)
}

// IsPawnMove returns true if a pawn moves.
func (m Move) IsPawnMove() bool {
	return m.Has(FlagPawn)
}

// SameAs reports whether two moves have the same squares and promotion,
// ignoring flags.
func (m Move) SameAs(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// String returns coordinate notation such as "e2e4" or "e7e8q".
func (m Move) String() string {
	buf := make([]byte, 0, 5)
	buf = append(buf, m.From.String()...)
	buf = append(buf, m.To.String()...)
	if m.Promotion != NoPieceType {
		buf = append(buf, m.Promotion.Letter()+('a'-'A'))
	}
	return string(buf)
}

// RookSquares returns where the rook starts and lands for a castling move.
func (m Move) RookSquares() (from, to Square) {
	if m.Has(FlagCastleKingside) {
		return m.To + 1, m.To - 1
	}
	return m.To - 2, m.To + 1
}
