package chess

// Square indexes a 16x8 board: each rank is 16 cells wide, of which only the
// first 8 are real squares. Row 0 is rank 8, so A8 is 0 and H1 is 119.
// Any index with a bit of 0x88 set is off the board, which lets ray and
// leap generation step past an edge without bounds checks.
type Square int

// BoardCells is the number of cells in the padded board array.
const BoardCells = 128

// RowDelta is the index distance between adjacent ranks.
const RowDelta = 16

// NoSquare marks an absent square, such as no en passant target.
const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A8 Square = 0
	B8 Square = 1
	C8 Square = 2
	D8 Square = 3
	E8 Square = 4
	F8 Square = 5
	G8 Square = 6
	H8 Square = 7
	A1 Square = 112
	B1 Square = 113
	C1 Square = 114
	D1 Square = 115
	E1 Square = 116
	F1 Square = 117
	G1 Square = 118
	H1 Square = 119
)

// NewSquare returns the square on file 0-7 (a-h) and rank 0-7 (1-8).
func NewSquare(file, rank int) Square {
	return Square((7-rank)*RowDelta + file)
}

// OnBoard reports whether the index is one of the 64 real squares.
func (s Square) OnBoard() bool {
	return s&0x88 == 0
}

// File returns the file index, 0 for a through 7 for h.
func (s Square) File() int {
	return int(s) & 7
}

// Rank returns the rank index, 0 for rank 1 through 7 for rank 8.
func (s Square) Rank() int {
	return 7 - int(s)>>4
}

// Row returns the display row, 0 for rank 8 through 7 for rank 1.
func (s Square) Row() int {
	return int(s) >> 4
}

// RenderIndex returns the 0-63 index used by the client-side board,
// col + 8*row with row 0 being rank 8.
func (s Square) RenderIndex() int {
	return s.File() + 8*s.Row()
}

// FileChar returns the file letter.
func (s Square) FileChar() byte {
	return byte('a' + s.File())
}

// RankChar returns the rank digit.
func (s Square) RankChar() byte {
	return byte('1' + s.Rank())
}

// String returns the algebraic name of the square, or "-" when off the board.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.FileChar(), s.RankChar()})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return NewSquare(int(file-'a'), int(rank-'1')), true
}

// AllSquares lists the 64 on-board squares from a8 to h1.
func AllSquares() []Square {
	squares := make([]Square, 0, 64)
	for sq := Square(0); sq < BoardCells; sq++ {
		if sq.OnBoard() {
			squares = append(squares, sq)
		}
	}
	return squares
}
