// Package chess provides core chess types shared by the engine, the PGN
// reader and the variation parser.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents an uncoloured chess piece.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// PieceTypeFromLetter converts an English piece letter in either case.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// trait is a movement capability of a piece type.
type trait uint8

const (
	traitSliding trait = 1 << iota
	traitPawn
	traitDiagonal
	traitOrthogonal
)

var pieceTraits = [NumPieceTypes]trait{
	Pawn:   traitPawn,
	Bishop: traitSliding | traitDiagonal,
	Rook:   traitSliding | traitOrthogonal,
	Queen:  traitSliding | traitDiagonal | traitOrthogonal,
}

func (t PieceType) has(tr trait) bool {
	return t > NoPieceType && t < NumPieceTypes && pieceTraits[t]&tr != 0
}

// IsSliding reports whether the piece moves along rays until blocked.
func (t PieceType) IsSliding() bool { return t.has(traitSliding) }

// IsPawn reports whether the piece type is a pawn.
func (t PieceType) IsPawn() bool { return t.has(traitPawn) }

// MovesDiagonally reports whether a sliding piece attacks along diagonals.
func (t PieceType) MovesDiagonally() bool { return t.has(traitDiagonal) }

// MovesOrthogonally reports whether a sliding piece attacks along ranks and files.
func (t PieceType) MovesOrthogonally() bool { return t.has(traitOrthogonal) }

// Piece is a board cell value: a coloured piece, Empty, or the Off sentinel
// stored on the padding squares of the board.
type Piece uint8

const (
	Empty Piece = 0
	Off   Piece = 0xFF
)

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, t PieceType) Piece {
	return Piece(int(t)<<PieceShift | int(colour))
}

// W creates a white piece.
func W(t PieceType) Piece {
	return MakeColouredPiece(White, t)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return MakeColouredPiece(Black, t)
}

// Colour returns the colour of a coloured piece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Type returns the uncoloured piece type, or NoPieceType for Empty and Off.
func (p Piece) Type() PieceType {
	if p == Empty || p == Off {
		return NoPieceType
	}
	return PieceType(p >> PieceShift)
}

// IsPiece reports whether the cell holds a piece.
func (p Piece) IsPiece() bool {
	return p != Empty && p != Off
}

// IsSliding reports whether the piece is a bishop, rook or queen.
func (p Piece) IsSliding() bool { return p.Type().IsSliding() }

// IsPawn reports whether the piece is a pawn.
func (p Piece) IsPawn() bool { return p.Type().IsPawn() }

// MovesDiagonally reports whether the piece is a bishop or queen.
func (p Piece) MovesDiagonally() bool { return p.Type().MovesDiagonally() }

// MovesOrthogonally reports whether the piece is a rook or queen.
func (p Piece) MovesOrthogonally() bool { return p.Type().MovesOrthogonally() }

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Type().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromFENLetter converts a FEN piece letter, returning Empty when the
// letter names no piece.
func PieceFromFENLetter(c byte) Piece {
	t := PieceTypeFromLetter(c)
	if t == NoPieceType {
		return Empty
	}
	if c >= 'a' && c <= 'z' {
		return B(t)
	}
	return W(t)
}

// Code returns the numeric code used by the client-side board replay:
// 0 for no piece, 1-6 for white pawn to king, 7-12 for black.
func (p Piece) Code() int {
	if !p.IsPiece() {
		return 0
	}
	code := int(p.Type())
	if p.Colour() == Black {
		code += 6
	}
	return code
}

// String returns the FEN letter, or "." for an empty cell.
func (p Piece) String() string {
	switch p {
	case Empty:
		return "."
	case Off:
		return "#"
	}
	return string(p.FENLetter())
}

// CastlingRights is a four-bit mask of the castles still available.
type CastlingRights uint8

const (
	BlackKingside CastlingRights = 1 << iota
	BlackQueenside
	WhiteKingside
	WhiteQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = BlackKingside | BlackQueenside | WhiteKingside | WhiteQueenside
)

// Has reports whether all rights in r are present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// String returns the FEN castling field.
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var buf []byte
	if c.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if c.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if c.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if c.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	return string(buf)
}

// Outcome describes how a position ends the game, if it does.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	InsufficientMaterial
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "ongoing"
	}
}

// Game termination markers.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)
