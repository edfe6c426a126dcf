// Package engine provides chess move generation, validation and notation
// over a padded 16x8 board.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/chess"
)

// MaxHistory is the number of moves a Position can keep for undo.
const MaxHistory = 1024

// historySlots leaves two spare entries so the legality filter and the
// check and mate test behind SAN suffixes can run on a full history.
const historySlots = MaxHistory + 2

// pieceEntry is one slot of a colour's piece list.
type pieceEntry struct {
	piece  chess.Piece
	square chess.Square
}

// historyEntry records what make changed so that undo can reverse it.
type historyEntry struct {
	move          chess.Move
	captured      chess.Piece
	capturedIndex int
	castling      chess.CastlingRights
	epSquare      chess.Square
	halfmove      int
	hash          uint64
}

// Position is the mutable game state. A Position is owned by one goroutine;
// copies made with Clone are independent.
type Position struct {
	board [chess.BoardCells]chess.Piece

	// Piece lists per colour. The king is always at index 0.
	pieces [2][16]pieceEntry
	count  [2]int

	toMove   chess.Colour
	castling chess.CastlingRights
	epSquare chess.Square
	halfmove int
	fullmove int
	hash     uint64

	history  [historySlots]historyEntry
	ply      int
	capacity int
}

// newEmptyPosition returns a position with no pieces and the padding cells
// filled with the Off sentinel.
func newEmptyPosition() *Position {
	p := &Position{
		toMove:   chess.White,
		epSquare: chess.NoSquare,
		fullmove: 1,
		capacity: MaxHistory,
	}
	for sq := chess.Square(0); sq < chess.BoardCells; sq++ {
		if sq.OnBoard() {
			p.board[sq] = chess.Empty
		} else {
			p.board[sq] = chess.Off
		}
	}
	return p
}

// Turn returns the side to move.
func (p *Position) Turn() chess.Colour {
	return p.toMove
}

// CastlingRights returns the castles still available.
func (p *Position) CastlingRights() chess.CastlingRights {
	return p.castling
}

// EPSquare returns the en passant target square, or chess.NoSquare.
func (p *Position) EPSquare() chess.Square {
	return p.epSquare
}

// HalfmoveClock returns the number of half-moves since the last capture or
// pawn move.
func (p *Position) HalfmoveClock() int {
	return p.halfmove
}

// FullmoveNumber returns the move number of the side to move.
func (p *Position) FullmoveNumber() int {
	return p.fullmove
}

// Hash returns the incrementally maintained Zobrist hash.
func (p *Position) Hash() uint64 {
	return p.hash
}

// Ply returns the number of moves held in the undo history.
func (p *Position) Ply() int {
	return p.ply
}

// PieceAt returns the piece on a square, chess.Empty, or chess.Off.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	if !sq.OnBoard() {
		return chess.Off
	}
	return p.board[sq]
}

// KingSquare returns the square of the given colour's king.
func (p *Position) KingSquare(c chess.Colour) chess.Square {
	return p.pieces[c][0].square
}

// PieceCount returns the number of pieces, king included, a colour has.
func (p *Position) PieceCount(c chess.Colour) int {
	return p.count[c]
}

// SetHistoryLimit lowers the number of moves the position accepts before
// Make fails with ErrCapacityExceeded. Limits above MaxHistory are clamped.
func (p *Position) SetHistoryLimit(n int) {
	if n <= 0 || n > MaxHistory {
		n = MaxHistory
	}
	if n < p.ply {
		n = p.ply
	}
	p.capacity = n
}

// Clone returns an independent copy of the position, history included.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// Equal reports whether two positions are identical: board, piece lists,
// state fields, hash and the live part of the history.
func (p *Position) Equal(o *Position) bool {
	if p.board != o.board || p.count != o.count {
		return false
	}
	for c := range p.pieces {
		for i := 0; i < p.count[c]; i++ {
			if p.pieces[c][i] != o.pieces[c][i] {
				return false
			}
		}
	}
	if p.toMove != o.toMove || p.castling != o.castling || p.epSquare != o.epSquare ||
		p.halfmove != o.halfmove || p.fullmove != o.fullmove || p.hash != o.hash || p.ply != o.ply {
		return false
	}
	for i := 0; i < p.ply; i++ {
		if p.history[i] != o.history[i] {
			return false
		}
	}
	return true
}

// addPiece places a piece during setup. Kings go to index 0 of the list.
func (p *Position) addPiece(piece chess.Piece, sq chess.Square) error {
	c := piece.Colour()
	if p.count[c] >= len(p.pieces[c]) {
		return fmt.Errorf("more than %d %s pieces", len(p.pieces[c]), strings.ToLower(c.String()))
	}
	entry := pieceEntry{piece: piece, square: sq}
	n := p.count[c]
	if piece.Type() == chess.King && n > 0 {
		p.pieces[c][n] = p.pieces[c][0]
		p.pieces[c][0] = entry
	} else {
		p.pieces[c][n] = entry
	}
	p.count[c]++
	p.board[sq] = piece
	return nil
}

// findPiece returns the list index of the colour's piece on sq.
func (p *Position) findPiece(c chess.Colour, sq chess.Square) int {
	for i := 0; i < p.count[c]; i++ {
		if p.pieces[c][i].square == sq {
			return i
		}
	}
	panic(fmt.Sprintf("engine: no %s piece on %s", c, sq))
}

// movePiece relocates a piece, keeping its list slot.
func (p *Position) movePiece(c chess.Colour, from, to chess.Square) {
	i := p.findPiece(c, from)
	piece := p.pieces[c][i].piece
	p.pieces[c][i].square = to
	p.board[from] = chess.Empty
	p.board[to] = piece
	p.hash ^= pieceKey(piece, from) ^ pieceKey(piece, to)
}

// removePiece takes a piece off the board by moving the last list entry
// into its slot. It returns the slot index so undo can put it back.
func (p *Position) removePiece(c chess.Colour, sq chess.Square) int {
	i := p.findPiece(c, sq)
	last := p.count[c] - 1
	piece := p.pieces[c][i].piece
	p.pieces[c][i] = p.pieces[c][last]
	p.count[c]--
	p.board[sq] = chess.Empty
	p.hash ^= pieceKey(piece, sq)
	return i
}

// restorePiece reverses removePiece exactly, list order included.
func (p *Position) restorePiece(c chess.Colour, index int, piece chess.Piece, sq chess.Square) {
	p.pieces[c][p.count[c]] = p.pieces[c][index]
	p.pieces[c][index] = pieceEntry{piece: piece, square: sq}
	p.count[c]++
	p.board[sq] = piece
	p.hash ^= pieceKey(piece, sq)
}

// changePiece swaps the piece type on a square, used for promotion.
func (p *Position) changePiece(c chess.Colour, sq chess.Square, t chess.PieceType) {
	i := p.findPiece(c, sq)
	old := p.pieces[c][i].piece
	piece := chess.MakeColouredPiece(c, t)
	p.pieces[c][i].piece = piece
	p.board[sq] = piece
	p.hash ^= pieceKey(old, sq) ^ pieceKey(piece, sq)
}

// String renders the board as eight lines of FEN letters, rank 8 first.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for file := 0; file < 8; file++ {
			sb.WriteString(p.board[row*chess.RowDelta+file].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
