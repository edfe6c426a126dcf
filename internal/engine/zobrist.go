package engine

import "github.com/lgbarn/pgn2web-go/internal/chess"

// Zobrist keys, filled once from a fixed seed so hashes are reproducible
// across runs.
var (
	zobristPiece      [2][chess.NumPieceTypes][chess.BoardCells]uint64
	zobristCastling   [16]uint64
	zobristEnPassant  [8]uint64
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

// prng is an xorshift64* generator.
type prng struct {
	state uint64
}

func (r *prng) next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x6A09E667F3BCC909}

	for c := range zobristPiece {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for sq := chess.Square(0); sq < chess.BoardCells; sq++ {
				if sq.OnBoard() {
					zobristPiece[c][pt][sq] = rng.next()
				}
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// pieceKey returns the key for a piece on a square.
func pieceKey(piece chess.Piece, sq chess.Square) uint64 {
	return zobristPiece[piece.Colour()][piece.Type()][sq]
}

// epKey returns the key for an en passant target, zero when there is none.
func epKey(sq chess.Square) uint64 {
	if !sq.OnBoard() {
		return 0
	}
	return zobristEnPassant[sq.File()]
}

// ComputeHash recomputes the hash from scratch. It always equals Hash for a
// consistent position.
func (p *Position) ComputeHash() uint64 {
	var h uint64
	for c := range p.pieces {
		for i := 0; i < p.count[c]; i++ {
			e := p.pieces[c][i]
			h ^= pieceKey(e.piece, e.square)
		}
	}
	h ^= zobristCastling[p.castling]
	h ^= epKey(p.epSquare)
	if p.toMove == chess.Black {
		h ^= zobristSideToMove
	}
	return h
}
