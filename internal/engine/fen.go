package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxHalfmoveClock is the largest half-move clock a FEN may carry.
const MaxHalfmoveClock = 100

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *Position {
	p, err := NewPosition(InitialFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPosition builds a position from a FEN string. Trailing fields may be
// omitted and default to "w - - 0 1". Any malformed field fails the whole
// call with an error wrapping ErrMalformedInput; no partial position is
// returned.
func NewPosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrMalformedInput)
	}
	if len(parts) > 6 {
		return nil, fmt.Errorf("too many FEN fields (%d): %w", len(parts), errors.ErrMalformedInput)
	}

	p := newEmptyPosition()

	if err := parsePiecePositions(p, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(p, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(p, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(p, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(p, parts); err != nil {
		return nil, err
	}
	if p.IsAttacked(p.KingSquare(p.toMove.Opposite()), p.toMove) {
		return nil, fmt.Errorf("side not to move is in check: %w", errors.ErrMalformedInput)
	}

	p.hash = p.ComputeHash()
	return p, nil
}

// parsePiecePositions parses the piece placement field of a FEN string and
// checks the piece counts.
func parsePiecePositions(p *Position, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%d ranks in piece placement, want 8: %w", len(ranks), errors.ErrMalformedInput)
	}

	var kings, pawns [2]int
	for row, rank := range ranks {
		file := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := chess.PieceFromFENLetter(c)
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrMalformedInput)
			}
			if file > 7 {
				return fmt.Errorf("rank %d overflows: %w", 8-row, errors.ErrMalformedInput)
			}
			sq := chess.Square(row*chess.RowDelta + file)
			switch piece.Type() {
			case chess.King:
				kings[piece.Colour()]++
			case chess.Pawn:
				pawns[piece.Colour()]++
				if row == 0 || row == 7 {
					return fmt.Errorf("pawn on %s: %w", sq, errors.ErrMalformedInput)
				}
			}
			if err := p.addPiece(piece, sq); err != nil {
				return fmt.Errorf("%v: %w", err, errors.ErrMalformedInput)
			}
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %d has %d files: %w", 8-row, file, errors.ErrMalformedInput)
		}
	}

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if kings[c] != 1 {
			return fmt.Errorf("%d %s kings: %w", kings[c], strings.ToLower(c.String()), errors.ErrMalformedInput)
		}
		if pawns[c] > 8 {
			return fmt.Errorf("%d %s pawns: %w", pawns[c], strings.ToLower(c.String()), errors.ErrMalformedInput)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(p *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		p.toMove = chess.White
	case "b":
		p.toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrMalformedInput)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Only KQkq and
// "-" are accepted.
func parseCastlingRights(p *Position, parts []string) error {
	p.castling = chess.NoCastling
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			p.castling |= chess.WhiteKingside
		case 'Q':
			p.castling |= chess.WhiteQueenside
		case 'k':
			p.castling |= chess.BlackKingside
		case 'q':
			p.castling |= chess.BlackQueenside
		default:
			return fmt.Errorf("invalid castling character %q: %w", c, errors.ErrMalformedInput)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The square must
// lie behind a pawn the opponent has just pushed two squares.
func parseEnPassant(p *Position, parts []string) error {
	p.epSquare = chess.NoSquare
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square %q: %w", parts[3], errors.ErrMalformedInput)
	}
	wantRow := 2
	if p.toMove == chess.Black {
		wantRow = 5
	}
	if sq.Row() != wantRow {
		return fmt.Errorf("en passant square %s on wrong rank: %w", sq, errors.ErrMalformedInput)
	}

	// The pushed pawn stands one row nearer the mover, its start square
	// one row further away.
	them := p.toMove.Opposite()
	pushed, start := sq+chess.RowDelta, sq-chess.RowDelta
	if them == chess.White {
		pushed, start = sq-chess.RowDelta, sq+chess.RowDelta
	}
	if p.board[sq] != chess.Empty || p.board[start] != chess.Empty ||
		p.board[pushed] != chess.MakeColouredPiece(them, chess.Pawn) {
		return fmt.Errorf("en passant square %s without a pawn pushed two squares: %w", sq, errors.ErrMalformedInput)
	}
	p.epSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(p *Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock %q: %w", parts[4], errors.ErrMalformedInput)
		}
		if n > MaxHalfmoveClock {
			return fmt.Errorf("halfmove clock %d exceeds %d: %w", n, MaxHalfmoveClock, errors.ErrMalformedInput)
		}
		p.halfmove = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number %q: %w", parts[5], errors.ErrMalformedInput)
		}
		p.fullmove = n
	}
	return nil
}

// FEN returns the position as a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder

	p.writePiecePositions(&sb)
	sb.WriteByte(' ')
	p.writeSideToMove(&sb)
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", p.halfmove, p.fullmove)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func (p *Position) writePiecePositions(sb *strings.Builder) {
	for row := 0; row < 8; row++ {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			piece := p.board[row*chess.RowDelta+file]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func (p *Position) writeSideToMove(sb *strings.Builder) {
	if p.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
