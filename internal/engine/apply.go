package engine

import (
	"fmt"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// Make applies a move produced by the generator for this position and
// pushes an undo entry. It fails with ErrCapacityExceeded, before touching
// the position, when the history is full.
func (p *Position) Make(m chess.Move) error {
	if p.ply >= p.capacity {
		return fmt.Errorf("move %s at ply %d: %w", m, p.ply+1, errors.ErrCapacityExceeded)
	}
	p.makeMove(m)
	return nil
}

// Play applies a move after checking it against the legal moves. Only the
// squares and promotion of m are used; flags come from the generator.
func (p *Position) Play(m chess.Move) error {
	legal, ok := p.findLegal(m)
	if !ok {
		return fmt.Errorf("%s in %s: %w", m, p.FEN(), errors.ErrIllegalMove)
	}
	return p.Make(legal)
}

// Undo takes back the last move made.
func (p *Position) Undo() error {
	if p.ply == 0 {
		return errors.ErrEmptyHistory
	}
	p.unmakeMove()
	return nil
}

// LastMove returns the most recent move in the history.
func (p *Position) LastMove() (chess.Move, bool) {
	if p.ply == 0 {
		return chess.Move{}, false
	}
	return p.history[p.ply-1].move, true
}

// makeMove applies m, updating the hash at each step.
func (p *Position) makeMove(m chess.Move) {
	us := p.toMove
	them := us.Opposite()

	h := &p.history[p.ply]
	*h = historyEntry{
		move:          m,
		captured:      chess.Empty,
		capturedIndex: -1,
		castling:      p.castling,
		epSquare:      p.epSquare,
		halfmove:      p.halfmove,
		hash:          p.hash,
	}
	p.ply++

	if m.IsCapture() {
		capSq := m.To
		if m.IsEnPassant() {
			capSq = m.To - pawnForward(us)
		}
		h.captured = p.board[capSq]
		h.capturedIndex = p.removePiece(them, capSq)
	}

	p.movePiece(us, m.From, m.To)
	if m.IsPromotion() {
		p.changePiece(us, m.To, m.Promotion)
	}
	if m.IsCastle() {
		rule := castleRuleFor(us, m)
		p.movePiece(us, rule.rookFrom, rule.rookTo)
	}

	if rights := p.castling & castlingMask[m.From] & castlingMask[m.To]; rights != p.castling {
		p.hash ^= zobristCastling[p.castling] ^ zobristCastling[rights]
		p.castling = rights
	}

	p.hash ^= epKey(p.epSquare)
	p.epSquare = chess.NoSquare
	if m.Has(chess.FlagDoublePush) {
		p.epSquare = m.From + pawnForward(us)
		p.hash ^= epKey(p.epSquare)
	}

	if m.IsPawnMove() || m.IsCapture() {
		p.halfmove = 0
	} else {
		p.halfmove++
	}
	if us == chess.Black {
		p.fullmove++
	}

	p.toMove = them
	p.hash ^= zobristSideToMove
}

// unmakeMove pops the last history entry and reverses it. The piece helpers
// still toggle the hash; the saved hash is restored at the end.
func (p *Position) unmakeMove() {
	p.ply--
	h := &p.history[p.ply]
	m := h.move

	p.toMove = p.toMove.Opposite()
	us := p.toMove
	if us == chess.Black {
		p.fullmove--
	}

	if m.IsCastle() {
		rule := castleRuleFor(us, m)
		p.movePiece(us, rule.rookTo, rule.rookFrom)
	}
	if m.IsPromotion() {
		p.changePiece(us, m.To, chess.Pawn)
	}
	p.movePiece(us, m.To, m.From)

	if h.captured != chess.Empty {
		capSq := m.To
		if m.IsEnPassant() {
			capSq = m.To - pawnForward(us)
		}
		p.restorePiece(us.Opposite(), h.capturedIndex, h.captured, capSq)
	}

	p.castling = h.castling
	p.epSquare = h.epSquare
	p.halfmove = h.halfmove
	p.hash = h.hash
}
