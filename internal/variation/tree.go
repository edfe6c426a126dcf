// Package variation parses PGN movetext into a tree of variations and
// flattens it into per-variation move arrays plus annotated notation.
package variation

import (
	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/engine"
)

// Tuple is one half-move for the client-side replay: a from,to pair of
// render indexes followed by a second pair, or -1,-1 when the move is a
// single board update. A promotion is from,to,-code,-1 where code is the
// promoted piece.
type Tuple [4]int

// Sentinel terminates each variation's move array.
var Sentinel = Tuple{-1, -1, -1, -1}

// Variation is one flattened node of the variation tree.
type Variation struct {
	ID int `json:"id"`

	// Parent is the enclosing variation's id, -1 for the main line.
	Parent int `json:"parent"`

	// ParentMove is the 0-based index of the parent move this variation
	// replaces.
	ParentMove int `json:"parentMove"`

	// Moves holds one tuple per half-move.
	Moves []Tuple `json:"moves"`

	// Plies is the number of half-moves played in the variation.
	Plies int `json:"plies"`

	// StartFEN is the position the variation's first move is played from.
	StartFEN string `json:"startFEN"`
}

// node is a variation while the movetext is being walked.
type node struct {
	id         int
	parent     int
	parentMove int
	children   []int

	// pos is the position after the node's last move. Its history holds
	// the moves leading to it, so undoing one move gives the position a
	// new child variation starts from.
	pos      *engine.Position
	startFEN string
	plies    int
	tuples   []Tuple
}

// tree is an arena of nodes addressed by id.
type tree struct {
	nodes []*node
}

func (t *tree) add(parent int, parentMove int, pos *engine.Position) *node {
	n := &node{
		id:         len(t.nodes),
		parent:     parent,
		parentMove: parentMove,
		pos:        pos,
		startFEN:   pos.FEN(),
	}
	t.nodes = append(t.nodes, n)
	if parent >= 0 {
		p := t.nodes[parent]
		p.children = append(p.children, n.id)
	}
	return n
}

// flatten walks the tree from the root: each node first, then its
// children in order, each followed by its own subtree.
func (t *tree) flatten() []Variation {
	out := make([]Variation, 0, len(t.nodes))
	var walk func(id int)
	walk = func(id int) {
		n := t.nodes[id]
		out = append(out, Variation{
			ID:         n.id,
			Parent:     n.parent,
			ParentMove: n.parentMove,
			Moves:      n.tuples,
			Plies:      n.plies,
			StartFEN:   n.startFEN,
		})
		for _, child := range n.children {
			walk(child)
		}
	}
	if len(t.nodes) > 0 {
		walk(0)
	}
	return out
}

// moveTuple converts a legal move into its replay tuple. Castling moves the
// king then the rook. En passant first moves the captured pawn onto the
// destination, then the capturing pawn over it.
func moveTuple(p *engine.Position, m chess.Move) Tuple {
	from, to := m.From.RenderIndex(), m.To.RenderIndex()
	switch {
	case m.IsCastle():
		rookFrom, rookTo := m.RookSquares()
		return Tuple{from, to, rookFrom.RenderIndex(), rookTo.RenderIndex()}
	case m.IsEnPassant():
		captured := chess.NewSquare(m.To.File(), m.From.Rank())
		return Tuple{captured.RenderIndex(), to, from, to}
	case m.IsPromotion():
		piece := chess.MakeColouredPiece(p.Turn(), m.Promotion)
		return Tuple{from, to, -piece.Code(), -1}
	}
	return Tuple{from, to, -1, -1}
}
