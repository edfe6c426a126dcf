package engine

// Perft counts the leaf nodes of the legal move tree to the given depth.
// It is used to check the move generator against published counts.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.makeMove(m)
		nodes += Perft(p, depth-1)
		p.unmakeMove()
	}
	return nodes
}
