package engine

import "testing"

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   kiwipeteFEN,
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkNewPosition(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewPosition(fen)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			p, _ := NewPosition(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.LegalMoves()
			}
		})
	}
}

func BenchmarkSAN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			p, _ := NewPosition(fen)
			moves := p.LegalMoves()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for _, m := range moves {
					p.SAN(m)
				}
			}
		})
	}
}

func BenchmarkPerft3(b *testing.B) {
	p, _ := NewPosition(kiwipeteFEN)
	for i := 0; i < b.N; i++ {
		Perft(p, 3)
	}
}
