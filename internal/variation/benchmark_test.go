package variation

import (
	"testing"

	"github.com/lgbarn/pgn2web-go/internal/config"
)

const benchMovetext = `1. e4 {Best by test} e5 2. Nf3 Nc6 3. Bb5 {The Ruy Lopez} a6 (3... Nf6 4. O-O
Nxe4 (4... Bc5) 5. d4) 4. Ba4 Nf6 5. O-O Be7 6. Re1 b5 7. Bb3 d6 8. c3 O-O 9. h3 Nb8!?
10. d4 Nbd7 11. Nbd2 Bb7 12. Bc2 Re8 13. Nf1 Bf8 14. Ng3 g6 15. Bg5 h6 $1
16. Bd2 Bg7 17. a4 c5 18. d5 c4 19. b4 Nh7 20. Be3 h5 1-0`

func BenchmarkParse(b *testing.B) {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	p := NewParser(cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse("", benchMovetext); err != nil {
			b.Fatal(err)
		}
	}
}
