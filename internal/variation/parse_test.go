package variation

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/errors"
	"github.com/lgbarn/pgn2web-go/internal/testutil"
)

func anchor(v, m int, text string) string {
	return fmt.Sprintf(`<a class="move" href="javascript:jumpto(%d, %d);" id="v%dm%d">%s</a>`, v, m, v, m, text)
}

func quietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	return cfg
}

// fenAfter plays SAN moves from the start position and returns the FEN.
func fenAfter(t *testing.T, moves ...string) string {
	t.Helper()
	p := engine.NewInitialPosition()
	for _, text := range moves {
		m, err := p.ParseMove(text)
		testutil.AssertNoError(t, err, text)
		testutil.AssertNoError(t, p.Make(m), text)
	}
	return p.FEN()
}

func mustParse(t *testing.T, fen, movetext string, cfg *config.Config) *Result {
	t.Helper()
	res, err := Parse(fen, movetext, cfg)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", movetext, err)
	}
	return res
}

func TestParse_Variation(t *testing.T) {
	res := mustParse(t, "", "1.e4 e5 (1...c5 2.Nf3) 2.Nf3", quietConfig())

	want := []Variation{
		{
			ID: 0, Parent: -1, ParentMove: 0, Plies: 3,
			Moves:    []Tuple{{52, 36, -1, -1}, {12, 28, -1, -1}, {62, 45, -1, -1}},
			StartFEN: engine.InitialFEN,
		},
		{
			ID: 1, Parent: 0, ParentMove: 1, Plies: 2,
			Moves:    []Tuple{{10, 26, -1, -1}, {62, 45, -1, -1}},
			StartFEN: fenAfter(t, "e4"),
		},
	}
	testutil.AssertEqual(t, res.Variations, want)
	testutil.AssertEqual(t, res.PlyCount, 3)
	testutil.AssertEqual(t, res.Final.FEN(), fenAfter(t, "e4", "e5", "Nf3"))
	testutil.AssertEqual(t, res.Initial.FEN(), engine.InitialFEN)

	wantNotation := "\n1." + anchor(0, 1, "e4") +
		"\n" + anchor(0, 2, "e5") +
		"\n(1... " + anchor(1, 1, "c5") +
		"\n2." + anchor(1, 2, "Nf3") + ")" +
		"\n2." + anchor(0, 3, "Nf3")
	testutil.AssertEqual(t, res.Notation, wantNotation)
}

func TestParse_SiblingAndNestedVariations(t *testing.T) {
	res := mustParse(t, "", "1.e4 (1.d4) (1.c4 c5 (1...e5)) e5", quietConfig())

	type shape struct{ ID, Parent, ParentMove, Plies int }
	var got []shape
	for _, v := range res.Variations {
		got = append(got, shape{v.ID, v.Parent, v.ParentMove, v.Plies})
	}
	testutil.AssertEqual(t, got, []shape{
		{0, -1, 0, 2},
		{1, 0, 0, 1},
		{2, 0, 0, 2},
		{3, 2, 1, 1},
	})
	testutil.AssertEqual(t, res.Variations[3].StartFEN, fenAfter(t, "c4"))

	// e5 follows a closed variation so it carries its move number.
	testutil.AssertContains(t, res.Notation, ")\n1... "+anchor(0, 2, "e5"))
	testutil.AssertContains(t, res.Notation, "\n(1."+anchor(1, 1, "d4")+")")
}

func TestParse_VariationBeforeFirstMove(t *testing.T) {
	res := mustParse(t, "", "(1.d4) 1.e4", quietConfig())
	testutil.AssertEqual(t, len(res.Variations), 2)
	testutil.AssertEqual(t, res.Variations[1].ParentMove, -1)
	testutil.AssertEqual(t, res.Variations[1].StartFEN, engine.InitialFEN)
	testutil.AssertEqual(t, res.PlyCount, 1)
}

func TestParse_SpecialMoveTuples(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		movetext string
		want     Tuple
	}{
		{"kingside castle", "", "1.e4 e5 2.Nf3 Nc6 3.Bc4 Bc5 4.O-O", Tuple{60, 62, 63, 61}},
		{"queenside castle", "r3k3/8/8/8/8/8/8/4K3 b q - 0 1", "1...O-O-O", Tuple{4, 2, 0, 3}},
		{"en passant", "", "1.e4 d5 2.e5 f5 3.exf6", Tuple{29, 21, 28, 21}},
		{"promotion", "2k5/4P3/8/8/8/8/8/4K3 w - - 0 1", "1.e8=Q+", Tuple{12, 4, -5, -1}},
		{"black underpromotion", "4k3/8/8/8/8/8/p7/4K3 b - - 0 1", "1...a1=N", Tuple{48, 56, -8, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustParse(t, tt.fen, tt.movetext, quietConfig())
			moves := res.Variations[0].Moves
			testutil.AssertEqual(t, moves[len(moves)-1], tt.want)
		})
	}
}

func TestParse_MoveNumbers(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 12"
	res := mustParse(t, fen, "12...e5 13.Nf3", quietConfig())
	testutil.AssertEqual(t, res.Notation, "\n12... "+anchor(0, 1, "e5")+"\n13."+anchor(0, 2, "Nf3"))
}

func TestParse_CommentsAndNAGs(t *testing.T) {
	res := mustParse(t, "", "1.e4 $1 {Best  <by>\ntest} 1...e5 $13 2.Nf3 $200 $14", quietConfig())
	want := "\n1." + anchor(0, 1, "e4") + "!" +
		"\n Best &lt;by&gt; test" +
		"\n1... " + anchor(0, 2, "e5") + " unclear" +
		"\n2." + anchor(0, 3, "Nf3") + "+="
	testutil.AssertEqual(t, res.Notation, want)
}

func TestParse_OutputOptions(t *testing.T) {
	movetext := "1.e4 {comment} $1 (1.d4 (1.c4) d5) e5"

	cfg := quietConfig()
	cfg.Output.KeepComments = false
	cfg.Output.KeepNAGs = false
	cfg.Output.KeepVariations = false
	res := mustParse(t, "", movetext, cfg)
	testutil.AssertEqual(t, len(res.Variations), 1)
	testutil.AssertEqual(t, res.PlyCount, 2)
	testutil.AssertNotContains(t, res.Notation, "comment")
	testutil.AssertNotContains(t, res.Notation, "(")
	testutil.AssertNotContains(t, res.Notation, "!")

	cfg = quietConfig()
	cfg.Output.Notation = engine.LAN
	res = mustParse(t, "", "1.e4 Nf6", cfg)
	testutil.AssertContains(t, res.Notation, ">e2e4<")
	testutil.AssertContains(t, res.Notation, ">Ng8f6<")
}

func TestParse_Results(t *testing.T) {
	tests := []struct {
		movetext  string
		wantPlies int
		wantVars  int
	}{
		{"1.e4 e5 1-0 2.Nf3", 2, 1},
		{"1.e4 e5 *", 2, 1},
		{"1.e4 (1.d4 0-1 d5) e5 1/2-1/2", 2, 2},
	}
	for _, tt := range tests {
		res := mustParse(t, "", tt.movetext, quietConfig())
		testutil.AssertEqual(t, res.PlyCount, tt.wantPlies, tt.movetext)
		testutil.AssertEqual(t, len(res.Variations), tt.wantVars, tt.movetext)
	}
	res := mustParse(t, "", "1.e4 (1.d4 0-1 d5) e5", quietConfig())
	testutil.AssertEqual(t, res.Variations[1].Plies, 2)
}

func TestParse_LenientSkipsBadTokens(t *testing.T) {
	for _, movetext := range []string{
		"1.e4 Zz9 e5",
		"1.e4 e4 e5",
		"1.e4 ) e5",
		"1.e4 @@ e5",
	} {
		res := mustParse(t, "", movetext, quietConfig())
		testutil.AssertEqual(t, res.PlyCount, 2, movetext)
		testutil.AssertEqual(t, res.Final.FEN(), fenAfter(t, "e4", "e5"), movetext)
	}
}

func TestParse_Strict(t *testing.T) {
	cfg := quietConfig()
	cfg.Parse.Strict = true

	_, err := Parse("", "1.e4 Zz9 e5", cfg)
	testutil.AssertErrorIs(t, err, errors.ErrUnparsableToken, "Is(ErrUnparsableToken)")
	testutil.AssertErrorIs(t, err, errors.ErrUnknownNotation, "Is(ErrUnknownNotation)")

	var te *errors.TokenError
	if !stderrors.As(err, &te) {
		t.Fatalf("error %v is not a *TokenError", err)
	}
	testutil.AssertEqual(t, te.Token, "Zz9")
	testutil.AssertEqual(t, te.Variation, 0)
	testutil.AssertEqual(t, te.Ply, 2)
}

func TestParse_CustomPolicy(t *testing.T) {
	var seen []string
	p := NewParser(quietConfig())
	p.Policy = func(e *errors.TokenError) error {
		seen = append(seen, e.Token)
		return nil
	}
	_, err := p.Parse("", "1.e4 (1.d4 Qq1) e5 ?? xyz")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, seen, []string{"Qq1", "xyz"})
}

func TestParse_Capacity(t *testing.T) {
	cfg := quietConfig()
	cfg.Parse.MaxVariations = 1
	_, err := Parse("", "1.e4 (1.d4) (1.c4) e5", cfg)
	testutil.AssertErrorIs(t, err, errors.ErrCapacityExceeded, "variation limit")

	cfg = quietConfig()
	cfg.Parse.MaxPlies = 2
	_, err = Parse("", "1.e4 e5 2.Nf3", cfg)
	testutil.AssertErrorIs(t, err, errors.ErrCapacityExceeded, "ply limit")
	var ge *errors.GameError
	testutil.AssertTrue(t, stderrors.As(err, &ge), "GameError")
}

func TestParse_MalformedFEN(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		movetext string
	}{
		{"garbage", "not a fen", "1.e4"},
		{"en passant square with no pawn to take", "4k3/8/8/4P3/8/8/8/4K3 w - d6 0 1", "1. Kd2 *"},
		{"black en passant square with no pawn to take", "4k3/8/8/8/4p3/8/8/4K3 b - d3 0 1", "1... Kd7 *"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.fen, tt.movetext, quietConfig())
			testutil.AssertTrue(t, res == nil, "nil result")
			testutil.AssertErrorIs(t, err, errors.ErrMalformedInput, "Is(ErrMalformedInput)")
		})
	}
}

func TestParse_LogsSkippedTokens(t *testing.T) {
	var log strings.Builder
	cfg := config.NewConfig()
	cfg.Verbosity = 2
	cfg.SetLog(&log)
	cfg.CurrentInputFile = "games.pgn"

	mustParse(t, "", "1.e4 Zz9", cfg)
	testutil.AssertContains(t, log.String(), `games.pgn: skipping variation 0, ply 2, token "Zz9"`)
}

func TestNAGText(t *testing.T) {
	tests := []struct {
		nag    int
		want   string
		wantOK bool
	}{
		{1, "!", true},
		{6, "?!", true},
		{13, " unclear", true},
		{18, "+-", true},
		{139, " severe time control pressure", true},
		{0, "", true},
		{140, "", false},
		{-1, "", false},
	}
	for _, tt := range tests {
		got, ok := NAGText(tt.nag)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NAGText(%d) = %q, %v; want %q, %v", tt.nag, got, ok, tt.want, tt.wantOK)
		}
	}
}
