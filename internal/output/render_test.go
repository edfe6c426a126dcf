package output

import (
	"testing"

	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/testutil"
	"github.com/lgbarn/pgn2web-go/internal/variation"
)

const scholarsMate = `[Event "Casual"]
[Site "?"]
[Date "????.??.??"]
[Round "3"]
[White "Fischer"]
[Black "Spassky"]
[Result "1-0"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 (3. Nf3 d6) 3... Nf6 4. Qxf7# 1-0
`

// renderTestGame reads the first game in pgn and renders it at index.
func renderTestGame(t *testing.T, pgn string, index int) *Rendered {
	t.Helper()
	game := testutil.MustParseGame(t, pgn)
	res, err := variation.Parse(game.FEN(), game.Movetext, testutil.QuietConfig())
	if err != nil {
		t.Fatalf("variation.Parse: %v", err)
	}
	return Render(index, game, res)
}

func outputConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := testutil.QuietConfig()
	cfg.Output.OutputFilename = t.TempDir() + "/games.html"
	return cfg
}

func TestRender(t *testing.T) {
	r := renderTestGame(t, scholarsMate, 4)

	testutil.AssertEqual(t, r.Index, 4)
	testutil.AssertEqual(t, r.InitialFEN, engine.InitialFEN)
	testutil.AssertEqual(t, r.PlyCount, 7)
	testutil.AssertEqual(t, r.Outcome, "checkmate")
	testutil.AssertEqual(t, len(r.Variations), 2)
	testutil.AssertEqual(t, r.TagOrder, []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"})
	testutil.AssertEqual(t, r.FinalFEN, "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")
	testutil.AssertContains(t, r.Notation, `id="v0m7">Qxf7#</a>`)
}

func TestRender_CopiesTags(t *testing.T) {
	game := testutil.MustParseGame(t, scholarsMate)
	res, err := variation.Parse("", game.Movetext, testutil.QuietConfig())
	testutil.AssertNoError(t, err)

	r := Render(0, game, res)
	game.SetTag("White", "Changed")
	testutil.AssertEqual(t, r.Tags["White"], "Fischer")
}

func TestRendered_HeaderAndResult(t *testing.T) {
	r := renderTestGame(t, scholarsMate, 0)

	testutil.AssertEqual(t, r.Header("White"), "Fischer")
	testutil.AssertEqual(t, r.Header("Site"), "")
	testutil.AssertEqual(t, r.Header("Date"), "")
	testutil.AssertEqual(t, r.Header("Annotator"), "")
	testutil.AssertEqual(t, r.Result(), "1-0")

	r.Tags = map[string]string{}
	testutil.AssertEqual(t, r.Result(), "*")
}

func TestRender_OngoingHasNoOutcome(t *testing.T) {
	r := renderTestGame(t, "[White \"A\"]\n\n1. d4 d5 *\n", 0)
	testutil.AssertEqual(t, r.Outcome, "")
	testutil.AssertEqual(t, r.PlyCount, 2)
}
