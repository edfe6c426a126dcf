package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/testutil"
)

func executeTemplate(t *testing.T, text string, p *page) string {
	t.Helper()
	var buf bytes.Buffer
	if err := parseTemplate(text).execute(&buf, p); err != nil {
		t.Fatalf("execute: %v", err)
	}
	return buf.String()
}

func testPage(t *testing.T) *page {
	t.Helper()
	return &page{
		game:     renderTestGame(t, scholarsMate, 0),
		initial:  engine.NewInitialPosition(),
		pieceSet: "images",
	}
}

func TestTemplate_HeaderTags(t *testing.T) {
	text := "<html>\n<white/>\n<black/>\n<site/>\n<date/>\n<round/>\n<event/>\n<result/>\n</html>\n"
	got := executeTemplate(t, text, testPage(t))

	want := "<html>\nFischer\nSpassky\nRound 3\nCasual\n1-0\n</html>\n"
	testutil.AssertEqual(t, got, want)
}

func TestTemplate_ScriptTags(t *testing.T) {
	text := "<script>\n<moves/>\n<initial/>\n<current/>\n<pieceset/>\n</script>\n"
	got := executeTemplate(t, text, testPage(t))

	testutil.AssertContains(t, got, "parents[0] = new Array(-1,0);\n")
	testutil.AssertContains(t, got, "parents[1] = new Array(0,4);\n")
	testutil.AssertContains(t, got, "var initial = new Array(10,8,9,11,12,9,8,10,")
	testutil.AssertContains(t, got, "var board = new Array(10,8,9,11,12,9,8,10,")
	testutil.AssertContains(t, got, "var pieceSet = \"images\";\n")
	testutil.AssertTrue(t, strings.HasPrefix(got, "<script>\n"), "plain lines are copied")
}

func TestTemplate_BoardNotationAndTags(t *testing.T) {
	p := testPage(t)
	got := executeTemplate(t, "<table>\n<board/>\n</table>\n<notation/>\n<tags/>\n", p)

	testutil.AssertEqual(t, strings.Count(got, "<img "), 64)
	testutil.AssertContains(t, got, p.game.Notation+"\n")
	testutil.AssertContains(t, got, "<tr><td>Black</td><td>Spassky</td></tr>\n<tr><td>Date</td>")
	testutil.AssertContains(t, got, "<tr><td>White</td><td>Fischer</td></tr>\n</table>\n")
}

func TestTemplate_GameList(t *testing.T) {
	p := testPage(t)

	got := executeTemplate(t, "<gamelist/>\n", p)
	testutil.AssertEqual(t, got, "", "empty list writes nothing")

	p.gameList = GameListEntry("games0.html", "A", "B", "")
	got = executeTemplate(t, "<gamelist/>\n", p)
	testutil.AssertContains(t, got, "<select onchange=")
	testutil.AssertContains(t, got, "<option value=\"games0.html\">A - B\n</select></form>\n")
}

func TestTemplate_Credit(t *testing.T) {
	p := testPage(t)
	text := "<body>\n</body>\n"

	testutil.AssertEqual(t, executeTemplate(t, text, p), text)

	p.credit = true
	testutil.AssertEqual(t, executeTemplate(t, text, p), "<body>\n"+credit+"\n</body>\n")
}

func TestDefaultTemplate(t *testing.T) {
	p := testPage(t)
	p.credit = true
	got := executeTemplate(t, defaultTemplate, p)

	testutil.AssertContains(t, got, "function jumpto(")
	testutil.AssertContains(t, got, "moves[1] = new Array(")
	testutil.AssertContains(t, got, credit)
	testutil.AssertNotContains(t, got, "<moves/>")
	testutil.AssertNotContains(t, got, "<notation/>")
	testutil.AssertNotContains(t, got, "<board/>")
}

func TestLoadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<h1>\r\n<white/>\r\n</h1>\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tmpl, err := LoadTemplate(path)
	testutil.AssertNoError(t, err)

	var buf bytes.Buffer
	testutil.AssertNoError(t, tmpl.execute(&buf, testPage(t)))
	testutil.AssertEqual(t, buf.String(), "<h1>\nFischer\n</h1>\n")
}

func TestLoadTemplate_Missing(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "missing.html"))
	testutil.AssertError(t, err)
}
