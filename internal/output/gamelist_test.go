package output

import (
	"testing"

	"github.com/lgbarn/pgn2web-go/internal/testutil"
)

func TestGameFilename(t *testing.T) {
	tests := []struct {
		base  string
		index int
		want  string
	}{
		{"games.html", 0, "games0.html"},
		{"games.html", 12, "games12.html"},
		{"game.htm", 3, "game3.htm"},
		{"noext", 1, "noext1"},
		{"my.games.html", 2, "my.games2.html"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			testutil.AssertEqual(t, GameFilename(tt.base, tt.index), tt.want)
		})
	}
}

func TestGameListEntry(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		white string
		black string
		date  string
		want  string
	}{
		{
			name:  "full entry",
			url:   "games0.html",
			white: "Fischer",
			black: "Spassky",
			date:  "1972.07.11",
			want:  "<option value=\"games0.html\">Fischer - Spassky 1972.07.11\n",
		},
		{
			name:  "unknown date is dropped",
			url:   "games1.html",
			white: "Fischer",
			black: "Spassky",
			date:  "????.??.??",
			want:  "<option value=\"games1.html\">Fischer - Spassky\n",
		},
		{
			name:  "names are escaped",
			url:   "games2.html",
			white: "A & B",
			black: "<C>",
			date:  "",
			want:  "<option value=\"games2.html\">A &amp; B - &lt;C&gt;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, GameListEntry(tt.url, tt.white, tt.black, tt.date), tt.want)
		})
	}
}

func TestGameList(t *testing.T) {
	games := testutil.MustParseGames(t, `[White "A"]
[Black "B"]
[Date "2024.01.01"]

1. e4 *

[White "C"]
[Black "D"]

1. d4 *
`)

	want := "<option value=\"out0.html\">A - B 2024.01.01\n" +
		"<option value=\"out1.html\">C - D\n"
	testutil.AssertEqual(t, GameList(games, "/tmp/site/out.html"), want)
}
