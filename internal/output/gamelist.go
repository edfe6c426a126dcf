package output

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/chess"
)

// GameFilename returns the page name for game index: the index goes
// between the base name and its extension, so games.html gives
// games0.html, games1.html and so on.
func GameFilename(base string, index int) string {
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s%d%s", strings.TrimSuffix(base, ext), index, ext)
}

// gameLabel returns "White - Black Date" with unknown dates blanked.
func gameLabel(white, black, date string) string {
	return strings.TrimSpace(fmt.Sprintf("%s - %s %s", white, black, chess.DisplayValue(date)))
}

// GameListEntry returns the <option> line for one game.
func GameListEntry(url, white, black, date string) string {
	return fmt.Sprintf("<option value=\"%s\">%s\n", html.EscapeString(url),
		html.EscapeString(gameLabel(white, black, date)))
}

// GameList returns the option list for every game. Links use the base
// name of the output file so pages work from any directory.
func GameList(games []*chess.Game, outputFilename string) string {
	base := filepath.Base(outputFilename)
	var sb strings.Builder
	for i, g := range games {
		sb.WriteString(GameListEntry(GameFilename(base, i), g.White(), g.Black(), g.Date()))
	}
	return sb.String()
}
