package output

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// GameWriter is the interface for writing converted games.
// Different implementations handle different output formats (HTML, JSON).
type GameWriter interface {
	// WriteGame writes a single game.
	WriteGame(r *Rendered) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// HTMLWriter writes one page per game next to the output file. In the
// frameset layout Close also writes the frameset index and a list page.
type HTMLWriter struct {
	cfg      *config.Config
	tmpl     *Template
	dir      string
	base     string
	gameList string
	games    []*chess.Game
	written  int
}

// NewHTMLWriter creates a writer for the given games. The games are only
// used to build the game list; pages are written by WriteGame.
func NewHTMLWriter(cfg *config.Config, games []*chess.Game) (*HTMLWriter, error) {
	tmpl := DefaultTemplate()
	if cfg.Output.Template != "" {
		var err error
		if tmpl, err = LoadTemplate(cfg.Output.Template); err != nil {
			return nil, err
		}
	}

	hw := &HTMLWriter{
		cfg:   cfg,
		tmpl:  tmpl,
		dir:   filepath.Dir(cfg.Output.OutputFilename),
		base:  filepath.Base(cfg.Output.OutputFilename),
		games: games,
	}
	if cfg.Output.Layout == config.Linked {
		hw.gameList = GameList(games, hw.base)
	}
	return hw, nil
}

// PagePath returns the file a game's page is written to.
func (hw *HTMLWriter) PagePath(index int) string {
	return filepath.Join(hw.dir, GameFilename(hw.base, index))
}

// WriteGame writes the page for one game.
func (hw *HTMLWriter) WriteGame(r *Rendered) error {
	initial, err := engine.NewPosition(r.InitialFEN)
	if err != nil {
		return err
	}

	path := hw.PagePath(r.Index)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	p := &page{
		game:     r,
		initial:  initial,
		gameList: hw.gameList,
		pieceSet: hw.cfg.Output.PieceSet,
		credit:   hw.cfg.Output.Credit,
	}
	if err := hw.tmpl.execute(f, p); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	hw.written++
	hw.cfg.Logf(2, "Wrote %s\n", path)
	return f.Close()
}

// Flush is a no-op: pages are written as they arrive.
func (hw *HTMLWriter) Flush() error {
	return nil
}

// Close writes the frameset index when that layout is selected.
func (hw *HTMLWriter) Close() error {
	if hw.cfg.Output.Layout != config.Frameset || hw.written == 0 {
		return nil
	}
	listName := listFilename(hw.base)
	if err := writeFile(filepath.Join(hw.dir, listName), func(w io.Writer) error {
		return writeListPage(w, hw.games, hw.base)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(hw.dir, hw.base), func(w io.Writer) error {
		return writeFrameset(w, listName, GameFilename(hw.base, 0))
	})
}

// listFilename returns the name of the frameset's list page.
func listFilename(base string) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-list" + ext
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}

func writeFrameset(w io.Writer, listPage, firstGame string) error {
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<title>pgn2web</title>
</head>
<frameset cols="25%%,75%%">
<frame src="%s" name="list">
<frame src="%s" name="game">
</frameset>
</html>
`, html.EscapeString(listPage), html.EscapeString(firstGame))
	return err
}

func writeListPage(w io.Writer, games []*chess.Game, base string) error {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<title>Games</title>\n</head>\n<body>\n")
	for i, g := range games {
		fmt.Fprintf(&sb, "<a href=\"%s\" target=\"game\">%s</a><br>\n",
			html.EscapeString(GameFilename(base, i)), html.EscapeString(gameLabel(g.White(), g.Black(), g.Date())))
	}
	sb.WriteString("</body>\n</html>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		games:  make([]*JSONGame, 0),
		single: false,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(r *Rendered) error {
	jsonGame := GameToJSON(r)
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonGame)
	}

	jw.games = append(jw.games, jsonGame)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})
	jw.cfg.Logf(2, "Wrote %d games as JSON\n", len(jw.games))

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
