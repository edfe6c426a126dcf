package output

import (
	"bufio"
	_ "embed"
	"fmt"
	"html"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

//go:embed template.html
var defaultTemplate string

// credit is written before </body> when credits are enabled.
const credit = `<p class="credit">Generated by pgn2web-go</p>`

// Template is a page template. Lines containing an XML-like tag such as
// <moves/> are replaced by the tag's content; other lines are copied.
type Template struct {
	lines []string
}

// DefaultTemplate returns the built-in page template.
func DefaultTemplate() *Template {
	return parseTemplate(defaultTemplate)
}

// LoadTemplate reads a template file.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading template %s", path)
	}
	return parseTemplate(string(data)), nil
}

func parseTemplate(text string) *Template {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return &Template{lines: strings.Split(strings.TrimSuffix(text, "\n"), "\n")}
}

// page is the data substituted into a template for one game.
type page struct {
	game     *Rendered
	initial  *engine.Position
	gameList string
	pieceSet string
	credit   bool
}

// templateTag pairs a tag with the function writing its content.
type templateTag struct {
	name  string
	write func(w *bufio.Writer, p *page) error
}

// headerTag writes a header value on its own line, or nothing when the
// value is unknown.
func headerTag(name, tag, prefix string) templateTag {
	return templateTag{name: name, write: func(w *bufio.Writer, p *page) error {
		if value := p.game.Header(tag); value != "" {
			fmt.Fprintf(w, "%s%s\n", prefix, html.EscapeString(value))
		}
		return nil
	}}
}

// templateTags lists the tags in the order they are expanded when a line
// holds more than one.
var templateTags = []templateTag{
	headerTag("<black/>", "Black", ""),
	{"<board/>", func(w *bufio.Writer, p *page) error {
		return WriteBoard(w, p.initial, p.pieceSet)
	}},
	{"<current/>", func(w *bufio.Writer, p *page) error {
		return WriteInitialPosition(w, "board", p.initial)
	}},
	headerTag("<date/>", "Date", ""),
	headerTag("<event/>", "Event", ""),
	{"<gamelist/>", func(w *bufio.Writer, p *page) error {
		if p.gameList != "" {
			w.WriteString("<form><select onchange=\"window.location = this.value;\">\n")
			w.WriteString(p.gameList)
			w.WriteString("</select></form>\n")
		}
		return nil
	}},
	{"<initial/>", func(w *bufio.Writer, p *page) error {
		return WriteInitialPosition(w, "initial", p.initial)
	}},
	{"<moves/>", func(w *bufio.Writer, p *page) error {
		return WriteMovesJS(w, p.game.Variations)
	}},
	{"<notation/>", func(w *bufio.Writer, p *page) error {
		_, err := fmt.Fprintf(w, "%s\n", p.game.Notation)
		return err
	}},
	{"<pieceset/>", func(w *bufio.Writer, p *page) error {
		_, err := fmt.Fprintf(w, "var pieceSet = %q;\n", p.pieceSet)
		return err
	}},
	headerTag("<result/>", "Result", ""),
	headerTag("<round/>", "Round", "Round "),
	headerTag("<site/>", "Site", ""),
	{"<tags/>", writeTagTable},
	headerTag("<white/>", "White", ""),
}

// writeTagTable lists every header tag, sorted by name.
func writeTagTable(w *bufio.Writer, p *page) error {
	names := make([]string, 0, len(p.game.Tags))
	for name := range p.game.Tags {
		names = append(names, name)
	}
	sort.Strings(names)

	w.WriteString("<table class=\"tags\">\n")
	for _, name := range names {
		fmt.Fprintf(w, "<tr><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(name), html.EscapeString(p.game.Tags[name]))
	}
	w.WriteString("</table>\n")
	return nil
}

// execute writes the page for one game.
func (t *Template) execute(out io.Writer, p *page) error {
	w := bufio.NewWriter(out)
	for _, line := range t.lines {
		if p.credit && strings.Contains(line, "</body>") {
			w.WriteString(credit)
			w.WriteByte('\n')
		}
		if !strings.Contains(line, "/>") {
			w.WriteString(line)
			w.WriteByte('\n')
			continue
		}
		for _, tag := range templateTags {
			if !strings.Contains(line, tag.name) {
				continue
			}
			if err := tag.write(w, p); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}
