package chess

import "strings"

// Game is one game as read from a PGN file: its header tags and the raw
// movetext, which the variation parser interprets later.
type Game struct {
	// Tags for this game (e.g., Event, Site, Date, White, Black, Result).
	Tags map[string]string

	// TagOrder lists tag names in the order they were read.
	TagOrder []string

	// Movetext holds the move section, lines joined with "\n".
	Movetext string

	// Line numbers of the start and end of the game in the input file.
	StartLine uint
	EndLine   uint
}

// NewGame creates a new empty game.
func NewGame() *Game {
	return &Game{
		Tags: make(map[string]string),
	}
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	g.ensureTags()
	if _, ok := g.Tags[name]; !ok {
		g.TagOrder = append(g.TagOrder, name)
	}
	g.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// ensureTags initializes the Tags map if it is nil.
func (g *Game) ensureTags() {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
}

// White returns the White player name.
func (g *Game) White() string {
	return g.GetTag("White")
}

// Black returns the Black player name.
func (g *Game) Black() string {
	return g.GetTag("Black")
}

// Result returns the game result.
func (g *Game) Result() string {
	return g.GetTag("Result")
}

// Event returns the event name.
func (g *Game) Event() string {
	return g.GetTag("Event")
}

// Site returns the site name.
func (g *Game) Site() string {
	return g.GetTag("Site")
}

// Date returns the date string.
func (g *Game) Date() string {
	return g.GetTag("Date")
}

// Round returns the round string.
func (g *Game) Round() string {
	return g.GetTag("Round")
}

// FEN returns the FEN string if present.
func (g *Game) FEN() string {
	return g.GetTag("FEN")
}

// HeaderValue returns a tag value for display: unknown markers such as "?"
// and "????.??.??" become the empty string.
func (g *Game) HeaderValue(name string) string {
	return DisplayValue(g.GetTag(name))
}

// DisplayValue blanks tag values that only mark something as unknown.
func DisplayValue(value string) string {
	value = strings.TrimSpace(value)
	if strings.Trim(value, "?.") == "" {
		return ""
	}
	return value
}
