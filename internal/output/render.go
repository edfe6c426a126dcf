// Package output renders converted games as interactive HTML pages or JSON.
package output

import (
	"golang.org/x/exp/maps"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/variation"
)

// Rendered is everything the page and JSON writers need for one game. It
// holds plain data so it can be cached between runs.
type Rendered struct {
	Index      int                   `json:"index"`
	Tags       map[string]string     `json:"tags"`
	TagOrder   []string              `json:"tagOrder,omitempty"`
	InitialFEN string                `json:"initialFEN"`
	FinalFEN   string                `json:"finalFEN"`
	PlyCount   int                   `json:"plyCount"`
	Outcome    string                `json:"outcome,omitempty"`
	Variations []variation.Variation `json:"variations"`
	Notation   string                `json:"notation"`
}

// Render collects a parsed game into a Rendered.
func Render(index int, game *chess.Game, res *variation.Result) *Rendered {
	r := &Rendered{
		Index:      index,
		Tags:       maps.Clone(game.Tags),
		TagOrder:   append([]string(nil), game.TagOrder...),
		InitialFEN: res.Initial.FEN(),
		FinalFEN:   res.Final.FEN(),
		PlyCount:   res.PlyCount,
		Variations: res.Variations,
		Notation:   res.Notation,
	}
	if r.Tags == nil {
		r.Tags = make(map[string]string)
	}
	if outcome := res.Final.Outcome(); outcome != chess.Ongoing {
		r.Outcome = outcome.String()
	}
	return r
}

// Header returns a tag value for display, blank when unknown.
func (r *Rendered) Header(name string) string {
	return chess.DisplayValue(r.Tags[name])
}

// Result returns the Result tag, or "*" when it is missing.
func (r *Rendered) Result() string {
	if result := r.Tags["Result"]; result != "" {
		return result
	}
	return chess.Unfinished
}
