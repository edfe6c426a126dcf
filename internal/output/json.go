package output

import (
	"golang.org/x/exp/maps"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/variation"
)

// JSONGame represents a converted game in JSON format.
type JSONGame struct {
	Tags       map[string]string     `json:"tags"`
	Result     string                `json:"result"`
	PlyCount   int                   `json:"plyCount"`
	InitialFEN string                `json:"initialFEN"`
	FinalFEN   string                `json:"finalFEN"`
	Outcome    string                `json:"outcome,omitempty"`
	Initial    [64]int               `json:"initial"`
	Variations []variation.Variation `json:"variations,omitempty"`
	Notation   string                `json:"notation,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a rendered game to JSON format.
func GameToJSON(r *Rendered) *JSONGame {
	jg := &JSONGame{
		Tags:       copyTags(r.Tags),
		Result:     r.Result(),
		PlyCount:   r.PlyCount,
		InitialFEN: r.InitialFEN,
		FinalFEN:   r.FinalFEN,
		Outcome:    r.Outcome,
		Variations: r.Variations,
		Notation:   r.Notation,
	}
	if initial, err := engine.NewPosition(r.InitialFEN); err == nil {
		jg.Initial = boardCodes(initial)
	}
	return jg
}

// copyTags copies game tags and ensures seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(chess.SevenTagRoster))
	maps.Copy(result, tags)
	for _, tag := range chess.SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}
