// Package diagram draws board diagrams of a position as SVG or PNG.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// Board colours.
const (
	LightSquare = "#f0d9b5"
	DarkSquare  = "#b58863"
)

// Options controls how a diagram is drawn.
type Options struct {
	// Size is the width and height of the image in pixels.
	Size int

	// Coordinates adds file letters and rank digits along the edges.
	Coordinates bool

	// Flipped draws the board from Black's side.
	Flipped bool
}

// DefaultOptions returns the options used for game pages.
func DefaultOptions() Options {
	return Options{Size: 360, Coordinates: true}
}

func (o Options) validate() error {
	if o.Size < 64 {
		return fmt.Errorf("diagram size %d below 64: %w", o.Size, errors.ErrInvalidConfig)
	}
	return nil
}

// squareSize returns the side of one square; the board fills the image
// and leftover pixels go to the right and bottom edges.
func (o Options) squareSize() int {
	return o.Size / 8
}

// origin returns the top-left pixel of a square.
func (o Options) origin(sq chess.Square) (x, y int) {
	col, row := sq.File(), sq.Row()
	if o.Flipped {
		col, row = 7-col, 7-row
	}
	s := o.squareSize()
	return col * s, row * s
}

// glyphs holds the Unicode chess symbols, white then black, by piece type.
var glyphs = [2][chess.NumPieceTypes]string{
	chess.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
	chess.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
}

// WriteSVG draws the position as an SVG document.
func WriteSVG(w io.Writer, p *engine.Position, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	canvas := svg.New(w)
	canvas.Start(opts.Size, opts.Size, fmt.Sprintf(`viewBox="0 0 %d %d"`, opts.Size, opts.Size))
	canvas.Title(p.FEN())
	writeSquares(canvas, opts)
	if opts.Coordinates {
		writeCoordinates(canvas, opts)
	}

	s := opts.squareSize()
	canvas.Gid("pieces")
	style := fmt.Sprintf("font-size:%dpx;text-anchor:middle;fill:#000000", s*3/4)
	for _, sq := range chess.AllSquares() {
		piece := p.PieceAt(sq)
		if !piece.IsPiece() {
			continue
		}
		x, y := opts.origin(sq)
		canvas.Text(x+s/2, y+s*4/5, glyphs[piece.Colour()][piece.Type()], style)
	}
	canvas.Gend()
	canvas.End()
	return nil
}

func writeSquares(canvas *svg.SVG, opts Options) {
	s := opts.squareSize()
	canvas.Gid("squares")
	for _, sq := range chess.AllSquares() {
		x, y := opts.origin(sq)
		canvas.Rect(x, y, s, s, "fill:"+squareColour(sq))
	}
	canvas.Gend()
}

// writeCoordinates labels the a-h files along the bottom edge and the
// ranks along the left edge, in the colour of the opposite square.
func writeCoordinates(canvas *svg.SVG, opts Options) {
	s := opts.squareSize()
	style := fmt.Sprintf("font-size:%dpx;font-family:sans-serif", max(s/5, 8))
	for i := 0; i < 8; i++ {
		file := chess.NewSquare(i, 0)
		if opts.Flipped {
			file = chess.NewSquare(i, 7)
		}
		x, y := opts.origin(file)
		canvas.Text(x+s-s/8, y+s-s/16, string(file.FileChar()),
			style+";text-anchor:end;fill:"+oppositeColour(file))

		rank := chess.NewSquare(0, i)
		if opts.Flipped {
			rank = chess.NewSquare(7, i)
		}
		x, y = opts.origin(rank)
		canvas.Text(x+s/16, y+s/4, string(rank.RankChar()),
			style+";fill:"+oppositeColour(rank))
	}
}

func isLight(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}

func squareColour(sq chess.Square) string {
	if isLight(sq) {
		return LightSquare
	}
	return DarkSquare
}

func oppositeColour(sq chess.Square) string {
	if isLight(sq) {
		return DarkSquare
	}
	return LightSquare
}
