package diagram

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// Piece disc colours for raster diagrams.
var (
	whiteDisc = color.RGBA{0xff, 0xff, 0xff, 0xff}
	blackDisc = color.RGBA{0x20, 0x20, 0x20, 0xff}
)

// WritePNG draws the position as a PNG image. Pieces are discs marked
// with their English letter.
func WritePNG(w io.Writer, p *engine.Position, opts Options) error {
	img, err := Render(p, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Render rasterises the position.
func Render(p *engine.Position, opts Options) (*image.RGBA, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeShapes(&buf, p, opts)
	icon, err := oksvg.ReadIconStream(&buf, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(err, "parsing diagram")
	}

	size := opts.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	icon.SetTarget(0, 0, float64(size), float64(size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	drawLetters(img, p, opts)
	return img, nil
}

// writeShapes writes the SVG that is rasterised: squares plus one disc
// per piece. Text is drawn afterwards with a bitmap font.
func writeShapes(w io.Writer, p *engine.Position, opts Options) {
	s := opts.squareSize()
	canvas := svg.New(w)
	canvas.Start(opts.Size, opts.Size, fmt.Sprintf(`viewBox="0 0 %d %d"`, opts.Size, opts.Size))
	writeSquares(canvas, opts)

	canvas.Gid("pieces")
	for _, sq := range chess.AllSquares() {
		piece := p.PieceAt(sq)
		if !piece.IsPiece() {
			continue
		}
		fill := "#ffffff"
		if piece.Colour() == chess.Black {
			fill = "#202020"
		}
		x, y := opts.origin(sq)
		canvas.Circle(x+s/2, y+s/2, s*3/8,
			fmt.Sprintf("fill:%s;stroke:#000000;stroke-width:%d", fill, max(s/24, 1)))
	}
	canvas.Gend()
	canvas.End()
}

// drawLetters marks each disc with its piece letter and, when enabled,
// labels the board edges.
func drawLetters(img *image.RGBA, p *engine.Position, opts Options) {
	s := opts.squareSize()
	face := basicfont.Face7x13
	for _, sq := range chess.AllSquares() {
		piece := p.PieceAt(sq)
		if !piece.IsPiece() {
			continue
		}
		ink := blackDisc
		if piece.Colour() == chess.Black {
			ink = whiteDisc
		}
		x, y := opts.origin(sq)
		drawCentred(img, face, ink, string(piece.Type().Letter()), x+s/2, y+s/2)
	}

	if !opts.Coordinates {
		return
	}
	for i := 0; i < 8; i++ {
		file := chess.NewSquare(i, 0)
		rank := chess.NewSquare(0, i)
		if opts.Flipped {
			file, rank = chess.NewSquare(i, 7), chess.NewSquare(7, i)
		}
		x, y := opts.origin(file)
		drawText(img, face, inkFor(file), string(file.FileChar()), x+s-9, y+s-3)
		x, y = opts.origin(rank)
		drawText(img, face, inkFor(rank), string(rank.RankChar()), x+2, y+12)
	}
}

func inkFor(sq chess.Square) color.Color {
	if isLight(sq) {
		return color.RGBA{0xb5, 0x88, 0x63, 0xff}
	}
	return color.RGBA{0xf0, 0xd9, 0xb5, 0xff}
}

// drawCentred draws text centred on (cx, cy).
func drawCentred(img draw.Image, face font.Face, ink color.Color, text string, cx, cy int) {
	width := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	rise := (metrics.Ascent - metrics.Descent).Ceil() / 2
	drawText(img, face, ink, text, cx-width/2, cy+rise)
}

// drawText draws text with its baseline starting at (x, y).
func drawText(img draw.Image, face font.Face, ink color.Color, text string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
