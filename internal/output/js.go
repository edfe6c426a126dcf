package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/variation"
)

// pieceImages names the board image for each piece code.
var pieceImages = [13]string{"sq", "wp", "wn", "wb", "wr", "wq", "wk", "bp", "bn", "bb", "br", "bq", "bk"}

// WriteMovesJS writes the flattened variations as JavaScript arrays:
// parents[id] = new Array(parent,parentMove); then moves[id] = new Array(...)
// holding the move tuples and a -1,-1,-1,-1 sentinel.
func WriteMovesJS(w io.Writer, vars []variation.Variation) error {
	bw := bufio.NewWriter(w)
	for _, v := range vars {
		fmt.Fprintf(bw, "parents[%d] = new Array(%d,%d);\n", v.ID, v.Parent, v.ParentMove)
		fmt.Fprintf(bw, "moves[%d] = new Array(", v.ID)
		for _, t := range v.Moves {
			fmt.Fprintf(bw, "%d,%d,%d,%d,", t[0], t[1], t[2], t[3])
		}
		s := variation.Sentinel
		fmt.Fprintf(bw, "%d,%d,%d,%d);\n", s[0], s[1], s[2], s[3])
	}
	return bw.Flush()
}

// boardCodes returns the piece code of every square, indexed col + 8*row
// with row 0 being rank 8.
func boardCodes(p *engine.Position) [64]int {
	var codes [64]int
	for _, sq := range chess.AllSquares() {
		codes[sq.RenderIndex()] = p.PieceAt(sq).Code()
	}
	return codes
}

// WriteInitialPosition writes var name = new Array(c0,...,c63); for the
// position's board.
func WriteInitialPosition(w io.Writer, name string, p *engine.Position) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "var %s = new Array(", name)
	for i, code := range boardCodes(p) {
		if i > 0 {
			bw.WriteByte(',')
		}
		fmt.Fprintf(bw, "%d", code)
	}
	bw.WriteString(");\n")
	return bw.Flush()
}

// PieceImage returns the image path for a square of the board print:
// dir/ plus "w" or "b" for the square colour, plus the piece name.
func PieceImage(dir string, renderIndex, code int) string {
	row, col := renderIndex/8, renderIndex%8
	shade := "b"
	if (row+col)%2 == 0 {
		shade = "w"
	}
	return dir + "/" + shade + pieceImages[code] + ".gif"
}

// WriteBoard writes the board as table rows of image cells with ids s0-s63.
func WriteBoard(w io.Writer, p *engine.Position, pieceSet string) error {
	bw := bufio.NewWriter(w)
	codes := boardCodes(p)
	for row := 0; row < 8; row++ {
		bw.WriteString("<tr>\n")
		for col := 0; col < 8; col++ {
			i := row*8 + col
			fmt.Fprintf(bw, "<td width=\"36\" height=\"36\"><img id=\"s%d\" src=\"%s\"></td>\n",
				i, PieceImage(pieceSet, i, codes[i]))
		}
		bw.WriteString("</tr>\n")
	}
	return bw.Flush()
}
