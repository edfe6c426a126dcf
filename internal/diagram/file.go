package diagram

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// Filename returns the diagram file written next to a game page:
// games0.html gives games0.svg or games0.png.
func Filename(page string, format config.DiagramFormat) string {
	base := strings.TrimSuffix(page, filepath.Ext(page))
	if format == config.PNGDiagram {
		return base + ".png"
	}
	return base + ".svg"
}

// Save writes the diagram of the position to path in the given format.
// NoDiagram writes nothing.
func Save(path string, p *engine.Position, format config.DiagramFormat, opts Options) error {
	var write func(io.Writer, *engine.Position, Options) error
	switch format {
	case config.SVGDiagram:
		write = WriteSVG
	case config.PNGDiagram:
		write = WritePNG
	default:
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := write(f, p, opts); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
