package variation

import (
	"fmt"
	"html"
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/errors"
	"github.com/lgbarn/pgn2web-go/internal/parser"
)

// Result is the parsed form of one game's movetext.
type Result struct {
	// Variations in flattened order; the main line is first.
	Variations []Variation

	// Notation is the annotated HTML notation stream.
	Notation string

	// Initial is the starting position, Final the position at the end of
	// the main line.
	Initial *engine.Position
	Final   *engine.Position

	// PlyCount is the number of half-moves in the main line.
	PlyCount int
}

// Parser turns movetext into a Result.
type Parser struct {
	cfg    *config.Config
	Policy TokenPolicy
}

// NewParser creates a parser using the policy selected by cfg.
// If cfg is nil, a default config is created.
func NewParser(cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{cfg: cfg, Policy: PolicyFor(cfg)}
}

// Parse parses movetext starting from fen, or the standard start position
// when fen is empty.
func Parse(fen, movetext string, cfg *config.Config) (*Result, error) {
	return NewParser(cfg).Parse(fen, movetext)
}

// walk holds the state of one parse.
type walk struct {
	cfg    *config.Config
	policy TokenPolicy
	tree   tree
	cur    *node
	out    strings.Builder

	// opened is set right after "(" so the next item stays on its line.
	opened bool
	// boundary is set after a comment or a closed variation.
	boundary bool
	// skipDepth counts open variations being dropped.
	skipDepth int
}

// Parse parses movetext starting from fen.
func (p *Parser) Parse(fen, movetext string) (*Result, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	start, err := engine.NewPosition(fen)
	if err != nil {
		return nil, err
	}
	start.SetHistoryLimit(p.cfg.Parse.MaxPlies)

	w := &walk{cfg: p.cfg, policy: p.Policy}
	if w.policy == nil {
		w.policy = PolicyFor(p.cfg)
	}
	w.cur = w.tree.add(-1, 0, start.Clone())

	tokens := parser.NewTokenizer(movetext)
	for done := false; !done; {
		tok := tokens.Next()
		if tok.Type == parser.EOFToken {
			break
		}
		done, err = w.token(tok)
		if err != nil {
			return nil, err
		}
	}
	if w.cur.id != 0 {
		p.cfg.Logf(2, "%d unterminated variations\n", w.depth())
	}

	root := w.tree.nodes[0]
	return &Result{
		Variations: w.tree.flatten(),
		Notation:   w.out.String(),
		Initial:    start,
		Final:      root.pos,
		PlyCount:   root.plies,
	}, nil
}

// token handles one token. It reports whether the parse is finished.
func (w *walk) token(tok parser.Token) (bool, error) {
	if w.skipDepth > 0 {
		switch tok.Type {
		case parser.RAVStart:
			w.skipDepth++
		case parser.RAVEnd:
			w.skipDepth--
		}
		return false, nil
	}

	switch tok.Type {
	case parser.CommentToken:
		if w.cfg.Output.KeepComments {
			w.out.WriteString("\n ")
			w.out.WriteString(html.EscapeString(strings.Join(strings.Fields(tok.Text), " ")))
			w.opened = false
			w.boundary = true
		}
	case parser.NAGToken:
		if w.cfg.Output.KeepNAGs {
			if text, ok := NAGText(tok.NAG); ok {
				w.out.WriteString(text)
			}
		}
	case parser.MoveNumber:
	case parser.RAVStart:
		if !w.cfg.Output.KeepVariations {
			w.skipDepth = 1
			return false, nil
		}
		return false, w.open()
	case parser.RAVEnd:
		if w.cur.parent < 0 {
			return false, w.reject(tok.Text, errors.ErrUnparsableToken)
		}
		w.out.WriteString(")")
		w.cur = w.tree.nodes[w.cur.parent]
		w.opened = false
		w.boundary = true
	case parser.TerminatingResult:
		// Results inside a variation are ignored.
		return w.cur.id == 0, nil
	case parser.MoveToken:
		return false, w.move(tok.Text)
	default:
		return false, w.reject(tok.Text, errors.ErrUnparsableToken)
	}
	return false, nil
}

// open starts a child variation of the current node. It replays from the
// position before the current node's last move.
func (w *walk) open() error {
	if limit := w.cfg.Parse.MaxVariations; limit > 0 && len(w.tree.nodes) > limit {
		return fmt.Errorf("more than %d variations: %w", limit, errors.ErrCapacityExceeded)
	}

	parent := w.cur
	pos := parent.pos.Clone()
	parentMove := parent.plies - 1
	if parent.plies > 0 {
		if err := pos.Undo(); err != nil {
			return err
		}
	}

	if !w.opened {
		w.out.WriteString("\n")
	}
	w.out.WriteString("(")
	w.cur = w.tree.add(parent.id, parentMove, pos)
	w.opened = true
	w.boundary = false
	return nil
}

// move resolves a move token against the current variation and plays it.
func (w *walk) move(text string) error {
	pos := w.cur.pos
	m, err := pos.ParseMove(text)
	if err != nil {
		return w.reject(text, err)
	}

	tuple := moveTuple(pos, m)
	written := pos.Format(m, w.cfg.Output.Notation)
	turn, number := pos.Turn(), pos.FullmoveNumber()
	if err := pos.Make(m); err != nil {
		return &errors.GameError{Err: err, PlyNum: w.cur.plies + 1, MoveText: text}
	}

	if !w.opened {
		w.out.WriteString("\n")
	}
	// "12.e4" but "12... e5": the ellipsis keeps its space, the white number
	// does not. Stylesheets and existing pages rely on this layout.
	if turn == chess.White {
		fmt.Fprintf(&w.out, "%d.", number)
	} else if w.cur.plies == 0 || w.boundary {
		fmt.Fprintf(&w.out, "%d... ", number)
	}
	w.cur.plies++
	fmt.Fprintf(&w.out, `<a class="move" href="javascript:jumpto(%d, %d);" id="v%dm%d">%s</a>`,
		w.cur.id, w.cur.plies, w.cur.id, w.cur.plies, html.EscapeString(written))

	w.cur.tuples = append(w.cur.tuples, tuple)
	w.opened = false
	w.boundary = false
	return nil
}

// reject hands an unusable token to the policy.
func (w *walk) reject(text string, cause error) error {
	err := cause
	if cause != errors.ErrUnparsableToken {
		err = fmt.Errorf("%w: %w", errors.ErrUnparsableToken, cause)
	}
	return w.policy(&errors.TokenError{
		Err:       err,
		Token:     text,
		Variation: w.cur.id,
		Ply:       w.cur.plies + 1,
	})
}

// depth returns how many variations are open below the main line.
func (w *walk) depth() int {
	d := 0
	for n := w.cur; n.parent >= 0; n = w.tree.nodes[n.parent] {
		d++
	}
	return d
}
