package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// readerState tracks which part of a game the reader is in.
type readerState int

const (
	betweenGames readerState = iota
	inHeader
	afterHeader
	inMovetext
)

// Reader splits PGN input into games: header tags plus raw movetext.
// The movetext is not interpreted here.
type Reader struct {
	reader  *bufio.Reader
	cfg     *config.Config
	lineNum uint

	// pending holds a tag line that ended the previous game.
	pending    string
	hasPending bool
	eof        bool
	err        error
}

// NewReader creates a new reader for the given input.
// If cfg is nil, a default config is created.
func NewReader(r io.Reader, cfg *config.Config) *Reader {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Reader{
		reader: bufio.NewReader(r),
		cfg:    cfg,
	}
}

// readLine returns the next line without its terminator.
func (r *Reader) readLine() (string, bool) {
	if r.hasPending {
		r.hasPending = false
		return r.pending, true
	}
	if r.eof {
		return "", false
	}
	line, err := r.reader.ReadString('\n')
	if err != nil {
		r.eof = true
		if err != io.EOF {
			r.err = err
		}
		if len(line) == 0 {
			return "", false
		}
	}
	r.lineNum++
	return strings.TrimRight(line, "\r\n"), true
}

// unreadLine pushes a line back for the next game.
func (r *Reader) unreadLine(line string) {
	r.pending = line
	r.hasPending = true
}

// ReadGame reads a single game from the input.
// Returns nil if no more games are available.
//
// A game is a run of tag lines followed by movetext. It ends at the next
// tag line outside a comment once the header is closed, or at EOF.
// Malformed tag lines are reported to the log and skipped.
func (r *Reader) ReadGame() (*chess.Game, error) {
	game := chess.NewGame()
	state := betweenGames
	inComment := false
	var movetext []string

	for {
		line, ok := r.readLine()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)

		if !inComment && strings.HasPrefix(trimmed, "[") {
			if state == afterHeader || state == inMovetext {
				r.unreadLine(line)
				break
			}
			if state == betweenGames {
				game.StartLine = r.lineNum
			}
			state = inHeader
			r.readTags(game, trimmed)
			continue
		}

		if trimmed == "" && !inComment {
			if state == inHeader {
				state = afterHeader
			}
			if state == inMovetext {
				movetext = append(movetext, line)
			}
			continue
		}

		if state == betweenGames {
			game.StartLine = r.lineNum
		}
		if state != inMovetext && strings.HasPrefix(line, "%") {
			continue
		}
		state = inMovetext
		inComment = scanComment(line, inComment)
		movetext = append(movetext, line)
	}

	if r.err != nil {
		return nil, errors.Wrapf(r.err, "reading line %d", r.lineNum+1)
	}
	if state == betweenGames {
		return nil, nil
	}
	if inComment {
		r.cfg.Logf(1, "%s: missing end of comment in game starting on line %d.\n",
			r.cfg.CurrentInputFile, game.StartLine)
	}
	game.Movetext = strings.TrimSpace(strings.Join(movetext, "\n"))
	game.EndLine = r.lineNum
	if r.hasPending {
		game.EndLine--
	}
	return game, nil
}

// readTags adds the tags on one header line to the game.
func (r *Reader) readTags(game *chess.Game, line string) {
	pairs, err := ParseTagLine(line)
	for _, pair := range pairs {
		game.SetTag(pair.Name, pair.Value)
	}
	if err != nil {
		if pe, ok := err.(*errors.ParseError); ok {
			pe.File = r.cfg.CurrentInputFile
			pe.Line = int(r.lineNum)
		}
		r.cfg.Logf(1, "%v\n", err)
	}
}

// scanComment tracks brace comments across a movetext line and returns
// whether the line ends inside one. Text after ";" is a line comment.
func scanComment(line string, inComment bool) bool {
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case inComment:
			if c == '}' {
				inComment = false
			}
		case c == '{':
			inComment = true
		case c == ';':
			return false
		}
	}
	return inComment
}

// ReadAll reads all games from the input.
func (r *Reader) ReadAll() ([]*chess.Game, error) {
	// Pre-allocate with reasonable initial capacity to reduce reallocations
	games := make([]*chess.Game, 0, 100)

	for {
		game, err := r.ReadGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			break
		}
		games = append(games, game)
	}

	return games, nil
}
