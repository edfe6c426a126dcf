package worker

import (
	stderrors "errors"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/errors"
	"github.com/lgbarn/pgn2web-go/internal/hashing"
	"github.com/lgbarn/pgn2web-go/internal/output"
	"github.com/lgbarn/pgn2web-go/internal/variation"
)

// Cache holds converted games between runs.
type Cache interface {
	Get(key string, v interface{}) error
	Put(key string, v interface{}) error
}

// Converter turns a game's movetext into a rendered game, reusing cached
// conversions when a cache is set.
type Converter struct {
	cfg   *config.Config
	cache Cache
}

// NewConverter creates a converter. cache may be nil.
func NewConverter(cfg *config.Config, cache Cache) *Converter {
	return &Converter{cfg: cfg, cache: cache}
}

// Process converts one game. It is safe for concurrent use.
func (c *Converter) Process(item WorkItem) ProcessResult {
	result := ProcessResult{Game: item.Game, Index: item.Index}
	fen := item.Game.FEN()

	var key string
	if c.cache != nil {
		key = hashing.CacheKey(fen, item.Game.Movetext, c.cfg)
		if r, sig, ok := c.lookup(key, item); ok {
			result.Rendered, result.Signature, result.FromCache = r, sig, true
			return result
		}
	}

	res, err := variation.NewParser(c.cfg).Parse(fen, item.Game.Movetext)
	if err != nil {
		result.Error = c.gameError(err, item)
		return result
	}
	result.Rendered = output.Render(item.Index, item.Game, res)
	result.Signature = hashing.Signature(res)

	if c.cache != nil {
		if err := c.cache.Put(key, result.Rendered); err != nil {
			c.cfg.Logf(1, "%s: cache write failed for game %d: %v\n", c.cfg.CurrentInputFile, item.Index+1, err)
		}
	}
	return result
}

// lookup returns a cached conversion. The tags and index come from the
// current input, since games with equal movetext share an entry.
func (c *Converter) lookup(key string, item WorkItem) (*output.Rendered, hashing.GameSignature, bool) {
	var r output.Rendered
	if err := c.cache.Get(key, &r); err != nil {
		if !stderrors.Is(err, errors.ErrCacheMiss) {
			c.cfg.Logf(1, "%s: cache read failed for game %d: %v\n", c.cfg.CurrentInputFile, item.Index+1, err)
		}
		return nil, hashing.GameSignature{}, false
	}
	sig, err := signatureOf(&r)
	if err != nil {
		c.cfg.Logf(1, "%s: discarding cached game %d: %v\n", c.cfg.CurrentInputFile, item.Index+1, err)
		return nil, hashing.GameSignature{}, false
	}

	r.Index = item.Index
	r.Tags = maps.Clone(item.Game.Tags)
	r.TagOrder = append([]string(nil), item.Game.TagOrder...)
	if r.Tags == nil {
		r.Tags = make(map[string]string)
	}
	return &r, sig, true
}

// gameError attaches the game's location to a conversion error.
func (c *Converter) gameError(err error, item WorkItem) error {
	var ge *errors.GameError
	if !stderrors.As(err, &ge) {
		ge = &errors.GameError{Err: err}
	}
	ge.GameNum = item.Index + 1
	ge.File = c.cfg.CurrentInputFile
	ge.Line = int(item.Game.StartLine)
	return ge
}

// signatureOf rebuilds a game's duplicate signature from its cached form.
func signatureOf(r *output.Rendered) (hashing.GameSignature, error) {
	final, err := engine.NewPosition(r.FinalFEN)
	if err != nil {
		return hashing.GameSignature{}, err
	}
	sig := hashing.GameSignature{Hash: final.Hash(), PlyCount: r.PlyCount}
	if len(r.Variations) > 0 {
		sig.MovesDigest = hashing.MovesDigest(r.Variations[0].Moves)
	}
	return sig, nil
}
