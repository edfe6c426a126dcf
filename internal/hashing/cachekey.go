package hashing

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/pgn2web-go/internal/config"
)

// cacheVersion changes whenever the cached form of a game changes.
const cacheVersion = "pgn2web-render/1"

// CacheKey returns the key a converted game is cached under. It covers
// the starting position, the movetext and every option that changes the
// parse or the notation.
func CacheKey(fen, movetext string, cfg *config.Config) string {
	d := xxhash.New()
	field := func(s string) {
		d.WriteString(s)
		d.Write([]byte{0})
	}
	field(cacheVersion)
	field(fen)
	field(movetext)

	out := cfg.Output
	field(out.Notation.String())
	field(strconv.FormatBool(out.KeepNAGs))
	field(strconv.FormatBool(out.KeepComments))
	field(strconv.FormatBool(out.KeepVariations))

	parse := cfg.Parse
	field(strconv.FormatBool(parse.Strict))
	field(strconv.Itoa(parse.MaxPlies))
	field(strconv.Itoa(parse.MaxVariations))
	return fmt.Sprintf("%016x", d.Sum64())
}
