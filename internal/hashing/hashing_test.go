package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/variation"
)

func quietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	return cfg
}

func signatureOf(t *testing.T, movetext string) GameSignature {
	t.Helper()
	res, err := variation.Parse("", movetext, quietConfig())
	require.NoError(t, err)
	return Signature(res)
}

func TestSignature(t *testing.T) {
	sig := signatureOf(t, "1. e4 e5 2. Nf3 *")
	assert.Equal(t, 3, sig.PlyCount)
	assert.NotZero(t, sig.Hash)
	assert.NotZero(t, sig.MovesDigest)

	again := signatureOf(t, "1. e4 e5 2. Nf3 (2. Nc3) *")
	assert.Equal(t, sig, again, "variations do not change the signature")
}

func TestMovesDigest(t *testing.T) {
	a := []variation.Tuple{{52, 36, -1, -1}, {12, 28, -1, -1}}
	b := []variation.Tuple{{12, 28, -1, -1}, {52, 36, -1, -1}}

	assert.Equal(t, MovesDigest(a), MovesDigest(a))
	assert.NotEqual(t, MovesDigest(a), MovesDigest(b))
	assert.NotEqual(t, MovesDigest(a), MovesDigest(a[:1]))
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	sig := signatureOf(t, "1. e4 e5 2. Nf3 Nc6 *")

	assert.False(t, detector.CheckAndAdd(sig), "first game was marked as duplicate")
	assert.True(t, detector.CheckAndAdd(sig), "duplicate game was not detected")
	assert.Equal(t, 1, detector.DuplicateCount())
	assert.Equal(t, 1, detector.UniqueCount())
}

func TestDuplicateDetector_Transposition(t *testing.T) {
	first := signatureOf(t, "1. e4 e5 2. Nf3 Nc6 *")
	transposed := signatureOf(t, "1. Nf3 e5 2. e4 Nc6 *")
	require.Equal(t, first.Hash, transposed.Hash)
	require.NotEqual(t, first.MovesDigest, transposed.MovesDigest)

	loose := NewDuplicateDetector(false, 0)
	loose.CheckAndAdd(first)
	assert.True(t, loose.CheckAndAdd(transposed))

	exact := NewDuplicateDetector(true, 0)
	exact.CheckAndAdd(first)
	assert.False(t, exact.CheckAndAdd(transposed))
	assert.Equal(t, 2, exact.UniqueCount())
}

func TestDuplicateDetector_DifferentGames(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)

	assert.False(t, detector.CheckAndAdd(signatureOf(t, "1. e4 *")))
	assert.False(t, detector.CheckAndAdd(signatureOf(t, "1. d4 *")))
	assert.Equal(t, 0, detector.DuplicateCount())
	assert.Equal(t, 2, detector.UniqueCount())
}

func TestDuplicateDetector_PlyCountMustMatch(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	a := GameSignature{Hash: 42, PlyCount: 4}
	b := GameSignature{Hash: 42, PlyCount: 8}

	detector.CheckAndAdd(a)
	assert.False(t, detector.CheckAndAdd(b))
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 2)

	detector.CheckAndAdd(GameSignature{Hash: 1})
	assert.False(t, detector.IsFull())
	detector.CheckAndAdd(GameSignature{Hash: 2})
	assert.True(t, detector.IsFull())

	assert.False(t, detector.CheckAndAdd(GameSignature{Hash: 3}))
	assert.False(t, detector.CheckAndAdd(GameSignature{Hash: 3}), "full detector stores nothing new")
	assert.True(t, detector.CheckAndAdd(GameSignature{Hash: 1}), "stored games are still found")
	assert.Equal(t, 2, detector.UniqueCount())
}

func TestDuplicateDetector_Reset(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	sig := GameSignature{Hash: 7, PlyCount: 1}

	detector.CheckAndAdd(sig)
	detector.CheckAndAdd(sig)
	require.Equal(t, 1, detector.DuplicateCount())

	detector.Reset()
	assert.Equal(t, 0, detector.DuplicateCount())
	assert.Equal(t, 0, detector.UniqueCount())
	assert.False(t, detector.CheckAndAdd(sig))
}

func TestCacheKey(t *testing.T) {
	cfg := quietConfig()
	key := CacheKey("", "1. e4 *", cfg)

	assert.Len(t, key, 16)
	assert.Equal(t, key, CacheKey("", "1. e4 *", cfg))
	assert.NotEqual(t, key, CacheKey("", "1. d4 *", cfg))
	assert.NotEqual(t, key, CacheKey("8/8/8/8/8/8/8/K6k w - - 0 1", "1. e4 *", cfg))

	cfg.Output.KeepComments = false
	assert.NotEqual(t, key, CacheKey("", "1. e4 *", cfg))

	cfg = quietConfig()
	cfg.Parse.Strict = true
	assert.NotEqual(t, key, CacheKey("", "1. e4 *", cfg))

	cfg = quietConfig()
	cfg.Output.PieceSet = "other"
	assert.Equal(t, key, CacheKey("", "1. e4 *", cfg), "page-only options do not change the key")
}

func TestCacheKey_FieldBoundaries(t *testing.T) {
	cfg := quietConfig()
	assert.NotEqual(t, CacheKey("ab", "c", cfg), CacheKey("a", "bc", cfg))
}
