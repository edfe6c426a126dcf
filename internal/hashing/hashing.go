// Package hashing provides duplicate detection and cache keys for games.
package hashing

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/pgn2web-go/internal/variation"
)

// DuplicateDetector tracks seen games for duplicate game detection.
type DuplicateDetector struct {
	// hashTable stores signatures by final position hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also compares the move sequence, so transpositions
	// into the same final position are not duplicates
	useExactMatch bool
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	stored      int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// PlyCount is the number of half-moves in the main line
	PlyCount int
	// MovesDigest hashes the main line's move tuples
	MovesDigest uint64
}

// Signature returns the signature of a parsed game.
func Signature(res *variation.Result) GameSignature {
	sig := GameSignature{
		Hash:     res.Final.Hash(),
		PlyCount: res.PlyCount,
	}
	if len(res.Variations) > 0 {
		sig.MovesDigest = MovesDigest(res.Variations[0].Moves)
	}
	return sig
}

// MovesDigest hashes a sequence of move tuples.
func MovesDigest(moves []variation.Tuple) uint64 {
	d := xxhash.New()
	var buf [16]byte
	for _, t := range moves {
		for i, v := range t {
			binary.LittleEndian.PutUint32(buf[i*4:], uint32(int32(v)))
		}
		d.Write(buf[:])
	}
	return d.Sum64()
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate. Once the detector is full new
// signatures are checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.PlyCount != b.PlyCount {
		return false
	}
	return !d.useExactMatch || a.MovesDigest == b.MovesDigest
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.stored = 0
	d.duplicateCount = 0
}
