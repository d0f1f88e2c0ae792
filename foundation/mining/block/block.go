// Package block implements the block header model and the nonce search
// that finds a hash solving the proof of work puzzle.
package block

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashforge/miner/foundation/mining/hashing"
)

// Version is the protocol version stamped into every header.
const Version = 1

// ErrNonceExhausted is returned from Mine when the nonce bound is reached
// without finding a qualifying hash. The difficulty is too high for the
// configured bound. This is a recoverable condition, not a fault.
var ErrNonceExhausted = errors.New("difficulty too high for nonce bound")

// =============================================================================

// Header represents the information mined into the chain for each block.
// Only the nonce changes during a search; every other field is fixed when
// the header is constructed.
type Header struct {
	Version       uint16 `json:"version"`
	PrevBlockHash string `json:"prev_block_hash"` // Hash of the previous block, zeros for the genesis block.
	MerkleRoot    string `json:"merkle_root"`     // Merkle root of the transactions in this block.
	TimeStamp     uint64 `json:"timestamp"`       // Milliseconds since epoch when the header was constructed.
	Difficulty    uint   `json:"difficulty"`      // Number of leading 0's needed to solve the hash puzzle.
	Nonce         uint64 `json:"nonce"`           // Value identified to solve the hash puzzle.
	MinerID       string `json:"miner"`           // Identity of the miner performing the work.
}

// NewHeader constructs a header ready to be mined. The timestamp is fixed
// here and is not updated per nonce attempt.
func NewHeader(prevBlockHash string, merkleRoot string, difficulty uint, minerID string) Header {
	return Header{
		Version:       Version,
		PrevBlockHash: prevBlockHash,
		MerkleRoot:    merkleRoot,
		TimeStamp:     uint64(time.Now().UTC().UnixMilli()),
		Difficulty:    difficulty,
		Nonce:         0,
		MinerID:       minerID,
	}
}

// Serialize produces the deterministic encoding of the header that is
// hashed during the search. The pipe separator never occurs inside a
// field: hashes are hex, the numerics are digits, and miner ids are
// validated at the API boundary to an alphanumeric charset.
func (h Header) Serialize() string {
	return fmt.Sprintf("%d|%s|%s|%d|%d|%d|%s",
		h.Version, h.PrevBlockHash, h.MerkleRoot, h.TimeStamp, h.Difficulty, h.Nonce, h.MinerID)
}

// Hash returns the unique hash for the header.
func (h Header) Hash() string {
	return hashing.HashString(h.Serialize())
}

// isHashSolved checks the hash to make sure it complies with the POW
// rules. We need to match a difficulty number of 0's.
func isHashSolved(difficulty uint, hash string) bool {
	const match = "0000000000000000"

	if len(hash) != hashing.HashLen {
		return false
	}
	if difficulty > uint(len(match)) {
		difficulty = uint(len(match))
	}

	return hash[:difficulty] == match[:difficulty]
}

// Solved reports whether the header's current nonce produces a hash that
// satisfies the header's difficulty.
func (h Header) Solved() bool {
	return isHashSolved(h.Difficulty, h.Hash())
}

// =============================================================================

// Progress is a sample of an in-flight search, emitted at a fixed hash
// cadence. It is observational only and never affects the outcome.
type Progress struct {
	Hashes   uint64  `json:"hashes"`
	HashRate float64 `json:"hash_rate"`
	Nonce    uint64  `json:"nonce"`
	Hash     string  `json:"hash"`
}

// ProgressFunc receives progress samples during a search.
type ProgressFunc func(Progress)

// Outcome is the terminal result of one search.
type Outcome struct {
	Found    bool
	Header   Header
	Hash     string
	Elapsed  time.Duration
	Hashes   uint64
	HashRate float64
}

// Mine performs the nonce search for the specified header. The search
// starts at the header's current nonce and increments until a hash with
// the required leading zeros is found, the attempt bound is reached, or
// the context is cancelled. sampleEvery controls the progress cadence; a
// nil onProgress disables sampling.
func Mine(ctx context.Context, header Header, bound uint64, sampleEvery uint64, onProgress ProgressFunc) (Outcome, error) {
	start := time.Now()

	var hashes uint64
	for hashes < bound {
		if err := ctx.Err(); err != nil {
			elapsed := time.Since(start)
			return Outcome{
				Elapsed:  elapsed,
				Hashes:   hashes,
				HashRate: hashRate(hashes, elapsed),
			}, err
		}

		hash := header.Hash()
		hashes++

		if isHashSolved(header.Difficulty, hash) {
			elapsed := time.Since(start)
			return Outcome{
				Found:    true,
				Header:   header,
				Hash:     hash,
				Elapsed:  elapsed,
				Hashes:   hashes,
				HashRate: hashRate(hashes, elapsed),
			}, nil
		}

		if onProgress != nil && sampleEvery > 0 && hashes%sampleEvery == 0 {
			onProgress(Progress{
				Hashes:   hashes,
				HashRate: hashRate(hashes, time.Since(start)),
				Nonce:    header.Nonce,
				Hash:     hash,
			})
		}

		header.Nonce++
	}

	elapsed := time.Since(start)
	return Outcome{
		Elapsed:  elapsed,
		Hashes:   hashes,
		HashRate: hashRate(hashes, elapsed),
	}, ErrNonceExhausted
}

// hashRate computes hashes per second, guarding the zero elapsed case a
// fast search can produce.
func hashRate(hashes uint64, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(hashes) / secs
}
