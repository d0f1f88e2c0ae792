package block_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hashforge/miner/foundation/mining/block"
	"github.com/hashforge/miner/foundation/mining/hashing"
	"github.com/hashforge/miner/foundation/mining/merkle"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// fixedHeader returns a header with every field pinned so tests are
// reproducible run to run.
func fixedHeader(difficulty uint) block.Header {
	return block.Header{
		Version:       block.Version,
		PrevBlockHash: hashing.ZeroHash,
		MerkleRoot:    merkle.EmptyRoot(),
		TimeStamp:     1700000000000,
		Difficulty:    difficulty,
		Nonce:         0,
		MinerID:       "miner1",
	}
}

func TestSerializeDeterminism(t *testing.T) {
	t.Log("Given the need for header serialization to be deterministic.")
	{
		h1 := fixedHeader(3)
		h2 := fixedHeader(3)

		if h1.Serialize() != h2.Serialize() {
			t.Fatalf("\t%s\tShould serialize identical headers identically:\n%s\n%s", failed, h1.Serialize(), h2.Serialize())
		}
		t.Logf("\t%s\tShould serialize identical headers identically.", success)

		if h1.Hash() != h2.Hash() {
			t.Fatalf("\t%s\tShould hash identical headers identically.", failed)
		}
		t.Logf("\t%s\tShould hash identical headers identically.", success)
	}
}

func TestSerializeInjectivity(t *testing.T) {
	t.Log("Given the need for distinct headers to serialize distinctly.")
	{
		base := fixedHeader(3)

		variants := []block.Header{base, base, base, base, base, base, base}
		variants[0].Version = 2
		variants[1].PrevBlockHash = strings.Repeat("f", 64)
		variants[2].MerkleRoot = hashing.HashString("other")
		variants[3].TimeStamp++
		variants[4].Difficulty++
		variants[5].Nonce++
		variants[6].MinerID = "miner2"

		seen := map[string]int{base.Serialize(): -1}
		for i, v := range variants {
			s := v.Serialize()
			if prev, exists := seen[s]; exists {
				t.Fatalf("\t%s\tShould not collide: variant %d collides with %d", failed, i, prev)
			}
			seen[s] = i
		}
		t.Logf("\t%s\tShould not collide across single field changes.", success)
	}
}

func TestMineDifficultyZero(t *testing.T) {
	t.Log("Given a difficulty of zero, any hash qualifies immediately.")
	{
		out, err := block.Mine(context.Background(), fixedHeader(0), 1_000, 0, nil)
		if err != nil {
			t.Fatalf("\t%s\tShould mine without error: %v", failed, err)
		}
		t.Logf("\t%s\tShould mine without error.", success)

		if !out.Found {
			t.Fatalf("\t%s\tShould find a solution.", failed)
		}
		if out.Hashes != 1 {
			t.Fatalf("\t%s\tShould accept the first nonce: hashes %d", failed, out.Hashes)
		}
		if out.Header.Nonce != 0 {
			t.Fatalf("\t%s\tShould win with nonce 0: got %d", failed, out.Header.Nonce)
		}
		t.Logf("\t%s\tShould accept the first nonce.", success)
	}
}

func TestMineDifficultyOne(t *testing.T) {
	t.Log("Given a difficulty of one, a solution exists within a small bound.")
	{
		out, err := block.Mine(context.Background(), fixedHeader(1), 10_000, 0, nil)
		if err != nil {
			t.Fatalf("\t%s\tShould mine without error: %v", failed, err)
		}
		t.Logf("\t%s\tShould mine without error.", success)

		if !strings.HasPrefix(out.Hash, "0") {
			t.Fatalf("\t%s\tShould produce a hash starting with '0': got %s", failed, out.Hash)
		}
		t.Logf("\t%s\tShould produce a hash starting with '0'.", success)

		if !out.Header.Solved() {
			t.Fatalf("\t%s\tShould verify with the winning nonce.", failed)
		}
		t.Logf("\t%s\tShould verify with the winning nonce.", success)

		if out.Hashes == 0 || out.Hashes > 10_000 {
			t.Fatalf("\t%s\tShould report the attempt count: got %d", failed, out.Hashes)
		}
		t.Logf("\t%s\tShould report the attempt count.", success)
	}
}

func TestMineExhaustion(t *testing.T) {
	t.Log("Given an unreachable difficulty, the bound forces exhaustion.")
	{
		const bound = 10

		out, err := block.Mine(context.Background(), fixedHeader(16), bound, 0, nil)
		if !errors.Is(err, block.ErrNonceExhausted) {
			t.Fatalf("\t%s\tShould return ErrNonceExhausted: got %v", failed, err)
		}
		t.Logf("\t%s\tShould return ErrNonceExhausted.", success)

		if out.Found {
			t.Fatalf("\t%s\tShould not report success.", failed)
		}
		if out.Hashes != bound {
			t.Fatalf("\t%s\tShould spend exactly the bound: got %d, exp %d", failed, out.Hashes, bound)
		}
		t.Logf("\t%s\tShould spend exactly the bound.", success)

		if out.Header != (block.Header{}) {
			t.Fatalf("\t%s\tShould not carry a header.", failed)
		}
		t.Logf("\t%s\tShould not carry a header.", success)
	}
}

func TestMineProgressCadence(t *testing.T) {
	t.Log("Given a sampling cadence, progress is emitted every N hashes.")
	{
		var samples []block.Progress
		onProgress := func(p block.Progress) {
			samples = append(samples, p)
		}

		_, err := block.Mine(context.Background(), fixedHeader(16), 10, 2, onProgress)
		if !errors.Is(err, block.ErrNonceExhausted) {
			t.Fatalf("\t%s\tShould exhaust the bound: got %v", failed, err)
		}
		t.Logf("\t%s\tShould exhaust the bound.", success)

		if len(samples) != 5 {
			t.Fatalf("\t%s\tShould emit one sample per 2 hashes: got %d, exp 5", failed, len(samples))
		}
		t.Logf("\t%s\tShould emit one sample per 2 hashes.", success)

		for i, p := range samples {
			if exp := uint64(2 * (i + 1)); p.Hashes != exp {
				t.Fatalf("\t%s\tShould carry the cumulative hash count: got %d, exp %d", failed, p.Hashes, exp)
			}
			if p.Hash == "" {
				t.Fatalf("\t%s\tShould carry the candidate hash.", failed)
			}
		}
		t.Logf("\t%s\tShould carry cumulative counts and candidate hashes.", success)
	}
}

func TestMineCancellation(t *testing.T) {
	t.Log("Given a cancelled context, the search stops cooperatively.")
	{
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		out, err := block.Mine(ctx, fixedHeader(16), 1_000_000, 0, nil)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("\t%s\tShould return the context error: got %v", failed, err)
		}
		t.Logf("\t%s\tShould return the context error.", success)

		if out.Found {
			t.Fatalf("\t%s\tShould not report success.", failed)
		}
		t.Logf("\t%s\tShould not report success.", success)
	}
}
