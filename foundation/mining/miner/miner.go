// Package miner is the core API for the mining engine. A Miner owns the
// shared difficulty value, the pending transaction pool, and the process
// wide statistics accumulated across attempts.
package miner

import (
	"context"
	"sync"
	"time"

	"github.com/hashforge/miner/foundation/mining/block"
	"github.com/hashforge/miner/foundation/mining/difficulty"
	"github.com/hashforge/miner/foundation/mining/hashing"
	"github.com/hashforge/miner/foundation/mining/mempool"
	"github.com/hashforge/miner/foundation/mining/merkle"
)

// Default search settings matching the engine's reference behavior.
const (
	DefaultNonceBound  = 1_000_000_000
	DefaultSampleEvery = 100_000
	DefaultBlockReward = 50
)

// EventHandler defines a function that is called when events occur in the
// processing of mining blocks.
type EventHandler func(v string, args ...any)

// =============================================================================

// Result is the terminal outcome of one block attempt.
type Result struct {
	Found    bool          `json:"found"`
	Header   block.Header  `json:"header,omitempty"`
	Hash     string        `json:"hash,omitempty"`
	Elapsed  time.Duration `json:"elapsed"`
	Hashes   uint64        `json:"hashes"`
	HashRate float64       `json:"hash_rate"`
	Reward   RewardSplit   `json:"reward,omitempty"`
}

// Stats is the accumulated view of the miner across attempts. It is reset
// only by constructing a new Miner.
type Stats struct {
	TotalHashes  uint64    `json:"total_hashes"`
	BlocksMined  uint64    `json:"blocks_mined"`
	StartTime    time.Time `json:"start_time"`
	LastHashRate float64   `json:"last_hash_rate"`
	Difficulty   uint      `json:"difficulty"`
	BlockReward  uint64    `json:"block_reward"`
}

// =============================================================================

// Config represents the configuration required to construct a Miner.
type Config struct {
	Difficulty  uint
	NonceBound  uint64
	SampleEvery uint64
	BlockReward uint64
	EvHandler   EventHandler
}

// Miner manages mining attempts and the state shared between them. The
// difficulty is snapshotted at the start of an attempt and written back
// exactly once at its end; no two attempts overlap.
type Miner struct {
	nonceBound  uint64
	sampleEvery uint64
	blockReward uint64
	evHandler   EventHandler
	mempool     *mempool.Mempool
	startTime   time.Time

	mu           sync.Mutex
	difficulty   uint
	prevHash     string
	totalHashes  uint64
	blocksMined  uint64
	lastHashRate float64
}

// New constructs a Miner ready to mine blocks.
func New(cfg Config) *Miner {
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	if cfg.NonceBound == 0 {
		cfg.NonceBound = DefaultNonceBound
	}
	if cfg.SampleEvery == 0 {
		cfg.SampleEvery = DefaultSampleEvery
	}
	if cfg.BlockReward == 0 {
		cfg.BlockReward = DefaultBlockReward
	}

	return &Miner{
		nonceBound:  cfg.NonceBound,
		sampleEvery: cfg.SampleEvery,
		blockReward: cfg.BlockReward,
		evHandler:   ev,
		mempool:     mempool.New(),
		startTime:   time.Now().UTC(),
		difficulty:  difficulty.Clamp(cfg.Difficulty),
		prevHash:    hashing.ZeroHash,
	}
}

// SubmitTx adds a transaction to the pool of transactions waiting to be
// mined into the next block.
func (m *Miner) SubmitTx(tx block.Tx) {
	m.mempool.Add(tx)
	m.evHandler("miner: SubmitTx: tx[%s] added to mempool", tx.ID)
}

// MempoolCount returns the number of transactions waiting to be mined.
func (m *Miner) MempoolCount() int {
	return m.mempool.Count()
}

// MineBlock constructs a candidate block header for the specified miner
// identity and searches for a nonce that solves it. Progress samples are
// delivered to onProgress when non nil. On success the difficulty is
// retargeted from the observed mining time before the method returns, so
// the next attempt starts from the adjusted value.
func (m *Miner) MineBlock(ctx context.Context, minerID string, onProgress block.ProgressFunc) (Result, error) {
	m.mu.Lock()
	diff := m.difficulty
	prevHash := m.prevHash
	m.mu.Unlock()

	txs := m.mempool.PickAll()
	root, err := merkle.Root(txs)
	if err != nil {
		return Result{}, err
	}

	header := block.NewHeader(prevHash, root, diff, minerID)

	m.evHandler("miner: MineBlock: MINING: started: miner[%s] difficulty[%d] txs[%d]", minerID, diff, len(txs))
	defer m.evHandler("miner: MineBlock: MINING: completed")

	out, err := block.Mine(ctx, header, m.nonceBound, m.sampleEvery, onProgress)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalHashes += out.Hashes
	m.lastHashRate = out.HashRate

	if err != nil {
		m.evHandler("miner: MineBlock: MINING: no solution: hashes[%d] elapsed[%v]: %s", out.Hashes, out.Elapsed, err)

		return Result{
			Elapsed:  out.Elapsed,
			Hashes:   out.Hashes,
			HashRate: out.HashRate,
		}, err
	}

	m.blocksMined++
	m.prevHash = out.Hash
	m.difficulty = difficulty.Adjust(diff, out.Elapsed)
	m.mempool.Delete(txs)

	m.evHandler("miner: MineBlock: MINING: SOLVED: hash[%s] nonce[%d] hashes[%d] elapsed[%v] next-difficulty[%d]",
		out.Hash, out.Header.Nonce, out.Hashes, out.Elapsed, m.difficulty)

	return Result{
		Found:    true,
		Header:   out.Header,
		Hash:     out.Hash,
		Elapsed:  out.Elapsed,
		Hashes:   out.Hashes,
		HashRate: out.HashRate,
		Reward:   SplitReward(m.blockReward),
	}, nil
}

// Stats returns a snapshot of the accumulated mining statistics.
func (m *Miner) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Stats{
		TotalHashes:  m.totalHashes,
		BlocksMined:  m.blocksMined,
		StartTime:    m.startTime,
		LastHashRate: m.lastHashRate,
		Difficulty:   m.difficulty,
		BlockReward:  m.blockReward,
	}
}
