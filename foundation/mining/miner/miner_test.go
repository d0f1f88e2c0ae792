package miner_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashforge/miner/foundation/mining/block"
	"github.com/hashforge/miner/foundation/mining/hashing"
	"github.com/hashforge/miner/foundation/mining/miner"
)

func TestSplitReward(t *testing.T) {
	split := miner.SplitReward(50)

	assert.Equal(t, uint64(50), split.Total)
	assert.Equal(t, uint64(16), split.MinerShare)
	assert.Equal(t, uint64(33), split.PoolShare)

	// One unit is lost to the independent floor divisions.
	assert.Equal(t, uint64(49), split.MinerShare+split.PoolShare)
}

func TestMineBlock(t *testing.T) {
	m := miner.New(miner.Config{
		Difficulty: 1,
		NonceBound: 100_000,
	})

	result, err := m.MineBlock(context.Background(), "miner1", nil)
	require.NoError(t, err)

	require.True(t, result.Found)
	assert.Equal(t, "0", result.Hash[:1])
	assert.Equal(t, hashing.ZeroHash, result.Header.PrevBlockHash)
	assert.Equal(t, "miner1", result.Header.MinerID)
	assert.Equal(t, uint(1), result.Header.Difficulty)
	assert.Equal(t, uint64(50), result.Reward.Total)
	assert.Equal(t, uint64(16), result.Reward.MinerShare)
	assert.Equal(t, uint64(33), result.Reward.PoolShare)

	stats := m.Stats()
	assert.Equal(t, uint64(1), stats.BlocksMined)
	assert.Equal(t, result.Hashes, stats.TotalHashes)

	// A fast block raises the difficulty by one.
	assert.Equal(t, uint(2), stats.Difficulty)

	// The next block chains off the winning hash.
	next, err := m.MineBlock(context.Background(), "miner1", nil)
	require.NoError(t, err)
	assert.Equal(t, result.Hash, next.Header.PrevBlockHash)
}

func TestMineBlockExhaustion(t *testing.T) {
	m := miner.New(miner.Config{
		Difficulty: 8,
		NonceBound: 10,
	})

	result, err := m.MineBlock(context.Background(), "miner1", nil)
	require.ErrorIs(t, err, block.ErrNonceExhausted)

	assert.False(t, result.Found)
	assert.Equal(t, uint64(10), result.Hashes)
	assert.Zero(t, result.Reward)

	stats := m.Stats()
	assert.Equal(t, uint64(0), stats.BlocksMined)
	assert.Equal(t, uint64(10), stats.TotalHashes)

	// Exhaustion never retargets.
	assert.Equal(t, uint(8), stats.Difficulty)
}

func TestMineBlockDrainsMempool(t *testing.T) {
	m := miner.New(miner.Config{
		Difficulty: 1,
		NonceBound: 100_000,
	})

	m.SubmitTx(block.Tx{ID: "1", From: "kennedy", To: "pavel", Value: 10})
	m.SubmitTx(block.Tx{ID: "2", From: "pavel", To: "edward", Value: 20})
	require.Equal(t, 2, m.MempoolCount())

	result, err := m.MineBlock(context.Background(), "miner1", nil)
	require.NoError(t, err)

	assert.NotEqual(t, result.Header.MerkleRoot, "")
	assert.Equal(t, 0, m.MempoolCount())
}

func TestStatsLifecycle(t *testing.T) {
	m := miner.New(miner.Config{Difficulty: 1})

	stats := m.Stats()
	assert.Equal(t, uint64(0), stats.TotalHashes)
	assert.Equal(t, uint64(0), stats.BlocksMined)
	assert.Equal(t, uint(1), stats.Difficulty)
	assert.Equal(t, uint64(miner.DefaultBlockReward), stats.BlockReward)
	assert.WithinDuration(t, time.Now().UTC(), stats.StartTime, time.Minute)
}
