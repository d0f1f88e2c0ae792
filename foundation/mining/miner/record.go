package miner

import "time"

// Record is the structured report of a successfully mined block that is
// handed to external collaborators such as the ledger service. The engine
// guarantees the field set and numeric correctness; transport is the
// collaborator's concern.
type Record struct {
	MinerID     string  `json:"miner" validate:"required"`
	BlockNumber uint64  `json:"block_number" validate:"required"`
	Hash        string  `json:"hash" validate:"required,len=64"`
	DurationMS  int64   `json:"duration_ms"`
	HashRate    float64 `json:"hash_rate"`
	RewardTotal uint64  `json:"reward_total"`
	MinerShare  uint64  `json:"miner_share"`
	PoolShare   uint64  `json:"pool_share"`
	TimeStamp   uint64  `json:"timestamp"`
}

// NewRecord builds the outbound record for a mined block with the
// specified sequential block number.
func NewRecord(minerID string, blockNumber uint64, result Result) Record {
	return Record{
		MinerID:     minerID,
		BlockNumber: blockNumber,
		Hash:        result.Hash,
		DurationMS:  result.Elapsed.Milliseconds(),
		HashRate:    result.HashRate,
		RewardTotal: result.Reward.Total,
		MinerShare:  result.Reward.MinerShare,
		PoolShare:   result.Reward.PoolShare,
		TimeStamp:   uint64(time.Now().UTC().UnixMilli()),
	}
}
