package miner

// RewardSplit is the breakdown of a block reward between the miner and
// the pool.
type RewardSplit struct {
	Total      uint64 `json:"total"`
	MinerShare uint64 `json:"miner_share"`
	PoolShare  uint64 `json:"pool_share"`
}

// SplitReward splits the block reward using two independent floor
// divisions. The shares do not always sum back to the total: for 50 the
// pool gets 33, the miner 16, and one unit is lost to rounding. External
// consumers depend on these exact numbers, so the quirk is kept.
func SplitReward(total uint64) RewardSplit {
	return RewardSplit{
		Total:      total,
		MinerShare: total / 3,
		PoolShare:  total * 2 / 3,
	}
}
