package ledgergrp

// blockRecord is the payload the mining engine posts for each block it
// finds. Field set and numeric semantics follow the engine's outbound
// record contract.
type blockRecord struct {
	Miner       string  `json:"miner" validate:"required,minerid"`
	BlockNumber uint64  `json:"block_number" validate:"required"`
	Hash        string  `json:"hash" validate:"required,len=64,hexadecimal"`
	DurationMS  int64   `json:"duration_ms"`
	HashRate    float64 `json:"hash_rate"`
	RewardTotal uint64  `json:"reward_total" validate:"required"`
	MinerShare  uint64  `json:"miner_share"`
	PoolShare   uint64  `json:"pool_share"`
	TimeStamp   uint64  `json:"timestamp"`
}

type statusResponse struct {
	Status string `json:"status"`
}
