// Package ledger maintains the balances credited from mined block
// records. It is the collaborator side of the engine's outbound contract.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hashforge/miner/foundation/mining/miner"
)

// ErrDuplicateBlock is returned when a block hash has already been
// credited.
var ErrDuplicateBlock = errors.New("block already credited")

// Ledger manages the balances for miners and the pool.
type Ledger struct {
	poolAccount string

	mu       sync.RWMutex
	balances map[string]uint64
	records  []miner.Record
	seen     map[string]struct{}
}

// New constructs a ledger crediting pool shares to the specified account.
func New(poolAccount string) *Ledger {
	return &Ledger{
		poolAccount: poolAccount,
		balances:    make(map[string]uint64),
		seen:        make(map[string]struct{}),
	}
}

// Credit applies a mined block record: the miner share goes to the mining
// account, the pool share to the pool account. Records are keyed by block
// hash; crediting the same block twice is rejected.
func (l *Ledger) Credit(record miner.Record) error {
	if record.Hash == "" {
		return errors.New("record missing block hash")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.seen[record.Hash]; exists {
		return fmt.Errorf("hash %s: %w", record.Hash, ErrDuplicateBlock)
	}

	l.seen[record.Hash] = struct{}{}
	l.records = append(l.records, record)
	l.balances[record.MinerID] += record.MinerShare
	l.balances[l.poolAccount] += record.PoolShare

	return nil
}

// Balance returns the balance for the specified account.
func (l *Ledger) Balance(account string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.balances[account]
}

// Balances returns a copy of all account balances, ordered by account for
// stable output.
func (l *Ledger) Balances() []AccountBalance {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]AccountBalance, 0, len(l.balances))
	for account, balance := range l.balances {
		out = append(out, AccountBalance{Account: account, Balance: balance})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Account < out[j].Account
	})

	return out
}

// Records returns a copy of the credited block records in arrival order.
func (l *Ledger) Records() []miner.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := make([]miner.Record, len(l.records))
	copy(records, l.records)

	return records
}

// AccountBalance pairs an account with its current balance.
type AccountBalance struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}
