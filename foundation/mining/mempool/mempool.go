// Package mempool maintains the pool of transactions waiting to be mined
// into a block. Order of submission is preserved; the engine has no fees,
// so there is no selection strategy.
package mempool

import (
	"sync"

	"github.com/hashforge/miner/foundation/mining/block"
)

// Mempool represents a cache of transactions ordered by submission.
type Mempool struct {
	mu   sync.RWMutex
	pool []block.Tx
}

// New constructs a new mempool to manage pending transactions.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Add appends a transaction to the pool.
func (mp *Mempool) Add(tx block.Tx) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)
}

// PickAll returns a copy of the pending transactions in submission order.
// The pool is left untouched; a failed attempt must not lose them.
func (mp *Mempool) PickAll() []block.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	txs := make([]block.Tx, len(mp.pool))
	copy(txs, mp.pool)

	return txs
}

// Delete removes the transactions with the specified ids from the pool.
// Used once a block carrying them has been mined.
func (mp *Mempool) Delete(txs []block.Tx) {
	if len(txs) == 0 {
		return
	}

	mined := make(map[string]struct{}, len(txs))
	for _, tx := range txs {
		mined[tx.ID] = struct{}{}
	}

	mp.mu.Lock()
	defer mp.mu.Unlock()

	keep := mp.pool[:0]
	for _, tx := range mp.pool {
		if _, exists := mined[tx.ID]; !exists {
			keep = append(keep, tx)
		}
	}
	mp.pool = keep
}

// Truncate clears the pool entirely.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}
