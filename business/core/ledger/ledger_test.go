package ledger_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashforge/miner/business/core/ledger"
	"github.com/hashforge/miner/foundation/mining/miner"
)

func record(minerID, hash string, number uint64) miner.Record {
	split := miner.SplitReward(50)

	return miner.Record{
		MinerID:     minerID,
		BlockNumber: number,
		Hash:        hash,
		RewardTotal: split.Total,
		MinerShare:  split.MinerShare,
		PoolShare:   split.PoolShare,
	}
}

func TestCredit(t *testing.T) {
	l := ledger.New("pool")

	require.NoError(t, l.Credit(record("miner1", strings.Repeat("a", 64), 1)))
	require.NoError(t, l.Credit(record("miner1", strings.Repeat("b", 64), 2)))
	require.NoError(t, l.Credit(record("miner2", strings.Repeat("c", 64), 3)))

	assert.Equal(t, uint64(32), l.Balance("miner1"))
	assert.Equal(t, uint64(16), l.Balance("miner2"))
	assert.Equal(t, uint64(99), l.Balance("pool"))

	balances := l.Balances()
	require.Len(t, balances, 3)
	assert.Equal(t, "miner1", balances[0].Account)
	assert.Equal(t, "miner2", balances[1].Account)
	assert.Equal(t, "pool", balances[2].Account)

	assert.Len(t, l.Records(), 3)
}

func TestCreditDuplicate(t *testing.T) {
	l := ledger.New("pool")

	rec := record("miner1", strings.Repeat("a", 64), 1)
	require.NoError(t, l.Credit(rec))

	err := l.Credit(rec)
	require.ErrorIs(t, err, ledger.ErrDuplicateBlock)

	// The failed credit must not move balances.
	assert.Equal(t, uint64(16), l.Balance("miner1"))
	assert.Equal(t, uint64(33), l.Balance("pool"))
}

func TestCreditMissingHash(t *testing.T) {
	l := ledger.New("pool")

	err := l.Credit(miner.Record{MinerID: "miner1"})
	require.Error(t, err)
	assert.Zero(t, l.Balance("miner1"))
}
