package mempool_test

import (
	"testing"

	"github.com/hashforge/miner/foundation/mining/block"
	"github.com/hashforge/miner/foundation/mining/mempool"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestCRUD(t *testing.T) {
	txs := []block.Tx{
		{ID: "1", From: "kennedy", To: "pavel", Value: 10},
		{ID: "2", From: "pavel", To: "edward", Value: 20},
		{ID: "3", From: "edward", To: "kennedy", Value: 30},
	}

	t.Log("Given the need to manage pending transactions.")
	{
		mp := mempool.New()
		for _, tx := range txs {
			mp.Add(tx)
		}

		if mp.Count() != len(txs) {
			t.Fatalf("\t%s\tShould count all added transactions: got %d, exp %d", failed, mp.Count(), len(txs))
		}
		t.Logf("\t%s\tShould count all added transactions.", success)

		picked := mp.PickAll()
		for i, tx := range picked {
			if tx.ID != txs[i].ID {
				t.Fatalf("\t%s\tShould preserve submission order: got %s at %d, exp %s", failed, tx.ID, i, txs[i].ID)
			}
		}
		t.Logf("\t%s\tShould preserve submission order.", success)

		if mp.Count() != len(txs) {
			t.Fatalf("\t%s\tShould not drain the pool on pick: got %d", failed, mp.Count())
		}
		t.Logf("\t%s\tShould not drain the pool on pick.", success)

		mp.Delete(picked[:2])
		if mp.Count() != 1 {
			t.Fatalf("\t%s\tShould remove mined transactions: got %d, exp 1", failed, mp.Count())
		}
		if remaining := mp.PickAll(); remaining[0].ID != "3" {
			t.Fatalf("\t%s\tShould keep the unmined transaction: got %s", failed, remaining[0].ID)
		}
		t.Logf("\t%s\tShould remove mined transactions.", success)

		mp.Truncate()
		if mp.Count() != 0 {
			t.Fatalf("\t%s\tShould truncate the pool: got %d", failed, mp.Count())
		}
		t.Logf("\t%s\tShould truncate the pool.", success)
	}
}
