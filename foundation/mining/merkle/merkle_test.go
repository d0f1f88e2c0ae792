package merkle_test

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/hashforge/miner/foundation/mining/hashing"
	"github.com/hashforge/miner/foundation/mining/merkle"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

type tx struct {
	ID    string `json:"id"`
	From  string `json:"from"`
	To    string `json:"to"`
	Value uint64 `json:"value"`
}

// leafHash recomputes a leaf digest the way the package defines it so the
// table expectations are derived by hand, not by calling Root.
func leafHash(t *testing.T, v tx) string {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("\t%s\tShould marshal the leaf value: %v", failed, err)
	}

	return hashing.Hash(data)
}

func TestEmptyRoot(t *testing.T) {
	t.Log("Given the need to produce a root for an empty transaction list.")
	{
		root, err := merkle.Root[tx](nil)
		if err != nil {
			t.Fatalf("\t%s\tShould compute the root without error: %v", failed, err)
		}
		t.Logf("\t%s\tShould compute the root without error.", success)

		if exp := hashing.HashString("empty"); root != exp {
			t.Fatalf("\t%s\tShould equal the empty sentinel digest: got %s, exp %s", failed, root, exp)
		}
		t.Logf("\t%s\tShould equal the empty sentinel digest.", success)

		again, _ := merkle.Root[tx](nil)
		if again != root {
			t.Fatalf("\t%s\tShould be deterministic across calls: got %s, exp %s", failed, again, root)
		}
		t.Logf("\t%s\tShould be deterministic across calls.", success)
	}
}

func TestSingleRoot(t *testing.T) {
	t.Log("Given the need to produce a root for a single transaction.")
	{
		a := tx{ID: "1", From: "kennedy", To: "pavel", Value: 10}

		root, err := merkle.Root([]tx{a})
		if err != nil {
			t.Fatalf("\t%s\tShould compute the root without error: %v", failed, err)
		}
		t.Logf("\t%s\tShould compute the root without error.", success)

		if exp := leafHash(t, a); root != exp {
			t.Fatalf("\t%s\tShould equal the digest of the single leaf: got %s, exp %s", failed, root, exp)
		}
		t.Logf("\t%s\tShould equal the digest of the single leaf.", success)
	}
}

func TestOddRoot(t *testing.T) {
	t.Log("Given the need to duplicate the unpaired hash on an odd level.")
	{
		a := tx{ID: "1", From: "kennedy", To: "pavel", Value: 10}
		b := tx{ID: "2", From: "pavel", To: "edward", Value: 20}
		c := tx{ID: "3", From: "edward", To: "kennedy", Value: 30}

		ha := leafHash(t, a)
		hb := leafHash(t, b)
		hc := leafHash(t, c)

		// Level two pairs (a,b) and duplicates c with itself.
		hab := hashing.HashString(ha + hb)
		hcc := hashing.HashString(hc + hc)
		exp := hashing.HashString(hab + hcc)

		root, err := merkle.Root([]tx{a, b, c})
		if err != nil {
			t.Fatalf("\t%s\tShould compute the root without error: %v", failed, err)
		}
		t.Logf("\t%s\tShould compute the root without error.", success)

		if root != exp {
			t.Fatalf("\t%s\tShould match the hand computed reduction: got %s, exp %s", failed, root, exp)
		}
		t.Logf("\t%s\tShould match the hand computed reduction.", success)
	}
}

func TestRootOrderSensitivity(t *testing.T) {
	t.Log("Given the need for the root to depend on transaction order.")
	{
		a := tx{ID: "1", From: "kennedy", To: "pavel", Value: 10}
		b := tx{ID: "2", From: "pavel", To: "edward", Value: 20}

		root1, err := merkle.Root([]tx{a, b})
		if err != nil {
			t.Fatalf("\t%s\tShould compute the root without error: %v", failed, err)
		}
		root2, err := merkle.Root([]tx{b, a})
		if err != nil {
			t.Fatalf("\t%s\tShould compute the root without error: %v", failed, err)
		}
		t.Logf("\t%s\tShould compute the roots without error.", success)

		if root1 == root2 {
			t.Fatalf("\t%s\tShould produce different roots for different orders: both %s", failed, root1)
		}
		t.Logf("\t%s\tShould produce different roots for different orders.", success)
	}
}
