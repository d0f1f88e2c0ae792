package hashing_test

import (
	"strings"
	"testing"

	"github.com/hashforge/miner/foundation/mining/hashing"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestHash(t *testing.T) {
	type table struct {
		name string
		data []byte
		want string
	}

	tt := []table{
		{
			name: "abc",
			data: []byte("abc"),
			want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name: "empty",
			data: nil,
			want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}

	t.Log("Given the need to hash arbitrary data.")
	{
		for i, tst := range tt {
			t.Logf("\tTest %d:\tWhen hashing %q.", i, tst.name)
			{
				got := hashing.Hash(tst.data)
				if got != tst.want {
					t.Fatalf("\t%s\tShould get the expected digest: got %s, exp %s", failed, got, tst.want)
				}
				t.Logf("\t%s\tShould get the expected digest.", success)

				if len(got) != hashing.HashLen {
					t.Fatalf("\t%s\tShould be %d characters long: got %d", failed, hashing.HashLen, len(got))
				}
				t.Logf("\t%s\tShould be %d characters long.", success, hashing.HashLen)

				if got != strings.ToLower(got) {
					t.Fatalf("\t%s\tShould be lowercase.", failed)
				}
				t.Logf("\t%s\tShould be lowercase.", success)
			}
		}
	}
}

func TestHashDeterminism(t *testing.T) {
	t.Log("Given the need for the digest to be deterministic.")
	{
		first := hashing.HashString("determinism")
		for i := 0; i < 10; i++ {
			if got := hashing.HashString("determinism"); got != first {
				t.Fatalf("\t%s\tShould produce identical digests on repeat calls: got %s, exp %s", failed, got, first)
			}
		}
		t.Logf("\t%s\tShould produce identical digests on repeat calls.", success)
	}
}

func TestZeroHash(t *testing.T) {
	if len(hashing.ZeroHash) != hashing.HashLen {
		t.Fatalf("%s\tZeroHash should be %d characters: got %d", failed, hashing.HashLen, len(hashing.ZeroHash))
	}
	if strings.Trim(hashing.ZeroHash, "0") != "" {
		t.Fatalf("%s\tZeroHash should be all zeros: got %s", failed, hashing.ZeroHash)
	}
}
