// Package merkle reduces an ordered list of transactions to a single root
// digest. The root is a pure function of the ordered list: reordering or
// changing any transaction changes the root.
package merkle

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/hashforge/miner/foundation/mining/hashing"
)

// emptyRootSeed is hashed to produce the root of a block that carries no
// transactions. An empty block still needs a well defined, non-zero root.
const emptyRootSeed = "empty"

// EmptyRoot returns the root digest for an empty transaction list.
func EmptyRoot() string {
	return hashing.HashString(emptyRootSeed)
}

// Root computes the merkle root for the specified ordered list of values.
// Each value is hashed over its canonical JSON encoding, then the hashes
// are pair-reduced level by level: parent = Hash(leftHex || rightHex). A
// level with an odd count pairs its last hash with itself.
func Root[T any](values []T) (string, error) {
	if len(values) == 0 {
		return EmptyRoot(), nil
	}

	level := make([]string, len(values))
	for i, value := range values {
		data, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("marshal value[%d]: %w", i, err)
		}
		level[i] = hashing.Hash(data)
	}

	for len(level) > 1 {
		next := make([]string, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]

			// Duplicate the last hash when the level has an odd count.
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}

			next = append(next, hashing.HashString(left+right))
		}
		level = next
	}

	return level[0], nil
}
