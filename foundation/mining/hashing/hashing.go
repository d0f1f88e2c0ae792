// Package hashing provides the digest function used everywhere a block,
// transaction, or merkle node needs to be hashed.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
)

// ZeroHash represents a hash code of zeros. It is used as the previous
// block hash when mining the first block.
const ZeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

// HashLen is the length of a rendered hash in hex characters.
const HashLen = 64

// Hash returns the sha256 digest of the data as a 64 character lowercase
// hex string. It is defined for any input, including empty input.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashString is a convenience for hashing string data.
func HashString(s string) string {
	return Hash([]byte(s))
}
