// internal/pkg/ident/ident.go
package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Record ids are 18 crypto-random bytes hex-encoded: 36 characters, opaque,
// non-sequential, identical in shape to the ids already in the tables.

// Size is the length in characters of every generated identifier.
const Size = 36

// New returns a fresh identifier. The random source running dry is not a
// recoverable condition, so it panics rather than returning an error every
// caller would have to treat as fatal anyway.
func New() string {
	buf := make([]byte, Size/2)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("ident: random source unavailable: %v", err))
	}
	return hex.EncodeToString(buf)
}
