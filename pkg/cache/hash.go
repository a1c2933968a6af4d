package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of a save's bytes.
//
// Conversion keys start from the hash of the .bls content and artifact keys
// from the hash of the converted document, not from a path. A save copied
// to another directory is served from the cache; an edited one is converted
// again.
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// deriveKey builds "<stage>:<hex>" from a content hash and the options that
// shape the stage's output. The options are JSON-encoded, so adding a field
// to an options struct changes every key derived from it.
func deriveKey(stage, contentHash string, opts any) string {
	enc, _ := json.Marshal(opts)
	h := sha256.New()
	h.Write([]byte(contentHash))
	h.Write([]byte{0})
	h.Write(enc)
	return stage + ":" + hex.EncodeToString(h.Sum(nil))
}
