// Package statement defines the shared proof envelope (ProofContext,
// ZKProof), its canonical CBOR encoding, and the static statement
// registry that dispatches verification by (type, version). The three
// concrete statement backends live in sibling packages
// (pkg/statement/membership, .../continuity, .../unlinkability) and
// register themselves here at init time.
package statement

import (
	"crypto/sha256"
	"encoding/binary"
	"sort"
)

// ProofContext binds a proof to a peer, session, arbitrary metadata, and a
// timestamp. Its canonical hash is folded into every challenge so that a
// proof generated under one context can never be replayed against another.
type ProofContext struct {
	PeerID    string
	SessionID string
	Metadata  map[string][]byte
	Timestamp uint64
}

// Hash canonicalizes the context by length-prefixed concatenation (map
// keys sorted ascending by raw byte sequence) and returns the SHA-256
// digest.
func (c *ProofContext) Hash() [32]byte {
	var buf []byte
	buf = appendField(buf, []byte(c.PeerID))
	buf = appendField(buf, []byte(c.SessionID))

	keys := make([]string, 0, len(c.Metadata))
	for k := range c.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(len(keys)))
	buf = append(buf, countBuf[:]...)
	for _, k := range keys {
		buf = appendField(buf, []byte(k))
		buf = appendField(buf, c.Metadata[k])
	}

	var tsBuf [8]byte
	binary.BigEndian.PutUint64(tsBuf[:], c.Timestamp)
	buf = append(buf, tsBuf[:]...)

	return sha256.Sum256(buf)
}

func appendField(dst, field []byte) []byte {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(field)))
	dst = append(dst, lenBuf[:]...)
	dst = append(dst, field...)
	return dst
}
