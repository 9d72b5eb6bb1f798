// Package transcript implements the length-prefixed Fiat-Shamir transform
// shared by every Sigma proof in this module: each field going into a
// challenge hash is prefixed with its own 4-byte big-endian length before
// concatenation, so that H(a||b) can never collide with H(a'||b') when a
// field boundary shifts.
package transcript

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"

	"github.com/privacyzk/core/pkg/curve"
)

// Builder accumulates length-prefixed fields for a single challenge hash.
type Builder struct {
	h []byte
}

// New starts a transcript, writing the domain separator as its first
// length-prefixed field.
func New(domainSeparator []byte) *Builder {
	b := &Builder{}
	b.Write(domainSeparator)
	return b
}

// Write appends a length-prefixed field to the transcript.
func (b *Builder) Write(field []byte) *Builder {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(field)))
	b.h = append(b.h, lenBuf[:]...)
	b.h = append(b.h, field...)
	return b
}

// WritePoint appends a point's SEC1 compressed encoding as a field.
func (b *Builder) WritePoint(p *curve.Point) *Builder {
	return b.Write(p.Encode())
}

// Challenge hashes the accumulated transcript with SHA-256 and reduces the
// digest modulo q: hash-derived scalars are always interpreted mod q.
// Unlike a canonical wire scalar, a challenge is never rejected for being
// numerically >= q before reduction;
// it is deterministically reduced instead, since both prover and verifier
// must recompute the identical value from the same transcript bytes.
func (b *Builder) Challenge() *curve.Scalar {
	digest := sha256.Sum256(b.h)
	return curve.ReduceScalar(digest[:])
}

// Bytes returns the raw accumulated transcript, for tests and vectors.
func (b *Builder) Bytes() []byte {
	out := make([]byte, len(b.h))
	copy(out, b.h)
	return out
}

// ConstantTimeEqualScalar compares the prover-supplied challenge against
// the verifier's recomputed challenge in constant time. This is the one
// comparison in the core required to run in constant time; scalar
// multiplication elsewhere uses whatever the curve library provides.
func ConstantTimeEqualScalar(a, b *curve.Scalar) bool {
	return subtle.ConstantTimeCompare(a.Bytes(), b.Bytes()) == 1
}
