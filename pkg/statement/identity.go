package statement

import (
	"crypto/sha256"

	"github.com/privacyzk/core/pkg/curve"
)

const identityScalarDomainTag = "LIBP2P_PRIVACY_PEER_ID_SCALAR_V1"

// IdentityScalar derives the deterministic hidden scalar a peer uses as the
// witness "id" across all three statements. It is purely a function of the
// peer id string; it provides no anonymity by itself, only a stable handle
// that the blinding and the Merkle tree can hide. Two backends deriving the
// scalar for the same peer id always agree.
//
// Unlike the length-prefixed Fiat-Shamir transcript and ctx_hash
// derivation, this hashes a plain concatenation of the domain tag and the
// peer id, per the fixed form id = H_scalar(domain_tag || peer_id_utf8):
// there is only ever one field after the domain tag here, so there is no
// field-boundary ambiguity for length-prefixing to guard against, and a
// second implementation must match this exact byte layout to agree.
func IdentityScalar(peerID string) *curve.Scalar {
	digest := sha256.Sum256(append([]byte(identityScalarDomainTag), []byte(peerID)...))
	return curve.ReduceScalar(digest[:])
}
