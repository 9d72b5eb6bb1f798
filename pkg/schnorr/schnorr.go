// Package schnorr implements the non-interactive Schnorr proof of
// knowledge of a Pedersen commitment opening: the prover knows (v, r)
// such that C = v*G + r*H, without revealing v or r.
//
// This is a Fiat-Shamir-collapsed Sigma protocol, not an interactive
// exchange — Generate and Verify are each a single synchronous call, in
// the same spirit as github.com/backkem/matter/pkg/crypto/spake2p's
// stateful PAKE but without the multi-round handshake: there is no wire
// round trip left once the challenge is derived from the transcript
// instead of a network message.
package schnorr

import (
	"errors"

	"github.com/privacyzk/core/pkg/commitment"
	"github.com/privacyzk/core/pkg/curve"
	"github.com/privacyzk/core/pkg/transcript"
)

// ErrVerifyFailed covers every way Verify can fail: a challenge mismatch
// or the core Sigma equation not holding. The verifier never
// distinguishes these to the caller; there is no partial-success outcome.
// Decoding of proof fields happens in the statement packages, before
// Verify is called.
var ErrVerifyFailed = errors.New("schnorr: verification failed")

// Proof is (A, c, z_v, z_b): one announcement point, the challenge, and
// two scalar responses.
type Proof struct {
	A   *curve.Point
	C   *curve.Scalar
	Zv  *curve.Scalar
	Zb  *curve.Scalar
}

// Generate produces a non-interactive proof that the prover knows (v, r)
// opening commitment c, bound to domainSep and ctxHash. The nonces
// (rho_v, rho_b) are drawn fresh for every call so that no two proofs ever
// share a nonce; the caller's v and r are read but never retained by
// this package once Generate returns.
func Generate(params *commitment.Params, c *commitment.Commitment, v, r *curve.Scalar, domainSep, ctxHash []byte) (*Proof, error) {
	rhoV, rhoB, err := curve.RandomNonzeroScalarPair()
	if err != nil {
		return nil, err
	}

	a := curve.Add(curve.ScalarMult(rhoV, params.G), curve.ScalarMult(rhoB, params.H))

	challenge := buildTranscript(domainSep, params, c, a, ctxHash).Challenge()

	zv := rhoV.Add(challenge.Mul(v))
	zb := rhoB.Add(challenge.Mul(r))

	return &Proof{A: a, C: challenge, Zv: zv, Zb: zb}, nil
}

// Verify checks a Schnorr proof of opening against commitment c. The
// prover-supplied challenge p.C is used in the verification equation, but
// is compared against the independently recomputed challenge with a
// constant-time byte comparison before the equation result is trusted.
func Verify(params *commitment.Params, c *commitment.Commitment, p *Proof, domainSep, ctxHash []byte) error {
	recomputed := buildTranscript(domainSep, params, c, p.A, ctxHash).Challenge()
	if !transcript.ConstantTimeEqualScalar(p.C, recomputed) {
		return ErrVerifyFailed
	}

	lhs := curve.Add(curve.ScalarMult(p.Zv, params.G), curve.ScalarMult(p.Zb, params.H))
	rhs := curve.Add(p.A, curve.ScalarMult(p.C, c.Point()))
	if !lhs.Equal(rhs) {
		return ErrVerifyFailed
	}
	return nil
}

func buildTranscript(domainSep []byte, params *commitment.Params, c *commitment.Commitment, a *curve.Point, ctxHash []byte) *transcript.Builder {
	return transcript.New(domainSep).
		WritePoint(params.G).
		WritePoint(params.H).
		WritePoint(c.Point()).
		WritePoint(a).
		Write(ctxHash)
}
