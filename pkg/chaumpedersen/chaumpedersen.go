// Package chaumpedersen implements the Chaum-Pedersen equality proof: the
// prover knows (id, r1, r2) such that C1 = id*G + r1*H and C2 = id*G + r2*H
// — i.e. the two commitments share the same hidden scalar — without
// revealing id, r1, or r2.
package chaumpedersen

import (
	"errors"

	"github.com/privacyzk/core/pkg/commitment"
	"github.com/privacyzk/core/pkg/curve"
	"github.com/privacyzk/core/pkg/transcript"
)

// ErrVerifyFailed is returned for any equation mismatch or challenge
// mismatch; see schnorr.ErrVerifyFailed for the same "no partial success"
// rationale.
var ErrVerifyFailed = errors.New("chaumpedersen: verification failed")

// Proof is (A1, A2, c, z_id, z_1, z_2): two announcements under a single
// shared challenge, and three responses. z_id is the response that binds
// both equations to the same hidden scalar.
type Proof struct {
	A1, A2     *curve.Point
	C          *curve.Scalar
	Zid, Z1, Z2 *curve.Scalar
}

// Generate proves that C1 and C2 both open (under r1 and r2 respectively)
// to the same hidden scalar id.
func Generate(params *commitment.Params, c1, c2 *commitment.Commitment, id, r1, r2 *curve.Scalar, domainSep, ctxHash []byte) (*Proof, error) {
	rhoID, rhoB1, err := curve.RandomNonzeroScalarPair()
	if err != nil {
		return nil, err
	}
	rhoB2, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}

	a1 := curve.Add(curve.ScalarMult(rhoID, params.G), curve.ScalarMult(rhoB1, params.H))
	a2 := curve.Add(curve.ScalarMult(rhoID, params.G), curve.ScalarMult(rhoB2, params.H))

	challenge := buildTranscript(domainSep, c1, c2, a1, a2, ctxHash).Challenge()

	zid := rhoID.Add(challenge.Mul(id))
	z1 := rhoB1.Add(challenge.Mul(r1))
	z2 := rhoB2.Add(challenge.Mul(r2))

	return &Proof{A1: a1, A2: a2, C: challenge, Zid: zid, Z1: z1, Z2: z2}, nil
}

// Verify checks both Sigma equations and the constant-time challenge
// comparison. Both equations must hold: a proof that only satisfies one is
// rejected exactly like a proof that satisfies neither.
func Verify(params *commitment.Params, c1, c2 *commitment.Commitment, p *Proof, domainSep, ctxHash []byte) error {
	recomputed := buildTranscript(domainSep, c1, c2, p.A1, p.A2, ctxHash).Challenge()
	if !transcript.ConstantTimeEqualScalar(p.C, recomputed) {
		return ErrVerifyFailed
	}

	lhs1 := curve.Add(curve.ScalarMult(p.Zid, params.G), curve.ScalarMult(p.Z1, params.H))
	rhs1 := curve.Add(p.A1, curve.ScalarMult(p.C, c1.Point()))
	if !lhs1.Equal(rhs1) {
		return ErrVerifyFailed
	}

	lhs2 := curve.Add(curve.ScalarMult(p.Zid, params.G), curve.ScalarMult(p.Z2, params.H))
	rhs2 := curve.Add(p.A2, curve.ScalarMult(p.C, c2.Point()))
	if !lhs2.Equal(rhs2) {
		return ErrVerifyFailed
	}
	return nil
}

func buildTranscript(domainSep []byte, c1, c2 *commitment.Commitment, a1, a2 *curve.Point, ctxHash []byte) *transcript.Builder {
	return transcript.New(domainSep).
		WritePoint(c1.Point()).
		WritePoint(c2.Point()).
		WritePoint(a1).
		WritePoint(a2).
		Write(ctxHash)
}
