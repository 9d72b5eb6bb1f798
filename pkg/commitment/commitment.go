// Package commitment implements Pedersen commitments on secp256k1:
// C = v*G + r*H, where G is the curve's base point and H is a second
// generator whose discrete log relative to G is unknown to anyone (it is
// derived by hash-to-curve). Hiding is perfect; binding is
// computational under the discrete-log assumption.
package commitment

import (
	"errors"

	"github.com/privacyzk/core/pkg/curve"
)

// hGenDomainTag is the fixed domain tag used to derive H once per process.
const hGenDomainTag = "PEDERSEN_H_GEN_V1"

// ErrIdentityCommitment is returned by Commit when v*G + r*H would be the
// point at infinity — the pair (0,0) trivially opens, so it is rejected at
// commit time unconditionally rather than left as a caller-side check
// (see the open-question resolution in DESIGN.md).
var ErrIdentityCommitment = errors.New("commitment: result is the identity point")

// Params holds the generators and group order shared by every commitment
// created in this process. G and H are immutable for the lifetime of the
// process.
type Params struct {
	G *curve.Point
	H *curve.Point
}

// Setup derives the process-wide commitment parameters. G is the curve's
// standard base point; H is derived once via hash-to-curve on the fixed
// domain tag, so independent processes always agree on the same H without
// needing a trusted setup.
func Setup() *Params {
	return &Params{
		G: curve.Generator(),
		H: curve.HashToCurve([]byte(hGenDomainTag)),
	}
}

// Commitment is an opaque Pedersen commitment value: a curve point.
type Commitment struct {
	point *curve.Point
}

// Point returns the underlying curve point.
func (c *Commitment) Point() *curve.Point { return c.point }

// Encode returns the SEC1 compressed encoding (33 bytes).
func (c *Commitment) Encode() []byte { return c.point.Encode() }

// DecodeCommitment parses a 33-byte SEC1 compressed point as a commitment.
// The identity point has no SEC1 compressed encoding and curve.DecodePoint
// only accepts on-curve points, so a decoded commitment is never the
// identity; the statement verifiers still check IsIdentity after decode.
func DecodeCommitment(b []byte) (*Commitment, error) {
	p, err := curve.DecodePoint(b)
	if err != nil {
		return nil, err
	}
	return &Commitment{point: p}, nil
}

// IsIdentity reports whether the commitment is the point at infinity.
func (c *Commitment) IsIdentity() bool { return c.point.IsIdentity() }

// Commit computes C = v*G + r*H and rejects if the result is the identity
// point.
func Commit(params *Params, v, r *curve.Scalar) (*Commitment, error) {
	c := curve.Add(curve.ScalarMult(v, params.G), curve.ScalarMult(r, params.H))
	if c.IsIdentity() {
		return nil, ErrIdentityCommitment
	}
	return &Commitment{point: c}, nil
}

// CommitWithRandom samples a fresh blinding r uniform in [1, q-1] and
// commits to v, returning both the commitment and the blinding used (the
// caller owns the blinding and must not leak it).
func CommitWithRandom(params *Params, v *curve.Scalar) (*Commitment, *curve.Scalar, error) {
	r, err := curve.RandomScalar()
	if err != nil {
		return nil, nil, err
	}
	c, err := Commit(params, v, r)
	if err != nil {
		return nil, nil, err
	}
	return c, r, nil
}

// Verify checks whether C opens to (v, r) under params. Verification is
// lenient modulo q: it recomputes v*G + r*H and compares to C directly,
// with no extra range restriction on v or r beyond what
// NewScalarFromBytes already enforces on decode. This is deliberate, so
// that homomorphic sums of commitments keep verifying.
func Verify(params *Params, c *Commitment, v, r *curve.Scalar) bool {
	recomputed := curve.Add(curve.ScalarMult(v, params.G), curve.ScalarMult(r, params.H))
	return recomputed.Equal(c.point)
}

// Add returns the homomorphic sum C1 + C2, which opens to (v1+v2, r1+r2)
// whenever C1 opens to (v1,r1) and C2 opens to (v2,r2).
func Add(c1, c2 *Commitment) *Commitment {
	return &Commitment{point: curve.Add(c1.point, c2.point)}
}
