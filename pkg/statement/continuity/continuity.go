// Package continuity implements the identity_continuity_v1 statement: a
// prover demonstrates that two independently blinded commitments hide the
// same identity scalar, without revealing the scalar or either blinding.
package continuity

import (
	"errors"

	"github.com/privacyzk/core/pkg/chaumpedersen"
	"github.com/privacyzk/core/pkg/commitment"
	"github.com/privacyzk/core/pkg/curve"
	"github.com/privacyzk/core/pkg/statement"
)

const (
	StatementType    = "identity_continuity_v1"
	StatementVersion = 1

	domainSeparator = "IDENTITY_CONTINUITY_V1"
)

var ErrPoKRejected = errors.New("continuity: equality proof rejected")

func init() {
	statement.Register(&statement.Descriptor{
		Type:    StatementType,
		Version: StatementVersion,
		RequiredPublicInputKeys: []string{
			"commitment_1", "commitment_2",
		},
		DomainSeparator: []byte(domainSeparator),
		Verify:          verify,
	})
}

var sharedParams = commitment.Setup()

// Prove builds an identity_continuity_v1 proof that commitment_1 (blinding
// r1) and commitment_2 (blinding r2) both open to the same id.
func Prove(id, r1, r2 *curve.Scalar, ctx *statement.ProofContext) (*statement.ZKProof, error) {
	c1, err := commitment.Commit(sharedParams, id, r1)
	if err != nil {
		return nil, err
	}
	c2, err := commitment.Commit(sharedParams, id, r2)
	if err != nil {
		return nil, err
	}

	ctxHash := ctx.Hash()
	proof, err := chaumpedersen.Generate(sharedParams, c1, c2, id, r1, r2, []byte(domainSeparator), ctxHash[:])
	if err != nil {
		return nil, err
	}

	return &statement.ZKProof{
		StatementType:    StatementType,
		StatementVersion: StatementVersion,
		PublicInputs: map[string][]byte{
			"commitment_1": c1.Encode(),
			"commitment_2": c2.Encode(),
			"domain_sep":   []byte(domainSeparator),
		},
		Announcements: [][]byte{proof.A1.Encode(), proof.A2.Encode()},
		Challenge:     proof.C.Bytes(),
		Responses:     [][]byte{proof.Zid.Bytes(), proof.Z1.Bytes(), proof.Z2.Bytes()},
		ContextHash:   ctxHash[:],
	}, nil
}

func verify(p *statement.ZKProof) error {
	c1, err := commitment.DecodeCommitment(p.PublicInputs["commitment_1"])
	if err != nil {
		return err
	}
	c2, err := commitment.DecodeCommitment(p.PublicInputs["commitment_2"])
	if err != nil {
		return err
	}
	if c1.IsIdentity() || c2.IsIdentity() {
		return ErrPoKRejected
	}

	if len(p.Announcements) != 2 || len(p.Responses) != 3 {
		return ErrPoKRejected
	}
	a1, err := curve.DecodePoint(p.Announcements[0])
	if err != nil {
		return ErrPoKRejected
	}
	a2, err := curve.DecodePoint(p.Announcements[1])
	if err != nil {
		return ErrPoKRejected
	}
	challenge, err := curve.NewScalarFromBytes(p.Challenge)
	if err != nil {
		return ErrPoKRejected
	}
	zid, err := curve.NewScalarFromBytes(p.Responses[0])
	if err != nil {
		return ErrPoKRejected
	}
	z1, err := curve.NewScalarFromBytes(p.Responses[1])
	if err != nil {
		return ErrPoKRejected
	}
	z2, err := curve.NewScalarFromBytes(p.Responses[2])
	if err != nil {
		return ErrPoKRejected
	}

	proof := &chaumpedersen.Proof{A1: a1, A2: a2, C: challenge, Zid: zid, Z1: z1, Z2: z2}
	if err := chaumpedersen.Verify(sharedParams, c1, c2, proof, []byte(domainSeparator), p.ContextHash); err != nil {
		return ErrPoKRejected
	}
	return nil
}
