// Package membership implements the anon_set_membership_v1 statement: a
// prover demonstrates that a blinded commitment to its identity scalar sits
// inside a published Merkle tree, without revealing which leaf it is beyond
// what the commitment and path already disclose.
package membership

import (
	"errors"

	"github.com/privacyzk/core/pkg/commitment"
	"github.com/privacyzk/core/pkg/curve"
	"github.com/privacyzk/core/pkg/merkle"
	"github.com/privacyzk/core/pkg/schnorr"
	"github.com/privacyzk/core/pkg/statement"
)

var sharedParams = commitment.Setup()

const (
	// StatementType is the registry key for this backend.
	StatementType    = "anon_set_membership_v1"
	StatementVersion = 1

	domainSeparator = "ANON_SET_MEMBERSHIP_V1"
)

// Errors specific to this statement. ErrBadMerklePath covers both a path
// whose length does not match the tree depth and a path that verifies to
// the wrong root; the registry-level ErrBadMetadata and ErrUnknownStatement
// cover malformed or unrecognized proofs before this package ever runs.
var (
	ErrBadMerklePath = errors.New("membership: path does not verify against root")
	ErrPoKRejected   = errors.New("membership: proof of knowledge rejected")
)

func init() {
	statement.Register(&statement.Descriptor{
		Type:    StatementType,
		Version: StatementVersion,
		RequiredPublicInputKeys: []string{
			"root", "commitment", "merkle_path",
		},
		DomainSeparator: []byte(domainSeparator),
		Verify:          verify,
	})
}

// Prove builds an anon_set_membership_v1 proof that the commitment to id
// (with blinding r) sits in the tree rooted at root, along the given path.
// It fails closed: if the witness does not actually verify against root,
// no proof is ever assembled.
func Prove(params *commitment.Params, id, r *curve.Scalar, path merkle.Path, root [merkle.HashSize]byte, ctx *statement.ProofContext) (*statement.ZKProof, error) {
	c, err := commitment.Commit(params, id, r)
	if err != nil {
		return nil, err
	}

	leaf := merkle.Leaf(c.Encode())
	if !merkle.VerifyPath(leaf, path, root) {
		return nil, ErrBadMerklePath
	}

	ctxHash := ctx.Hash()
	proof, err := schnorr.Generate(params, c, id, r, []byte(domainSeparator), ctxHash[:])
	if err != nil {
		return nil, err
	}

	zkp := &statement.ZKProof{
		StatementType:    StatementType,
		StatementVersion: StatementVersion,
		PublicInputs: map[string][]byte{
			"root":        root[:],
			"commitment":  c.Encode(),
			"domain_sep":  []byte(domainSeparator),
			"merkle_path": statement.EncodeMerklePath(path),
		},
		Announcements: [][]byte{proof.A.Encode()},
		Challenge:     proof.C.Bytes(),
		Responses:     [][]byte{proof.Zv.Bytes(), proof.Zb.Bytes()},
		ContextHash:   ctxHash[:],
	}
	return zkp, nil
}

func verify(p *statement.ZKProof) error {
	c, err := commitment.DecodeCommitment(p.PublicInputs["commitment"])
	if err != nil {
		return err
	}
	if c.IsIdentity() {
		return ErrPoKRejected
	}

	var root [merkle.HashSize]byte
	if len(p.PublicInputs["root"]) != merkle.HashSize {
		return ErrBadMerklePath
	}
	copy(root[:], p.PublicInputs["root"])

	path, err := statement.DecodeMerklePath(p.PublicInputs["merkle_path"])
	if err != nil {
		return err
	}

	leaf := merkle.Leaf(c.Encode())
	if !merkle.VerifyPath(leaf, path, root) {
		return ErrBadMerklePath
	}

	if len(p.Announcements) != 1 || len(p.Responses) != 2 {
		return ErrPoKRejected
	}
	a, err := curve.DecodePoint(p.Announcements[0])
	if err != nil {
		return ErrPoKRejected
	}
	challenge, err := curve.NewScalarFromBytes(p.Challenge)
	if err != nil {
		return ErrPoKRejected
	}
	zv, err := curve.NewScalarFromBytes(p.Responses[0])
	if err != nil {
		return ErrPoKRejected
	}
	zb, err := curve.NewScalarFromBytes(p.Responses[1])
	if err != nil {
		return ErrPoKRejected
	}

	sp := &schnorr.Proof{A: a, C: challenge, Zv: zv, Zb: zb}
	if err := schnorr.Verify(sharedParams, c, sp, []byte(domainSeparator), p.ContextHash); err != nil {
		return ErrPoKRejected
	}
	return nil
}
