// Package unlinkability implements the session_unlinkability_v1 statement:
// a prover demonstrates knowledge of the opening of a commitment to its
// identity scalar, and derives a per-session tag bound to that commitment
// and the proof context. Freshly sampled blinding per session is what keeps
// two sessions for the same identity from being linked by their tags.
package unlinkability

import (
	"crypto/sha256"
	"errors"

	"github.com/privacyzk/core/pkg/commitment"
	"github.com/privacyzk/core/pkg/curve"
	"github.com/privacyzk/core/pkg/schnorr"
	"github.com/privacyzk/core/pkg/statement"
)

const (
	StatementType    = "session_unlinkability_v1"
	StatementVersion = 1

	domainSeparator = "SESSION_UNLINKABILITY_V1"
	tagDomainTag    = "SESSION_UNLINKABILITY_TAG_V1"
)

var ErrTagMismatch = errors.New("unlinkability: tag does not match commitment and context")
var ErrPoKRejected = errors.New("unlinkability: proof of knowledge rejected")

func init() {
	statement.Register(&statement.Descriptor{
		Type:    StatementType,
		Version: StatementVersion,
		RequiredPublicInputKeys: []string{
			"tag", "commitment",
		},
		DomainSeparator: []byte(domainSeparator),
		Verify:          verify,
	})
}

var sharedParams = commitment.Setup()

// deriveTag computes tag = sha256(DS_tag || ctx_hash || C). Unlike the
// Fiat-Shamir transcript, this is a plain concatenation, not
// length-prefixed: ctx_hash and commitment33 are both fixed-width (32 and
// 33 bytes), so there is no field-boundary ambiguity to guard against,
// and the spec fixes this exact byte layout so independent
// implementations derive the same tag.
func deriveTag(ctxHash [32]byte, commitment33 []byte) [32]byte {
	buf := make([]byte, 0, len(tagDomainTag)+len(ctxHash)+len(commitment33))
	buf = append(buf, tagDomainTag...)
	buf = append(buf, ctxHash[:]...)
	buf = append(buf, commitment33...)
	return sha256.Sum256(buf)
}

// Prove builds a session_unlinkability_v1 proof for the given identity and
// a freshly sampled per-session blinding r.
func Prove(id, r *curve.Scalar, ctx *statement.ProofContext) (*statement.ZKProof, error) {
	c, err := commitment.Commit(sharedParams, id, r)
	if err != nil {
		return nil, err
	}

	ctxHash := ctx.Hash()
	tag := deriveTag(ctxHash, c.Encode())

	proof, err := schnorr.Generate(sharedParams, c, id, r, []byte(domainSeparator), ctxHash[:])
	if err != nil {
		return nil, err
	}

	return &statement.ZKProof{
		StatementType:    StatementType,
		StatementVersion: StatementVersion,
		PublicInputs: map[string][]byte{
			"tag":        tag[:],
			"commitment": c.Encode(),
			"domain_sep": []byte(domainSeparator),
		},
		Announcements: [][]byte{proof.A.Encode()},
		Challenge:     proof.C.Bytes(),
		Responses:     [][]byte{proof.Zv.Bytes(), proof.Zb.Bytes()},
		ContextHash:   ctxHash[:],
	}, nil
}

func verify(p *statement.ZKProof) error {
	c, err := commitment.DecodeCommitment(p.PublicInputs["commitment"])
	if err != nil {
		return err
	}
	if c.IsIdentity() {
		return ErrPoKRejected
	}

	if len(p.ContextHash) != 32 {
		return ErrTagMismatch
	}
	var ctxHash [32]byte
	copy(ctxHash[:], p.ContextHash)

	wantTag := deriveTag(ctxHash, c.Encode())
	if len(p.PublicInputs["tag"]) != 32 {
		return ErrTagMismatch
	}
	var gotTag [32]byte
	copy(gotTag[:], p.PublicInputs["tag"])
	if wantTag != gotTag {
		return ErrTagMismatch
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
