// Package backend ties the three statement backends (membership,
// continuity, unlinkability) to a single entry point that the proof
// exchange server and the asset generator both drive. It owns no network
// code: it only knows how to turn a proof context and a depth into a
// concrete ZKProof, or reject one.
package backend

import (
	"errors"
	"fmt"

	"github.com/privacyzk/core/pkg/commitment"
	"github.com/privacyzk/core/pkg/curve"
	"github.com/privacyzk/core/pkg/merkle"
	"github.com/privacyzk/core/pkg/statement"
	"github.com/privacyzk/core/pkg/statement/continuity"
	"github.com/privacyzk/core/pkg/statement/membership"
	"github.com/privacyzk/core/pkg/statement/unlinkability"
)

// Statement names a proof-exchange statement by its short wire tag, as
// distinct from the longer registry type string each backend registers
// under (e.g. "membership" here vs "anon_set_membership_v1" in the
// registry).
type Statement string

const (
	Membership    Statement = "membership"
	Continuity    Statement = "continuity"
	Unlinkability Statement = "unlinkability"
)

// ErrUnknownStatement is returned for any Statement value other than the
// three declared above.
var ErrUnknownStatement = errors.New("backend: unknown statement")

// All lists the three statements in the fixed delivery order the proof
// exchange protocol requires.
var All = []Statement{Membership, Continuity, Unlinkability}

// StatementsFor resolves a ProofRequest.Statement value ("membership",
// "continuity", "unlinkability", or "all") into the ordered subset of
// All it designates. "all" requests all three, in the fixed delivery
// order; any other name requests exactly that one statement.
func StatementsFor(requested string) ([]Statement, error) {
	if requested == "all" {
		return All, nil
	}
	for _, st := range All {
		if string(st) == requested {
			return []Statement{st}, nil
		}
	}
	return nil, ErrUnknownStatement
}

// DefaultDepth returns the demo-profile Merkle depth for a statement:
// membership trees are built at depth 16, the other two statements carry
// no Merkle tree and use depth 0.
func DefaultDepth(s Statement) int {
	if s == Membership {
		return 16
	}
	return 0
}

// Backend holds the process-wide commitment parameters shared by every
// statement it proves or verifies.
type Backend struct {
	params *commitment.Params
}

// New constructs a Backend with freshly derived (but deterministic)
// process-wide parameters.
func New() *Backend {
	return &Backend{params: commitment.Setup()}
}

// demoMemberID derives a deterministic synthetic identity for padding a
// demo anonymity set, distinct from any real peer id a prover might use.
func demoMemberID(depth, index int) *curve.Scalar {
	return statement.IdentityScalar(fmt.Sprintf("demo-member-d%d-%d", depth, index))
}

// buildDemoTree constructs a depth-d anonymity set that always includes
// the prover's own identity at index 0, padded with deterministic
// synthetic members derived from (depth, index). Only the identity
// scalars are reproducible this way: each member's blinding is freshly
// sampled, so the commitments, leaves, and root differ on every call.
// zk-serve's "real" prove-mode answers from a pre-generated asset instead
// of calling this whenever one is available, precisely because the tree
// built here is not reproducible across runs; it only falls back to this
// path when no asset exists and the request does not demand one.
func (b *Backend) buildDemoTree(peerID string, depth int) (root [merkle.HashSize]byte, paths []merkle.Path, ids []*curve.Scalar, blindings []*curve.Scalar, err error) {
	capacity := 1 << uint(depth)
	ids = make([]*curve.Scalar, capacity)
	ids[0] = statement.IdentityScalar(peerID)
	for i := 1; i < capacity; i++ {
		ids[i] = demoMemberID(depth, i)
	}

	blindings = make([]*curve.Scalar, capacity)
	leaves := make([][merkle.HashSize]byte, capacity)
	for i, id := range ids {
		r, rerr := curve.RandomScalar()
		if rerr != nil {
			return root, nil, nil, nil, rerr
		}
		blindings[i] = r
		c, cerr := commitment.Commit(b.params, id, r)
		if cerr != nil {
			return root, nil, nil, nil, cerr
		}
		leaves[i] = merkle.Leaf(c.Encode())
	}

	root, paths, err = merkle.Build(leaves, depth)
	return root, paths, ids, blindings, err
}

// ProveMembership builds a demo anonymity set at the given depth
// containing ctx.PeerID's identity and produces a membership proof for
// it.
func (b *Backend) ProveMembership(ctx *statement.ProofContext, depth int) (*statement.ZKProof, error) {
	root, paths, ids, blindings, err := b.buildDemoTree(ctx.PeerID, depth)
	if err != nil {
		return nil, err
	}
	return membership.Prove(b.params, ids[0], blindings[0], paths[0], root, ctx)
}

// ProveContinuity produces a continuity proof for two freshly blinded
// commitments to ctx.PeerID's identity scalar.
func (b *Backend) ProveContinuity(ctx *statement.ProofContext) (*statement.ZKProof, error) {
	id := statement.IdentityScalar(ctx.PeerID)
	r1, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	r2, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	return continuity.Prove(id, r1, r2, ctx)
}

// ProveUnlinkability produces an unlinkability proof for a freshly
// blinded commitment to ctx.PeerID's identity scalar.
func (b *Backend) ProveUnlinkability(ctx *statement.ProofContext) (*statement.ZKProof, error) {
	id := statement.IdentityScalar(ctx.PeerID)
	r, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	return unlinkability.Prove(id, r, ctx)
}

// Prove dispatches to the statement-specific prover, passing depth to
// the membership prover and ignoring it otherwise.
func (b *Backend) Prove(s Statement, ctx *statement.ProofContext, depth int) (*statement.ZKProof, error) {
	switch s {
	case Membership:
		return b.ProveMembership(ctx, depth)
	case Continuity:
		return b.ProveContinuity(ctx)
	case Unlinkability:
		return b.ProveUnlinkability(ctx)
	default:
		return nil, ErrUnknownStatement
	}
}

// Verify dispatches to the statement registry; it does not need a
// Backend receiver since verification only ever needs the proof and the
// process-wide public parameters the registry already holds.
func Verify(p *statement.ZKProof) error {
	return statement.Verify(p)
}
