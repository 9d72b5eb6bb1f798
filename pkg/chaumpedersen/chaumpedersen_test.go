package chaumpedersen

import (
	"testing"

	"github.com/privacyzk/core/pkg/commitment"
	"github.com/privacyzk/core/pkg/curve"
)

var testDS = []byte("privacyzk.continuity.v1")

func commitTo(t *testing.T, params *commitment.Params, id *curve.Scalar) (*commitment.Commitment, *curve.Scalar) {
	t.Helper()
	c, r, err := commitment.CommitWithRandom(params, id)
	if err != nil {
		t.Fatalf("CommitWithRandom: %v", err)
	}
	return c, r
}

func TestCompletenessSharedIdentity(t *testing.T) {
	params := commitment.Setup()
	id := curve.NewScalarFromUint64(777)

	c1, r1 := commitTo(t, params, id)
	c2, r2 := commitTo(t, params, id)
	ctxHash := []byte("ctx")

	proof, err := Generate(params, c1, c2, id, r1, r2, testDS, ctxHash)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := Verify(params, c1, c2, proof, testDS, ctxHash); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestDifferentIdentitiesRejected(t *testing.T) {
	params := commitment.Setup()
	id1 := curve.NewScalarFromUint64(1)
	id2 := curve.NewScalarFromUint64(2)

	c1, r1 := commitTo(t, params, id1)
	c2, r2 := commitTo(t, params, id2)
	ctxHash := []byte("ctx")

	// Prover dishonestly claims id1 opens both, but c2 actually commits
	// to id2 under r2 — equation 2 must fail.
	proof, err := Generate(params, c1, c2, id1, r1, r2, testDS, ctxHash)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := Verify(params, c1, c2, proof, testDS, ctxHash); err == nil {
		t.Fatal("proof across two different identities must not verify")
	}
}

func TestSwappedCommitmentReplacement(t *testing.T) {
	params := commitment.Setup()
	id := curve.NewScalarFromUint64(42)
	c1, r1 := commitTo(t, params, id)
	c2, r2 := commitTo(t, params, id)
	ctxHash := []byte("ctx")

	proof, err := Generate(params, c1, c2, id, r1, r2, testDS, ctxHash)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Replace commitment_2 with a fresh commitment to an unrelated value.
	other := curve.NewScalarFromUint64(999)
	freshC2, _ := commitTo(t, params, other)

	if err := Verify(params, c1, freshC2, proof, testDS, ctxHash); err == nil {
		t.Fatal("swapping commitment_2 for an unrelated commitment must fail verification")
	}
}

func TestContextBinding(t *testing.T) {
	params := commitment.Setup()
	id := curve.NewScalarFromUint64(5)
	c1, r1 := commitTo(t, params, id)
	c2, r2 := commitTo(t, params, id)

	proof, err := Generate(params, c1, c2, id, r1, r2, testDS, []byte("ctx-a"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := Verify(params, c1, c2, proof, testDS, []byte("ctx-b")); err == nil {
		t.Fatal("swapping the context hash must invalidate the proof")
	}
}
