package unlinkability

import (
	"testing"

	"github.com/privacyzk/core/pkg/curve"
	"github.com/privacyzk/core/pkg/statement"
)

func TestProveVerifyRoundTrip(t *testing.T) {
	id := statement.IdentityScalar("peer-a")
	r, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	ctx := &statement.ProofContext{PeerID: "peer-a", SessionID: "s1"}

	proof, err := Prove(id, r, ctx)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if err := statement.Verify(proof); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestTwoSessionsSameIdentityYieldDifferentTags(t *testing.T) {
	id := statement.IdentityScalar("peer-a")
	r1, _ := curve.RandomScalar()
	r2, _ := curve.RandomScalar()

	ctx1 := &statement.ProofContext{PeerID: "peer-a", SessionID: "s1"}
	ctx2 := &statement.ProofContext{PeerID: "peer-a", SessionID: "s2"}

	p1, err := Prove(id, r1, ctx1)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	p2, err := Prove(id, r2, ctx2)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	tag1 := string(p1.PublicInputs["tag"])
	tag2 := string(p2.PublicInputs["tag"])
	if tag1 == tag2 {
		t.Fatal("two sessions with independently sampled blinding must not share a tag")
	}
}

func TestVerifyRejectsMismatchedTag(t *testing.T) {
	id := statement.IdentityScalar("peer-a")
	r, _ := curve.RandomScalar()
	ctx := &statement.ProofContext{PeerID: "peer-a"}

	proof, err := Prove(id, r, ctx)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	tampered := make([]byte, len(proof.PublicInputs["tag"]))
	copy(tampered, proof.PublicInputs["tag"])
	tampered[0] ^= 0xFF
	proof.PublicInputs["tag"] = tampered

	if err := statement.Verify(proof); err != ErrTagMismatch {
		t.Fatalf("expected ErrTagMismatch, got %v", err)
	}
}

func TestVerifyRejectsForgedCommitmentUnderSameTag(t *testing.T) {
	idA := statement.IdentityScalar("peer-a")
	idB := statement.IdentityScalar("peer-b")
	rA, _ := curve.RandomScalar()
	rB, _ := curve.RandomScalar()
	ctx := &statement.ProofContext{PeerID: "peer-a"}

	pA, err := Prove(idA, rA, ctx)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	pB, err := Prove(idB, rB, ctx)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	// Swap in a commitment from a different proof under A's tag and PoK.
	pA.PublicInputs["commitment"] = pB.PublicInputs["commitment"]

	if err := statement.Verify(pA); err == nil {
		t.Fatal("expected verification to fail when commitment does not match tag or PoK")
	}
}
