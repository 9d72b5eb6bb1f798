package continuity

import (
	"testing"

	"github.com/privacyzk/core/pkg/curve"
	"github.com/privacyzk/core/pkg/statement"
)

func TestProveVerifyRoundTrip(t *testing.T) {
	id := statement.IdentityScalar("peer-a")
	r1, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	r2, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	ctx := &statement.ProofContext{PeerID: "peer-a", SessionID: "s1"}
	proof, err := Prove(id, r1, r2, ctx)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if err := statement.Verify(proof); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestDifferentIdentitiesRejected(t *testing.T) {
	id1 := statement.IdentityScalar("peer-a")
	id2 := statement.IdentityScalar("peer-b")
	r1, _ := curve.RandomScalar()
	r2, _ := curve.RandomScalar()

	ctx := &statement.ProofContext{PeerID: "peer-a"}
	// Forge a proof by combining commitments from different identities:
	// Prove(id1, ...) commits id1 twice, so we build the mismatched proof
	// by hand instead of through Prove, since Prove only ever commits a
	// single id to both slots.
	p1, err := Prove(id1, r1, r2, ctx)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	p2, err := Prove(id2, r1, r2, ctx)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	// Swap commitment_2 from a proof over a different identity.
	p1.PublicInputs["commitment_2"] = p2.PublicInputs["commitment_2"]

	if err := statement.Verify(p1); err == nil {
		t.Fatal("expected verification to fail across different identities")
	}
}

func TestTamperedResponseRejected(t *testing.T) {
	id := statement.IdentityScalar("peer-a")
	r1, _ := curve.RandomScalar()
	r2, _ := curve.RandomScalar()
	ctx := &statement.ProofContext{PeerID: "peer-a"}

	proof, err := Prove(id, r1, r2, ctx)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	tampered := make([]byte, len(proof.Responses[0]))
	copy(tampered, proof.Responses[0])
	tampered[len(tampered)-1] ^= 0x01
	proof.Responses[0] = tampered

	if err := statement.Verify(proof); err != ErrPoKRejected {
		t.Fatalf("expected ErrPoKRejected, got %v", err)
	}
}

func TestContextBindingChangesChallenge(t *testing.T) {
	id := statement.IdentityScalar("peer-a")
	r1, _ := curve.RandomScalar()
	r2, _ := curve.RandomScalar()

	ctxA := &statement.ProofContext{PeerID: "peer-a", SessionID: "s1"}
	ctxB := &statement.ProofContext{PeerID: "peer-a", SessionID: "s2"}

	proof, err := Prove(id, r1, r2, ctxA)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	hB := ctxB.Hash()
	proof.ContextHash = hB[:]

	if err := statement.Verify(proof); err == nil {
		t.Fatal("expected verification to fail after swapping context hash")
	}
}
