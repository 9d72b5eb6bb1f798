package commitment

import (
	"testing"

	"github.com/privacyzk/core/pkg/curve"
)

func TestCommitVerifyRoundTrip(t *testing.T) {
	params := Setup()
	v := curve.NewScalarFromUint64(42)

	c, r, err := CommitWithRandom(params, v)
	if err != nil {
		t.Fatalf("CommitWithRandom: %v", err)
	}
	if !Verify(params, c, v, r) {
		t.Fatal("commitment should verify against its own opening")
	}
}

func TestVerifyRejectsWrongOpening(t *testing.T) {
	params := Setup()
	v := curve.NewScalarFromUint64(7)
	c, r, err := CommitWithRandom(params, v)
	if err != nil {
		t.Fatalf("CommitWithRandom: %v", err)
	}

	wrongV := curve.NewScalarFromUint64(8)
	if Verify(params, c, wrongV, r) {
		t.Fatal("commitment should not verify against a different value")
	}
}

func TestCommitRejectsIdentity(t *testing.T) {
	params := Setup()
	// v=0, r=0 is exactly the pair that produces the identity point.
	zero := curve.NewScalarFromUint64(0)
	if _, err := Commit(params, zero, zero); err != ErrIdentityCommitment {
		t.Fatalf("expected ErrIdentityCommitment, got %v", err)
	}
}

func TestHomomorphicAdd(t *testing.T) {
	params := Setup()
	v1 := curve.NewScalarFromUint64(3)
	v2 := curve.NewScalarFromUint64(5)

	c1, r1, err := CommitWithRandom(params, v1)
	if err != nil {
		t.Fatalf("CommitWithRandom: %v", err)
	}
	c2, r2, err := CommitWithRandom(params, v2)
	if err != nil {
		t.Fatalf("CommitWithRandom: %v", err)
	}

	sum := Add(c1, c2)
	vSum := v1.Add(v2)
	rSum := r1.Add(r2)

	if !Verify(params, sum, vSum, rSum) {
		t.Fatal("commit(v1)+commit(v2) must open to (v1+v2, r1+r2)")
	}
}

func TestSetupIsDeterministicAcrossCalls(t *testing.T) {
	p1 := Setup()
	p2 := Setup()
	if !p1.H.Equal(p2.H) {
		t.Fatal("H must be derived deterministically from the fixed domain tag")
	}
}

func TestZeroRBlindingAcceptedButZeroNonceRoleRejectedElsewhere(t *testing.T) {
	params := Setup()
	v := curve.NewScalarFromUint64(1)
	zero := curve.NewScalarFromUint64(0)
	// r=0 is a valid (if bad-practice) blinding; only the nonce role
	// rejects zero outright (see pkg/schnorr).
	c, err := Commit(params, v, zero)
	if err != nil {
		t.Fatalf("expected commit with zero blinding to succeed, got %v", err)
	}
	if !Verify(params, c, v, zero) {
		t.Fatal("commitment with zero blinding should still verify")
	}
}
