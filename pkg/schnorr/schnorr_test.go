package schnorr

import (
	"testing"

	"github.com/privacyzk/core/pkg/commitment"
	"github.com/privacyzk/core/pkg/curve"
)

var testDS = []byte("privacyzk.membership.v1")

func TestCompleteness(t *testing.T) {
	params := commitment.Setup()
	v := curve.NewScalarFromUint64(99)
	c, r, err := commitment.CommitWithRandom(params, v)
	if err != nil {
		t.Fatalf("CommitWithRandom: %v", err)
	}
	ctxHash := []byte("ctx-hash-32-bytes-of-whatever!!!")

	proof, err := Generate(params, c, v, r, testDS, ctxHash)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := Verify(params, c, proof, testDS, ctxHash); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestSoundnessWrongWitness(t *testing.T) {
	params := commitment.Setup()
	v := curve.NewScalarFromUint64(1)
	c, r, err := commitment.CommitWithRandom(params, v)
	if err != nil {
		t.Fatalf("CommitWithRandom: %v", err)
	}
	ctxHash := []byte("ctx")

	wrongR := curve.NewScalarFromUint64(1234)
	proof, err := Generate(params, c, v, wrongR, testDS, ctxHash)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := Verify(params, c, proof, testDS, ctxHash); err == nil {
		t.Fatal("proof generated with the wrong witness must not verify")
	}
}

func TestTamperedResponseRejected(t *testing.T) {
	params := commitment.Setup()
	v := curve.NewScalarFromUint64(5)
	c, r, err := commitment.CommitWithRandom(params, v)
	if err != nil {
		t.Fatalf("CommitWithRandom: %v", err)
	}
	ctxHash := []byte("ctx")

	proof, err := Generate(params, c, v, r, testDS, ctxHash)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	proof.Zv = proof.Zv.Add(curve.NewScalarFromUint64(1))

	if err := Verify(params, c, proof, testDS, ctxHash); err == nil {
		t.Fatal("tampered z_v must cause verification to fail")
	}
}

func TestContextBinding(t *testing.T) {
	params := commitment.Setup()
	v := curve.NewScalarFromUint64(5)
	c, r, err := commitment.CommitWithRandom(params, v)
	if err != nil {
		t.Fatalf("CommitWithRandom: %v", err)
	}
	ctxA := []byte("context-a")
	ctxB := []byte("context-b")

	proof, err := Generate(params, c, v, r, testDS, ctxA)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := Verify(params, c, proof, testDS, ctxB); err == nil {
		t.Fatal("swapping the context hash must invalidate the proof")
	}
}

func TestNonceFreshness(t *testing.T) {
	params := commitment.Setup()
	v := curve.NewScalarFromUint64(5)
	c, r, err := commitment.CommitWithRandom(params, v)
	if err != nil {
		t.Fatalf("CommitWithRandom: %v", err)
	}
	ctxHash := []byte("ctx")

	p1, err := Generate(params, c, v, r, testDS, ctxHash)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	p2, err := Generate(params, c, v, r, testDS, ctxHash)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p1.A.Equal(p2.A) {
		t.Fatal("two proofs over the same witness must use distinct announcements")
	}
}

func TestSimulatedTranscriptVerifies(t *testing.T) {
	// HVZK: pick c, z_v, z_b uniformly and solve for A. The resulting
	// tuple must satisfy the verification equation even though no real
	// nonce was ever sampled — this is exactly the property that says a
	// verifier learns nothing beyond "the statement is true."
	params := commitment.Setup()
	v := curve.NewScalarFromUint64(5)
	c, _, err := commitment.CommitWithRandom(params, v)
	if err != nil {
		t.Fatalf("CommitWithRandom: %v", err)
	}

	zv, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	zb, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	ch, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	// A = z_v*G + z_b*H - c*C
	lhs := curve.Add(curve.ScalarMult(zv, params.G), curve.ScalarMult(zb, params.H))
	cC := curve.ScalarMult(ch, c.Point())
	a := curve.Add(lhs, cC.Neg())

	sim := &Proof{A: a, C: ch, Zv: zv, Zb: zb}

	// The simulated transcript only satisfies the *algebraic* equation,
	// not the Fiat-Shamir recomputation (the simulator doesn't control
	// the hash), so we check the equation directly rather than via
	// Verify, which additionally demands c == H(transcript).
	check := curve.Add(curve.ScalarMult(sim.Zv, params.G), curve.ScalarMult(sim.Zb, params.H))
	expect := curve.Add(sim.A, curve.ScalarMult(sim.C, c.Point()))
	if !check.Equal(expect) {
		t.Fatal("simulated transcript must satisfy the Sigma verification equation")
	}
}
