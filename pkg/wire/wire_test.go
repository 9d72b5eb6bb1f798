package wire

import (
	"bytes"
	"io"
	"testing"

	"github.com/privacyzk/core/pkg/backend"
	"github.com/privacyzk/core/pkg/statement"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)
	body := []byte("hello frame")
	if err := w.WriteFrame(body); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	r := NewStreamReader(&buf)
	got, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("round trip mismatch: got %q want %q", got, body)
	}
}

func TestFrameRejectsOversize(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)
	body := make([]byte, MaxFrameSize+1)
	if err := w.WriteFrame(body); err != ErrFrameTooLarge {
		t.Fatalf("expected ErrFrameTooLarge, got %v", err)
	}
}

func TestStreamReaderEOFBetweenFrames(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamReader(&buf)
	if _, err := r.ReadFrame(); err != io.EOF {
		t.Fatalf("expected io.EOF on empty stream, got %v", err)
	}
}

func TestProofRequestCodecRoundTrip(t *testing.T) {
	req := &ProofRequest{
		Statement:     "all",
		SchemaVersion: 2,
		Depth:         16,
		Nonce:         make([]byte, 16),
		DeadlineMs:    120000,
	}
	b, err := EncodeProofRequest(req)
	if err != nil {
		t.Fatalf("EncodeProofRequest: %v", err)
	}
	got, err := DecodeProofRequest(b)
	if err != nil {
		t.Fatalf("DecodeProofRequest: %v", err)
	}
	if got.Statement != req.Statement || got.SchemaVersion != req.SchemaVersion || got.Depth != req.Depth {
		t.Fatal("round trip changed ProofRequest fields")
	}
}

func TestProofResponseEmbedsVerifiableProof(t *testing.T) {
	b := backend.New()
	ctx := &statement.ProofContext{PeerID: "peer-a", SessionID: "s1"}
	proof, err := b.Prove(backend.Unlinkability, ctx, 0)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	resp, err := ProofResponseOK(StatementTag("unlinkability", 2), proof)
	if err != nil {
		t.Fatalf("ProofResponseOK: %v", err)
	}
	encoded, err := EncodeProofResponse(resp)
	if err != nil {
		t.Fatalf("EncodeProofResponse: %v", err)
	}
	decoded, err := DecodeProofResponse(encoded)
	if err != nil {
		t.Fatalf("DecodeProofResponse: %v", err)
	}

	embedded, err := DecodeEmbeddedProof(decoded)
	if err != nil {
		t.Fatalf("DecodeEmbeddedProof: %v", err)
	}
	if err := backend.Verify(embedded); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestStatementTagFormat(t *testing.T) {
	if got := StatementTag("membership", 2); got != "membership_v2" {
		t.Fatalf("got %q, want membership_v2", got)
	}
}
