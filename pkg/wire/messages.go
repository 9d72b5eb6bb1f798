package wire

import (
	"sync"

	"github.com/fxamacker/cbor/v2"

	"github.com/privacyzk/core/pkg/statement"
)

// Status is the per-statement outcome a ProofResponse carries.
type Status string

const (
	StatusOK           Status = "OK"
	StatusNotAvailable Status = "NOT_AVAILABLE"
	StatusFailed       Status = "FAILED"
)

// ProofRequest is the client's opening frame of an exchange.
type ProofRequest struct {
	Statement     string `cbor:"statement"`
	SchemaVersion uint8  `cbor:"schema_version"`
	Depth         uint8  `cbor:"depth"`
	Nonce         []byte `cbor:"nonce"`
	DeadlineMs    uint32 `cbor:"deadline_ms"`
	// RequireReal forbids the server from falling back to an in-process
	// Sigma proof when no pre-generated asset is available; the server
	// answers NOT_AVAILABLE instead of silently downgrading.
	RequireReal bool `cbor:"require_real,omitempty"`
}

// ProofResponse is one per-statement frame the server emits, in the fixed
// order membership -> continuity -> unlinkability.
type ProofResponse struct {
	StatementTag string `cbor:"statement_tag"`
	Status       Status `cbor:"status"`
	ProofCBOR    []byte `cbor:"proof_cbor,omitempty"`
	Error        string `cbor:"error,omitempty"`
	// Fallback marks a response from a "real" prove-mode server that had
	// no pre-generated asset for this (statement, schema, depth) and
	// computed the proof in-process instead.
	Fallback bool `cbor:"fallback,omitempty"`
}

// EndOfBatch terminates an exchange.
type EndOfBatch struct{}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
	once    sync.Once
)

func modes() (cbor.EncMode, cbor.DecMode) {
	once.Do(func() {
		em, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			panic(err)
		}
		encMode = em

		dm, err := cbor.DecOptions{MaxMapPairs: 64, MaxArrayElements: 64}.DecMode()
		if err != nil {
			panic(err)
		}
		decMode = dm
	})
	return encMode, decMode
}

// EncodeProofRequest serializes a ProofRequest to canonical CBOR.
func EncodeProofRequest(r *ProofRequest) ([]byte, error) {
	em, _ := modes()
	return em.Marshal(r)
}

// DecodeProofRequest parses a canonical-CBOR ProofRequest body.
func DecodeProofRequest(b []byte) (*ProofRequest, error) {
	_, dm := modes()
	var r ProofRequest
	if err := dm.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// EncodeProofResponse serializes a ProofResponse to canonical CBOR.
func EncodeProofResponse(r *ProofResponse) ([]byte, error) {
	em, _ := modes()
	return em.Marshal(r)
}

// DecodeProofResponse parses a canonical-CBOR ProofResponse body.
func DecodeProofResponse(b []byte) (*ProofResponse, error) {
	_, dm := modes()
	var r ProofResponse
	if err := dm.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// EncodeEndOfBatch serializes the terminating frame.
func EncodeEndOfBatch() ([]byte, error) {
	em, _ := modes()
	return em.Marshal(&EndOfBatch{})
}

// ProofResponseOK builds an OK response carrying an embedded ZKProof,
// encoding it to canonical CBOR for the proof_cbor field.
func ProofResponseOK(statementTag string, proof *statement.ZKProof) (*ProofResponse, error) {
	body, err := statement.Encode(proof)
	if err != nil {
		return nil, err
	}
	return &ProofResponse{StatementTag: statementTag, Status: StatusOK, ProofCBOR: body}, nil
}

// ProofResponseFailed builds a FAILED response carrying a human-readable
// reason; no proof bytes are ever attached to a failure.
func ProofResponseFailed(statementTag, reason string) *ProofResponse {
	return &ProofResponse{StatementTag: statementTag, Status: StatusFailed, Error: reason}
}

// ProofResponseUnavailable builds a NOT_AVAILABLE response.
func ProofResponseUnavailable(statementTag string) *ProofResponse {
	return &ProofResponse{StatementTag: statementTag, Status: StatusNotAvailable}
}

// DecodeEmbeddedProof decodes the ZKProof carried in an OK response.
func DecodeEmbeddedProof(r *ProofResponse) (*statement.ZKProof, error) {
	return statement.Decode(r.ProofCBOR)
}
