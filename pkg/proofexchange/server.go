package proofexchange

import (
	"context"
	"time"

	"github.com/privacyzk/core/pkg/asset"
	"github.com/privacyzk/core/pkg/backend"
	"github.com/privacyzk/core/pkg/statement"
	"github.com/privacyzk/core/pkg/wire"
)

// ProveMode selects how the server answers a ProofRequest.
type ProveMode string

const (
	// ModeSigma always runs the in-process Sigma-protocol backend.
	ModeSigma ProveMode = "sigma"
	// ModeReal loads a pre-generated proof from the asset store,
	// falling back to ModeSigma behavior (with the response's Fallback
	// flag set) when the request does not set RequireReal.
	ModeReal ProveMode = "real"
)

// proofFileFor names the recognized asset file holding the final proof
// bytes for each statement, per pkg/asset's recognized-file set.
var proofFileFor = map[backend.Statement]string{
	backend.Membership:    "membership_proof.bin",
	backend.Continuity:    "continuity_proof.bin",
	backend.Unlinkability: "unlinkability_proof.bin",
}

// Server answers proof-exchange batches on one stream at a time. A
// single Server may be shared across concurrently handled streams; all
// of its state is either immutable or owned by the packages it delegates
// to (backend.Backend, asset.Loader), both of which are safe for
// concurrent use.
type Server struct {
	mode    ProveMode
	backend *backend.Backend
	assets  *asset.Loader
}

// NewServer constructs a Server. assetsDir is only consulted in
// ModeReal.
func NewServer(mode ProveMode, assetsDir string) *Server {
	return &Server{
		mode:    mode,
		backend: backend.New(),
		assets:  asset.NewLoader(assetsDir),
	}
}

// HandleStream drives one complete batch exchange on stream: it reads a
// single ProofRequest frame naming the statement to prove ("membership",
// "continuity", "unlinkability", or "all"), proves (or loads) each
// requested statement concurrently, then writes one ProofResponse frame
// per requested statement back in the fixed membership -> continuity ->
// unlinkability order regardless of which statement's work finished
// first, and finally an EndOfBatch frame.
//
// If the stream is closed or a read/write fails partway through, the
// statements that were still Proving are abandoned: HandleStream returns
// the error without writing any response for them, so no partial proof
// is ever emitted for a statement the client did not get to see.
func (s *Server) HandleStream(stream Stream, peerID string) error {
	sr := wire.NewStreamReader(stream)
	sw := wire.NewStreamWriter(stream)

	body, err := sr.ReadFrame()
	if err != nil {
		return err
	}
	req, err := wire.DecodeProofRequest(body)
	if err != nil {
		return err
	}

	statements, err := backend.StatementsFor(req.Statement)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.requestDeadline(req))
	defer cancel()

	results := make(map[backend.Statement]chan *wire.ProofResponse, len(statements))
	for _, st := range statements {
		ch := make(chan *wire.ProofResponse, 1)
		results[st] = ch
		go func(st backend.Statement) {
			ch <- s.produce(st, req, peerID)
		}(st)
	}

	for _, st := range statements {
		select {
		case resp := <-results[st]:
			body, err := wire.EncodeProofResponse(resp)
			if err != nil {
				return err
			}
			if err := sw.WriteFrame(body); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	body, err = wire.EncodeEndOfBatch()
	if err != nil {
		return err
	}
	return sw.WriteFrame(body)
}

// requestDeadline returns req's DeadlineMs as a duration, defaulting to
// DefaultTimeout when unset.
func (s *Server) requestDeadline(req *wire.ProofRequest) time.Duration {
	if req.DeadlineMs > 0 {
		return time.Duration(req.DeadlineMs) * time.Millisecond
	}
	return DefaultTimeout
}

// statementDepth resolves the Merkle depth to use for st: the request's
// Depth field governs membership (the only statement with a non-trivial
// anonymity set), while continuity and unlinkability are always depth 0,
// per spec's fixed demo profile — a single shared ProofRequest.Depth
// field never reinterprets a non-membership statement's fixed depth.
func statementDepth(st backend.Statement, req *wire.ProofRequest) int {
	if st != backend.Membership {
		return 0
	}
	return int(req.Depth)
}

func (s *Server) produce(st backend.Statement, req *wire.ProofRequest, peerID string) *wire.ProofResponse {
	tag := wire.StatementTag(string(st), SchemaVersion)
	depth := statementDepth(st, req)

	if s.mode == ModeReal {
		data, err := s.assets.Load(string(st), SchemaVersion, depth, proofFileFor[st])
		switch {
		case err == nil:
			return &wire.ProofResponse{StatementTag: tag, Status: wire.StatusOK, ProofCBOR: data}
		case err == asset.ErrNotAvailable:
			if req.RequireReal {
				return wire.ProofResponseUnavailable(tag)
			}
			// fall through to an in-process Sigma proof, marked as a
			// fallback so the client can distinguish it from a
			// genuine pre-generated asset.
		default:
			return wire.ProofResponseFailed(tag, err.Error())
		}
	}

	pctx := &statement.ProofContext{PeerID: peerID, SessionID: string(req.Nonce), Timestamp: uint64(time.Now().Unix())}
	proof, err := s.backend.Prove(st, pctx, depth)
	if err != nil {
		return wire.ProofResponseFailed(tag, err.Error())
	}
	resp, err := wire.ProofResponseOK(tag, proof)
	if err != nil {
		return wire.ProofResponseFailed(tag, err.Error())
	}
	if s.mode == ModeReal {
		resp.Fallback = true
	}
	return resp
}
