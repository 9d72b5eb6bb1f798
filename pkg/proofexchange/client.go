package proofexchange

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/privacyzk/core/pkg/backend"
	"github.com/privacyzk/core/pkg/statement"
	"github.com/privacyzk/core/pkg/wire"
)

// Outcome is the client-observed result for one statement in a batch.
type Outcome struct {
	StatementTag string
	Status       wire.Status
	Proof        *statement.ZKProof
	Fallback     bool
	Reason       string
}

// Client drives one batch exchange per call against a Stream. It never
// retries on the same connection: a single Request (or RequestAll) call
// makes exactly one pass over the wire protocol and returns whatever it
// got before its deadline.
type Client struct {
	timeout time.Duration
}

// NewClient constructs a Client with the given total batch timeout
// (T_total). A non-positive timeout is replaced with DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{timeout: timeout}
}

// RequestAll is Request with statementReq fixed to "all": it requests
// every statement in the fixed membership -> continuity -> unlinkability
// order.
func (c *Client) RequestAll(stream Stream, requireReal bool) ([]Outcome, error) {
	return c.Request(stream, "all", requireReal)
}

// Request sends a single ProofRequest frame naming statementReq
// ("membership", "continuity", "unlinkability", or "all"), reads back
// the matching ProofResponse frames in the fixed membership ->
// continuity -> unlinkability order (restricted to whichever statements
// statementReq designates), independently re-verifies every OK proof,
// and returns the outcomes collected so far together with any error that
// cut the batch short. An OK proof that fails re-verification is reported
// as a FAILED outcome whose Reason is the verifier's error.
//
// The request's nonce doubles as the session identifier the server folds
// into its proof context, binding every proof in the batch to this
// exchange; peer identity is supplied by the transport (the libp2p
// connection's remote peer ID), not by the client.
//
// requireReal is forwarded on the request: when set, a server with no
// pre-generated asset answers NOT_AVAILABLE for a statement instead of
// silently downgrading to a locally computed proof.
func (c *Client) Request(stream Stream, statementReq string, requireReal bool) ([]Outcome, error) {
	statements, err := backend.StatementsFor(statementReq)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(c.timeout)
	sw := wire.NewStreamWriter(stream)
	sr := wire.NewStreamReader(stream)

	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	req := &wire.ProofRequest{
		Statement:     statementReq,
		SchemaVersion: SchemaVersion,
		Depth:         uint8(backend.DefaultDepth(backend.Membership)),
		Nonce:         nonce,
		DeadlineMs:    uint32(time.Until(deadline) / time.Millisecond),
		RequireReal:   requireReal,
	}
	body, err := wire.EncodeProofRequest(req)
	if err != nil {
		return nil, err
	}
	if err := sw.WriteFrame(body); err != nil {
		return nil, err
	}

	readFrame := func() ([]byte, error) {
		type result struct {
			body []byte
			err  error
		}
		ch := make(chan result, 1)
		go func() {
			body, err := sr.ReadFrame()
			ch <- result{body, err}
		}()
		remaining := time.Until(deadline)
		if remaining <= 0 {
			stream.Close()
			return nil, ErrTimeout
		}
		select {
		case r := <-ch:
			return r.body, r.err
		case <-time.After(remaining):
			stream.Close()
			return nil, ErrTimeout
		}
	}

	outcomes := make([]Outcome, 0, len(statements))
	for _, st := range statements {
		expectedTag := wire.StatementTag(string(st), SchemaVersion)

		body, err := readFrame()
		if err != nil {
			if err == io.EOF {
				return outcomes, ErrPeerClosed
			}
			return outcomes, err
		}
		resp, err := wire.DecodeProofResponse(body)
		if err != nil {
			return outcomes, err
		}
		if resp.StatementTag != expectedTag {
			return outcomes, ErrUnexpectedStatement
		}

		oc := Outcome{StatementTag: resp.StatementTag, Status: resp.Status, Fallback: resp.Fallback, Reason: resp.Error}
		if resp.Status == wire.StatusOK {
			proof, err := wire.DecodeEmbeddedProof(resp)
			if err != nil {
				return outcomes, err
			}
			if err := backend.Verify(proof); err != nil {
				oc.Status = wire.StatusFailed
				oc.Reason = err.Error()
			} else {
				oc.Proof = proof
			}
		}
		outcomes = append(outcomes, oc)
	}

	if _, err := readFrame(); err != nil && err != io.EOF {
		return outcomes, err
	}
	return outcomes, nil
}
