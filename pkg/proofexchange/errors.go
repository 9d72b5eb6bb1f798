package proofexchange

import "errors"

var (
	// ErrTimeout is returned by the client when the total deadline for a
	// batch elapses before all responses (and EndOfBatch) arrive.
	ErrTimeout = errors.New("proofexchange: timed out waiting for response")

	// ErrPeerClosed is returned when the stream ends before the batch
	// completes.
	ErrPeerClosed = errors.New("proofexchange: peer closed the stream before completing the batch")

	// ErrUnexpectedStatement is returned when a response's statement tag
	// does not match the fixed delivery order the client expects next.
	ErrUnexpectedStatement = errors.New("proofexchange: response arrived out of the expected order")
)
