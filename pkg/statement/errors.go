package statement

import "errors"

// Errors returned by the statement registry and shared proof envelope.
// Each backend package additionally defines the errors specific to its own
// statement (bad Merkle path, tag mismatch, rejected proof of knowledge, ...).
var (
	// ErrBadEncoding covers CBOR decode failures, oversize bodies, and
	// wrong-size fixed-width fields.
	ErrBadEncoding = errors.New("statement: bad encoding")

	// ErrUnknownStatement is returned when (type, version) has no
	// registered descriptor. Verification never dispatches to a guessed
	// or partial match.
	ErrUnknownStatement = errors.New("statement: unknown statement type or version")

	// ErrBadMetadata is returned when a proof's public_inputs are missing
	// a required key or otherwise fail registry-level structural
	// validation (before any cryptographic check runs).
	ErrBadMetadata = errors.New("statement: bad metadata")
)
