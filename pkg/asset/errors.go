// Package asset implements the read-only asset store the proof-exchange
// server's "real" prove-mode loads pre-generated verification keys,
// public inputs, and proofs from.
package asset

import "errors"

var (
	// ErrNotAvailable is returned when a requested asset file does not
	// exist. It is not a fatal condition: the caller surfaces it as a
	// NOT_AVAILABLE response rather than an error.
	ErrNotAvailable = errors.New("asset: not available")

	// ErrBadAsset is returned when an asset file exists but its size or
	// encoding does not match what the recognized file name expects.
	ErrBadAsset = errors.New("asset: malformed asset file")

	// ErrUnknownFile is returned when a file name outside the recognized
	// per-statement set is requested.
	ErrUnknownFile = errors.New("asset: unrecognized file name")
)
