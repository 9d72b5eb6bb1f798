// Package curve wraps secp256k1 scalar and point arithmetic for the
// privacy-proof core. It exposes just enough of the group to build
// Pedersen commitments and Sigma protocols on top: scalar arithmetic mod
// the curve order, point addition/scalar multiplication, SEC1 compressed
// encoding, and a fork-safe wrapper over the OS CSPRNG.
package curve

import "errors"

// Errors returned by the curve package.
var (
	// ErrInvalidScalar is returned when a scalar encoding is not exactly
	// 32 bytes or is out of range (>= q).
	ErrInvalidScalar = errors.New("curve: invalid scalar")

	// ErrInvalidPoint is returned when a point is not on the curve, is the
	// identity where identity is forbidden, or fails to parse.
	ErrInvalidPoint = errors.New("curve: invalid point")

	// ErrRandRead is returned when the OS CSPRNG fails to produce bytes.
	ErrRandRead = errors.New("curve: failed to read random bytes")
)
