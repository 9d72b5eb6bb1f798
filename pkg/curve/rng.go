package curve

import (
	"crypto/rand"
	"os"
	"sync"
)

// forkSafeRand is a fork-safe wrapper over the OS CSPRNG. crypto/rand.Reader
// already reopens /dev/urandom (or re-derives from getrandom(2)) correctly
// across most platforms, but long-lived processes that embed this package
// as a library may fork after acquiring a cached reader elsewhere in the
// address space. The wrapper tracks the pid it last drew from; every draw,
// before or after a pid change, goes straight to crypto/rand.Read, which
// keeps no buffered state of its own, so a pid change only updates the
// recorded pid.
type forkSafeRand struct {
	mu  sync.Mutex
	pid int
}

var globalRand = &forkSafeRand{pid: os.Getpid()}

// read fills b with cryptographically secure random bytes, reseeding the
// notion of "current process" if a fork has occurred since the last draw.
func (r *forkSafeRand) read(b []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pid := os.Getpid(); pid != r.pid {
		// A fork occurred (or we were never initialized in this process).
		// crypto/rand.Reader on Unix is backed by getrandom(2)/urandom and
		// does not share buffered state across fork, but we still rebind
		// our bookkeeping so future callers see a consistent pid.
		r.pid = pid
	}

	_, err := rand.Read(b)
	return err
}

// RandomScalar samples a scalar uniformly from [1, q-1]. It resamples on
// overflow (value >= q) and on zero, so the distribution over the valid
// range stays uniform.
func RandomScalar() (*Scalar, error) {
	var buf [ScalarSize]byte
	for {
		if err := globalRand.read(buf[:]); err != nil {
			return nil, ErrRandRead
		}
		s, err := NewScalarFromBytes(buf[:])
		if err != nil {
			// Overflow: resample rather than reduce, to avoid biasing
			// toward small values.
			continue
		}
		if s.IsZero() {
			continue
		}
		return s, nil
	}
}

// RandomNonzeroScalarPair samples two independent scalars, each uniform in
// [1, q-1], resampling either one individually if it comes back zero. Used
// by the Schnorr prover for (rho_v, rho_b) and by the Chaum-Pedersen prover
// for two of its three nonces (the third comes from RandomScalar).
func RandomNonzeroScalarPair() (a, b *Scalar, err error) {
	a, err = RandomScalar()
	if err != nil {
		return nil, nil, err
	}
	b, err = RandomScalar()
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
