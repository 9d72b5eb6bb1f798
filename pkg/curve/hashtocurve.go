package curve

import (
	"crypto/sha256"
	"encoding/binary"
)

// HashToCurve derives a point deterministically from a domain tag using
// try-and-increment: hash the tag with an incrementing 32-bit counter,
// treat the digest as a compressed point's x-coordinate (with the even-y
// prefix byte), and accept the first candidate that lands on the curve.
// This point is public (it becomes the Pedersen generator H), so there is
// no constant-time requirement on the search.
func HashToCurve(domainTag []byte) *Point {
	var counter uint32
	for {
		var ctrBytes [4]byte
		binary.BigEndian.PutUint32(ctrBytes[:], counter)

		h := sha256.New()
		h.Write(domainTag)
		h.Write(ctrBytes[:])
		digest := h.Sum(nil)

		candidate := make([]byte, PointSize)
		candidate[0] = 0x02
		copy(candidate[1:], digest)

		if p, err := DecodePoint(candidate); err == nil {
			return p
		}

		counter++
	}
}
