package statement

import (
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// maxBodySize mirrors the wire layer's 1 MiB frame cap; it is enforced
// here too so a ZKProof decoded outside the wire layer (e.g. from an
// asset file) is held to the same bound.
const maxBodySize = 1 << 20

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
	once    sync.Once
)

func modes() (cbor.EncMode, cbor.DecMode) {
	once.Do(func() {
		em, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			panic(err) // CanonicalEncOptions() is a fixed, known-good config
		}
		encMode = em

		dm, err := cbor.DecOptions{MaxMapPairs: 256, MaxArrayElements: 256}.DecMode()
		if err != nil {
			panic(err)
		}
		decMode = dm
	})
	return encMode, decMode
}

// Encode serializes a ZKProof to canonical CBOR: map keys sorted ascending
// by raw byte sequence, byte-stable across runs and independent
// implementations.
func Encode(p *ZKProof) ([]byte, error) {
	em, _ := modes()
	return em.Marshal(p)
}

// Decode parses canonical CBOR into a ZKProof, rejecting oversize bodies
// before CBOR parsing even begins.
func Decode(b []byte) (*ZKProof, error) {
	if len(b) > maxBodySize {
		return nil, ErrBadEncoding
	}
	_, dm := modes()
	var p ZKProof
	if err := dm.Unmarshal(b, &p); err != nil {
		return nil, ErrBadEncoding
	}
	return &p, nil
}
