package statement

import "github.com/privacyzk/core/pkg/merkle"

// EncodeMerklePath packs a path witness into a fixed-width byte string: one
// 33-byte step per tree level (32-byte sibling hash, 1-byte left/right
// flag), in leaf-to-root order. This is the on-the-wire form carried in a
// membership proof's public_inputs.
func EncodeMerklePath(path merkle.Path) []byte {
	out := make([]byte, 0, len(path)*33)
	for _, step := range path {
		out = append(out, step.Sibling[:]...)
		if step.IsLeft {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

// DecodeMerklePath unpacks the fixed-width form produced by
// EncodeMerklePath. It returns ErrBadEncoding if the byte length is not a
// multiple of 33.
func DecodeMerklePath(b []byte) (merkle.Path, error) {
	if len(b)%33 != 0 {
		return nil, ErrBadEncoding
	}
	steps := len(b) / 33
	path := make(merkle.Path, steps)
	for i := 0; i < steps; i++ {
		off := i * 33
		var step merkle.PathStep
		copy(step.Sibling[:], b[off:off+32])
		step.IsLeft = b[off+32] == 1
		path[i] = step
	}
	return path, nil
}
