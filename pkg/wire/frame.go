// Package wire implements the proof-exchange protocol's frame codec:
// every message is a 4-byte big-endian length prefix followed by a
// canonical CBOR body, capped at 1 MiB.
package wire

import (
	"encoding/binary"
	"errors"
	"io"
)

// LengthPrefixSize is the width of the frame length prefix.
const LengthPrefixSize = 4

// MaxFrameSize is the largest body a frame may carry; oversize frames
// close the stream rather than being read further.
const MaxFrameSize = 1 << 20

var (
	ErrFrameTooLarge = errors.New("wire: frame exceeds maximum size")
	ErrEmptyFrame    = errors.New("wire: zero-length frame")
)

// StreamWriter frames outgoing bodies with a big-endian length prefix.
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter wraps w for length-prefixed framing.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// WriteFrame writes body with its length prefix. body must already be
// the encoded CBOR bytes of a ProofRequest, ProofResponse, or EndOfBatch.
func (sw *StreamWriter) WriteFrame(body []byte) error {
	if len(body) > MaxFrameSize {
		return ErrFrameTooLarge
	}
	var lenBuf [LengthPrefixSize]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(body)))
	if _, err := sw.w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := sw.w.Write(body)
	return err
}

// StreamReader reads length-prefixed bodies from a stream.
type StreamReader struct {
	r io.Reader
}

// NewStreamReader wraps r for length-prefixed framing.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r}
}

// ReadFrame reads one length-prefixed body. It returns io.EOF verbatim
// when the stream ends cleanly between frames, and ErrFrameTooLarge
// without consuming the body if the advertised length exceeds
// MaxFrameSize — the caller should close the stream in that case rather
// than attempt to resynchronize.
func (sr *StreamReader) ReadFrame() ([]byte, error) {
	var lenBuf [LengthPrefixSize]byte
	if _, err := io.ReadFull(sr.r, lenBuf[:]); err != nil {
		return nil, err
	}

	frameLen := binary.BigEndian.Uint32(lenBuf[:])
	if frameLen == 0 {
		return nil, ErrEmptyFrame
	}
	if frameLen > MaxFrameSize {
		return nil, ErrFrameTooLarge
	}

	body := make([]byte, frameLen)
	if _, err := io.ReadFull(sr.r, body); err != nil {
		return nil, err
	}
	return body, nil
}
