package asset

import (
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/privacyzk/core/pkg/curve"
	"github.com/privacyzk/core/pkg/statement"
	"github.com/privacyzk/core/pkg/statement/continuity"
	"github.com/privacyzk/core/pkg/statement/membership"
	"github.com/privacyzk/core/pkg/statement/unlinkability"
)

// vkSize is the byte length of a verification-key asset: the two
// SEC1-compressed generator points (G, H) zk-genassets writes.
const vkSize = 2 * curve.PointSize

// expectedStatementType maps an asset path's {statement} segment to the
// registry type string its proof asset must declare, so a proof file
// dropped under the wrong statement's directory is caught as BadAsset
// rather than forwarded to a client under the wrong tag.
var expectedStatementType = map[string]string{
	"membership":    membership.StatementType,
	"continuity":    continuity.StatementType,
	"unlinkability": unlinkability.StatementType,
}

// Loader resolves and reads asset files rooted at a single directory,
// caching decoded bytes across repeated requests for the same path.
type Loader struct {
	dir   string
	cache *Cache
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir, cache: NewCache(DefaultMaxEntries)}
}

// Load resolves and reads one recognized asset file. A missing file
// yields ErrNotAvailable; an unrecognized file name yields ErrUnknownFile
// before any filesystem access occurs; a file that exists but has the
// wrong size or fails to decode as its recognized kind yields
// ErrBadAsset.
func (l *Loader) Load(statementName string, schemaVersion uint8, depth int, file string) ([]byte, error) {
	path, err := Path(l.dir, statementName, schemaVersion, depth, file)
	if err != nil {
		return nil, err
	}

	if cached, ok := l.cache.Get(path); ok {
		return cached, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotAvailable
		}
		return nil, ErrBadAsset
	}

	if err := validate(statementName, file, data); err != nil {
		return nil, err
	}

	// A cache-full condition is not fatal: the read already succeeded,
	// so the caller still gets its data, just not memoized.
	_ = l.cache.Put(path, data)
	return data, nil
}

// validate checks that data matches the shape expected for the
// recognized file kind named by file: a verification key must be two
// valid SEC1-compressed points, a proof must decode as a ZKProof whose
// declared statement type matches statementName, and public inputs must
// decode as a CBOR byte map (whether that encoding is canonical is not
// checked). Anything else is ErrBadAsset.
func validate(statementName, file string, data []byte) error {
	switch {
	case strings.HasSuffix(file, "_vk.bin"):
		if len(data) != vkSize {
			return ErrBadAsset
		}
		if _, err := curve.DecodePoint(data[:curve.PointSize]); err != nil {
			return ErrBadAsset
		}
		if _, err := curve.DecodePoint(data[curve.PointSize:]); err != nil {
			return ErrBadAsset
		}
		return nil
	case strings.HasSuffix(file, "_proof.bin"):
		proof, err := statement.Decode(data)
		if err != nil {
			return ErrBadAsset
		}
		if proof.StatementType != expectedStatementType[statementName] {
			return ErrBadAsset
		}
		return nil
	default:
		var publicInputs map[string][]byte
		if err := cbor.Unmarshal(data, &publicInputs); err != nil {
			return ErrBadAsset
		}
		return nil
	}
}

// Available reports whether every recognized file for (statementName,
// schemaVersion, depth) exists on disk, without reading their contents.
func (l *Loader) Available(statementName string, schemaVersion uint8, depth int) bool {
	for file := range recognizedFiles[statementName] {
		path, err := Path(l.dir, statementName, schemaVersion, depth, file)
		if err != nil {
			return false
		}
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}
