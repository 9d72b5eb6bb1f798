package asset

import (
	"fmt"
	"path/filepath"
)

// recognizedFiles enumerates the small, per-statement set of file names
// the loader will ever resolve. Any other name is ErrUnknownFile before
// the filesystem is even touched.
var recognizedFiles = map[string]map[string]bool{
	"membership": {
		"membership_vk.bin":    true,
		"public_inputs.bin":    true,
		"membership_proof.bin": true,
	},
	"continuity": {
		"continuity_vk.bin":             true,
		"continuity_public_inputs.bin": true,
		"continuity_proof.bin":          true,
	},
	"unlinkability": {
		"unlinkability_vk.bin":            true,
		"unlinkability_public_inputs.bin": true,
		"unlinkability_proof.bin":         true,
	},
}

// Path resolves the deterministic on-disk location of a recognized asset
// file: {assetsDir}/{statement}/v{schema}/depth-{d}/{file}.
func Path(assetsDir, statementName string, schemaVersion uint8, depth int, file string) (string, error) {
	files, ok := recognizedFiles[statementName]
	if !ok || !files[file] {
		return "", ErrUnknownFile
	}
	return filepath.Join(assetsDir, statementName, fmt.Sprintf("v%d", schemaVersion), fmt.Sprintf("depth-%d", depth), file), nil
}
