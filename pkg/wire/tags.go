package wire

import "fmt"

// StatementTag formats the wire-canonical statement tag for a short
// statement name and the pinned schema version (schema_version = 2),
// e.g. "membership" -> "membership_v2". This is the tag surfaced to
// clients in ProofResponse.StatementTag and used in the asset path
// template; it is a distinct counter from each backend's in-process
// registry version (always 1 for the Sigma-protocol descriptor
// revision).
func StatementTag(statementName string, schemaVersion uint8) string {
	return fmt.Sprintf("%s_v%d", statementName, schemaVersion)
}
