// zk-genassets runs every statement's Sigma-protocol prover once and
// writes the resulting verification-key, public-inputs, and proof files
// into the canonical asset tree zk-serve's "real" prove-mode reads from.
//
// It is meant to be run once to produce a frozen fixture: the commitment
// blindings sampled while proving are fresh random values on every run,
// so the generated proof bytes are not byte-identical across
// invocations even though they all verify. Treat the output directory as
// a build artifact to be regenerated deliberately, not as something that
// should match a prior run byte-for-byte.
//
// Usage:
//
//	zk-genassets -assets-dir <dir> [options]
//
// Options:
//
//	-assets-dir  Root of the asset tree to write (required)
//	-peer-id     Demo peer identity to bind the generated proofs to
//	-depth       Membership anonymity-set depth (default 16)
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"

	"github.com/privacyzk/core/internal/logging"
	"github.com/privacyzk/core/pkg/asset"
	"github.com/privacyzk/core/pkg/backend"
	"github.com/privacyzk/core/pkg/commitment"
	"github.com/privacyzk/core/pkg/proofexchange"
	"github.com/privacyzk/core/pkg/statement"
)

// assetFiles names, for each statement, the (vk, public_inputs, proof)
// file triple asset.Path recognizes.
var assetFiles = map[backend.Statement][3]string{
	backend.Membership:    {"membership_vk.bin", "public_inputs.bin", "membership_proof.bin"},
	backend.Continuity:    {"continuity_vk.bin", "continuity_public_inputs.bin", "continuity_proof.bin"},
	backend.Unlinkability: {"unlinkability_vk.bin", "unlinkability_public_inputs.bin", "unlinkability_proof.bin"},
}

func main() {
	var assetsDir string
	var peerID string
	var depth int

	flag.StringVar(&assetsDir, "assets-dir", "", "root of the asset tree to write (required)")
	flag.StringVar(&peerID, "peer-id", "demo-peer", "demo peer identity the generated proofs are bound to")
	flag.IntVar(&depth, "depth", 16, "membership anonymity-set depth")
	flag.Parse()

	log := logging.New("zk-genassets")

	if assetsDir == "" {
		fmt.Fprintln(os.Stderr, "zk-genassets: -assets-dir is required")
		os.Exit(3)
	}

	b := backend.New()
	params := commitment.Setup()
	vkBytes := append(append([]byte{}, params.G.Encode()...), params.H.Encode()...)

	for _, st := range backend.All {
		stDepth := 0
		if st == backend.Membership {
			stDepth = depth
		}

		ctx := &statement.ProofContext{PeerID: peerID, SessionID: "genassets"}
		proof, err := b.Prove(st, ctx, stDepth)
		if err != nil {
			log.Error().Err(err).Str("statement", string(st)).Msg("prove failed")
			os.Exit(1)
		}

		publicInputs, err := marshalPublicInputs(proof.PublicInputs)
		if err != nil {
			log.Error().Err(err).Str("statement", string(st)).Msg("encode public inputs failed")
			os.Exit(1)
		}

		proofBytes, err := statement.Encode(proof)
		if err != nil {
			log.Error().Err(err).Str("statement", string(st)).Msg("encode proof failed")
			os.Exit(1)
		}

		files := assetFiles[st]
		if err := writeAsset(assetsDir, string(st), stDepth, files[0], vkBytes); err != nil {
			log.Error().Err(err).Msg("write vk failed")
			os.Exit(1)
		}
		if err := writeAsset(assetsDir, string(st), stDepth, files[1], publicInputs); err != nil {
			log.Error().Err(err).Msg("write public inputs failed")
			os.Exit(1)
		}
		if err := writeAsset(assetsDir, string(st), stDepth, files[2], proofBytes); err != nil {
			log.Error().Err(err).Msg("write proof failed")
			os.Exit(1)
		}

		log.Info().Str("statement", string(st)).Int("depth", stDepth).Msg("asset generated")
	}
}

func marshalPublicInputs(publicInputs map[string][]byte) ([]byte, error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(publicInputs)
}

func writeAsset(assetsDir, statementName string, depth int, file string, data []byte) error {
	path, err := asset.Path(assetsDir, statementName, proofexchange.SchemaVersion, depth, file)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
