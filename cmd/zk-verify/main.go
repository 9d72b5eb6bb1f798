// zk-verify dials a zk-serve peer, requests the proof batch for the
// chosen statement (or the full membership / continuity / unlinkability
// batch when -statement is "all"), verifies each proof it receives, and
// reports the outcome.
//
// Usage:
//
//	zk-verify -peer <multiaddr> [options]
//
// Options:
//
//	-peer          Full /p2p/ multiaddr of the server to dial (required)
//	-statement     "all" (default), "membership", "continuity", or "unlinkability"
//	-assets-dir    Reserved for a future local-verification fallback; unused today (defaults to $ASSETS_DIR)
//	-timeout       Total batch deadline (default 120s, or $ZK_TIMEOUT seconds)
//	-require-real  Reject a fallback (non pre-generated) proof instead of accepting it
//
// Exit codes: 0 success, 1 verification failure, 2 protocol/timeout
// error, 3 bad usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/privacyzk/core/internal/config"
	"github.com/privacyzk/core/internal/logging"
	"github.com/privacyzk/core/pkg/proofexchange"
	"github.com/privacyzk/core/pkg/wire"
)

func main() {
	var peerAddr string
	var wantStatement string
	var assetsDir string
	var timeout time.Duration
	var requireReal bool

	flag.StringVar(&peerAddr, "peer", "", "full /p2p/ multiaddr of the server to dial")
	flag.StringVar(&wantStatement, "statement", "all", `"all", "membership", "continuity", or "unlinkability"`)
	flag.StringVar(&assetsDir, "assets-dir", config.AssetsDir(""), "reserved for a future local-verification fallback; defaults to $ASSETS_DIR")
	flag.DurationVar(&timeout, "timeout", config.Timeout(proofexchange.DefaultTimeout), "total batch deadline")
	flag.BoolVar(&requireReal, "require-real", false, "reject a fallback proof instead of accepting it")
	flag.Parse()

	log := logging.New("zk-verify").With().Str("run_id", uuid.New().String()).Logger()

	if peerAddr == "" {
		fmt.Fprintln(os.Stderr, "zk-verify: -peer is required")
		os.Exit(3)
	}
	switch wantStatement {
	case "all", "membership", "continuity", "unlinkability":
	default:
		fmt.Fprintf(os.Stderr, "zk-verify: unknown -statement %q\n", wantStatement)
		os.Exit(3)
	}

	h, err := proofexchange.NewHost(proofexchange.HostConfig{})
	if err != nil {
		log.Error().Err(err).Msg("failed to start libp2p host")
		os.Exit(2)
	}
	defer h.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stream, err := proofexchange.Dial(ctx, h, peerAddr)
	if err != nil {
		log.Error().Err(err).Str("peer", peerAddr).Msg("failed to dial peer")
		os.Exit(2)
	}
	defer stream.Close()

	client := proofexchange.NewClient(timeout)
	outcomes, err := client.Request(stream, wantStatement, requireReal)
	if err != nil {
		log.Error().Err(err).Msg("proof-exchange batch failed")
		os.Exit(2)
	}

	exitCode := 0
	for _, oc := range outcomes {
		entry := log.Info()
		switch oc.Status {
		case wire.StatusOK:
			entry.Bool("fallback", oc.Fallback)
		default:
			entry = log.Warn()
			exitCode = 1
		}
		entry.Str("statement", oc.StatementTag).Str("status", string(oc.Status)).Str("reason", oc.Reason).Msg("outcome")
		fmt.Printf("%-24s %-13s%s\n", oc.StatementTag, oc.Status, fallbackSuffix(oc))
	}

	os.Exit(exitCode)
}

func fallbackSuffix(oc proofexchange.Outcome) string {
	if oc.Fallback {
		return " (FALLBACK)"
	}
	return ""
}
