// zk-serve runs a proof-exchange server: a libp2p host that answers
// anon_set_membership, identity_continuity, and session_unlinkability
// proof batches over the /privacyzk/1.0.0 stream protocol.
//
// Usage:
//
//	zk-serve [options]
//
// Options:
//
//	-listen-addr  Comma-separated multiaddrs to listen on (default: /ip4/0.0.0.0/tcp/4001)
//	-prove-mode   "sigma" to always compute proofs in-process, "real" to
//	              serve pre-generated assets (falling back to sigma when
//	              an asset is missing and the client did not require-real)
//	-assets-dir   Root directory of the pre-generated asset tree (only
//	              consulted in "real" mode)
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/privacyzk/core/internal/config"
	"github.com/privacyzk/core/internal/logging"
	"github.com/privacyzk/core/pkg/proofexchange"
)

func main() {
	var listenAddrs string
	var proveMode string
	var assetsDir string

	flag.StringVar(&listenAddrs, "listen-addr", "/ip4/0.0.0.0/tcp/4001", "comma-separated multiaddrs to listen on")
	flag.StringVar(&proveMode, "prove-mode", "sigma", `"sigma" or "real"`)
	flag.StringVar(&assetsDir, "assets-dir", config.AssetsDir(""), "root of the pre-generated asset tree (real mode only); defaults to $ASSETS_DIR")
	flag.Parse()

	log := logging.New("zk-serve")

	mode := proofexchange.ModeSigma
	switch proveMode {
	case "sigma":
		mode = proofexchange.ModeSigma
	case "real":
		mode = proofexchange.ModeReal
		if assetsDir == "" {
			fmt.Fprintln(os.Stderr, "zk-serve: -assets-dir is required when -prove-mode=real")
			os.Exit(3)
		}
	default:
		fmt.Fprintf(os.Stderr, "zk-serve: unknown -prove-mode %q (want sigma or real)\n", proveMode)
		os.Exit(3)
	}

	h, err := proofexchange.NewHost(proofexchange.HostConfig{
		ListenAddrs: strings.Split(listenAddrs, ","),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to start libp2p host")
		os.Exit(2)
	}
	defer h.Close()

	srv := proofexchange.NewServer(mode, assetsDir)
	proofexchange.Serve(h, srv)

	log.Info().
		Str("peer_id", h.ID().String()).
		Str("prove_mode", proveMode).
		Msg("proof-exchange server listening")
	for _, a := range h.Addrs() {
		log.Info().Str("addr", fmt.Sprintf("%s/p2p/%s", a, h.ID())).Msg("listening on")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")
}
