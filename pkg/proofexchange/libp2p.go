package proofexchange

import (
	"context"

	"github.com/libp2p/go-libp2p"
	"github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/core/protocol"
	"github.com/multiformats/go-multiaddr"
)

// HostConfig configures the libp2p host a zk-serve or zk-verify process
// runs.
type HostConfig struct {
	// ListenAddrs are multiaddrs to listen on, e.g.
	// "/ip4/0.0.0.0/tcp/4001". A client that only dials out may leave
	// this empty.
	ListenAddrs []string
	// PrivateKey is the host's stable identity key. A nil key makes
	// libp2p generate a fresh one.
	PrivateKey crypto.PrivKey
}

// NewHost builds a libp2p host.Host from cfg.
func NewHost(cfg HostConfig) (host.Host, error) {
	opts := make([]libp2p.Option, 0, 2)

	if len(cfg.ListenAddrs) > 0 {
		addrs := make([]multiaddr.Multiaddr, 0, len(cfg.ListenAddrs))
		for _, a := range cfg.ListenAddrs {
			ma, err := multiaddr.NewMultiaddr(a)
			if err != nil {
				return nil, err
			}
			addrs = append(addrs, ma)
		}
		opts = append(opts, libp2p.ListenAddrs(addrs...))
	}
	if cfg.PrivateKey != nil {
		opts = append(opts, libp2p.Identity(cfg.PrivateKey))
	}

	return libp2p.New(opts...)
}

// Serve registers srv as the handler for ProtocolID on h. Each inbound
// stream is handled on its own goroutine and closed once HandleStream
// returns, regardless of outcome.
func Serve(h host.Host, srv *Server) {
	h.SetStreamHandler(protocol.ID(ProtocolID), func(s network.Stream) {
		defer s.Close()
		_ = srv.HandleStream(s, s.Conn().RemotePeer().String())
	})
}

// Dial connects h to the peer named by a /p2p/ multiaddr and opens a
// ProtocolID stream to it.
func Dial(ctx context.Context, h host.Host, addr string) (network.Stream, error) {
	target, err := multiaddr.NewMultiaddr(addr)
	if err != nil {
		return nil, err
	}
	info, err := peer.AddrInfoFromP2pAddr(target)
	if err != nil {
		return nil, err
	}
	if err := h.Connect(ctx, *info); err != nil {
		return nil, err
	}
	return h.NewStream(ctx, info.ID, protocol.ID(ProtocolID))
}
