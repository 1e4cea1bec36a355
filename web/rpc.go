package web

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/coder/websocket"

	mandel "github.com/marben/mandelzoom"
)

// rpcReadLimit bounds one websocket message on the tile RPC connection. A
// full 64×64 tile is 16 KiB of pixels plus framing.
const rpcReadLimit = 1 << 20

// RPCListener is a net.Listener over websocket connections accepted at
// /rpc, so an irpc server can serve them next to the page.
type RPCListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

var _ net.Listener = (*RPCListener)(nil)

// NewRPCListener stops accepting once ctx is done or Close is called.
func NewRPCListener(ctx context.Context, addr string) *RPCListener {
	ctx, cancel := context.WithCancel(ctx)
	return &RPCListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *RPCListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *RPCListener) Addr() net.Addr {
	return l.addr
}

func (l *RPCListener) Close() error {
	l.cancel()
	return nil
}

// handler upgrades the request and hands the connection to Accept.
func (l *RPCListener) handler(originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			mandel.Logger().Warn("rpc accept", "remote", r.RemoteAddr, "err", err)
			return
		}
		c.SetReadLimit(rpcReadLimit)

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "shutting down")
		}
	}
}

// DialRPC opens a tile RPC connection to a running `mandel serve` at url,
// e.g. ws://host:8080/rpc.
func DialRPC(ctx context.Context, url string) (net.Conn, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	c.SetReadLimit(rpcReadLimit)
	// The dial context only bounds the handshake; the connection lives
	// until closed.
	return websocket.NetConn(context.Background(), c, websocket.MessageBinary), nil
}

// RPCURL turns a --server value into the /rpc websocket URL. A bare
// host:port gets ws:// and the path; http(s) URLs switch to ws(s).
func RPCURL(server string) string {
	switch {
	case strings.HasPrefix(server, "http://"):
		server = "ws://" + strings.TrimPrefix(server, "http://")
	case strings.HasPrefix(server, "https://"):
		server = "wss://" + strings.TrimPrefix(server, "https://")
	case !strings.HasPrefix(server, "ws://") && !strings.HasPrefix(server, "wss://"):
		server = "ws://" + server
	}
	scheme, rest, _ := strings.Cut(server, "://")
	if !strings.Contains(rest, "/") {
		rest += "/rpc"
	}
	return scheme + "://" + rest
}

type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
