// Package web serves the explorer to browsers. Each websocket connection gets
// its own session; input arrives as JSON, frames leave as PNG tiles.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/coder/websocket"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/config"
)

//go:embed static
var static embed.FS

// Handler serves the page at / and sessions at /ws. When rpc is non-nil,
// tile RPC connections at /rpc are handed to it.
func Handler(cfg config.Config, originPatterns []string, rpc *RPCListener) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(cfg, originPatterns))
	if rpc != nil {
		mux.HandleFunc("/rpc", rpc.handler(originPatterns))
	}

	files, err := fs.Sub(static, "static")
	if err != nil {
		panic(err) // embedded at build time
	}
	mux.Handle("/", http.FileServer(http.FS(files)))
	return mux
}

// NewServer returns an http.Server for Handler listening on port.
func NewServer(cfg config.Config, port int, originPatterns []string, rpc *RPCListener) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           Handler(cfg, originPatterns, rpc),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// websocketHandler upgrades the request and runs a session until the client
// quits or goes away.
func websocketHandler(cfg config.Config, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			mandel.Logger().Warn("websocket accept", "remote", r.RemoteAddr, "err", err)
			return
		}
		c.SetReadLimit(readLimit)

		log := mandel.Logger().With("remote", r.RemoteAddr)
		log.Info("session started")
		if err := serveSession(r.Context(), c, cfg); err != nil {
			log.Warn("session ended", "err", err)
			c.Close(websocket.StatusInternalError, "session failed")
			return
		}
		log.Info("session ended")
		c.Close(websocket.StatusNormalClosure, "")
	}
}
