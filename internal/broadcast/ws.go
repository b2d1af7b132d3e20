package broadcast

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

const pingInterval = 54 * time.Second

// Serve upgrades r to a WebSocket connection, registers a subscription
// with initial (a snapshot followed by the recent log entries), and pumps
// Hub broadcasts to the client until it disconnects or the hub evicts
// it. The client's own messages are read and discarded — this is a
// push-only feed served at `GET /ws`.
func Serve(h *Hub, w http.ResponseWriter, r *http.Request, logger *slog.Logger, initial ...[]byte) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  []string{"*"},
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("websocket upgrade failed", "error", err)
		}
		return
	}

	sub := h.Register(initial...)
	ctx := r.Context()

	go readUntilClosed(ctx, conn)
	writePump(ctx, conn, sub, logger)

	h.Unregister(sub)
	conn.Close(websocket.StatusNormalClosure, "")
}

// readUntilClosed discards incoming frames; its only purpose is to
// notice the client closing the connection.
func readUntilClosed(ctx context.Context, conn *websocket.Conn) {
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

func writePump(ctx context.Context, conn *websocket.Conn, sub *Subscription, logger *slog.Logger) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case payload, ok := <-sub.C():
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := conn.Write(writeCtx, websocket.MessageText, payload)
			cancel()
			if err != nil {
				if logger != nil {
					logger.Debug("websocket write failed, closing", "error", err)
				}
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}
