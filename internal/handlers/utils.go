package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"
)

// seatCookie is the cookie a browser client may carry its seat token in.
const seatCookie = "seat_token"

// seatToken extracts a seat token from the Authorization bearer header, the
// "token" query parameter, or the seat cookie, in that order.
func seatToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if t := r.URL.Query().Get("token"); t != "" {
		return t
	}
	if c, err := r.Cookie(seatCookie); err == nil {
		return c.Value
	}
	return ""
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type stateMessage struct {
	Type  string      `json:"type"`
	State interface{} `json:"state"`
}

// sendWsMessage marshals a message and sends it to the WebSocket client
// under a write timeout.
func sendWsMessage(ctx context.Context, logger *logrus.Logger, c *websocket.Conn, message interface{}) {
	if c == nil {
		return
	}
	msgBytes, err := json.Marshal(message)
	if err != nil {
		logger.Errorf("Error marshaling WebSocket message: %v", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := c.Write(writeCtx, websocket.MessageText, msgBytes); err != nil {
		status := websocket.CloseStatus(err)
		if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
			logger.Debugf("Error writing WebSocket message: %v (Status: %d)", err, status)
		}
		// The read loop notices the closed connection.
	}
}

// sendWsError sends a structured error message to the client.
func sendWsError(ctx context.Context, logger *logrus.Logger, c *websocket.Conn, errorMsg string) {
	sendWsMessage(ctx, logger, c, map[string]interface{}{
		"type":    "error",
		"message": errorMsg,
	})
}
