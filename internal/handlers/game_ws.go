// internal/handlers/game_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/jason-s-yu/bang/internal/auth"
	"github.com/jason-s-yu/bang/internal/game"
	"github.com/jason-s-yu/bang/internal/middleware"
	"github.com/jason-s-yu/bang/internal/models"
	"github.com/sirupsen/logrus"
)

// actionPing is answered by the handler and never reaches the engine.
const actionPing = "ping"

// GameWSHandler upgrades the HTTP connection to WebSocket for a specific game
// instance at /game/{id}/ws. The client must speak the "game" subprotocol
// and present a seat token for that table. It then receives its view of
// the table after every change and may send models.GameAction messages.
func GameWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"game"},
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			logger.Warnf("WebSocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "Internal server error during handler exit.")

		if c.Subprotocol() != "game" {
			c.Close(BadSubprotocolError, "Client must use the 'game' subprotocol.")
			return
		}

		gameID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			c.Close(InvalidGameIDError, "Invalid game_id format.")
			return
		}
		g, ok := gs.GameStore.GetGame(gameID)
		if !ok {
			c.Close(InvalidGameIDError, "Game not found.")
			return
		}
		seat, err := gs.Verify(gameID, seatToken(r))
		if err != nil {
			logger.WithError(err).WithField("game", gameID).Warn("seat verification failed")
			c.Close(InvalidSeatTokenError, "Invalid seat token.")
			return
		}
		g.Mu.Lock()
		seated := g.Player(seat.Player) != nil
		g.Mu.Unlock()
		if !seated {
			c.Close(UnknownPlayerError, "You are not a player in this game.")
			return
		}

		middleware.LogWebSocketConnect(logger, r.RemoteAddr, gameID.String(), seat.Player)
		gs.attach(gameID, seat.Player, c)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		g.Mu.Lock()
		initial := g.Snapshot(seat.Player)
		g.Mu.Unlock()
		sendWsMessage(ctx, logger, c, stateMessage{Type: "state", State: initial})

		err = readGameMessages(ctx, c, gs, g, seat, logger)

		gs.detach(gameID, seat.Player, c)
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, gameID.String(), seat.Player, err)
		c.Close(websocket.StatusNormalClosure, "")
	}
}

// readGameMessages reads actions from one seat until the connection closes
// or ctx is cancelled. Each applied action is followed by a broadcast of
// the new table state.
func readGameMessages(ctx context.Context, c *websocket.Conn, gs *GameServer, g *game.Game, seat auth.Seat, logger *logrus.Logger) error {
	log := logger.WithFields(logrus.Fields{"game": g.ID, "player": seat.Player})
	for {
		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if msgType != websocket.MessageText {
			log.Warnf("Received non-text message type %d. Ignoring.", msgType)
			continue
		}

		var msg models.GameAction
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debugf("Invalid JSON received: %v", err)
			sendWsError(ctx, logger, c, "Invalid JSON format.")
			continue
		}
		if msg.ActionType == actionPing {
			sendWsMessage(ctx, logger, c, map[string]string{"type": "pong"})
			continue
		}

		log.Debugf("Received action '%s'", msg.ActionType)

		g.Mu.Lock()
		if g.IsOver() {
			g.Mu.Unlock()
			sendWsError(ctx, logger, c, "Game is over.")
			continue
		}
		p := g.Player(seat.Player)
		if p == nil {
			g.Mu.Unlock()
			return game.ErrUnknownPlayer
		}
		err = applyAction(g, p, msg)
		g.Mu.Unlock()

		if err != nil {
			log.WithError(err).Debug("action rejected")
			sendWsError(ctx, logger, c, err.Error())
			continue
		}
		gs.broadcast(ctx, g)
	}
}
