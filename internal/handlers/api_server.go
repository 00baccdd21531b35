// internal/handlers/api_server.go
package handlers

import (
	"net/http"

	"github.com/jason-s-yu/bang/internal/middleware"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every game route behind the request logger.
func NewRouter(logger *logrus.Logger, gs *GameServer) *http.ServeMux {
	mux := http.NewServeMux()
	logged := middleware.LogMiddleware(logger)

	mux.Handle("POST /game/create", logged(CreateGameHandler(gs)))
	mux.Handle("POST /game/{id}/join", logged(JoinGameHandler(gs)))
	mux.Handle("POST /game/{id}/start", logged(StartGameHandler(gs)))
	mux.Handle("GET /game/{id}/state", logged(StateHandler(gs)))
	mux.Handle("GET /game/{id}/ws", logged(GameWSHandler(logger, gs)))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "games": gs.GameStore.Len()})
	})
	return mux
}
