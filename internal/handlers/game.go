// internal/handlers/game.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/jason-s-yu/bang/internal/game"
)

type createGameRequest struct {
	Options  map[string]interface{} `json:"options"`
	Password string                 `json:"password"`
}

type joinGameRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// CreateGameHandler handles POST /game/create.
func CreateGameHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		g, err := gs.CreateGame(req.Options, req.Password)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"game_id": g.ID,
			"options": g.Options,
		})
	}
}

// JoinGameHandler handles POST /game/{id}/join and returns a seat token.
func JoinGameHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, ok := pathGameID(w, r)
		if !ok {
			return
		}
		var req joinGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			http.Error(w, "a player name is required", http.StatusBadRequest)
			return
		}
		token, err := gs.JoinGame(gameID, req.Name, req.Password)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: seatCookie, Value: token, Path: "/game/", HttpOnly: true})
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"game_id": gameID,
			"player":  req.Name,
			"token":   token,
		})
	}
}

// StartGameHandler handles POST /game/{id}/start. Any seated player may
// start the game.
func StartGameHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, ok := pathGameID(w, r)
		if !ok {
			return
		}
		if _, err := gs.Verify(gameID, seatToken(r)); err != nil {
			http.Error(w, "invalid seat token", http.StatusUnauthorized)
			return
		}
		if err := gs.StartGame(r.Context(), gameID); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// StateHandler handles GET /game/{id}/state. A valid seat token returns
// that player's view; otherwise the spectator view is returned.
func StateHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, ok := pathGameID(w, r)
		if !ok {
			return
		}
		if token := seatToken(r); token != "" {
			seat, err := gs.Verify(gameID, token)
			if err != nil {
				http.Error(w, "invalid seat token", http.StatusUnauthorized)
				return
			}
			g, found := gs.GameStore.GetGame(gameID)
			if !found {
				http.Error(w, ErrGameNotFound.Error(), http.StatusNotFound)
				return
			}
			g.Mu.Lock()
			s := g.Snapshot(seat.Player)
			g.Mu.Unlock()
			writeJSON(w, http.StatusOK, s)
			return
		}

		data, err := gs.PublicState(r.Context(), gameID)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}
}

func pathGameID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid game id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// statusFor maps service and engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrWrongPassword):
		return http.StatusForbidden
	case errors.Is(err, game.ErrDuplicatePlayer),
		errors.Is(err, game.ErrGameStarted),
		errors.Is(err, game.ErrTooManyPlayers),
		errors.Is(err, game.ErrNotEnoughPlayers):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
