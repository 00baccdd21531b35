package models

import "github.com/google/uuid"

// GameAction captures a player's in-game command as sent by a client. Cards
// are referenced by ID; Payload carries action-specific arguments such as a
// draw-phase choice.
type GameAction struct {
	ActionType string                 `json:"type"`
	Card       uuid.UUID              `json:"card,omitempty"`
	Cards      []uuid.UUID            `json:"cards,omitempty"`
	Target     string                 `json:"target,omitempty"`
	Index      int                    `json:"index,omitempty"`
	Enabled    bool                   `json:"enabled,omitempty"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}

// Action types accepted from clients.
const (
	ActionPlayCard      = "play_card"
	ActionDiscardCard   = "discard_card"
	ActionDrawCard      = "draw_card"
	ActionEndTurn       = "end_turn"
	ActionUseGreen      = "use_green"
	ActionStoreStart    = "general_store_start"
	ActionStorePick     = "general_store_pick"
	ActionAutoResponse  = "auto_response"
	ActionSidKetchum    = "sid_ketchum"
	ActionDocHolyday    = "doc_holyday"
	ActionChuckWengam   = "chuck_wengam"
	ActionUncleWill     = "uncle_will"
	ActionVeraCuster    = "vera_custer"
	ActionPatBrennan    = "pat_brennan"
	ActionRicochetShoot = "ricochet_shoot"
	ActionSniperShoot   = "sniper_shoot"
)
