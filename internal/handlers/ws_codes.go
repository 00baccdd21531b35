// internal/handlers/ws_codes.go
package handlers

// Custom WebSocket close codes used by the game handler.
// These provide more specific reasons for closure than standard codes.
const (
	BadSubprotocolError   = 3000 // Client connected with an unsupported subprotocol.
	InvalidSeatTokenError = 3001 // Seat token was missing, invalid, expired, or for another table.
	UnknownPlayerError    = 3002 // Seat token names a player who is not at the table.
	InvalidGameIDError    = 3003 // Target game ID in the WS URL does not exist or is invalid.
)
