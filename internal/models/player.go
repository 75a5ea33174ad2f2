package models

// Player represents a participant in a game session. System parties (the
// bank, the shops) are players too, so every transfer endpoint is a player ID.
type Player struct {
	// ID is the session-scoped player identifier
	ID int64 `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// LocationIdx is the player's current position on the board ring
	LocationIdx int `json:"location_idx"`

	// InterestRate is the rate the bank pays on the player's balance at
	// settlement
	InterestRate float64 `json:"interest_rate"`

	// Turns is the number of turns the player has taken
	Turns int `json:"turns"`

	// System marks built-in parties that never take turns themselves
	System bool `json:"system"`
}
