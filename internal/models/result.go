package models

import (
	"time"
)

// PlayerResult is one player's final standing in an ended session.
type PlayerResult struct {
	// PlayerID is the session-scoped player identifier
	PlayerID int64 `json:"player_id"`

	// PlayerName is the display name of the player
	PlayerName string `json:"player_name"`

	// Balance is the player's final money balance
	Balance int64 `json:"balance"`

	// CreditScore is the player's final credit score
	CreditScore float64 `json:"credit_score"`

	// Turns is the number of turns the player took
	Turns int `json:"turns"`
}

// GameResult is the archived summary of an ended game session.
type GameResult struct {
	// ID is the session token the game was played under
	ID string `json:"id"`

	// BoardSize is the number of locations on the ring
	BoardSize int `json:"board_size"`

	// FinishedAt is when the session was ended
	FinishedAt time.Time `json:"finished_at"`

	// Players holds the final standings, system parties excluded
	Players []*PlayerResult `json:"players"`
}
