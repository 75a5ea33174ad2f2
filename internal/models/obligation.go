package models

// LongTermObligation is a recurring fixed-term commitment between two
// players, such as a wage or a lease. Each settlement compounds the amount
// and generates a transaction until the settling turn passes EndTurn.
type LongTermObligation struct {
	// ID is the session-scoped obligation identifier
	ID int64 `json:"id"`

	// ReceiverID is the player the obligation pays
	ReceiverID int64 `json:"receiver_id"`

	// SenderID is the player the obligation charges
	SenderID int64 `json:"sender_id"`

	// StartTurn is when the obligation was registered
	StartTurn int `json:"start_turn"`

	// EndTurn is the last turn the obligation is settled on
	EndTurn int `json:"end_turn"`

	// Desc is a free-text description of the obligation
	Desc string `json:"desc"`

	// Amount is the current per-settlement amount; it compounds with
	// InterestRate on each settlement
	Amount int64 `json:"amount"`

	// InterestRate is the per-settlement compounding rate
	InterestRate float64 `json:"interest_rate"`

	// FromScore is applied to the sender's credit score sum per settlement
	FromScore float64 `json:"from_score"`

	// ToScore is applied to the receiver's credit score sum while active
	ToScore float64 `json:"to_score"`
}
