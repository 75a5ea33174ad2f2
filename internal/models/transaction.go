package models

// Transaction records a single monetary transfer between two players.
// Transactions are immutable once posted; the ledger never edits or removes
// an entry.
type Transaction struct {
	// ID is the session-scoped transaction identifier
	ID int64 `json:"id"`

	// Payment is the transferred amount
	Payment int64 `json:"payment"`

	// SenderID is the paying player
	SenderID int64 `json:"sender_id"`

	// ReceiverID is the paid player
	ReceiverID int64 `json:"receiver_id"`

	// Desc is a free-text description of the transfer
	Desc string `json:"desc"`

	// Turn is the sender's turn counter when the transfer was posted
	Turn int `json:"turn"`

	// BaseFromScore is applied to the sender's credit score sum
	BaseFromScore float64 `json:"base_from_score"`

	// BaseToScore is applied to the receiver's credit score sum
	BaseToScore float64 `json:"base_to_score"`
}
