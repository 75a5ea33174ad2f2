package ledger

import (
	"github.com/moneylane/moneylane/internal/models"
)

// StartingBalance is the fixed stake every player begins with.
const StartingBalance = 200

// Ledger is the append-only log of monetary transfers within one session.
// It is the sole source of truth for balances: no entry is ever edited or
// removed, and reads never mutate.
type Ledger struct {
	entries []*models.Transaction
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Post appends an entry to the log.
func (l *Ledger) Post(t *models.Transaction) {
	l.entries = append(l.entries, t)
}

// BalanceOf returns the player's balance: the starting stake plus the signed
// sum of every entry touching the player.
func (l *Ledger) BalanceOf(playerID int64) int64 {
	var money int64 = StartingBalance
	for _, t := range l.entries {
		if t.SenderID == playerID {
			money -= t.Payment
		}
		if t.ReceiverID == playerID {
			money += t.Payment
		}
	}
	return money
}

// EntriesFor returns, in insertion order, every entry where the player is
// sender or receiver. Callers must not modify the returned transactions.
func (l *Ledger) EntriesFor(playerID int64) []*models.Transaction {
	entries := make([]*models.Transaction, 0)
	for _, t := range l.entries {
		if t.SenderID == playerID || t.ReceiverID == playerID {
			entries = append(entries, t)
		}
	}
	return entries
}

// Entries returns every entry in insertion order. Callers must not modify
// the returned transactions.
func (l *Ledger) Entries() []*models.Transaction {
	return l.entries
}
