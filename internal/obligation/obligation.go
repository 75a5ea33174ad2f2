package obligation

import (
	"errors"

	"github.com/moneylane/moneylane/internal/models"
)

// ErrObligationNotFound is returned when an obligation identifier is
// unknown.
var ErrObligationNotFound = errors.New("obligation not found")

// Book tracks the recurring fixed-term obligations within one session.
type Book struct {
	obligations []*models.LongTermObligation
}

// New creates an empty obligation book.
func New() *Book {
	return &Book{}
}

// Add registers an obligation.
func (b *Book) Add(o *models.LongTermObligation) {
	b.obligations = append(b.obligations, o)
}

// Get returns the obligation with the given identifier.
func (b *Book) Get(id int64) (*models.LongTermObligation, error) {
	for _, o := range b.obligations {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, ErrObligationNotFound
}

// ReceivedBy returns every active obligation paying the player, in creation
// order.
func (b *Book) ReceivedBy(playerID int64) []*models.LongTermObligation {
	obligations := make([]*models.LongTermObligation, 0)
	for _, o := range b.obligations {
		if o.ReceiverID == playerID {
			obligations = append(obligations, o)
		}
	}
	return obligations
}

// PartyTo returns every active obligation the player sends or receives, in
// creation order.
func (b *Book) PartyTo(playerID int64) []*models.LongTermObligation {
	obligations := make([]*models.LongTermObligation, 0)
	for _, o := range b.obligations {
		if o.ReceiverID == playerID || o.SenderID == playerID {
			obligations = append(obligations, o)
		}
	}
	return obligations
}

// Settle processes every obligation the player is party to at the given
// turn. Settlement runs on the acting player's clock: system parties never
// take turns, so the human side of an obligation drives it regardless of
// direction. Obligations past their end turn are removed from the active set
// and yield nothing. Live ones compound their amount by the interest rate
// (truncated toward zero) and are returned so the caller can post the
// corresponding transactions.
func (b *Book) Settle(playerID int64, currentTurn int) []*models.LongTermObligation {
	due := make([]*models.LongTermObligation, 0)
	kept := b.obligations[:0]
	for _, o := range b.obligations {
		if o.ReceiverID != playerID && o.SenderID != playerID {
			kept = append(kept, o)
			continue
		}
		if currentTurn > o.EndTurn {
			continue
		}
		o.Amount += int64(float64(o.Amount) * o.InterestRate)
		due = append(due, o)
		kept = append(kept, o)
	}
	b.obligations = kept
	return due
}
