package debtbook

import (
	"errors"

	"github.com/moneylane/moneylane/internal/models"
)

// ErrDebtNotFound is returned when a debt identifier is unknown.
var ErrDebtNotFound = errors.New("debt not found")

// ScoreImpactRate scales the credit score penalty per outstanding unit per
// elapsed turn.
const ScoreImpactRate = 0.0001

// Book tracks the debts owed to the lender of last resort within one
// session.
type Book struct {
	debts []*models.Debt
}

// New creates an empty debt book.
func New() *Book {
	return &Book{}
}

// Add registers a debt.
func (b *Book) Add(d *models.Debt) {
	b.debts = append(b.debts, d)
}

// Get returns the debt with the given identifier.
func (b *Book) Get(id int64) (*models.Debt, error) {
	for _, d := range b.debts {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, ErrDebtNotFound
}

// DebtsOf returns every debt owed by the player, including settled and
// overpaid ones, in creation order.
func (b *Book) DebtsOf(playerID int64) []*models.Debt {
	debts := make([]*models.Debt, 0)
	for _, d := range b.debts {
		if d.DebteeID == playerID {
			debts = append(debts, d)
		}
	}
	return debts
}

// Repay reduces the debt's outstanding amount. The amount is not clamped at
// zero; overpayment drives it negative.
func (b *Book) Repay(id int64, amount int64) error {
	d, err := b.Get(id)
	if err != nil {
		return err
	}
	d.Amount -= amount
	return nil
}

// AccrueInterest grows the debt's outstanding amount by one interest period,
// truncating the product toward zero.
func (b *Book) AccrueInterest(id int64) error {
	d, err := b.Get(id)
	if err != nil {
		return err
	}
	d.Amount += int64(float64(d.Amount) * d.InterestRate)
	return nil
}

// ScoreImpact is the credit score penalty a debt carries at the given turn.
// The penalty grows linearly with both the outstanding amount and how long
// the debt has been open.
func ScoreImpact(d *models.Debt, currentTurn int) float64 {
	elapsed := currentTurn - d.StartTurn
	return -float64(elapsed) * float64(d.Amount) * ScoreImpactRate
}
