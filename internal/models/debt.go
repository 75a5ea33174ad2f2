package models

// Debt is a short-term borrowed amount owed to the lender of last resort.
type Debt struct {
	// ID is the session-scoped debt identifier
	ID int64 `json:"id"`

	// DebteeID is the borrowing player
	DebteeID int64 `json:"debtee_id"`

	// LoanerID is the lending player (the bank)
	LoanerID int64 `json:"loaner_id"`

	// StartTurn is the borrower's turn counter when the debt was opened
	StartTurn int `json:"start_turn"`

	// Amount is the outstanding amount. It grows with interest accrual and
	// shrinks on repayment; repayment is not clamped at zero.
	Amount int64 `json:"amount"`

	// InterestRate is the per-settlement accrual rate
	InterestRate float64 `json:"interest_rate"`
}

// Active reports whether the debt still carries an outstanding amount.
func (d *Debt) Active() bool {
	return d.Amount > 0
}
