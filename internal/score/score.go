// Package score derives a bounded credit score from a player's financial
// history via a logistic transform. The running sum starts from a fixed
// bias; transactions, open debts and received obligations each shift it, and
// the sigmoid maps the sum into the open interval (150, 650).
package score

import (
	"math"

	"github.com/moneylane/moneylane/internal/debtbook"
	"github.com/moneylane/moneylane/internal/models"
)

const (
	// bias anchors the sum so an empty history maps near the bottom of
	// the range
	bias = -4.0

	// decayWeight scales the per-turn weight of past payments
	decayWeight = 0.0001

	// scoreScale and scoreOffset map the sigmoid output onto the
	// (150, 650) range
	scoreScale  = 500.0
	scoreOffset = 150.0
)

// CreditScore computes the player's score at the given turn.
//
// entries must be the ledger entries touching the player, debts the debts
// owed by the player, and obligations the obligations paying the player.
func CreditScore(playerID int64, currentTurn int, entries []*models.Transaction, debts []*models.Debt, obligations []*models.LongTermObligation) float64 {
	sum := bias

	for _, t := range entries {
		if t.SenderID == playerID {
			sum += t.BaseFromScore
		}
		if t.ReceiverID == playerID {
			sum += t.BaseToScore
		}
		elapsed := currentTurn - t.Turn
		sum += decayWeight * float64(elapsed) * float64(t.Payment)
	}

	for _, d := range debts {
		if d.Active() {
			sum += debtbook.ScoreImpact(d, currentTurn)
		}
	}

	for _, o := range obligations {
		sum += o.ToScore
	}

	return sigmoid(sum)*scoreScale + scoreOffset
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
