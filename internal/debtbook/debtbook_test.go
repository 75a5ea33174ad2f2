package debtbook

import (
	"testing"

	"github.com/moneylane/moneylane/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepayDoesNotClampAtZero(t *testing.T) {
	b := New()
	b.Add(&models.Debt{ID: 0, DebteeID: 1, Amount: 100})

	require.NoError(t, b.Repay(0, 40))

	d, err := b.Get(0)
	require.NoError(t, err)
	assert.Equal(t, int64(60), d.Amount)

	require.NoError(t, b.Repay(0, 100))
	assert.Equal(t, int64(-40), d.Amount)
	assert.False(t, d.Active())
}

func TestAccrueInterestTruncatesTowardZero(t *testing.T) {
	b := New()
	b.Add(&models.Debt{ID: 0, DebteeID: 1, Amount: 99, InterestRate: 0.05})

	// 99 * 0.05 = 4.95, truncated to 4
	require.NoError(t, b.AccrueInterest(0))

	d, err := b.Get(0)
	require.NoError(t, err)
	assert.Equal(t, int64(103), d.Amount)
}

func TestUnknownDebt(t *testing.T) {
	b := New()

	_, err := b.Get(7)
	assert.Equal(t, ErrDebtNotFound, err)
	assert.Equal(t, ErrDebtNotFound, b.Repay(7, 1))
	assert.Equal(t, ErrDebtNotFound, b.AccrueInterest(7))
}

func TestDebtsOfPreservesCreationOrder(t *testing.T) {
	b := New()
	b.Add(&models.Debt{ID: 0, DebteeID: 1, Amount: 10})
	b.Add(&models.Debt{ID: 1, DebteeID: 2, Amount: 20})
	b.Add(&models.Debt{ID: 2, DebteeID: 1, Amount: 0})

	debts := b.DebtsOf(1)
	require.Len(t, debts, 2)
	assert.Equal(t, int64(0), debts[0].ID)
	assert.Equal(t, int64(2), debts[1].ID)
}

func TestScoreImpactGrowsWithTimeAndAmount(t *testing.T) {
	d := &models.Debt{StartTurn: 2, Amount: 100}

	assert.Equal(t, 0.0, ScoreImpact(d, 2))
	assert.InDelta(t, -0.04, ScoreImpact(d, 6), 1e-12)
	assert.InDelta(t, -0.08, ScoreImpact(d, 10), 1e-12)
}
