package game

import (
	"github.com/moneylane/moneylane/internal/common/clock"
	"github.com/moneylane/moneylane/internal/common/uuid"
	"github.com/moneylane/moneylane/internal/dice"
	"github.com/moneylane/moneylane/internal/models"
	"github.com/moneylane/moneylane/internal/repositories/archive"
)

// Config holds configuration for the game service
type Config struct {
	// DefaultBoardSize is the ring size used when a session is created
	// without one
	DefaultBoardSize int

	// SettleEvery is the number of turns between settlements
	SettleEvery int

	// DebtInterestRate is the per-settlement rate on borrowed debt
	DebtInterestRate float64

	// PlayerInterestRate is the per-settlement rate the bank pays on
	// balances
	PlayerInterestRate float64

	// DiceSides is the number of sides on each movement die
	DiceSides int

	// Repository dependencies
	ArchiveRepo archive.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	DiceRoller    dice.Roller
}

// Statement is a read-only snapshot of a player's finances
type Statement struct {
	// PlayerID is the player the statement is for
	PlayerID int64 `json:"player_id"`

	// Balance is the player's current money balance
	Balance int64 `json:"money"`

	// CreditScore is the player's current credit score
	CreditScore float64 `json:"credit_score"`

	// Debts are the player's debts, settled ones included
	Debts []*models.Debt `json:"debts"`

	// Obligations are the active obligations the player is party to
	Obligations []*models.LongTermObligation `json:"obligations"`

	// Transactions are the ledger entries touching the player, in
	// insertion order
	Transactions []*models.Transaction `json:"transactions"`
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// BoardSize is the number of locations on the ring; zero selects the
	// configured default
	BoardSize int
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	// SessionID is the token callers use to address the session
	SessionID string
}

// EndSessionInput contains parameters for ending a session
type EndSessionInput struct {
	// SessionID is the token of the session to end
	SessionID string
}

// EndSessionOutput contains the result of ending a session
type EndSessionOutput struct {
	// Result is the archived final standings
	Result *models.GameResult
}

// AddPlayerInput contains parameters for adding a player
type AddPlayerInput struct {
	SessionID string

	// Name is the display name of the joining player
	Name string
}

// AddPlayerOutput contains the created player
type AddPlayerOutput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	SessionID string
	PlayerID  int64
}

// GetPlayerOutput contains the retrieved player
type GetPlayerOutput struct {
	Player *models.Player
}

// FindPlayerByNameInput contains parameters for finding a player by name
type FindPlayerByNameInput struct {
	SessionID string
	Name      string
}

// FindPlayerByNameOutput contains the found player
type FindPlayerByNameOutput struct {
	Player *models.Player
}

// GetLocationInput contains parameters for retrieving a location
type GetLocationInput struct {
	SessionID   string
	LocationIdx int
}

// GetLocationOutput contains the retrieved location
type GetLocationOutput struct {
	Location *models.Location
}

// MoveRelativeInput contains parameters for a relative move
type MoveRelativeInput struct {
	SessionID string
	PlayerID  int64

	// Delta is the number of steps to move; it may be negative or exceed
	// the board size
	Delta int
}

// MoveRelativeOutput contains the destination of a relative move
type MoveRelativeOutput struct {
	Location *models.Location
}

// MoveAbsoluteInput contains parameters for an absolute move
type MoveAbsoluteInput struct {
	SessionID   string
	PlayerID    int64
	LocationIdx int
}

// MoveAbsoluteOutput contains the destination of an absolute move
type MoveAbsoluteOutput struct {
	Location *models.Location
}

// RollAndMoveInput contains parameters for a dice-driven move
type RollAndMoveInput struct {
	SessionID string
	PlayerID  int64
}

// RollAndMoveOutput contains the rolled dice and the destination
type RollAndMoveOutput struct {
	// Dice are the individual die values rolled
	Dice []int

	// Total is the applied movement delta
	Total int

	Location *models.Location
}

// DispatchActionInput contains parameters for dispatching an action
type DispatchActionInput struct {
	SessionID string

	// ActionID is the dispatch identifier of the action
	ActionID string

	PlayerID int64
}

// DispatchActionOutput contains the result of dispatching an action
type DispatchActionOutput struct {
	// Success indicates the action's effect was applied
	Success bool
}

// BorrowInput contains parameters for borrowing from the bank
type BorrowInput struct {
	SessionID string
	PlayerID  int64

	// Amount is the borrowed amount; it must be positive
	Amount int64
}

// BorrowOutput contains the opened debt
type BorrowOutput struct {
	Debt *models.Debt
}

// RepayDebtInput contains parameters for repaying a debt
type RepayDebtInput struct {
	SessionID string

	// DebtID identifies the debt being repaid
	DebtID int64

	// DebteeID is the borrowing player making the repayment
	DebteeID int64

	// Amount is the repaid amount; it must be positive
	Amount int64
}

// RepayDebtOutput contains the debt after repayment
type RepayDebtOutput struct {
	Debt *models.Debt
}

// GetPlayerDebtsInput contains parameters for listing a player's debts
type GetPlayerDebtsInput struct {
	SessionID string
	PlayerID  int64
}

// GetPlayerDebtsOutput contains the player's debts in creation order
type GetPlayerDebtsOutput struct {
	Debts []*models.Debt
}

// PostTransactionInput contains the fields of a caller-specified transaction
type PostTransactionInput struct {
	SessionID string

	// Payment is the transferred amount; it cannot be negative
	Payment int64

	SenderID   int64
	ReceiverID int64
	Desc       string

	// Turn is the turn the transfer is recorded under
	Turn int

	BaseFromScore float64
	BaseToScore   float64
}

// PostTransactionOutput contains the posted transaction
type PostTransactionOutput struct {
	Transaction *models.Transaction
}

// ListTransactionsInput contains parameters for listing transactions
type ListTransactionsInput struct {
	SessionID string
}

// ListTransactionsOutput contains every transaction in insertion order
type ListTransactionsOutput struct {
	Transactions []*models.Transaction
}

// PlayerBalanceInput contains parameters for computing a balance
type PlayerBalanceInput struct {
	SessionID string
	PlayerID  int64
}

// PlayerBalanceOutput contains the computed balance
type PlayerBalanceOutput struct {
	Balance int64
}

// PlayerCreditScoreInput contains parameters for computing a credit score
type PlayerCreditScoreInput struct {
	SessionID string
	PlayerID  int64
}

// PlayerCreditScoreOutput contains the computed credit score
type PlayerCreditScoreOutput struct {
	Score float64
}

// PlayerStatementInput contains parameters for assembling a statement
type PlayerStatementInput struct {
	SessionID string
	PlayerID  int64
}

// PlayerStatementOutput contains the assembled statement
type PlayerStatementOutput struct {
	Statement *Statement
}

// AdvanceTurnInput contains parameters for advancing a player's turn
type AdvanceTurnInput struct {
	SessionID string
	PlayerID  int64
}

// AdvanceTurnOutput contains the result of advancing a turn
type AdvanceTurnOutput struct {
	// Turns is the player's turn counter after the advance
	Turns int

	// Settled indicates this advance triggered a settlement
	Settled bool
}

// GetGameResultInput contains parameters for retrieving an archived result
type GetGameResultInput struct {
	SessionID string
}

// GetGameResultOutput contains the archived result
type GetGameResultOutput struct {
	Result *models.GameResult
}

// ListGameResultsInput contains parameters for listing archived results
type ListGameResultsInput struct {
	// Limit caps the number of results returned; zero means all
	Limit int
}

// ListGameResultsOutput contains archived results, most recent first
type ListGameResultsOutput struct {
	Results []*models.GameResult
}
