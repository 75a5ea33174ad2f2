package game

import "context"

// Service defines the interface for game session operations
type Service interface {
	// CreateSession creates a new game session and returns its token
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// EndSession archives the session's final standings and removes it
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// AddPlayer adds a player to a session
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// GetPlayer retrieves a player by identifier
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// FindPlayerByName retrieves a player by display name
	FindPlayerByName(ctx context.Context, input *FindPlayerByNameInput) (*FindPlayerByNameOutput, error)

	// GetLocation retrieves a board location by index
	GetLocation(ctx context.Context, input *GetLocationInput) (*GetLocationOutput, error)

	// MoveRelative moves a player by a number of steps along the ring
	MoveRelative(ctx context.Context, input *MoveRelativeInput) (*MoveRelativeOutput, error)

	// MoveAbsolute places a player on a specific location
	MoveAbsolute(ctx context.Context, input *MoveAbsoluteInput) (*MoveAbsoluteOutput, error)

	// RollAndMove rolls the dice for a player and applies the move
	RollAndMove(ctx context.Context, input *RollAndMoveInput) (*RollAndMoveOutput, error)

	// DispatchAction resolves an action identifier and applies its effect
	DispatchAction(ctx context.Context, input *DispatchActionInput) (*DispatchActionOutput, error)

	// Borrow opens a debt with the bank and credits the player
	Borrow(ctx context.Context, input *BorrowInput) (*BorrowOutput, error)

	// RepayDebt pays part of a debt back to the bank
	RepayDebt(ctx context.Context, input *RepayDebtInput) (*RepayDebtOutput, error)

	// GetPlayerDebts lists a player's debts
	GetPlayerDebts(ctx context.Context, input *GetPlayerDebtsInput) (*GetPlayerDebtsOutput, error)

	// PostTransaction appends a caller-specified transaction to the ledger
	PostTransaction(ctx context.Context, input *PostTransactionInput) (*PostTransactionOutput, error)

	// ListTransactions lists every transaction in the session
	ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error)

	// PlayerBalance computes a player's money balance
	PlayerBalance(ctx context.Context, input *PlayerBalanceInput) (*PlayerBalanceOutput, error)

	// PlayerCreditScore computes a player's credit score
	PlayerCreditScore(ctx context.Context, input *PlayerCreditScoreInput) (*PlayerCreditScoreOutput, error)

	// PlayerStatement assembles a read-only bank statement for a player
	PlayerStatement(ctx context.Context, input *PlayerStatementInput) (*PlayerStatementOutput, error)

	// AdvanceTurn increments a player's turn counter, running settlement on
	// every fourth turn
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)

	// GetGameResult retrieves an archived result of an ended session
	GetGameResult(ctx context.Context, input *GetGameResultInput) (*GetGameResultOutput, error)

	// ListGameResults lists archived results, most recent first
	ListGameResults(ctx context.Context, input *ListGameResultsInput) (*ListGameResultsOutput, error)
}
