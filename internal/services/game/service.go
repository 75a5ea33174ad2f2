package game

import (
	"context"
	"errors"
	"sync"

	"github.com/moneylane/moneylane/internal/board"
	commonClock "github.com/moneylane/moneylane/internal/common/clock"
	commonUUID "github.com/moneylane/moneylane/internal/common/uuid"
	"github.com/moneylane/moneylane/internal/debtbook"
	"github.com/moneylane/moneylane/internal/dice"
	"github.com/moneylane/moneylane/internal/models"
	"github.com/moneylane/moneylane/internal/repositories/archive"
	"github.com/moneylane/moneylane/internal/score"
)

// Default simulation parameters, applied when the config leaves them zero.
const (
	DefaultBoardSize          = 24
	DefaultSettleEvery        = 4
	DefaultDebtInterestRate   = 0.05
	DefaultPlayerInterestRate = 0.01
	DefaultDiceSides          = 6
)

// diceCount is the number of dice rolled for a movement.
const diceCount = 2

// loanScoreRate scales the immediate credit score effect of borrowing and
// repaying.
const loanScoreRate = 0.001

type service struct {
	defaultBoardSize   int
	settleEvery        int
	debtInterestRate   float64
	playerInterestRate float64
	diceSides          int

	archiveRepo archive.Repository
	clock       commonClock.Clock
	uuidGen     commonUUID.UUID
	diceRoller  dice.Roller

	mu       sync.RWMutex
	sessions map[string]*session
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ArchiveRepo == nil {
		return nil, ErrNilArchiveRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	svc := &service{
		defaultBoardSize:   cfg.DefaultBoardSize,
		settleEvery:        cfg.SettleEvery,
		debtInterestRate:   cfg.DebtInterestRate,
		playerInterestRate: cfg.PlayerInterestRate,
		diceSides:          cfg.DiceSides,
		archiveRepo:        cfg.ArchiveRepo,
		clock:              cfg.Clock,
		uuidGen:            cfg.UUIDGenerator,
		diceRoller:         cfg.DiceRoller,
		sessions:           make(map[string]*session),
	}

	if svc.defaultBoardSize == 0 {
		svc.defaultBoardSize = DefaultBoardSize
	}
	if svc.settleEvery == 0 {
		svc.settleEvery = DefaultSettleEvery
	}
	if svc.debtInterestRate == 0 {
		svc.debtInterestRate = DefaultDebtInterestRate
	}
	if svc.playerInterestRate == 0 {
		svc.playerInterestRate = DefaultPlayerInterestRate
	}
	if svc.diceSides == 0 {
		svc.diceSides = DefaultDiceSides
	}

	return svc, nil
}

// session returns the live session addressed by the token.
func (svc *service) session(id string) (*session, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	sess, ok := svc.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// CreateSession creates a new game session and returns its token
func (svc *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	boardSize := input.BoardSize
	if boardSize == 0 {
		boardSize = svc.defaultBoardSize
	}
	if boardSize < 0 {
		return nil, ErrInvalidBoardSize
	}

	sessionID := svc.uuidGen.NewUUID()
	sess := newSession(boardSize, svc.playerInterestRate)

	svc.mu.Lock()
	svc.sessions[sessionID] = sess
	svc.mu.Unlock()

	return &CreateSessionOutput{SessionID: sessionID}, nil
}

// EndSession archives the session's final standings and removes it
func (svc *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	result := &models.GameResult{
		ID:         input.SessionID,
		BoardSize:  sess.board.Size(),
		FinishedAt: svc.clock.Now(),
	}
	for _, p := range sess.players {
		if p.System {
			continue
		}
		result.Players = append(result.Players, &models.PlayerResult{
			PlayerID:    p.ID,
			PlayerName:  p.Name,
			Balance:     sess.ledger.BalanceOf(p.ID),
			CreditScore: svc.creditScore(sess, p),
			Turns:       p.Turns,
		})
	}
	sess.mu.Unlock()

	if err := svc.archiveRepo.SaveResult(ctx, &archive.SaveResultInput{Result: result}); err != nil {
		return nil, err
	}

	svc.mu.Lock()
	delete(svc.sessions, input.SessionID)
	svc.mu.Unlock()

	return &EndSessionOutput{Result: result}, nil
}

// AddPlayer adds a player to a session
func (svc *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p := sess.addPlayer(input.Name, svc.playerInterestRate)

	return &AddPlayerOutput{Player: p}, nil
}

// GetPlayer retrieves a player by identifier
func (svc *service) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.player(input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetPlayerOutput{Player: p}, nil
}

// FindPlayerByName retrieves a player by display name
func (svc *service) FindPlayerByName(ctx context.Context, input *FindPlayerByNameInput) (*FindPlayerByNameOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.playerByName(input.Name)
	if err != nil {
		return nil, err
	}

	return &FindPlayerByNameOutput{Player: p}, nil
}

// GetLocation retrieves a board location by index
func (svc *service) GetLocation(ctx context.Context, input *GetLocationInput) (*GetLocationOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	loc, err := sess.board.Location(input.LocationIdx)
	if err != nil {
		return nil, mapBoardError(err)
	}

	return &GetLocationOutput{Location: loc}, nil
}

// MoveRelative moves a player by a number of steps along the ring
func (svc *service) MoveRelative(ctx context.Context, input *MoveRelativeInput) (*MoveRelativeOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.player(input.PlayerID)
	if err != nil {
		return nil, err
	}

	loc, err := sess.board.MoveRelative(p, input.Delta)
	if err != nil {
		return nil, mapBoardError(err)
	}

	return &MoveRelativeOutput{Location: loc}, nil
}

// MoveAbsolute places a player on a specific location
func (svc *service) MoveAbsolute(ctx context.Context, input *MoveAbsoluteInput) (*MoveAbsoluteOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.player(input.PlayerID)
	if err != nil {
		return nil, err
	}

	loc, err := sess.board.MoveAbsolute(p, input.LocationIdx)
	if err != nil {
		return nil, mapBoardError(err)
	}

	return &MoveAbsoluteOutput{Location: loc}, nil
}

// RollAndMove rolls the dice for a player and applies the move
func (svc *service) RollAndMove(ctx context.Context, input *RollAndMoveInput) (*RollAndMoveOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.player(input.PlayerID)
	if err != nil {
		return nil, err
	}

	rolls := make([]int, 0, diceCount)
	total := 0
	for i := 0; i < diceCount; i++ {
		roll := svc.diceRoller.Roll(svc.diceSides)
		rolls = append(rolls, roll)
		total += roll
	}

	loc, err := sess.board.MoveRelative(p, total)
	if err != nil {
		return nil, mapBoardError(err)
	}

	return &RollAndMoveOutput{
		Dice:     rolls,
		Total:    total,
		Location: loc,
	}, nil
}

// DispatchAction resolves an action identifier and applies its effect
func (svc *service) DispatchAction(ctx context.Context, input *DispatchActionInput) (*DispatchActionOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	fn, ok := actionTable[input.ActionID]
	if !ok {
		return nil, ErrUnknownAction
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.player(input.PlayerID)
	if err != nil {
		return nil, err
	}

	if err := fn(svc, sess, p); err != nil {
		return nil, err
	}

	return &DispatchActionOutput{Success: true}, nil
}

// Borrow opens a debt with the bank and credits the player
func (svc *service) Borrow(ctx context.Context, input *BorrowInput) (*BorrowOutput, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.player(input.PlayerID)
	if err != nil {
		return nil, err
	}

	bank, err := sess.bank()
	if err != nil {
		return nil, err
	}

	debt := &models.Debt{
		ID:           sess.ids.NextDebtID(),
		DebteeID:     p.ID,
		LoanerID:     bank.ID,
		StartTurn:    p.Turns,
		Amount:       input.Amount,
		InterestRate: svc.debtInterestRate,
	}
	sess.debts.Add(debt)

	sess.post(input.Amount, bank.ID, p.ID, "bank loan", p.Turns, 0, -float64(input.Amount)*loanScoreRate)

	return &BorrowOutput{Debt: debt}, nil
}

// RepayDebt pays part of a debt back to the bank
func (svc *service) RepayDebt(ctx context.Context, input *RepayDebtInput) (*RepayDebtOutput, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.player(input.DebteeID)
	if err != nil {
		return nil, err
	}

	debt, err := sess.debts.Get(input.DebtID)
	if err != nil {
		return nil, mapDebtError(err)
	}

	bank, err := sess.bank()
	if err != nil {
		return nil, err
	}

	sess.post(input.Amount, p.ID, bank.ID, "debt repayment", p.Turns, float64(input.Amount)*loanScoreRate, 0)

	if err := sess.debts.Repay(debt.ID, input.Amount); err != nil {
		return nil, mapDebtError(err)
	}

	return &RepayDebtOutput{Debt: debt}, nil
}

// GetPlayerDebts lists a player's debts
func (svc *service) GetPlayerDebts(ctx context.Context, input *GetPlayerDebtsInput) (*GetPlayerDebtsOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.player(input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetPlayerDebtsOutput{Debts: sess.debts.DebtsOf(p.ID)}, nil
}

// PostTransaction appends a caller-specified transaction to the ledger
func (svc *service) PostTransaction(ctx context.Context, input *PostTransactionInput) (*PostTransactionOutput, error) {
	if input.Payment < 0 {
		return nil, ErrNegativeAmount
	}

	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, err := sess.player(input.SenderID); err != nil {
		return nil, err
	}
	if _, err := sess.player(input.ReceiverID); err != nil {
		return nil, err
	}

	t := sess.post(input.Payment, input.SenderID, input.ReceiverID, input.Desc, input.Turn, input.BaseFromScore, input.BaseToScore)

	return &PostTransactionOutput{Transaction: t}, nil
}

// ListTransactions lists every transaction in the session
func (svc *service) ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &ListTransactionsOutput{Transactions: sess.ledger.Entries()}, nil
}

// PlayerBalance computes a player's money balance
func (svc *service) PlayerBalance(ctx context.Context, input *PlayerBalanceInput) (*PlayerBalanceOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.player(input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &PlayerBalanceOutput{Balance: sess.ledger.BalanceOf(p.ID)}, nil
}

// PlayerCreditScore computes a player's credit score
func (svc *service) PlayerCreditScore(ctx context.Context, input *PlayerCreditScoreInput) (*PlayerCreditScoreOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.player(input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &PlayerCreditScoreOutput{Score: svc.creditScore(sess, p)}, nil
}

// PlayerStatement assembles a read-only bank statement for a player
func (svc *service) PlayerStatement(ctx context.Context, input *PlayerStatementInput) (*PlayerStatementOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.player(input.PlayerID)
	if err != nil {
		return nil, err
	}

	statement := &Statement{
		PlayerID:     p.ID,
		Balance:      sess.ledger.BalanceOf(p.ID),
		CreditScore:  svc.creditScore(sess, p),
		Debts:        sess.debts.DebtsOf(p.ID),
		Obligations:  sess.obligations.PartyTo(p.ID),
		Transactions: sess.ledger.EntriesFor(p.ID),
	}

	return &PlayerStatementOutput{Statement: statement}, nil
}

// AdvanceTurn increments a player's turn counter, running settlement on every
// fourth turn
func (svc *service) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error) {
	sess, err := svc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p, err := sess.player(input.PlayerID)
	if err != nil {
		return nil, err
	}

	p.Turns++

	settled := p.Turns%svc.settleEvery == 0
	if settled {
		if err := svc.runSettlement(sess, p); err != nil {
			return nil, err
		}
	}

	return &AdvanceTurnOutput{Turns: p.Turns, Settled: settled}, nil
}

// runSettlement applies one settlement cycle for the player, in order: bank
// interest on the balance, interest accrual on open debts, then obligation
// payouts. The caller holds the session lock.
func (svc *service) runSettlement(sess *session, p *models.Player) error {
	bank, err := sess.bank()
	if err != nil {
		return err
	}

	balance := sess.ledger.BalanceOf(p.ID)
	interest := int64(float64(balance) * p.InterestRate)
	sess.post(interest, bank.ID, p.ID, "interest on balance", p.Turns, 0, 0)

	for _, d := range sess.debts.DebtsOf(p.ID) {
		if !d.Active() {
			continue
		}
		if err := sess.debts.AccrueInterest(d.ID); err != nil {
			return mapDebtError(err)
		}
	}

	for _, o := range sess.obligations.Settle(p.ID, p.Turns) {
		sess.post(o.Amount, o.SenderID, o.ReceiverID, o.Desc, p.Turns, o.FromScore, o.ToScore)
	}

	return nil
}

// creditScore computes the player's score from the session's books. The
// caller holds the session lock.
func (svc *service) creditScore(sess *session, p *models.Player) float64 {
	return score.CreditScore(
		p.ID,
		p.Turns,
		sess.ledger.EntriesFor(p.ID),
		sess.debts.DebtsOf(p.ID),
		sess.obligations.ReceivedBy(p.ID),
	)
}

// GetGameResult retrieves an archived result of an ended session
func (svc *service) GetGameResult(ctx context.Context, input *GetGameResultInput) (*GetGameResultOutput, error) {
	out, err := svc.archiveRepo.GetResult(ctx, &archive.GetResultInput{SessionID: input.SessionID})
	if err != nil {
		if errors.Is(err, archive.ErrResultNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &GetGameResultOutput{Result: out.Result}, nil
}

// ListGameResults lists archived results, most recent first
func (svc *service) ListGameResults(ctx context.Context, input *ListGameResultsInput) (*ListGameResultsOutput, error) {
	out, err := svc.archiveRepo.ListRecentResults(ctx, &archive.ListRecentResultsInput{Limit: input.Limit})
	if err != nil {
		return nil, err
	}

	return &ListGameResultsOutput{Results: out.Results}, nil
}

func mapBoardError(err error) error {
	if errors.Is(err, board.ErrLocationNotFound) {
		return ErrLocationNotFound
	}
	return err
}

func mapDebtError(err error) error {
	if errors.Is(err, debtbook.ErrDebtNotFound) {
		return ErrDebtNotFound
	}
	return err
}
