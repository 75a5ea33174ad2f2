package game

import (
	"context"
	"testing"
	"time"

	"github.com/moneylane/moneylane/internal/common/clock/mocks"
	uuidMocks "github.com/moneylane/moneylane/internal/common/uuid/mocks"
	diceMocks "github.com/moneylane/moneylane/internal/dice/mocks"
	"github.com/moneylane/moneylane/internal/ledger"
	"github.com/moneylane/moneylane/internal/models"
	"github.com/moneylane/moneylane/internal/repositories/archive"
	archiveMocks "github.com/moneylane/moneylane/internal/repositories/archive/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockArchiveRepo *archiveMocks.MockRepository
	mockDiceRoller  *diceMocks.MockRoller
	mockClock       *mocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	gameService     Service
	ctx             context.Context

	// Test data
	testTime      time.Time
	testSessionID string
	testPlayer    string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockArchiveRepo = archiveMocks.NewMockRepository(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"
	s.testPlayer = "Test Player"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID).AnyTimes()

	svc, err := New(&Config{
		ArchiveRepo:   s.mockArchiveRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		DiceRoller:    s.mockDiceRoller,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// createSessionWithPlayer creates a session and joins the test player to it.
func (s *GameServiceTestSuite) createSessionWithPlayer() (string, *models.Player) {
	created, err := s.gameService.CreateSession(s.ctx, &CreateSessionInput{})
	s.Require().NoError(err)

	joined, err := s.gameService.AddPlayer(s.ctx, &AddPlayerInput{
		SessionID: created.SessionID,
		Name:      s.testPlayer,
	})
	s.Require().NoError(err)

	return created.SessionID, joined.Player
}

func (s *GameServiceTestSuite) balanceOf(sessionID string, playerID int64) int64 {
	out, err := s.gameService.PlayerBalance(s.ctx, &PlayerBalanceInput{
		SessionID: sessionID,
		PlayerID:  playerID,
	})
	s.Require().NoError(err)
	return out.Balance
}

func (s *GameServiceTestSuite) advanceTurns(sessionID string, playerID int64, n int) *AdvanceTurnOutput {
	var out *AdvanceTurnOutput
	var err error
	for i := 0; i < n; i++ {
		out, err = s.gameService.AdvanceTurn(s.ctx, &AdvanceTurnInput{
			SessionID: sessionID,
			PlayerID:  playerID,
		})
		s.Require().NoError(err)
	}
	return out
}

func (s *GameServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID, DiceRoller: s.mockDiceRoller})
	s.Equal(ErrNilArchiveRepo, err)

	_, err = New(&Config{ArchiveRepo: s.mockArchiveRepo, UUIDGenerator: s.mockUUID, DiceRoller: s.mockDiceRoller})
	s.Equal(ErrNilClock, err)

	_, err = New(&Config{ArchiveRepo: s.mockArchiveRepo, Clock: s.mockClock, DiceRoller: s.mockDiceRoller})
	s.Equal(ErrNilUUIDGenerator, err)

	_, err = New(&Config{ArchiveRepo: s.mockArchiveRepo, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.Equal(ErrNilDiceRoller, err)
}

func (s *GameServiceTestSuite) TestCreateSessionSeedsSystemParties() {
	sessionID, p := s.createSessionWithPlayer()

	s.Equal(s.testSessionID, sessionID)
	s.Equal(s.testPlayer, p.Name)
	s.Equal(0, p.LocationIdx)
	s.Equal(0, p.Turns)
	s.False(p.System)
	s.Equal(int64(ledger.StartingBalance), s.balanceOf(sessionID, p.ID))

	for _, name := range []string{BankName, SupermarketName, ComputerShopName, LettingAgencyName} {
		found, err := s.gameService.FindPlayerByName(s.ctx, &FindPlayerByNameInput{
			SessionID: sessionID,
			Name:      name,
		})
		s.Require().NoError(err)
		s.True(found.Player.System)
	}
}

func (s *GameServiceTestSuite) TestCreateSessionRejectsNegativeBoardSize() {
	_, err := s.gameService.CreateSession(s.ctx, &CreateSessionInput{BoardSize: -1})
	s.Equal(ErrInvalidBoardSize, err)
}

func (s *GameServiceTestSuite) TestSessionNotFound() {
	_, err := s.gameService.GetPlayer(s.ctx, &GetPlayerInput{
		SessionID: "no-such-session",
		PlayerID:  0,
	})
	s.Equal(ErrSessionNotFound, err)
}

func (s *GameServiceTestSuite) TestBorrow() {
	sessionID, p := s.createSessionWithPlayer()

	out, err := s.gameService.Borrow(s.ctx, &BorrowInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
		Amount:    100,
	})
	s.Require().NoError(err)

	s.Equal(int64(100), out.Debt.Amount)
	s.Equal(p.ID, out.Debt.DebteeID)
	s.Equal(DefaultDebtInterestRate, out.Debt.InterestRate)
	s.Equal(int64(300), s.balanceOf(sessionID, p.ID))
}

func (s *GameServiceTestSuite) TestBorrowRejectsNonPositiveAmount() {
	sessionID, p := s.createSessionWithPlayer()

	_, err := s.gameService.Borrow(s.ctx, &BorrowInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
		Amount:    0,
	})
	s.Equal(ErrInvalidAmount, err)

	_, err = s.gameService.Borrow(s.ctx, &BorrowInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
		Amount:    -5,
	})
	s.Equal(ErrInvalidAmount, err)
}

func (s *GameServiceTestSuite) TestRepayDebt() {
	sessionID, p := s.createSessionWithPlayer()

	borrowed, err := s.gameService.Borrow(s.ctx, &BorrowInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
		Amount:    100,
	})
	s.Require().NoError(err)

	repaid, err := s.gameService.RepayDebt(s.ctx, &RepayDebtInput{
		SessionID: sessionID,
		DebtID:    borrowed.Debt.ID,
		DebteeID:  p.ID,
		Amount:    40,
	})
	s.Require().NoError(err)

	s.Equal(int64(60), repaid.Debt.Amount)
	s.Equal(int64(260), s.balanceOf(sessionID, p.ID))
}

func (s *GameServiceTestSuite) TestRepayDebtDoesNotClampAtZero() {
	sessionID, p := s.createSessionWithPlayer()

	borrowed, err := s.gameService.Borrow(s.ctx, &BorrowInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
		Amount:    100,
	})
	s.Require().NoError(err)

	repaid, err := s.gameService.RepayDebt(s.ctx, &RepayDebtInput{
		SessionID: sessionID,
		DebtID:    borrowed.Debt.ID,
		DebteeID:  p.ID,
		Amount:    150,
	})
	s.Require().NoError(err)

	s.Equal(int64(-50), repaid.Debt.Amount)
}

func (s *GameServiceTestSuite) TestRepayUnknownDebt() {
	sessionID, p := s.createSessionWithPlayer()

	_, err := s.gameService.RepayDebt(s.ctx, &RepayDebtInput{
		SessionID: sessionID,
		DebtID:    99,
		DebteeID:  p.ID,
		Amount:    10,
	})
	s.Equal(ErrDebtNotFound, err)
}

func (s *GameServiceTestSuite) TestAdvanceTurnSettlement() {
	sessionID, p := s.createSessionWithPlayer()

	borrowed, err := s.gameService.Borrow(s.ctx, &BorrowInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
		Amount:    100,
	})
	s.Require().NoError(err)

	for i := 1; i <= 3; i++ {
		out := s.advanceTurns(sessionID, p.ID, 1)
		s.Equal(i, out.Turns)
		s.False(out.Settled)
	}

	out := s.advanceTurns(sessionID, p.ID, 1)
	s.Equal(4, out.Turns)
	s.True(out.Settled)

	// Bank interest on a 300 balance at 1% is 3; the debt accrues 5% to 105.
	s.Equal(int64(303), s.balanceOf(sessionID, p.ID))

	debts, err := s.gameService.GetPlayerDebts(s.ctx, &GetPlayerDebtsInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
	})
	s.Require().NoError(err)
	s.Require().Len(debts.Debts, 1)
	s.Equal(borrowed.Debt.ID, debts.Debts[0].ID)
	s.Equal(int64(105), debts.Debts[0].Amount)
}

func (s *GameServiceTestSuite) TestSettlementSkipsSettledDebts() {
	sessionID, p := s.createSessionWithPlayer()

	borrowed, err := s.gameService.Borrow(s.ctx, &BorrowInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
		Amount:    100,
	})
	s.Require().NoError(err)

	_, err = s.gameService.RepayDebt(s.ctx, &RepayDebtInput{
		SessionID: sessionID,
		DebtID:    borrowed.Debt.ID,
		DebteeID:  p.ID,
		Amount:    100,
	})
	s.Require().NoError(err)

	s.advanceTurns(sessionID, p.ID, 4)

	debts, err := s.gameService.GetPlayerDebts(s.ctx, &GetPlayerDebtsInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
	})
	s.Require().NoError(err)
	s.Require().Len(debts.Debts, 1)
	s.Equal(int64(0), debts.Debts[0].Amount)
}

func (s *GameServiceTestSuite) TestPartTimeJobPaysUntilExpiry() {
	sessionID, p := s.createSessionWithPlayer()

	_, err := s.gameService.DispatchAction(s.ctx, &DispatchActionInput{
		SessionID: sessionID,
		ActionID:  ActionPartTimeJob,
		PlayerID:  p.ID,
	})
	s.Require().NoError(err)

	// Turn 4: interest 2 on 200, then 50 in wages.
	s.advanceTurns(sessionID, p.ID, 4)
	s.Equal(int64(252), s.balanceOf(sessionID, p.ID))

	// Turn 8: interest 2 on 252, then the final 50 in wages.
	s.advanceTurns(sessionID, p.ID, 4)
	s.Equal(int64(304), s.balanceOf(sessionID, p.ID))

	// Turn 12 is past the job's end turn: interest 3 on 304, no wages, and
	// the obligation drops off the statement.
	s.advanceTurns(sessionID, p.ID, 4)
	s.Equal(int64(307), s.balanceOf(sessionID, p.ID))

	statement, err := s.gameService.PlayerStatement(s.ctx, &PlayerStatementInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
	})
	s.Require().NoError(err)
	s.Empty(statement.Statement.Obligations)
}

func (s *GameServiceTestSuite) TestBuyFood() {
	sessionID, p := s.createSessionWithPlayer()

	out, err := s.gameService.DispatchAction(s.ctx, &DispatchActionInput{
		SessionID: sessionID,
		ActionID:  ActionBuyFood,
		PlayerID:  p.ID,
	})
	s.Require().NoError(err)
	s.True(out.Success)

	s.Equal(int64(190), s.balanceOf(sessionID, p.ID))

	shop, err := s.gameService.FindPlayerByName(s.ctx, &FindPlayerByNameInput{
		SessionID: sessionID,
		Name:      SupermarketName,
	})
	s.Require().NoError(err)
	s.Equal(int64(210), s.balanceOf(sessionID, shop.Player.ID))
}

func (s *GameServiceTestSuite) TestDispatchUnknownAction() {
	sessionID, p := s.createSessionWithPlayer()

	_, err := s.gameService.DispatchAction(s.ctx, &DispatchActionInput{
		SessionID: sessionID,
		ActionID:  "win_the_lottery",
		PlayerID:  p.ID,
	})
	s.Equal(ErrUnknownAction, err)
}

func (s *GameServiceTestSuite) TestRollAndMove() {
	sessionID, p := s.createSessionWithPlayer()

	s.mockDiceRoller.EXPECT().Roll(DefaultDiceSides).Return(4)
	s.mockDiceRoller.EXPECT().Roll(DefaultDiceSides).Return(5)

	out, err := s.gameService.RollAndMove(s.ctx, &RollAndMoveInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
	})
	s.Require().NoError(err)

	s.Equal([]int{4, 5}, out.Dice)
	s.Equal(9, out.Total)
	s.Equal(9, out.Location.Idx)
	s.Equal(9, p.LocationIdx)
}

func (s *GameServiceTestSuite) TestMoveWrapsAroundTheRing() {
	sessionID, p := s.createSessionWithPlayer()

	_, err := s.gameService.MoveAbsolute(s.ctx, &MoveAbsoluteInput{
		SessionID:   sessionID,
		PlayerID:    p.ID,
		LocationIdx: 22,
	})
	s.Require().NoError(err)

	out, err := s.gameService.MoveRelative(s.ctx, &MoveRelativeInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
		Delta:     5,
	})
	s.Require().NoError(err)
	s.Equal(3, out.Location.Idx)

	out, err = s.gameService.MoveRelative(s.ctx, &MoveRelativeInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
		Delta:     -4,
	})
	s.Require().NoError(err)
	s.Equal(23, out.Location.Idx)
}

func (s *GameServiceTestSuite) TestMoveAbsoluteOutOfRange() {
	sessionID, p := s.createSessionWithPlayer()

	_, err := s.gameService.MoveAbsolute(s.ctx, &MoveAbsoluteInput{
		SessionID:   sessionID,
		PlayerID:    p.ID,
		LocationIdx: 24,
	})
	s.Equal(ErrLocationNotFound, err)
}

func (s *GameServiceTestSuite) TestGetLocation() {
	sessionID, _ := s.createSessionWithPlayer()

	out, err := s.gameService.GetLocation(s.ctx, &GetLocationInput{
		SessionID:   sessionID,
		LocationIdx: 10,
	})
	s.Require().NoError(err)
	s.Equal("Supermarket", out.Location.Name)
	s.Equal(ActionBuyFood, out.Location.Actions[0].ID)
}

func (s *GameServiceTestSuite) TestPostTransaction() {
	sessionID, p := s.createSessionWithPlayer()

	bank, err := s.gameService.FindPlayerByName(s.ctx, &FindPlayerByNameInput{
		SessionID: sessionID,
		Name:      BankName,
	})
	s.Require().NoError(err)

	out, err := s.gameService.PostTransaction(s.ctx, &PostTransactionInput{
		SessionID:  sessionID,
		Payment:    25,
		SenderID:   p.ID,
		ReceiverID: bank.Player.ID,
		Desc:       "donation",
	})
	s.Require().NoError(err)
	s.Equal(int64(25), out.Transaction.Payment)
	s.Equal(int64(175), s.balanceOf(sessionID, p.ID))
}

func (s *GameServiceTestSuite) TestPostTransactionRejectsNegativePayment() {
	sessionID, p := s.createSessionWithPlayer()

	_, err := s.gameService.PostTransaction(s.ctx, &PostTransactionInput{
		SessionID:  sessionID,
		Payment:    -25,
		SenderID:   p.ID,
		ReceiverID: p.ID,
	})
	s.Equal(ErrNegativeAmount, err)
}

func (s *GameServiceTestSuite) TestCreditScoreStaysInBounds() {
	sessionID, p := s.createSessionWithPlayer()

	baseline, err := s.gameService.PlayerCreditScore(s.ctx, &PlayerCreditScoreInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
	})
	s.Require().NoError(err)
	s.Greater(baseline.Score, 150.0)
	s.Less(baseline.Score, 650.0)

	_, err = s.gameService.Borrow(s.ctx, &BorrowInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
		Amount:    1000,
	})
	s.Require().NoError(err)

	indebted, err := s.gameService.PlayerCreditScore(s.ctx, &PlayerCreditScoreInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
	})
	s.Require().NoError(err)
	s.Less(indebted.Score, baseline.Score)
	s.Greater(indebted.Score, 150.0)
}

func (s *GameServiceTestSuite) TestPlayerStatement() {
	sessionID, p := s.createSessionWithPlayer()

	_, err := s.gameService.Borrow(s.ctx, &BorrowInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
		Amount:    100,
	})
	s.Require().NoError(err)

	out, err := s.gameService.PlayerStatement(s.ctx, &PlayerStatementInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
	})
	s.Require().NoError(err)

	s.Equal(p.ID, out.Statement.PlayerID)
	s.Equal(int64(300), out.Statement.Balance)
	s.Len(out.Statement.Debts, 1)
	s.Len(out.Statement.Transactions, 1)
}

func (s *GameServiceTestSuite) TestEndSessionArchivesAndRemoves() {
	sessionID, p := s.createSessionWithPlayer()

	var saved *models.GameResult
	s.mockArchiveRepo.EXPECT().
		SaveResult(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *archive.SaveResultInput) error {
			saved = input.Result
			return nil
		})

	out, err := s.gameService.EndSession(s.ctx, &EndSessionInput{SessionID: sessionID})
	s.Require().NoError(err)

	s.Equal(saved, out.Result)
	s.Equal(sessionID, out.Result.ID)
	s.Equal(DefaultBoardSize, out.Result.BoardSize)
	s.Equal(s.testTime, out.Result.FinishedAt)
	s.Require().Len(out.Result.Players, 1)
	s.Equal(p.ID, out.Result.Players[0].PlayerID)
	s.Equal(int64(ledger.StartingBalance), out.Result.Players[0].Balance)

	_, err = s.gameService.GetPlayer(s.ctx, &GetPlayerInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
	})
	s.Equal(ErrSessionNotFound, err)
}

func (s *GameServiceTestSuite) TestEndSessionKeepsSessionOnArchiveFailure() {
	sessionID, p := s.createSessionWithPlayer()

	s.mockArchiveRepo.EXPECT().
		SaveResult(s.ctx, gomock.Any()).
		Return(archive.ErrResultNotFound)

	_, err := s.gameService.EndSession(s.ctx, &EndSessionInput{SessionID: sessionID})
	s.Error(err)

	_, err = s.gameService.GetPlayer(s.ctx, &GetPlayerInput{
		SessionID: sessionID,
		PlayerID:  p.ID,
	})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestGetGameResultNotFound() {
	s.mockArchiveRepo.EXPECT().
		GetResult(s.ctx, &archive.GetResultInput{SessionID: "gone"}).
		Return(nil, archive.ErrResultNotFound)

	_, err := s.gameService.GetGameResult(s.ctx, &GetGameResultInput{SessionID: "gone"})
	s.Equal(ErrSessionNotFound, err)
}

func (s *GameServiceTestSuite) TestListGameResults() {
	results := []*models.GameResult{{ID: "a"}, {ID: "b"}}
	s.mockArchiveRepo.EXPECT().
		ListRecentResults(s.ctx, &archive.ListRecentResultsInput{Limit: 2}).
		Return(&archive.ListRecentResultsOutput{Results: results}, nil)

	out, err := s.gameService.ListGameResults(s.ctx, &ListGameResultsInput{Limit: 2})
	s.Require().NoError(err)
	s.Equal(results, out.Results)
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
