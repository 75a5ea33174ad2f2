package game

import (
	"sync"

	"github.com/moneylane/moneylane/internal/board"
	"github.com/moneylane/moneylane/internal/debtbook"
	"github.com/moneylane/moneylane/internal/identity"
	"github.com/moneylane/moneylane/internal/ledger"
	"github.com/moneylane/moneylane/internal/models"
	"github.com/moneylane/moneylane/internal/obligation"
)

// Built-in party names. The leading underscores keep them apart from any
// name a joining player would pick.
const (
	BankName          = "__Bank"
	SupermarketName   = "__Super Market"
	ComputerShopName  = "__Computer Shop"
	LettingAgencyName = "__Letting Agency"
)

// Board placements of the built-in locations.
const (
	lettingAgencyIdx = 5
	supermarketIdx   = 10
	computerShopIdx  = 20
)

// session is one independent, addressable unit of simulation state.
// Operations against it are multi-step read-then-write sequences with no
// isolation of their own, so the owning service serializes them through mu.
// Different sessions share nothing and run in parallel.
type session struct {
	mu sync.Mutex

	ids         *identity.Allocator
	ledger      *ledger.Ledger
	debts       *debtbook.Book
	obligations *obligation.Book
	board       *board.Board
	players     []*models.Player
}

// newSession creates a session with the built-in parties and the default
// board layout seeded.
func newSession(boardSize int, playerInterestRate float64) *session {
	sess := &session{
		ids:         identity.New(),
		ledger:      ledger.New(),
		debts:       debtbook.New(),
		obligations: obligation.New(),
		board:       board.New(boardSize),
	}

	for _, name := range []string{BankName, SupermarketName, ComputerShopName, LettingAgencyName} {
		party := sess.addPlayer(name, playerInterestRate)
		party.System = true
	}

	doNothing := models.Action{Desc: "do nothing", ID: ActionDoNothing}
	for i := 0; i < boardSize; i++ {
		_ = sess.board.SetLocation(i, &models.Location{
			Idx:     i,
			Name:    "Boring Place",
			Actions: []models.Action{doNothing},
		})
	}

	if lettingAgencyIdx < boardSize {
		_ = sess.board.SetLocation(lettingAgencyIdx, &models.Location{
			Idx:  lettingAgencyIdx,
			Name: "Letting Agency",
			Actions: []models.Action{
				{Desc: "take a part-time job (50 pounds per settlement)", ID: ActionPartTimeJob},
				{Desc: "sign a lease (60 pounds per settlement)", ID: ActionSignLease},
				doNothing,
			},
		})
	}

	if supermarketIdx < boardSize {
		_ = sess.board.SetLocation(supermarketIdx, &models.Location{
			Idx:  supermarketIdx,
			Name: "Supermarket",
			Actions: []models.Action{
				{Desc: "buy food (10 pounds)", ID: ActionBuyFood},
				doNothing,
			},
		})
	}

	if computerShopIdx < boardSize {
		_ = sess.board.SetLocation(computerShopIdx, &models.Location{
			Idx:  computerShopIdx,
			Name: "Computer Shop",
			Actions: []models.Action{
				{Desc: "buy computer (200 pounds)", ID: ActionBuyComputer},
				doNothing,
			},
		})
	}

	return sess
}

// addPlayer creates a player at the start location and adds it to the
// roster.
func (sess *session) addPlayer(name string, interestRate float64) *models.Player {
	p := &models.Player{
		ID:           sess.ids.NextPlayerID(),
		Name:         name,
		LocationIdx:  0,
		InterestRate: interestRate,
		Turns:        0,
	}
	sess.players = append(sess.players, p)
	return p
}

// player returns the roster entry with the given identifier.
func (sess *session) player(id int64) (*models.Player, error) {
	for _, p := range sess.players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrPlayerNotFound
}

// playerByName returns the roster entry with the given display name.
func (sess *session) playerByName(name string) (*models.Player, error) {
	for _, p := range sess.players {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, ErrPlayerNotFound
}

// bank returns the lender of last resort. Every session is seeded with one,
// so a lookup failure is a programming error surfaced as ErrPlayerNotFound
// to the caller.
func (sess *session) bank() (*models.Player, error) {
	return sess.playerByName(BankName)
}

// post validates nothing; callers append only after their own validation so
// a failed operation never leaves a partial ledger entry behind.
func (sess *session) post(payment int64, senderID, receiverID int64, desc string, turn int, fromScore, toScore float64) *models.Transaction {
	t := &models.Transaction{
		ID:            sess.ids.NextTransactionID(),
		Payment:       payment,
		SenderID:      senderID,
		ReceiverID:    receiverID,
		Desc:          desc,
		Turn:          turn,
		BaseFromScore: fromScore,
		BaseToScore:   toScore,
	}
	sess.ledger.Post(t)
	return t
}
