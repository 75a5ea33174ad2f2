package game

import "github.com/moneylane/moneylane/internal/models"

// Action identifiers dispatched through the action table.
const (
	ActionDoNothing   = "do_nothing"
	ActionBuyFood     = "supermarket_buy_food"
	ActionBuyComputer = "computer_shop_buy_computer"
	ActionPartTimeJob = "part_time_job"
	ActionSignLease   = "sign_lease"
)

// purchaseScoreRate scales a purchase's immediate credit score effect by its
// price.
const purchaseScoreRate = 0.001

const (
	foodPrice     = 10
	computerPrice = 200

	partTimeJobWage  = 50
	partTimeJobTerm  = 8
	leaseRent        = 60
	leaseTerm        = 12
	leaseRentRate    = 0.01
	partTimeJobScore = 0.01
	leaseScore       = 0.005
)

// actionFunc applies an action's effect to a player within a session. The
// session lock is already held by the dispatcher.
type actionFunc func(svc *service, sess *session, p *models.Player) error

// actionTable maps action identifiers to their effects. The table is fixed at
// compile time; locations reference actions by identifier only, so an
// unrecognized identifier is a dispatch error rather than a silent no-op.
var actionTable = map[string]actionFunc{
	ActionDoNothing:   doNothing,
	ActionBuyFood:     buyFood,
	ActionBuyComputer: buyComputer,
	ActionPartTimeJob: partTimeJob,
	ActionSignLease:   signLease,
}

func doNothing(svc *service, sess *session, p *models.Player) error {
	return nil
}

func buyFood(svc *service, sess *session, p *models.Player) error {
	return purchase(sess, p, SupermarketName, foodPrice, "buy food")
}

func buyComputer(svc *service, sess *session, p *models.Player) error {
	return purchase(sess, p, ComputerShopName, computerPrice, "buy computer")
}

// purchase posts a payment from the player to the named shop. Purchases cost
// a sliver of credit score proportional to the price.
func purchase(sess *session, p *models.Player, shopName string, price int64, desc string) error {
	shop, err := sess.playerByName(shopName)
	if err != nil {
		return err
	}
	sess.post(price, p.ID, shop.ID, desc, p.Turns, -float64(price)*purchaseScoreRate, 0)
	return nil
}

// partTimeJob opens a fixed-term wage obligation from the letting agency to
// the player. Wages do not compound.
func partTimeJob(svc *service, sess *session, p *models.Player) error {
	agency, err := sess.playerByName(LettingAgencyName)
	if err != nil {
		return err
	}
	sess.obligations.Add(&models.LongTermObligation{
		ID:           sess.ids.NextObligationID(),
		ReceiverID:   p.ID,
		SenderID:     agency.ID,
		StartTurn:    p.Turns,
		EndTurn:      p.Turns + partTimeJobTerm,
		Desc:         "part-time job wages",
		Amount:       partTimeJobWage,
		InterestRate: 0,
		FromScore:    0,
		ToScore:      partTimeJobScore,
	})
	return nil
}

// signLease opens a fixed-term rent obligation from the player to the letting
// agency. Rent compounds each settlement.
func signLease(svc *service, sess *session, p *models.Player) error {
	agency, err := sess.playerByName(LettingAgencyName)
	if err != nil {
		return err
	}
	sess.obligations.Add(&models.LongTermObligation{
		ID:           sess.ids.NextObligationID(),
		ReceiverID:   agency.ID,
		SenderID:     p.ID,
		StartTurn:    p.Turns,
		EndTurn:      p.Turns + leaseTerm,
		Desc:         "rent",
		Amount:       leaseRent,
		InterestRate: leaseRentRate,
		FromScore:    leaseScore,
		ToScore:      0,
	})
	return nil
}
