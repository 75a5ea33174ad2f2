package identity

// Category is an entity namespace with its own identifier sequence.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryTransaction
	CategoryDebt
	CategoryObligation

	categoryCount
)

// Allocator issues unique, monotonically increasing identifiers per entity
// category. It is not safe for concurrent use; each game session owns one
// and serializes access to it.
type Allocator struct {
	next [categoryCount]int64
}

// New creates an allocator with all sequences starting at zero.
func New() *Allocator {
	return &Allocator{}
}

// Next returns the next identifier in the category's sequence.
func (a *Allocator) Next(c Category) int64 {
	id := a.next[c]
	a.next[c]++
	return id
}

// NextPlayerID returns the next player identifier.
func (a *Allocator) NextPlayerID() int64 {
	return a.Next(CategoryPlayer)
}

// NextTransactionID returns the next transaction identifier.
func (a *Allocator) NextTransactionID() int64 {
	return a.Next(CategoryTransaction)
}

// NextDebtID returns the next debt identifier.
func (a *Allocator) NextDebtID() int64 {
	return a.Next(CategoryDebt)
}

// NextObligationID returns the next obligation identifier.
func (a *Allocator) NextObligationID() int64 {
	return a.Next(CategoryObligation)
}
