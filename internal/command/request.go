package command

import "fmt"

// Kind identifies the variant of a Request
type Kind uint8

const (
	KindNoMatch Kind = iota
	KindNextArrival
	KindSpendingEntry
	KindBudgetSet
	KindSpendingTotal
	KindSpendingReset
)

var kindNames = [...]string{
	KindNoMatch:       "no_match",
	KindNextArrival:   "next_arrival",
	KindSpendingEntry: "spending_entry",
	KindBudgetSet:     "budget_set",
	KindSpendingTotal: "spending_total",
	KindSpendingReset: "spending_reset",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Request is the result of classifying one chat message. The concrete types
// are NextArrivalQuery, SpendingEntry, BudgetSet, SpendingTotalQuery,
// SpendingResetQuery and NoMatch.
type Request interface {
	Kind() Kind
	isRequest()
}

// NextArrivalQuery asks for the next train at a station.
type NextArrivalQuery struct {
	Direction Direction `json:"direction"`
	Station   Station   `json:"station"`
}

// SpendingEntry records an amount spent. Category is nil when the message
// did not name one; the ledger files those under Other.
type SpendingEntry struct {
	Amount   float64   `json:"amount"`
	Category *Category `json:"category,omitempty"`
}

// CategoryOrOther returns the category, defaulting to Other.
func (e SpendingEntry) CategoryOrOther() Category {
	if e.Category == nil {
		return Other
	}
	return *e.Category
}

// BudgetSet replaces the spending budget.
type BudgetSet struct {
	Amount float64 `json:"amount"`
}

// SpendingTotalQuery asks for the budget, total and transactions so far.
type SpendingTotalQuery struct{}

// SpendingResetQuery clears the ledger.
type SpendingResetQuery struct{}

// NoMatch means the text is not a command.
type NoMatch struct{}

func (NextArrivalQuery) Kind() Kind   { return KindNextArrival }
func (SpendingEntry) Kind() Kind      { return KindSpendingEntry }
func (BudgetSet) Kind() Kind          { return KindBudgetSet }
func (SpendingTotalQuery) Kind() Kind { return KindSpendingTotal }
func (SpendingResetQuery) Kind() Kind { return KindSpendingReset }
func (NoMatch) Kind() Kind            { return KindNoMatch }

func (NextArrivalQuery) isRequest()   {}
func (SpendingEntry) isRequest()      {}
func (BudgetSet) isRequest()          {}
func (SpendingTotalQuery) isRequest() {}
func (SpendingResetQuery) isRequest() {}
func (NoMatch) isRequest()            {}
