package command

var (
	space   = Space()
	decimal = Decimal()
	spent   = Literal("spent")
)

// direction SPACE station
var arrivalRule = Map(
	SeparatedPair(directionParser, space, stationParser),
	func(p Pair[Direction, Station]) NextArrivalQuery {
		return NextArrivalQuery{Direction: p.First, Station: p.Second}
	},
)

// "spent" SPACE "total"
var spendingTotalRule = Value(SeparatedPair(spent, space, Literal("total")), SpendingTotalQuery{})

// "spent" SPACE "reset"
var spendingResetRule = Value(SeparatedPair(spent, space, Literal("reset")), SpendingResetQuery{})

// "spent" SPACE decimal [SPACE category]
var spendingEntryRule = Map(
	Preceded(spent, Preceded(space, Sequence(decimal, Opt(Preceded(space, categoryParser))))),
	func(p Pair[float64, Maybe[Category]]) SpendingEntry {
		e := SpendingEntry{Amount: p.First}
		if p.Second.Valid {
			c := p.Second.Value
			e.Category = &c
		}
		return e
	},
)

// "budget" SPACE decimal
var budgetSetRule = Map(
	Preceded(Literal("budget"), Preceded(space, decimal)),
	func(amount float64) BudgetSet { return BudgetSet{Amount: amount} },
)

// ParseArrival matches a direction followed by a station, e.g. "West Cortex".
func ParseArrival(input string) (NextArrivalQuery, string, bool) { return arrivalRule(input) }

// ParseSpendingTotal matches "spent total".
func ParseSpendingTotal(input string) (SpendingTotalQuery, string, bool) {
	return spendingTotalRule(input)
}

// ParseSpendingReset matches "spent reset".
func ParseSpendingReset(input string) (SpendingResetQuery, string, bool) {
	return spendingResetRule(input)
}

// ParseSpendingEntry matches "spent <amount> [category]". The category is
// left nil when absent or unrecognized.
func ParseSpendingEntry(input string) (SpendingEntry, string, bool) {
	return spendingEntryRule(input)
}

// ParseBudgetSet matches "budget <amount>".
func ParseBudgetSet(input string) (BudgetSet, string, bool) { return budgetSetRule(input) }
