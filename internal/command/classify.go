package command

func asRequest[T Request](p Parser[T]) Parser[Request] {
	return Map(p, func(v T) Request { return v })
}

// rules in priority order. The literal spending rules come before the
// amount rule so that a keyword always wins over a number.
var rules = []Parser[Request]{
	asRequest(spendingTotalRule),
	asRequest(spendingResetRule),
	asRequest(arrivalRule),
	asRequest(spendingEntryRule),
	asRequest(budgetSetRule),
}

var strictRules = func() []Parser[Request] {
	out := make([]Parser[Request], len(rules))
	for i, r := range rules {
		out[i] = Complete(r)
	}
	return out
}()

// Classify returns the first rule that matches the start of text, or NoMatch.
// Anything after the matched command is ignored, so "budget 500 for june"
// is a BudgetSet of 500.
func Classify(text string) Request { return first(rules, text) }

// ClassifyStrict is like Classify but a rule only matches if nothing other
// than whitespace follows the command.
func ClassifyStrict(text string) Request { return first(strictRules, text) }

func first(rs []Parser[Request], text string) Request {
	for _, r := range rs {
		if req, _, ok := r(text); ok {
			return req
		}
	}
	return NoMatch{}
}
