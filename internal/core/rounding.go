package core

import "math"

// Ceiling returns the next multiple of 100 strictly above amount, with two
// deliberate quirks: non-positive amounts always yield 100 (so the remanent
// becomes 100-amount, which exceeds 100), and an exact multiple of 100 yields
// the following multiple, never the amount itself.
func Ceiling(amount float64) float64 {
	if amount <= 0 {
		return 100
	}
	if math.Mod(amount, 100) == 0 {
		return amount + 100
	}
	return math.Ceil(amount/100) * 100
}

// Remanent is the round-up difference: the micro-saving of one expense.
func Remanent(amount, ceiling float64) float64 {
	return ceiling - amount
}

// ParseResult is the output of Parse: derived transactions plus column sums.
type ParseResult struct {
	Transactions []Transaction `json:"transactions"`
	Totals       Totals        `json:"totals"`
}

// Parse derives a Transaction per Expense and accumulates totals. A single
// malformed timestamp fails the whole batch; there are no partial results.
// Dates are re-emitted in the canonical layout.
func Parse(expenses []Expense) (ParseResult, error) {
	res := ParseResult{Transactions: make([]Transaction, 0, len(expenses))}
	for _, e := range expenses {
		at, err := ParseTimestamp(e.Timestamp)
		if err != nil {
			return ParseResult{}, err
		}
		ceiling := Ceiling(e.Amount)
		tx := Transaction{
			Date:     FormatTimestamp(at),
			Amount:   e.Amount,
			Ceiling:  ceiling,
			Remanent: Remanent(e.Amount, ceiling),
		}
		res.Transactions = append(res.Transactions, tx)
		res.Totals.Amount += tx.Amount
		res.Totals.Ceiling += tx.Ceiling
		res.Totals.Remanent += tx.Remanent
	}
	return res, nil
}

// Round2 rounds a monetary value to two decimals for presentation. Internal
// computation always keeps full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
