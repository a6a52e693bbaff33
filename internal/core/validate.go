package core

import (
	"fmt"
	"math"
)

// Partition is the Validate output: transactions routed by outcome.
type Partition struct {
	Valid      []Transaction        `json:"valid"`
	Invalid    []InvalidTransaction `json:"invalid"`
	Duplicates []Transaction        `json:"duplicates"`
}

// InvestmentCap is the largest remanent a single transaction may carry:
// ten percent of annual income, capped at an absolute maximum.
func InvestmentCap(wage float64) float64 {
	return math.Min(CapWageShare*wage*12, CapMax)
}

// Validate checks each transaction's internal consistency against the given
// monthly wage. Duplicate detection runs first and wins: every occurrence of
// a date string appearing more than once is routed to Duplicates and skips
// the remaining checks. Other failures are collected, not short-circuited,
// so one transaction can report several reasons.
func Validate(wage float64, txs []Transaction) Partition {
	seen := make(map[string]int, len(txs))
	for _, tx := range txs {
		seen[tx.Date]++
	}

	limit := InvestmentCap(wage)
	var part Partition
	for _, tx := range txs {
		if seen[tx.Date] > 1 {
			part.Duplicates = append(part.Duplicates, tx)
			continue
		}

		var reasons []string
		if tx.Amount <= 0 {
			reasons = append(reasons, "amount must be positive")
		}
		if math.Abs(tx.Ceiling-Ceiling(tx.Amount)) > Tolerance {
			reasons = append(reasons, fmt.Sprintf("ceiling %v is not the next multiple of 100 above %v", tx.Ceiling, tx.Amount))
		}
		if math.Abs(tx.Remanent-(tx.Ceiling-tx.Amount)) > Tolerance {
			reasons = append(reasons, fmt.Sprintf("remanent %v does not equal ceiling minus amount", tx.Remanent))
		}
		if tx.Remanent > limit {
			reasons = append(reasons, fmt.Sprintf("remanent %v exceeds the investment cap %v", tx.Remanent, limit))
		}

		if len(reasons) > 0 {
			part.Invalid = append(part.Invalid, InvalidTransaction{Transaction: tx, Reasons: reasons})
		} else {
			part.Valid = append(part.Valid, tx)
		}
	}
	return part
}
