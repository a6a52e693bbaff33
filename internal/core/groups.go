package core

import "time"

// txInstant pairs a transaction with its parsed date and rule-adjusted
// remanent so both are computed once per call.
type txInstant struct {
	tx  Transaction
	at  time.Time
	eff float64
}

func resolve(q []QPeriod, p []PPeriod, txs []Transaction) ([]txInstant, error) {
	rs, err := newRuleSet(q, p)
	if err != nil {
		return nil, err
	}
	resolved := make([]txInstant, 0, len(txs))
	for _, tx := range txs {
		at, err := ParseTimestamp(tx.Date)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, txInstant{
			tx:  tx,
			at:  at,
			eff: rs.effectiveRemanent(at, tx.Remanent),
		})
	}
	return resolved, nil
}

// ComputeGroups aggregates effective remanents per reporting period, one
// result per KPeriod in input order. Periods are independent buckets:
// a transaction inside two overlapping periods contributes fully to both.
// Amounts keep full precision; rounding happens at the presentation edge.
func ComputeGroups(q []QPeriod, p []PPeriod, k []KPeriod, txs []Transaction) ([]SavingByDate, error) {
	resolved, err := resolve(q, p, txs)
	if err != nil {
		return nil, err
	}
	windows, err := compileWindows(k)
	if err != nil {
		return nil, err
	}

	groups := make([]SavingByDate, 0, len(k))
	for i, w := range windows {
		var sum float64
		for _, r := range resolved {
			if withinRange(r.at, w.start, w.end) {
				sum += r.eff
			}
		}
		groups = append(groups, SavingByDate{
			Start:  k[i].Start,
			End:    k[i].End,
			Amount: sum,
		})
	}
	return groups, nil
}

// FilterResult partitions transactions by reporting-period membership.
type FilterResult struct {
	Valid   []FilteredTransaction `json:"valid"`
	Invalid []RejectedTransaction `json:"invalid"`
}

// Filter classifies each transaction instead of aggregating: valid when it
// belongs to at least one reporting period, or trivially when no period was
// requested (empty k means no grouping constraint). Same q/p rules as
// ComputeGroups, a different projection of them.
func Filter(q []QPeriod, p []PPeriod, k []KPeriod, txs []Transaction) (FilterResult, error) {
	resolved, err := resolve(q, p, txs)
	if err != nil {
		return FilterResult{}, err
	}
	windows, err := compileWindows(k)
	if err != nil {
		return FilterResult{}, err
	}

	var res FilterResult
	for _, r := range resolved {
		member := len(windows) == 0
		for _, w := range windows {
			if withinRange(r.at, w.start, w.end) {
				member = true
				break
			}
		}
		if member {
			res.Valid = append(res.Valid, FilteredTransaction{
				Transaction:       r.tx,
				EffectiveRemanent: r.eff,
			})
		} else {
			res.Invalid = append(res.Invalid, RejectedTransaction{
				Transaction: r.tx,
				Reason:      ReasonOutsidePeriods,
			})
		}
	}
	return res, nil
}
