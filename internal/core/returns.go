package core

import (
	"fmt"
	"math"
)

// Scheme selects one of the two fixed-rate investment projections.
type Scheme string

const (
	// SchemeNPS compounds at 7.11% annually and carries a tax deduction.
	SchemeNPS Scheme = "nps"
	// SchemeIndex compounds at 14.49% annually, no tax deduction.
	SchemeIndex Scheme = "index"
)

const (
	rateNPS          = 0.0711
	rateIndex        = 0.1449
	defaultInflation = 0.055
	retirementAge    = 60
	minHorizonYears  = 5
)

// Rate returns the scheme's fixed annual compounding rate.
func (s Scheme) Rate() (float64, error) {
	switch s {
	case SchemeNPS:
		return rateNPS, nil
	case SchemeIndex:
		return rateIndex, nil
	default:
		return 0, fmt.Errorf("unknown investment scheme %q", string(s))
	}
}

// InvestmentYears is the projection horizon: until retirement, with a five
// year floor for investors already at or past it.
func InvestmentYears(age int) int {
	if age >= retirementAge {
		return minHorizonYears
	}
	return retirementAge - age
}

// EffectiveInflation falls back to the 5.5% default when no positive rate
// is supplied.
func EffectiveInflation(inflation float64) float64 {
	if inflation > 0 {
		return inflation
	}
	return defaultInflation
}

// taxBrackets is the progressive slab table. Each rate applies only to the
// income strictly within its band; no deductions are modelled.
var taxBrackets = []struct {
	upTo float64
	rate float64
}{
	{700000, 0},
	{1000000, 0.10},
	{1200000, 0.15},
	{1500000, 0.20},
	{math.Inf(1), 0.30},
}

// Tax computes the standard marginal-bracket income tax.
func Tax(income float64) float64 {
	var total, prev float64
	for _, b := range taxBrackets {
		if income <= prev {
			break
		}
		slice := math.Min(income, b.upTo) - prev
		total += slice * b.rate
		prev = b.upTo
	}
	return total
}

// TaxBenefit is the tax saved by deducting the invested principal, limited
// to ten percent of annual income and the absolute cap.
func TaxBenefit(annualIncome, principal float64) float64 {
	deduction := math.Min(principal, math.Min(CapWageShare*annualIncome, CapMax))
	return Tax(annualIncome) - Tax(annualIncome-deduction)
}

// Report is the final projection: transaction totals plus one SavingByDate
// per reporting period, monetary fields rounded to two decimals.
type Report struct {
	Totals  Totals         `json:"totals"`
	Savings []SavingByDate `json:"savings"`
}

// CalculateReturns runs the full pipeline for one scheme: group the
// transactions' effective remanents per reporting period, compound each
// group to the investment horizon, deflate by inflation and, for schemes
// that carry one, compute the tax benefit of the invested principal.
func CalculateReturns(scheme Scheme, age int, wage, inflation float64, q []QPeriod, p []PPeriod, k []KPeriod, txs []Transaction) (Report, error) {
	rate, err := scheme.Rate()
	if err != nil {
		return Report{}, err
	}

	groups, err := ComputeGroups(q, p, k, txs)
	if err != nil {
		return Report{}, err
	}

	years := float64(InvestmentYears(age))
	annualIncome := wage * 12
	inflationRate := EffectiveInflation(inflation)

	report := Report{Savings: make([]SavingByDate, 0, len(groups))}
	for _, tx := range txs {
		report.Totals.Amount += tx.Amount
		report.Totals.Ceiling += tx.Ceiling
		report.Totals.Remanent += tx.Remanent
	}
	report.Totals.Amount = Round2(report.Totals.Amount)
	report.Totals.Ceiling = Round2(report.Totals.Ceiling)
	report.Totals.Remanent = Round2(report.Totals.Remanent)

	for _, g := range groups {
		principal := g.Amount
		maturity := principal * math.Pow(1+rate, years)
		realValue := maturity / math.Pow(1+inflationRate, years)

		var benefit float64
		if scheme == SchemeNPS {
			benefit = TaxBenefit(annualIncome, principal)
		}

		report.Savings = append(report.Savings, SavingByDate{
			Start:      g.Start,
			End:        g.End,
			Amount:     Round2(principal),
			Profits:    Round2(realValue - principal),
			TaxBenefit: Round2(benefit),
		})
	}
	return report, nil
}
