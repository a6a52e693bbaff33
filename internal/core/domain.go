package core

import "errors"

const (
	// CapMax is the absolute ceiling on a single remanent contribution.
	CapMax = 200000
	// CapWageShare is the fraction of annual income a remanent may reach.
	CapWageShare = 0.10
	// Tolerance used for float consistency checks on stored transactions.
	Tolerance = 0.001
)

type (
	// Expense is the raw input: a timestamp string and a spent amount.
	Expense struct {
		Timestamp string  `json:"timestamp"`
		Amount    float64 `json:"amount"`
	}

	// Transaction is an Expense after rounding. Created once, never
	// mutated; later stages produce transformed copies.
	Transaction struct {
		Date     string  `json:"date"`
		Amount   float64 `json:"amount"`
		Ceiling  float64 `json:"ceiling"`
		Remanent float64 `json:"remanent"`
	}

	// QPeriod replaces the remanent with Fixed for dates in [Start, End].
	QPeriod struct {
		Fixed float64 `json:"fixed"`
		Start string  `json:"start"`
		End   string  `json:"end"`
	}

	// PPeriod adds Extra to the remanent for dates in [Start, End].
	// Multiple matches stack.
	PPeriod struct {
		Extra float64 `json:"extra"`
		Start string  `json:"start"`
		End   string  `json:"end"`
	}

	// KPeriod is a reporting bucket. Buckets are independent, not a
	// partition: a transaction may belong to zero or many of them.
	KPeriod struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}

	// Totals carries the column sums of a transaction list.
	Totals struct {
		Amount   float64 `json:"amount"`
		Ceiling  float64 `json:"ceiling"`
		Remanent float64 `json:"remanent"`
	}

	// FilteredTransaction is a transaction that belongs to at least one
	// reporting period, carrying its rule-adjusted remanent.
	FilteredTransaction struct {
		Transaction
		EffectiveRemanent float64 `json:"effectiveRemanent"`
	}

	// RejectedTransaction is a transaction outside every reporting period.
	RejectedTransaction struct {
		Transaction
		Reason string `json:"reason"`
	}

	// InvalidTransaction is a transaction that failed consistency checks,
	// with every collected reason. It never re-enters the pipeline.
	InvalidTransaction struct {
		Transaction
		Reasons []string `json:"reasons"`
	}

	// SavingByDate is one reporting period's aggregate: the summed
	// effective remanents plus projected profits and tax benefit.
	SavingByDate struct {
		Start      string  `json:"start"`
		End        string  `json:"end"`
		Amount     float64 `json:"amount"`
		Profits    float64 `json:"profits"`
		TaxBenefit float64 `json:"taxBenefit"`
	}
)

var (
	ErrEmptyTransactions = errors.New("empty transaction list")
	ErrInvalidWage       = errors.New("wage must be positive")
	ErrInvalidAge        = errors.New("age must be positive")
)

// ReasonOutsidePeriods is the diagnostic attached to transactions that fall
// outside every requested reporting period.
const ReasonOutsidePeriods = "transaction date does not fall within any saving period"
