package core

import (
	"strings"
	"testing"
)

func TestValidatePartition(t *testing.T) {
	wage := 50000.0 // cap = min(10% of 600000, 200000) = 60000
	txs := []Transaction{
		{Date: "2023-10-12 20:15:00", Amount: 250, Ceiling: 300, Remanent: 50},
		{Date: "2023-02-28 10:10:00", Amount: -375, Ceiling: 100, Remanent: 475},
		{Date: "2023-07-01 12:00:00", Amount: 620, Ceiling: 800, Remanent: 180},
	}
	part := Validate(wage, txs)
	if len(part.Valid) != 1 || len(part.Invalid) != 2 || len(part.Duplicates) != 0 {
		t.Fatalf("partition sizes = %d/%d/%d, want 1/2/0",
			len(part.Valid), len(part.Invalid), len(part.Duplicates))
	}
	if part.Valid[0].Date != "2023-10-12 20:15:00" {
		t.Fatalf("wrong transaction kept valid")
	}
}

func TestValidateCollectsAllReasons(t *testing.T) {
	// Negative amount with an inconsistent ceiling and remanent should
	// report every failed check, not stop at the first.
	tx := Transaction{Date: "2023-01-01 00:00:00", Amount: -10, Ceiling: 50, Remanent: 3}
	part := Validate(1000, []Transaction{tx})
	if len(part.Invalid) != 1 {
		t.Fatalf("expected invalid, got %+v", part)
	}
	reasons := strings.Join(part.Invalid[0].Reasons, "; ")
	for _, want := range []string{"amount must be positive", "multiple of 100", "ceiling minus amount"} {
		if !strings.Contains(reasons, want) {
			t.Fatalf("reasons %q missing %q", reasons, want)
		}
	}
}

func TestValidateTolerance(t *testing.T) {
	// Rounding noise inside the tolerance must not flag a transaction.
	tx := Transaction{Date: "2023-01-01 00:00:00", Amount: 250, Ceiling: 300.0005, Remanent: 49.9996}
	part := Validate(50000, []Transaction{tx})
	if len(part.Valid) != 1 {
		t.Fatalf("tolerance should absorb sub-0.001 noise: %+v", part.Invalid)
	}

	beyond := Transaction{Date: "2023-01-02 00:00:00", Amount: 250, Ceiling: 300.01, Remanent: 50.01}
	part = Validate(50000, []Transaction{beyond})
	if len(part.Invalid) != 1 {
		t.Fatalf("deviation beyond tolerance should be invalid")
	}
}

func TestValidateInvestmentCap(t *testing.T) {
	if got := InvestmentCap(50000); got != 60000 {
		t.Fatalf("InvestmentCap(50000) = %v, want 60000", got)
	}
	// 10% of a very large income is clamped by the absolute cap.
	if got := InvestmentCap(1e7); got != CapMax {
		t.Fatalf("InvestmentCap(1e7) = %v, want %v", got, float64(CapMax))
	}

	// A remanent above the cap is invalid even when internally consistent.
	tx := Transaction{Date: "2023-01-01 00:00:00", Amount: -190}
	tx.Ceiling = Ceiling(tx.Amount)
	tx.Remanent = Remanent(tx.Amount, tx.Ceiling) // 290
	part := Validate(200, []Transaction{tx})      // cap = 240
	if len(part.Invalid) != 1 {
		t.Fatalf("expected cap violation, got %+v", part)
	}
}

func TestValidateDuplicatesTakeEveryOccurrence(t *testing.T) {
	txs := []Transaction{
		{Date: "2023-10-12 20:15:00", Amount: 250, Ceiling: 300, Remanent: 50},
		{Date: "2023-11-01 09:00:00", Amount: 130, Ceiling: 200, Remanent: 70},
		{Date: "2023-10-12 20:15:00", Amount: -1, Ceiling: 100, Remanent: 101},
	}
	part := Validate(50000, txs)
	// Both occurrences go to duplicates, even the internally broken one:
	// duplicate detection bypasses the other checks.
	if len(part.Duplicates) != 2 {
		t.Fatalf("expected both occurrences in duplicates, got %d", len(part.Duplicates))
	}
	if len(part.Valid) != 1 || part.Valid[0].Date != "2023-11-01 09:00:00" {
		t.Fatalf("unexpected valid set: %+v", part.Valid)
	}
	if len(part.Invalid) != 0 {
		t.Fatalf("duplicates must bypass consistency checks: %+v", part.Invalid)
	}
}

func TestValidateIdempotent(t *testing.T) {
	txs := sampleTransactions()
	first := Validate(50000, txs)
	second := Validate(50000, first.Valid)
	if len(second.Valid) != len(first.Valid) || len(second.Invalid) != 0 || len(second.Duplicates) != 0 {
		t.Fatalf("re-validating a valid list must be a no-op: %+v", second)
	}
}
