package main

import (
	"github.com/spf13/cobra"

	"risparmi/internal/core"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Round expenses up to the next hundred",
	Long:  "Read an expense list and emit transactions with ceilings, remanents and totals.",
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var input struct {
		Expenses []core.Expense `json:"expenses"`
	}
	if err := decodeInput(&input); err != nil {
		return err
	}
	if len(input.Expenses) == 0 {
		return core.ErrEmptyTransactions
	}

	result, err := core.Parse(input.Expenses)
	if err != nil {
		return err
	}
	return writeOutput(result)
}
