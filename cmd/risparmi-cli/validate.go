package main

import (
	"github.com/spf13/cobra"

	"risparmi/internal/core"
)

var flagWage float64

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Partition transactions into valid, invalid and duplicates",
	Long: "Check each transaction's ceiling and remanent, compare remanents against\n" +
		"the investment cap derived from the monthly wage, and flag duplicate dates.",
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Float64VarP(&flagWage, "wage", "w", 0, "Monthly wage, used to derive the investment cap")
	_ = validateCmd.MarkFlagRequired("wage")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var input struct {
		Transactions []core.Transaction `json:"transactions"`
	}
	if err := decodeInput(&input); err != nil {
		return err
	}
	if len(input.Transactions) == 0 {
		return core.ErrEmptyTransactions
	}
	if flagWage <= 0 {
		return core.ErrInvalidWage
	}

	return writeOutput(core.Validate(flagWage, input.Transactions))
}
