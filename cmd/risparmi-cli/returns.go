package main

import (
	"github.com/spf13/cobra"

	"risparmi/internal/core"
)

var (
	flagScheme      string
	flagAge         int
	flagReturnsWage float64
	flagInflation   float64
)

var returnsCmd = &cobra.Command{
	Use:   "returns",
	Short: "Project investment returns for the grouped savings",
	Long: "Group savings per saving period and compound them at the chosen scheme's\n" +
		"rate, net of inflation, until retirement. The nps scheme also reports the\n" +
		"marginal tax benefit of deducting each period's principal.",
	RunE: runReturns,
}

func init() {
	returnsCmd.Flags().StringVarP(&flagScheme, "scheme", "s", "nps", "Investment scheme: nps or index")
	returnsCmd.Flags().IntVarP(&flagAge, "age", "a", 0, "Investor age in years")
	returnsCmd.Flags().Float64VarP(&flagReturnsWage, "wage", "w", 0, "Monthly wage")
	returnsCmd.Flags().Float64VarP(&flagInflation, "inflation", "i", 0, "Annual inflation rate, 0 uses the default")
	_ = returnsCmd.MarkFlagRequired("age")
	_ = returnsCmd.MarkFlagRequired("wage")
	rootCmd.AddCommand(returnsCmd)
}

func runReturns(cmd *cobra.Command, args []string) error {
	var input rulesInput
	if err := decodeInput(&input); err != nil {
		return err
	}
	if err := input.validate(); err != nil {
		return err
	}
	if flagAge <= 0 {
		return core.ErrInvalidAge
	}
	if flagReturnsWage <= 0 {
		return core.ErrInvalidWage
	}

	report, err := core.CalculateReturns(core.Scheme(flagScheme), flagAge, flagReturnsWage,
		flagInflation, input.Q, input.P, input.K, input.Transactions)
	if err != nil {
		return err
	}
	return writeOutput(report)
}
