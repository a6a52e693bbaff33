package main

import (
	"github.com/spf13/cobra"

	"risparmi/internal/core"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Split transactions by saving-period membership",
	Long: "Keep transactions whose date falls inside a saving period, attaching the\n" +
		"effective remanent, and reject the rest with a reason.",
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	var input rulesInput
	if err := decodeInput(&input); err != nil {
		return err
	}
	if err := input.validate(); err != nil {
		return err
	}

	result, err := core.Filter(input.Q, input.P, input.K, input.Transactions)
	if err != nil {
		return err
	}
	return writeOutput(result)
}
