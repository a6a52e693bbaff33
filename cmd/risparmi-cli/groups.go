package main

import (
	"github.com/spf13/cobra"

	"risparmi/internal/core"
)

// rulesInput is the shared body for the groups and filter commands.
type rulesInput struct {
	Q            []core.QPeriod     `json:"q"`
	P            []core.PPeriod     `json:"p"`
	K            []core.KPeriod     `json:"k"`
	Transactions []core.Transaction `json:"transactions"`
}

func (in *rulesInput) validate() error {
	if len(in.Transactions) == 0 {
		return core.ErrEmptyTransactions
	}
	return nil
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Aggregate savings per saving period",
	Long: "Apply override and bonus rules to each transaction's remanent and sum\n" +
		"the effective remanents inside every saving period.",
	RunE: runGroups,
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}

func runGroups(cmd *cobra.Command, args []string) error {
	var input rulesInput
	if err := decodeInput(&input); err != nil {
		return err
	}
	if err := input.validate(); err != nil {
		return err
	}

	groups, err := core.ComputeGroups(input.Q, input.P, input.K, input.Transactions)
	if err != nil {
		return err
	}
	for i := range groups {
		groups[i].Amount = core.Round2(groups[i].Amount)
	}
	return writeOutput(map[string]any{"savings": groups})
}
