package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var flagFile string

var rootCmd = &cobra.Command{
	Use:   "risparmi-cli",
	Short: "Micro-savings calculator CLI",
	Long: "Compute round-up savings from expense lists: ceilings and remanents,\n" +
		"validation against an investment cap, saving-period grouping and\n" +
		"projected returns for the available investment schemes.",
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "-", "Input JSON file, - for stdin")
}

// readInput loads the request body from --file or stdin.
func readInput() ([]byte, error) {
	if flagFile == "" || flagFile == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(flagFile)
}

func decodeInput(v any) error {
	data, err := readInput()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	return nil
}

func writeOutput(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
