package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Initialization failures were already reported by runStep.
		if !errors.Is(err, ErrInitFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "make-ffx-env <file>",
	Short: "Make empty ffx environment",
	Long: "make-ffx-env writes an empty JSON object to <file>, creating or truncating it.\n" +
		"Use \"-\" to write to standard output.",
	Version:       Version,
	Args:          cobra.ExactArgs(1),
	RunE:          runInit,
	SilenceUsage:  true,
	SilenceErrors: true,
}
