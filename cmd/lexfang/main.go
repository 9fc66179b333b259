// Package main provides the entry point for the lexfang CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/lexfang/cmd/lexfang/commands"
	"github.com/Sumatoshi-tech/lexfang/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lexfang",
		Short: "Lexfang character classes - interval-set tooling for lexer character classes",
		Long: `Lexfang manipulates character sets stored as canonical interval trees.

Commands:
  classes   List the known character classes
  eval      Combine two character sets with a set operation`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands.
	rootCmd.AddCommand(commands.NewClassesCommand())
	rootCmd.AddCommand(commands.NewEvalCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "lexfang %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
