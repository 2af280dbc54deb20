package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"unify/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "unify [flags] <path> [path...]",
	Short: "Unify quote style in Python string literals",
	Long: `unify rewrites Python string literals to a consistent quote style while
leaving every other byte of the file intact. Files that cannot be lexed
are passed through unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoot,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "unify: %v\n", err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
