package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "boggle",
		Short: "Boggle word-game engine",
		Long: `boggle is a word-game engine: it generates letter boards under
per-letter frequency constraints, validates submitted words against an
adjacency path search and a dictionary, and can solve whole boards.

Subcommands run the HTTP game server, print freshly generated boards,
or list every dictionary word hiding on a given board.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newSolveCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
