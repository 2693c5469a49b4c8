package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-dev/treepatch/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "treepatch",
		Short: "Reconcile tree descriptions with minimal mutations",
		Long: `treepatch applies a tree description over another and shows the
smallest set of mutations that turns the first live tree into the second.

Tree files are YAML or JSON documents describing one root node.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		applyCmd(),
		versionCmd(),
	)
	return root
}
