package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mahalo-transpiler",
		Short: "Mahalo transpiler position map tooling",
		Long: `Tooling around the Mahalo source rewrite stage: compose the rewrite
stage's fragment map with the lowering pass's map, resolve runtime
locations back to original source, and inspect rewrites as diffs.`,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
