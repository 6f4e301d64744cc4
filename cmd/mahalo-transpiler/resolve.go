package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mahalo/mahalo-transpiler/internal/transpiler/sourcemap"
)

var resolveMapDir string

var resolveCmd = &cobra.Command{
	Use:   "resolve <generated-file>:<line>[:<column>]",
	Short: "Resolve a runtime location back to original source",
	Long: `Translate a location in lowered output (for example, from a runtime
stack trace) back to the original source location, using the composed
position maps found in the map directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, line, column, err := parseLocation(args[0])
		if err != nil {
			return err
		}

		registry := sourcemap.NewRegistry()
		if err := registry.LoadFromDirectory(resolveMapDir); err != nil {
			return err
		}

		srcFile, srcLine, srcCol, err := registry.TranslateLocation(file, line, column)
		if err != nil {
			return err
		}
		fmt.Printf("%s:%d:%d\n", srcFile, srcLine, srcCol)
		return nil
	},
}

func parseLocation(arg string) (string, int, int, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", 0, 0, fmt.Errorf("invalid location %q, want file:line[:column]", arg)
	}
	line, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid line in %q: %w", arg, err)
	}
	column := 1
	if len(parts) == 3 {
		column, err = strconv.Atoi(parts[2])
		if err != nil {
			return "", 0, 0, fmt.Errorf("invalid column in %q: %w", arg, err)
		}
	}
	return parts[0], line, column, nil
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveMapDir, "maps", "m", ".", "directory containing *.map.json files")
}
