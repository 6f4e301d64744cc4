package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahalo/mahalo-transpiler/internal/transpiler/sourcemap"
)

var composeOutput string

var composeCmd = &cobra.Command{
	Use:   "compose <fragment-map.json> <lowered-map.json>",
	Short: "Compose a fragment map with a lowering map into a final position map",
	Long: `Compose the rewrite stage's fragment map (rewritten text to original
source) with the lowering pass's map (lowered text to rewritten text) into
one map from lowered output to original source. Mappings into synthesized
text are dropped.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fragData, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read fragment map: %w", err)
		}
		var frag sourcemap.FragmentMap
		if err := json.Unmarshal(fragData, &frag); err != nil {
			return fmt.Errorf("failed to parse fragment map %s: %w", args[0], err)
		}

		lowered, err := sourcemap.LoadMap(args[1])
		if err != nil {
			return fmt.Errorf("failed to read lowering map: %w", err)
		}

		composed := sourcemap.Compose(&frag, lowered)
		if composeOutput == "" {
			data, err := json.MarshalIndent(composed, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		return composed.SaveToFile(composeOutput)
	},
}

func init() {
	composeCmd.Flags().StringVarP(&composeOutput, "output", "o", "", "write the composed map to a file instead of stdout")
}
