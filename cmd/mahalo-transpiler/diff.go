package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <original> <rewritten>",
	Short: "Show a rewrite as a colored line diff",
	Long:  "Compare an original compilation unit with its rewritten form and print the changed lines.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		original, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		rewritten, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[1], err)
		}

		dmp := diffmatchpatch.New()
		chars1, chars2, lines := dmp.DiffLinesToChars(string(original), string(rewritten))
		diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

		added := color.New(color.FgGreen).SprintFunc()
		removed := color.New(color.FgRed).SprintFunc()
		for _, d := range diffs {
			for _, line := range splitLines(d.Text) {
				switch d.Type {
				case diffmatchpatch.DiffInsert:
					fmt.Println(added("+ " + line))
				case diffmatchpatch.DiffDelete:
					fmt.Println(removed("- " + line))
				default:
					fmt.Println("  " + line)
				}
			}
		}
		return nil
	},
}

func splitLines(text string) []string {
	trimmed := strings.TrimSuffix(text, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
