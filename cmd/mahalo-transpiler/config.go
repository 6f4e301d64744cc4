package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahalo/mahalo-transpiler/internal/cli/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective transpiler configuration",
	Long:  "Load mahalo.yml (falling back to defaults) and print the resolved configuration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}
