package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/minuterie/internal/validator"
	"github.com/aretw0/minuterie/pkg/lamp"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and the transition table",
	Long:  `Loads the configuration from every source and reports all invalid settings at once,
then checks the transition table for rows that can never fire.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		table := lamp.NewTable()
		if err := validator.ValidateTable(table, lamp.Off, lamp.Names()); err != nil {
			return fmt.Errorf("transition table: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid! ✅ (%s driver, %d states, %d transitions, hold %d cycles)\n",
			cfg.Driver, len(table.States()), table.Len(), lamp.CyclesFor(cfg.Hold, cfg.Period))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
