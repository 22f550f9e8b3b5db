package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/minuterie/internal/cli"
	"github.com/aretw0/minuterie/internal/presentation/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe the states, transitions and timing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		md := cli.Describe(cfg)
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		render, err := tui.NewRenderer(term.IsTerminal(int(os.Stdout.Fd())), 100)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		out, err := render(md)
		if err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("raw", false, "print markdown without rendering")
}
