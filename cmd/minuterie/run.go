package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/minuterie/internal/cli"
	"github.com/aretw0/minuterie/pkg/runner"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the timed light",
	Long: `Starts the control loop with the configured driver:
  sim      in-memory button and light, pressed through POST /press
  console  the keyboard is the button (space or enter), q quits
  gpio     real GPIO lines through periph.io`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		maxTicks, _ := cmd.Flags().GetUint64("cycles")

		signals := runner.NewSignalManager(context.Background())
		defer signals.Stop()

		_, err = cli.Run(signals.Context(), cfg, cli.RunOptions{
			Stdin:    os.Stdin,
			Stdout:   os.Stdout,
			Stderr:   os.Stderr,
			MaxTicks: maxTicks,
			Banner:   term.IsTerminal(int(os.Stdout.Fd())),
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("driver", "", "i/o driver: sim, console or gpio")
	runCmd.Flags().String("http", "", "serve the status api on this address")
	runCmd.Flags().String("journal", "", "transition journal: none, memory or redis")
	runCmd.Flags().Uint64("cycles", 0, "stop after this many cycles (0 runs until interrupted)")
}
