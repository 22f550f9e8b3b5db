package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/minuterie/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the transition table as a diagram",
	Long:  `Outputs a Mermaid diagram (graph TD) of the light's states and transitions, in evaluation order.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), cli.Graph(nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
