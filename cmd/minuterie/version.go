package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/minuterie"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of minuterie",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "minuterie version %s\n", minuterie.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
