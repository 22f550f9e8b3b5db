package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/minuterie/internal/cli"
	"github.com/aretw0/minuterie/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "minuterie",
	Short: "Minuterie is a timed light controller",
	Long: `Minuterie turns a light on when a button is pressed and off again after a fixed hold time.
A new press while the light is on restarts the countdown.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "YAML configuration file")
	pf.String("env-file", ".env", "dotenv file to load (ignored when missing)")
	pf.Duration("period", 0, "control loop period (default 200ms)")
	pf.Duration("hold", 0, "how long the light stays on (default 4s)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")
}

// loadConfig reads the configuration and applies the flags the user actually set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	src := config.Sources{}
	src.File, _ = flags.GetString("config")
	src.DotEnv, _ = flags.GetString("env-file")

	var o cli.Overrides
	if flags.Changed("period") {
		v, _ := flags.GetDuration("period")
		o.Period = &v
	}
	if flags.Changed("hold") {
		v, _ := flags.GetDuration("hold")
		o.Hold = &v
	}
	o.LogLevel = changedString(cmd, "log-level")
	o.LogFormat = changedString(cmd, "log-format")
	o.Driver = changedString(cmd, "driver")
	o.HTTPAddr = changedString(cmd, "http")
	o.Journal = changedString(cmd, "journal")

	return cli.LoadConfig(src, o)
}

func changedString(cmd *cobra.Command, name string) *string {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}
	v := f.Value.String()
	return &v
}
