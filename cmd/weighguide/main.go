// Weighguide serves the truck weighing workflow reference page.
//
// The page walks an operator through the weighing flow: the numbered steps,
// what to fill at each one, where saved records go, screenshots of the
// weighing program, and a reference table of every data field. It can be
// served over HTTP to any browser on the site network or browsed directly
// in a terminal.
//
// Usage:
//
//	weighguide [command] [flags]
//
// See 'weighguide --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/weighguide/internal/config"
	"github.com/muurk/weighguide/internal/logging"
	"github.com/muurk/weighguide/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string

	// settings is loaded before every command runs.
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "weighguide",
	Short: "Weighing System Guide",
	Long: `Reference guide for the truck weighing workflow.

Shows the weighing flow step by step, what to fill on each screen, where
saved records go (Odoo, server/cloud), screenshots of the weighing program,
and the meaning of every data field.

Serve it to the weighbridge office with 'weighguide serve', or read it in
a terminal with 'weighguide browse'.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the per-user config location)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")

	rootCmd.AddCommand(versionCmd)
}

// configOptional marks commands that still run when the config file cannot
// be loaded. They get the default settings instead.
const configOptional = "config-optional"

// setup loads settings and initializes logging. The flag wins over the
// config file, which wins over WEIGHGUIDE_LOG_LEVEL.
func setup(cmd *cobra.Command, args []string) error {
	var loadErr error
	if configPath != "" {
		settings, loadErr = config.LoadFrom(configPath)
	} else {
		settings, loadErr = config.Load()
	}
	if loadErr != nil {
		if cmd.Annotations[configOptional] != "true" {
			return loadErr
		}
		settings = config.NewSettings()
	}

	level := logLevel
	if level == "" {
		level = settings.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}
	if loadErr != nil {
		logging.Warn("Ignoring unreadable config file", zap.Error(loadErr))
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "weighguide "+version.Full())
	},
}
