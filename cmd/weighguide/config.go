package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/muurk/weighguide/internal/config"
	"github.com/muurk/weighguide/internal/ui"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
	Long: `Manage the config file holding defaults for serve and browse.

Flags given on the command line always win over the file.`,
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a config file with the default settings",
	Annotations: map[string]string{configOptional: "true"},
	Example: `  # Create the per-user config file
  weighguide config init

  # Replace an existing one
  weighguide config init --force`,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file location",
	Annotations: map[string]string{configOptional: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(settings); err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// interactive reports whether the command reads from a terminal.
func interactive(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	force := configForce
	if _, err := os.Stat(path); err == nil && !force && interactive(cmd) {
		force = p.Confirm(cmd.InOrStdin(), "Config file exists",
			[]string{path, "Your current settings will be replaced by the defaults"},
			"Overwrite it?")
		if !force {
			return nil
		}
	}

	if err := config.CreateDefaultConfig(path, force); err != nil {
		return err
	}
	p.PrintSuccess("Config file written", ui.Detail{Key: "Path", Value: path})
	return nil
}
