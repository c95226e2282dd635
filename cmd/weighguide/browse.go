package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/weighguide/internal/content"
	"github.com/muurk/weighguide/internal/logging"
	"github.com/muurk/weighguide/internal/tui"
)

// Browse command flags
var (
	browseContent string
	browseLogFile string
	browseNoMouse bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Read the guide in the terminal",
	Long: `Open the weighing guide in a full-screen terminal view.

Use ←/→ to move between flow steps and enter to open a step's details.
Close the details with x, esc, or a click outside them.

Logs would draw over the screen, so they only go to --log-file.`,
	Example: `  # Browse the built-in content
  weighguide browse

  # Browse an edited content file, logging to a file
  weighguide browse --content ./weighing.yaml --log-file browse.log --log-level debug`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseContent, "content", "", "YAML content file (default: built-in content)")
	browseCmd.Flags().StringVar(&browseLogFile, "log-file", "", "Write logs to this file while browsing")
	browseCmd.Flags().BoolVar(&browseNoMouse, "no-mouse", false, "Disable mouse support")

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	prefs := settings.Browse

	path := prefs.Content
	if cmd.Flags().Changed("content") {
		path = browseContent
	}
	logFile := prefs.LogFile
	if cmd.Flags().Changed("log-file") {
		logFile = browseLogFile
	}
	mouse := prefs.Mouse && !browseNoMouse

	if logFile == "" {
		logging.SetLogger(zap.NewNop())
	} else {
		level := logLevel
		if level == "" {
			level = settings.LogLevel
		}
		if err := logging.InitializeWithOutput(level, logFile); err != nil {
			return err
		}
	}
	defer logging.Sync()

	store, err := content.Open(path)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	return tui.Run(cmd.Context(), store, tui.Options{Mouse: mouse})
}
