package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/weighguide/internal/discovery"
	"github.com/muurk/weighguide/internal/ui"
)

var discoverTimeout int

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find guides served on the local network",
	Long: `Find weighguide pages published with 'weighguide serve --advertise'.

Listens for mDNS answers until the timeout and lists every page found.`,
	Example: `  # Quick 2 second scan (default)
  weighguide discover

  # Longer scan for busy networks
  weighguide discover --timeout 15`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&discoverTimeout, "timeout", int(discovery.QuickScanTimeout/time.Second), "Scan timeout in seconds")

	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	timeout, scan, err := discoverScan(cmd)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Println(fmt.Sprintf("Scanning for weighing guides (timeout: %s)...", timeout))
	p.Newline()

	instances, err := scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(instances) == 0 {
		p.PrintWarning("No guides found",
			ui.Detail{Key: "Serve", Value: "start one with 'weighguide serve --advertise'"},
			ui.Detail{Key: "Network", Value: "multicast must be allowed between the machines"},
		)
		return nil
	}

	rows := make([][]string, 0, len(instances))
	for _, inst := range instances {
		rows = append(rows, []string{inst.Name, inst.URL(), orDefault(inst.Version(), "?"), inst.Hostname})
	}
	p.PrintTable([]string{"Name", "URL", "Version", "Host"}, rows)
	p.Println(fmt.Sprintf("Found %d guide(s).", len(instances)))
	return nil
}

// discoverScan picks the scan to run. Without --timeout it is QuickScan.
func discoverScan(cmd *cobra.Command) (time.Duration, func(context.Context) ([]*discovery.Instance, error), error) {
	if !cmd.Flags().Changed("timeout") {
		return discovery.QuickScanTimeout, discovery.QuickScan, nil
	}
	if discoverTimeout < 1 {
		return 0, nil, fmt.Errorf("invalid timeout: %d", discoverTimeout)
	}

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(discoverTimeout) * time.Second
	return scanner.Timeout, scanner.Scan, nil
}
