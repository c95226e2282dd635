package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/muurk/weighguide/internal/server"
	"github.com/muurk/weighguide/internal/ui"
)

// Serve command flags
var (
	serveHost      string
	servePort      int
	serveAssetsDir string
	serveContent   string
	serveWatch     bool
	serveAdvertise bool
	serveName      string
	serveCert      string
	serveKey       string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the guide over HTTP",
	Long: `Serve the weighing guide as a web page.

Screenshots are served from --assets-dir under /pitcher/. The content is
compiled in; pass --content to serve an edited YAML file instead, and add
--watch to reload it on every save and refresh open pages.

With --advertise the page is published over mDNS so that other machines
can find it with 'weighguide discover'.

Unset flags fall back to the serve section of the config file.`,
	Example: `  # Serve on the default port with screenshots from ./public
  weighguide serve

  # Serve an edited content file and reload on save
  weighguide serve --content ./weighing.yaml --watch

  # Advertise on the local network under a custom name
  weighguide serve --advertise --name "Gate 2 weighbridge"

  # Serve HTTPS
  weighguide serve --port 8443 --cert cert.pem --key key.pem`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Interface to bind (default from config, then 0.0.0.0)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "TCP port (default from config, then 8080)")
	serveCmd.Flags().StringVar(&serveAssetsDir, "assets-dir", "", "Directory with the screenshots, served under /pitcher/")
	serveCmd.Flags().StringVar(&serveContent, "content", "", "YAML content file (default: built-in content)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload --content on change and refresh open pages")
	serveCmd.Flags().BoolVar(&serveAdvertise, "advertise", false, "Publish the page over mDNS")
	serveCmd.Flags().StringVar(&serveName, "name", "", "mDNS instance name")
	serveCmd.Flags().StringVar(&serveCert, "cert", "", "TLS certificate file (HTTPS when set with --key)")
	serveCmd.Flags().StringVar(&serveKey, "key", "", "TLS private key file")

	rootCmd.AddCommand(serveCmd)
}

// serveConfig merges flags over the config file.
func serveConfig(cmd *cobra.Command) (*server.Config, error) {
	prefs := settings.Serve
	cfg := &server.Config{
		Host:         prefs.Host,
		Port:         prefs.Port,
		AssetsDir:    prefs.AssetsDir,
		ContentPath:  prefs.Content,
		Watch:        prefs.Watch,
		Advertise:    prefs.Advertise,
		InstanceName: prefs.InstanceName,
		CertPath:     serveCert,
		KeyPath:      serveKey,
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = serveHost
	}
	if flags.Changed("port") {
		cfg.Port = servePort
	}
	if flags.Changed("assets-dir") {
		cfg.AssetsDir = serveAssetsDir
	}
	if flags.Changed("content") {
		cfg.ContentPath = serveContent
	}
	if flags.Changed("watch") {
		cfg.Watch = serveWatch
	}
	if flags.Changed("advertise") {
		cfg.Advertise = serveAdvertise
	}
	if flags.Changed("name") {
		cfg.InstanceName = serveName
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if (cfg.CertPath == "") != (cfg.KeyPath == "") {
		return nil, fmt.Errorf("both --cert and --key must be provided together, or neither")
	}

	// A missing screenshot directory is not fatal; the page still works.
	if cfg.AssetsDir != "" {
		if info, err := os.Stat(cfg.AssetsDir); err != nil || !info.IsDir() {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: assets directory %s not found, screenshots will be missing\n", cfg.AssetsDir)
			cfg.AssetsDir = ""
		}
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := serveConfig(cmd)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	scheme := "http"
	if cfg.CertPath != "" {
		scheme = "https"
	}
	params := []ui.Detail{
		{Key: "Address", Value: fmt.Sprintf("%s://%s:%d/", scheme, cfg.Host, cfg.Port)},
		{Key: "Content", Value: orDefault(cfg.ContentPath, "built-in")},
		{Key: "Screenshots", Value: orDefault(cfg.AssetsDir, "none")},
		{Key: "Live reload", Value: strconv.FormatBool(cfg.Watch)},
	}
	if cfg.Advertise {
		params = append(params, ui.Detail{Key: "mDNS name", Value: cfg.InstanceName})
	}
	ui.NewPrinter(cmd.OutOrStdout()).PrintHeader("Weighing System Guide", "weighguide serve", params...)

	return srv.Start()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
