package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/weighguide/internal/content"
	"github.com/muurk/weighguide/internal/ui"
)

// Content command flags
var (
	validateContent   string
	validateAssetsDir string
	exportContent     string
	exportFormat      string
	exportOutput      string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a content file",
	Long: `Check that a content file can be served.

Every flow step must have a detail record, step numbers must run 1..N,
and destinations need unique ids. With --assets-dir the screenshots the
content refers to must exist as well.

Exits non-zero when any check fails.`,
	Example: `  # Check the built-in content
  weighguide validate

  # Check an edited file and its screenshots
  weighguide validate --content ./weighing.yaml --assets-dir ./public`,
	RunE: runValidate,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the content as YAML or JSON",
	Long: `Write the content document, e.g. to start editing from the built-in one.

The YAML output can be passed back with --content.`,
	Example: `  # Start a content file from the built-in content
  weighguide export --output weighing.yaml

  # JSON for other tools
  weighguide export --format json`,
	RunE: runExport,
}

func init() {
	validateCmd.Flags().StringVar(&validateContent, "content", "", "YAML content file (default: built-in content)")
	validateCmd.Flags().StringVar(&validateAssetsDir, "assets-dir", "", "Check that the screenshots exist in this directory")

	exportCmd.Flags().StringVar(&exportContent, "content", "", "YAML content file (default: built-in content)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "yaml", "Output format (yaml, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Content Check", "weighguide validate",
		ui.Detail{Key: "Content", Value: orDefault(validateContent, "built-in")},
		ui.Detail{Key: "Screenshots", Value: orDefault(validateAssetsDir, "not checked")},
	)
	p.Newline()

	checks := ui.NewChecklist("")
	store, problems := checkContent(checks, validateContent, validateAssetsDir)
	p.PrintChecklist(checks)

	if !checks.OK() {
		r := ui.NewFailureResult("Content rejected", nil, []string{
			"Compare with 'weighguide export' output",
			"Every step needs an entry under details with the same number",
			"Screenshot paths are relative to /pitcher/",
		})
		r.Problems = problems
		p.PrintResult(r)
		return fmt.Errorf("content check failed: %d problem(s)", len(problems))
	}

	p.PrintSuccess("Content is valid",
		ui.Detail{Key: "Steps", Value: fmt.Sprint(len(store.Steps()))},
		ui.Detail{Key: "Destinations", Value: fmt.Sprint(len(store.Destinations()))},
		ui.Detail{Key: "Screenshots", Value: fmt.Sprint(len(store.Images()))},
		ui.Detail{Key: "Fields", Value: fmt.Sprint(len(store.Fields()))},
	)
	return nil
}

// checkContent runs the content checks in order, stopping at the first
// one later checks depend on. It returns the store when parsing succeeded
// and one line per problem found.
func checkContent(checks *ui.Checklist, contentPath, assetsDir string) (*content.Store, []string) {
	const (
		checkRead   = "Read content"
		checkParse  = "Parse and validate"
		checkSteps  = "Flow steps have details"
		checkDests  = "Destinations"
		checkImages = "Screenshots present"
	)

	var data []byte
	if contentPath == "" {
		checks.Pass(checkRead, "built-in")
	} else {
		var err error
		data, err = os.ReadFile(contentPath)
		if err != nil {
			checks.Fail(checkRead, "unreadable")
			checks.Skip(checkParse)
			return nil, []string{err.Error()}
		}
		checks.Pass(checkRead, fmt.Sprintf("%d bytes", len(data)))
	}

	var store *content.Store
	var err error
	if data == nil {
		store, err = content.Default()
	} else {
		store, err = content.Parse(data)
	}
	if err != nil {
		var verr *content.ValidationError
		if errors.As(err, &verr) {
			checks.Fail(checkParse, fmt.Sprintf("%d problem(s)", len(verr.Problems)))
			return nil, verr.Problems
		}
		checks.Fail(checkParse, "not valid YAML")
		return nil, []string{err.Error()}
	}
	checks.Pass(checkParse, "")
	checks.Pass(checkSteps, fmt.Sprintf("%d steps", len(store.Steps())))

	withPayment := 0
	for _, d := range store.Destinations() {
		if d.HasPaymentModes() {
			withPayment++
		}
	}
	checks.Pass(checkDests, fmt.Sprintf("%d, %d with payment modes", len(store.Destinations()), withPayment))

	if assetsDir == "" {
		return store, nil
	}
	missing := missingScreenshots(store.Images(), assetsDir)
	if len(missing) > 0 {
		checks.Fail(checkImages, fmt.Sprintf("%d missing", len(missing)))
		return store, missing
	}
	checks.Pass(checkImages, fmt.Sprintf("%d files", len(store.Images())))
	return store, nil
}

// missingScreenshots maps each /pitcher/ source to assetsDir and reports
// the ones that are not regular files. Sources are URL paths, so
// "%20" names a file with a space.
func missingScreenshots(images []content.ScreenImage, assetsDir string) []string {
	var missing []string
	for _, img := range images {
		src := img.Src
		if unescaped, err := url.PathUnescape(src); err == nil {
			src = unescaped
		}
		rel := strings.TrimPrefix(path.Clean("/"+src), "/pitcher/")
		info, err := os.Stat(filepath.Join(assetsDir, filepath.FromSlash(rel)))
		if err != nil || !info.Mode().IsRegular() {
			missing = append(missing, fmt.Sprintf("screenshot %s not found in %s", img.Src, assetsDir))
		}
	}
	return missing
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := content.Open(exportContent)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return encodeDocument(out, store.Document(), exportFormat)
}

func encodeDocument(w io.Writer, doc content.Document, format string) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (use yaml or json)", format)
	}
}
