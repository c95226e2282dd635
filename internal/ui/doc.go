// Package ui renders the one-shot output of the weighguide commands.
//
// Interactive browsing lives in package tui. The components here print once
// and return:
//
//   - Header: command banner showing what runs and with which parameters
//   - Checklist: pass/fail lines with a bar, used by validate
//   - Result: success, warning, and failure boxes
//   - Table: bordered rows, used by discover
//
// All of them go through a Printer so tests can capture the output:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Content Check", "weighguide validate",
//	    ui.Detail{Key: "Content", Value: path})
//
// # Logging Integration
//
// Logging is controlled via the WEIGHGUIDE_LOG_LEVEL environment variable.
// When unset, zap logging is silent so that only this curated output is
// shown.
package ui
