// Package logging provides structured logging for weighguide.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent unless a level is given on the command line or through the
// WEIGHGUIDE_LOG_LEVEL environment variable.
//
// # Log Levels
//
//   - Debug: modal transitions, websocket pings
//   - Info: requests, connections, content reloads
//   - Warn: rejected reloads, dropped clients
//   - Error: startup failures
//
// # Usage
//
//	if err := logging.Initialize("info"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.Info("Server listening", zap.String("addr", addr))
//
// The terminal browser draws on stdout, so it logs to a file instead:
//
//	logging.InitializeWithOutput("debug", "/tmp/weighguide.log")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once initialization
// has finished.
package logging
