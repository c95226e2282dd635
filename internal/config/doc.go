// Package config provides user preferences for weighguide.
//
// Preferences live in an optional YAML file and supply defaults for the
// serve and browse commands: bind address, screenshot directory, external
// content file, live reload, mDNS advertisement and log level. Flags given
// on the command line override them.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/weighguide/config.yaml or $HOME/.config/weighguide/config.yaml
//   - macOS: $HOME/.config/weighguide/config.yaml
//   - Windows: %LOCALAPPDATA%\weighguide\config.yaml
//
// # Usage Example
//
//	settings, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	addr := fmt.Sprintf("%s:%d", settings.Serve.Host, settings.Serve.Port)
//
// # Thread Safety
//
// The global settings use sync.Once for safe initialization across goroutines.
// File writes are protected by a mutex and are atomic (temp file + rename).
package config
