// Package version reports which weighguide build is running and which
// content document format it reads.
package version

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/muurk/weighguide/internal/content"
)

// Version and Commit can be set at build time:
//
//	go build -ldflags="-X github.com/muurk/weighguide/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/weighguide/internal/version.Commit=abc123"
//
// Otherwise they come from the VCS stamp in the build info, and finally
// fall back to a dated dev version.
var (
	// Version is the semantic version of the application.
	Version = ""
	// Commit is the short git commit hash.
	Commit = ""
)

// ContentFormat is the content document version this build reads and
// exports. Documents with another version are rejected on load.
const ContentFormat = content.SupportedVersion

// Info is the build description served by the health endpoint.
type Info struct {
	Version       string `json:"version"`
	Commit        string `json:"commit"`
	ContentFormat int    `json:"contentFormat"`
}

// vcsStamp is what the go tool records about the working tree.
type vcsStamp struct {
	revision string
	modified bool
	time     time.Time
}

func init() {
	stamp, _ := readStamp()
	Version, Commit = resolve(Version, Commit, stamp, time.Now())
}

func readStamp() (vcsStamp, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return vcsStamp{}, false
	}

	var s vcsStamp
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			s.revision = setting.Value
		case "vcs.modified":
			s.modified = setting.Value == "true"
		case "vcs.time":
			s.time, _ = time.Parse(time.RFC3339, setting.Value)
		}
	}
	return s, s.revision != ""
}

// resolve fills whatever ldflags left empty. Build info carries no tags, so
// a stamped build is versioned by its commit date.
func resolve(version, commit string, s vcsStamp, now time.Time) (string, string) {
	if commit == "" && s.revision != "" {
		commit = s.revision
		if len(commit) > 7 {
			commit = commit[:7]
		}
		if s.modified {
			commit += "-dirty"
		}
	}
	if commit == "" {
		commit = "unknown"
	}

	if version == "" {
		if !s.time.IsZero() {
			version = "dev-" + s.time.Format("20060102")
		} else {
			version = "dev-" + now.Format("20060102-150405")
		}
	}
	return version, commit
}

// Get returns the running build.
func Get() Info {
	return Info{Version: Version, Commit: Commit, ContentFormat: ContentFormat}
}

// Full returns the version with its commit and content format.
func Full() string {
	return fmt.Sprintf("%s (commit: %s, content format: v%d)", Version, Commit, ContentFormat)
}

// UserAgent is the product token sent in the Server header and mDNS TXT record.
func UserAgent() string {
	return "weighguide/" + Version
}
