package version

import (
	"strings"
	"testing"
	"time"

	"github.com/muurk/weighguide/internal/content"
)

func TestPopulated(t *testing.T) {
	if Version == "" {
		t.Error("Version should never be empty after init")
	}
	if Commit == "" {
		t.Error("Commit should never be empty after init")
	}
}

func TestResolve(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	stamped := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		version, commit string
		stamp           vcsStamp
		wantVersion     string
		wantCommit      string
	}{
		{"ldflags win", "v1.2.3", "abc123", vcsStamp{revision: "ffffffffff", time: stamped}, "v1.2.3", "abc123"},
		{"stamped build", "", "", vcsStamp{revision: "0123456789abcdef", time: stamped}, "dev-20260901", "0123456"},
		{"dirty tree", "", "", vcsStamp{revision: "0123456789abcdef", modified: true, time: stamped}, "dev-20260901", "0123456-dirty"},
		{"short revision", "v1.0.0", "", vcsStamp{revision: "abc"}, "v1.0.0", "abc"},
		{"no stamp", "", "", vcsStamp{}, "dev-20261018-093000", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c := resolve(tt.version, tt.commit, tt.stamp, now)
			if v != tt.wantVersion {
				t.Errorf("resolve() version = %q, want %q", v, tt.wantVersion)
			}
			if c != tt.wantCommit {
				t.Errorf("resolve() commit = %q, want %q", c, tt.wantCommit)
			}
		})
	}
}

func TestContentFormat(t *testing.T) {
	if ContentFormat != content.SupportedVersion {
		t.Errorf("ContentFormat = %d, want %d", ContentFormat, content.SupportedVersion)
	}
	if got := Get().ContentFormat; got != ContentFormat {
		t.Errorf("Get().ContentFormat = %d, want %d", got, ContentFormat)
	}
}

func TestFull(t *testing.T) {
	got := Full()
	for _, want := range []string{Version, "commit: " + Commit, "content format: v1"} {
		if !strings.Contains(got, want) {
			t.Errorf("Full() = %q, want it to contain %q", got, want)
		}
	}
}

func TestUserAgent(t *testing.T) {
	if got, want := UserAgent(), "weighguide/"+Version; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
}
