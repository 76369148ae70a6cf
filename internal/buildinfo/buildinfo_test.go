package buildinfo

import (
	"runtime/debug"
	"testing"
)

func stamp(t *testing.T, version, commit string, info *debug.BuildInfo) {
	t.Helper()
	oldV, oldC, oldR := Version, Commit, readBuildInfo
	t.Cleanup(func() { Version, Commit, readBuildInfo = oldV, oldC, oldR })
	Version, Commit = version, commit
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
}

func TestShortPrefersVersion(t *testing.T) {
	stamp(t, "v1.2.3", "abc", nil)
	if got := Short(); got != "v1.2.3" {
		t.Fatalf("Short = %q", got)
	}
}

func TestShortFallsBackToVCS(t *testing.T) {
	stamp(t, "dev", "unknown", &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
	}})
	if got := Short(); got != "0123456789ab" {
		t.Fatalf("Short = %q", got)
	}
}

func TestShortDev(t *testing.T) {
	stamp(t, "dev", "unknown", nil)
	if got := Short(); got != "dev" {
		t.Fatalf("Short = %q", got)
	}
	if got := String(); got != "fastgfx dev (commit unknown, built unknown)" {
		t.Fatalf("String = %q", got)
	}
}
