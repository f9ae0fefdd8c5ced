package version

import (
	"regexp"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Release", Release},
		{"Tower", Tower},
		{"Formula", Formula},
		{"History", History},
		{"REPL", REPL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"tower", Tower},
		{"formula", Formula},
		{"history", History},
		{"repl", REPL},
		{"unknown", Release},
		{"", Release},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComponentVersion(tt.name); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := String(); got != "v"+Release {
		t.Errorf("String() = %q", got)
	}

	GitCommit, BuildTime = "abc123", "2026-10-09"
	defer func() { GitCommit, BuildTime = "", "" }()
	if got, want := String(), "v"+Release+" (abc123) built 2026-10-09"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
