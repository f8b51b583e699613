package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteVersion(t *testing.T) {
	tests := []struct {
		name          string
		version       string
		build         string
		buildTime     string
		expectContain []string
		expectMissing []string
	}{
		{
			name:          "dev build",
			version:       "dev",
			build:         "unknown",
			expectContain: []string{"drawer version dev\n", "Go version:", "OS/Arch:"},
			expectMissing: []string{"(build:"},
		},
		{
			name:          "release build with build time",
			version:       "0.3.0",
			build:         "abc1234",
			buildTime:     "2026-10-01_12:00:00",
			expectContain: []string{"drawer version 0.3.0 (build: abc1234) [2026-10-01_12:00:00]", "Go version:"},
			expectMissing: []string{"Commit:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origBuild, origBuildTime := Version, Build, BuildTime
			t.Cleanup(func() {
				Version, Build, BuildTime = origVersion, origBuild, origBuildTime
			})
			Version, Build, BuildTime = tt.version, tt.build, tt.buildTime

			var buf bytes.Buffer
			writeVersion(&buf)
			output := buf.String()

			for _, want := range tt.expectContain {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, output)
				}
			}
			for _, unwanted := range tt.expectMissing {
				if strings.Contains(output, unwanted) {
					t.Errorf("expected output to omit %q, got:\n%s", unwanted, output)
				}
			}
		})
	}
}
