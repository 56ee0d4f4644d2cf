// Package types defines shared data structures for decomment.
package types

import "runtime/debug"

// Version is the application version. Set at build time via -ldflags.
// Falls back to module version from go install, or "dev" for local builds.
var Version = "dev"

func init() {
	// If version wasn't set via ldflags, try to get it from build info
	// This works when installed via: go install ...@version
	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		}
	}
}

// TextResult is the output of filtering a block of text.
type TextResult struct {
	Text         string `json:"text"`
	BytesIn      int    `json:"bytes_in"`
	BytesOut     int    `json:"bytes_out"`
	BytesRemoved int    `json:"bytes_removed"`
}

// FileResult describes what happened to a single file.
type FileResult struct {
	Path         string `json:"path"`
	BytesIn      int    `json:"bytes_in"`
	BytesOut     int    `json:"bytes_out"`
	BytesRemoved int    `json:"bytes_removed"`
	Changed      bool   `json:"changed"`
	Written      bool   `json:"written,omitempty"`
	Output       string `json:"output,omitempty"`
	Error        string `json:"error,omitempty"`
}

// StripSummary contains aggregated statistics for a strip run.
type StripSummary struct {
	FilesScanned int `json:"files_scanned"`
	FilesChanged int `json:"files_changed"`
	BytesRemoved int `json:"bytes_removed"`
	Errors       int `json:"errors"`
}

// StripResult is the complete output of stripping a path.
type StripResult struct {
	Path    string       `json:"path"`
	Summary StripSummary `json:"summary"`
	Files   []FileResult `json:"files"`
}

// StatusResponse is the output of the status command and tool.
type StatusResponse struct {
	Version    string   `json:"version"`
	States     []string `json:"states"`
	Extensions []string `json:"extensions"`
	Exercises  []string `json:"exercises"`
}

// ExerciseOutcome reports how a single exercise ran.
type ExerciseOutcome struct {
	Name  string `json:"name"`
	Error string `json:"error,omitempty"`
}

// ExerciseResult is the output of running exercises.
type ExerciseResult struct {
	Output   string            `json:"output"`
	Outcomes []ExerciseOutcome `json:"outcomes"`
	Unknown  []string          `json:"unknown,omitempty"`
}
