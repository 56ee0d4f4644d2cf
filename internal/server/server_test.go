package server

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seanhalberthal/decomment/internal/stripper"
	"github.com/seanhalberthal/decomment/internal/types"
)

// getStructuredContent returns the StructuredContent from a result.
func getStructuredContent[T any](t *testing.T, result *mcp.CallToolResultFor[T]) T {
	t.Helper()
	return result.StructuredContent
}

// setupTestStripper initialises the package-level strip variable for testing.
func setupTestStripper(t *testing.T) {
	t.Helper()
	strip = stripper.New(nil)
}

// createTestProject creates a temporary directory with the given files.
func createTestProject(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return tmpDir
}

// TestHandleStatus tests the status handler.
func TestHandleStatus(t *testing.T) {
	setupTestStripper(t)

	params := &mcp.CallToolParamsFor[statusInput]{
		Arguments: statusInput{},
	}

	result, err := handleStatus(context.Background(), nil, params)
	if err != nil {
		t.Fatalf("handleStatus() error = %v", err)
	}

	if result.IsError {
		t.Error("handleStatus() returned IsError = true")
	}

	status := getStructuredContent(t, result)
	if status.Version != types.Version {
		t.Errorf("Version = %q, want %q", status.Version, types.Version)
	}
	if len(status.States) != 10 {
		t.Errorf("len(States) = %d, want 10", len(status.States))
	}
	if len(status.Extensions) == 0 {
		t.Error("Extensions is empty")
	}
}

func TestHandleStripText(t *testing.T) {
	setupTestStripper(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "empty", text: "", want: ""},
		{name: "line comment", text: "a //comment\nb", want: "a \nb"},
		{name: "block comment", text: "a/*c1\nc2*/b", want: "ab"},
		{name: "quoted", text: `"a//b"`, want: `"a//b"`},
		{name: "trailing slash", text: "abc/", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &mcp.CallToolParamsFor[stripTextInput]{
				Arguments: stripTextInput{Text: tt.text},
			}

			result, err := handleStripText(context.Background(), nil, params)
			if err != nil {
				t.Fatalf("handleStripText() error = %v", err)
			}

			out := getStructuredContent(t, result)
			if out.Text != tt.want {
				t.Errorf("Text = %q, want %q", out.Text, tt.want)
			}
			if out.BytesRemoved != len(tt.text)-len(tt.want) {
				t.Errorf("BytesRemoved = %d, want %d", out.BytesRemoved, len(tt.text)-len(tt.want))
			}
		})
	}
}

func TestHandleStripPath_Directory(t *testing.T) {
	setupTestStripper(t)

	projectDir := createTestProject(t, map[string]string{
		"main.go":    "package main // entry\n",
		"sub/lib.go": "package sub /* lib */\n",
	})

	params := &mcp.CallToolParamsFor[stripPathInput]{
		Arguments: stripPathInput{Path: projectDir},
	}

	result, err := handleStripPath(context.Background(), nil, params)
	if err != nil {
		t.Fatalf("handleStripPath() error = %v", err)
	}

	out := getStructuredContent(t, result)
	if out.Summary.FilesScanned != 1 {
		t.Errorf("Non-recursive: FilesScanned = %d, want 1", out.Summary.FilesScanned)
	}
	if out.Files[0].Output != "package main \n" {
		t.Errorf("Output = %q", out.Files[0].Output)
	}

	// Recursive run
	params.Arguments.Recursive = true
	result, err = handleStripPath(context.Background(), nil, params)
	if err != nil {
		t.Fatalf("handleStripPath() recursive error = %v", err)
	}
	if got := getStructuredContent(t, result).Summary.FilesScanned; got != 2 {
		t.Errorf("Recursive: FilesScanned = %d, want 2", got)
	}
}

func TestHandleStripPath_Write(t *testing.T) {
	setupTestStripper(t)

	projectDir := createTestProject(t, map[string]string{
		"a.c": "int a; // a\n",
	})

	params := &mcp.CallToolParamsFor[stripPathInput]{
		Arguments: stripPathInput{Path: filepath.Join(projectDir, "a.c"), Write: true},
	}

	result, err := handleStripPath(context.Background(), nil, params)
	if err != nil {
		t.Fatalf("handleStripPath() error = %v", err)
	}
	out := getStructuredContent(t, result)
	if !out.Files[0].Written {
		t.Error("Written = false, want true")
	}
	if out.Files[0].Output != "" {
		t.Error("Output returned for a write run")
	}

	data, err := os.ReadFile(filepath.Join(projectDir, "a.c"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "int a; \n" {
		t.Errorf("a.c = %q", data)
	}
}

func TestHandleStripPath_EmptyPath(t *testing.T) {
	setupTestStripper(t)

	params := &mcp.CallToolParamsFor[stripPathInput]{
		Arguments: stripPathInput{Path: ""},
	}

	result, err := handleStripPath(context.Background(), nil, params)

	if err == nil {
		t.Fatal("handleStripPath() expected error for empty path")
	}
	if result == nil || !result.IsError {
		t.Error("handleStripPath() expected IsError = true for empty path")
	}
	if err.Error() != "path is required" {
		t.Errorf("Error message = %q, want %q", err.Error(), "path is required")
	}
}

func TestHandleStripPath_InvalidPath(t *testing.T) {
	setupTestStripper(t)

	params := &mcp.CallToolParamsFor[stripPathInput]{
		Arguments: stripPathInput{Path: "/nonexistent/path/that/does/not/exist"},
	}

	result, err := handleStripPath(context.Background(), nil, params)

	if err == nil {
		t.Error("handleStripPath() expected error for invalid path")
	}
	if result == nil || !result.IsError {
		t.Error("handleStripPath() expected IsError = true for invalid path")
	}
}

func TestHandleExercise(t *testing.T) {
	setupTestStripper(t)

	params := &mcp.CallToolParamsFor[exerciseInput]{
		Arguments: exerciseInput{},
	}

	result, err := handleExercise(context.Background(), nil, params)
	if err != nil {
		t.Fatalf("handleExercise() error = %v", err)
	}

	out := getStructuredContent(t, result)
	if len(out.Outcomes) != 1 || out.Outcomes[0].Name != "State" {
		t.Errorf("Outcomes = %+v", out.Outcomes)
	}
	if out.Outcomes[0].Error != "" {
		t.Errorf("State exercise failed: %s", out.Outcomes[0].Error)
	}
	if !strings.Contains(out.Output, "State Transition") {
		t.Error("Output missing state transitions")
	}
}

func TestHandleExercise_PartlyUnknown(t *testing.T) {
	setupTestStripper(t)

	params := &mcp.CallToolParamsFor[exerciseInput]{
		Arguments: exerciseInput{Names: []string{"State", "Bridge"}},
	}

	result, err := handleExercise(context.Background(), nil, params)
	if err != nil {
		t.Fatalf("handleExercise() error = %v", err)
	}

	out := getStructuredContent(t, result)
	if len(out.Unknown) != 1 || out.Unknown[0] != "Bridge" {
		t.Errorf("Unknown = %v, want [Bridge]", out.Unknown)
	}
}

func TestHandleExercise_AllUnknown(t *testing.T) {
	setupTestStripper(t)

	params := &mcp.CallToolParamsFor[exerciseInput]{
		Arguments: exerciseInput{Names: []string{"Bridge"}},
	}

	result, err := handleExercise(context.Background(), nil, params)
	if err == nil {
		t.Fatal("handleExercise() expected error")
	}
	if result == nil || !result.IsError {
		t.Error("handleExercise() expected IsError = true")
	}
}
