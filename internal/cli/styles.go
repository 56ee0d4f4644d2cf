// Package cli provides the command-line interface for decomment.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seanhalberthal/decomment/internal/types"
)

// Colour palette for UI elements.
//
//nolint:misspell // lipgloss uses American spelling (Color) for its API
var (
	// Status colours
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))             // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // Red
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))            // Yellow

	// UI elements
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // Grey
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")) // White
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Dark grey
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))  // Cyan
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Symbols for output.
const (
	checkMark = "✓"
	crossMark = "✗"
	bullet    = "•"
)

// formatPath returns a styled file path.
func formatPath(path string) string {
	return pathStyle.Render(path)
}

// formatSuccess returns a styled success message.
func formatSuccess(msg string) string {
	return successStyle.Render(checkMark+" ") + msg
}

// formatError returns a styled error message.
func formatError(msg string) string {
	return errorStyle.Render(crossMark+" ") + msg
}

// formatWarning returns a styled warning message.
func formatWarning(msg string) string {
	return warnStyle.Render("! ") + msg
}

// formatLabel returns a styled label (for key-value pairs).
func formatLabel(label string) string {
	return labelStyle.Render(label + ":")
}

// formatValue returns a styled value.
func formatValue(v any) string {
	return valueStyle.Render(fmt.Sprint(v))
}

// formatHeader returns a styled header.
func formatHeader(text string) string {
	return headerStyle.Render(text)
}

// formatSection returns a styled section header.
func formatSection(text string) string {
	return sectionStyle.Render(text)
}

// formatDivider returns a styled divider line.
func formatDivider(width int) string {
	return dividerStyle.Render(strings.Repeat("─", width))
}

// formatMuted returns muted/dimmed text.
func formatMuted(text string) string {
	return mutedStyle.Render(text)
}

// printStyledError prints a styled error to stderr.
func printStyledError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(os.Stderr, formatError(msg))
}

// printStripResult prints a human-readable summary of a strip run.
func printStripResult(result *types.StripResult, write bool) {
	fmt.Println(formatHeader("decomment") + " " + formatMuted(types.Version))
	fmt.Println(formatSection("Files"))

	for _, f := range result.Files {
		switch {
		case f.Error != "":
			fmt.Println("  " + formatError(formatPath(f.Path)+" "+formatMuted(f.Error)))
		case f.Written:
			fmt.Println("  " + formatSuccess(formatPath(f.Path)+" "+formatMuted(fmt.Sprintf("-%d bytes, written", f.BytesRemoved))))
		case f.Changed:
			fmt.Println("  " + bullet + " " + formatPath(f.Path) + " " + formatMuted(fmt.Sprintf("-%d bytes", f.BytesRemoved)))
		default:
			fmt.Println("  " + formatMuted(bullet+" "+f.Path+" unchanged"))
		}
	}

	fmt.Println(formatDivider(40))
	fmt.Printf("%s %s\n", formatLabel("Scanned"), formatValue(result.Summary.FilesScanned))
	fmt.Printf("%s %s\n", formatLabel("Changed"), formatValue(result.Summary.FilesChanged))
	fmt.Printf("%s %s\n", formatLabel("Bytes removed"), formatValue(result.Summary.BytesRemoved))
	if result.Summary.Errors > 0 {
		fmt.Printf("%s %s\n", formatLabel("Errors"), formatValue(result.Summary.Errors))
	}
	if !write && result.Summary.FilesChanged > 0 {
		fmt.Println(formatWarning("Dry run: re-run with --write to rewrite files"))
	}
}
