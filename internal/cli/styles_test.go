package cli

import (
	"strings"
	"testing"
)

func TestFormatters(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"success", formatSuccess("done"), "done"},
		{"error", formatError("failed"), "failed"},
		{"warning", formatWarning("careful"), "careful"},
		{"label", formatLabel("Scanned"), "Scanned:"},
		{"value", formatValue(42), "42"},
		{"path", formatPath("a/b.go"), "a/b.go"},
		{"header", formatHeader("decomment"), "decomment"},
		{"section", formatSection("Files"), "Files"},
		{"muted", formatMuted("quiet"), "quiet"},
	}
	for _, tt := range tests {
		if !strings.Contains(tt.got, tt.want) {
			t.Errorf("%s: %q does not contain %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestFormatDivider(t *testing.T) {
	if got := formatDivider(5); !strings.Contains(got, "─────") {
		t.Errorf("formatDivider(5) = %q", got)
	}
}
