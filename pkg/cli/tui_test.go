package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFrameRender(t *testing.T) {
	f := Frame{
		Styles: NewStyles(DefaultTheme),
		Title:  "durga",
		Status: "5 parts",
		Sections: []Section{
			{Label: "aroha", Lines: []string{"S - R - M - P - D - S. - -"}},
			{Label: "pakad", Lines: []string{"M P D -", "M R -", ".D .D S -"}},
		},
		Help: "raagas mutate durga --part pakad",
	}

	out := f.Render(40)
	lines := strings.Split(out, "\n")

	// top, title, 2 labels, 4 content lines, bottom, help
	if len(lines) != 10 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	for i, line := range lines[:len(lines)-1] {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d width = %d, want 40: %q", i, w, line)
		}
	}
	if !strings.Contains(out, "durga") || !strings.Contains(out, "[5 parts]") {
		t.Errorf("title missing:\n%s", out)
	}
	if !strings.Contains(out, ".D .D S -") {
		t.Errorf("content missing:\n%s", out)
	}
}

func TestFrameRender_Truncates(t *testing.T) {
	f := Frame{
		Styles:   NewStyles(DefaultTheme),
		Title:    "long",
		Sections: []Section{{Label: "line", Lines: []string{strings.Repeat("S R G ", 20)}}},
	}

	out := f.Render(0)
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if w := lipgloss.Width(line); w != MinFrameWidth {
			t.Errorf("line %d width = %d, want %d", i, w, MinFrameWidth)
		}
	}
	if !strings.Contains(out, "…") {
		t.Errorf("expected ellipsis:\n%s", out)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"S R G", 3, "S R"},
		{"S R G", 10, "S R G"},
		{"S R G", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateString(tt.s, tt.width); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
