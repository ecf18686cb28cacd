package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: bundle names, paths, scenarios.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "written" document status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" document status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" document status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (bundle names, paths, scenarios).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (plating, adorning, validating).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Document status constants.
const (
	StatusWritten = "written"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// StatusStyle returns the lipgloss style for a given document status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusWritten:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minDocColumnWidth is the minimum width for the document path column before
// the status suffix, so status words align consistently.
const minDocColumnWidth = 48

// FormatDocLine renders a document identifier with a right-aligned,
// color-coded status suffix.
//
// Format: d:<kind/name>  <status>
func FormatDocLine(kind, name, status string) string {
	path := fmt.Sprintf("%s/%s", kind, name)

	padding := minDocColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("d:")
	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return fmt.Sprintf("%s%s%*s%s", prefix, styledPath, padding, "", styledStatus)
}

// FormatSummary renders a bold completion line with a green checkmark.
func FormatSummary(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return fmt.Sprintf("%s %s", check, StyleSummary.Render(msg))
}
