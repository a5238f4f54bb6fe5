package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Pass styles the PASS marker.
	Pass lipgloss.Style

	// Fail styles the FAIL marker.
	Fail lipgloss.Style

	// CaseName styles the "file :: case" identifier.
	CaseName lipgloss.Style

	// FailureKind styles the failure classification tag.
	FailureKind lipgloss.Style

	// Message styles failure detail lines.
	Message lipgloss.Style

	// SummaryOK styles the summary line of a fully passing run.
	SummaryOK lipgloss.Style

	// SummaryBad styles the summary line of a run with failures.
	SummaryBad lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Pass:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Fail:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		CaseName:    lipgloss.NewStyle(),
		FailureKind: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Message:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SummaryOK:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		SummaryBad:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
