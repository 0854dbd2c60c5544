package ui

import "github.com/charmbracelet/lipgloss"

// Styler wraps a string for colored terminal output. It is the Styler
// collaborator of the CLI surface: purely cosmetic, never consulted by
// the container engine or the record layer.
type Styler struct {
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
}

// NewStyler builds a Styler with a small fixed palette: green for
// success, red for failure, faint for informational text.
func NewStyler() *Styler {
	return &Styler{
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Success renders msg styled for a successful outcome.
func (s *Styler) Success(msg string) string {
	return s.success.Render(msg)
}

// Failure renders msg styled for an error message.
func (s *Styler) Failure(msg string) string {
	return s.failure.Render(msg)
}

// Info renders msg styled for secondary, informational text.
func (s *Styler) Info(msg string) string {
	return s.info.Render(msg)
}
