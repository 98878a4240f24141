/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains the styles for rendering command output
type Styles struct {
	Heading lipgloss.Style
	Key     lipgloss.Style
	Subtle  lipgloss.Style

	// Change action styles
	Added    lipgloss.Style
	Modified lipgloss.Style
	Removed  lipgloss.Style

	// Semantic styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds the output styles. With colour disabled every style is
// a pass-through.
func NewStyles(useColour bool) *Styles {
	s := &Styles{}
	plain := lipgloss.NewStyle()

	if !useColour {
		s.Heading = plain.Bold(true)
		s.Key = plain
		s.Subtle = plain
		s.Added = plain
		s.Modified = plain
		s.Removed = plain
		s.Success = plain
		s.Warning = plain
		s.Error = plain
		return s
	}

	s.Heading = plain.Bold(true).Foreground(lipgloss.Color("12"))
	s.Key = plain.Foreground(lipgloss.Color("14"))
	s.Subtle = plain.Foreground(lipgloss.Color("8"))

	// Traditional diff colours for change actions.
	s.Added = plain.Foreground(lipgloss.Color("10"))
	s.Modified = plain.Foreground(lipgloss.Color("11"))
	s.Removed = plain.Foreground(lipgloss.Color("9"))

	s.Success = plain.Foreground(lipgloss.Color("10")).Bold(true)
	s.Warning = plain.Foreground(lipgloss.Color("11")).Bold(true)
	s.Error = plain.Foreground(lipgloss.Color("9")).Bold(true)

	return s
}

// ActionSymbol returns the symbol for a change-set action
func (s *Styles) ActionSymbol(action string) string {
	switch action {
	case "Add":
		return s.Added.Render("+")
	case "Modify":
		return s.Modified.Render("~")
	case "Remove":
		return s.Removed.Render("-")
	default:
		return "?"
	}
}

// StatusStyle returns the style for a stack or change-set status
func (s *Styles) StatusStyle(status string) lipgloss.Style {
	switch {
	case status == "DOES_NOT_EXIST":
		return s.Subtle
	case strings.HasSuffix(status, "_COMPLETE"):
		return s.Success
	case strings.HasSuffix(status, "_IN_PROGRESS"):
		return s.Warning
	default:
		return s.Error
	}
}

// ShouldUseColour determines if colour output should be used
func ShouldUseColour() bool {
	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}

	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
