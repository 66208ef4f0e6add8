// Package ui provides Lipgloss-based styled output utilities.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by IsColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styles contains the renderers used for CLI output.
type Styles struct {
	Root      lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Content   lipgloss.Style

	Warning lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Skipped lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		Root:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Directory: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		File:      lipgloss.NewStyle(),
		Content:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Skipped: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Root:      plain,
		Directory: plain,
		File:      plain,
		Content:   plain,
		Warning:   plain,
		Error:     plain,
		Success:   plain,
		Skipped:   plain,
		Dim:       plain,
		Bold:      plain,
	}
}

// IsColorEnabled decides whether output written to writer should be colored.
// "auto" colors terminals unless NO_COLOR is set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// ValidColorMode reports whether mode is accepted by IsColorEnabled.
func ValidColorMode(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}
