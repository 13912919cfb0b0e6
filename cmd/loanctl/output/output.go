// Package output writes styled messages for loanctl.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// Success writes a success message
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s%s\n", successStyle.Render("✓ "), fmt.Sprintf(format, args...))
}

// Title writes a heading
func Title(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf(format, args...)))
}

// Muted writes a secondary message
func Muted(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}
