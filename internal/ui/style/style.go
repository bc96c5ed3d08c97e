// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "==>"
)

// Styles holds the styles used by line-oriented output.
// Color support is detected from the writer they were built for.
type Styles struct {
	Title   lipgloss.Style
	Prefix  lipgloss.Style
	Faint   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style
	Cached  lipgloss.Style
}

// New builds Styles for output written to w.
func New(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:   r.NewStyle().Foreground(Iris).Bold(true),
		Prefix:  r.NewStyle().Faint(true),
		Faint:   r.NewStyle().Foreground(Slate),
		Success: r.NewStyle().Foreground(Green),
		Failure: r.NewStyle().Foreground(Red).Bold(true),
		Warning: r.NewStyle().Foreground(Yellow),
		Cached:  r.NewStyle().Foreground(Slate).Faint(true),
	}
}
