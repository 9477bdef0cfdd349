package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used in text output.
type Styles struct {
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Path     lipgloss.Style
	Keyword  lipgloss.Style
	Position lipgloss.Style
}

// NewStyles creates styles bound to w. Without a TTY every style renders
// plain text.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Styles{
		Error:    lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:  lr.NewStyle().Foreground(lipgloss.Color("11")),
		Success:  lr.NewStyle().Foreground(lipgloss.Color("10")),
		Muted:    lr.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:     lr.NewStyle().Bold(true),
		Path:     lr.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Keyword:  lr.NewStyle().Foreground(lipgloss.Color("13")),
		Position: lr.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
