// Package ui renders output for the non-interactive subcommands:
// status lines, a framed panel and a progress bar.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title  = lipgloss.NewStyle().Bold(true)
	Muted  = lipgloss.NewStyle().Faint(true)
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	Good   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	Bad    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	Done   = lipgloss.NewStyle().Faint(true).Strikethrough(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

func OK(msg string) {
	fmt.Println(Good.Render("✔ " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, Bad.Render("✖ "+msg))
}

// Panel frames the lines in a rounded box.
func Panel(lines []string) string {
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// ProgressBar renders done/total as a bar with a percentage.
func ProgressBar(done, total, width int) string {
	if total < 1 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, done*100/total)
}
