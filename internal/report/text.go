package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"driverpay/internal/domain/payroll"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	finalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)

// Text renders the result for a terminal.
func Text(res payroll.Result) string {
	var b strings.Builder
	if res.Driver != "" {
		b.WriteString(labelStyle.Render("Driver: ") + res.Driver + "\n")
	}

	section := ""
	for _, line := range Lines(res) {
		if line.Section != section {
			section = line.Section
			b.WriteString(titleStyle.Render(sectionTitles[section]) + "\n")
		}
		value := strings.TrimSpace(line.Value + " " + line.Unit)
		if line.Section == "final" {
			value = finalStyle.Render(value)
		}
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(line.Label+":"), value)
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
