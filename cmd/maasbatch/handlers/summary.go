package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"maasbatch/internal/provision"
)

var (
	summaryColorGreen = lipgloss.Color("#22c55e")
	summaryColorRed   = lipgloss.Color("#ef4444")
	summaryColorDim   = lipgloss.Color("#6b7280")
	summaryColorWhite = lipgloss.Color("#f9fafb")
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorWhite)

	summaryDimStyle = lipgloss.NewStyle().
			Foreground(summaryColorDim)

	summaryGreenStyle = lipgloss.NewStyle().
				Foreground(summaryColorGreen)

	summaryRedStyle = lipgloss.NewStyle().
			Foreground(summaryColorRed)
)

// renderSummary produces a lipgloss-styled run summary string.
func renderSummary(s provision.Summary) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(summaryTitleStyle.Render("  maasbatch summary"))
	b.WriteString("\n")
	b.WriteString(summaryDimStyle.Render("  " + strings.Repeat("─", 30)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("    Machines:       %d\n", s.Total))
	b.WriteString(renderCount("Registered", s.Registered, s.Total))
	b.WriteString(renderCount("Deployed", s.Deployed, s.Total))

	b.WriteString(renderFailures("Create failed", s.RegistrationFailures()))
	b.WriteString(renderFailures("Never ready", s.NotReady))
	b.WriteString(renderFailures("Deploy timeout", s.DeployTimeouts))

	return b.String()
}

// renderCount renders a progress line, green when every machine made it.
func renderCount(label string, n, total int) string {
	line := fmt.Sprintf("%-15s %d/%d", label+":", n, total)
	if total > 0 && n == total {
		line = summaryGreenStyle.Render(line)
	}
	return "    " + line + "\n"
}

// renderFailures renders a failure line, omitted entirely when zero.
func renderFailures(label string, n int) string {
	if n == 0 {
		return ""
	}
	return "    " + summaryRedStyle.Render(fmt.Sprintf("%-15s %d", label+":", n)) + "\n"
}
