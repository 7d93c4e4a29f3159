package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/pushkraft/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	findingStyle       = lipgloss.NewStyle().Foreground(warning)
)

// RenderInspections renders code inspection reports, failing ones first.
func RenderInspections(reports map[string]domain.InspectionReport) string {
	var b strings.Builder

	names := sortedKeys(reports)
	failed := 0
	for _, n := range names {
		if !reports[n].Passed {
			failed++
		}
	}

	fmt.Fprintf(&b, "  %s %s\n",
		sectionHeaderStyle.Render("Inspections"),
		dimStyle.Render(fmt.Sprintf("(%d, %d failing)", len(reports), failed)),
	)

	for _, pass := range []bool{false, true} {
		for _, n := range names {
			r := reports[n]
			if r.Passed != pass {
				continue
			}
			icon := failStyle.Render("✘")
			if r.Passed {
				icon = passStyle.Render("✔")
			}
			fmt.Fprintf(&b, "    %s %s\n", icon, n)
			for _, f := range r.Findings {
				fmt.Fprintf(&b, "      %s %s\n", findingStyle.Render("●"), dimStyle.Render(f))
			}
		}
	}
	b.WriteString("\n")
	return b.String()
}
