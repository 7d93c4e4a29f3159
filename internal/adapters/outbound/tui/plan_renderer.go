package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/pushkraft/internal/application"
	"github.com/abdidvp/pushkraft/internal/domain"
	"github.com/abdidvp/pushkraft/internal/domain/goalgraph"
)

// RenderInterpretation shows the chosen interpreters, the filled goal slots,
// autofixes, scores and messages.
func RenderInterpretation(interp *domain.Interpretation, composite *float64) string {
	var b strings.Builder

	title := headerStyle.Render("Interpretation")
	project := ""
	if a := interp.Analysis(); a != nil {
		project = titleStyle.Render(a.Project)
	}
	chosen := dimStyle.Render(fmt.Sprintf("%d of %d interpreters chosen",
		len(interp.Reason.ChosenInterpreters), len(interp.Reason.AvailableInterpreters)))
	b.WriteString(boxStyle.Render(title + "\n\n" + project + "\n" + chosen))
	b.WriteString("\n\n")

	renderInterpreters(&b, interp.Reason)

	b.WriteString("  " + titleStyle.Render("Goal slots") + "\n")
	for s := domain.SlotStartup; s <= domain.SlotDeploy; s++ {
		gs := interp.Goals(s)
		if gs.Empty() {
			fmt.Fprintf(&b, "    %s %s\n", skipStyle.Render("○"), skipStyle.Render(s.String()))
			continue
		}
		fmt.Fprintf(&b, "    %s %s %s\n",
			passStyle.Render("●"), padRight(s.String(), 18), dimStyle.Render(strings.Join(gs.DisplayNames(), ", ")))
	}
	b.WriteString("\n")

	if len(interp.Autofixes) > 0 {
		names := make([]string, 0, len(interp.Autofixes))
		for _, af := range interp.Autofixes {
			names = append(names, af.Name)
		}
		renderList(&b, "Autofixes", names)
	}
	if len(interp.Scores) > 0 {
		renderScores(&b, interp.Scores, composite)
	}
	renderMessages(&b, interp.Messages)

	return b.String()
}

func renderInterpreters(b *strings.Builder, reason domain.Reason) {
	chosen := make(map[string]bool, len(reason.ChosenInterpreters))
	for _, n := range reason.ChosenInterpreters {
		chosen[n] = true
	}
	b.WriteString("  " + titleStyle.Render("Interpreters") + "\n")
	for _, n := range reason.AvailableInterpreters {
		if chosen[n] {
			fmt.Fprintf(b, "    %s %s\n", passStyle.Render("✔"), n)
		} else {
			fmt.Fprintf(b, "    %s %s\n", skipStyle.Render("○"), skipStyle.Render(n))
		}
	}
	b.WriteString("\n")
}

// RenderPlan draws the delivery plan as a phase table: each phase with its
// goals and the phases it waits on, then the sibling branches.
func RenderPlan(report *application.PlanReport) string {
	var b strings.Builder
	plan := report.Plan

	renderPlanHeader(&b, report)

	if plan.Empty() {
		b.WriteString("  " + dimStyle.Render("Nothing to deliver.") + "\n\n")
		return b.String()
	}

	hdrLine := fmt.Sprintf("  %-18s %-34s %s", "Phase", "Goals", "After")
	b.WriteString(titleStyle.Render(hdrLine) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 68)) + "\n")
	for _, pp := range plan.Phases {
		renderPhaseRow(&b, pp)
	}
	b.WriteString("\n")

	if len(plan.Siblings) > 0 {
		b.WriteString("  " + titleStyle.Render("Independent") + "\n")
		for _, pp := range plan.Siblings {
			renderPhaseRow(&b, pp)
		}
		b.WriteString("\n")
	}

	if report.Composite != nil {
		fmt.Fprintf(&b, "  %s  %s\n\n", titleStyle.Render("Composite score"),
			lipgloss.NewStyle().Bold(true).Foreground(starColor(*report.Composite)).
				Render(fmt.Sprintf("%.2f / 5", *report.Composite)))
	}
	return b.String()
}

func renderPlanHeader(b *strings.Builder, report *application.PlanReport) {
	title := headerStyle.Render("Delivery Plan")

	project := ""
	if a := report.Interpretation.Analysis(); a != nil {
		project = lipgloss.NewStyle().Bold(true).Foreground(fg).Render(a.Project)
	}

	push := dimStyle.Render("no push information")
	if report.Push.SHA != "" {
		push = dimStyle.Render(fmt.Sprintf("%s @ %s  ·  %d changed files  ·  ",
			report.Push.Branch, shortSHA(report.Push.SHA), len(report.Push.ChangedFiles)))
		if report.MaterialChange {
			push += passStyle.Render("material")
		} else {
			push += skipStyle.Render("not material")
		}
	}

	b.WriteString(boxStyle.Render(title + "\n\n" + project + "\n" + push))
	b.WriteString("\n\n")
}

func renderPhaseRow(b *strings.Builder, pp goalgraph.PlannedPhase) {
	goals := truncateOrPad(strings.Join(pp.Goals.DisplayNames(), ", "), 34)
	after := dimStyle.Render("—")
	if len(pp.Goals.After) > 0 {
		after = warnStyle.Render(strings.Join(pp.Goals.After, ", "))
	}
	fmt.Fprintf(b, "  %s %s %s\n", nameStyle.Render(padRight(string(pp.Phase), 18)), goals, after)
}

func truncateOrPad(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}
	return padRight(s, width)
}
