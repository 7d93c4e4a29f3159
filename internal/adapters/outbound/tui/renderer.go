package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/pushkraft/internal/domain"
)

// ── Warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderAnalysis formats an Analysis: elements, services, environment,
// fingerprints and, for full analyses, seed/scores/inspections/VCS.
func RenderAnalysis(a *domain.Analysis) string {
	var b strings.Builder

	title := headerStyle.Render("pushkraft")
	subtitle := dimStyle.Render("Project Analysis")
	project := titleStyle.Render(a.Project)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + project))
	b.WriteString("\n\n")

	renderElements(&b, a)
	renderServices(&b, a.Services)
	renderList(&b, "Environment", a.ReferencedEnvironmentVariables)
	renderFingerprints(&b, a.Fingerprints)

	if a.SeedAnalysis != nil {
		renderSeed(&b, a.SeedAnalysis)
	}
	if len(a.Scores) > 0 {
		renderScores(&b, a.Scores, nil)
	}
	if len(a.Inspections) > 0 {
		b.WriteString(RenderInspections(a.Inspections))
	}
	if vc := a.VersionControl; vc != nil {
		state := passStyle.Render("clean")
		if !vc.Clean {
			state = warnStyle.Render("dirty")
		}
		fmt.Fprintf(&b, "  %s  %s %s %s\n\n",
			titleStyle.Render("Version control"), vc.Branch, faintStyle.Render(shortSHA(vc.SHA)), state)
	}
	renderMessages(&b, a.Messages)

	return b.String()
}

func renderElements(b *strings.Builder, a *domain.Analysis) {
	sectionHeader(b, "Elements", len(a.Elements))
	if len(a.Elements) == 0 {
		b.WriteString("    " + skipStyle.Render("(none)") + "\n\n")
		return
	}
	for _, name := range sortedKeys(a.Elements) {
		el := a.Elements[name]
		line := fmt.Sprintf("    %s %s", passStyle.Render("●"), nameStyle.Render(padRight(name, 20)))
		if len(el.Tags) > 0 {
			line += " " + dimStyle.Render(strings.Join(el.Tags, ", "))
		}
		if n := len(el.Dependencies); n > 0 {
			line += " " + faintStyle.Render(fmt.Sprintf("%d deps", n))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func renderServices(b *strings.Builder, services map[string]domain.Service) {
	if len(services) == 0 {
		return
	}
	sectionHeader(b, "Services", len(services))
	for _, name := range sortedKeys(services) {
		svc := services[name]
		line := fmt.Sprintf("    %s %s %s", warnStyle.Render("●"), padRight(name, 20), dimStyle.Render(svc.Type))
		if svc.Image != "" {
			line += "  " + faintStyle.Render(svc.Image)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func renderFingerprints(b *strings.Builder, fps map[string]domain.Fingerprint) {
	if len(fps) == 0 {
		return
	}
	sectionHeader(b, "Fingerprints", len(fps))
	for _, name := range sortedKeys(fps) {
		fmt.Fprintf(b, "    %s %s\n", padRight(name, 28), faintStyle.Render(fps[name].Digest))
	}
	b.WriteString("\n")
}

// RenderSeed formats the parameters and transforms a project offers as a seed.
func RenderSeed(seed *domain.SeedAnalysis) string {
	var b strings.Builder
	if seed == nil {
		seed = &domain.SeedAnalysis{}
	}
	renderSeed(&b, seed)
	return b.String()
}

func renderSeed(b *strings.Builder, seed *domain.SeedAnalysis) {
	label := skipStyle.Render("not usable as seed")
	if seed.UsableAsSeed() {
		label = passStyle.Render("usable as seed")
	}
	fmt.Fprintf(b, "  %s  %s\n", titleStyle.Render("Seed"), label)
	for _, p := range seed.Parameters() {
		req := dimStyle.Render("optional")
		if p.Required {
			req = warnStyle.Render("required")
		}
		line := fmt.Sprintf("    %s %s %s", dimStyle.Render("param"), padRight(p.Name, 20), req)
		if p.Description != "" {
			line += "  " + faintStyle.Render(p.Description)
		}
		b.WriteString(line + "\n")
	}
	for _, r := range seed.TransformRecipes {
		for _, t := range r.Recipe.Transforms {
			fmt.Fprintf(b, "    %s %s %s\n", dimStyle.Render("transform"), padRight(t.ID, 24), faintStyle.Render(r.Originator))
		}
		for _, w := range r.Recipe.Warnings {
			fmt.Fprintf(b, "    %s %s\n", warnTagStyle.Render("warn "), dimStyle.Render(w))
		}
	}
	b.WriteString("\n")
}

// renderScores lists scores by name with a star bar; composite is shown
// when non-nil.
func renderScores(b *strings.Builder, scores domain.Scores, composite *float64) {
	header := titleStyle.Render("Scores")
	if composite != nil {
		header += "  " + lipgloss.NewStyle().Bold(true).Foreground(starColor(*composite)).
			Render(fmt.Sprintf("%.2f / 5", *composite))
	}
	b.WriteString("  " + header + "\n")
	for _, name := range sortedKeys(scores) {
		s := scores[name]
		stars := lipgloss.NewStyle().Foreground(starColor(float64(s.Score))).Render(domain.Stars(s.Score))
		line := fmt.Sprintf("    %s %s", padRight(name, 20), stars)
		if s.Reason != "" {
			line += "  " + faintStyle.Render(s.Reason)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func renderMessages(b *strings.Builder, messages []domain.Message) {
	if len(messages) == 0 {
		return
	}
	b.WriteString("  " + separatorLine + "\n\n")
	sectionHeader(b, "Messages", len(messages))
	for _, m := range messages {
		line := fmt.Sprintf("    %s %s", levelTag(m.Level), dimStyle.Render(m.Text))
		if m.Originator != "" {
			line += "  " + faintStyle.Render(m.Originator)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func renderList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sectionHeader(b, title, len(items))
	b.WriteString("    " + dimStyle.Render(strings.Join(items, ", ")) + "\n\n")
}

func sectionHeader(b *strings.Builder, title string, n int) {
	fmt.Fprintf(b, "  %s %s\n", titleStyle.Render(title), dimStyle.Render(fmt.Sprintf("(%d)", n)))
}

func levelTag(level string) string {
	switch level {
	case domain.LevelError:
		return errorTagStyle.Render("error")
	case domain.LevelWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func starColor(score float64) lipgloss.Color {
	switch {
	case score >= 4:
		return success
	case score >= 3:
		return lipgloss.Color("#A3E635") // lime
	case score >= 2:
		return warning
	default:
		return danger
	}
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
