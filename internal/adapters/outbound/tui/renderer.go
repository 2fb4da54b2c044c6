package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fedforge/fedforge/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
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
			Width(60)

	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	okStyle    = lipgloss.NewStyle().Foreground(success)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	pathStyle  = lipgloss.NewStyle().Foreground(fg)
)

// RenderResult renders the post-scaffold summary: what was generated, where,
// and how to run it.
func RenderResult(cfg domain.ProjectConfiguration, targetDir string, sets []*domain.ArtifactSet) string {
	var b strings.Builder

	title := headerStyle.Render("fedforge")
	subtitle := dimStyle.Render(fmt.Sprintf("%s · %s · port %d", cfg.Role, cfg.Framework, cfg.Port))
	name := titleStyle.Render(cfg.NormalizedName)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + name))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Generated") + "\n")
	for _, p := range collectPaths(sets) {
		b.WriteString("    " + pathStyle.Render(p) + "\n")
	}
	b.WriteString("\n")

	b.WriteString("  " + titleStyle.Render("Next steps") + "\n")
	b.WriteString("    " + dimStyle.Render(fmt.Sprintf("cd %s", targetDir)) + "\n")
	b.WriteString("    " + dimStyle.Render(fmt.Sprintf("%s install", cfg.PackageManager)) + "\n")
	b.WriteString("    " + dimStyle.Render(fmt.Sprintf("%s run dev", cfg.PackageManager)) + "\n")
	b.WriteString("\n")
	b.WriteString("  " + okStyle.Render("Done.") + "\n")

	return b.String()
}

// RenderDryRun lists the artifacts without the box, for --dry-run output.
func RenderDryRun(sets []*domain.ArtifactSet) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Would generate") + "\n")
	for _, p := range collectPaths(sets) {
		b.WriteString("    " + pathStyle.Render(p) + "\n")
	}
	return b.String()
}

func collectPaths(sets []*domain.ArtifactSet) []string {
	var paths []string
	for _, set := range sets {
		for _, f := range set.Files {
			p := f.Path
			if set.Root != "" {
				p = set.Root + "/" + p
			}
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}
