package main

import (
	"fmt"
	"strings"

	"smart-assets-api/pkg/models"
	"smart-assets-api/pkg/services"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	ColorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}

	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	StyleHeader  = lipgloss.NewStyle().Bold(true).Underline(true)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleHigh    = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleMedium  = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleLow     = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorPrimary).Padding(0, 1)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleSection = lipgloss.NewStyle().MarginTop(1)
)

func priorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return StyleHigh
	case models.PriorityMedium:
		return StyleMedium
	default:
		return StyleLow
	}
}

// renderAssets prints one line per asset.
func renderAssets(store *services.AssetStore) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("📊 %d assets", store.Len())))
	b.WriteString("\n")
	for _, r := range store.Records() {
		fmt.Fprintf(&b, "🏷️ %s  %s\n   %s | %s | %s ريال | %s سنة | %s\n",
			r.TagID, r.Description,
			r.City, r.Custodian,
			services.FormatCurrency(r.Cost),
			services.FormatYears(r.RemainingUsefulLife),
			priorityStyle(r.MaintenancePriority).Render(r.MaintenancePriority.Label()),
		)
	}
	return b.String()
}

// renderCounts prints an ordered distribution as aligned rows.
func renderCounts(title string, entries []models.CountEntry, label func(string) string) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(title))
	b.WriteString("\n")
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(label(e.Key)))
	}
	for _, e := range entries {
		name := label(e.Key)
		fmt.Fprintf(&b, "  %s%s  %d\n", name, strings.Repeat(" ", width-lipgloss.Width(name)), e.Count)
	}
	return b.String()
}
