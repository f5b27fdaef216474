package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleToday  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Underline(true)
)

// TechnicianStyle renders text in the technician's own color. Technicians
// without a color use the dim palette entry.
func TechnicianStyle(t domain.Technician) lipgloss.Style {
	if t.Color == "" {
		return StyleDim
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color)).Bold(true)
}

// TechnicianBadge returns "[AB]" in the technician color.
func TechnicianBadge(t domain.Technician) string {
	return TechnicianStyle(t).Render("[" + t.Initials + "]")
}

// MaintenanceStatusColor returns the style for a maintenance status.
func MaintenanceStatusColor(st domain.MaintenanceStatus) lipgloss.Style {
	switch st {
	case domain.MaintenancePlanned:
		return StyleGreen
	case domain.MaintenanceContacted:
		return StyleBlue
	case domain.MaintenanceNotAnswered:
		return StyleYellow
	case domain.MaintenanceUnplanned:
		return StyleRed
	default:
		return StyleDim
	}
}

// MaintenanceStatusPill returns a colored indicator such as "● Geplant".
func MaintenanceStatusPill(st domain.MaintenanceStatus) string {
	return MaintenanceStatusColor(st).Render("● " + st.Label())
}

// ConfirmationPill returns a colored confirmation indicator.
func ConfirmationPill(st domain.ConfirmationStatus) string {
	switch st {
	case domain.ConfirmationConfirmed:
		return StyleGreen.Render("✔ " + st.Label())
	case domain.ConfirmationCancelled:
		return StyleRed.Render("✖ " + st.Label())
	case domain.ConfirmationTentative:
		return StyleYellow.Render("○ " + st.Label())
	default:
		return StyleDim.Render("○ " + st.Label())
	}
}

// PriorityPill returns a colored priority indicator.
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityUrgent:
		return StyleRed.Render("▲ " + p.Label())
	case domain.PriorityHigh:
		return StyleHeader.Render("● " + p.Label())
	case domain.PriorityMedium:
		return StyleYellow.Render("● " + p.Label())
	case domain.PriorityLow:
		return StyleDim.Render("○ " + p.Label())
	default:
		return StyleDim.Render(string(p))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
