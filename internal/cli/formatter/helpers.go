package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

var weekdayShort = [...]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}

// WeekdayShort returns the two-letter German weekday name.
func WeekdayShort(d time.Weekday) string {
	return weekdayShort[d]
}

// ShortDate formats a day as "dd.mm.".
func ShortDate(t time.Time) string {
	return t.Format("02.01.")
}

// GermanDate formats a day as "dd.mm.yyyy".
func GermanDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// RelativeDateFrom describes t by the whole days elapsed until now: "Heute",
// "Gestern", "Vor n Tagen" below a week, otherwise "dd.mm.".
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Floor(now.Sub(t).Hours() / 24))

	switch {
	case days == 0:
		return "Heute"
	case days == 1:
		return "Gestern"
	case days > 1 && days < 7:
		return fmt.Sprintf("Vor %d Tagen", days)
	default:
		return ShortDate(t.In(now.Location()))
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// OrDash returns s, or a dimmed dash when s is empty.
func OrDash(s string) string {
	if s == "" {
		return StyleDim.Render("-")
	}
	return s
}
