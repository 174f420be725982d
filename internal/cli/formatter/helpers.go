package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/sdlc/internal/domain"
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
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := domain.DateOf(t).Sub(domain.DateOf(now))
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DeadlineStyled renders an estimated end date with its distance from now,
// colored by urgency. Past dates are red.
func DeadlineStyled(t time.Time, now time.Time) string {
	rel := RelativeDateFrom(t, now)
	days := int(math.Round(domain.DateOf(t).Sub(domain.DateOf(now)).Hours() / 24))

	style := StyleFg
	switch {
	case days <= 7:
		style = StyleRed
	case days <= 30:
		style = StyleYellow
	}
	return style.Render(t.Format(domain.DateLayout)) + " " + Dim("("+rel+")")
}

// PhasePill returns a colored indicator for a phase relative to the current one.
func PhasePill(phase, current domain.Phase) string {
	switch {
	case phase == current:
		return StyleHeader.Render("▶ " + string(phase))
	case phase.Index() < current.Index():
		return StyleGreen.Render("✔ " + string(phase))
	default:
		return StyleDim.Render("○ " + string(phase))
	}
}
