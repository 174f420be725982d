package formatter

import (
	"strconv"

	"github.com/alexanderramin/sdlc/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// FormatLifecycle renders the lifecycle phases as a table with the progress
// each phase represents. current may be empty to highlight nothing.
func FormatLifecycle(current domain.Phase) string {
	phases := domain.Lifecycle()
	rows := make([][]string, 0, len(phases))
	for i, ph := range phases {
		p := domain.NewProject("", "", domain.WithPhase(string(ph)))
		marker := ""
		if ph == current {
			marker = "◀ current"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			string(ph),
			strconv.Itoa(p.ProgressPercentage()) + "%",
			marker,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "PHASE", "PROGRESS", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Inherit(StyleHeader)
			case row >= 0 && row < len(phases) && phases[row] == current:
				return base.Inherit(StyleHeader)
			case col == 2:
				return base.Inherit(StyleGreen)
			default:
				return base.Inherit(StyleFg)
			}
		})
	return t.String()
}
