package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sdlc/internal/domain"
	"github.com/dustin/go-humanize"
)

const progressWidth = 24

// FormatProject renders a styled project card. now anchors relative dates.
func FormatProject(p *domain.Project, now time.Time) string {
	var b strings.Builder

	name := p.Name
	if strings.TrimSpace(name) == "" {
		name = "(unnamed)"
	}
	b.WriteString(Bold(name) + "\n")
	if p.Description != "" {
		b.WriteString(Dim(p.Description) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(field("PHASE", StyleHeader.Render(string(p.CurrentPhase))+
		Dim(fmt.Sprintf("  (%d/%d)", p.PhaseIndex()+1, domain.LifecycleLen()))))
	b.WriteString(field("START", StyleFg.Render(p.StartDate.Format(domain.DateLayout))))
	if p.EstimatedEndDate != nil {
		b.WriteString(field("END", DeadlineStyled(*p.EstimatedEndDate, now)))
	} else {
		b.WriteString(field("END", Dim("--")))
	}
	b.WriteString(field("PROGRESS", RenderProgress(p.ProgressPercentage(), progressWidth)))
	b.WriteString("\n")

	b.WriteString(FormatTimeline(p.CurrentPhase) + "\n\n")

	b.WriteString(Header(fmt.Sprintf("Team (%d)", len(p.Team))) + "\n")
	if len(p.Team) == 0 {
		b.WriteString(Dim("Unassigned") + "\n")
	} else {
		b.WriteString(StylePurple.Render(strings.Join(p.Team, ", ")) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Header(fmt.Sprintf("Requirements (%d)", len(p.Requirements))) + "\n")
	if len(p.Requirements) == 0 {
		b.WriteString(Dim("No requirements recorded."))
	}
	for i, r := range p.Requirements {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleBlue.Render(fmt.Sprintf("%2d.", i+1)) + " " + StyleFg.Render(r))
	}

	return RenderBox("Project", b.String())
}

// FormatTimeline renders the lifecycle on one line, marking the current phase.
func FormatTimeline(current domain.Phase) string {
	phases := domain.Lifecycle()
	parts := make([]string, len(phases))
	for i, ph := range phases {
		parts[i] = PhasePill(ph, current)
	}
	return strings.Join(parts, Dim(" → "))
}

// FormatAdvance summarizes the outcome of advancing a project.
func FormatAdvance(p *domain.Project, advanced bool) string {
	if !advanced {
		return Notice(fmt.Sprintf("%s is already in the final phase (%s)", p.Name, p.CurrentPhase))
	}
	return Success(fmt.Sprintf("%s moved to %s", p.Name, p.CurrentPhase)) + "\n" +
		RenderProgress(p.ProgressPercentage(), progressWidth)
}

// FormatCheck renders the result of validating a project file.
func FormatCheck(path string, problems []error) string {
	if len(problems) == 0 {
		return Success(path + " is valid")
	}
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("✖ %s has %d problem(s)", path, len(problems))))
	for _, p := range problems {
		b.WriteString("\n  " + StyleRed.Render("•") + " " + StyleFg.Render(p.Error()))
	}
	return b.String()
}

func field(label, value string) string {
	return fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-8s", label)), value)
}

// FormatExported confirms a written project file with its size.
func FormatExported(verb, path string, size int64) string {
	return Success(verb) + " " + StyleFg.Render(path) + " " + Dim("("+humanize.Bytes(uint64(size))+")")
}
