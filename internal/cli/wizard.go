package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sdlc/internal/cli/formatter"
	"github.com/alexanderramin/sdlc/internal/domain"
	"github.com/alexanderramin/sdlc/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// sdlcHuhTheme returns a custom huh theme using the formatter's Gruvbox palette.
func sdlcHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused: orange accent, red validation errors
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// projectFormValues collects raw wizard answers before conversion.
type projectFormValues struct {
	Name         string
	Description  string
	Requirements string // one per line
	Team         string // comma separated
	Phase        string
	Start        string
	End          string
}

// newProjectForm builds the interactive "new project" wizard bound to v.
func newProjectForm(v *projectFormValues) *huh.Form {
	phaseOptions := make([]huh.Option[string], 0, domain.LifecycleLen())
	for _, ph := range domain.Lifecycle() {
		phaseOptions = append(phaseOptions, huh.NewOption(string(ph), string(ph)))
	}
	if v.Phase == "" {
		v.Phase = string(domain.FirstPhase())
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Placeholder("Sistema de Gestión Académica").
				Value(&v.Name),
			huh.NewText().
				Title("Description").
				Value(&v.Description),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Requirements").
				Description("One per line; duplicates are ignored").
				Value(&v.Requirements),
			huh.NewInput().
				Title("Team").
				Placeholder("María, José, Ana").
				Value(&v.Team),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Current Phase").
				Options(phaseOptions...).
				Value(&v.Phase),
			dateInput("Start Date (YYYY-MM-DD, blank for today)", &v.Start),
			dateInput("Estimated End Date (YYYY-MM-DD, blank for none)", &v.End),
		),
	).WithTheme(sdlcHuhTheme()).WithShowHelp(false)
}

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validateOptionalDate)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// toCreateInput converts wizard answers into a service request.
func (v projectFormValues) toCreateInput() (service.CreateInput, error) {
	in := service.CreateInput{
		Name:         strings.TrimSpace(v.Name),
		Description:  strings.TrimSpace(v.Description),
		Requirements: splitNonEmpty(v.Requirements, "\n"),
		Team:         splitNonEmpty(v.Team, ","),
		Phase:        v.Phase,
	}
	var err error
	if in.StartDate, err = parseOptionalDate(v.Start); err != nil {
		return service.CreateInput{}, fmt.Errorf("start date: %w", err)
	}
	if in.EstimatedEndDate, err = parseOptionalDate(v.End); err != nil {
		return service.CreateInput{}, fmt.Errorf("end date: %w", err)
	}
	return in, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: use YYYY-MM-DD format", s)
	}
	return &t, nil
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
