package domain

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DateLayout is the ISO 8601 calendar date layout used for display and files.
const DateLayout = "2006-01-02"

// Project is a software development project moving through the lifecycle.
// A Project is not safe for concurrent mutation.
type Project struct {
	Name             string
	Description      string
	Requirements     []string
	CurrentPhase     Phase
	Team             []string
	StartDate        time.Time
	EstimatedEndDate *time.Time
}

type projectConfig struct {
	requirements []string
	phase        *string
	team         []string
	startDate    *time.Time
	endDate      *time.Time
	today        func() time.Time
}

// Option customizes NewProject.
type Option func(*projectConfig)

func WithRequirements(reqs ...string) Option {
	return func(c *projectConfig) {
		c.requirements = reqs
	}
}

// WithPhase sets the initial phase. The value is normalized; anything that is
// not a lifecycle phase resets to the first phase.
func WithPhase(phase string) Option {
	return func(c *projectConfig) {
		c.phase = &phase
	}
}

func WithTeam(members ...string) Option {
	return func(c *projectConfig) {
		c.team = members
	}
}

func WithStartDate(d time.Time) Option {
	return func(c *projectConfig) {
		c.startDate = &d
	}
}

// WithEstimatedEndDate sets the optional end date. A nil value leaves it unset.
func WithEstimatedEndDate(d *time.Time) Option {
	return func(c *projectConfig) {
		c.endDate = d
	}
}

// WithToday overrides the clock used to default the start date.
func WithToday(now func() time.Time) Option {
	return func(c *projectConfig) {
		c.today = now
	}
}

// NewProject builds a project and normalizes its fields. It never fails:
// missing lists become empty, an unknown phase resets to the first phase and a
// missing start date defaults to today.
func NewProject(name, description string, opts ...Option) *Project {
	cfg := projectConfig{today: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Project{
		Name:         name,
		Description:  description,
		Requirements: []string{},
		CurrentPhase: NormalizePhase(StrFromPtrWithDefault(string(FirstPhase()), cfg.phase)),
		Team:         make([]string, 0, len(cfg.team)),
	}
	for _, r := range cfg.requirements {
		// Blank entries are dropped rather than rejected.
		_ = p.AddRequirement(r)
	}
	p.Team = append(p.Team, cfg.team...)

	if cfg.startDate != nil {
		p.StartDate = DateOf(*cfg.startDate)
	} else {
		p.StartDate = DateOf(cfg.today())
	}
	if cfg.endDate != nil {
		end := DateOf(*cfg.endDate)
		p.EstimatedEndDate = &end
	}
	return p
}

// DateOf truncates t to its calendar date, expressed as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PhaseIndex returns the position of the current phase, treating an unknown
// phase as the first one.
func (p *Project) PhaseIndex() int {
	if idx := p.CurrentPhase.Index(); idx >= 0 {
		return idx
	}
	return 0
}

// AdvancePhase moves the project to the next phase. It returns false, leaving
// the project unchanged, when the project is already in the last phase.
func (p *Project) AdvancePhase() bool {
	idx := p.CurrentPhase.Index()
	if idx < 0 {
		p.CurrentPhase = FirstPhase()
		idx = 0
	}
	if idx >= len(lifecycle)-1 {
		return false
	}
	p.CurrentPhase = lifecycle[idx+1]
	return true
}

// AddRequirement appends text, trimmed. Blank text is rejected with
// ErrInvalidArgument; a case-insensitive duplicate is silently ignored.
func (p *Project) AddRequirement(text string) error {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return fmt.Errorf("requirement must not be empty: %w", ErrInvalidArgument)
	}
	if p.HasRequirement(clean) {
		return nil
	}
	p.Requirements = append(p.Requirements, clean)
	return nil
}

// HasRequirement reports whether an equivalent requirement is already stored.
func (p *Project) HasRequirement(text string) bool {
	key := strings.ToLower(strings.TrimSpace(text))
	for _, r := range p.Requirements {
		if strings.ToLower(strings.TrimSpace(r)) == key {
			return true
		}
	}
	return false
}

// ProgressPercentage weighs every phase equally and counts the current phase
// as completed, truncating toward zero.
func (p *Project) ProgressPercentage() int {
	return (p.PhaseIndex() + 1) * 100 / len(lifecycle)
}

// Clone returns a deep copy of p.
func (p *Project) Clone() *Project {
	c := *p
	c.Requirements = append([]string{}, p.Requirements...)
	c.Team = append([]string{}, p.Team...)
	if p.EstimatedEndDate != nil {
		end := *p.EstimatedEndDate
		c.EstimatedEndDate = &end
	}
	return &c
}

// Render writes a plain-text report of the project to w.
func (p *Project) Render(w io.Writer) {
	fmt.Fprintf(w, "Project: %s\n", p.Name)
	fmt.Fprintf(w, "Description: %s\n", p.Description)
	fmt.Fprintf(w, "Current phase: %s\n", p.CurrentPhase)
	fmt.Fprintf(w, "Start date: %s\n", formatOptionalDate(&p.StartDate))
	fmt.Fprintf(w, "Estimated end date: %s\n", formatOptionalDate(p.EstimatedEndDate))

	team := "Unassigned"
	if len(p.Team) > 0 {
		team = strings.Join(p.Team, ", ")
	}
	fmt.Fprintf(w, "Team (%d members): %s\n", len(p.Team), team)

	fmt.Fprintf(w, "Requirements (%d):\n", len(p.Requirements))
	if len(p.Requirements) == 0 {
		fmt.Fprintln(w, "  No requirements recorded.")
	}
	for i, r := range p.Requirements {
		fmt.Fprintf(w, "  %d. %s\n", i+1, r)
	}
	fmt.Fprintf(w, "Progress: %d%%\n", p.ProgressPercentage())
}

func formatOptionalDate(d *time.Time) string {
	if d == nil || d.IsZero() {
		return "Not set"
	}
	return d.Format(DateLayout)
}
