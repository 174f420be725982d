package projectfile

import (
	"encoding/json"
	"io"
	"time"

	"github.com/alexanderramin/sdlc/internal/domain"
)

// Document is the on-disk JSON layout of a project. Key names are fixed by
// existing files and must not change.
type Document struct {
	Name             string   `json:"nombre"`
	Description      string   `json:"descripcion"`
	Requirements     []string `json:"requerimientos"`
	CurrentPhase     string   `json:"fase_actual"`
	Team             []string `json:"equipo"`
	StartDate        *string  `json:"fecha_inicio"`
	EstimatedEndDate *string  `json:"fecha_fin_estimada"`
	Lifecycle        []string `json:"ciclo_vida"`
	Progress         int      `json:"progreso_aproximado"`
}

// NewDocument snapshots p, including the derived lifecycle and progress.
func NewDocument(p *domain.Project) Document {
	phases := domain.Lifecycle()
	lifecycle := make([]string, len(phases))
	for i, ph := range phases {
		lifecycle[i] = string(ph)
	}
	return Document{
		Name:             p.Name,
		Description:      p.Description,
		Requirements:     append([]string{}, p.Requirements...),
		CurrentPhase:     string(p.CurrentPhase),
		Team:             append([]string{}, p.Team...),
		StartDate:        formatDate(&p.StartDate),
		EstimatedEndDate: formatDate(p.EstimatedEndDate),
		Lifecycle:        lifecycle,
		Progress:         p.ProgressPercentage(),
	}
}

// Encode writes p as indented JSON. Non-ASCII text is written literally.
func Encode(w io.Writer, p *domain.Project) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(NewDocument(p))
}

func formatDate(d *time.Time) *string {
	if d == nil || d.IsZero() {
		return nil
	}
	s := d.Format(domain.DateLayout)
	return &s
}
