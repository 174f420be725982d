package formatter

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/sdlc/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatProject_Full(t *testing.T) {
	now := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	p := domain.NewProject("Sistema Académico", "Gestión de cursos",
		domain.WithRequirements("Registro", "Reportes"),
		domain.WithPhase("desarrollo"),
		domain.WithTeam("María", "José"),
		domain.WithStartDate(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)),
		domain.WithEstimatedEndDate(&end),
	)

	out := stripANSI(FormatProject(p, now))

	assert.Contains(t, out, "Sistema Académico")
	assert.Contains(t, out, "Gestión de cursos")
	assert.Contains(t, out, "desarrollo  (3/6)")
	assert.Contains(t, out, "2025-11-01")
	assert.Contains(t, out, "2026-04-30 (In 5mo)")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "TEAM (2)")
	assert.Contains(t, out, "María, José")
	assert.Contains(t, out, "REQUIREMENTS (2)")
	assert.Contains(t, out, " 1. Registro")
	assert.Contains(t, out, " 2. Reportes")
	assert.Contains(t, out, "✔ diseño")
	assert.Contains(t, out, "▶ desarrollo")
	assert.Contains(t, out, "○ mantenimiento")
}

func TestFormatProject_Placeholders(t *testing.T) {
	p := domain.NewProject("", "")
	out := stripANSI(FormatProject(p, time.Now()))

	assert.Contains(t, out, "(unnamed)")
	assert.Contains(t, out, "Unassigned")
	assert.Contains(t, out, "No requirements recorded.")
	assert.Contains(t, out, "END       --")
}

func TestFormatAdvance(t *testing.T) {
	p := domain.NewProject("Web", "", domain.WithPhase("diseño"))
	assert.Contains(t, stripANSI(FormatAdvance(p, true)), "Web moved to diseño")

	p = domain.NewProject("Web", "", domain.WithPhase("mantenimiento"))
	assert.Contains(t, stripANSI(FormatAdvance(p, false)), "already in the final phase (mantenimiento)")
}

func TestFormatCheck(t *testing.T) {
	assert.Equal(t, "✔ a.json is valid", stripANSI(FormatCheck("a.json", nil)))

	out := stripANSI(FormatCheck("a.json", []error{errors.New("fase_actual: bad"), errors.New("x")}))
	assert.Contains(t, out, "a.json has 2 problem(s)")
	assert.Contains(t, out, "• fase_actual: bad")
}

func TestFormatLifecycle(t *testing.T) {
	out := stripANSI(FormatLifecycle(domain.PhaseTesting))

	for _, ph := range domain.Lifecycle() {
		assert.Contains(t, out, string(ph))
	}
	assert.Contains(t, out, "PROGRESS")
	assert.Contains(t, out, "16%")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "◀ current")
}

func TestFormatLifecycle_NoCurrent(t *testing.T) {
	out := stripANSI(FormatLifecycle(""))
	assert.NotContains(t, out, "current")
}

func TestFormatExported(t *testing.T) {
	out := stripANSI(FormatExported("Exported", "/tmp/web_proyecto.json", 1536))
	assert.Equal(t, "✔ Exported /tmp/web_proyecto.json (1.5 kB)", out)
}
