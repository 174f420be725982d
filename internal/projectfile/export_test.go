package projectfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/sdlc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject() *domain.Project {
	end := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	return domain.NewProject("Sistema de Gestión Académica",
		"Proyecto para gestionar estudiantes, cursos y calificaciones.",
		domain.WithRequirements("Registro de estudiantes", "Asignación de cursos"),
		domain.WithPhase("análisis"),
		domain.WithTeam("María", "José", "Ana"),
		domain.WithStartDate(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)),
		domain.WithEstimatedEndDate(&end),
	)
}

func TestDefaultFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Portal", "Portal_proyecto.json"},
		{"spaces and accents", "  Sistema de Gestión Académica ", "Sistema_de_Gesti_n_Acad_mica_proyecto.json"},
		{"runs collapse", "a / b", "a_b_proyecto.json"},
		{"dash and underscore kept", "api-v2_core", "api-v2_core_proyecto.json"},
		{"empty", "", "_proyecto.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultFileName(tt.in))
		})
	}
}

func TestExport_WritesExactKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	got, err := Export(sampleProject(), path, true)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 9)
	assert.Equal(t, "Sistema de Gestión Académica", raw["nombre"])
	assert.Equal(t, "análisis", raw["fase_actual"])
	assert.Equal(t, "2025-11-01", raw["fecha_inicio"])
	assert.Equal(t, "2026-04-30", raw["fecha_fin_estimada"])
	assert.Equal(t, float64(16), raw["progreso_aproximado"])
	assert.Equal(t, []any{"análisis", "diseño", "desarrollo", "pruebas", "implementación", "mantenimiento"}, raw["ciclo_vida"])
	assert.Equal(t, []any{"María", "José", "Ana"}, raw["equipo"])
}

func TestExport_KeyOrderAndLiteralUnicode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	p := sampleProject()
	p.Description = "a <b> & c"

	_, err := Export(p, path, true)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, `"nombre": "Sistema de Gestión Académica"`)
	assert.Contains(t, text, `"descripcion": "a <b> & c"`)
	assert.NotContains(t, text, `\u00`)
	assert.True(t, strings.HasPrefix(text, "{\n    \"nombre\""))

	keys := []string{"nombre", "descripcion", "requerimientos", "fase_actual", "equipo",
		"fecha_inicio", "fecha_fin_estimada", "ciclo_vida", "progreso_aproximado"}
	last := -1
	for _, k := range keys {
		idx := strings.Index(text, `"`+k+`"`)
		require.Greater(t, idx, last, "key %s out of order", k)
		last = idx
	}
}

func TestExport_NullEndDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	_, err := Export(domain.NewProject("X", ""), path, true)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"fecha_fin_estimada": null`)
	assert.Contains(t, string(data), `"requerimientos": []`)
}

func TestExport_DefaultPath(t *testing.T) {
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	got, err := Export(domain.NewProject("Mi Proyecto", ""), "", true)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "Mi_Proyecto_proyecto.json", filepath.Base(got))
	assert.FileExists(t, filepath.Join(dir, "Mi_Proyecto_proyecto.json"))
}

func TestExport_NoOverwriteKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	_, err := Export(sampleProject(), path, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestExport_OverwriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 10000)), 0o644))

	_, err := Export(sampleProject(), path, true)
	require.NoError(t, err)

	_, err = Load(path)
	require.NoError(t, err)
}

func TestExport_NoOverwriteCreatesNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.json")
	_, err := Export(sampleProject(), path, false)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
