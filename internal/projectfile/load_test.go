package projectfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/sdlc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_RoundTrip(t *testing.T) {
	orig := sampleProject()
	require.True(t, orig.AdvancePhase())

	path, err := Export(orig, filepath.Join(t.TempDir(), "rt.json"), true)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, orig.Name, got.Name)
	assert.Equal(t, orig.Description, got.Description)
	assert.Equal(t, orig.Requirements, got.Requirements)
	assert.Equal(t, orig.CurrentPhase, got.CurrentPhase)
	assert.Equal(t, orig.Team, got.Team)
	assert.True(t, orig.StartDate.Equal(got.StartDate))
	require.NotNil(t, got.EstimatedEndDate)
	assert.True(t, orig.EstimatedEndDate.Equal(*got.EstimatedEndDate))
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoad_Malformed(t *testing.T) {
	for _, content := range []string{"not json", "", "[1, 2]", `"text"`, "null", `{"nombre": "x"`} {
		_, err := Load(writeFile(t, content))
		require.Error(t, err, "content %q", content)
		assert.ErrorIs(t, err, domain.ErrMalformedInput, "content %q", content)
	}
}

func TestLoad_Defaults(t *testing.T) {
	before := domain.DateOf(time.Now())
	p, err := Load(writeFile(t, `{}`))
	require.NoError(t, err)
	after := domain.DateOf(time.Now())

	assert.Equal(t, DefaultName, p.Name)
	assert.Equal(t, "", p.Description)
	assert.NotNil(t, p.Requirements)
	assert.Empty(t, p.Requirements)
	assert.NotNil(t, p.Team)
	assert.Empty(t, p.Team)
	assert.Equal(t, domain.PhaseAnalysis, p.CurrentPhase)
	assert.True(t, !p.StartDate.Before(before) && !p.StartDate.After(after))
	assert.Nil(t, p.EstimatedEndDate)
}

func TestLoad_NormalizesPhase(t *testing.T) {
	p, err := Load(writeFile(t, `{"fase_actual": "  PRUEBAS "}`))
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseTesting, p.CurrentPhase)

	p, err = Load(writeFile(t, `{"fase_actual": "testing"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseAnalysis, p.CurrentPhase)
}

func TestLoad_WrongTypesFallBack(t *testing.T) {
	p, err := Load(writeFile(t, `{
		"nombre": 42,
		"descripcion": null,
		"requerimientos": "Login",
		"equipo": ["Ana", 7, "Luis"],
		"fase_actual": 3,
		"fecha_inicio": 20251101,
		"fecha_fin_estimada": true
	}`))
	require.NoError(t, err)

	assert.Equal(t, DefaultName, p.Name)
	assert.Equal(t, "", p.Description)
	assert.Empty(t, p.Requirements)
	assert.Equal(t, []string{"Ana", "Luis"}, p.Team)
	assert.Equal(t, domain.PhaseAnalysis, p.CurrentPhase)
	assert.False(t, p.StartDate.IsZero())
	assert.Nil(t, p.EstimatedEndDate)
}

func TestLoad_IgnoresStoredProgressAndLifecycle(t *testing.T) {
	p, err := Load(writeFile(t, `{"fase_actual": "diseño", "progreso_aproximado": 99, "ciclo_vida": ["x"]}`))
	require.NoError(t, err)
	assert.Equal(t, 33, p.ProgressPercentage())
}

func TestLoad_DateFields(t *testing.T) {
	p, err := Load(writeFile(t, `{"fecha_inicio": "2025-03-04T10:20:30", "fecha_fin_estimada": "31/12/2025"}`))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-04", p.StartDate.Format(domain.DateLayout))
	assert.Nil(t, p.EstimatedEndDate)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-11-01", "2025-11-01"},
		{"2025-11-01T08:15:00", "2025-11-01"},
		{"2025-11-01T23:30:00-05:00", "2025-11-01"},
		{"2025-11-01T23:30:00.123456Z", "2025-11-01"},
		{"2025-11-01 08:15:00", "2025-11-01"},
		{"2025-11-01 08:15", "2025-11-01"},
		{"", ""},
		{"   ", ""},
		{"2025-13-01", ""},
		{"tomorrow", ""},
		{"01/11/2025", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseDate(tt.in)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format(domain.DateLayout))
		})
	}
}
