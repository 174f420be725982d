package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/sdlc/internal/domain"
	"github.com/alexanderramin/sdlc/internal/projectfile"
)

// FixedToday is the clock used by fixtures so start dates are stable.
func FixedToday() time.Time {
	return time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
}

// NewTestProject builds a project with a fixed start date. Options are
// applied after the defaults, so they may override it.
func NewTestProject(name string, opts ...domain.Option) *domain.Project {
	all := append([]domain.Option{domain.WithToday(FixedToday)}, opts...)
	return domain.NewProject(name, "Test project "+name, all...)
}

// WriteProjectFile exports p into a temp dir and returns the file path.
func WriteProjectFile(t *testing.T, p *domain.Project) string {
	t.Helper()
	path, err := projectfile.Export(p, filepath.Join(t.TempDir(), projectfile.DefaultFileName(p.Name)), true)
	if err != nil {
		t.Fatalf("exporting test project: %v", err)
	}
	return path
}

// WriteRawFile writes content into a temp dir and returns the file path.
func WriteRawFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raw_proyecto.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing raw file: %v", err)
	}
	return path
}
