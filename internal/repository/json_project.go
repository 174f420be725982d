package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/sdlc/internal/domain"
	"github.com/alexanderramin/sdlc/internal/projectfile"
)

// JSONProjectRepo implements ProjectRepo with one JSON file per project.
type JSONProjectRepo struct {
	dir string
}

// NewJSONProjectRepo creates a repo. Derived file names are placed in dir, or
// in the working directory when dir is empty. Explicit paths are used as given.
func NewJSONProjectRepo(dir string) *JSONProjectRepo {
	return &JSONProjectRepo{dir: dir}
}

func (r *JSONProjectRepo) Get(ctx context.Context, path string) (*domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return projectfile.Load(path)
}

func (r *JSONProjectRepo) Save(ctx context.Context, p *domain.Project, path string, overwrite bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if path == "" && r.dir != "" {
		if err := os.MkdirAll(r.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating export directory %s: %w", r.dir, err)
		}
		path = filepath.Join(r.dir, projectfile.DefaultFileName(p.Name))
	}
	return projectfile.Export(p, path, overwrite)
}

func (r *JSONProjectRepo) ReadRaw(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("project file %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading project file %s: %w", path, err)
	}
	return data, nil
}
