package repository

import (
	"context"

	"github.com/alexanderramin/sdlc/internal/domain"
)

// ProjectRepo persists projects as individual documents addressed by path.
type ProjectRepo interface {
	Get(ctx context.Context, path string) (*domain.Project, error)
	// Save writes p and returns the absolute path written. An empty path
	// lets the repo derive one from the project name.
	Save(ctx context.Context, p *domain.Project, path string, overwrite bool) (string, error)
	// ReadRaw returns the stored document bytes without decoding them.
	ReadRaw(ctx context.Context, path string) ([]byte, error)
}
