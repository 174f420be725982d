package service

import (
	"context"
	"time"

	"github.com/alexanderramin/sdlc/internal/domain"
)

// CreateInput describes a new project. Zero values fall back to the project
// defaults; Overwrite nil means the service default.
type CreateInput struct {
	Name             string
	Description      string
	Requirements     []string
	Team             []string
	Phase            string
	StartDate        *time.Time
	EstimatedEndDate *time.Time
	Path             string
	Overwrite        *bool
}

type ProjectService interface {
	Create(ctx context.Context, in CreateInput) (*domain.Project, string, error)
	Get(ctx context.Context, path string) (*domain.Project, error)
	// Advance moves the stored project to its next phase and saves it.
	// The bool is false when the project was already in the last phase.
	Advance(ctx context.Context, path string) (*domain.Project, bool, error)
	// AddRequirement appends text to the stored project and saves it.
	// The bool is false when an equivalent requirement already existed.
	AddRequirement(ctx context.Context, path, text string) (*domain.Project, bool, error)
	Export(ctx context.Context, p *domain.Project, path string, overwrite bool) (string, error)
	// Check returns the problems found in the stored document.
	Check(ctx context.Context, path string) ([]error, error)
}
