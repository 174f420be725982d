package service

import (
	"context"
	"time"

	"github.com/alexanderramin/sdlc/internal/domain"
	"github.com/alexanderramin/sdlc/internal/projectfile"
	"github.com/alexanderramin/sdlc/internal/repository"
)

type projectService struct {
	projects  repository.ProjectRepo
	overwrite bool
	today     func() time.Time
	observer  UseCaseObserver
}

// NewProjectService creates a ProjectService. overwrite is the default used by
// Create when the input does not specify one.
func NewProjectService(projects repository.ProjectRepo, overwrite bool, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		projects:  projects,
		overwrite: overwrite,
		today:     time.Now,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *projectService) Create(ctx context.Context, in CreateInput) (p *domain.Project, path string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": in.Name}
	defer func() {
		s.observe(ctx, "create-project", startedAt, err, fields)
	}()

	opts := []domain.Option{
		domain.WithToday(s.today),
		domain.WithRequirements(in.Requirements...),
		domain.WithTeam(in.Team...),
		domain.WithEstimatedEndDate(in.EstimatedEndDate),
	}
	if in.Phase != "" {
		opts = append(opts, domain.WithPhase(in.Phase))
	}
	if in.StartDate != nil {
		opts = append(opts, domain.WithStartDate(*in.StartDate))
	}
	p = domain.NewProject(in.Name, in.Description, opts...)
	fields["phase"] = string(p.CurrentPhase)

	overwrite := s.overwrite
	if in.Overwrite != nil {
		overwrite = *in.Overwrite
	}
	path, err = s.projects.Save(ctx, p, in.Path, overwrite)
	if err != nil {
		return nil, "", err
	}
	fields["path"] = path
	return p, path, nil
}

func (s *projectService) Get(ctx context.Context, path string) (*domain.Project, error) {
	return s.projects.Get(ctx, path)
}

func (s *projectService) Advance(ctx context.Context, path string) (p *domain.Project, advanced bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() {
		s.observe(ctx, "advance-phase", startedAt, err, fields)
	}()

	p, err = s.projects.Get(ctx, path)
	if err != nil {
		return nil, false, err
	}
	from := p.CurrentPhase
	advanced = p.AdvancePhase()
	fields["from"] = string(from)
	fields["to"] = string(p.CurrentPhase)
	fields["advanced"] = advanced
	if !advanced {
		return p, false, nil
	}
	if _, err = s.projects.Save(ctx, p, path, true); err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func (s *projectService) AddRequirement(ctx context.Context, path, text string) (p *domain.Project, added bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() {
		s.observe(ctx, "add-requirement", startedAt, err, fields)
	}()

	p, err = s.projects.Get(ctx, path)
	if err != nil {
		return nil, false, err
	}
	before := len(p.Requirements)
	if err = p.AddRequirement(text); err != nil {
		return nil, false, err
	}
	added = len(p.Requirements) > before
	fields["added"] = added
	fields["requirement_count"] = len(p.Requirements)
	if !added {
		return p, false, nil
	}
	if _, err = s.projects.Save(ctx, p, path, true); err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func (s *projectService) Export(ctx context.Context, p *domain.Project, path string, overwrite bool) (written string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": p.Name, "overwrite": overwrite}
	defer func() {
		s.observe(ctx, "export-project", startedAt, err, fields)
	}()

	written, err = s.projects.Save(ctx, p, path, overwrite)
	if err != nil {
		return "", err
	}
	fields["path"] = written
	return written, nil
}

func (s *projectService) Check(ctx context.Context, path string) (problems []error, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() {
		s.observe(ctx, "check-project", startedAt, err, fields)
	}()

	data, err := s.projects.ReadRaw(ctx, path)
	if err != nil {
		return nil, err
	}
	problems = projectfile.Check(data)
	fields["problem_count"] = len(problems)
	return problems, nil
}

func (s *projectService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
