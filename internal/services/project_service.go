package services

import (
	"context"
	"errors"

	"qsplan-backend/internal/models"
)

// ProjectStore is the persistence surface the project service needs.
type ProjectStore interface {
	Create(ctx context.Context, p *models.Project) error
	Get(ctx context.Context, id int) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	ListByManager(ctx context.Context, manager string) ([]*models.Project, error)
	Update(ctx context.Context, p *models.Project) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// TemplateReader resolves a template when a project is created from one.
type TemplateReader interface {
	Get(ctx context.Context, id int) (*models.Template, error)
}

// ItemSeeder creates the checklist rows seeded from a template.
type ItemSeeder interface {
	Create(ctx context.Context, item *models.InspectionItem) error
}

type ProjectService struct {
	Repo      ProjectStore
	Templates TemplateReader
	Items     ItemSeeder
}

func NewProjectService(repo ProjectStore, templates TemplateReader, items ItemSeeder) *ProjectService {
	return &ProjectService{
		Repo:      repo,
		Templates: templates,
		Items:     items,
	}
}

// Create creates a project and, when a template is named, pre-seeds its
// checklist: one rejected item per template text, all carrying the
// caller-supplied base planned date.
func (s *ProjectService) Create(ctx context.Context, actor *models.User, req *models.CreateProjectRequest) (*models.Project, error) {
	if !models.PermissionsFor(actor.Role).CanCreateProject {
		return nil, models.ErrForbidden
	}
	if req.Name == "" {
		return nil, errors.New("project name is required")
	}

	var template *models.Template
	if req.TemplateID != nil {
		if req.BasePlannedDate == "" {
			return nil, errors.New("base planned date is required when applying a template")
		}
		var err error
		template, err = s.Templates.Get(ctx, *req.TemplateID)
		if err != nil {
			return nil, models.ErrNotFound
		}
	}

	project := &models.Project{
		Name:     req.Name,
		Customer: req.Customer,
		Manager:  req.Manager,
		Status:   models.ProjectInProgress,
	}
	if err := s.Repo.Create(ctx, project); err != nil {
		return nil, err
	}

	if template != nil {
		for _, text := range template.Items {
			item := models.NewInspectionItem(project.ID, text, req.BasePlannedDate)
			if err := s.Items.Create(ctx, item); err != nil {
				return nil, err
			}
		}
	}

	return project, nil
}

// ListFor returns the projects visible to the acting user: managers see only
// projects carrying their own name, admin/auditor see everything.
func (s *ProjectService) ListFor(ctx context.Context, actor *models.User) ([]*models.Project, error) {
	if models.PermissionsFor(actor.Role).CanViewAllProjects {
		return s.Repo.List(ctx)
	}
	return s.Repo.ListByManager(ctx, actor.Name)
}

// GetFor returns one project if the acting user may see it.
func (s *ProjectService) GetFor(ctx context.Context, actor *models.User, id int) (*models.Project, error) {
	project, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	if !models.PermissionsFor(actor.Role).CanViewAllProjects && project.Manager != actor.Name {
		return nil, models.ErrForbidden
	}
	return project, nil
}

// Update applies an admin/auditor edit. Projects are never deleted, only
// parked via status.
func (s *ProjectService) Update(ctx context.Context, actor *models.User, id int, req *models.UpdateProjectRequest) (*models.Project, error) {
	if !models.PermissionsFor(actor.Role).CanEditProject {
		return nil, models.ErrForbidden
	}

	project, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	if req.Name != "" {
		project.Name = req.Name
	}
	if req.Customer != "" {
		project.Customer = req.Customer
	}
	if req.Manager != "" {
		project.Manager = req.Manager
	}
	if req.Status != "" {
		if !models.ValidProjectStatus(req.Status) {
			return nil, errors.New("unknown project status")
		}
		project.Status = req.Status
	}

	if err := s.Repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}
