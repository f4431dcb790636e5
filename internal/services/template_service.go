package services

import (
	"context"
	"errors"

	"qsplan-backend/internal/models"
)

// TemplateStore is the persistence surface for templates.
type TemplateStore interface {
	Create(ctx context.Context, t *models.Template) error
	Get(ctx context.Context, id int) (*models.Template, error)
	List(ctx context.Context) ([]*models.Template, error)
	Update(ctx context.Context, t *models.Template) error
	Delete(ctx context.Context, id int) error
}

type TemplateService struct {
	Repo TemplateStore
}

func NewTemplateService(repo TemplateStore) *TemplateService {
	return &TemplateService{Repo: repo}
}

func (s *TemplateService) Create(ctx context.Context, req *models.TemplateRequest) (*models.Template, error) {
	if req.Name == "" {
		return nil, errors.New("template name is required")
	}
	t := &models.Template{Name: req.Name, Items: req.Items}
	if t.Items == nil {
		t.Items = []string{}
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TemplateService) Get(ctx context.Context, id int) (*models.Template, error) {
	t, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return t, nil
}

func (s *TemplateService) List(ctx context.Context) ([]*models.Template, error) {
	return s.Repo.List(ctx)
}

func (s *TemplateService) Update(ctx context.Context, id int, req *models.TemplateRequest) (*models.Template, error) {
	t, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Items != nil {
		t.Items = req.Items
	}
	if err := s.Repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TemplateService) Delete(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
