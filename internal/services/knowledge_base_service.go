package services

import (
	"context"
	"errors"

	"qsplan-backend/internal/models"
)

// KnowledgeBaseStore is the persistence surface for knowledge-base entries.
type KnowledgeBaseStore interface {
	Create(ctx context.Context, e *models.KnowledgeBaseEntry) error
	Get(ctx context.Context, id int) (*models.KnowledgeBaseEntry, error)
	List(ctx context.Context) ([]*models.KnowledgeBaseEntry, error)
	Update(ctx context.Context, e *models.KnowledgeBaseEntry) error
	Delete(ctx context.Context, id int) error
}

type KnowledgeBaseService struct {
	Repo KnowledgeBaseStore
}

func NewKnowledgeBaseService(repo KnowledgeBaseStore) *KnowledgeBaseService {
	return &KnowledgeBaseService{Repo: repo}
}

func (s *KnowledgeBaseService) Create(ctx context.Context, req *models.KnowledgeBaseRequest) (*models.KnowledgeBaseEntry, error) {
	if req.Item == "" {
		return nil, errors.New("item text is required")
	}
	e := &models.KnowledgeBaseEntry{Category: req.Category, Item: req.Item}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *KnowledgeBaseService) Get(ctx context.Context, id int) (*models.KnowledgeBaseEntry, error) {
	e, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return e, nil
}

func (s *KnowledgeBaseService) List(ctx context.Context) ([]*models.KnowledgeBaseEntry, error) {
	return s.Repo.List(ctx)
}

func (s *KnowledgeBaseService) Update(ctx context.Context, id int, req *models.KnowledgeBaseRequest) (*models.KnowledgeBaseEntry, error) {
	e, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	if req.Category != "" {
		e.Category = req.Category
	}
	if req.Item != "" {
		e.Item = req.Item
	}
	if err := s.Repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *KnowledgeBaseService) Delete(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
