package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"qsplan-backend/internal/cache"
	"qsplan-backend/internal/metrics"
	"qsplan-backend/internal/models"
	"qsplan-backend/internal/timeutil"
)

// ItemStore is the persistence surface the item service needs.
type ItemStore interface {
	Create(ctx context.Context, item *models.InspectionItem) error
	Get(ctx context.Context, projectID, key int) (*models.InspectionItem, error)
	ListByProject(ctx context.Context, projectID int) ([]*models.InspectionItem, error)
	Update(ctx context.Context, item *models.InspectionItem) error
	Delete(ctx context.Context, projectID, key int) (int64, error)
}

// ProjectReader resolves the owning project for scoping and history entries.
type ProjectReader interface {
	Get(ctx context.Context, id int) (*models.Project, error)
}

// ItemListOptions carries the list query: sorting plus discrete filters.
type ItemListOptions struct {
	SortBy   string // item, author, planned_date, closed_date
	Order    string // asc (default) or desc
	Reviewer string
	Status   models.ItemStatus
}

type ItemService struct {
	Items    ItemStore
	Projects ProjectReader
	History  *HistoryService
}

func NewItemService(items ItemStore, projects ProjectReader, history *HistoryService) *ItemService {
	return &ItemService{
		Items:    items,
		Projects: projects,
		History:  history,
	}
}

func (s *ItemService) project(ctx context.Context, actor *models.User, projectID int) (*models.Project, error) {
	project, err := s.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, models.ErrNotFound
	}
	if !models.PermissionsFor(actor.Role).CanViewAllProjects && project.Manager != actor.Name {
		return nil, models.ErrForbidden
	}
	return project, nil
}

// List returns a project's checklist with sorting and filters applied.
// Item and author sort lexicographically and case-sensitively; date columns
// sort by parsed timestamp with empty dates treated as epoch.
func (s *ItemService) List(ctx context.Context, actor *models.User, projectID int, opts ItemListOptions) ([]*models.InspectionItem, error) {
	if _, err := s.project(ctx, actor, projectID); err != nil {
		return nil, err
	}

	items, err := s.Items.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if opts.Reviewer != "" {
		items = filterItems(items, func(i *models.InspectionItem) bool { return i.Reviewer == opts.Reviewer })
	}
	if opts.Status != "" {
		items = filterItems(items, func(i *models.InspectionItem) bool { return i.Status == opts.Status })
	}

	sortItems(items, opts.SortBy, opts.Order)
	return items, nil
}

func filterItems(items []*models.InspectionItem, keep func(*models.InspectionItem) bool) []*models.InspectionItem {
	filtered := items[:0]
	for _, item := range items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func sortItems(items []*models.InspectionItem, sortBy, order string) {
	var less func(a, b *models.InspectionItem) bool
	switch sortBy {
	case "item":
		less = func(a, b *models.InspectionItem) bool { return strings.Compare(a.Item, b.Item) < 0 }
	case "author":
		less = func(a, b *models.InspectionItem) bool { return strings.Compare(a.Author, b.Author) < 0 }
	case "planned_date":
		less = func(a, b *models.InspectionItem) bool {
			return timeutil.ParseDate(a.PlannedDate).Before(timeutil.ParseDate(b.PlannedDate))
		}
	case "closed_date":
		less = func(a, b *models.InspectionItem) bool {
			return timeutil.ParseDate(a.ClosedDate).Before(timeutil.ParseDate(b.ClosedDate))
		}
	default:
		return // keep insertion order, newest first
	}

	if order == "desc" {
		inner := less
		less = func(a, b *models.InspectionItem) bool { return inner(b, a) }
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

// Add creates a new checklist item in its initial rejected state.
func (s *ItemService) Add(ctx context.Context, actor *models.User, projectID int, req *models.CreateItemRequest) (*models.InspectionItem, error) {
	if !models.PermissionsFor(actor.Role).CanAddItem {
		return nil, models.ErrForbidden
	}
	if req.Item == "" {
		return nil, errors.New("item text is required")
	}
	if req.PlannedDate == "" {
		return nil, errors.New("planned date is required")
	}

	project, err := s.project(ctx, actor, projectID)
	if err != nil {
		return nil, err
	}

	item := models.NewInspectionItem(projectID, req.Item, req.PlannedDate)
	if err := s.Items.Create(ctx, item); err != nil {
		return nil, err
	}

	s.History.Record(ctx, models.HistoryAddItem, actor.Name, project,
		fmt.Sprintf("added item %q", item.Item))
	cache.InvalidateStatistics(ctx)
	return item, nil
}

// UpdateMeasure sets action and author on one item. A manager affordance; an
// empty author defaults to the acting user's name.
func (s *ItemService) UpdateMeasure(ctx context.Context, actor *models.User, projectID, key int, req *models.UpdateMeasureRequest) (*models.InspectionItem, error) {
	if !models.PermissionsFor(actor.Role).CanEditMeasure {
		return nil, models.ErrForbidden
	}
	if _, err := s.project(ctx, actor, projectID); err != nil {
		return nil, err
	}

	item, err := s.Items.Get(ctx, projectID, key)
	if err != nil {
		return nil, models.ErrNotFound
	}

	item.Action = req.Action
	item.Author = req.Author
	if item.Author == "" {
		item.Author = actor.Name
	}

	if err := s.Items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ReplaceDocuments swaps the item's document list wholesale for the staged
// upload list.
func (s *ItemService) ReplaceDocuments(ctx context.Context, actor *models.User, projectID, key int, docs []models.FileRef) (*models.InspectionItem, error) {
	if !models.PermissionsFor(actor.Role).CanUploadDocuments {
		return nil, models.ErrForbidden
	}
	if _, err := s.project(ctx, actor, projectID); err != nil {
		return nil, err
	}

	item, err := s.Items.Get(ctx, projectID, key)
	if err != nil {
		return nil, models.ErrNotFound
	}

	if docs == nil {
		docs = []models.FileRef{}
	}
	item.Documents = docs

	if err := s.Items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateRemarks sets comment and attachments. Reviewer affordance.
func (s *ItemService) UpdateRemarks(ctx context.Context, actor *models.User, projectID, key int, req *models.UpdateRemarksRequest) (*models.InspectionItem, error) {
	if !models.PermissionsFor(actor.Role).CanEditRemarks {
		return nil, models.ErrForbidden
	}

	project, err := s.project(ctx, actor, projectID)
	if err != nil {
		return nil, err
	}

	item, err := s.Items.Get(ctx, projectID, key)
	if err != nil {
		return nil, models.ErrNotFound
	}

	item.Comment = req.Comment
	item.Attachments = req.Attachments
	if item.Attachments == nil {
		item.Attachments = []models.FileRef{}
	}

	if err := s.Items.Update(ctx, item); err != nil {
		return nil, err
	}

	s.History.Record(ctx, models.HistoryRemarksChange, actor.Name, project,
		fmt.Sprintf("changed remarks on item %q", item.Item))
	return item, nil
}

// Delete removes one item. Deleting an unknown key is a no-op.
func (s *ItemService) Delete(ctx context.Context, actor *models.User, projectID, key int) error {
	if !models.PermissionsFor(actor.Role).CanDeleteItem {
		return models.ErrForbidden
	}
	if _, err := s.project(ctx, actor, projectID); err != nil {
		return err
	}

	if _, err := s.Items.Delete(ctx, projectID, key); err != nil {
		return err
	}
	cache.InvalidateStatistics(ctx)
	return nil
}

// ChangeStatus applies a workflow transition under the role gates of the
// item state machine and records it in the activity log.
func (s *ItemService) ChangeStatus(ctx context.Context, actor *models.User, projectID, key int, target models.ItemStatus) (*models.InspectionItem, error) {
	project, err := s.project(ctx, actor, projectID)
	if err != nil {
		return nil, err
	}

	item, err := s.Items.Get(ctx, projectID, key)
	if err != nil {
		return nil, models.ErrNotFound
	}

	if err := item.Transition(actor, target, time.Now()); err != nil {
		return nil, err
	}

	if err := s.Items.Update(ctx, item); err != nil {
		return nil, err
	}

	metrics.ItemTransitionsTotal.WithLabelValues(string(item.Status)).Inc()
	s.History.Record(ctx, models.HistoryItemStatus, actor.Name, project,
		fmt.Sprintf("set item %q to %s", item.Item, item.Status))
	cache.InvalidateStatistics(ctx)
	return item, nil
}
