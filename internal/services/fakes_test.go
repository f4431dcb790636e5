package services

import (
	"context"
	"sort"

	"qsplan-backend/internal/models"
)

// In-memory stores backing the service tests.

type fakeItemStore struct {
	items   map[int]*models.InspectionItem
	nextKey int
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: make(map[int]*models.InspectionItem), nextKey: 1}
}

func (f *fakeItemStore) Create(ctx context.Context, item *models.InspectionItem) error {
	item.Key = f.nextKey
	f.nextKey++
	copied := *item
	f.items[item.Key] = &copied
	return nil
}

func (f *fakeItemStore) Get(ctx context.Context, projectID, key int) (*models.InspectionItem, error) {
	item, ok := f.items[key]
	if !ok || item.ProjectID != projectID {
		return nil, models.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeItemStore) ListByProject(ctx context.Context, projectID int) ([]*models.InspectionItem, error) {
	var keys []int
	for key, item := range f.items {
		if item.ProjectID == projectID {
			keys = append(keys, key)
		}
	}
	// newest first, mirrors the head-insert ordering of the real repo
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	var items []*models.InspectionItem
	for _, key := range keys {
		copied := *f.items[key]
		items = append(items, &copied)
	}
	return items, nil
}

func (f *fakeItemStore) Update(ctx context.Context, item *models.InspectionItem) error {
	if _, ok := f.items[item.Key]; !ok {
		return models.ErrNotFound
	}
	copied := *item
	f.items[item.Key] = &copied
	return nil
}

func (f *fakeItemStore) Delete(ctx context.Context, projectID, key int) (int64, error) {
	item, ok := f.items[key]
	if !ok || item.ProjectID != projectID {
		return 0, nil
	}
	delete(f.items, key)
	return 1, nil
}

func (f *fakeItemStore) ListOpenSummaries(ctx context.Context) ([]models.ItemSummary, error) {
	var summaries []models.ItemSummary
	var keys []int
	for key := range f.items {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	for _, key := range keys {
		item := f.items[key]
		if item.Status == models.StatusApproved {
			continue
		}
		summaries = append(summaries, models.ItemSummary{
			ProjectID:   item.ProjectID,
			Key:         item.Key,
			Item:        item.Item,
			PlannedDate: item.PlannedDate,
			Status:      item.Status,
		})
	}
	return summaries, nil
}

func (f *fakeItemStore) Counts(ctx context.Context) (int, int, error) {
	total, approved := 0, 0
	for _, item := range f.items {
		total++
		if item.Status == models.StatusApproved {
			approved++
		}
	}
	return total, approved, nil
}

type fakeProjectStore struct {
	projects map[int]*models.Project
	nextID   int
}

func newFakeProjectStore(projects ...*models.Project) *fakeProjectStore {
	f := &fakeProjectStore{projects: make(map[int]*models.Project), nextID: 1}
	for _, p := range projects {
		f.Create(context.Background(), p)
	}
	return f
}

func (f *fakeProjectStore) Create(ctx context.Context, p *models.Project) error {
	if p.Status == "" {
		p.Status = models.ProjectInProgress
	}
	p.ID = f.nextID
	f.nextID++
	copied := *p
	f.projects[p.ID] = &copied
	return nil
}

func (f *fakeProjectStore) Get(ctx context.Context, id int) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProjectStore) List(ctx context.Context) ([]*models.Project, error) {
	var ids []int
	for id := range f.projects {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	var projects []*models.Project
	for _, id := range ids {
		copied := *f.projects[id]
		projects = append(projects, &copied)
	}
	return projects, nil
}

func (f *fakeProjectStore) ListByManager(ctx context.Context, manager string) ([]*models.Project, error) {
	all, _ := f.List(ctx)
	var filtered []*models.Project
	for _, p := range all {
		if p.Manager == manager {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (f *fakeProjectStore) Update(ctx context.Context, p *models.Project) error {
	if _, ok := f.projects[p.ID]; !ok {
		return models.ErrNotFound
	}
	copied := *p
	f.projects[p.ID] = &copied
	return nil
}

func (f *fakeProjectStore) CountByStatus(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, p := range f.projects {
		counts[p.Status]++
	}
	return counts, nil
}

type fakeHistoryStore struct {
	events []*models.HistoryEvent
}

func (f *fakeHistoryStore) Record(ctx context.Context, e *models.HistoryEvent) error {
	e.ID = len(f.events) + 1
	f.events = append(f.events, e)
	return nil
}

func (f *fakeHistoryStore) ListGlobal(ctx context.Context, limit int) ([]*models.HistoryEvent, error) {
	return f.latest(f.events, limit), nil
}

func (f *fakeHistoryStore) ListByProject(ctx context.Context, projectID, limit int) ([]*models.HistoryEvent, error) {
	var scoped []*models.HistoryEvent
	for _, e := range f.events {
		if e.ProjectID == projectID {
			scoped = append(scoped, e)
		}
	}
	return f.latest(scoped, limit), nil
}

func (f *fakeHistoryStore) latest(events []*models.HistoryEvent, limit int) []*models.HistoryEvent {
	var out []*models.HistoryEvent
	for i := len(events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, events[i])
	}
	return out
}

type fakeTemplateStore struct {
	templates map[int]*models.Template
	nextID    int
}

func newFakeTemplateStore(templates ...*models.Template) *fakeTemplateStore {
	f := &fakeTemplateStore{templates: make(map[int]*models.Template), nextID: 1}
	for _, t := range templates {
		f.Create(context.Background(), t)
	}
	return f
}

func (f *fakeTemplateStore) Create(ctx context.Context, t *models.Template) error {
	t.ID = f.nextID
	f.nextID++
	copied := *t
	f.templates[t.ID] = &copied
	return nil
}

func (f *fakeTemplateStore) Get(ctx context.Context, id int) (*models.Template, error) {
	t, ok := f.templates[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTemplateStore) List(ctx context.Context) ([]*models.Template, error) {
	var out []*models.Template
	for _, t := range f.templates {
		copied := *t
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeTemplateStore) Update(ctx context.Context, t *models.Template) error {
	if _, ok := f.templates[t.ID]; !ok {
		return models.ErrNotFound
	}
	copied := *t
	f.templates[t.ID] = &copied
	return nil
}

func (f *fakeTemplateStore) Delete(ctx context.Context, id int) error {
	delete(f.templates, id)
	return nil
}

type fakeKnowledgeBaseStore struct {
	entries map[int]*models.KnowledgeBaseEntry
	nextID  int
}

func newFakeKnowledgeBaseStore() *fakeKnowledgeBaseStore {
	return &fakeKnowledgeBaseStore{entries: make(map[int]*models.KnowledgeBaseEntry), nextID: 1}
}

func (f *fakeKnowledgeBaseStore) Create(ctx context.Context, e *models.KnowledgeBaseEntry) error {
	e.ID = f.nextID
	f.nextID++
	copied := *e
	f.entries[e.ID] = &copied
	return nil
}

func (f *fakeKnowledgeBaseStore) Get(ctx context.Context, id int) (*models.KnowledgeBaseEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeKnowledgeBaseStore) List(ctx context.Context) ([]*models.KnowledgeBaseEntry, error) {
	var ids []int
	for id := range f.entries {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	var out []*models.KnowledgeBaseEntry
	for _, id := range ids {
		copied := *f.entries[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeKnowledgeBaseStore) Update(ctx context.Context, e *models.KnowledgeBaseEntry) error {
	if _, ok := f.entries[e.ID]; !ok {
		return models.ErrNotFound
	}
	copied := *e
	f.entries[e.ID] = &copied
	return nil
}

func (f *fakeKnowledgeBaseStore) Delete(ctx context.Context, id int) error {
	delete(f.entries, id)
	return nil
}
