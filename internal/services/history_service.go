package services

import (
	"context"
	"sync"

	"qsplan-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// HistoryStore persists activity events.
type HistoryStore interface {
	Record(ctx context.Context, e *models.HistoryEvent) error
	ListGlobal(ctx context.Context, limit int) ([]*models.HistoryEvent, error)
	ListByProject(ctx context.Context, projectID, limit int) ([]*models.HistoryEvent, error)
}

// HistoryService keeps the capped activity log and fans new events out to
// live websocket subscribers.
type HistoryService struct {
	Repo HistoryStore

	mu   sync.Mutex
	subs map[int]chan models.HistoryEvent
	next int
}

func NewHistoryService(repo HistoryStore) *HistoryService {
	return &HistoryService{
		Repo: repo,
		subs: make(map[int]chan models.HistoryEvent),
	}
}

// Record appends an event. Log failures are reported but never abort the
// operation that produced the event.
func (s *HistoryService) Record(ctx context.Context, kind, by string, project *models.Project, message string) {
	event := &models.HistoryEvent{
		Kind:    kind,
		By:      by,
		Message: message,
	}
	if project != nil {
		event.ProjectID = project.ID
		event.ProjectName = project.Name
	}

	if err := s.Repo.Record(ctx, event); err != nil {
		logrus.WithError(err).Warn("failed to record history event")
		return
	}

	s.broadcast(*event)
}

// Recent returns the most recent events across all projects.
func (s *HistoryService) Recent(ctx context.Context) ([]*models.HistoryEvent, error) {
	return s.Repo.ListGlobal(ctx, models.HistoryCap)
}

// RecentForProject returns the most recent events for one project.
func (s *HistoryService) RecentForProject(ctx context.Context, projectID int) ([]*models.HistoryEvent, error) {
	return s.Repo.ListByProject(ctx, projectID, models.HistoryCap)
}

// Subscribe registers a live event feed. The returned cancel func must be
// called when the consumer goes away, or the channel leaks.
func (s *HistoryService) Subscribe() (<-chan models.HistoryEvent, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan models.HistoryEvent, 16)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if existing, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(existing)
		}
	}
	return ch, cancel
}

func (s *HistoryService) broadcast(event models.HistoryEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- event:
		default:
			// slow subscriber, drop rather than block the writer
		}
	}
}
