package services

import (
	"context"
	"encoding/json"

	"qsplan-backend/internal/cache"
	"qsplan-backend/internal/models"
	"qsplan-backend/internal/timeutil"
)

// DashboardItemStore provides the aggregate item queries.
type DashboardItemStore interface {
	ListOpenSummaries(ctx context.Context) ([]models.ItemSummary, error)
	Counts(ctx context.Context) (total, approved int, err error)
}

// DashboardProjectStore provides the project status counts.
type DashboardProjectStore interface {
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type DashboardService struct {
	Items    DashboardItemStore
	Projects DashboardProjectStore
}

func NewDashboardService(items DashboardItemStore, projects DashboardProjectStore) *DashboardService {
	return &DashboardService{Items: items, Projects: projects}
}

// Statistics builds the dashboard aggregate, serving from cache when warm.
func (s *DashboardService) Statistics(ctx context.Context) (*models.DashboardStatistics, error) {
	if data, ok := cache.GetCachedStatistics(ctx); ok {
		var stats models.DashboardStatistics
		if err := json.Unmarshal(data, &stats); err == nil {
			return &stats, nil
		}
		// stale or corrupt entry, rebuild below
	}

	stats, err := s.compute(ctx, timeutil.Today())
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		cache.CacheStatistics(ctx, data)
	}
	return stats, nil
}

// compute builds the statistics payload relative to the given ISO date.
// Exposed separately from Statistics so tests can pin the date.
func (s *DashboardService) compute(ctx context.Context, today string) (*models.DashboardStatistics, error) {
	open, err := s.Items.ListOpenSummaries(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStatistics{
		PendingItems: []models.ItemSummary{},
		OverdueItems: []models.ItemSummary{},
	}

	for _, item := range open {
		if item.Status == models.StatusPending {
			stats.PendingItems = append(stats.PendingItems, item)
		}
		// overdue: planned date passed without approval
		if item.PlannedDate != "" && timeutil.IsBefore(item.PlannedDate, today) {
			stats.OverdueItems = append(stats.OverdueItems, item)
		}
	}
	stats.PendingCount = len(stats.PendingItems)
	stats.OverdueCount = len(stats.OverdueItems)

	statusCounts, err := s.Projects.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.StatusCounts = statusCounts
	for _, n := range statusCounts {
		stats.ProjectCount += n
	}

	total, approved, err := s.Items.Counts(ctx)
	if err != nil {
		return nil, err
	}
	stats.ItemCount = total
	stats.ApprovedCount = approved

	return stats, nil
}
