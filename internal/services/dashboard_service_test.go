package services

import (
	"context"
	"testing"

	"qsplan-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCompute(t *testing.T) {
	ctx := context.Background()
	items := newFakeItemStore()
	projects := newFakeProjectStore(
		&models.Project{Name: "Alpha", Manager: "Max"},
		&models.Project{Name: "Beta", Manager: "Max", Status: models.ProjectFinished},
	)

	seed := []struct {
		text    string
		planned string
		status  models.ItemStatus
	}{
		{"Overdue and open", "2025-08-20", models.StatusRejected},
		{"Pending and overdue", "2025-08-25", models.StatusPending},
		{"Pending, still in time", "2025-09-15", models.StatusPending},
		{"Open, still in time", "2025-09-20", models.StatusRejected},
		{"Closed long ago", "2025-01-01", models.StatusApproved},
	}
	for _, s := range seed {
		item := models.NewInspectionItem(1, s.text, s.planned)
		item.Status = s.status
		require.NoError(t, items.Create(ctx, item))
	}

	svc := NewDashboardService(items, projects)
	stats, err := svc.compute(ctx, "2025-09-01")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.PendingCount)
	// approved items never count as overdue regardless of date
	assert.Equal(t, 2, stats.OverdueCount)
	for _, item := range stats.OverdueItems {
		assert.NotEqual(t, models.StatusApproved, item.Status)
	}

	assert.Equal(t, 2, stats.ProjectCount)
	assert.Equal(t, 1, stats.StatusCounts[models.ProjectInProgress])
	assert.Equal(t, 1, stats.StatusCounts[models.ProjectFinished])

	assert.Equal(t, 5, stats.ItemCount)
	assert.Equal(t, 1, stats.ApprovedCount)
}

func TestDashboardComputeEmpty(t *testing.T) {
	svc := NewDashboardService(newFakeItemStore(), newFakeProjectStore())
	stats, err := svc.compute(context.Background(), "2025-09-01")
	require.NoError(t, err)

	assert.NotNil(t, stats.PendingItems)
	assert.NotNil(t, stats.OverdueItems)
	assert.Zero(t, stats.PendingCount)
	assert.Zero(t, stats.OverdueCount)
	assert.Zero(t, stats.ItemCount)
}

func TestDashboardItemWithoutPlannedDateNeverOverdue(t *testing.T) {
	ctx := context.Background()
	items := newFakeItemStore()
	item := models.NewInspectionItem(1, "No date yet", "")
	require.NoError(t, items.Create(ctx, item))

	svc := NewDashboardService(items, newFakeProjectStore())
	stats, err := svc.compute(ctx, "2025-09-01")
	require.NoError(t, err)
	assert.Zero(t, stats.OverdueCount)
}
