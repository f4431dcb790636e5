package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"qsplan-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRecordAndRecent(t *testing.T) {
	store := &fakeHistoryStore{}
	svc := NewHistoryService(store)
	ctx := context.Background()
	project := &models.Project{ID: 1, Name: "Warehouse"}

	for i := 0; i < 25; i++ {
		svc.Record(ctx, models.HistoryAddItem, "Max", project, fmt.Sprintf("added item %d", i))
	}

	recent, err := svc.Recent(ctx)
	require.NoError(t, err)
	// reads are capped even though the store holds more
	assert.Len(t, recent, models.HistoryCap)
	assert.Equal(t, "added item 24", recent[0].Message)
	assert.Equal(t, "Warehouse", recent[0].ProjectName)
}

func TestHistoryRecentForProject(t *testing.T) {
	store := &fakeHistoryStore{}
	svc := NewHistoryService(store)
	ctx := context.Background()

	svc.Record(ctx, models.HistoryAddItem, "Max", &models.Project{ID: 1, Name: "Alpha"}, "alpha event")
	svc.Record(ctx, models.HistoryAddItem, "Max", &models.Project{ID: 2, Name: "Beta"}, "beta event")

	scoped, err := svc.RecentForProject(ctx, 2)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "beta event", scoped[0].Message)
}

func TestHistorySubscribe(t *testing.T) {
	svc := NewHistoryService(&fakeHistoryStore{})
	ctx := context.Background()

	ch, cancel := svc.Subscribe()
	defer cancel()

	svc.Record(ctx, models.HistoryItemStatus, "Judith", &models.Project{ID: 1, Name: "Alpha"}, "set item to approved")

	select {
	case event := <-ch:
		assert.Equal(t, models.HistoryItemStatus, event.Kind)
		assert.Equal(t, "Judith", event.By)
	case <-time.After(time.Second):
		t.Fatal("no event delivered to subscriber")
	}
}

func TestHistorySubscribeCancelStopsDelivery(t *testing.T) {
	svc := NewHistoryService(&fakeHistoryStore{})

	ch, cancel := svc.Subscribe()
	cancel()

	// channel is closed, a receive must not block
	_, ok := <-ch
	assert.False(t, ok)

	// recording after cancel must not panic on the closed channel
	svc.Record(context.Background(), models.HistoryAddItem, "Max", nil, "late event")
}
