package services

import (
	"context"
	"testing"

	"qsplan-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectServiceCreate(t *testing.T) {
	_, auditor := testUsers()
	projects := newFakeProjectStore()
	items := newFakeItemStore()
	svc := NewProjectService(projects, newFakeTemplateStore(), items)
	ctx := context.Background()

	created, err := svc.Create(ctx, auditor, &models.CreateProjectRequest{
		Name:     "Harbor Crane Refit",
		Customer: "Port Authority",
		Manager:  "Max",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectInProgress, created.Status)
	assert.NotZero(t, created.ID)
	assert.Len(t, items.items, 0)
}

func TestProjectServiceCreateFromTemplate(t *testing.T) {
	_, auditor := testUsers()
	projects := newFakeProjectStore()
	items := newFakeItemStore()
	templates := newFakeTemplateStore(&models.Template{
		Name:  "Steel construction",
		Items: []string{"Weld seam inspection", "Bolt torque check", "Coating thickness"},
	})
	svc := NewProjectService(projects, templates, items)
	ctx := context.Background()

	templateID := 1
	created, err := svc.Create(ctx, auditor, &models.CreateProjectRequest{
		Name:            "Bridge Segment 4",
		Manager:         "Max",
		TemplateID:      &templateID,
		BasePlannedDate: "2025-10-01",
	})
	require.NoError(t, err)

	seeded, err := items.ListByProject(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, seeded, 3)
	for _, item := range seeded {
		assert.Equal(t, models.StatusRejected, item.Status)
		assert.Equal(t, "2025-10-01", item.PlannedDate)
	}

	// template without a base date is rejected up front
	_, err = svc.Create(ctx, auditor, &models.CreateProjectRequest{
		Name:       "Bridge Segment 5",
		TemplateID: &templateID,
	})
	assert.Error(t, err)

	missing := 99
	_, err = svc.Create(ctx, auditor, &models.CreateProjectRequest{
		Name:            "Bridge Segment 6",
		TemplateID:      &missing,
		BasePlannedDate: "2025-10-01",
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProjectServiceCreateForbidden(t *testing.T) {
	manager, _ := testUsers()
	svc := NewProjectService(newFakeProjectStore(), newFakeTemplateStore(), newFakeItemStore())

	_, err := svc.Create(context.Background(), manager, &models.CreateProjectRequest{Name: "Side Project"})
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestProjectServiceVisibility(t *testing.T) {
	manager, auditor := testUsers()
	projects := newFakeProjectStore(
		&models.Project{Name: "Mine", Manager: "Max"},
		&models.Project{Name: "Theirs", Manager: "Nora"},
	)
	svc := NewProjectService(projects, newFakeTemplateStore(), newFakeItemStore())
	ctx := context.Background()

	all, err := svc.ListFor(ctx, auditor)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.ListFor(ctx, manager)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "Mine", own[0].Name)

	_, err = svc.GetFor(ctx, manager, 2)
	assert.ErrorIs(t, err, models.ErrForbidden)

	got, err := svc.GetFor(ctx, manager, 1)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Name)
}

func TestProjectServiceUpdate(t *testing.T) {
	manager, auditor := testUsers()
	projects := newFakeProjectStore(&models.Project{Name: "Refit", Manager: "Max"})
	svc := NewProjectService(projects, newFakeTemplateStore(), newFakeItemStore())
	ctx := context.Background()

	_, err := svc.Update(ctx, manager, 1, &models.UpdateProjectRequest{Status: models.ProjectOnHold})
	assert.ErrorIs(t, err, models.ErrForbidden)

	updated, err := svc.Update(ctx, auditor, 1, &models.UpdateProjectRequest{Status: models.ProjectOnHold, Manager: "Nora"})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectOnHold, updated.Status)
	assert.Equal(t, "Nora", updated.Manager)
	assert.Equal(t, "Refit", updated.Name)

	_, err = svc.Update(ctx, auditor, 1, &models.UpdateProjectRequest{Status: "archived"})
	assert.Error(t, err)
}
