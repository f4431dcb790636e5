package database

import (
	"context"

	"qsplan-backend/internal/models"
	"qsplan-backend/internal/repositories"
	"qsplan-backend/internal/timeutil"

	"github.com/sirupsen/logrus"
)

// SeedDemo populates an empty database with a demo project and a small
// starter checklist. It only runs when explicitly enabled and never touches
// a database that already holds projects.
func SeedDemo(ctx context.Context, projects *repositories.ProjectRepository, items *repositories.ItemRepository) error {
	existing, err := projects.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logrus.Info("demo seed skipped, database already holds projects")
		return nil
	}

	project := &models.Project{
		Name:     "Demo Project",
		Customer: "Demo Customer",
		Manager:  "Max",
		Status:   models.ProjectInProgress,
	}
	if err := projects.Create(ctx, project); err != nil {
		return err
	}

	today := timeutil.Today()
	for _, text := range []string{"Incoming goods inspection", "Final acceptance walkthrough"} {
		item := models.NewInspectionItem(project.ID, text, today)
		if err := items.Create(ctx, item); err != nil {
			return err
		}
	}

	logrus.WithField("project_id", project.ID).Info("demo project seeded")
	return nil
}
