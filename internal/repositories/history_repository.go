package repositories

import (
	"context"

	"qsplan-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// historyRetention bounds table growth; reads are capped separately at
// models.HistoryCap per scope.
const historyRetention = 500

type HistoryRepository struct {
	DB *pgxpool.Pool
}

func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

func (r *HistoryRepository) Record(ctx context.Context, e *models.HistoryEvent) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO history_events(kind, actor, message, project_id, project_name)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at`,
		e.Kind, e.By, e.Message, e.ProjectID, e.ProjectName,
	).Scan(&e.ID, &e.Timestamp)
	if err != nil {
		return err
	}

	// Trim old events beyond the retention window
	_, err = r.DB.Exec(ctx,
		`DELETE FROM history_events WHERE id NOT IN
         (SELECT id FROM history_events ORDER BY id DESC LIMIT $1)`, historyRetention)
	return err
}

// ListGlobal returns the most recent events across all projects.
func (r *HistoryRepository) ListGlobal(ctx context.Context, limit int) ([]*models.HistoryEvent, error) {
	return r.scanEvents(r.DB.Query(ctx,
		`SELECT id, kind, actor, message, project_id, project_name, created_at
         FROM history_events ORDER BY id DESC LIMIT $1`, limit))
}

// ListByProject returns the most recent events for one project.
func (r *HistoryRepository) ListByProject(ctx context.Context, projectID, limit int) ([]*models.HistoryEvent, error) {
	return r.scanEvents(r.DB.Query(ctx,
		`SELECT id, kind, actor, message, project_id, project_name, created_at
         FROM history_events WHERE project_id=$1 ORDER BY id DESC LIMIT $2`, projectID, limit))
}

func (r *HistoryRepository) scanEvents(rows pgx.Rows, err error) ([]*models.HistoryEvent, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.HistoryEvent
	for rows.Next() {
		var e models.HistoryEvent
		if err := rows.Scan(&e.ID, &e.Kind, &e.By, &e.Message, &e.ProjectID, &e.ProjectName, &e.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}
