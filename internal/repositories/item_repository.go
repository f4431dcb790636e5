package repositories

import (
	"context"
	"encoding/json"

	"qsplan-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository struct {
	DB *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *models.InspectionItem) error {
	docs, err := json.Marshal(item.Documents)
	if err != nil {
		return err
	}
	atts, err := json.Marshal(item.Attachments)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO inspection_items(project_id, item, action, author, reviewer, planned_date, closed_date, documents, status, comment, attachments)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
         RETURNING key, created_at, updated_at`,
		item.ProjectID, item.Item, item.Action, item.Author, item.Reviewer,
		item.PlannedDate, item.ClosedDate, docs, item.Status, item.Comment, atts,
	).Scan(&item.Key, &item.CreatedAt, &item.UpdatedAt)
}

func (r *ItemRepository) Get(ctx context.Context, projectID, key int) (*models.InspectionItem, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT key, project_id, item, action, author, reviewer, planned_date, closed_date, documents, status, comment, attachments, created_at, updated_at
         FROM inspection_items WHERE project_id=$1 AND key=$2`, projectID, key)

	item, err := scanItem(row)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListByProject returns a project's items newest first, so a freshly added
// item appears at the head of the list.
func (r *ItemRepository) ListByProject(ctx context.Context, projectID int) ([]*models.InspectionItem, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT key, project_id, item, action, author, reviewer, planned_date, closed_date, documents, status, comment, attachments, created_at, updated_at
         FROM inspection_items WHERE project_id=$1 ORDER BY key DESC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InspectionItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) Update(ctx context.Context, item *models.InspectionItem) error {
	docs, err := json.Marshal(item.Documents)
	if err != nil {
		return err
	}
	atts, err := json.Marshal(item.Attachments)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(ctx,
		`UPDATE inspection_items
         SET item=$1, action=$2, author=$3, reviewer=$4, planned_date=$5, closed_date=$6, documents=$7, status=$8, comment=$9, attachments=$10, updated_at=CURRENT_TIMESTAMP
         WHERE project_id=$11 AND key=$12`,
		item.Item, item.Action, item.Author, item.Reviewer, item.PlannedDate,
		item.ClosedDate, docs, item.Status, item.Comment, atts,
		item.ProjectID, item.Key)
	return err
}

// Delete removes one item. Deleting an unknown key is a no-op; the returned
// count tells the caller whether anything happened.
func (r *ItemRepository) Delete(ctx context.Context, projectID, key int) (int64, error) {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM inspection_items WHERE project_id=$1 AND key=$2`, projectID, key)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListOpenSummaries returns dashboard rows for every item that is not yet
// approved, joined with its project name.
func (r *ItemRepository) ListOpenSummaries(ctx context.Context) ([]models.ItemSummary, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT i.project_id, p.name, i.key, i.item, i.planned_date, i.status
         FROM inspection_items i
         JOIN projects p ON p.id = i.project_id
         WHERE i.status <> 'approved'
         ORDER BY i.planned_date ASC, i.key ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.ItemSummary
	for rows.Next() {
		var s models.ItemSummary
		if err := rows.Scan(&s.ProjectID, &s.ProjectName, &s.Key, &s.Item, &s.PlannedDate, &s.Status); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Counts returns total and approved item counts.
func (r *ItemRepository) Counts(ctx context.Context) (total, approved int, err error) {
	err = r.DB.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'approved') FROM inspection_items`,
	).Scan(&total, &approved)
	return total, approved, err
}

func scanItem(row pgx.Row) (*models.InspectionItem, error) {
	var item models.InspectionItem
	var docs, atts []byte
	err := row.Scan(&item.Key, &item.ProjectID, &item.Item, &item.Action, &item.Author,
		&item.Reviewer, &item.PlannedDate, &item.ClosedDate, &docs, &item.Status,
		&item.Comment, &atts, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(docs, &item.Documents); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(atts, &item.Attachments); err != nil {
		return nil, err
	}
	return &item, nil
}
