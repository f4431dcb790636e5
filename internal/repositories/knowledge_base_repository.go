package repositories

import (
	"context"

	"qsplan-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type KnowledgeBaseRepository struct {
	DB *pgxpool.Pool
}

func NewKnowledgeBaseRepository(db *pgxpool.Pool) *KnowledgeBaseRepository {
	return &KnowledgeBaseRepository{DB: db}
}

func (r *KnowledgeBaseRepository) Create(ctx context.Context, e *models.KnowledgeBaseEntry) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO knowledge_base_entries(category, item) VALUES($1, $2)
         RETURNING id, created_at, updated_at`,
		e.Category, e.Item,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *KnowledgeBaseRepository) Get(ctx context.Context, id int) (*models.KnowledgeBaseEntry, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, category, item, created_at, updated_at FROM knowledge_base_entries WHERE id=$1`, id)

	var e models.KnowledgeBaseEntry
	if err := row.Scan(&e.ID, &e.Category, &e.Item, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns all entries ordered by category, then item text.
func (r *KnowledgeBaseRepository) List(ctx context.Context) ([]*models.KnowledgeBaseEntry, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, category, item, created_at, updated_at
         FROM knowledge_base_entries ORDER BY category ASC, item ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.KnowledgeBaseEntry
	for rows.Next() {
		var e models.KnowledgeBaseEntry
		if err := rows.Scan(&e.ID, &e.Category, &e.Item, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *KnowledgeBaseRepository) Update(ctx context.Context, e *models.KnowledgeBaseEntry) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE knowledge_base_entries SET category=$1, item=$2, updated_at=CURRENT_TIMESTAMP WHERE id=$3`,
		e.Category, e.Item, e.ID)
	return err
}

func (r *KnowledgeBaseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM knowledge_base_entries WHERE id=$1`, id)
	return err
}
