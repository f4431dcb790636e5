package repositories

import (
	"context"
	"encoding/json"

	"qsplan-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TemplateRepository struct {
	DB *pgxpool.Pool
}

func NewTemplateRepository(db *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

func (r *TemplateRepository) Create(ctx context.Context, t *models.Template) error {
	items, err := json.Marshal(t.Items)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO templates(name, items) VALUES($1, $2)
         RETURNING id, created_at, updated_at`,
		t.Name, items,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TemplateRepository) Get(ctx context.Context, id int) (*models.Template, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, items, created_at, updated_at FROM templates WHERE id=$1`, id)

	var t models.Template
	var items []byte
	if err := row.Scan(&t.ID, &t.Name, &items, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &t.Items); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]*models.Template, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, items, created_at, updated_at FROM templates ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*models.Template
	for rows.Next() {
		var t models.Template
		var items []byte
		if err := rows.Scan(&t.ID, &t.Name, &items, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &t.Items); err != nil {
			return nil, err
		}
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}

func (r *TemplateRepository) Update(ctx context.Context, t *models.Template) error {
	items, err := json.Marshal(t.Items)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(ctx,
		`UPDATE templates SET name=$1, items=$2, updated_at=CURRENT_TIMESTAMP WHERE id=$3`,
		t.Name, items, t.ID)
	return err
}

func (r *TemplateRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM templates WHERE id=$1`, id)
	return err
}
