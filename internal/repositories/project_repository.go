package repositories

import (
	"context"

	"qsplan-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository struct {
	DB *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	if p.Status == "" {
		p.Status = models.ProjectInProgress
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO projects(name, customer, manager, status)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		p.Name, p.Customer, p.Manager, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProjectRepository) Get(ctx context.Context, id int) (*models.Project, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, customer, manager, status, created_at, updated_at
         FROM projects WHERE id=$1`, id)

	var p models.Project
	err := row.Scan(&p.ID, &p.Name, &p.Customer, &p.Manager, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all projects, newest first
func (r *ProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	return r.scanProjects(r.DB.Query(ctx,
		`SELECT id, name, customer, manager, status, created_at, updated_at
         FROM projects ORDER BY created_at DESC`))
}

// ListByManager returns projects whose manager name matches exactly. Used to
// scope the list for manager-role users.
func (r *ProjectRepository) ListByManager(ctx context.Context, manager string) ([]*models.Project, error) {
	return r.scanProjects(r.DB.Query(ctx,
		`SELECT id, name, customer, manager, status, created_at, updated_at
         FROM projects WHERE manager=$1 ORDER BY created_at DESC`, manager))
}

func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE projects SET name=$1, customer=$2, manager=$3, status=$4, updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		p.Name, p.Customer, p.Manager, p.Status, p.ID)
	return err
}

// CountByStatus returns the project status -> count map for the dashboard.
func (r *ProjectRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.Query(ctx, `SELECT status, COUNT(*) FROM projects GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// CountUnknownManagers counts projects whose manager name matches no
// registered user. Feeds the unknown_managers notification count.
func (r *ProjectRepository) CountUnknownManagers(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM projects p
         WHERE p.manager <> '' AND NOT EXISTS (SELECT 1 FROM users u WHERE u.name = p.manager)`,
	).Scan(&count)
	return count, err
}

func (r *ProjectRepository) scanProjects(rows pgx.Rows, err error) ([]*models.Project, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Customer, &p.Manager, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}
