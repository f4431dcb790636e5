package repositories

import (
	"context"

	"qsplan-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PasswordResetRepository struct {
	DB *pgxpool.Pool
}

func NewPasswordResetRepository(db *pgxpool.Pool) *PasswordResetRepository {
	return &PasswordResetRepository{DB: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, username string) (*models.PasswordResetRequest, error) {
	req := &models.PasswordResetRequest{Username: username}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO password_reset_requests(username) VALUES($1)
         RETURNING id, created_at`, username,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// CountOpen returns the number of unresolved reset requests. Feeds the
// password_resets notification count.
func (r *PasswordResetRepository) CountOpen(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM password_reset_requests WHERE resolved = FALSE`,
	).Scan(&count)
	return count, err
}

func (r *PasswordResetRepository) ListOpen(ctx context.Context) ([]*models.PasswordResetRequest, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, username, created_at FROM password_reset_requests
         WHERE resolved = FALSE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*models.PasswordResetRequest
	for rows.Next() {
		var req models.PasswordResetRequest
		if err := rows.Scan(&req.ID, &req.Username, &req.CreatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, &req)
	}
	return reqs, rows.Err()
}

// ResolveForUsername closes all open requests for an account. Called when an
// admin sets a new password.
func (r *PasswordResetRepository) ResolveForUsername(ctx context.Context, username string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE password_reset_requests SET resolved = TRUE WHERE username=$1 AND resolved = FALSE`,
		username)
	return err
}
