package admin

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&t.Users); err != nil {
		return Totals{}, fmt.Errorf("count users: %w", err)
	}
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&t.Teachers); err != nil {
		return Totals{}, fmt.Errorf("count teachers: %w", err)
	}
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&t.Sessions); err != nil {
		return Totals{}, fmt.Errorf("count sessions: %w", err)
	}
	return t, nil
}

func (r *Repository) LatestUsers(ctx context.Context, limit int) ([]LatestUser, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, email, created_at::text
		FROM users
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("latest users: %w", err)
	}
	defer rows.Close()

	var latest []LatestUser
	for rows.Next() {
		var u LatestUser
		if err := rows.Scan(&u.ID, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan latest user: %w", err)
		}
		latest = append(latest, u)
	}
	return latest, rows.Err()
}
