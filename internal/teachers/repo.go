package teachers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diefthyntis/Savasana/internal/apperr"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Teacher, error) {
	var t Teacher
	err := r.Pool.QueryRow(ctx,
		`SELECT id, last_name, first_name, created_at, updated_at
         FROM teachers WHERE id = $1`, id,
	).Scan(&t.ID, &t.LastName, &t.FirstName, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get teacher: %w", err)
	}
	return &t, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]Teacher, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id, last_name, first_name, created_at, updated_at
         FROM teachers ORDER BY last_name, first_name`)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	defer rows.Close()

	teachers := []Teacher{}
	for rows.Next() {
		var t Teacher
		if err := rows.Scan(&t.ID, &t.LastName, &t.FirstName, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan teacher: %w", err)
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func (r *Repository) Insert(ctx context.Context, t *Teacher) error {
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO teachers (last_name, first_name)
         VALUES ($1, $2)
         RETURNING id, created_at, updated_at`,
		t.LastName, t.FirstName,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert teacher: %w", err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, t *Teacher) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE teachers SET last_name = $2, first_name = $3, updated_at = now()
         WHERE id = $1`,
		t.ID, t.LastName, t.FirstName)
	if err != nil {
		return fmt.Errorf("update teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
