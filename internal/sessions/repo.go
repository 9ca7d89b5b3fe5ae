package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diefthyntis/Savasana/internal/apperr"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Session, error) {
	var s Session
	err := r.Pool.QueryRow(ctx,
		`SELECT id, name, date, teacher_id, COALESCE(description, ''), created_at, updated_at
         FROM sessions WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Date, &s.TeacherID, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	s.Users, err = r.participants(ctx, id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]Session, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id, name, date, teacher_id, COALESCE(description, ''), created_at, updated_at
         FROM sessions ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	list := []Session{}
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.Name, &s.Date, &s.TeacherID, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range list {
		list[i].Users, err = r.participants(ctx, list[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *Repository) Insert(ctx context.Context, s *Session) error {
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO sessions (name, date, teacher_id, description)
         VALUES ($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		s.Name, s.Date, s.TeacherID, s.Description,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	if s.Users == nil {
		s.Users = []int64{}
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, s *Session) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE sessions
         SET name = $2, date = $3, teacher_id = $4, description = $5, updated_at = now()
         WHERE id = $1`,
		s.ID, s.Name, s.Date, s.TeacherID, s.Description)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// AddParticipant inserts the roster row. The (session_id, user_id) primary
// key backs the uniqueness invariant, so a racing duplicate insert comes
// back as ErrAlreadyParticipating instead of a second row.
func (r *Repository) AddParticipant(ctx context.Context, sessionID, userID int64) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO session_participants (session_id, user_id) VALUES ($1, $2)`,
		sessionID, userID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperr.ErrAlreadyParticipating
	}
	if err != nil {
		return fmt.Errorf("add participant: %w", err)
	}
	return nil
}

func (r *Repository) RemoveParticipant(ctx context.Context, sessionID, userID int64) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM session_participants WHERE session_id = $1 AND user_id = $2`,
		sessionID, userID)
	if err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotParticipating
	}
	return nil
}

func (r *Repository) participants(ctx context.Context, sessionID int64) ([]int64, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT user_id FROM session_participants WHERE session_id = $1 ORDER BY user_id`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
